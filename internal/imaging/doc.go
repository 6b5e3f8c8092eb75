package imaging

// Package imaging decodes and re-encodes the image formats the resource
// browser understands (.png, .bmp, .ico, .cur, .svg). Encoders always pick the
// highest fidelity settings the format offers.
