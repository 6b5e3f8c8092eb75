package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"sort"
	"strings"

	"github.com/fyne-io/image/ico"
	"github.com/jsummers/gobmp"
)

// Supported extensions (lower-case, with dot)
const (
	ExtPNG = ".png"
	ExtICO = ".ico"
	ExtSVG = ".svg"
	ExtBMP = ".bmp"
	ExtCUR = ".cur"
)

// ErrUnsupportedFormat is returned for extensions without a codec
var ErrUnsupportedFormat = errors.New("unsupported image format")

// Codec decodes and encodes one image format. Encode receives the decoded
// image together with the original bytes so vector formats can keep their source.
type Codec struct {
	Decode func(data []byte) (image.Image, error)
	Encode func(w io.Writer, img image.Image, src []byte) error
}

var codecs = map[string]Codec{
	ExtPNG: {Decode: decodePNG, Encode: encodePNG},
	ExtBMP: {Decode: decodeBMP, Encode: encodeBMP},
	ExtICO: {Decode: decodeICO, Encode: encodeICO},
	ExtCUR: {Decode: decodeCUR, Encode: encodeCUR},
	ExtSVG: {Decode: decodeSVG, Encode: encodeSVG},
}

// Extensions returns the supported extensions in sorted order
func Extensions() []string {
	exts := make([]string, 0, len(codecs))
	for ext := range codecs {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// Supported reports whether ext (case-insensitive, with dot) has a codec
func Supported(ext string) bool {
	_, ok := codecs[strings.ToLower(ext)]
	return ok
}

// Lookup returns the codec for ext
func Lookup(ext string) (Codec, error) {
	c, ok := codecs[strings.ToLower(ext)]
	if !ok {
		return Codec{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	return c, nil
}

// Decode decodes data using the codec registered for ext
func Decode(ext string, data []byte) (image.Image, error) {
	c, err := Lookup(ext)
	if err != nil {
		return nil, err
	}
	img, err := c.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s image: %w", strings.TrimPrefix(ext, "."), err)
	}
	return img, nil
}

// Transcode decodes data and re-encodes it to w in the same format
func Transcode(w io.Writer, ext string, data []byte) error {
	c, err := Lookup(ext)
	if err != nil {
		return err
	}
	img, err := c.Decode(data)
	if err != nil {
		return fmt.Errorf("failed to decode %s image: %w", strings.TrimPrefix(ext, "."), err)
	}
	if err := c.Encode(w, img, data); err != nil {
		return fmt.Errorf("failed to encode %s image: %w", strings.TrimPrefix(ext, "."), err)
	}
	return nil
}

// Thumbnail returns PNG bytes for formats the toolkit cannot draw directly
func Thumbnail(ext string, data []byte) ([]byte, error) {
	img, err := Decode(ext, data)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode thumbnail: %w", err)
	}
	return buf.Bytes(), nil
}

func decodePNG(data []byte) (image.Image, error) {
	return png.Decode(bytes.NewReader(data))
}

// encodePNG writes uncompressed PNG; PNG is lossless so quality is only a size trade-off
func encodePNG(w io.Writer, img image.Image, _ []byte) error {
	enc := png.Encoder{CompressionLevel: png.NoCompression}
	return enc.Encode(w, img)
}

func decodeBMP(data []byte) (image.Image, error) {
	return gobmp.Decode(bytes.NewReader(data))
}

func encodeBMP(w io.Writer, img image.Image, _ []byte) error {
	opts := new(gobmp.EncoderOptions)
	opts.SupportTransparency(true)
	return gobmp.EncodeWithOptions(w, img, opts)
}

func decodeICO(data []byte) (image.Image, error) {
	return ico.Decode(bytes.NewReader(data))
}

func encodeICO(w io.Writer, img image.Image, _ []byte) error {
	return ico.Encode(w, img)
}
