package imaging

import (
	"bytes"
	"errors"
	"image"
	"io"
	"math"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

const (
	// DefaultSVGSize is used when an SVG declares no usable view box
	DefaultSVGSize = 64

	// MaxSVGRasterSize bounds the longest edge of a rasterized SVG
	MaxSVGRasterSize = 256
)

var errEmptySVG = errors.New("svg has no drawable size")

// decodeSVG parses the document and rasterizes it at its view box size, scaled
// down to fit MaxSVGRasterSize
func decodeSVG(data []byte) (image.Image, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	if !bytes.Contains(data, []byte("<svg")) {
		return nil, errEmptySVG
	}

	w, h := rasterSize(icon.ViewBox.W, icon.ViewBox.H)
	icon.SetTarget(0, 0, float64(w), float64(h))
	rgba := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, rgba, rgba.Bounds())
	icon.Draw(rasterx.NewDasher(w, h, scanner), 1)

	return rgba, nil
}

// encodeSVG writes the original document; the vector source is its own best quality
func encodeSVG(w io.Writer, _ image.Image, src []byte) error {
	_, err := w.Write(src)
	return err
}

// rasterSize returns the pixel size for a view box, keeping its aspect ratio
func rasterSize(vw, vh float64) (int, int) {
	if !(vw > 0) || !(vh > 0) || math.IsInf(vw, 0) || math.IsInf(vh, 0) {
		return DefaultSVGSize, DefaultSVGSize
	}
	if longest := math.Max(vw, vh); longest > MaxSVGRasterSize {
		scale := MaxSVGRasterSize / longest
		vw, vh = vw*scale, vh*scale
	}
	return max(1, int(math.Ceil(vw))), max(1, int(math.Ceil(vh)))
}
