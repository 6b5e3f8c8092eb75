package imaging

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"math"
	"testing"

	"github.com/fyne-io/image/ico"
	"github.com/jsummers/gobmp"
)

const testSVG = `<svg xmlns="http://www.w3.org/2000/svg" width="24" height="24" viewBox="0 0 24 24"><rect x="2" y="2" width="20" height="20" fill="#1976d2"/></svg>`

func solidImage(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.NRGBA{R: 25, G: 118, B: 210, A: 255})
		}
	}
	return img
}

func encodeWith(t *testing.T, encode func(*bytes.Buffer) error) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := encode(&buf); err != nil {
		t.Fatalf("Failed to build fixture: %v", err)
	}
	return buf.Bytes()
}

func pngFixture(t *testing.T, w, h int) []byte {
	return encodeWith(t, func(b *bytes.Buffer) error { return png.Encode(b, solidImage(w, h)) })
}

func TestExtensions(t *testing.T) {
	expected := []string{".bmp", ".cur", ".ico", ".png", ".svg"}
	got := Extensions()

	if len(got) != len(expected) {
		t.Fatalf("Expected %d extensions, got %d", len(expected), len(got))
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("Extension %d: expected %s, got %s", i, expected[i], got[i])
		}
	}
}

func TestSupported(t *testing.T) {
	tests := []struct {
		ext      string
		expected bool
	}{
		{".png", true},
		{".PNG", true},
		{".cur", true},
		{".jpg", false},
		{"png", false},
		{"", false},
	}

	for _, test := range tests {
		if got := Supported(test.ext); got != test.expected {
			t.Errorf("Supported(%q) = %v, expected %v", test.ext, got, test.expected)
		}
	}
}

func TestLookup_Unsupported(t *testing.T) {
	_, err := Lookup(".gif")
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Expected ErrUnsupportedFormat, got %v", err)
	}

	var buf bytes.Buffer
	if err := Transcode(&buf, ".gif", []byte("GIF89a")); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Expected ErrUnsupportedFormat from Transcode, got %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("Expected nothing written, got %d bytes", buf.Len())
	}
}

func TestTranscode_PNG(t *testing.T) {
	src := pngFixture(t, 16, 8)

	var out bytes.Buffer
	if err := Transcode(&out, ExtPNG, src); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	img, err := png.Decode(&out)
	if err != nil {
		t.Fatalf("Output is not a valid PNG: %v", err)
	}
	if img.Bounds().Dx() != 16 || img.Bounds().Dy() != 8 {
		t.Errorf("Expected 16x8 image, got %v", img.Bounds())
	}
}

func TestTranscode_BMP(t *testing.T) {
	src := encodeWith(t, func(b *bytes.Buffer) error { return gobmp.Encode(b, solidImage(10, 4)) })

	var out bytes.Buffer
	if err := Transcode(&out, ExtBMP, src); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !bytes.HasPrefix(out.Bytes(), []byte("BM")) {
		t.Errorf("Expected BMP signature, got %q", out.Bytes()[:2])
	}

	img, err := gobmp.Decode(&out)
	if err != nil {
		t.Fatalf("Output is not a valid BMP: %v", err)
	}
	if img.Bounds().Dx() != 10 || img.Bounds().Dy() != 4 {
		t.Errorf("Expected 10x4 image, got %v", img.Bounds())
	}
}

func TestTranscode_ICO(t *testing.T) {
	src := encodeWith(t, func(b *bytes.Buffer) error { return ico.Encode(b, solidImage(32, 32)) })

	var out bytes.Buffer
	if err := Transcode(&out, ExtICO, src); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	img, err := ico.Decode(&out)
	if err != nil {
		t.Fatalf("Output is not a valid ICO: %v", err)
	}
	if img.Bounds().Dx() != 32 {
		t.Errorf("Expected 32px wide icon, got %d", img.Bounds().Dx())
	}
}

func TestTranscode_CURKeepsHotspot(t *testing.T) {
	var src bytes.Buffer
	if err := encodeCUR(&src, solidImage(32, 32), nil); err != nil {
		t.Fatalf("Failed to build cursor: %v", err)
	}
	raw := src.Bytes()
	// hotspot (5, 7)
	raw[iconDirSize+4], raw[iconDirSize+5] = 5, 0
	raw[iconDirSize+6], raw[iconDirSize+7] = 7, 0

	var out bytes.Buffer
	if err := Transcode(&out, ExtCUR, raw); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if out.Bytes()[2] != typeCursor {
		t.Errorf("Expected cursor type word, got %d", out.Bytes()[2])
	}
	hotspot, err := CursorHotspot(out.Bytes())
	if err != nil {
		t.Fatalf("Failed to read hotspot: %v", err)
	}
	if hotspot.X != 5 || hotspot.Y != 7 {
		t.Errorf("Expected hotspot (5,7), got (%d,%d)", hotspot.X, hotspot.Y)
	}

	img, err := decodeCUR(out.Bytes())
	if err != nil {
		t.Fatalf("Output is not a valid cursor: %v", err)
	}
	if img.Bounds().Dx() != 32 {
		t.Errorf("Expected 32px wide cursor, got %d", img.Bounds().Dx())
	}
}

func TestDecodeCUR_RejectsIcons(t *testing.T) {
	src := encodeWith(t, func(b *bytes.Buffer) error { return ico.Encode(b, solidImage(16, 16)) })

	if _, err := Decode(ExtCUR, src); err == nil {
		t.Error("Expected error decoding an icon as cursor, got nil")
	}
	if _, err := Decode(ExtCUR, []byte{0, 0}); err == nil {
		t.Error("Expected error for truncated cursor, got nil")
	}
}

func TestTranscode_SVGKeepsSource(t *testing.T) {
	var out bytes.Buffer
	if err := Transcode(&out, ExtSVG, []byte(testSVG)); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if out.String() != testSVG {
		t.Errorf("Expected SVG source to be written unchanged, got %q", out.String())
	}
}

func TestDecodeSVG_Size(t *testing.T) {
	img, err := Decode(ExtSVG, []byte(testSVG))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if img.Bounds().Dx() != 24 || img.Bounds().Dy() != 24 {
		t.Errorf("Expected 24x24 raster, got %v", img.Bounds())
	}

	// centre pixel lies inside the filled rect
	_, _, _, a := img.At(12, 12).RGBA()
	if a == 0 {
		t.Error("Expected rasterized rect to be opaque at the centre")
	}
}

func TestDecodeSVG_LargeViewBoxIsScaledDown(t *testing.T) {
	huge := []byte(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 1000000 1000000"><rect width="1000000" height="1000000" fill="#000"/></svg>`)

	img, err := Decode(ExtSVG, huge)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if img.Bounds().Dx() != MaxSVGRasterSize || img.Bounds().Dy() != MaxSVGRasterSize {
		t.Errorf("Expected %dx%d raster, got %v", MaxSVGRasterSize, MaxSVGRasterSize, img.Bounds())
	}

	var out bytes.Buffer
	if err := Transcode(&out, ExtSVG, huge); err != nil {
		t.Fatalf("Expected export to succeed, got %v", err)
	}
	if !bytes.Equal(out.Bytes(), huge) {
		t.Error("Expected SVG source to be written unchanged")
	}
}

func TestRasterSize(t *testing.T) {
	tests := []struct {
		w, h                 float64
		expectedW, expectedH int
	}{
		{24, 24, 24, 24},
		{2000, 1000, 256, 128},
		{100, 4000, 7, 256},
		{1e300, 1e300, 256, 256},
		{0, 24, DefaultSVGSize, DefaultSVGSize},
		{math.Inf(1), 10, DefaultSVGSize, DefaultSVGSize},
		{math.NaN(), 10, DefaultSVGSize, DefaultSVGSize},
	}

	for _, test := range tests {
		w, h := rasterSize(test.w, test.h)
		if w != test.expectedW || h != test.expectedH {
			t.Errorf("rasterSize(%v, %v) = %dx%d, expected %dx%d", test.w, test.h, w, h, test.expectedW, test.expectedH)
		}
	}
}

func TestDecode_InvalidData(t *testing.T) {
	tests := []struct {
		ext  string
		data []byte
	}{
		{ExtPNG, []byte("not a png")},
		{ExtBMP, []byte("not a bmp")},
		{ExtICO, []byte{0, 0, 2, 0}},
		{ExtSVG, []byte("plain text")},
	}

	for _, test := range tests {
		if _, err := Decode(test.ext, test.data); err == nil {
			t.Errorf("Expected error decoding invalid %s data", test.ext)
		}
	}
}

func TestThumbnail(t *testing.T) {
	src := encodeWith(t, func(b *bytes.Buffer) error { return gobmp.Encode(b, solidImage(8, 8)) })

	thumb, err := Thumbnail(ExtBMP, src)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	img, err := png.Decode(bytes.NewReader(thumb))
	if err != nil {
		t.Fatalf("Thumbnail is not a PNG: %v", err)
	}
	if img.Bounds().Dx() != 8 {
		t.Errorf("Expected 8px thumbnail, got %d", img.Bounds().Dx())
	}
}
