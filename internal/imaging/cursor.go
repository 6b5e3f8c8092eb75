package imaging

import (
	"bytes"
	"encoding/binary"
	"errors"
	"image"
	"io"

	"github.com/fyne-io/image/ico"
)

// ICONDIR / ICONDIRENTRY layout shared by .ico and .cur files
const (
	iconDirSize      = 6
	iconDirEntrySize = 16

	typeIcon   = 1
	typeCursor = 2
)

var errShortCursor = errors.New("cursor data too short")

// Hotspot is the click point of a cursor, stored where icons keep planes and bit depth
type Hotspot struct {
	X, Y uint16
}

// CursorHotspot reads the hotspot of the first cursor image
func CursorHotspot(data []byte) (Hotspot, error) {
	if len(data) < iconDirSize+iconDirEntrySize {
		return Hotspot{}, errShortCursor
	}
	entry := data[iconDirSize:]
	return Hotspot{
		X: binary.LittleEndian.Uint16(entry[4:6]),
		Y: binary.LittleEndian.Uint16(entry[6:8]),
	}, nil
}

// decodeCUR decodes a cursor with the icon decoder after rewriting its type word
func decodeCUR(data []byte) (image.Image, error) {
	if len(data) < iconDirSize+iconDirEntrySize {
		return nil, errShortCursor
	}
	if binary.LittleEndian.Uint16(data[2:4]) != typeCursor {
		return nil, errors.New("not a cursor file")
	}

	patched := make([]byte, len(data))
	copy(patched, data)
	binary.LittleEndian.PutUint16(patched[2:4], typeIcon)

	// bits per pixel holds the hotspot y for cursors; the icon decoder reads it
	// to decide whether a BMP payload carries an AND mask
	count := int(binary.LittleEndian.Uint16(data[4:6]))
	for i := 0; i < count; i++ {
		off := iconDirSize + i*iconDirEntrySize
		if off+iconDirEntrySize > len(patched) {
			break
		}
		binary.LittleEndian.PutUint16(patched[off+4:off+6], 1)
		binary.LittleEndian.PutUint16(patched[off+6:off+8], bitCount(patched, off))
	}

	return ico.Decode(bytes.NewReader(patched))
}

// bitCount returns the real bit depth of the entry's BMP payload, or 32 for PNG payloads
func bitCount(data []byte, entryOff int) uint16 {
	imgOff := int(binary.LittleEndian.Uint32(data[entryOff+12 : entryOff+16]))
	if imgOff+16 > len(data) {
		return 32
	}
	// BITMAPINFOHEADER.biBitCount lives at offset 14
	if binary.LittleEndian.Uint32(data[imgOff:imgOff+4]) == 40 {
		return binary.LittleEndian.Uint16(data[imgOff+14 : imgOff+16])
	}
	return 32
}

// encodeCUR encodes img as a single image cursor keeping the source hotspot
func encodeCUR(w io.Writer, img image.Image, src []byte) error {
	hotspot, err := CursorHotspot(src)
	if err != nil {
		hotspot = Hotspot{}
	}

	var buf bytes.Buffer
	if err := ico.Encode(&buf, img); err != nil {
		return err
	}

	out := buf.Bytes()
	if len(out) < iconDirSize+iconDirEntrySize {
		return errShortCursor
	}
	binary.LittleEndian.PutUint16(out[2:4], typeCursor)
	binary.LittleEndian.PutUint16(out[iconDirSize+4:iconDirSize+6], hotspot.X)
	binary.LittleEndian.PutUint16(out[iconDirSize+6:iconDirSize+8], hotspot.Y)

	_, err = w.Write(out)
	return err
}
