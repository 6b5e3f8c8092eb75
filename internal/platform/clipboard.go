package platform

import (
	"log"

	"github.com/atotto/clipboard"
)

// SystemClipboard writes to the OS clipboard without a GUI toolkit. It is
// used by the command line tool.
type SystemClipboard struct {
	err error
}

// NewSystemClipboard creates a clipboard writer
func NewSystemClipboard() *SystemClipboard {
	return &SystemClipboard{}
}

// SetContent writes content to the clipboard. Failures are kept for Err.
func (c *SystemClipboard) SetContent(content string) {
	c.err = clipboard.WriteAll(content)
	if c.err != nil {
		log.Printf("Failed to write clipboard: %v", c.err)
	}
}

// Err returns the error of the last write
func (c *SystemClipboard) Err() error {
	return c.err
}

// ClipboardAvailable reports whether a clipboard utility was found
func ClipboardAvailable() bool {
	return !clipboard.Unsupported
}
