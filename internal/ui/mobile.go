package ui

import (
	"fyne.io/fyne/v2"
)

// MobileUI adapts sizes for touch devices, where rows must be large enough to
// long-press for the context menu
type MobileUI struct {
	mobile bool
}

// NewMobileUI creates a new mobile UI helper for the current device
func NewMobileUI() *MobileUI {
	device := fyne.CurrentDevice()
	return &MobileUI{mobile: device != nil && device.IsMobile()}
}

// PreviewSize returns the edge length of resource previews
func (m *MobileUI) PreviewSize() float32 {
	if m.mobile {
		return MobilePreviewSize
	}
	return PreviewSize
}

// RowMinSize returns the minimum size of a resource row
func (m *MobileUI) RowMinSize() fyne.Size {
	if m.mobile {
		return fyne.NewSize(RowMinWidth, MobileRowMinHeight)
	}
	return fyne.NewSize(RowMinWidth, RowMinHeight)
}
