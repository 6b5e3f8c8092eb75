package ui

import (
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/resource-browser/internal/model"
)

// ResourceRow shows one resource: its preview, its path and its format.
// A secondary tap (right click, long press on mobile) asks for the context menu.
type ResourceRow struct {
	widget.BaseWidget

	index   widget.ListItemID
	entry   model.ResourceEntry
	minSize fyne.Size

	preview     *canvas.Image
	pathLabel   *widget.Label
	formatLabel *widget.Label

	onContextMenu func(id widget.ListItemID, pos fyne.Position)
}

// NewResourceRow creates an empty row
func NewResourceRow(mobile *MobileUI, onContextMenu func(id widget.ListItemID, pos fyne.Position)) *ResourceRow {
	r := &ResourceRow{
		index:         -1,
		minSize:       mobile.RowMinSize(),
		onContextMenu: onContextMenu,
	}

	r.preview = canvas.NewImageFromResource(theme.FileImageIcon())
	r.preview.FillMode = canvas.ImageFillContain
	r.preview.SetMinSize(fyne.NewSquareSize(mobile.PreviewSize()))

	r.pathLabel = widget.NewLabel("")
	r.pathLabel.Truncation = fyne.TextTruncateEllipsis

	r.formatLabel = widget.NewLabel(DashPlaceholder)
	r.formatLabel.Alignment = fyne.TextAlignTrailing
	r.formatLabel.Importance = widget.LowImportance

	r.ExtendBaseWidget(r)
	return r
}

// Update shows entry as list item id
func (r *ResourceRow) Update(id widget.ListItemID, entry model.ResourceEntry) {
	r.index = id
	r.entry = entry

	icon := entry.Icon
	if icon == nil {
		icon = theme.FileImageIcon()
	}
	r.preview.Resource = icon
	r.preview.Refresh()

	r.pathLabel.SetText(entry.Path)
	r.formatLabel.SetText(strings.ToUpper(entry.Format()))
}

// Entry returns the entry shown in the row
func (r *ResourceRow) Entry() model.ResourceEntry {
	return r.entry
}

// TappedSecondary opens the context menu for this row
func (r *ResourceRow) TappedSecondary(ev *fyne.PointEvent) {
	if r.onContextMenu == nil || r.index < 0 {
		return
	}
	r.onContextMenu(r.index, ev.AbsolutePosition)
}

// MinSize keeps rows tall enough for the preview
func (r *ResourceRow) MinSize() fyne.Size {
	return r.BaseWidget.MinSize().Max(r.minSize)
}

// CreateRenderer creates the widget renderer
func (r *ResourceRow) CreateRenderer() fyne.WidgetRenderer {
	format := container.New(layout.NewGridWrapLayout(fyne.NewSize(FormatLabelWidth, r.formatLabel.MinSize().Height)), r.formatLabel)
	content := container.NewBorder(nil, nil, container.NewCenter(r.preview), format, r.pathLabel)
	return widget.NewSimpleRenderer(content)
}
