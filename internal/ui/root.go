package ui

import (
	"fmt"
	"io/fs"
	"log"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/resource-browser/internal/browser"
	"github.com/ytget/resource-browser/internal/catalog"
	"github.com/ytget/resource-browser/internal/config"
	"github.com/ytget/resource-browser/internal/export"
	"github.com/ytget/resource-browser/internal/model"
	"github.com/ytget/resource-browser/internal/platform"
	"github.com/ytget/resource-browser/internal/resource"
)

// ProviderFactory builds the resource namespace from the current settings.
// It is called on every refresh so changed mounts take effect.
type ProviderFactory func(settings *config.Settings) (resource.Provider, error)

// BundleProviderFactory returns a factory assembling bundle, theme icons and
// configured mounts
func BundleProviderFactory(bundle fs.FS) ProviderFactory {
	return func(settings *config.Settings) (resource.Provider, error) {
		return config.BuildNamespace(settings.NamespaceOptions(bundle))
	}
}

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	settings     *config.Settings
	localization *Localization
	mobile       *MobileUI
	version      string

	providers ProviderFactory
	exporter  *export.Service
	handler   *browser.Handler

	// UI components
	searchEntry  *widget.Entry
	resourceList *widget.List
	statusLabel  *widget.Label
	copyBtn      *widget.Button
	exportBtn    *widget.Button
	refreshBtn   *widget.Button
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, providers ProviderFactory, exporter *export.Service) *RootUI {
	settings := config.NewSettings(app)

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	list := catalog.NewList()
	list.SetFilterMode(settings.GetFilterMode())
	list.SetCaseSensitive(settings.GetCaseSensitive())

	ui := &RootUI{
		window:       window,
		settings:     settings,
		localization: localization,
		mobile:       NewMobileUI(),
		providers:    providers,
		exporter:     exporter,
	}

	ui.handler = browser.NewHandler(list, app.Clipboard(), NewFileSavePrompter(window, localization), exporter, ui)
	ui.handler.SetExportDir(settings.GetExportDirectory())
	ui.handler.OnExported = ui.onExported
	exporter.SetUpdateCallback(ui.onTaskUpdate)
	ui.applyRevealSetting()

	window.SetTitle(ui.windowTitle())

	ui.setupUI()
	ui.Refresh()
	return ui
}

// Handler returns the interaction handler behind the window
func (ui *RootUI) Handler() *browser.Handler {
	return ui.handler
}

// SetVersion shows version next to the localized window title
func (ui *RootUI) SetVersion(version string) {
	ui.version = version
	ui.window.SetTitle(ui.windowTitle())
}

func (ui *RootUI) windowTitle() string {
	title := ui.localization.GetText(KeyAppTitle)
	if ui.version == "" {
		return title
	}
	return fmt.Sprintf("%s v%s", title, ui.version)
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.searchEntry = widget.NewEntry()
	ui.searchEntry.SetPlaceHolder(ui.localization.GetText(KeySearch))
	ui.searchEntry.OnChanged = ui.onSearchChanged

	ui.refreshBtn = widget.NewButtonWithIcon("", theme.ViewRefreshIcon(), ui.Refresh)
	ui.refreshBtn.Importance = widget.LowImportance

	settingsBtn := widget.NewButtonWithIcon("", theme.SettingsIcon(), ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	ui.copyBtn = widget.NewButtonWithIcon(ui.localization.GetText(KeyCopyPath), theme.ContentCopyIcon(), ui.onCopy)
	ui.exportBtn = widget.NewButtonWithIcon(ui.localization.GetText(KeyExport), theme.DocumentSaveIcon(), ui.onExport)
	ui.exportBtn.Importance = widget.HighImportance

	topPanel := container.NewBorder(nil, nil, settingsBtn, ui.refreshBtn, ui.searchEntry)

	list := ui.handler.List()
	ui.resourceList = widget.NewList(
		list.Len,
		func() fyne.CanvasObject { return NewResourceRow(ui.mobile, ui.onContextMenu) },
		ui.updateResourceItem,
	)
	ui.resourceList.OnSelected = func(id widget.ListItemID) {
		ui.handler.Select(id)
		ui.updateActions()
	}
	ui.resourceList.OnUnselected = func(widget.ListItemID) {
		ui.handler.ClearSelection()
		ui.updateActions()
	}

	ui.statusLabel = widget.NewLabel("")
	ui.statusLabel.Truncation = fyne.TextTruncateEllipsis
	bottomPanel := container.NewBorder(nil, nil, nil, container.NewHBox(ui.copyBtn, ui.exportBtn), ui.statusLabel)

	content := container.NewBorder(topPanel, bottomPanel, nil, nil, ui.resourceList)
	ui.window.SetContent(content)
	ui.updateActions()

	log.Printf("UI setup completed successfully")
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	text := ui.localization.GetText

	refreshItem := fyne.NewMenuItem(text(KeyRefresh), ui.Refresh)
	settingsItem := fyne.NewMenuItem(text(KeySettings), ui.onShowSettings)

	copyItem := fyne.NewMenuItem(text(KeyCopyPath), ui.onCopy)
	exportItem := fyne.NewMenuItem(text(KeyExport), ui.onExport)

	languageMenu := fyne.NewMenu(text(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		langItem.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(text(KeyFile), refreshItem, settingsItem),
		fyne.NewMenu(text(KeyEdit), copyItem, exportItem),
		languageMenu,
	))
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.windowTitle())
	ui.searchEntry.SetPlaceHolder(ui.localization.GetText(KeySearch))
	ui.copyBtn.SetText(ui.localization.GetText(KeyCopyPath))
	ui.exportBtn.SetText(ui.localization.GetText(KeyExport))
	ui.updateStatus()
}

// Refresh rebuilds the resource list from the namespace. On failure the
// previous list stays visible.
func (ui *RootUI) Refresh() {
	provider, err := ui.providers(ui.settings)
	if err == nil {
		err = ui.handler.Refresh(provider)
	}
	if err != nil {
		log.Printf("Failed to refresh resources: %v", err)
		dialog.ShowError(fmt.Errorf("%s: %w", ui.localization.GetText(KeyRefreshFailed), err), ui.window)
	}

	ui.resetSelection()
	ui.updateStatus()
}

// onSearchChanged re-filters the list as the user types
func (ui *RootUI) onSearchChanged(text string) {
	ui.handler.SetFilterText(text)
	ui.resetSelection()
	ui.updateStatus()
}

// resetSelection drops the list selection after the view changed
func (ui *RootUI) resetSelection() {
	if ui.resourceList == nil {
		return
	}
	ui.resourceList.UnselectAll()
	ui.handler.ClearSelection()
	ui.resourceList.Refresh()
	ui.updateActions()
}

// updateResourceItem binds a row to the visible entry at id
func (ui *RootUI) updateResourceItem(id widget.ListItemID, item fyne.CanvasObject) {
	entry, ok := ui.handler.List().At(id)
	if !ok {
		return
	}
	if row, ok := item.(*ResourceRow); ok {
		row.Update(id, entry)
	}
}

// onContextMenu selects the row and shows copy and export actions for it
func (ui *RootUI) onContextMenu(id widget.ListItemID, pos fyne.Position) {
	ui.resourceList.Select(id)
	if _, ok := ui.handler.Current(); !ok {
		return
	}

	menu := fyne.NewMenu("",
		fyne.NewMenuItem(ui.localization.GetText(KeyCopyPath), ui.onCopy),
		fyne.NewMenuItem(ui.localization.GetText(KeyExport), ui.onExport),
	)
	widget.ShowPopUpMenuAtPosition(menu, ui.window.Canvas(), pos)
}

func (ui *RootUI) onCopy() {
	entry, ok := ui.handler.Current()
	if !ok || !ui.handler.Copy() {
		return
	}
	ui.statusLabel.SetText(fmt.Sprintf(ui.localization.GetText(KeyCopied), entry.Path))
}

func (ui *RootUI) onExport() {
	ui.handler.Export()
}

// onTaskUpdate shows a running export in the status bar and logs finished ones
func (ui *RootUI) onTaskUpdate(task *model.ExportTask) {
	switch {
	case task.Status.IsActive():
		if ui.statusLabel != nil {
			ui.statusLabel.SetText(fmt.Sprintf(ui.localization.GetText(KeyExporting), task.GetDisplayTitle()))
		}
	case task.Status.IsFinished():
		log.Printf("Export %s finished: %s in %v", task.ID, task.Status, task.Duration())
	}
}

// onExported remembers the export directory and reports success
func (ui *RootUI) onExported(task *model.ExportTask) {
	ui.settings.SetExportDirectory(filepath.Dir(task.Destination))
	if err := platform.NotifyMediaScanner(task.Destination); err != nil {
		log.Printf("Failed to notify media scanner: %v", err)
	}
	ui.statusLabel.SetText(fmt.Sprintf(ui.localization.GetText(KeyExported), task.Destination))
}

// ReportError implements browser.Reporter
func (ui *RootUI) ReportError(err error) {
	ui.statusLabel.SetText(ui.localization.GetText(KeyExportFailed))
	NewDialogReporter(ui.window).ReportError(err)
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.localization, ui.window, ui.onSettingsChanged).Show()
}

// onSettingsChanged applies saved settings to the running window
func (ui *RootUI) onSettingsChanged() {
	list := ui.handler.List()
	list.SetFilterMode(ui.settings.GetFilterMode())
	list.SetCaseSensitive(ui.settings.GetCaseSensitive())
	ui.handler.SetExportDir(ui.settings.GetExportDirectory())
	ui.applyRevealSetting()

	ui.localization.SetLanguage(ui.settings.GetLanguage())
	ui.refreshUITexts()
	ui.createMenu()

	// Mounts or theme icons may have changed
	ui.Refresh()
}

func (ui *RootUI) applyRevealSetting() {
	if ui.settings.GetRevealAfterExport() {
		ui.handler.SetReveal(platform.OpenFileInManager)
		return
	}
	ui.handler.SetReveal(nil)
}

// updateActions enables copy and export only while a resource is selected
func (ui *RootUI) updateActions() {
	if ui.copyBtn == nil || ui.exportBtn == nil {
		return
	}
	if _, ok := ui.handler.Current(); ok {
		ui.copyBtn.Enable()
		ui.exportBtn.Enable()
		return
	}
	ui.copyBtn.Disable()
	ui.exportBtn.Disable()
}

// updateStatus shows how many resources match the filter
func (ui *RootUI) updateStatus() {
	if ui.statusLabel == nil {
		return
	}
	list := ui.handler.List()
	if list.Total() == 0 {
		ui.statusLabel.SetText(ui.localization.GetText(KeyNoResources))
		return
	}
	ui.statusLabel.SetText(fmt.Sprintf(ui.localization.GetText(KeyShowingResources), list.Len(), list.Total()))
}
