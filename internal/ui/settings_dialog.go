package ui

import (
	"sort"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/resource-browser/internal/catalog"
	"github.com/ytget/resource-browser/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onChanged    func()

	// UI components
	exportDirEntry   *widget.Entry
	mountsFileEntry  *widget.Entry
	filterModeSelect *widget.Select
	caseCheck        *widget.Check
	revealCheck      *widget.Check
	themeIconsCheck  *widget.Check
	languageSelect   *widget.Select
}

// NewSettingsDialog creates a new settings dialog. onChanged runs after the
// settings were saved.
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onChanged func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onChanged:    onChanged,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	text := sd.localization.GetText

	sd.exportDirEntry = widget.NewEntry()
	browseDirBtn := widget.NewButton(text(KeyBrowse), sd.onBrowseDirectory)
	exportDirRow := container.NewBorder(nil, nil, nil, browseDirBtn, sd.exportDirEntry)

	sd.mountsFileEntry = widget.NewEntry()
	sd.mountsFileEntry.SetPlaceHolder("mounts.yaml")
	browseMountsBtn := widget.NewButton(text(KeyBrowse), sd.onBrowseMountsFile)
	mountsRow := container.NewBorder(nil, nil, nil, browseMountsBtn, sd.mountsFileEntry)

	modeOptions := []string{}
	for _, mode := range sd.settings.GetFilterModeOptions() {
		modeOptions = append(modeOptions, string(mode))
	}
	sd.filterModeSelect = widget.NewSelect(modeOptions, nil)

	sd.caseCheck = widget.NewCheck(text(KeyCaseSensitive), nil)
	sd.revealCheck = widget.NewCheck(text(KeyRevealAfterExport), nil)
	sd.themeIconsCheck = widget.NewCheck(text(KeyThemeIcons), nil)

	languageOptions := []string{}
	for code := range sd.settings.GetLanguageOptions() {
		languageOptions = append(languageOptions, code)
	}
	sort.Strings(languageOptions)
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	form := container.NewVBox(
		widget.NewLabel(text(KeyExportDirectory)+":"),
		exportDirRow,
		sd.revealCheck,

		widget.NewSeparator(),

		widget.NewLabel(text(KeyFilterMode)+":"),
		sd.filterModeSelect,
		sd.caseCheck,

		widget.NewSeparator(),

		widget.NewLabel(text(KeyMountsFile)+":"),
		mountsRow,
		sd.themeIconsCheck,

		widget.NewSeparator(),

		widget.NewLabel(text(KeyLanguage)+":"),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		text(KeySettings),
		text(KeySave),
		text(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.exportDirEntry.SetText(sd.settings.GetExportDirectory())
	sd.mountsFileEntry.SetText(sd.settings.GetMountsFile())
	sd.filterModeSelect.SetSelected(string(sd.settings.GetFilterMode()))
	sd.caseCheck.SetChecked(sd.settings.GetCaseSensitive())
	sd.revealCheck.SetChecked(sd.settings.GetRevealAfterExport())
	sd.themeIconsCheck.SetChecked(sd.settings.GetIncludeThemeIcons())
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
}

// onBrowseDirectory handles directory browsing
func (sd *SettingsDialog) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		sd.exportDirEntry.SetText(uri.Path())
	}, sd.window)
}

// onBrowseMountsFile picks the YAML mounts file
func (sd *SettingsDialog) onBrowseMountsFile() {
	d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()
		sd.mountsFileEntry.SetText(reader.URI().Path())
	}, sd.window)
	d.SetFilter(storage.NewExtensionFileFilter([]string{".yaml", ".yml"}))
	d.Show()
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}
	sd.apply()

	dialog.ShowInformation(sd.localization.GetText(KeySettings), sd.localization.GetText(KeySettingsSaved), sd.window)
	if sd.onChanged != nil {
		sd.onChanged()
	}
}

// apply writes the form values to the settings
func (sd *SettingsDialog) apply() {
	if dir := sd.exportDirEntry.Text; dir != "" {
		sd.settings.SetExportDirectory(dir)
	}
	sd.settings.SetMountsFile(sd.mountsFileEntry.Text)

	if sd.filterModeSelect.Selected != "" {
		sd.settings.SetFilterMode(catalog.FilterMode(sd.filterModeSelect.Selected))
	}
	sd.settings.SetCaseSensitive(sd.caseCheck.Checked)
	sd.settings.SetRevealAfterExport(sd.revealCheck.Checked)
	sd.settings.SetIncludeThemeIcons(sd.themeIconsCheck.Checked)

	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}
}
