package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeySearch            = "search"
	KeyCopyPath          = "copy_path"
	KeyExport            = "export"
	KeyRefresh           = "refresh"
	KeySettings          = "settings"
	KeyFile              = "file"
	KeyEdit              = "edit"
	KeyLanguage          = "language"
	KeyExportDirectory   = "export_directory"
	KeyFilterMode        = "filter_mode"
	KeyCaseSensitive     = "case_sensitive"
	KeyRevealAfterExport = "reveal_after_export"
	KeyThemeIcons        = "theme_icons"
	KeyMountsFile        = "mounts_file"
	KeySave              = "save"
	KeyCancel            = "cancel"
	KeyBrowse            = "browse"
	KeySaveResource      = "save_resource"
	KeyReplaceFile       = "replace_file"
	KeyReplaceFileQuery  = "replace_file_query"
	KeySettingsSaved     = "settings_saved"
	KeyShowingResources  = "showing_resources"
	KeyCopied            = "copied"
	KeyExporting         = "exporting"
	KeyExported          = "exported"
	KeyExportFailed      = "export_failed"
	KeyRefreshFailed     = "refresh_failed"
	KeyNoResources       = "no_resources"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	l.texts["en"] = map[string]string{
		KeyAppTitle:          "Resource Browser",
		KeySearch:            "Search resources (wildcards: * ? [ ])",
		KeyCopyPath:          "Copy Path",
		KeyExport:            "Export...",
		KeyRefresh:           "Refresh",
		KeySettings:          "Settings",
		KeyFile:              "File",
		KeyEdit:              "Edit",
		KeyLanguage:          "Language",
		KeyExportDirectory:   "Export Directory",
		KeyFilterMode:        "Filter Mode",
		KeyCaseSensitive:     "Case-sensitive search",
		KeyRevealAfterExport: "Show exported file in file manager",
		KeyThemeIcons:        "Include toolkit theme icons",
		KeyMountsFile:        "Mounts File (YAML)",
		KeySave:              "Save",
		KeyCancel:            "Cancel",
		KeyBrowse:            "Browse",
		KeySaveResource:      "Save Image Resource",
		KeyReplaceFile:       "Replace File",
		KeyReplaceFileQuery:  "%s already exists. Do you want to replace it?",
		KeySettingsSaved:     "Settings saved successfully!",
		KeyShowingResources:  "Showing %d of %d resources",
		KeyCopied:            "Copied %s",
		KeyExporting:         "Exporting %s...",
		KeyExported:          "Exported to %s",
		KeyExportFailed:      "Export failed",
		KeyRefreshFailed:     "Could not list resources",
		KeyNoResources:       "No resources",
	}

	l.texts["ru"] = map[string]string{
		KeyAppTitle:          "Обозреватель ресурсов",
		KeySearch:            "Поиск ресурсов (шаблоны: * ? [ ])",
		KeyCopyPath:          "Копировать путь",
		KeyExport:            "Экспорт...",
		KeyRefresh:           "Обновить",
		KeySettings:          "Настройки",
		KeyFile:              "Файл",
		KeyEdit:              "Правка",
		KeyLanguage:          "Язык",
		KeyExportDirectory:   "Папка экспорта",
		KeyFilterMode:        "Режим фильтра",
		KeyCaseSensitive:     "Учитывать регистр",
		KeyRevealAfterExport: "Показать файл после экспорта",
		KeyThemeIcons:        "Показывать иконки темы",
		KeyMountsFile:        "Файл монтирования (YAML)",
		KeySave:              "Сохранить",
		KeyCancel:            "Отмена",
		KeyBrowse:            "Обзор",
		KeySaveResource:      "Сохранить изображение",
		KeyReplaceFile:       "Заменить файл",
		KeyReplaceFileQuery:  "%s уже существует. Заменить его?",
		KeySettingsSaved:     "Настройки успешно сохранены!",
		KeyShowingResources:  "Показано %d из %d ресурсов",
		KeyCopied:            "Скопировано: %s",
		KeyExporting:         "Экспорт %s...",
		KeyExported:          "Экспортировано в %s",
		KeyExportFailed:      "Ошибка экспорта",
		KeyRefreshFailed:     "Не удалось получить список ресурсов",
		KeyNoResources:       "Нет ресурсов",
	}

	l.texts["pt"] = map[string]string{
		KeyAppTitle:          "Navegador de Recursos",
		KeySearch:            "Pesquisar recursos (curingas: * ? [ ])",
		KeyCopyPath:          "Copiar Caminho",
		KeyExport:            "Exportar...",
		KeyRefresh:           "Atualizar",
		KeySettings:          "Configurações",
		KeyFile:              "Arquivo",
		KeyEdit:              "Editar",
		KeyLanguage:          "Idioma",
		KeyExportDirectory:   "Diretório de Exportação",
		KeyFilterMode:        "Modo de Filtro",
		KeyCaseSensitive:     "Diferenciar maiúsculas",
		KeyRevealAfterExport: "Mostrar arquivo exportado",
		KeyThemeIcons:        "Incluir ícones do tema",
		KeyMountsFile:        "Arquivo de Montagens (YAML)",
		KeySave:              "Salvar",
		KeyCancel:            "Cancelar",
		KeyBrowse:            "Navegar",
		KeySaveResource:      "Salvar Imagem",
		KeyReplaceFile:       "Substituir Arquivo",
		KeyReplaceFileQuery:  "%s já existe. Deseja substituí-lo?",
		KeySettingsSaved:     "Configurações salvas com sucesso!",
		KeyShowingResources:  "Mostrando %d de %d recursos",
		KeyCopied:            "Copiado %s",
		KeyExporting:         "Exportando %s...",
		KeyExported:          "Exportado para %s",
		KeyExportFailed:      "Falha na exportação",
		KeyRefreshFailed:     "Não foi possível listar os recursos",
		KeyNoResources:       "Nenhum recurso",
	}
}
