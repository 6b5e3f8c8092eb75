package browser

// Clipboard receives plain text
type Clipboard interface {
	SetContent(content string)
}

// SaveRequest describes the save prompt shown before an export
type SaveRequest struct {
	Name     string // resource being saved, shown in the prompt caption
	FileName string // suggested file name
	Ext      string // only files with this extension are offered
	Dir      string // starting directory, may be empty
}

// SavePrompter asks the user for an export destination. done is called with
// the chosen path, or an empty path when the prompt was dismissed.
type SavePrompter interface {
	PromptSave(req SaveRequest, done func(path string))
}

// Reporter shows export failures to the user
type Reporter interface {
	ReportError(err error)
}

// ReporterFunc adapts a plain function to the Reporter interface
type ReporterFunc func(err error)

// ReportError calls f
func (f ReporterFunc) ReportError(err error) {
	f(err)
}
