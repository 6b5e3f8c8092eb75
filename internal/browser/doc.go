// Package browser maps list selection and context actions (copy, export) to
// their side effects. It has no toolkit dependency; the UI and the CLI plug in
// their own clipboard, save prompt and error reporting.
package browser
