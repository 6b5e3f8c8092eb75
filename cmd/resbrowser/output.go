package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/ytget/resource-browser/internal/model"
)

// OutputFormat represents the output format type
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
	FormatYAML OutputFormat = "yaml"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	formatStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Width(5)
	sizeStyle   = lipgloss.NewStyle().Faint(true).Width(10).Align(lipgloss.Right)
	subtleStyle = lipgloss.NewStyle().Faint(true)
)

// listItem is one resource in list output
type listItem struct {
	Path   string `json:"path" yaml:"path"`
	Format string `json:"format" yaml:"format"`
	Size   int    `json:"size" yaml:"size"`
}

func toListItems(entries []model.ResourceEntry) []listItem {
	items := make([]listItem, len(entries))
	for i, e := range entries {
		items[i] = listItem{Path: e.Path, Format: e.Format(), Size: len(e.Data)}
	}
	return items
}

// outputResults writes data as json or yaml
func outputResults(w io.Writer, format OutputFormat, data interface{}) error {
	switch format {
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(data)

	case FormatYAML:
		yamlData, err := yaml.Marshal(data)
		if err != nil {
			return err
		}
		_, err = w.Write(yamlData)
		return err

	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

// writeListText prints one styled line per resource and a summary line
func writeListText(w io.Writer, items []listItem, total int) {
	if len(items) > 0 {
		fmt.Fprintln(w, headerStyle.Render("FORMAT")+"  "+headerStyle.Render("SIZE")+"        "+headerStyle.Render("PATH"))
	}
	for _, item := range items {
		fmt.Fprintf(w, "%s  %s  %s\n",
			formatStyle.Render(strings.ToUpper(item.Format)),
			sizeStyle.Render(formatBytes(int64(item.Size))),
			item.Path)
	}
	fmt.Fprintln(w, subtleStyle.Render(fmt.Sprintf("%d of %d resources", len(items), total)))
}

// formatBytes formats byte count in human-readable format
func formatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}
