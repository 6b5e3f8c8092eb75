package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/ytget/resource-browser/internal/browser"
	"github.com/ytget/resource-browser/internal/catalog"
	"github.com/ytget/resource-browser/internal/export"
	"github.com/ytget/resource-browser/internal/model"
	"github.com/ytget/resource-browser/internal/platform"
)

func newListCmd(flags *namespaceFlags) *cobra.Command {
	var (
		fuzzy      bool
		ignoreCase bool
		output     string
	)

	cmd := &cobra.Command{
		Use:   "list [text]",
		Short: "List image resources matching the search text",
		Long: `List image resources whose path matches "*text*". The text may contain
the wildcards * ? and [...]. With --fuzzy the text is matched fuzzily instead.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := loadList(flags)
			if err != nil {
				return err
			}

			if fuzzy {
				list.SetFilterMode(catalog.FilterFuzzy)
			}
			list.SetCaseSensitive(!ignoreCase)
			if len(args) > 0 {
				list.SetFilterText(args[0])
			}

			items := toListItems(list.Visible())
			if OutputFormat(output) == FormatText {
				writeListText(cmd.OutOrStdout(), items, list.Total())
				return nil
			}
			return outputResults(cmd.OutOrStdout(), OutputFormat(output), items)
		},
	}

	cmd.Flags().BoolVar(&fuzzy, "fuzzy", false, "match the text fuzzily")
	cmd.Flags().BoolVarP(&ignoreCase, "ignore-case", "i", false, "ignore case when matching")
	cmd.Flags().StringVarP(&output, "output", "o", string(FormatText), "output format: text, json or yaml")
	return cmd
}

func newCopyCmd(flags *namespaceFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "copy <path>",
		Short: "Copy a resource path to the clipboard",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !platform.ClipboardAvailable() {
				return errors.New("no clipboard utility available (install xclip, xsel or wl-clipboard)")
			}
			clip := platform.NewSystemClipboard()
			handler, err := newHandler(flags, clip, nil, nil)
			if err != nil {
				return err
			}
			return copyPath(cmd, handler, clip, args[0])
		},
	}
}

// clipboardWriter is a browser.Clipboard that can report write failures
type clipboardWriter interface {
	browser.Clipboard
	Err() error
}

func copyPath(cmd *cobra.Command, handler *browser.Handler, clip clipboardWriter, resourcePath string) error {
	if err := handler.SelectPath(resourcePath); err != nil {
		return err
	}
	if !handler.Copy() {
		return browser.ErrNoSelection
	}
	if err := clip.Err(); err != nil {
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Copied %s\n", resourcePath)
	return nil
}

func newExportCmd(flags *namespaceFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "export <path> <dest>",
		Short: "Export a resource to a file in its own format",
		Long: `Export decodes the resource and writes it to dest in the same image format.
If dest is a directory the resource's file name is used.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var exportErr error
			reporter := browser.ReporterFunc(func(err error) { exportErr = err })
			prompter := &fixedPrompter{dest: args[1]}

			handler, err := newHandler(flags, nil, prompter, reporter)
			if err != nil {
				return err
			}

			var written string
			handler.OnExported = func(task *model.ExportTask) {
				written = fmt.Sprintf("Exported %s to %s (%s in %s)", task.Source, task.Destination,
					formatBytes(task.Bytes), task.Duration().Round(time.Millisecond))
			}

			if err := handler.SelectPath(args[0]); err != nil {
				return err
			}
			handler.Export()
			if exportErr != nil {
				return exportErr
			}
			if written == "" {
				return errors.New("nothing was exported")
			}

			fmt.Fprintln(cmd.OutOrStdout(), written)
			return nil
		},
	}
}

// fixedPrompter answers the save prompt with the destination given on the
// command line. A directory destination gets the suggested file name.
type fixedPrompter struct {
	dest string
}

func (p *fixedPrompter) PromptSave(req browser.SaveRequest, done func(path string)) {
	dest := p.dest
	if info, err := os.Stat(dest); err == nil && info.IsDir() {
		dest = filepath.Join(dest, req.FileName)
	}
	done(dest)
}

func loadList(flags *namespaceFlags) (*catalog.List, error) {
	ns, err := flags.namespace()
	if err != nil {
		return nil, err
	}

	list := catalog.NewList()
	if err := list.Refresh(ns); err != nil {
		return nil, err
	}
	return list, nil
}

func newHandler(flags *namespaceFlags, clip browser.Clipboard, prompter browser.SavePrompter, reporter browser.Reporter) (*browser.Handler, error) {
	list, err := loadList(flags)
	if err != nil {
		return nil, err
	}
	return browser.NewHandler(list, clip, prompter, export.NewService(), reporter), nil
}
