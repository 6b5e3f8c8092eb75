// Package main implements the resbrowser command: the resource browser window
// plus headless list, copy and export commands over the same namespace.
package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/ytget/resource-browser/assets"
	"github.com/ytget/resource-browser/internal/config"
	"github.com/ytget/resource-browser/internal/resource"
	"github.com/ytget/resource-browser/internal/ui"
)

// namespaceFlags select what goes into the resource namespace
type namespaceFlags struct {
	mountsFile string
	noTheme    bool
}

func (f *namespaceFlags) options() config.NamespaceOptions {
	return config.NamespaceOptions{
		Bundle:       assets.FS(),
		IncludeTheme: !f.noTheme,
		MountsFile:   f.mountsFile,
	}
}

func (f *namespaceFlags) namespace() (*resource.Namespace, error) {
	return config.BuildNamespace(f.options())
}

func main() {
	if err := fang.Execute(
		context.Background(),
		newRootCmd(),
		fang.WithVersion(version),
		fang.WithoutCompletions(),
		fang.WithoutManpage(),
	); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	flags := &namespaceFlags{}

	cmd := &cobra.Command{
		Use:   "resbrowser",
		Short: "Browse, copy and export image resources",
		Long: `resbrowser lists the image resources (png, ico, svg, bmp, cur) in the
application's resource namespace: the embedded bundle, the toolkit theme
icons and any directories mounted from a YAML mounts file.

Without a subcommand it opens the browser window.`,
		Example: `resbrowser list '*play*'
resbrowser copy icons/play.png
resbrowser export icons/play.png ~/Pictures/play.png`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGUI(flags)
		},
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&flags.mountsFile, "mounts", "", "YAML file with extra directories to mount")
	cmd.PersistentFlags().BoolVar(&flags.noTheme, "no-theme", false, "do not list toolkit theme icons")

	cmd.AddCommand(
		newGUICmd(flags),
		newListCmd(flags),
		newCopyCmd(flags),
		newExportCmd(flags),
	)
	return cmd
}

func newGUICmd(flags *namespaceFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "gui",
		Short: "Open the resource browser window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGUI(flags)
		},
	}
}

// runGUI opens the window. Flags that were set override the saved settings.
func runGUI(flags *namespaceFlags) error {
	bundle := assets.FS()
	providers := ui.BundleProviderFactory(bundle)
	if flags.mountsFile != "" || flags.noTheme {
		providers = func(*config.Settings) (resource.Provider, error) {
			return flags.namespace()
		}
	}

	ui.Run(version, bundle, providers)
	return nil
}
