package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Set via ldflags at build time.
var (
	version   = "0.1.0-dev"
	gitCommit = "none"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	defaults := DefaultConfig()

	root := &cobra.Command{
		Use:   "uimanifest",
		Short: "Generate component and design token manifests for a UI package",
		Long: `uimanifest inspects a component library's source tree and stylesheet and
writes two JSON documents for downstream tooling:

  <out>/manifest.json   published root components with capability flags and exports
  <out>/tokens.json     CSS custom properties grouped by token type

Paths are resolved against --root (the directory holding package.json).
Every flag can also be set in .uimanifest.yaml or as UIMANIFEST_* env vars.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.String("config", "", "config file (default is .uimanifest.yaml in --root or the working directory)")
	pf.String("root", defaults.Root, "UI package directory")
	pf.String("components", defaults.Components, "components directory, one subdirectory per component")
	pf.String("stories", defaults.Stories, "stories source directory")
	pf.String("stylesheet", defaults.Stylesheet, "stylesheet declaring the design tokens")
	pf.String("out", defaults.Out, "output directory")
	pf.String("catalog", defaults.Catalog, "catalog YAML (default is the embedded catalog)")
	pf.BoolP("quiet", "q", defaults.Quiet, "suppress progress and summary output")
	pf.String("log-level", defaults.Log.Level, "log level (debug, info, warn, error)")
	pf.String("log-format", defaults.Log.Format, "log format (text, json)")

	root.AddCommand(
		newManifestCmd(),
		newTokensCmd(),
		newServeCmd(),
		newInspectCmd(),
		newSetupCmd(),
		newVersionCmd(),
	)

	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of uimanifest",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "uimanifest %s\n", version)
			fmt.Fprintf(cmd.OutOrStdout(), "Git commit: %s\n", gitCommit)
		},
	}
}
