package main

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gnana997/uimanifest/pkg/manifest"
)

const maxWidth = 80

func newInspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <name>",
		Short: "Show one component from the generated manifest",
		Long: `Look up a component in <out>/manifest.json by name, or by one of its exports
(e.g. ButtonProps resolves to Button), and print its capability flags and
exports.`,
		Args: cobra.ExactArgs(1),
		RunE: runInspect,
	}
	cmd.Flags().Bool("json", false, "print the component entry as JSON")
	return cmd
}

func runInspect(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	doc, err := manifest.LoadComponentManifest(filepath.Join(cfg.OutDir(), manifest.ComponentManifestFile))
	if err != nil {
		return fmt.Errorf("failed to load component manifest (run 'uimanifest manifest' first): %w", err)
	}
	qs := manifest.NewQueryService(doc, nil)

	comp, ok := qs.GetComponent(args[0])
	if !ok {
		return fmt.Errorf("component %q not found in %s", args[0], doc.Name)
	}

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(comp)
	}

	printComponentHuman(cmd.OutOrStdout(), comp, args[0])
	return nil
}

// printComponentHuman prints a human-readable component summary.
func printComponentHuman(w io.Writer, comp *manifest.ComponentMetadata, requestedName string) {
	header := comp.Name
	if requestedName != comp.Name {
		header = fmt.Sprintf("%s  (exported by %s)", requestedName, comp.Name)
	}
	cyan.Fprintf(w, "%s  [%s]\n", header, comp.Category)
	fmt.Fprintf(w, "  %s\n", comp.Path)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Capabilities")
	for _, f := range []struct {
		label string
		ok    bool
	}{
		{"variants", comp.HasVariants},
		{"tests", comp.HasTests},
		{"stories", comp.HasStories},
		{"readme", comp.HasReadme},
	} {
		if f.ok {
			green.Fprintf(w, "  ✓ %s\n", f.label)
		} else {
			yellow.Fprintf(w, "  ✗ %s\n", f.label)
		}
	}

	fmt.Fprintln(w)
	if len(comp.Exports) == 0 {
		fmt.Fprintln(w, "Exports  (none)")
		return
	}
	fmt.Fprintln(w, "Exports")
	printWrapped(w, strings.Join(comp.Exports, ", "), 2, maxWidth)
}

// printWrapped prints text word-wrapped at width with the given left indent.
func printWrapped(w io.Writer, text string, indent, width int) {
	words := strings.Fields(text)
	prefix := strings.Repeat(" ", indent)
	line := prefix
	for _, word := range words {
		if len(line)+len(word)+1 > width && line != prefix {
			fmt.Fprintln(w, line)
			line = prefix + word
		} else if line == prefix {
			line += word
		} else {
			line += " " + word
		}
	}
	if line != prefix {
		fmt.Fprintln(w, line)
	}
}
