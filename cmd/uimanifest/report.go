package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/gnana997/uimanifest/pkg/manifest"
	"github.com/gnana997/uimanifest/pkg/scanner"
)

var (
	green  = color.New(color.FgGreen)
	yellow = color.New(color.FgYellow)
	cyan   = color.New(color.FgCyan)
	red    = color.New(color.FgRed)
)

// printComponentReport prints the summary of a manifest run.
func printComponentReport(w io.Writer, path string, res *scanner.ComponentResult) {
	st := res.Stats
	t := res.Timing

	cyan.Fprintln(w, "\nComponent Summary:")
	fmt.Fprintf(w, "  • Components: %d (%d declared, %d found, %d rejected)\n",
		st.Total, t.EntitiesDeclared, t.EntitiesFound, t.ComponentsRejected)

	width := 0
	for _, c := range st.ByCategory {
		width = max(width, len(c.Category))
	}
	for _, c := range st.ByCategory {
		fmt.Fprintf(w, "      %-*s  %d\n", width, c.Category, c.Count)
	}

	fmt.Fprintf(w, "  • Tests: %d/%d  Stories: %d/%d  README: %d/%d  Variants: %d/%d\n",
		st.WithTests, st.Total, st.WithStories, st.Total,
		st.WithReadme, st.Total, st.WithVariants, st.Total)
	fmt.Fprintf(w, "  • Completeness: %.1f%%\n", st.Completeness)
	fmt.Fprintf(w, "  • Files read: %d in %dms\n", t.FilesRead, t.TotalTimeMs)

	if len(res.Missing) > 0 {
		names := make([]string, 0, len(res.Missing))
		for _, m := range res.Missing {
			names = append(names, m.Name)
		}
		yellow.Fprintf(w, "⚠ Missing: %s\n", strings.Join(names, ", "))
	}

	green.Fprintf(w, "\n✓ Wrote %s\n", path)
}

// printTokenReport prints the summary of a tokens run.
func printTokenReport(w io.Writer, path string, res *scanner.TokenResult) {
	st := res.Stats

	cyan.Fprintln(w, "\nToken Summary:")
	fmt.Fprintf(w, "  • Tokens: %d\n", st.Total)
	fmt.Fprintf(w, "  • Colors: %d\n", st.Colors)
	fmt.Fprintf(w, "  • Spacing: %d\n", st.Spacing)
	fmt.Fprintf(w, "  • Radius: %d\n", st.Radius)
	fmt.Fprintf(w, "  • Typography: %d\n", st.Typography)
	fmt.Fprintf(w, "  • Other: %d", st.Other)
	if n := st.ByType[manifest.TokenShadow]; n > 0 {
		fmt.Fprintf(w, " (%d shadow)", n)
	}
	fmt.Fprintln(w)

	if st.Total == 0 {
		yellow.Fprintln(w, "⚠ No custom properties found in the stylesheet")
	}

	green.Fprintf(w, "\n✓ Wrote %s\n", path)
}
