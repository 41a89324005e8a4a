package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"ccheck/internal/diag"
	"ccheck/internal/diagfmt"
	"ccheck/internal/driver"
)

func renderReport(out io.Writer, report *driver.Report, flags checkFlags) error {
	pathMode := diagfmt.PathModeAuto
	if flags.fullPath {
		pathMode = diagfmt.PathModeAbsolute
	}
	switch flags.format {
	case "text":
		diagfmt.Pretty(out, report.Bag, report.FileSet, diagfmt.PrettyOpts{
			Color:     !color.NoColor,
			PathMode:  pathMode,
			ShowNotes: flags.withNotes,
		})
	case "short":
		output := diag.FormatShortDiagnostics(report.Bag.Items(), report.FileSet, flags.withNotes)
		if output != "" {
			fmt.Fprintln(out, output)
		}
	case "json":
		opts := diagfmt.JSONOpts{
			IncludePositions: true,
			PathMode:         pathMode,
			Max:              flags.maxDiagnostics,
			IncludeNotes:     flags.withNotes,
		}
		if err := diagfmt.JSON(out, report.Bag, report.FileSet, opts); err != nil {
			return fmt.Errorf("failed to format diagnostics: %w", err)
		}
	default:
		return fmt.Errorf("unknown format: %s", flags.format)
	}
	return nil
}

func printSummary(out io.Writer, s driver.Summary, fix bool) {
	verb := "need changes"
	count := s.Changed
	if fix {
		verb = "fixed"
		count = s.Written
	}
	line := fmt.Sprintf("%d files checked, %d %s, %d failed", s.Files, count, verb, s.Failed)
	if s.Cached > 0 {
		line += fmt.Sprintf(" (%d from cache)", s.Cached)
	}
	if s.Failed > 0 {
		line = color.New(color.FgRed, color.Bold).Sprint(line)
	} else {
		line = color.New(color.FgGreen).Sprint(line)
	}
	fmt.Fprintln(out, line)
}
