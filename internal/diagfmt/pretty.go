package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"ccheck/internal/diag"
	"ccheck/internal/source"
)

type prettyLine struct {
	loc   string
	sev   diag.Severity
	label string
	msg   string
	notes []prettyLine
}

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
// <path>:<line>: <SEV> <CODE>: <Message>
// колонка с путём выравнивается по самой широкой (с учётом ширины рун),
// затем Notes с отступом.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	if bag == nil || fs == nil {
		return
	}
	items := bag.Items()
	lines := make([]prettyLine, 0, len(items))
	width := 0
	for i := range items {
		d := &items[i]
		line := prettyLine{
			loc:   location(fs, d.Primary, opts.PathMode),
			sev:   d.Severity,
			label: d.Code.ID(),
			msg:   d.Message,
		}
		if opts.ShowNotes {
			for _, n := range d.Notes {
				line.notes = append(line.notes, prettyLine{
					loc: location(fs, n.Span, opts.PathMode),
					msg: n.Msg,
				})
			}
		}
		width = max(width, runewidth.StringWidth(line.loc))
		lines = append(lines, line)
	}

	locColor := color.New(color.Bold)
	noteColor := color.New(color.FgHiBlack)
	codeColor := color.New(color.FgMagenta)
	for _, c := range []*color.Color{locColor, noteColor, codeColor} {
		setColor(c, opts.Color)
	}

	for _, line := range lines {
		pad := strings.Repeat(" ", width-runewidth.StringWidth(line.loc))
		sev := severityColor(line.sev)
		setColor(sev, opts.Color)
		fmt.Fprintf(w, "%s%s %s %s: %s\n",
			locColor.Sprint(line.loc), pad,
			sev.Sprint(line.sev.String()),
			codeColor.Sprint(line.label),
			line.msg,
		)
		for _, n := range line.notes {
			fmt.Fprintf(w, "  %s %s %s\n", noteColor.Sprint("note:"), n.loc, n.msg)
		}
	}
}

func location(fs *source.FileSet, span source.Span, mode PathMode) string {
	f := fs.Get(span.File)
	if f == nil {
		return "<unknown>:"
	}
	start, _ := fs.Resolve(span)
	return fmt.Sprintf("%s:%d:", formatPath(f, fs, mode), start.Line)
}

func severityColor(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return color.New(color.FgRed, color.Bold)
	case diag.SevWarning:
		return color.New(color.FgYellow, color.Bold)
	default:
		return color.New(color.FgCyan)
	}
}

func setColor(c *color.Color, on bool) {
	if on {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
}
