package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"cppfqn/internal/diag"
	"cppfqn/internal/source"
)

type palette struct {
	err, warn, info *color.Color
	gutter, caret   *color.Color
	note            *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		err:    color.New(color.FgRed, color.Bold),
		warn:   color.New(color.FgYellow, color.Bold),
		info:   color.New(color.FgCyan, color.Bold),
		gutter: color.New(color.FgBlue, color.Bold),
		caret:  color.New(color.FgRed, color.Bold),
		note:   color.New(color.FgGreen),
	}
	for _, c := range []*color.Color{p.err, p.warn, p.info, p.gutter, p.caret, p.note} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) severity(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return p.err
	case diag.SevWarning:
		return p.warn
	default:
		return p.info
	}
}

// Pretty форматирует диагностики в человекочитаемый вид
// (ожидается bag.Sort() заранее). Для каждой диагностики печатает:
//
//	ERROR[SYN2002]: message
//	  --> sigs.txt:3:7
//	   |
//	 3 | three(
//	   |       ^
//
// затем Notes с подчёркиванием '-'.
func Pretty(w io.Writer, diags []diag.Diagnostic, src SourceFunc, opts PrettyOpts) error {
	pal := newPalette(opts.Color)
	for i := range diags {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if err := prettyOne(w, &diags[i], src, opts, pal); err != nil {
			return err
		}
	}
	return nil
}

func prettyOne(w io.Writer, d *diag.Diagnostic, src SourceFunc, opts PrettyOpts, pal palette) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s\n",
		pal.severity(d.Severity).Sprintf("%s[%s]", d.Severity, d.Code.ID()),
		d.Message)
	fmt.Fprintf(&b, "  %s %s\n", pal.gutter.Sprint("-->"), location(d))

	var text string
	ok := false
	if src != nil {
		text, ok = src(d.Path, d.Line)
	}
	if ok {
		lineNo := "-"
		if d.Line > 0 {
			lineNo = fmt.Sprint(d.Line)
		}
		pad := strings.Repeat(" ", len(lineNo))
		shown := clip(text, opts.Width)
		fmt.Fprintf(&b, " %s %s\n", pad, pal.gutter.Sprint("|"))
		fmt.Fprintf(&b, " %s %s %s\n", pal.gutter.Sprint(lineNo), pal.gutter.Sprint("|"), shown)
		fmt.Fprintf(&b, " %s %s %s\n", pad, pal.gutter.Sprint("|"), pal.caret.Sprint(underline(text, d.Primary, '^')))
		if opts.ShowNotes {
			for _, n := range d.Notes {
				fmt.Fprintf(&b, " %s %s %s %s\n", pad, pal.gutter.Sprint("|"),
					pal.note.Sprint(underline(text, n.Span, '-')), n.Msg)
			}
		}
	} else if opts.ShowNotes {
		for _, n := range d.Notes {
			fmt.Fprintf(&b, "  %s note: %s (at %d)\n", pal.gutter.Sprint("="), n.Msg, n.Span.Start+1)
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func location(d *diag.Diagnostic) string {
	path := d.Path
	if path == "" {
		path = "<input>"
	}
	if d.Line == 0 {
		return fmt.Sprintf("%s:%d", path, d.Column())
	}
	return fmt.Sprintf("%s:%d:%d", path, d.Line, d.Column())
}

// underline returns the marker line for span inside text. Columns are
// display cells, so wide characters before the span shift the marker
// correctly.
func underline(text string, span source.Span, mark byte) string {
	start := min(int(span.Start), len(text))
	end := min(max(int(span.End), start), len(text))
	indent := runewidth.StringWidth(text[:start])
	width := max(runewidth.StringWidth(text[start:end]), 1)
	return strings.Repeat(" ", indent) + strings.Repeat(string(mark), width)
}

func clip(text string, width int) string {
	if width <= 0 || runewidth.StringWidth(text) <= width {
		return text
	}
	return runewidth.Truncate(text, width, "...")
}
