package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jwalton/go-supportscolor"
	"github.com/mattn/go-runewidth"

	"github.com/vertti/cicheck/pkg/check"
)

const (
	green = "\033[32m"
	red   = "\033[31m"
	reset = "\033[0m"

	passGlyph = "✅"
	failGlyph = "❌"

	// minWidth is the label column width used when there are no results.
	minWidth = 10
)

// Printer writes the results table.
type Printer struct {
	Out   io.Writer
	Color bool
}

// New returns a Printer for out. Color is enabled when out is stdout
// and the terminal supports it, unless noColor is set.
func New(out io.Writer, noColor bool) *Printer {
	color := false
	if out == os.Stdout && !noColor {
		color = supportscolor.Stdout().SupportsColor
	}
	return &Printer{Out: out, Color: color}
}

// PrintResults prints a header, one aligned row per result and a blank line.
func (p *Printer) PrintResults(results []check.Result) {
	width := LabelWidth(results)

	fmt.Fprintln(p.Out)
	fmt.Fprintln(p.Out, "Results:")
	for _, r := range results {
		fmt.Fprintln(p.Out, p.formatRow(r, width))
	}
	fmt.Fprintln(p.Out)
}

func (p *Printer) formatRow(r check.Result, width int) string {
	glyph, color := failGlyph, red
	if r.OK() {
		glyph, color = passGlyph, green
	}

	label := padRight(r.Label, width)
	if p.Color {
		label = color + label + reset
	}
	return fmt.Sprintf("%s %s | %s", glyph, label, r.Action)
}

// LabelWidth returns the display width of the longest label,
// or 10 when results is empty.
func LabelWidth(results []check.Result) int {
	if len(results) == 0 {
		return minWidth
	}
	width := 0
	for _, r := range results {
		if w := runewidth.StringWidth(r.Label); w > width {
			width = w
		}
	}
	return width
}

// padRight pads s with spaces so its terminal display width reaches width.
func padRight(s string, width int) string {
	sw := runewidth.StringWidth(s)
	if sw >= width {
		return s
	}
	return s + strings.Repeat(" ", width-sw)
}
