// Package validate inspects already-rendered output and reports alignment and
// border defects with line-level diagnostics. The frame builder should never
// produce output that fails these checks; the package exists as the safety
// net behind that claim, and backs the analyze command for output produced
// elsewhere.
package validate

import (
	"fmt"

	"github.com/retrowire/termframe/internal/ansi"
	"github.com/retrowire/termframe/internal/frame"
	"github.com/retrowire/termframe/internal/textwidth"
)

// Result is the outcome of one check. Issues carries one entry per defect,
// naming the offending line index and the expected-versus-actual measurement
// or glyph. Width and Height describe the inspected block.
type Result struct {
	Valid  bool
	Issues []string
	Width  int
	Height int
}

// merge folds another result into r, keeping r's dimensions.
func (r Result) merge(other Result) Result {
	r.Issues = append(r.Issues, other.Issues...)
	r.Valid = len(r.Issues) == 0
	return r
}

// CheckWidth verifies that every line has visual width exactly want, escape
// sequences excluded.
func CheckWidth(lines []string, want int) Result {
	r := Result{Valid: true, Width: want, Height: len(lines)}
	for i, line := range lines {
		got := textwidth.Width(line)
		if got != want {
			r.Issues = append(r.Issues, fmt.Sprintf("line %d: width %d, expected %d", i, got, want))
		}
	}
	r.Valid = len(r.Issues) == 0
	return r
}

// CheckColorState verifies that no line ends with SGR state still active; an
// unreset color would bleed into whatever the terminal prints next.
func CheckColorState(lines []string) Result {
	r := Result{Valid: true, Height: len(lines)}
	for i, line := range lines {
		if ansi.LeavesStateOpen(line) {
			r.Issues = append(r.Issues, fmt.Sprintf("line %d: color state left open at end of line", i))
		}
	}
	r.Valid = len(r.Issues) == 0
	return r
}

// CheckBorders verifies the border glyphs of a frame rendered with the given
// style: corner glyphs on the first and last lines, vertical edges on every
// content line, and an unbroken horizontal fill on the bottom border. The top
// border's interior is not checked against the fill glyph because it may
// carry an embedded title.
func CheckBorders(lines []string, style frame.Style) Result {
	r := Result{Valid: true, Height: len(lines)}
	if len(lines) > 0 {
		r.Width = textwidth.Width(lines[0])
	}
	if len(lines) < 2 {
		r.Issues = append(r.Issues, fmt.Sprintf("frame has %d lines, expected at least 2 for borders", len(lines)))
		r.Valid = false
		return r
	}

	topLeft, topRight, bottomLeft, bottomRight, horizontal, vertical := frame.Glyphs(style)

	top := []rune(ansi.Strip(lines[0]))
	r.Issues = checkEdgeGlyph(r.Issues, 0, top, topLeft, topRight)

	last := len(lines) - 1
	bottom := []rune(ansi.Strip(lines[last]))
	r.Issues = checkEdgeGlyph(r.Issues, last, bottom, bottomLeft, bottomRight)
	for _, g := range interior(bottom) {
		if string(g) != horizontal {
			r.Issues = append(r.Issues,
				fmt.Sprintf("line %d: bottom border glyph %q, expected %q", last, string(g), horizontal))
			break
		}
	}

	for i := 1; i < last; i++ {
		row := []rune(ansi.Strip(lines[i]))
		r.Issues = checkEdgeGlyph(r.Issues, i, row, vertical, vertical)
	}

	r.Valid = len(r.Issues) == 0
	return r
}

// checkEdgeGlyph appends defects when a stripped line does not begin and end
// with the expected glyphs.
func checkEdgeGlyph(issues []string, lineIdx int, runes []rune, wantFirst, wantLast string) []string {
	if len(runes) < 2 {
		return append(issues, fmt.Sprintf("line %d: too short for border glyphs", lineIdx))
	}
	if string(runes[0]) != wantFirst {
		issues = append(issues,
			fmt.Sprintf("line %d: first glyph %q, expected %q", lineIdx, string(runes[0]), wantFirst))
	}
	if string(runes[len(runes)-1]) != wantLast {
		issues = append(issues,
			fmt.Sprintf("line %d: last glyph %q, expected %q", lineIdx, string(runes[len(runes)-1]), wantLast))
	}
	return issues
}

// interior returns the runes between a border line's two corners.
func interior(runes []rune) []rune {
	if len(runes) < 3 {
		return nil
	}
	return runes[1 : len(runes)-1]
}

// CheckFrame runs the full frame inspection: uniform width, taken from the
// first line, border integrity for the given style, and closed color state on
// every line.
func CheckFrame(lines []string, style frame.Style) Result {
	if len(lines) == 0 {
		return Result{Issues: []string{"frame has no lines"}}
	}
	want := textwidth.Width(lines[0])
	r := CheckWidth(lines, want)
	r = r.merge(CheckBorders(lines, style))
	return r.merge(CheckColorState(lines))
}
