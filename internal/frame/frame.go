// Package frame builds bordered rectangles of terminal output. Every line of
// a built frame has the same visual width once escape sequences are stripped;
// that guarantee is the reason this package exists.
package frame

import (
	"strings"

	"github.com/retrowire/termframe/internal/ansi"
	"github.com/retrowire/termframe/internal/textwidth"
	"github.com/retrowire/termframe/pkg/errors"
)

// Alignment positions content within the frame's inner width.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// String returns the alignment's configuration spelling.
func (a Alignment) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "left"
	}
}

// Style selects the box-drawing glyph set for the frame border.
type Style int

const (
	StyleSingle Style = iota
	StyleDouble
)

// String returns the style's configuration spelling.
func (s Style) String() string {
	if s == StyleDouble {
		return "double"
	}
	return "single"
}

// borderSet holds the glyphs for one border style.
type borderSet struct {
	topLeft     string
	topRight    string
	bottomLeft  string
	bottomRight string
	horizontal  string
	vertical    string
}

var borders = map[Style]borderSet{
	StyleSingle: {
		topLeft: "┌", topRight: "┐",
		bottomLeft: "└", bottomRight: "┘",
		horizontal: "─", vertical: "│",
	},
	StyleDouble: {
		topLeft: "╔", topRight: "╗",
		bottomLeft: "╚", bottomRight: "╝",
		horizontal: "═", vertical: "║",
	},
}

// Glyphs returns the border glyph set for a style. The validator uses it to
// check rendered output against the style it was built with.
func Glyphs(style Style) (topLeft, topRight, bottomLeft, bottomRight, horizontal, vertical string) {
	b := borders[style]
	return b.topLeft, b.topRight, b.bottomLeft, b.bottomRight, b.horizontal, b.vertical
}

// Line is one row of frame content. Text may embed color escape sequences;
// they never count toward padding or truncation.
type Line struct {
	Text  string
	Align Alignment
}

// Options configures a frame's outer width, border style, and the space
// between border and content.
type Options struct {
	Width   int
	Style   Style
	Padding int
}

// DefaultOptions returns frame options with the conventional single cell of
// padding between border and content.
func DefaultOptions(width int, style Style) Options {
	return Options{Width: width, Style: style, Padding: 1}
}

// minWidth is the narrowest frame Options can describe: two border cells,
// padding on both sides, and one content cell.
func (o Options) minWidth() int {
	padding := o.Padding
	if padding < 0 {
		padding = 0
	}
	return 2 + 2*padding + 1
}

// innerWidth is the cell budget available to content text.
func (o Options) innerWidth() int {
	padding := o.Padding
	if padding < 0 {
		padding = 0
	}
	return o.Width - 2 - 2*padding
}

// Build produces the frame's lines: a top border, one row per content line,
// and a bottom border. Content wider than the inner width is truncated with
// an ellipsis; narrower content is padded with spaces per its alignment,
// measured by visible width so color codes never skew positioning. Stripped
// of escape sequences, every returned line is exactly Options.Width cells.
// A width below the structural minimum fails with FrameTooNarrowError and no
// partial frame.
func Build(opts Options, lines []Line) ([]string, error) {
	if opts.Width < opts.minWidth() {
		return nil, errors.NewFrameTooNarrowError(opts.Width, opts.minWidth())
	}

	b := borders[opts.Style]
	out := make([]string, 0, len(lines)+2)
	out = append(out, b.topLeft+strings.Repeat(b.horizontal, opts.Width-2)+b.topRight)
	for _, line := range lines {
		out = append(out, contentRow(opts, b, line))
	}
	out = append(out, b.bottomLeft+strings.Repeat(b.horizontal, opts.Width-2)+b.bottomRight)
	return out, nil
}

// BuildWithTitle is Build with the title embedded in the top border, as in
// ┌─ Title ────┐. The title is truncated if it cannot fit and may be
// colorized with one of the palette colors; either way the top border keeps
// the frame's exact width.
func BuildWithTitle(title string, opts Options, lines []Line, titleColor string) ([]string, error) {
	if opts.Width < opts.minWidth() {
		return nil, errors.NewFrameTooNarrowError(opts.Width, opts.minWidth())
	}

	b := borders[opts.Style]
	top, err := titleRow(title, opts, b, titleColor)
	if err != nil {
		return nil, err
	}

	out := make([]string, 0, len(lines)+2)
	out = append(out, top)
	for _, line := range lines {
		out = append(out, contentRow(opts, b, line))
	}
	out = append(out, b.bottomLeft+strings.Repeat(b.horizontal, opts.Width-2)+b.bottomRight)
	return out, nil
}

// contentRow renders one content line between vertical borders.
func contentRow(opts Options, b borderSet, line Line) string {
	padding := opts.Padding
	if padding < 0 {
		padding = 0
	}
	inner := opts.innerWidth()

	text := line.Text
	if !textwidth.Fits(text, inner) {
		text = textwidth.Truncate(text, inner)
	}
	// Whether truncated or not, content must never leave color state open at
	// the row boundary; it would bleed into the border and following lines.
	text = ansi.EnsureReset(text)

	gap := inner - textwidth.Width(text)
	var left, right int
	switch line.Align {
	case AlignRight:
		left = gap
	case AlignCenter:
		left = gap / 2
		right = gap - left
	default:
		right = gap
	}

	pad := strings.Repeat(" ", padding)
	return b.vertical + pad +
		strings.Repeat(" ", left) + text + strings.Repeat(" ", right) +
		pad + b.vertical
}

// titleRow embeds the title into a top border of exactly opts.Width cells.
func titleRow(title string, opts Options, b borderSet, titleColor string) (string, error) {
	// Leading corner, one horizontal, a space each side of the title, then at
	// least one trailing horizontal before the corner.
	room := opts.Width - 2 - 2 - 2
	if room < 1 {
		// No usable title room in a frame this narrow; fall back to a plain border.
		return b.topLeft + strings.Repeat(b.horizontal, opts.Width-2) + b.topRight, nil
	}

	text := title
	if !textwidth.Fits(text, room) {
		text = textwidth.Truncate(text, room)
	}
	visible := textwidth.Width(text)

	if titleColor != "" {
		colored, err := ansi.Colorize(text, titleColor)
		if err != nil {
			return "", err
		}
		text = colored
	} else {
		text = ansi.EnsureReset(text)
	}

	fill := opts.Width - 2 - 2 - visible - 2
	return b.topLeft + b.horizontal + " " + text + " " +
		strings.Repeat(b.horizontal, fill+1) + b.topRight, nil
}
