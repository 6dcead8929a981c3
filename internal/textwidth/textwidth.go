// Package textwidth computes the visual width of strings destined for
// monospace terminal cells. Widths are measured after escape sequences are
// removed: a color code occupies zero cells, CJK and emoji code points occupy
// two, combining marks occupy none.
//
// Width classification follows github.com/mattn/go-runewidth. Exact two-cell
// rendering of emoji on non-monospace surfaces (such as a browser canvas) is
// a known, accepted limitation.
package textwidth

import (
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"

	"github.com/retrowire/termframe/internal/ansi"
)

// Ellipsis is the default tail appended to truncated text.
const Ellipsis = "..."

// Width returns the number of monospace cells s occupies once escape
// sequences are stripped.
func Width(s string) int {
	return runewidth.StringWidth(ansi.Strip(s))
}

// Fits reports whether s occupies at most width cells.
func Fits(s string, width int) bool {
	return Width(s) <= width
}

// Truncate shortens s to at most width visible cells, appending the default
// ellipsis when truncation occurs.
func Truncate(s string, width int) string {
	return TruncateEllipsis(s, width, Ellipsis)
}

// TruncateEllipsis shortens s to at most width visible cells. Escape
// sequences are copied through intact and never cut mid-sequence; only
// visible text is dropped. When truncation occurs the ellipsis is appended,
// itself shortened if width is smaller than the ellipsis. The result's
// visible width never exceeds width; a zero or negative width yields the
// empty string.
func TruncateEllipsis(s string, width int, ellipsis string) string {
	if width <= 0 {
		return ""
	}
	if Fits(s, width) {
		return s
	}

	tail := ellipsis
	tailWidth := runewidth.StringWidth(tail)
	if tailWidth > width {
		tail = runewidth.Truncate(tail, width, "")
		tailWidth = runewidth.StringWidth(tail)
	}
	budget := width - tailWidth

	var b strings.Builder
	b.Grow(len(s))
	used := 0
	i := 0
	for i < len(s) {
		if start, end, found := ansi.NextSequence(s, i); found && start == i {
			b.WriteString(s[start:end])
			i = end
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		w := runewidth.RuneWidth(r)
		if used+w > budget {
			break
		}
		b.WriteString(s[i : i+size])
		used += w
		i += size
	}
	b.WriteString(tail)
	return b.String()
}
