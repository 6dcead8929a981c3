package validate

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/retrowire/termframe/internal/ansi"
	"github.com/retrowire/termframe/internal/frame"
)

func buildFrame(t *testing.T, opts frame.Options, lines []frame.Line) []string {
	t.Helper()
	out, err := frame.Build(opts, lines)
	require.NoError(t, err)
	return out
}

func TestCheckWidthAccepts(t *testing.T) {
	t.Parallel()

	lines := buildFrame(t, frame.DefaultOptions(20, frame.StyleSingle), []frame.Line{{Text: "hello"}})
	r := CheckWidth(lines, 20)
	require.True(t, r.Valid)
	require.Empty(t, r.Issues)
	require.Equal(t, 20, r.Width)
	require.Equal(t, 3, r.Height)
}

func TestCheckWidthNamesOffendingLine(t *testing.T) {
	t.Parallel()

	lines := []string{"┌──┐", "│ab│", "│abc│", "└──┘"}
	r := CheckWidth(lines, 4)
	require.False(t, r.Valid)
	require.Len(t, r.Issues, 1)
	require.Equal(t, "line 2: width 5, expected 4", r.Issues[0])
}

func TestCheckWidthIgnoresEscapeSequences(t *testing.T) {
	t.Parallel()

	colored, err := ansi.Colorize("ab", "red")
	require.NoError(t, err)
	r := CheckWidth([]string{"│" + colored + "│"}, 4)
	require.True(t, r.Valid)
}

func TestCheckBordersAccepts(t *testing.T) {
	t.Parallel()

	for _, style := range []frame.Style{frame.StyleSingle, frame.StyleDouble} {
		lines := buildFrame(t, frame.DefaultOptions(12, style), []frame.Line{{Text: "ok"}})
		r := CheckBorders(lines, style)
		require.True(t, r.Valid, "style %s: %v", style, r.Issues)
	}
}

func TestCheckBordersNamesMalformedGlyph(t *testing.T) {
	t.Parallel()

	lines := []string{
		"X───┐",
		"│ a │",
		"└───┘",
	}
	r := CheckBorders(lines, frame.StyleSingle)
	require.False(t, r.Valid)
	require.Contains(t, r.Issues[0], `line 0: first glyph "X", expected "┌"`)
}

func TestCheckBordersFlagsWrongStyle(t *testing.T) {
	t.Parallel()

	lines := buildFrame(t, frame.DefaultOptions(10, frame.StyleSingle), []frame.Line{{Text: "x"}})
	r := CheckBorders(lines, frame.StyleDouble)
	require.False(t, r.Valid)
	require.NotEmpty(t, r.Issues)
}

func TestCheckBordersFlagsBrokenBottomFill(t *testing.T) {
	t.Parallel()

	lines := []string{
		"┌───┐",
		"│ a │",
		"└─x─┘",
	}
	r := CheckBorders(lines, frame.StyleSingle)
	require.False(t, r.Valid)
	require.Contains(t, r.Issues[0], `bottom border glyph "x"`)
}

func TestCheckBordersAllowsTitleInTopBorder(t *testing.T) {
	t.Parallel()

	lines, err := frame.BuildWithTitle("Lobby", frame.DefaultOptions(20, frame.StyleSingle), []frame.Line{{Text: "hi"}}, "cyan")
	require.NoError(t, err)
	r := CheckBorders(lines, frame.StyleSingle)
	require.True(t, r.Valid, "%v", r.Issues)
}

func TestCheckBordersTooFewLines(t *testing.T) {
	t.Parallel()

	r := CheckBorders([]string{"┌──┐"}, frame.StyleSingle)
	require.False(t, r.Valid)
	require.Contains(t, r.Issues[0], "expected at least 2")
}

func TestCheckFrame(t *testing.T) {
	t.Parallel()

	lines := buildFrame(t, frame.DefaultOptions(16, frame.StyleDouble), []frame.Line{
		{Text: "one"},
		{Text: "two", Align: frame.AlignRight},
	})
	r := CheckFrame(lines, frame.StyleDouble)
	require.True(t, r.Valid)
	require.Equal(t, 16, r.Width)
	require.Equal(t, 4, r.Height)
}

func TestCheckFrameAggregatesIssues(t *testing.T) {
	t.Parallel()

	lines := []string{
		"┌───┐",
		"│ too wide │",
		"└───┘",
	}
	r := CheckFrame(lines, frame.StyleSingle)
	require.False(t, r.Valid)
	require.Contains(t, r.Issues[0], "line 1: width 11, expected 5")
}

func TestCheckColorStateFlagsOpenLine(t *testing.T) {
	t.Parallel()

	r := CheckColorState([]string{
		"│ \x1b[31mred\x1b[0m │",
		"│ \x1b[32mgreen │",
	})
	require.False(t, r.Valid)
	require.Len(t, r.Issues, 1)
	require.Contains(t, r.Issues[0], "line 1: color state left open")
}

func TestCheckFrameFlagsOpenColorState(t *testing.T) {
	t.Parallel()

	lines := []string{
		"┌─────┐",
		"│ \x1b[34mhi  │",
		"└─────┘",
	}
	r := CheckFrame(lines, frame.StyleSingle)
	require.False(t, r.Valid)
	require.Len(t, r.Issues, 1)
	require.Contains(t, r.Issues[0], "line 1: color state left open")
}

func TestCheckFrameEmpty(t *testing.T) {
	t.Parallel()

	r := CheckFrame(nil, frame.StyleSingle)
	require.False(t, r.Valid)
	require.Contains(t, r.Issues[0], "no lines")
}
