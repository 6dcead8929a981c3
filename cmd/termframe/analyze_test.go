package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/retrowire/termframe/internal/frame"
)

func writeArt(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestAnalyzeCommandConsistentFrame(t *testing.T) {
	lines, err := frame.Build(frame.DefaultOptions(30, frame.StyleSingle), []frame.Line{
		{Text: "Welcome aboard"},
		{Text: "Enjoy your stay", Align: frame.AlignCenter},
	})
	require.NoError(t, err)
	path := writeArt(t, "welcome.ans", strings.Join(lines, "\n")+"\n")

	out, err := execute(t, "analyze", path)
	require.NoError(t, err)
	require.Contains(t, out, "width range: 30-30")
	require.Contains(t, out, "consistent width")
	require.Contains(t, out, "frame ok")
}

func TestAnalyzeCommandCRLFInput(t *testing.T) {
	lines, err := frame.Build(frame.DefaultOptions(20, frame.StyleDouble), []frame.Line{{Text: "hi"}})
	require.NoError(t, err)
	path := writeArt(t, "telnet.ans", strings.Join(lines, "\r\n")+"\r\n")

	out, err := execute(t, "analyze", path)
	require.NoError(t, err)
	require.Contains(t, out, "consistent width")
}

func TestAnalyzeCommandInconsistentWidth(t *testing.T) {
	path := writeArt(t, "broken.ans", "┌────┐\n│ abc │\n└────┘\n")

	out, err := execute(t, "analyze", path)
	require.Error(t, err)
	require.Contains(t, out, "INCONSISTENT WIDTH")
}

func TestAnalyzeCommandReportsEscapeCounts(t *testing.T) {
	path := writeArt(t, "colored.ans", "\x1b[31mred\x1b[0m\n")

	out, err := execute(t, "analyze", path)
	require.NoError(t, err)
	require.Contains(t, out, "ansi= 2")
	require.Contains(t, out, "visual=  3")
}

func TestAnalyzeCommandFrameDefects(t *testing.T) {
	// Uniform width but a broken bottom border glyph.
	path := writeArt(t, "defect.ans", "┌───┐\n│ a │\n└─x─┘\n")

	out, err := execute(t, "analyze", path)
	require.Error(t, err)
	require.Contains(t, out, "frame defects:")
	require.Contains(t, out, "bottom border glyph")
}

func TestAnalyzeCommandMissingFile(t *testing.T) {
	_, err := execute(t, "analyze", filepath.Join(t.TempDir(), "absent.ans"))
	require.Error(t, err)
}
