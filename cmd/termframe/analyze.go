package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/retrowire/termframe/internal/ansi"
	"github.com/retrowire/termframe/internal/frame"
	"github.com/retrowire/termframe/internal/textwidth"
	"github.com/retrowire/termframe/internal/validate"
)

type analyzeOptions struct {
	Files   []string
	Verbose bool
}

var analyzeCmdRunner = runAnalyze

func newAnalyzeCmd(root *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze <file>...",
		Short: "Inspect rendered output files for width and border defects",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return analyzeCmdRunner(cmd, analyzeOptions{Files: args, Verbose: root.verbose})
		},
	}
	return cmd
}

func runAnalyze(cmd *cobra.Command, opts analyzeOptions) error {
	out := cmd.OutOrStdout()
	defective := false

	for _, path := range opts.Files {
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		if !analyzeFile(out, path, string(data)) {
			defective = true
		}
	}

	if defective {
		return fmt.Errorf("inconsistent output detected")
	}
	return nil
}

// analyzeFile reports per-line measurements and the width range of one file,
// returning false when the file's non-empty lines are not uniform.
func analyzeFile(out io.Writer, path, data string) bool {
	fmt.Fprintf(out, "%s\n", headingStyle.Render("=== "+path+" ==="))

	lines := splitLines(data)
	minWidth, maxWidth := -1, -1
	for i, line := range lines {
		visible := textwidth.Width(line)
		stripped := ansi.Strip(line)
		fmt.Fprintf(out, "line %2d: raw=%3d visual=%3d ansi=%2d %s %s\n",
			i, len(line), visible, ansi.CountSequences(line),
			mutedStyle.Render("|"), preview(stripped))

		if stripped == "" {
			continue
		}
		if minWidth < 0 || visible < minWidth {
			minWidth = visible
		}
		if visible > maxWidth {
			maxWidth = visible
		}
	}

	if minWidth < 0 {
		fmt.Fprintln(out, mutedStyle.Render("empty file"))
		return true
	}

	fmt.Fprintf(out, "width range: %d-%d\n", minWidth, maxWidth)
	uniform := minWidth == maxWidth
	if uniform {
		fmt.Fprintln(out, okStyle.Render("consistent width"))
	} else {
		fmt.Fprintln(out, failStyle.Render(
			fmt.Sprintf("INCONSISTENT WIDTH: %d cell difference", maxWidth-minWidth)))
	}

	if style, ok := detectFrameStyle(lines); ok {
		r := validate.CheckFrame(nonEmpty(lines), style)
		if r.Valid {
			fmt.Fprintln(out, okStyle.Render(fmt.Sprintf("frame ok (%s, %dx%d)", style, r.Width, r.Height)))
		} else {
			uniform = false
			fmt.Fprintln(out, warnStyle.Render("frame defects:"))
			for _, issue := range r.Issues {
				fmt.Fprintf(out, "  %s\n", issue)
			}
		}
	}

	return uniform
}

// splitLines handles LF and CRLF files alike and drops the final empty
// element produced by a trailing terminator.
func splitLines(data string) []string {
	data = strings.ReplaceAll(data, "\r\n", "\n")
	lines := strings.Split(data, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines
}

func nonEmpty(lines []string) []string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if ansi.Strip(line) != "" {
			out = append(out, line)
		}
	}
	return out
}

// detectFrameStyle looks at the first non-empty line's first glyph to decide
// whether the file carries a frame and which border style it uses.
func detectFrameStyle(lines []string) (frame.Style, bool) {
	for _, line := range lines {
		stripped := []rune(ansi.Strip(line))
		if len(stripped) == 0 {
			continue
		}
		switch string(stripped[0]) {
		case "┌":
			return frame.StyleSingle, true
		case "╔":
			return frame.StyleDouble, true
		default:
			return frame.StyleSingle, false
		}
	}
	return frame.StyleSingle, false
}

// preview trims a stripped line for the per-line report.
func preview(s string) string {
	const max = 60
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
