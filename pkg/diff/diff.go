// Package diff produces readable unified diffs between rendered screen
// output and a golden file. Escape bytes are made visible before diffing so
// color-only regressions show up as text changes instead of invisible bytes.
package diff

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

const (
	maxDiffLines    = 2000
	truncateMessage = "... (diff truncated) ..."
)

// Screens compares expected and actual rendered output and returns a unified
// diff, or the empty string when they are byte-identical. CRLF and escape
// bytes are printed in visible form.
func Screens(expected, actual []byte, expectedLabel, actualLabel string) string {
	if bytes.Equal(expected, actual) {
		return ""
	}

	expectedStr := visible(string(expected))
	actualStr := visible(string(actual))

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(expectedStr, actualStr, false)
	diffs = dmp.DiffCleanupSemantic(diffs)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "--- %s\n", expectedLabel)
	fmt.Fprintf(&buf, "+++ %s\n", actualLabel)

	for _, d := range diffs {
		prefix := " "
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		}
		for _, line := range splitDiffLines(d.Text) {
			buf.WriteString(prefix)
			buf.WriteString(line)
			buf.WriteString("\n")
		}
	}

	result := buf.String()
	lines := strings.Split(result, "\n")
	if len(lines) > maxDiffLines {
		return strings.Join(lines[:maxDiffLines], "\n") + "\n" + truncateMessage + "\n"
	}
	return result
}

// visible rewrites control bytes so every difference is printable: escape
// bytes become \x1b and carriage returns become \r, while line feeds keep
// splitting lines.
func visible(s string) string {
	s = strings.ReplaceAll(s, "\x1b", `\x1b`)
	return strings.ReplaceAll(s, "\r", `\r`)
}

// splitDiffLines splits a diff fragment into lines, dropping the empty
// trailing element a terminating newline produces.
func splitDiffLines(text string) []string {
	lines := strings.Split(text, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" && strings.HasSuffix(text, "\n") {
		lines = lines[:len(lines)-1]
	}
	return lines
}
