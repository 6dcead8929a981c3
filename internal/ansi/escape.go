// Package ansi implements the escape-sequence layer of the rendering engine:
// scanning and stripping SGR escape codes, applying the fixed eight-color
// palette, and translating escape-coded text into markup for web delivery.
package ansi

import "strings"

// Reset is the SGR sequence that clears all color and style state.
const Reset = "\x1b[0m"

const esc = '\x1b'

// NextSequence locates the first escape sequence at or after byte offset
// `from`, returning its byte bounds [start, end). An escape sequence is an
// ESC byte followed by a CSI body (`[` params final-byte) or a single
// follow-up byte for non-CSI escapes. A sequence whose terminator is missing
// extends to the end of the string: unterminated escapes are zero-width and
// consume everything that follows them.
func NextSequence(s string, from int) (start, end int, found bool) {
	if from < 0 {
		from = 0
	}
	idx := strings.IndexByte(s[from:], esc)
	if idx < 0 {
		return 0, 0, false
	}
	start = from + idx

	i := start + 1
	if i >= len(s) {
		return start, len(s), true
	}
	if s[i] != '[' {
		// Two-byte escape (ESC c, ESC 7, ...); consume the follow-up byte.
		return start, i + 1, true
	}

	i++
	for i < len(s) {
		b := s[i]
		// Parameter bytes 0x30-0x3F and intermediate bytes 0x20-0x2F.
		if b >= 0x20 && b <= 0x3F {
			i++
			continue
		}
		// Final byte 0x40-0x7E terminates the sequence.
		if b >= 0x40 && b <= 0x7E {
			return start, i + 1, true
		}
		// Malformed body: treat everything scanned so far as the sequence.
		return start, i, true
	}
	return start, len(s), true
}

// Strip removes every recognized escape sequence, returning only visible text.
func Strip(s string) string {
	if !strings.ContainsRune(s, esc) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	i := 0
	for i < len(s) {
		start, end, found := NextSequence(s, i)
		if !found {
			b.WriteString(s[i:])
			break
		}
		b.WriteString(s[i:start])
		i = end
	}
	return b.String()
}

// Contains reports whether s embeds at least one escape sequence.
func Contains(s string) bool {
	return strings.ContainsRune(s, esc)
}

// CountSequences returns the number of escape sequences embedded in s.
func CountSequences(s string) int {
	n := 0
	i := 0
	for i < len(s) {
		_, end, found := NextSequence(s, i)
		if !found {
			break
		}
		n++
		i = end
	}
	return n
}

// sgrBody returns the parameter portion of a CSI sequence when the bounds
// denote a complete SGR (final byte 'm'). ok is false for every other kind of
// sequence, including unterminated ones.
func sgrBody(s string, start, end int) (params string, ok bool) {
	if end-start < 3 || s[start+1] != '[' || s[end-1] != 'm' {
		return "", false
	}
	return s[start+2 : end-1], true
}

// isResetParam reports whether a single SGR parameter means "reset".
func isResetParam(p string) bool {
	return p == "" || p == "0" || p == "00"
}
