package ansi

import (
	"fmt"
	"strings"
)

// ToHTML converts escape-coded text into markup safe for a web terminal
// surface. Each palette color change opens one inline-styled span, closing
// the previously open span first so spans never nest. A reset closes the open
// span, and a span still open at the end of the string is closed
// automatically. Every other escape sequence is dropped; no raw escape byte
// survives conversion. Visible text passes through verbatim; escaping of
// user-supplied literals is the caller's responsibility.
func ToHTML(s string) string {
	if !Contains(s) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 32)
	open := false
	i := 0
	for i < len(s) {
		start, end, found := NextSequence(s, i)
		if !found {
			b.WriteString(s[i:])
			break
		}
		b.WriteString(s[i:start])
		if params, ok := sgrBody(s, start, end); ok {
			open = writeSGR(&b, params, open)
		}
		i = end
	}
	if open {
		b.WriteString("</span>")
	}
	return b.String()
}

// writeSGR applies one SGR parameter list to the markup stream and returns
// whether a span is open afterwards. Parameters outside the palette (bold,
// bright colors, backgrounds) are dropped.
func writeSGR(b *strings.Builder, params string, open bool) bool {
	for _, p := range strings.Split(params, ";") {
		if isResetParam(p) {
			if open {
				b.WriteString("</span>")
				open = false
			}
			continue
		}
		c, ok := paletteByCode[p]
		if !ok {
			continue
		}
		if open {
			b.WriteString("</span>")
		}
		fmt.Fprintf(b, `<span style="color: %s">`, c.Hex)
		open = true
	}
	return open
}
