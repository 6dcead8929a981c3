package ansi

import (
	"sort"
	"strings"

	"github.com/retrowire/termframe/pkg/errors"
)

// Color describes one entry of the fixed eight-color palette: its SGR
// sequence for byte-oriented targets and its hex value for markup targets.
type Color struct {
	Name string
	SGR  string
	Hex  string
}

// The classic CGA palette, which is what period terminal clients display for
// SGR 30-37.
var palette = map[string]Color{
	"black":   {Name: "black", SGR: "\x1b[30m", Hex: "#000000"},
	"red":     {Name: "red", SGR: "\x1b[31m", Hex: "#AA0000"},
	"green":   {Name: "green", SGR: "\x1b[32m", Hex: "#00AA00"},
	"yellow":  {Name: "yellow", SGR: "\x1b[33m", Hex: "#AA5500"},
	"blue":    {Name: "blue", SGR: "\x1b[34m", Hex: "#0000AA"},
	"magenta": {Name: "magenta", SGR: "\x1b[35m", Hex: "#AA00AA"},
	"cyan":    {Name: "cyan", SGR: "\x1b[36m", Hex: "#00AAAA"},
	"white":   {Name: "white", SGR: "\x1b[37m", Hex: "#AAAAAA"},
}

// paletteByCode maps SGR parameter strings ("30".."37") back to palette entries.
var paletteByCode = func() map[string]Color {
	m := make(map[string]Color, len(palette))
	for _, c := range palette {
		m[c.SGR[2:len(c.SGR)-1]] = c
	}
	return m
}()

// ColorNames returns the palette names in sorted order.
func ColorNames() []string {
	names := make([]string, 0, len(palette))
	for name := range palette {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsColorName reports whether name is one of the eight palette colors.
func IsColorName(name string) bool {
	_, ok := palette[name]
	return ok
}

// Colorize wraps text in the named color's SGR sequence, always terminating
// with a reset. Resets already present inside text are left alone; nesting is
// the caller's concern.
func Colorize(text, name string) (string, error) {
	c, ok := palette[name]
	if !ok {
		return "", errors.NewUnknownColorError(name)
	}
	return c.SGR + text + Reset, nil
}

// EnsureReset appends a reset sequence when s left a color or style active at
// its end, so no SGR state can leak past a line boundary. Strings without
// escape sequences are returned unchanged.
func EnsureReset(s string) string {
	if LeavesStateOpen(s) {
		return s + Reset
	}
	return s
}

// LeavesStateOpen reports whether s ends with SGR state still active, that
// is, a color or style was set and never reset before the end of the string.
func LeavesStateOpen(s string) bool {
	if !Contains(s) {
		return false
	}

	open := false
	i := 0
	for i < len(s) {
		start, end, found := NextSequence(s, i)
		if !found {
			break
		}
		if params, ok := sgrBody(s, start, end); ok {
			open = sgrOpensState(params)
		}
		i = end
	}
	return open
}

// sgrOpensState reports whether an SGR parameter list leaves state active:
// anything other than a trailing reset counts as open.
func sgrOpensState(params string) bool {
	open := false
	for _, p := range strings.Split(params, ";") {
		if isResetParam(p) {
			open = false
			continue
		}
		open = true
	}
	return open
}
