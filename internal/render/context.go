// Package render is the engine's single entry point: it turns semantic
// content descriptions (frames, plain text, templates) into byte-exact output
// for a target environment. It composes the frame builder, the colorizer, and
// the validator; every render call is a pure function of its inputs.
package render

import "fmt"

// Kind identifies a target output environment.
type Kind int

const (
	// Terminal is a raw local terminal: escape sequences pass through,
	// lines end in LF.
	Terminal Kind = iota
	// Telnet is a line-oriented remote terminal: escape sequences pass
	// through, lines end in CRLF.
	Telnet
	// Web is a markup-safe surface: colors become inline-styled spans, no
	// raw escape byte survives, lines end in LF.
	Web
)

// String returns the kind's configuration spelling.
func (k Kind) String() string {
	switch k {
	case Telnet:
		return "telnet"
	case Web:
		return "web"
	default:
		return "terminal"
	}
}

// ParseKind converts a configuration spelling into a Kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "terminal":
		return Terminal, nil
	case "telnet":
		return Telnet, nil
	case "web":
		return Web, nil
	default:
		return Terminal, fmt.Errorf("unknown render target %q (want terminal, telnet, or web)", s)
	}
}

// Context describes the target environment for one render call: the delivery
// kind and the maximum visual width the output may occupy. Contexts are
// immutable values.
type Context struct {
	Kind  Kind
	Width int
}

// LineEnding returns the context's line terminator. Terminal and web output
// is LF-terminated; telnet requires CRLF. One output never mixes the two.
func (c Context) LineEnding() string {
	if c.Kind == Telnet {
		return "\r\n"
	}
	return "\n"
}
