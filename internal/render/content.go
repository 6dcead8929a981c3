package render

import "github.com/retrowire/termframe/internal/frame"

// Content is the closed set of renderable content kinds. The unexported
// method keeps the set sealed so Service.Render can match variants
// exhaustively; adding a kind means adding one variant here and one arm
// there.
type Content interface {
	content()
}

// FrameContent renders lines inside a bordered frame, optionally titled.
type FrameContent struct {
	Lines      []frame.Line
	Options    frame.Options
	Title      string
	TitleColor string
}

func (FrameContent) content() {}

// TextContent renders a single unframed line, optionally colorized.
type TextContent struct {
	Text  string
	Color string
}

func (TextContent) content() {}

// TemplateContent renders a template with its variable values.
type TemplateContent struct {
	Template Template
	Values   map[string]string
}

func (TemplateContent) content() {}
