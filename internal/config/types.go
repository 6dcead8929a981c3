// Package config loads screen definition documents: named, reusable frame
// templates declared in YAML by the layers that own menus, message screens,
// and door-game art.
package config

import (
	"gopkg.in/yaml.v3"

	"github.com/retrowire/termframe/internal/ansi"
	"github.com/retrowire/termframe/internal/frame"
	"github.com/retrowire/termframe/internal/render"
)

// defaultPadding matches the engine's conventional one-cell padding.
const defaultPadding = 1

// Document represents a full screens file.
type Document struct {
	Version string   `yaml:"version" validate:"required,semver"`
	Name    string   `yaml:"name" validate:"required,min=1,max=100"`
	Screens []Screen `yaml:"screens" validate:"required,min=1,dive"`
}

// Screen declares one renderable screen: frame geometry, optional title, the
// content lines, and the variables that must be supplied at render time.
type Screen struct {
	ID         string       `yaml:"id" validate:"required,screen_id"`
	Width      int          `yaml:"width" validate:"required,min=5,max=500"`
	Style      string       `yaml:"style,omitempty" validate:"omitempty,oneof=single double"`
	Padding    int          `yaml:"-"`
	Title      string       `yaml:"title,omitempty" validate:"omitempty,max=200"`
	TitleColor string       `yaml:"title_color,omitempty" validate:"omitempty,color_name"`
	Lines      []ScreenLine `yaml:"lines" validate:"required,min=1,dive"`
	Variables  []string     `yaml:"variables,omitempty" validate:"omitempty,dive,required"`
}

// UnmarshalYAML decodes a screen and applies the padding default, which
// cannot be expressed with struct tags because zero is a legal value.
func (s *Screen) UnmarshalYAML(value *yaml.Node) error {
	type rawScreen struct {
		ID         string       `yaml:"id"`
		Width      int          `yaml:"width"`
		Style      string       `yaml:"style"`
		Padding    *int         `yaml:"padding"`
		Title      string       `yaml:"title"`
		TitleColor string       `yaml:"title_color"`
		Lines      []ScreenLine `yaml:"lines"`
		Variables  []string     `yaml:"variables"`
	}

	var raw rawScreen
	if err := value.Decode(&raw); err != nil {
		return err
	}

	s.ID = raw.ID
	s.Width = raw.Width
	s.Style = raw.Style
	s.Title = raw.Title
	s.TitleColor = raw.TitleColor
	s.Lines = raw.Lines
	s.Variables = append([]string(nil), raw.Variables...)
	if raw.Padding != nil {
		s.Padding = *raw.Padding
	} else {
		s.Padding = defaultPadding
	}
	return nil
}

// ScreenLine is one declared content row.
type ScreenLine struct {
	Text  string `yaml:"text"`
	Align string `yaml:"align,omitempty" validate:"omitempty,oneof=left center right"`
	Color string `yaml:"color,omitempty" validate:"omitempty,color_name"`
}

// Screen returns the screen with the given id, or false when absent.
func (d *Document) Screen(id string) (Screen, bool) {
	for _, s := range d.Screens {
		if s.ID == id {
			return s, true
		}
	}
	return Screen{}, false
}

// Template converts the declaration into a render template, applying each
// line's color. The document must have been validated first; unknown colors
// cannot occur here.
func (s Screen) Template() (render.Template, error) {
	lines := make([]frame.Line, 0, len(s.Lines))
	for _, l := range s.Lines {
		text := l.Text
		if l.Color != "" {
			colored, err := ansi.Colorize(text, l.Color)
			if err != nil {
				return render.Template{}, err
			}
			text = colored
		}
		lines = append(lines, frame.Line{Text: text, Align: parseAlignment(l.Align)})
	}

	return render.Template{
		Width:      s.Width,
		Style:      parseStyle(s.Style),
		Padding:    s.Padding,
		Title:      s.Title,
		TitleColor: s.TitleColor,
		Content:    lines,
		Variables:  append([]string(nil), s.Variables...),
	}, nil
}

func parseStyle(s string) frame.Style {
	if s == "double" {
		return frame.StyleDouble
	}
	return frame.StyleSingle
}

func parseAlignment(s string) frame.Alignment {
	switch s {
	case "center":
		return frame.AlignCenter
	case "right":
		return frame.AlignRight
	default:
		return frame.AlignLeft
	}
}
