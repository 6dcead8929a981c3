package render

import (
	"fmt"
	"strings"

	"github.com/retrowire/termframe/internal/ansi"
	"github.com/retrowire/termframe/internal/frame"
	"github.com/retrowire/termframe/internal/logger"
	"github.com/retrowire/termframe/internal/validate"
	"github.com/retrowire/termframe/pkg/errors"
)

// Service renders content descriptions for a target context. It holds no
// mutable state: one instance can be shared by any number of concurrent
// callers, and every call is referentially transparent.
type Service struct {
	log       *logger.Logger
	selfCheck bool
}

// Options configures a Service. The zero value is usable: no logging, with
// the post-build self-check enabled.
type Options struct {
	Logger *logger.Logger
	// SkipSelfCheck disables the validator pass that runs after every frame
	// build. The builder's output should always pass it; disabling trades the
	// safety net for a little speed.
	SkipSelfCheck bool
}

// NewService constructs a rendering service.
func NewService(opts Options) *Service {
	return &Service{
		log:       opts.Logger.WithComponent("render"),
		selfCheck: !opts.SkipSelfCheck,
	}
}

// Render dispatches on the content kind. The variant set is sealed, so the
// switch is exhaustive.
func (s *Service) Render(content Content, ctx Context) (string, error) {
	switch c := content.(type) {
	case FrameContent:
		if c.Title != "" {
			return s.RenderFrameWithTitle(c.Title, c.Lines, c.Options, ctx, c.TitleColor)
		}
		return s.RenderFrame(c.Lines, c.Options, ctx)
	case TextContent:
		return s.RenderText(c.Text, c.Color, ctx)
	case TemplateContent:
		return s.RenderTemplate(c.Template, c.Values, ctx)
	default:
		return "", fmt.Errorf("unhandled content kind %T", content)
	}
}

// RenderFrame builds a bordered frame and finishes it for the context:
// markup conversion for web, self-check, and the context's line ending.
// Frames wider than the context budget fail with WidthExceededError before
// anything is built.
func (s *Service) RenderFrame(lines []frame.Line, opts frame.Options, ctx Context) (string, error) {
	if err := checkBudget(opts, ctx); err != nil {
		return "", err
	}
	built, err := frame.Build(opts, lines)
	if err != nil {
		return "", err
	}
	return s.finish(built, opts, ctx)
}

// RenderFrameWithTitle is RenderFrame with the title embedded in the top
// border.
func (s *Service) RenderFrameWithTitle(title string, lines []frame.Line, opts frame.Options, ctx Context, titleColor string) (string, error) {
	if err := checkBudget(opts, ctx); err != nil {
		return "", err
	}
	built, err := frame.BuildWithTitle(title, opts, lines, titleColor)
	if err != nil {
		return "", err
	}
	return s.finish(built, opts, ctx)
}

// RenderText renders one unframed line: colorized for byte-oriented targets,
// converted to markup for web. No line-ending handling applies.
func (s *Service) RenderText(text, color string, ctx Context) (string, error) {
	out := text
	if color != "" {
		colored, err := ansi.Colorize(text, color)
		if err != nil {
			return "", err
		}
		out = colored
	}
	// Text may already carry escapes of its own; close any open state so it
	// cannot leak into whatever follows this line.
	out = ansi.EnsureReset(out)
	if ctx.Kind == Web {
		out = ansi.ToHTML(out)
	}
	return out, nil
}

// RenderTemplate substitutes the supplied values into the template and
// renders the resulting frame. Every declared variable must be present in
// values. Substituted values can have arbitrary length, so alignment is
// re-validated after substitution like any other frame render.
func (s *Service) RenderTemplate(tpl Template, values map[string]string, ctx Context) (string, error) {
	if err := tpl.checkValues(values); err != nil {
		s.log.Error(err, "template render rejected")
		return "", err
	}

	lines := tpl.substitute(values)
	if tpl.Title != "" {
		return s.RenderFrameWithTitle(tpl.Title, lines, tpl.options(), ctx, tpl.TitleColor)
	}
	return s.RenderFrame(lines, tpl.options(), ctx)
}

// checkBudget enforces the context's width budget up front.
func checkBudget(opts frame.Options, ctx Context) error {
	if opts.Width > ctx.Width {
		return errors.NewWidthExceededError(opts.Width, ctx.Width)
	}
	return nil
}

// finish applies the shared tail of the frame pipeline. The self-check runs
// on the built lines before markup conversion: escape-aware width arithmetic
// is meaningless on markup, and the conversion changes no visible cell.
func (s *Service) finish(built []string, opts frame.Options, ctx Context) (string, error) {
	if s.selfCheck {
		r := validate.CheckFrame(built, opts.Style)
		if !r.Valid {
			err := errors.NewAlignmentError(r.Issues)
			s.log.Error(err, "self-check rejected built frame")
			return "", err
		}
		if r.Width > ctx.Width {
			return "", errors.NewWidthExceededError(r.Width, ctx.Width)
		}
	}

	out := built
	if ctx.Kind == Web {
		out = make([]string, len(built))
		for i, line := range built {
			out[i] = ansi.ToHTML(line)
		}
	}

	s.log.WithFields(map[string]any{
		"target": ctx.Kind.String(),
		"width":  opts.Width,
		"height": len(out),
	}).Debug("rendered frame")

	return strings.Join(out, ctx.LineEnding()), nil
}
