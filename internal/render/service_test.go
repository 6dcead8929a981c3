package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/retrowire/termframe/internal/ansi"
	"github.com/retrowire/termframe/internal/frame"
	"github.com/retrowire/termframe/internal/textwidth"
	renderrors "github.com/retrowire/termframe/pkg/errors"
)

func newService(t *testing.T) *Service {
	t.Helper()
	return NewService(Options{})
}

func TestParseKind(t *testing.T) {
	t.Parallel()

	for _, kind := range []Kind{Terminal, Telnet, Web} {
		parsed, err := ParseKind(kind.String())
		require.NoError(t, err)
		require.Equal(t, kind, parsed)
	}

	_, err := ParseKind("gopher")
	require.Error(t, err)
}

func TestContextLineEnding(t *testing.T) {
	t.Parallel()

	require.Equal(t, "\n", Context{Kind: Terminal}.LineEnding())
	require.Equal(t, "\n", Context{Kind: Web}.LineEnding())
	require.Equal(t, "\r\n", Context{Kind: Telnet}.LineEnding())
}

func TestRenderFrameTerminal(t *testing.T) {
	t.Parallel()

	out, err := newService(t).RenderFrame(
		[]frame.Line{{Text: "Hello"}},
		frame.DefaultOptions(20, frame.StyleSingle),
		Context{Kind: Terminal, Width: 80},
	)
	require.NoError(t, err)

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 3)
	require.Equal(t, "│ Hello            │", lines[1])
	for _, line := range lines {
		require.Equal(t, 20, textwidth.Width(line))
	}
}

func TestRenderFrameTelnetUsesCRLFOnly(t *testing.T) {
	t.Parallel()

	out, err := newService(t).RenderFrame(
		[]frame.Line{{Text: "Hello"}},
		frame.DefaultOptions(20, frame.StyleDouble),
		Context{Kind: Telnet, Width: 80},
	)
	require.NoError(t, err)
	require.Equal(t, 2, strings.Count(out, "\r\n"))
	require.Equal(t, strings.Count(out, "\n"), strings.Count(out, "\r\n"))
}

func TestRenderFrameWebHasNoEscapeBytes(t *testing.T) {
	t.Parallel()

	colored, err := ansi.Colorize("Hello", "red")
	require.NoError(t, err)

	out, err := newService(t).RenderFrame(
		[]frame.Line{{Text: colored}},
		frame.DefaultOptions(20, frame.StyleSingle),
		Context{Kind: Web, Width: 80},
	)
	require.NoError(t, err)
	require.NotContains(t, out, "\x1b")
	require.Contains(t, out, `<span style="color: #AA0000">Hello</span>`)
	require.NotContains(t, out, "\r\n")
}

func TestRenderFrameWidthExceeded(t *testing.T) {
	t.Parallel()

	_, err := newService(t).RenderFrame(
		[]frame.Line{{Text: "x"}},
		frame.DefaultOptions(100, frame.StyleSingle),
		Context{Kind: Terminal, Width: 80},
	)

	var exceededErr *renderrors.WidthExceededError
	require.ErrorAs(t, err, &exceededErr)
	require.Equal(t, 100, exceededErr.FrameWidth)
	require.Equal(t, 80, exceededErr.ContextWidth)
}

func TestRenderFramePropagatesTooNarrow(t *testing.T) {
	t.Parallel()

	_, err := newService(t).RenderFrame(
		[]frame.Line{{Text: "x"}},
		frame.Options{Width: 3, Style: frame.StyleSingle, Padding: 1},
		Context{Kind: Terminal, Width: 80},
	)

	var narrowErr *renderrors.FrameTooNarrowError
	require.ErrorAs(t, err, &narrowErr)
}

func TestRenderFrameWithTitle(t *testing.T) {
	t.Parallel()

	out, err := newService(t).RenderFrameWithTitle(
		"Lobby",
		[]frame.Line{{Text: "hi"}},
		frame.DefaultOptions(24, frame.StyleDouble),
		Context{Kind: Terminal, Width: 80},
		"cyan",
	)
	require.NoError(t, err)
	lines := strings.Split(out, "\n")
	require.Contains(t, lines[0], "Lobby")
	for _, line := range lines {
		require.Equal(t, 24, textwidth.Width(line))
	}
}

func TestRenderText(t *testing.T) {
	t.Parallel()

	svc := newService(t)

	plain, err := svc.RenderText("ready", "", Context{Kind: Terminal, Width: 80})
	require.NoError(t, err)
	require.Equal(t, "ready", plain)

	colored, err := svc.RenderText("ready", "green", Context{Kind: Terminal, Width: 80})
	require.NoError(t, err)
	require.Equal(t, "\x1b[32mready\x1b[0m", colored)

	web, err := svc.RenderText("ready", "green", Context{Kind: Web, Width: 80})
	require.NoError(t, err)
	require.Equal(t, `<span style="color: #00AA00">ready</span>`, web)
	require.NotContains(t, web, "\x1b")

	_, err = svc.RenderText("ready", "teal", Context{Kind: Terminal, Width: 80})
	var colorErr *renderrors.UnknownColorError
	require.ErrorAs(t, err, &colorErr)
}

func TestRenderTextClosesOpenColorState(t *testing.T) {
	t.Parallel()

	out, err := newService(t).RenderText("\x1b[31malert", "", Context{Kind: Terminal, Width: 80})
	require.NoError(t, err)
	require.True(t, strings.HasSuffix(out, "\x1b[0m"))
}

func TestRenderFrameClosesOpenColorState(t *testing.T) {
	t.Parallel()

	out, err := newService(t).RenderFrame(
		[]frame.Line{{Text: "\x1b[31mred"}, {Text: "plain"}},
		frame.DefaultOptions(20, frame.StyleSingle),
		Context{Kind: Terminal, Width: 80},
	)
	require.NoError(t, err)

	for _, line := range strings.Split(out, "\n") {
		require.False(t, ansi.LeavesStateOpen(line), "line %q leaves color state open", line)
	}
}

func TestRenderTemplateMissingVariable(t *testing.T) {
	t.Parallel()

	tpl := Template{
		Width:     20,
		Style:     frame.StyleSingle,
		Padding:   1,
		Content:   []frame.Line{{Text: "Hello {{name}}"}},
		Variables: []string{"name", "node"},
	}

	_, err := newService(t).RenderTemplate(tpl, map[string]string{"name": "Ada"}, Context{Kind: Terminal, Width: 80})

	var missingErr *renderrors.MissingVariablesError
	require.ErrorAs(t, err, &missingErr)
	require.Equal(t, []string{"node"}, missingErr.Names)
}

func TestRenderTemplateWebKeepsUniformWidth(t *testing.T) {
	t.Parallel()

	tpl := Template{
		Width:     20,
		Style:     frame.StyleSingle,
		Padding:   1,
		Content:   []frame.Line{{Text: "Hello {{name}}"}},
		Variables: []string{"name"},
	}

	out, err := newService(t).RenderTemplate(tpl, map[string]string{"name": "Alexandria"}, Context{Kind: Web, Width: 80})
	require.NoError(t, err)
	require.NotContains(t, out, "\x1b")

	for _, line := range strings.Split(out, "\n") {
		require.Equal(t, 20, textwidth.Width(line))
	}
	// The substituted value pushed the line past the inner width; it must be
	// truncated, not overflowed.
	require.Contains(t, out, "...")
}

func TestRenderTemplateWithTitle(t *testing.T) {
	t.Parallel()

	tpl := Template{
		Width:      30,
		Style:      frame.StyleDouble,
		Padding:    1,
		Title:      "Mail",
		TitleColor: "yellow",
		Content:    []frame.Line{{Text: "From {{from}}", Align: frame.AlignCenter}},
		Variables:  []string{"from"},
	}

	out, err := newService(t).RenderTemplate(tpl, map[string]string{"from": "sysop"}, Context{Kind: Telnet, Width: 80})
	require.NoError(t, err)
	require.Contains(t, out, "Mail")
	require.Contains(t, out, "From sysop")
	require.Contains(t, out, "\r\n")
}

func TestRenderDispatchesAllContentKinds(t *testing.T) {
	t.Parallel()

	svc := newService(t)
	ctx := Context{Kind: Terminal, Width: 80}

	frameOut, err := svc.Render(FrameContent{
		Lines:   []frame.Line{{Text: "f"}},
		Options: frame.DefaultOptions(10, frame.StyleSingle),
	}, ctx)
	require.NoError(t, err)
	require.Contains(t, frameOut, "┌")

	titledOut, err := svc.Render(FrameContent{
		Lines:   []frame.Line{{Text: "f"}},
		Options: frame.DefaultOptions(16, frame.StyleSingle),
		Title:   "T",
	}, ctx)
	require.NoError(t, err)
	require.Contains(t, titledOut, "─ T ─")

	textOut, err := svc.Render(TextContent{Text: "t", Color: "blue"}, ctx)
	require.NoError(t, err)
	require.Equal(t, "\x1b[34mt\x1b[0m", textOut)

	tplOut, err := svc.Render(TemplateContent{
		Template: Template{
			Width:     12,
			Style:     frame.StyleSingle,
			Padding:   1,
			Content:   []frame.Line{{Text: "{{v}}"}},
			Variables: []string{"v"},
		},
		Values: map[string]string{"v": "x"},
	}, ctx)
	require.NoError(t, err)
	require.Contains(t, tplOut, "x")
}

func TestServiceSharedAcrossGoroutines(t *testing.T) {
	t.Parallel()

	svc := newService(t)
	ctx := Context{Kind: Terminal, Width: 80}
	opts := frame.DefaultOptions(20, frame.StyleSingle)

	want, err := svc.RenderFrame([]frame.Line{{Text: "same"}}, opts, ctx)
	require.NoError(t, err)

	type result struct {
		out string
		err error
	}
	done := make(chan result, 8)
	for i := 0; i < 8; i++ {
		go func() {
			out, renderErr := svc.RenderFrame([]frame.Line{{Text: "same"}}, opts, ctx)
			done <- result{out: out, err: renderErr}
		}()
	}
	for i := 0; i < 8; i++ {
		r := <-done
		require.NoError(t, r.err)
		require.Equal(t, want, r.out)
	}
}
