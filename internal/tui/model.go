// Package tui implements the interactive screen previewer: a list of the
// screens declared in a document on the left, the rendered output of the
// selected screen on the right, with the render target cycled by keypress.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/retrowire/termframe/internal/config"
	"github.com/retrowire/termframe/internal/render"
)

const listPaneWidth = 28

// screenItem adapts a screen declaration to the bubbles list.
type screenItem struct {
	screen config.Screen
}

func (i screenItem) Title() string { return i.screen.ID }

func (i screenItem) Description() string {
	return fmt.Sprintf("%d wide, %s border", i.screen.Width, styleLabel(i.screen.Style))
}

func (i screenItem) FilterValue() string { return i.screen.ID }

func styleLabel(s string) string {
	if s == "" {
		return "single"
	}
	return s
}

// Model is the previewer's bubbletea model.
type Model struct {
	svc       *render.Service
	list      list.Model
	viewport  viewport.Model
	target    render.Kind
	width     int
	height    int
	ready     bool
	renderErr string
}

// NewModel builds a previewer over the given document.
func NewModel(doc *config.Document, svc *render.Service) Model {
	items := make([]list.Item, 0, len(doc.Screens))
	for _, s := range doc.Screens {
		items = append(items, screenItem{screen: s})
	}

	l := list.New(items, list.NewDefaultDelegate(), listPaneWidth, 0)
	l.Title = "Screens"
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)

	return Model{
		svc:    svc,
		list:   l,
		target: render.Terminal,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(listPaneWidth, msg.Height-2)
		if !m.ready {
			m.viewport = viewport.New(m.contentWidth(), msg.Height-4)
			m.ready = true
		} else {
			m.viewport.Width = m.contentWidth()
			m.viewport.Height = msg.Height - 4
		}
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "tab", "t":
			m.target = nextTarget(m.target)
			m.refresh()
			return m, nil
		}
	}

	var listCmd, vpCmd tea.Cmd
	before := m.list.Index()
	m.list, listCmd = m.list.Update(msg)
	if m.list.Index() != before {
		m.refresh()
	}
	m.viewport, vpCmd = m.viewport.Update(msg)
	return m, tea.Batch(listCmd, vpCmd)
}

func nextTarget(k render.Kind) render.Kind {
	switch k {
	case render.Terminal:
		return render.Telnet
	case render.Telnet:
		return render.Web
	default:
		return render.Terminal
	}
}

func (m Model) contentWidth() int {
	w := m.width - listPaneWidth - 4
	if w < 20 {
		w = 20
	}
	return w
}

// refresh re-renders the selected screen into the viewport. Declared
// variables are filled with sample values so templates stay renderable
// without user input.
func (m *Model) refresh() {
	if !m.ready {
		return
	}
	item, ok := m.list.SelectedItem().(screenItem)
	if !ok {
		m.viewport.SetContent("no screens")
		return
	}

	m.renderErr = ""
	tpl, err := item.screen.Template()
	if err != nil {
		m.renderErr = err.Error()
		return
	}

	values := make(map[string]string, len(tpl.Variables))
	for _, name := range tpl.Variables {
		values[name] = "<" + name + ">"
	}

	out, err := m.svc.RenderTemplate(tpl, values, render.Context{Kind: m.target, Width: m.contentWidth()})
	if err != nil {
		m.renderErr = err.Error()
		return
	}
	m.viewport.SetContent(out)
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	body := m.viewport.View()
	if m.renderErr != "" {
		body = errorBannerStyle.Render(m.renderErr)
	}

	panes := lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.list.View(),
		screenPaneStyle.Render(body),
	)

	status := statusBarStyle.Render(
		fmt.Sprintf("target: %s  •  tab: cycle target  •  q: quit", m.target))

	return lipgloss.JoinVertical(
		lipgloss.Left,
		titleStyle.Render("termframe preview"),
		panes,
		status,
	)
}
