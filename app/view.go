package app

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/avivier/modalhost/widgets"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	scope := ScopeMain
	if m.host.OpenSession(HostMain) != nil {
		scope = ScopeDialog
	}
	base := widgets.VStack{
		Widgets: []widgets.Widget{
			m.pane,
			statusBar{text: m.status, isErr: m.statusErr},
			footer{bindings: m.keys.BindingsForScope(scope)},
		},
		Ratios: []float64{float64(max(1, m.height-2)), 1, 1},
	}.Render(m.width, m.height)

	if s := m.host.OpenSession(HostMain); s != nil && s.Content() != nil {
		c := s.Content()
		body := c.View(dialogWidth(m.width), m.height-6)
		return widgets.RenderDialog(base, c.Title(), body, m.width, m.height)
	}
	return base
}

func dialogWidth(total int) int {
	w := total - 10
	if w > 64 {
		w = 64
	}
	return max(20, w)
}

type statusBar struct {
	text  string
	isErr bool
}

func (s statusBar) Render(width, height int) string {
	style := lipgloss.NewStyle().Foreground(widgets.ColorMuted)
	if s.isErr {
		style = lipgloss.NewStyle().Foreground(widgets.ColorError)
	}
	text := strings.ReplaceAll(s.text, "\n", " ")
	if text == "" {
		text = "Ready"
	}
	return style.Render(ansi.Truncate(text, max(1, width), ""))
}

type footer struct {
	bindings []KeyBinding
}

func (f footer) Render(width, height int) string {
	keyStyle := lipgloss.NewStyle().Foreground(widgets.ColorAccent).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(widgets.ColorMuted)
	parts := make([]string, 0, len(f.bindings))
	for _, b := range f.bindings {
		if len(b.Keys) == 0 {
			continue
		}
		kb := key.NewBinding(key.WithKeys(b.Keys...), key.WithHelp(b.Keys[0], b.Description))
		h := kb.Help()
		parts = append(parts, keyStyle.Render(h.Key)+" "+descStyle.Render(h.Desc))
	}
	line := strings.Join(parts, "  ")
	return ansi.Truncate(line, max(1, width), "")
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
