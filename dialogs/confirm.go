package dialogs

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/avivier/modalhost/core"
)

type confirmKeymap struct {
	yes     key.Binding
	no      key.Binding
	toggle  key.Binding
	confirm key.Binding
	cancel  key.Binding
}

func defaultConfirmKeymap() confirmKeymap {
	return confirmKeymap{
		yes:     key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "yes")),
		no:      key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "no")),
		toggle:  key.NewBinding(key.WithKeys("left", "right", "tab"), key.WithHelp("←/→", "switch")),
		confirm: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
		cancel:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

// Confirm is a yes/no dialog with a typed bool result. Cancelling yields
// an empty result, distinct from an explicit "no".
type Confirm struct {
	ctrl    core.Typed[bool]
	title   string
	prompt  string
	yes     bool
	focused bool
	keys    confirmKeymap
}

func NewConfirm(host *core.Registry, title, prompt string) *Confirm {
	c := &Confirm{
		title:  title,
		prompt: prompt,
		keys:   defaultConfirmKeymap(),
	}
	c.ctrl = core.Wrap[bool](core.New(host, c))
	return c
}

// Controller exposes the lifecycle controller, e.g. to set OnClosing.
func (c *Confirm) Controller() *core.Dialog { return c.ctrl.Dialog }

// Show presents the dialog under the given host identifier.
func (c *Confirm) Show(id string) (core.TypedCompletion[bool], tea.Cmd) {
	return c.ctrl.Show(id)
}

func (c *Confirm) Title() string { return c.title }

func (c *Confirm) Update(msg tea.Msg) (core.Content, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}
	switch {
	case key.Matches(keyMsg, c.keys.yes):
		return c, c.ctrl.Close(true)
	case key.Matches(keyMsg, c.keys.no):
		return c, c.ctrl.Close(false)
	case key.Matches(keyMsg, c.keys.toggle):
		c.yes = !c.yes
		return c, nil
	case key.Matches(keyMsg, c.keys.confirm):
		return c, c.ctrl.Close(c.yes)
	case key.Matches(keyMsg, c.keys.cancel):
		return c, c.ctrl.Cancel()
	}
	return c, nil
}

func (c *Confirm) View(width, height int) string {
	choice := func(label string, active bool) string {
		style := lipgloss.NewStyle().Padding(0, 2)
		if active {
			style = style.Reverse(true).Bold(true)
		}
		return style.Render(label)
	}
	buttons := lipgloss.JoinHorizontal(lipgloss.Center,
		choice("Yes", c.yes), "  ", choice("No", !c.yes))
	help := lipgloss.NewStyle().Faint(true).Render("y/n decide. enter confirm. esc cancel.")
	return lipgloss.JoinVertical(lipgloss.Left, c.prompt, "", buttons, "", help)
}

// Element: the confirm dialog is a focusable leaf.

func (c *Confirm) Focusable() bool { return true }

func (c *Confirm) Focused() bool { return c.focused }

func (c *Confirm) Focus() tea.Cmd { c.focused = true; return nil }

func (c *Confirm) Blur() { c.focused = false }

func (c *Confirm) Children() []core.Element { return nil }
