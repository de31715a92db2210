package dialogs

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/avivier/modalhost/core"
)

type inputKeymap struct {
	submit key.Binding
	cancel key.Binding
}

func defaultInputKeymap() inputKeymap {
	return inputKeymap{
		submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),
		cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

// Input is a single-line text entry dialog with a typed string result.
// Submitting an empty value cancels instead.
type Input struct {
	ctrl  core.Typed[string]
	title string
	input textinput.Model
	keys  inputKeymap
}

func NewInput(host *core.Registry, title, prompt, placeholder, initial string) *Input {
	ti := textinput.New()
	ti.Prompt = prompt
	ti.Placeholder = placeholder
	ti.CharLimit = 128
	ti.Width = 40
	if initial != "" {
		ti.SetValue(initial)
	}
	d := &Input{
		title: title,
		input: ti,
		keys:  defaultInputKeymap(),
	}
	d.ctrl = core.Wrap[string](core.New(host, d))
	return d
}

// Controller exposes the lifecycle controller, e.g. to set OnClosing.
func (d *Input) Controller() *core.Dialog { return d.ctrl.Dialog }

// Show presents the dialog under the given host identifier.
func (d *Input) Show(id string) (core.TypedCompletion[string], tea.Cmd) {
	return d.ctrl.Show(id)
}

// Value returns the current buffer, trimmed.
func (d *Input) Value() string { return strings.TrimSpace(d.input.Value()) }

func (d *Input) Title() string { return d.title }

func (d *Input) Update(msg tea.Msg) (core.Content, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, d.keys.submit):
			value := d.Value()
			if value == "" {
				return d, d.ctrl.Cancel()
			}
			return d, d.ctrl.Close(value)
		case key.Matches(keyMsg, d.keys.cancel):
			return d, d.ctrl.Cancel()
		}
	}
	var cmd tea.Cmd
	d.input, cmd = d.input.Update(msg)
	return d, cmd
}

func (d *Input) View(width, height int) string {
	help := lipgloss.NewStyle().Faint(true).Render("enter submit. esc cancel.")
	return lipgloss.JoinVertical(lipgloss.Left, d.input.View(), "", help)
}

// Element: the input dialog is a focusable leaf backed by the textinput.

func (d *Input) Focusable() bool { return true }

func (d *Input) Focused() bool { return d.input.Focused() }

func (d *Input) Focus() tea.Cmd { return d.input.Focus() }

func (d *Input) Blur() { d.input.Blur() }

func (d *Input) Children() []core.Element { return nil }
