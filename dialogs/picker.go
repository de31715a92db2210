package dialogs

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/avivier/modalhost/core"
)

// Picker is a filterable chooser dialog with a typed item result. The
// filtering and ranking state machine lives in core.Picker.
type Picker struct {
	ctrl    core.Typed[core.PickerItem]
	title   string
	picker  *core.Picker
	focused bool
}

func NewPicker(host *core.Registry, title string, items []core.PickerItem) *Picker {
	p := &Picker{
		title:  title,
		picker: core.NewPicker(title, items),
	}
	p.ctrl = core.Wrap[core.PickerItem](core.New(host, p))
	return p
}

// Controller exposes the lifecycle controller, e.g. to set OnClosing.
func (p *Picker) Controller() *core.Dialog { return p.ctrl.Dialog }

// Show presents the dialog under the given host identifier.
func (p *Picker) Show(id string) (core.TypedCompletion[core.PickerItem], tea.Cmd) {
	return p.ctrl.Show(id)
}

func (p *Picker) Title() string { return p.title }

func (p *Picker) Update(msg tea.Msg) (core.Content, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}
	result := p.picker.HandleKey(keyMsg.String())
	switch result.Action {
	case core.PickerActionSelected:
		return p, p.ctrl.Close(result.Item)
	case core.PickerActionCancelled:
		return p, p.ctrl.Cancel()
	default:
		return p, nil
	}
}

func (p *Picker) View(width, height int) string {
	lines := make([]string, 0, 12)
	filter := p.picker.Query()
	if filter == "" {
		filter = "(type to filter)"
	}
	lines = append(lines, "Filter: "+filter, "")
	items := p.picker.Items()
	if len(items) == 0 {
		lines = append(lines, "  No matches")
	} else {
		for idx, item := range items {
			prefix := "  "
			if idx == p.picker.Cursor() {
				prefix = "> "
			}
			label := item.Label
			if item.Meta != "" {
				label += " - " + item.Meta
			}
			lines = append(lines, prefix+label)
		}
	}
	help := lipgloss.NewStyle().Faint(true).Render("enter select. esc cancel.")
	lines = append(lines, "", help)
	return strings.Join(lines, "\n")
}

// Element: the picker dialog is a focusable leaf.

func (p *Picker) Focusable() bool { return true }

func (p *Picker) Focused() bool { return p.focused }

func (p *Picker) Focus() tea.Cmd { p.focused = true; return nil }

func (p *Picker) Blur() { p.focused = false }

func (p *Picker) Children() []core.Element { return nil }
