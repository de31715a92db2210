package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/avivier/modalhost/core"
	"github.com/avivier/modalhost/dialogs"
	"github.com/avivier/modalhost/internal/store"
)

func (m *Model) openAddDialog() tea.Cmd {
	in := dialogs.NewInput(m.host, "New contact", "Name or Name <email>", "Ada Lovelace <ada@example.org>", "")
	// A half-typed name should not vanish on a stray escape.
	in.Controller().OnClosing = func() bool { return in.Value() == "" }
	done, cmd := in.Show(HostMain)
	return tea.Batch(cmd, done.Cmd(func(res core.Result[string], err error) tea.Msg {
		return nameSubmittedMsg{result: res, err: err}
	}))
}

func (m *Model) openDetail() (tea.Model, tea.Cmd) {
	contact, ok := m.pane.current()
	if !ok {
		return *m, core.StatusCmd("Nothing selected")
	}
	d := newContactDetail(m.host, HostMain, contact, m.tags)
	m.detail = d
	done, cmd := d.Show()
	return *m, tea.Batch(cmd, done.Cmd(func(res core.Result[string], err error) tea.Msg {
		return detailClosedMsg{result: res, err: err}
	}))
}

func (m *Model) openTagPicker() tea.Cmd {
	contact, ok := m.pane.current()
	if !ok {
		return core.StatusCmd("Nothing selected")
	}
	picker := dialogs.NewPicker(m.host, "Assign tag", tagItems(m.tags))
	done, cmd := picker.Show(HostMain)
	return tea.Batch(cmd, done.Cmd(func(res core.Result[core.PickerItem], err error) tea.Msg {
		return tagPickedMsg{contact: contact, result: res, err: err}
	}))
}

func collectTags(contacts []store.Contact) []string {
	seen := map[string]bool{}
	tags := make([]string, 0, 4)
	for _, c := range contacts {
		if c.Tag == "" || seen[c.Tag] {
			continue
		}
		seen[c.Tag] = true
		tags = append(tags, c.Tag)
	}
	return tags
}
