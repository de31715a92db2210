package app

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/avivier/modalhost/core"
	"github.com/avivier/modalhost/internal/store"
	"github.com/avivier/modalhost/widgets"
)

// contactPane is the main host surface: a focusable contact table.
type contactPane struct {
	contacts []store.Contact
	table    table.Model
	focused  bool
}

func newContactPane() *contactPane {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Name", Width: 24},
			{Title: "Email", Width: 28},
			{Title: "Tag", Width: 12},
		}),
		table.WithFocused(true),
	)
	return &contactPane{table: t, focused: true}
}

func (p *contactPane) Focusable() bool { return true }
func (p *contactPane) Focused() bool   { return p.focused }

func (p *contactPane) Focus() tea.Cmd {
	p.focused = true
	p.table.Focus()
	return nil
}

func (p *contactPane) Blur() {
	p.focused = false
	p.table.Blur()
}

func (p *contactPane) Children() []core.Element { return nil }

func (p *contactPane) setContacts(contacts []store.Contact) {
	p.contacts = contacts
	rows := make([]table.Row, 0, len(contacts))
	for _, c := range contacts {
		tag := c.Tag
		if tag == "" {
			tag = "-"
		}
		rows = append(rows, table.Row{c.Name, c.Email, tag})
	}
	p.table.SetRows(rows)
	if cur := p.table.Cursor(); cur >= len(contacts) && len(contacts) > 0 {
		p.table.SetCursor(len(contacts) - 1)
	}
}

func (p *contactPane) moveCursor(delta int) {
	if delta < 0 {
		p.table.MoveUp(-delta)
		return
	}
	p.table.MoveDown(delta)
}

func (p *contactPane) current() (store.Contact, bool) {
	cur := p.table.Cursor()
	if cur < 0 || cur >= len(p.contacts) {
		return store.Contact{}, false
	}
	return p.contacts[cur], true
}

func (p *contactPane) Render(width, height int) string {
	p.table.SetWidth(max(20, width-2))
	p.table.SetHeight(max(3, height-2))
	content := "  No contacts yet. Press 'a' to add one."
	if len(p.contacts) > 0 {
		content = p.table.View()
	}
	pane := widgets.Pane{
		Title:    fmt.Sprintf("Contacts (%d)", len(p.contacts)),
		Content:  content,
		Selected: p.focused,
		Focused:  p.focused,
	}
	return pane.Render(width, height)
}
