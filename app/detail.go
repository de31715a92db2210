package app

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/avivier/modalhost/core"
	"github.com/avivier/modalhost/dialogs"
	"github.com/avivier/modalhost/internal/store"
)

// contactDetail is an app-specific dialog body. Pressing 'd' nests a confirm
// over the same session, so closing the confirm restores the detail view.
type contactDetail struct {
	typed   core.Typed[string]
	host    *core.Registry
	hostID  string
	contact store.Contact
	tags    []string
	focused bool
}

func newContactDetail(host *core.Registry, hostID string, contact store.Contact, tags []string) *contactDetail {
	d := &contactDetail{host: host, hostID: hostID, contact: contact, tags: tags}
	d.typed = core.Wrap[string](core.New(host, d))
	return d
}

func (d *contactDetail) Show() (core.TypedCompletion[string], tea.Cmd) {
	return d.typed.Show(d.hostID)
}

func (d *contactDetail) Title() string { return "Contact" }

func (d *contactDetail) Update(msg tea.Msg) (core.Content, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return d, nil
	}
	switch key.String() {
	case "d":
		confirm := dialogs.NewConfirm(d.host, "Delete contact", fmt.Sprintf("Delete %s?", d.contact.Name))
		done, cmd := confirm.Show(d.hostID)
		contact := d.contact
		return d, tea.Batch(cmd, done.Cmd(func(res core.Result[bool], err error) tea.Msg {
			return deleteDecidedMsg{contact: contact, confirmed: err == nil && res.Or(false)}
		}))
	case "t":
		picker := dialogs.NewPicker(d.host, "Assign tag", tagItems(d.tags))
		done, cmd := picker.Show(d.hostID)
		contact := d.contact
		return d, tea.Batch(cmd, done.Cmd(func(res core.Result[core.PickerItem], err error) tea.Msg {
			return tagPickedMsg{contact: contact, result: res, err: err}
		}))
	case "enter", "q":
		return d, d.typed.Cancel()
	}
	return d, nil
}

func (d *contactDetail) View(width, height int) string {
	tag := d.contact.Tag
	if tag == "" {
		tag = "(none)"
	}
	email := d.contact.Email
	if email == "" {
		email = "(none)"
	}
	lines := []string{
		"Name:  " + d.contact.Name,
		"Email: " + email,
		"Tag:   " + tag,
		"",
		"d delete   t tag   esc close",
	}
	return strings.Join(lines, "\n")
}

func (d *contactDetail) Focusable() bool          { return true }
func (d *contactDetail) Focused() bool            { return d.focused }
func (d *contactDetail) Blur()                    { d.focused = false }
func (d *contactDetail) Children() []core.Element { return nil }

func (d *contactDetail) Focus() tea.Cmd {
	d.focused = true
	return nil
}

func tagItems(tags []string) []core.PickerItem {
	seen := map[string]bool{}
	items := make([]core.PickerItem, 0, len(tags)+3)
	for _, t := range append([]string{"family", "work", "friend"}, tags...) {
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		items = append(items, core.PickerItem{ID: t, Label: t})
	}
	return items
}
