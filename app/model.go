package app

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/avivier/modalhost/core"
	"github.com/avivier/modalhost/internal/store"
)

// HostMain is the single modal host the contact browser runs its dialogs on.
const HostMain = core.DefaultHost

type Model struct {
	width  int
	height int

	host   *core.Registry
	keys   *KeyRegistry
	repo   *store.ContactRepo
	pane   *contactPane
	detail *contactDetail
	tags   []string

	status    string
	statusErr bool
	quitting  bool
}

func New(repo *store.ContactRepo) Model {
	pane := newContactPane()
	return Model{
		width:  100,
		height: 32,
		host:   core.NewRegistry(pane),
		keys:   NewKeyRegistry(DefaultKeyBindings()),
		repo:   repo,
		pane:   pane,
		status: "Ready",
	}
}

func (m Model) Init() tea.Cmd {
	return loadContacts(m.repo)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case core.FocusRequestMsg:
		if cur := core.FocusedElement(m.host.Surface()); cur != nil && cur != msg.Target {
			cur.Blur()
		}
		return m, core.RequestFocus(msg.Target)

	case core.StatusMsg:
		m.status = msg.Text
		m.statusErr = msg.IsErr
		return m, nil

	case contactsLoadedMsg:
		if msg.err != nil {
			return m, core.ErrorCmd(msg.err)
		}
		m.pane.setContacts(msg.contacts)
		m.tags = collectTags(msg.contacts)
		return m, nil

	case nameSubmittedMsg:
		if msg.err != nil {
			return m, core.ErrorCmd(msg.err)
		}
		raw, ok := msg.result.Get()
		if !ok {
			return m, core.StatusCmd("Add cancelled")
		}
		return m, saveContact(m.repo, raw)

	case contactSavedMsg:
		if msg.err != nil {
			return m, core.ErrorCmd(msg.err)
		}
		return m, tea.Batch(loadContacts(m.repo), core.StatusCmd("Added "+msg.name))

	case detailClosedMsg:
		m.detail = nil
		return m, nil

	case deleteDecidedMsg:
		if !msg.confirmed {
			return m, core.StatusCmd("Kept " + msg.contact.Name)
		}
		// The confirm already restored the detail view; close it too since
		// its subject is going away.
		cmds := []tea.Cmd{deleteContact(m.repo, msg.contact)}
		if m.detail != nil {
			cmds = append(cmds, m.detail.typed.Close("deleted"))
		}
		return m, tea.Batch(cmds...)

	case contactDeletedMsg:
		if msg.err != nil {
			return m, core.ErrorCmd(msg.err)
		}
		return m, tea.Batch(loadContacts(m.repo), core.StatusCmd("Deleted "+msg.name))

	case tagPickedMsg:
		if msg.err != nil {
			return m, core.ErrorCmd(msg.err)
		}
		item, ok := msg.result.Get()
		if !ok {
			return m, core.StatusCmd("Tag unchanged")
		}
		return m, assignTag(m.repo, msg.contact, item.ID)

	case tagSavedMsg:
		if msg.err != nil {
			return m, core.ErrorCmd(msg.err)
		}
		if m.detail != nil && m.detail.contact.Name == msg.name {
			m.detail.contact.Tag = msg.tag
		}
		return m, tea.Batch(loadContacts(m.repo), core.StatusCmd(fmt.Sprintf("Tagged %s as %s", msg.name, msg.tag)))

	case tea.KeyMsg:
		return m.updateKey(msg)
	}

	// Anything else goes to the open dialog, if there is one.
	if s := m.host.OpenSession(HostMain); s != nil && s.Content() != nil {
		_, cmd := s.Content().Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	if s := m.host.OpenSession(HostMain); s != nil && s.Content() != nil {
		if m.keys.IsAction(msg, "close", ScopeDialog) {
			if d, ok := s.Content().(*core.Dialog); ok {
				if d.OnClosing != nil && !d.OnClosing() {
					return m, core.StatusCmd("Unsaved input, submit or clear it first")
				}
				return m, d.Close(nil)
			}
		}
		_, cmd := s.Content().Update(msg)
		return m, cmd
	}

	switch {
	case m.keys.IsAction(msg, "quit", ScopeMain):
		m.quitting = true
		return m, tea.Quit
	case m.keys.IsAction(msg, "row-down", ScopeMain):
		m.pane.moveCursor(1)
		return m, nil
	case m.keys.IsAction(msg, "row-up", ScopeMain):
		m.pane.moveCursor(-1)
		return m, nil
	case m.keys.IsAction(msg, "reload", ScopeMain):
		return m, loadContacts(m.repo)
	case m.keys.IsAction(msg, "add-contact", ScopeMain):
		return m, m.openAddDialog()
	case m.keys.IsAction(msg, "open-detail", ScopeMain):
		return m.openDetail()
	case m.keys.IsAction(msg, "assign-tag", ScopeMain):
		return m, m.openTagPicker()
	}
	return m, nil
}
