package app

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/avivier/modalhost/internal/store"
)

func loadContacts(repo *store.ContactRepo) tea.Cmd {
	return func() tea.Msg {
		contacts, err := repo.List(context.Background())
		return contactsLoadedMsg{contacts: contacts, err: err}
	}
}

// saveContact accepts "name" or "name <email>" from the add dialog.
func saveContact(repo *store.ContactRepo, raw string) tea.Cmd {
	return func() tea.Msg {
		name, email := splitNameEmail(raw)
		c := store.Contact{ID: uuid.NewString(), Name: name, Email: email}
		if err := repo.Upsert(context.Background(), c); err != nil {
			return contactSavedMsg{name: name, err: err}
		}
		return contactSavedMsg{name: name}
	}
}

func deleteContact(repo *store.ContactRepo, c store.Contact) tea.Cmd {
	return func() tea.Msg {
		if err := repo.Delete(context.Background(), c.ID); err != nil {
			return contactDeletedMsg{name: c.Name, err: err}
		}
		return contactDeletedMsg{name: c.Name}
	}
}

func assignTag(repo *store.ContactRepo, c store.Contact, tag string) tea.Cmd {
	return func() tea.Msg {
		if err := repo.SetTag(context.Background(), c.ID, tag); err != nil {
			return tagSavedMsg{name: c.Name, tag: tag, err: err}
		}
		return tagSavedMsg{name: c.Name, tag: tag}
	}
}

func splitNameEmail(raw string) (name, email string) {
	raw = strings.TrimSpace(raw)
	open := strings.LastIndex(raw, "<")
	if open < 0 || !strings.HasSuffix(raw, ">") {
		return raw, ""
	}
	name = strings.TrimSpace(raw[:open])
	email = strings.TrimSpace(raw[open+1 : len(raw)-1])
	if name == "" {
		name = email
	}
	return name, email
}
