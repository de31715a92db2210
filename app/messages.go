package app

import (
	"github.com/avivier/modalhost/core"
	"github.com/avivier/modalhost/internal/store"
)

type contactsLoadedMsg struct {
	contacts []store.Contact
	err      error
}

// nameSubmittedMsg carries the outcome of the add-contact input dialog.
type nameSubmittedMsg struct {
	result core.Result[string]
	err    error
}

type contactSavedMsg struct {
	name string
	err  error
}

type detailClosedMsg struct {
	result core.Result[string]
	err    error
}

// deleteDecidedMsg is produced when the nested confirm over the detail
// dialog resolves, whichever way.
type deleteDecidedMsg struct {
	contact   store.Contact
	confirmed bool
}

type contactDeletedMsg struct {
	name string
	err  error
}

type tagPickedMsg struct {
	contact store.Contact
	result  core.Result[core.PickerItem]
	err     error
}

type tagSavedMsg struct {
	name string
	tag  string
	err  error
}
