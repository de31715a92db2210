package core

import tea "github.com/charmbracelet/bubbletea"

// Dialog is the lifecycle controller attached to one presentable unit of
// dialog content. It decides whether a show request becomes a fresh
// top-level presentation or a nested substitution into an already-open
// session, and it owns the close protocol for both paths.
//
// A dialog is single-use per session: construct, Show once, Close once.
type Dialog struct {
	host   *Registry
	hostID string
	body   Content

	// OnClosing is a veto hook offered to the host surface: call it
	// before invoking Close and abort when it returns false. Close
	// itself never consults it.
	OnClosing func() bool

	prevFocus Element
	nested    *pendingNested
}

// pendingNested exists only while the dialog is displayed as a nested
// substitution. It ties the completion to the owning session and to the
// content that must be restored on close.
type pendingNested struct {
	session    *Session
	previous   Content
	completion *Completion
}

// New wraps body in a lifecycle controller bound to host.
func New(host *Registry, body Content) *Dialog {
	return &Dialog{host: host, body: body}
}

// Body returns the wrapped content.
func (d *Dialog) Body() Content { return d.body }

// Show presents the dialog under the given host identifier and returns
// the completion its eventual Close will resolve. When the identifier
// already has an open session the dialog nests: the session's current
// content is recorded, the dialog substitutes into the content slot, and
// close restores the recorded content.
//
// Precondition: the dialog has no completion pending. Calling Show again
// while one is pending abandons the old channel unresolved; the behavior
// is unspecified beyond that.
func (d *Dialog) Show(id string) (*Completion, tea.Cmd) {
	d.hostID = id
	if s := d.host.OpenSession(id); s != nil {
		c := NewCompletion()
		d.nested = &pendingNested{
			session:    s,
			previous:   s.Content(),
			completion: c,
		}
		return c, s.SetContent(d)
	}
	return d.host.Present(d, id)
}

// Close resolves the completion Show returned. A nil result means closed
// without a result. For a nested dialog the session's content is first
// restored to what it held before nesting; nil previous content means
// there is nothing to restore and the slot is left untouched. Resolution
// is synchronous: it completes before Close returns.
//
// Precondition: call Close exactly once per Show. A second Close no
// longer has nested bookkeeping and falls through to the top-level path,
// tearing down whatever session the identifier holds.
func (d *Dialog) Close(result any) tea.Cmd {
	if p := d.nested; p != nil {
		d.nested = nil
		var cmd tea.Cmd
		if p.previous != nil {
			cmd = p.session.SetContent(p.previous)
		}
		p.completion.Resolve(result)
		return cmd
	}
	return d.host.CloseTopLevel(d.hostID, result)
}

// Activate runs when the dialog is attached as session content: it
// captures the surface's focused element for later restoration and
// schedules deferred focus on the dialog's first focusable descendant.
// No descendant being focusable leaves focus unassigned.
func (d *Dialog) Activate() tea.Cmd {
	d.prevFocus = FocusedElement(d.host.Surface())
	if tree, ok := d.body.(Element); ok {
		if first := FirstFocusable(tree); first != nil {
			return RequestFocusDeferred(first)
		}
	}
	return nil
}

// Deactivate runs when the dialog detaches: best-effort restoration of
// the focus captured at activation. A stale or missing target is not an
// error.
func (d *Dialog) Deactivate() tea.Cmd {
	prev := d.prevFocus
	d.prevFocus = nil
	if prev == nil || !prev.Focusable() {
		return nil
	}
	return RequestFocus(prev)
}

// Content implementation: a dialog renders and routes as its body.

func (d *Dialog) Title() string {
	if d.body == nil {
		return ""
	}
	return d.body.Title()
}

func (d *Dialog) Update(msg tea.Msg) (Content, tea.Cmd) {
	if d.body == nil {
		return d, nil
	}
	next, cmd := d.body.Update(msg)
	if next != nil {
		d.body = next
	}
	return d, cmd
}

func (d *Dialog) View(width, height int) string {
	if d.body == nil {
		return ""
	}
	return d.body.View(width, height)
}
