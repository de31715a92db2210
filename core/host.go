package core

import tea "github.com/charmbracelet/bubbletea"

// DefaultHost selects the singleton host surface when no identifier is
// given to Show.
const DefaultHost = ""

// Content is anything a session can display. Dialog implements Content by
// delegating to its body, so dialogs nest inside sessions transparently.
type Content interface {
	Title() string
	Update(msg tea.Msg) (Content, tea.Cmd)
	View(width, height int) string
}

// Activatable content is notified when it is attached as session content.
type Activatable interface {
	Activate() tea.Cmd
}

// Deactivatable content is notified when it is detached again.
type Deactivatable interface {
	Deactivate() tea.Cmd
}

// Session records that a host identifier currently has dialog content
// displayed. Its content slot is replaceable: a nested show substitutes a
// new dialog into it and the matching close restores what was there.
type Session struct {
	id         string
	content    Content
	completion *Completion
}

func (s *Session) ID() string { return s.id }

func (s *Session) Content() Content { return s.content }

// SetContent replaces the content slot, firing detach/attach lifecycle
// hooks on content that declares them. Only the dialog controller
// performing a nested show/close pair may call this.
func (s *Session) SetContent(c Content) tea.Cmd {
	var cmds []tea.Cmd
	if old, ok := s.content.(Deactivatable); ok {
		cmds = append(cmds, old.Deactivate())
	}
	s.content = c
	if next, ok := c.(Activatable); ok {
		cmds = append(cmds, next.Activate())
	}
	return tea.Batch(cmds...)
}

// Registry is the overlay host: it tracks open sessions by identifier and
// owns top-level presentation and closure. It is an explicit object so
// hosts can be constructed per program (and per test) instead of reaching
// for ambient state.
type Registry struct {
	surface  Element
	sessions map[string]*Session
}

// NewRegistry creates a host registry over the given application surface.
// The surface is the element tree focus is captured from and restored to;
// nil is allowed and disables focus bookkeeping.
func NewRegistry(surface Element) *Registry {
	return &Registry{
		surface:  surface,
		sessions: make(map[string]*Session),
	}
}

// Surface returns the application surface the registry was built over.
func (r *Registry) Surface() Element { return r.surface }

// SetSurface swaps the application surface. Hosts that build their
// element tree after the registry (the usual order in a Bubble Tea model)
// call this once during Init.
func (r *Registry) SetSurface(surface Element) { r.surface = surface }

// OpenSession returns the open session for id, or nil when the host has
// nothing displayed there. An open session is the signal that a show
// request must nest instead of presenting top-level.
func (r *Registry) OpenSession(id string) *Session {
	return r.sessions[id]
}

// Present opens a top-level session for id with the given content and
// returns its completion. Presenting over an already-open session
// replaces it; its completion is abandoned unresolved, so callers route
// through Dialog.Show, which checks for an open session first.
func (r *Registry) Present(content Content, id string) (*Completion, tea.Cmd) {
	s := &Session{id: id, completion: NewCompletion()}
	r.sessions[id] = s
	return s.completion, s.SetContent(content)
}

// CloseTopLevel closes the open session for id, resolving its completion
// with result. Closing an identifier with nothing open is a no-op.
func (r *Registry) CloseTopLevel(id string, result any) tea.Cmd {
	s := r.sessions[id]
	if s == nil {
		return nil
	}
	delete(r.sessions, id)
	cmd := s.SetContent(nil)
	s.completion.Resolve(result)
	return cmd
}
