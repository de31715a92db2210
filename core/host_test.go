package core

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

type stubContent struct {
	title       string
	activated   int
	deactivated int
}

func (s *stubContent) Title() string                         { return s.title }
func (s *stubContent) Update(msg tea.Msg) (Content, tea.Cmd) { return s, nil }
func (s *stubContent) View(width, height int) string         { return s.title }
func (s *stubContent) Activate() tea.Cmd                     { s.activated++; return nil }
func (s *stubContent) Deactivate() tea.Cmd                   { s.deactivated++; return nil }

type stubElement struct {
	focusable bool
	focused   bool
	children  []Element
}

func (e *stubElement) Focusable() bool { return e.focusable }
func (e *stubElement) Focused() bool   { return e.focused }
func (e *stubElement) Focus() tea.Cmd  { e.focused = true; return nil }
func (e *stubElement) Blur()           { e.focused = false }

func (e *stubElement) Children() []Element { return e.children }

func TestOpenSessionNilWhenNothingPresented(t *testing.T) {
	r := NewRegistry(nil)
	if s := r.OpenSession(DefaultHost); s != nil {
		t.Fatalf("expected no open session, got %v", s)
	}
}

func TestPresentOpensSessionAndActivatesContent(t *testing.T) {
	r := NewRegistry(nil)
	content := &stubContent{title: "first"}

	completion, _ := r.Present(content, DefaultHost)
	if completion == nil {
		t.Fatalf("expected a completion from Present")
	}
	s := r.OpenSession(DefaultHost)
	if s == nil {
		t.Fatalf("expected an open session after Present")
	}
	if s.Content() != content {
		t.Fatalf("session content = %v, want presented content", s.Content())
	}
	if content.activated != 1 {
		t.Fatalf("activated = %d, want 1", content.activated)
	}
}

func TestSessionsAreIndependentPerIdentifier(t *testing.T) {
	r := NewRegistry(nil)
	r.Present(&stubContent{title: "a"}, "left")

	if r.OpenSession("right") != nil {
		t.Fatalf("identifier routing leaked across hosts")
	}
	if r.OpenSession("left") == nil {
		t.Fatalf("expected open session under its own identifier")
	}
}

func TestCloseTopLevelResolvesAndRemoves(t *testing.T) {
	r := NewRegistry(nil)
	content := &stubContent{title: "first"}
	completion, _ := r.Present(content, DefaultHost)

	r.CloseTopLevel(DefaultHost, "done")

	if r.OpenSession(DefaultHost) != nil {
		t.Fatalf("session should be removed after close")
	}
	result, ok := completion.Resolved()
	if !ok {
		t.Fatalf("completion should resolve synchronously within close")
	}
	if result != "done" {
		t.Fatalf("result = %v, want %q", result, "done")
	}
	if content.deactivated != 1 {
		t.Fatalf("deactivated = %d, want 1", content.deactivated)
	}
}

func TestCloseTopLevelWithNothingOpenIsNoOp(t *testing.T) {
	r := NewRegistry(nil)
	if cmd := r.CloseTopLevel(DefaultHost, "x"); cmd != nil {
		t.Fatalf("expected nil cmd when nothing is open")
	}
}

func TestSetContentFiresDetachBeforeAttach(t *testing.T) {
	r := NewRegistry(nil)
	first := &stubContent{title: "first"}
	r.Present(first, DefaultHost)

	second := &stubContent{title: "second"}
	s := r.OpenSession(DefaultHost)
	s.SetContent(second)

	if first.deactivated != 1 {
		t.Fatalf("outgoing content deactivated = %d, want 1", first.deactivated)
	}
	if second.activated != 1 {
		t.Fatalf("incoming content activated = %d, want 1", second.activated)
	}
	if s.Content() != second {
		t.Fatalf("content slot not replaced")
	}
}
