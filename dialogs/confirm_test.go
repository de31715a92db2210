package dialogs

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/avivier/modalhost/core"
)

func keyRunes(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestConfirmYes(t *testing.T) {
	host := core.NewRegistry(nil)
	c := NewConfirm(host, "Delete", "Delete this contact?")
	completion, _ := c.Show(core.DefaultHost)

	c.Update(keyRunes('y'))

	result, err := completion.Wait(context.Background())
	if err != nil {
		t.Fatalf("wait: %v", err)
	}
	if v, ok := result.Get(); !ok || !v {
		t.Fatalf("result = (%v, %v), want true", v, ok)
	}
}

func TestConfirmNoIsDistinctFromCancel(t *testing.T) {
	host := core.NewRegistry(nil)
	c := NewConfirm(host, "Delete", "Sure?")
	completion, _ := c.Show(core.DefaultHost)

	c.Update(keyRunes('n'))

	result, err := completion.Wait(context.Background())
	if err != nil {
		t.Fatalf("wait: %v", err)
	}
	v, ok := result.Get()
	if !ok {
		t.Fatalf("explicit no must carry a value")
	}
	if v {
		t.Fatalf("result = true, want false")
	}
}

func TestConfirmEscYieldsEmpty(t *testing.T) {
	host := core.NewRegistry(nil)
	c := NewConfirm(host, "Delete", "Sure?")
	completion, _ := c.Show(core.DefaultHost)

	c.Update(tea.KeyMsg{Type: tea.KeyEsc})

	result, err := completion.Wait(context.Background())
	if err != nil {
		t.Fatalf("wait: %v", err)
	}
	if result.Present() {
		t.Fatalf("cancel should yield an empty result")
	}
}

func TestConfirmToggleThenEnter(t *testing.T) {
	host := core.NewRegistry(nil)
	c := NewConfirm(host, "Delete", "Sure?")
	completion, _ := c.Show(core.DefaultHost)

	c.Update(tea.KeyMsg{Type: tea.KeyTab})
	c.Update(tea.KeyMsg{Type: tea.KeyEnter})

	result, err := completion.Wait(context.Background())
	if err != nil {
		t.Fatalf("wait: %v", err)
	}
	if v, ok := result.Get(); !ok || !v {
		t.Fatalf("result = (%v, %v), want toggled yes", v, ok)
	}
}

func TestConfirmNestsOverOpenSession(t *testing.T) {
	host := core.NewRegistry(nil)
	parent := NewInput(host, "Edit", "> ", "", "")
	parent.Show(core.DefaultHost)
	s := host.OpenSession(core.DefaultHost)
	before := s.Content()

	c := NewConfirm(host, "Discard", "Discard changes?")
	completion, _ := c.Show(core.DefaultHost)
	if s.Content() == before {
		t.Fatalf("nested confirm should substitute the session content")
	}

	c.Update(keyRunes('y'))
	if s.Content() != before {
		t.Fatalf("closing the nested confirm should restore the edit dialog")
	}
	result, _ := completion.Wait(context.Background())
	if v, ok := result.Get(); !ok || !v {
		t.Fatalf("result = (%v, %v), want true", v, ok)
	}
}
