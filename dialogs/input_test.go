package dialogs

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/avivier/modalhost/core"
)

func typeText(d *Input, text string) {
	for _, r := range text {
		d.Update(keyRunes(r))
	}
}

func TestInputSubmitsTrimmedValue(t *testing.T) {
	host := core.NewRegistry(nil)
	d := NewInput(host, "New contact", "Name: ", "Ada Lovelace", "")
	completion, _ := d.Show(core.DefaultHost)

	d.Focus()
	typeText(d, "Grace Hopper ")
	d.Update(tea.KeyMsg{Type: tea.KeyEnter})

	result, err := completion.Wait(context.Background())
	if err != nil {
		t.Fatalf("wait: %v", err)
	}
	if v, ok := result.Get(); !ok || v != "Grace Hopper" {
		t.Fatalf("result = (%q, %v), want Grace Hopper", v, ok)
	}
}

func TestInputEmptySubmitCancels(t *testing.T) {
	host := core.NewRegistry(nil)
	d := NewInput(host, "New contact", "Name: ", "", "")
	completion, _ := d.Show(core.DefaultHost)

	d.Focus()
	d.Update(tea.KeyMsg{Type: tea.KeyEnter})

	result, err := completion.Wait(context.Background())
	if err != nil {
		t.Fatalf("wait: %v", err)
	}
	if result.Present() {
		t.Fatalf("empty submit should cancel")
	}
}

func TestInputInitialValue(t *testing.T) {
	host := core.NewRegistry(nil)
	d := NewInput(host, "Edit", "Name: ", "", "Ada")
	completion, _ := d.Show(core.DefaultHost)

	d.Focus()
	d.Update(tea.KeyMsg{Type: tea.KeyEnter})

	result, err := completion.Wait(context.Background())
	if err != nil {
		t.Fatalf("wait: %v", err)
	}
	if v, ok := result.Get(); !ok || v != "Ada" {
		t.Fatalf("result = (%q, %v), want Ada", v, ok)
	}
}

func TestInputFocusTracksTextinput(t *testing.T) {
	host := core.NewRegistry(nil)
	d := NewInput(host, "Edit", "Name: ", "", "")
	if d.Focused() {
		t.Fatalf("input should start blurred")
	}
	d.Focus()
	if !d.Focused() {
		t.Fatalf("focus should reach the embedded textinput")
	}
	d.Blur()
	if d.Focused() {
		t.Fatalf("blur should reach the embedded textinput")
	}
}
