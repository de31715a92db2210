package core

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// ErrResultType reports that a dialog's raw result did not match the type
// its typed wrapper declares. Type discipline between Close calls and the
// Show caller is the program's responsibility; the conversion is surfaced
// as an error instead of a panicking assertion.
var ErrResultType = errors.New("dialog result type mismatch")

// Result carries a dialog result of type T, or nothing when the dialog
// closed without a result.
type Result[T any] struct {
	value   T
	present bool
}

func Some[T any](v T) Result[T] {
	return Result[T]{value: v, present: true}
}

func None[T any]() Result[T] {
	return Result[T]{}
}

func (r Result[T]) Present() bool { return r.present }

func (r Result[T]) Get() (T, bool) { return r.value, r.present }

// Or returns the carried value, or fallback when the result is empty.
func (r Result[T]) Or(fallback T) T {
	if r.present {
		return r.value
	}
	return fallback
}

// ConvertResult narrows a raw dialog result. Nil maps to an empty result;
// anything else must be a T or the conversion fails with ErrResultType.
func ConvertResult[T any](raw any) (Result[T], error) {
	if raw == nil {
		return None[T](), nil
	}
	v, ok := raw.(T)
	if !ok {
		return None[T](), fmt.Errorf("%w: have %T", ErrResultType, raw)
	}
	return Some(v), nil
}

// Typed gives a dialog a compile-time-checked result type. It adds no
// validation beyond the conversion at the receive boundary.
type Typed[T any] struct {
	*Dialog
}

// Wrap adapts an untyped dialog controller.
func Wrap[T any](d *Dialog) Typed[T] {
	return Typed[T]{Dialog: d}
}

// Show presents the dialog and returns a completion whose result is
// narrowed to T.
func (t Typed[T]) Show(id string) (TypedCompletion[T], tea.Cmd) {
	c, cmd := t.Dialog.Show(id)
	return TypedCompletion[T]{c: c}, cmd
}

// Close forwards to the untyped close with the value boxed.
func (t Typed[T]) Close(v T) tea.Cmd {
	return t.Dialog.Close(v)
}

// Cancel closes without a result.
func (t Typed[T]) Cancel() tea.Cmd {
	return t.Dialog.Close(nil)
}

// TypedCompletion narrows a completion's result to T at the receive
// boundary.
type TypedCompletion[T any] struct {
	c *Completion
}

func (tc TypedCompletion[T]) Done() <-chan struct{} { return tc.c.Done() }

// Wait blocks until the dialog closes, returning an empty result when it
// closed without one.
func (tc TypedCompletion[T]) Wait(ctx context.Context) (Result[T], error) {
	raw, err := tc.c.Wait(ctx)
	if err != nil {
		return None[T](), err
	}
	return ConvertResult[T](raw)
}

// Cmd delivers the narrowed result as a Bubble Tea message.
func (tc TypedCompletion[T]) Cmd(wrap func(Result[T], error) tea.Msg) tea.Cmd {
	return func() tea.Msg {
		<-tc.c.Done()
		result, _ := tc.c.Resolved()
		return wrap(ConvertResult[T](result))
	}
}
