package core

import (
	"context"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// Completion is the channel a Show call returns. It is resolved exactly
// once, by Close, with the dialog's result (nil means closed without a
// result). Resolution happens synchronously inside Close, so code running
// after Close observes up-to-date session state.
//
// The update loop is single-threaded, but tea.Cmd closures run on their
// own goroutines, so Completion is safe to wait on from either side.
type Completion struct {
	once   sync.Once
	done   chan struct{}
	result any
}

func NewCompletion() *Completion {
	return &Completion{done: make(chan struct{})}
}

// Resolve delivers the result. Only the first call wins; it reports
// whether this call was the one that resolved the completion.
func (c *Completion) Resolve(result any) bool {
	won := false
	c.once.Do(func() {
		c.result = result
		close(c.done)
		won = true
	})
	return won
}

// Done is closed once the completion is resolved.
func (c *Completion) Done() <-chan struct{} {
	return c.done
}

// Resolved returns the result without blocking. The bool reports whether
// the completion has been resolved yet.
func (c *Completion) Resolved() (any, bool) {
	select {
	case <-c.done:
		return c.result, true
	default:
		return nil, false
	}
}

// Wait blocks until the completion resolves or ctx ends.
func (c *Completion) Wait(ctx context.Context) (any, error) {
	select {
	case <-c.done:
		return c.result, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Cmd turns resolution into a Bubble Tea message, keeping the event loop
// responsive while the dialog is open.
func (c *Completion) Cmd(wrap func(result any) tea.Msg) tea.Cmd {
	return func() tea.Msg {
		<-c.done
		return wrap(c.result)
	}
}
