package core

import tea "github.com/charmbracelet/bubbletea"

type StatusMsg struct {
	Text  string
	IsErr bool
}

// ClosedMsg is the default message a dialog completion delivers back to
// the program when the host surface wants nothing more specific.
type ClosedMsg struct {
	Host   string
	Result any
}

func StatusCmd(text string) tea.Cmd {
	return func() tea.Msg { return StatusMsg{Text: text} }
}

func ErrorCmd(err error) tea.Cmd {
	return func() tea.Msg {
		if err == nil {
			return StatusMsg{Text: "", IsErr: false}
		}
		return StatusMsg{Text: err.Error(), IsErr: true}
	}
}

// ClosedCmd wraps a completion into a ClosedMsg delivery.
func ClosedCmd(host string, c *Completion) tea.Cmd {
	return c.Cmd(func(result any) tea.Msg {
		return ClosedMsg{Host: host, Result: result}
	})
}
