package core

import tea "github.com/charmbracelet/bubbletea"

// Element is the focus guardian's view of a UI tree node. Leaf widgets
// (inputs, tables) report Focusable; containers expose Children.
type Element interface {
	Focusable() bool
	Focused() bool
	Focus() tea.Cmd
	Blur()
	Children() []Element
}

// FocusRequestMsg asks the program to apply focus after the current
// update pass. Host models handle it by calling RequestFocus.
type FocusRequestMsg struct {
	Target Element
}

// FocusedElement returns the element currently holding focus under root,
// depth-first, or nil when nothing is focused.
func FocusedElement(root Element) Element {
	if root == nil {
		return nil
	}
	if root.Focused() {
		return root
	}
	for _, child := range root.Children() {
		if el := FocusedElement(child); el != nil {
			return el
		}
	}
	return nil
}

// FirstFocusable returns the first focusable element under root in
// depth-first order, or nil when the tree has none.
func FirstFocusable(root Element) Element {
	if root == nil {
		return nil
	}
	if root.Focusable() {
		return root
	}
	for _, child := range root.Children() {
		if el := FirstFocusable(child); el != nil {
			return el
		}
	}
	return nil
}

// RequestFocus applies focus immediately.
func RequestFocus(el Element) tea.Cmd {
	if el == nil {
		return nil
	}
	return el.Focus()
}

// RequestFocusDeferred schedules focus for after the current update pass,
// for targets whose view may not be realized yet.
func RequestFocusDeferred(el Element) tea.Cmd {
	if el == nil {
		return nil
	}
	return func() tea.Msg { return FocusRequestMsg{Target: el} }
}
