package core

import "testing"

func TestFirstFocusableDepthFirst(t *testing.T) {
	deep := &stubElement{focusable: true}
	later := &stubElement{focusable: true}
	root := &stubElement{children: []Element{
		&stubElement{children: []Element{deep}},
		later,
	}}

	if got := FirstFocusable(root); got != Element(deep) {
		t.Fatalf("expected the depth-first match, got %v", got)
	}
}

func TestFirstFocusableNone(t *testing.T) {
	root := &stubElement{children: []Element{&stubElement{}, &stubElement{}}}
	if got := FirstFocusable(root); got != nil {
		t.Fatalf("expected nil for a tree with no focusable element, got %v", got)
	}
	if got := FirstFocusable(nil); got != nil {
		t.Fatalf("nil root should yield nil")
	}
}

func TestFocusedElementFindsOwner(t *testing.T) {
	owner := &stubElement{focusable: true, focused: true}
	root := &stubElement{children: []Element{
		&stubElement{focusable: true},
		&stubElement{children: []Element{owner}},
	}}
	if got := FocusedElement(root); got != Element(owner) {
		t.Fatalf("focused element = %v, want owner", got)
	}
}

func TestFocusedElementNilWhenNothingFocused(t *testing.T) {
	root := &stubElement{children: []Element{&stubElement{focusable: true}}}
	if got := FocusedElement(root); got != nil {
		t.Fatalf("expected nil, got %v", got)
	}
}

func TestRequestFocusImmediate(t *testing.T) {
	el := &stubElement{focusable: true}
	RequestFocus(el)
	if !el.Focused() {
		t.Fatalf("immediate focus should apply synchronously")
	}
	if cmd := RequestFocus(nil); cmd != nil {
		t.Fatalf("nil target should be a no-op")
	}
}

func TestRequestFocusDeferredDeliversMessage(t *testing.T) {
	el := &stubElement{focusable: true}
	cmd := RequestFocusDeferred(el)
	if cmd == nil {
		t.Fatalf("expected a command")
	}
	msg, ok := cmd().(FocusRequestMsg)
	if !ok {
		t.Fatalf("expected FocusRequestMsg, got %T", cmd())
	}
	if msg.Target != Element(el) {
		t.Fatalf("target = %v, want element", msg.Target)
	}
	if el.Focused() {
		t.Fatalf("deferred focus must not apply before the message is handled")
	}
	if cmd := RequestFocusDeferred(nil); cmd != nil {
		t.Fatalf("nil target should be a no-op")
	}
}

func TestFocusCaptureRestoreIdempotent(t *testing.T) {
	el := &stubElement{focusable: true, focused: true}
	surface := &stubElement{children: []Element{el}}

	captured := FocusedElement(surface)
	el.Blur()
	RequestFocus(captured)

	if FocusedElement(surface) != Element(el) {
		t.Fatalf("capture then restore should leave the element focused again")
	}
}
