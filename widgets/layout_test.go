package widgets

import (
	"strings"
	"testing"
)

type fixedWidget struct{ text string }

func (w fixedWidget) Render(width, height int) string {
	return w.text
}

func TestVStackSpacing(t *testing.T) {
	v := VStack{Widgets: []Widget{fixedWidget{"top"}, fixedWidget{"bottom"}}, Spacing: 1}
	out := v.Render(20, 6)
	if !strings.Contains(out, "top") || !strings.Contains(out, "bottom") {
		t.Fatalf("expected both widgets in output")
	}
	if !strings.Contains(out, "\n\n") {
		t.Fatalf("expected a spacer line between widgets")
	}
}

func TestVStackRatios(t *testing.T) {
	heights := splitSpans(9, 2, []float64{2, 1})
	if heights[0]+heights[1] != 9 {
		t.Fatalf("spans must cover the total, got %v", heights)
	}
	if heights[0] <= heights[1] {
		t.Fatalf("weighted span should dominate, got %v", heights)
	}
}

func TestPaneRendersTitleAndContent(t *testing.T) {
	p := Pane{Title: "Contacts", Content: "Ada\nGrace"}
	out := p.Render(24, 6)
	if !strings.Contains(out, "Contacts") {
		t.Fatalf("expected pane title")
	}
	if !strings.Contains(out, "Ada") || !strings.Contains(out, "Grace") {
		t.Fatalf("expected pane content rows")
	}
	if lines := strings.Split(out, "\n"); len(lines) != 6 {
		t.Fatalf("pane height = %d lines, want 6", len(lines))
	}
}
