package canvasrenderer

import (
	"testing"

	"etiketka/layout"
)

// A first line exactly as wide as the container followed by an explicit
// newline must not produce an extra blank line.
func TestNoBlankLineWhenEqualWidthThenNewline(t *testing.T) {
	r := newTestRenderer(t)
	fontSizeMM := 12 * layout.PtToMm
	lineHeightMM := fontSizeMM * 1.2

	first := "SKU-A"
	// measure the first line with an effectively unlimited width
	measured, err := r.LayoutLines(first, 1e6, layout.FontRegular, fontSizeMM, lineHeightMM)
	if err != nil {
		t.Fatalf("measure error: %v", err)
	}
	if len(measured) != 1 {
		t.Fatalf("unexpected measured lines: %d", len(measured))
	}
	limit := measured[0].Width
	if limit <= 0 {
		t.Fatalf("invalid measured width: %g", limit)
	}

	content := first + "\n" + "SKU-B"
	lines, err := r.LayoutLines(content, limit, layout.FontRegular, fontSizeMM, lineHeightMM)
	if err != nil {
		t.Fatalf("LayoutLines error: %v", err)
	}
	if got := len(lines); got != 2 {
		t.Fatalf("expected 2 lines without blank, got %d", got)
	}
	if lines[0].Content != first {
		t.Fatalf("first line mismatch: got=%q want=%q", lines[0].Content, first)
	}
	if lines[1].Content != "SKU-B" {
		t.Fatalf("second line mismatch: got=%q want=%q", lines[1].Content, "SKU-B")
	}
}
