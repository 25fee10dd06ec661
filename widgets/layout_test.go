package widgets

import (
	"strings"
	"testing"
)

func TestShareFixedAndFlex(t *testing.T) {
	got := share(10, []int{0, 2, 0}, 3)
	if got[0] != 4 || got[1] != 2 || got[2] != 4 {
		t.Fatalf("share = %v", got)
	}
	got = share(5, []int{0, 0}, 2)
	if got[0]+got[1] != 5 {
		t.Fatalf("share lost lines: %v", got)
	}
	got = share(3, []int{5, 0}, 2)
	if got[0] != 3 || got[1] != 0 {
		t.Fatalf("fixed row should shrink to fit: %v", got)
	}
}

func TestRowsGapAndHeights(t *testing.T) {
	r := Rows{Items: []Widget{Text("top"), Text("bottom")}, Heights: []int{0, 1}, Gap: 1}
	lines := strings.Split(r.Render(10, 6), "\n")
	if len(lines) != 6 {
		t.Fatalf("lines = %d, want 6", len(lines))
	}
	if !strings.HasPrefix(lines[0], "top") || !strings.HasPrefix(lines[5], "bottom") {
		t.Fatalf("unexpected layout %q", lines)
	}
	if strings.TrimSpace(lines[4]) != "" {
		t.Fatalf("expected gap line, got %q", lines[4])
	}
}

func TestColsWidths(t *testing.T) {
	c := Cols{Items: []Widget{Text("A"), Text("B")}, Widths: []int{0, 4}, Gap: 1}
	line := strings.Split(c.Render(20, 1), "\n")[0]
	if len(line) != 20 {
		t.Fatalf("width = %d, want 20", len(line))
	}
	if idx := strings.Index(line, "B"); idx != 16 {
		t.Fatalf("B at column %d, want 16", idx)
	}
}

func TestTextClips(t *testing.T) {
	out := Text("abcdef\nline2\nline3").Render(3, 2)
	if out != "abc\nlin" {
		t.Fatalf("got %q", out)
	}
}
