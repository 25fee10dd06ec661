package widgets

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestRenderPopupOverlaysWithoutDroppingBase(t *testing.T) {
	rows := make([]string, 9)
	for i := range rows {
		rows[i] = "row-" + string(rune('0'+i)) + "................"
	}
	out := RenderPopup(strings.Join(rows, "\n"), "Popup", 20, 9)
	lines := strings.Split(out, "\n")
	if len(lines) != 9 {
		t.Fatalf("line count = %d, want 9", len(lines))
	}
	if !strings.Contains(ansi.Strip(out), "Popup") {
		t.Fatalf("expected popup content in output")
	}
	if !strings.Contains(lines[0], "row-0") {
		t.Fatalf("expected top base row preserved, got %q", lines[0])
	}
	if !strings.Contains(lines[8], "row-8") {
		t.Fatalf("expected bottom base row preserved, got %q", lines[8])
	}
}

func TestRenderPopupZeroSize(t *testing.T) {
	if got := RenderPopup("base", "popup", 0, 5); got != "" {
		t.Fatalf("got %q", got)
	}
}
