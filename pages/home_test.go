package pages

import (
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/jask/foodgallery/internal/gallery"
)

func TestCardTilesCutWideNamesToTileWidth(t *testing.T) {
	p := NewHomePage(HomeOptions{CardWidth: 28})
	cards := []gallery.Card{
		gallery.NewCard(gallery.FileImage("/photos/寿司寿司寿司寿司寿司寿司寿司.jpg"), gallery.Fields{DishName: "Sushi"}),
		gallery.NewCard(gallery.AssetImage("pasta.png"), gallery.Fields{DishName: "Pasta"}),
	}
	tiles := p.cardTiles(cards, 1)
	if len(tiles) != 2 || !tiles[1].Active || tiles[0].Active {
		t.Fatalf("unexpected tiles %+v", tiles)
	}
	inner := 28 - 4
	if w := ansi.StringWidth(tiles[0].Lines[0]); w > inner {
		t.Fatalf("photo name is %d cells wide, tile holds %d", w, inner)
	}
	if got := ansi.Strip(tiles[1].Lines[0]); got != "pasta.png" {
		t.Fatalf("short name = %q, want untouched", got)
	}
}

func TestHomePageSnapInterval(t *testing.T) {
	p := NewHomePage(HomeOptions{CardWidth: 20, CardSpacing: 2, SnapInterval: 30})
	if got := p.Editor().Tracker().SnapInterval(); got != 30 {
		t.Fatalf("snap = %d, want 30", got)
	}
	p = NewHomePage(HomeOptions{CardWidth: 20, CardSpacing: 2})
	if got := p.Editor().Tracker().SnapInterval(); got != 22 {
		t.Fatalf("default snap = %d, want 22", got)
	}
}
