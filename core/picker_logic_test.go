package core

import "testing"

func dishItems() []PickerItem {
	return []PickerItem{
		{ID: "1", Label: "Fish and Chips"},
		{ID: "2", Label: "Pasta Carbonara"},
		{ID: "3", Label: "Margherita Pizza"},
		{ID: "4", Label: "Chicken Curry"},
	}
}

func TestPickerSubsequenceFilter(t *testing.T) {
	p := NewPicker("dishes", dishItems())
	for _, r := range "crb" {
		p.HandleKey(string(r))
	}
	items := p.Items()
	if len(items) != 1 || items[0].ID != "2" {
		t.Fatalf("expected carbonara only, got %+v", items)
	}
}

func TestPickerPrefixRanksFirst(t *testing.T) {
	p := NewPicker("dishes", dishItems())
	p.SetQuery("c")
	items := p.Items()
	if len(items) == 0 || items[0].ID != "4" {
		t.Fatalf("expected chicken curry first, got %+v", items)
	}
}

func TestPickerTypoFallback(t *testing.T) {
	p := NewPicker("dishes", dishItems())
	p.SetQuery("pizaa")
	items := p.Items()
	if len(items) != 1 || items[0].ID != "3" {
		t.Fatalf("expected pizza within typo distance, got %+v", items)
	}

	p.SetQuery("lasagne")
	if got := len(p.Items()); got != 0 {
		t.Fatalf("expected no match for lasagne, got %d", got)
	}
}

func TestPickerCursorAndSelect(t *testing.T) {
	p := NewPicker("dishes", dishItems())
	if res := p.HandleKey("up"); res.Action != PickerActionNone {
		t.Fatalf("cursor at top should not move, got %v", res.Action)
	}
	if res := p.HandleKey("down"); res.Action != PickerActionMoved {
		t.Fatalf("expected move, got %v", res.Action)
	}
	res := p.HandleKey("enter")
	if res.Action != PickerActionSelected || res.Item.ID != "2" {
		t.Fatalf("unexpected selection %+v", res)
	}
	if res := p.HandleKey("esc"); res.Action != PickerActionCancelled {
		t.Fatalf("expected cancel, got %v", res.Action)
	}
}

func TestPickerCursorClampsWhenFiltered(t *testing.T) {
	p := NewPicker("dishes", dishItems())
	p.HandleKey("down")
	p.HandleKey("down")
	p.HandleKey("down")
	p.SetQuery("fish")
	if p.Cursor() != 0 {
		t.Fatalf("cursor = %d, want 0", p.Cursor())
	}
	p.HandleKey("backspace")
	if p.Query() != "fis" {
		t.Fatalf("query = %q", p.Query())
	}
}

func TestPickerEmptyEnterDoesNothing(t *testing.T) {
	p := NewPicker("dishes", nil)
	if res := p.HandleKey("enter"); res.Action != PickerActionNone {
		t.Fatalf("expected no action on empty picker, got %v", res.Action)
	}
}
