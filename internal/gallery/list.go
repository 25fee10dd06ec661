package gallery

import (
	"slices"

	"github.com/google/uuid"
)

// List is the ordered card collection backing the carousel.
type List struct {
	cards []Card
}

// NewList copies cards into a new list. Cards without an ID get one.
func NewList(cards ...Card) *List {
	l := &List{cards: make([]Card, 0, len(cards))}
	for _, c := range cards {
		if c.ID == "" {
			c.ID = uuid.NewString()
		}
		l.cards = append(l.cards, c)
	}
	return l
}

func (l *List) Len() int {
	if l == nil {
		return 0
	}
	return len(l.cards)
}

// Cards returns a copy of the cards in display order.
func (l *List) Cards() []Card {
	if l == nil {
		return nil
	}
	return slices.Clone(l.cards)
}

func (l *List) At(index int) (Card, bool) {
	if l == nil || index < 0 || index >= len(l.cards) {
		return Card{}, false
	}
	return l.cards[index], true
}

// IndexOf returns the position of the card with id, or -1.
func (l *List) IndexOf(id string) int {
	if l == nil || id == "" {
		return -1
	}
	return slices.IndexFunc(l.cards, func(c Card) bool { return c.ID == id })
}

// Append adds c at the end and returns its index.
func (l *List) Append(c Card) int {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	l.cards = append(l.cards, c)
	return len(l.cards) - 1
}

// Update replaces the editable fields of the card with id. The image is kept.
func (l *List) Update(id string, fields Fields) bool {
	idx := l.IndexOf(id)
	if idx < 0 {
		return false
	}
	l.cards[idx].Fields = fields
	return true
}

// Remove deletes the card with id and reports the index it occupied.
func (l *List) Remove(id string) (int, bool) {
	idx := l.IndexOf(id)
	if idx < 0 {
		return -1, false
	}
	l.cards = slices.Delete(l.cards, idx, idx+1)
	return idx, true
}
