package core

import (
	"cmp"
	"slices"
	"strings"

	"github.com/agnivade/levenshtein"
)

// MaxTypoDistance is the largest edit distance between a query word and a
// label word that still counts as a match.
const MaxTypoDistance = 2

type PickerItem struct {
	ID     string
	Label  string
	Meta   string
	Search string
}

type PickerAction int

const (
	PickerActionNone PickerAction = iota
	PickerActionMoved
	PickerActionSelected
	PickerActionCancelled
)

type PickerResult struct {
	Action PickerAction
	Item   PickerItem
}

// Picker is a filterable list. Items match on an ordered subsequence of the
// query and, failing that, on a word within MaxTypoDistance edits.
type Picker struct {
	title    string
	items    []PickerItem
	filtered []PickerItem
	query    string
	cursor   int
}

func NewPicker(title string, items []PickerItem) *Picker {
	p := &Picker{title: strings.TrimSpace(title)}
	p.SetItems(items)
	return p
}

func (p *Picker) Title() string { return p.title }
func (p *Picker) Query() string { return p.query }
func (p *Picker) Cursor() int   { return p.cursor }
func (p *Picker) Len() int      { return len(p.items) }

// Items returns the items matching the query, best first.
func (p *Picker) Items() []PickerItem { return slices.Clone(p.filtered) }

func (p *Picker) SetItems(items []PickerItem) {
	p.items = slices.Clone(items)
	p.refilter()
}

func (p *Picker) SetQuery(q string) {
	p.query = q
	p.refilter()
}

// move shifts the cursor by delta within the filtered items and reports
// whether it moved.
func (p *Picker) move(delta int) bool {
	next := min(max(p.cursor+delta, 0), max(len(p.filtered)-1, 0))
	moved := next != p.cursor
	p.cursor = next
	return moved
}

func (p *Picker) CurrentItem() (PickerItem, bool) {
	if len(p.filtered) == 0 {
		return PickerItem{}, false
	}
	return p.filtered[p.cursor], true
}

// HandleKey applies a key press. Printable keys extend the query, so
// navigation uses the arrow keys only.
func (p *Picker) HandleKey(keyName string) PickerResult {
	switch keyName {
	case "up", "ctrl+p":
		if p.move(-1) {
			return PickerResult{Action: PickerActionMoved}
		}
	case "down", "ctrl+n":
		if p.move(1) {
			return PickerResult{Action: PickerActionMoved}
		}
	case "enter":
		if item, ok := p.CurrentItem(); ok {
			return PickerResult{Action: PickerActionSelected, Item: item}
		}
	case "esc":
		return PickerResult{Action: PickerActionCancelled}
	case "backspace":
		if q := []rune(p.query); len(q) > 0 {
			p.SetQuery(string(q[:len(q)-1]))
		}
	case "space", " ":
		p.SetQuery(p.query + " ")
	default:
		if typedChar(keyName) {
			p.SetQuery(p.query + keyName)
		}
	}
	return PickerResult{}
}

type scoredPickerItem struct {
	item  PickerItem
	score int
	index int
}

func (p *Picker) refilter() {
	q := strings.TrimSpace(p.query)
	var ranked []scoredPickerItem
	for idx, it := range p.items {
		text := cmp.Or(strings.TrimSpace(it.Search), it.Label)
		ok, score := fuzzyMatchScore(text, q)
		if !ok {
			ok, score = typoMatchScore(text, q)
		}
		if ok {
			ranked = append(ranked, scoredPickerItem{item: it, score: score, index: idx})
		}
	}
	slices.SortStableFunc(ranked, func(a, b scoredPickerItem) int {
		return cmp.Or(cmp.Compare(b.score, a.score), cmp.Compare(a.index, b.index))
	})
	p.filtered = p.filtered[:0]
	for _, r := range ranked {
		p.filtered = append(p.filtered, r.item)
	}
	p.cursor = min(max(p.cursor, 0), max(len(p.filtered)-1, 0))
}

// fuzzyMatchScore reports whether query is an ordered subsequence of label.
// Matches at the start, adjacent runs and an exact label score higher.
func fuzzyMatchScore(label, query string) (bool, int) {
	if query == "" {
		return true, 0
	}
	hay, needle := strings.ToLower(label), strings.ToLower(query)
	score, pos, prev := len(needle), 0, -2
	for k := range len(needle) {
		off := strings.IndexByte(hay[pos:], needle[k])
		if off < 0 {
			return false, 0
		}
		at := pos + off
		switch {
		case k == 0 && at == 0:
			score += 10
		case at == prev+1:
			score += 3
		}
		prev, pos = at, at+1
	}
	if strings.EqualFold(strings.TrimSpace(label), query) {
		score += 20
	}
	return true, score
}

// typoMatchScore matches when every query word is within MaxTypoDistance of
// some label word. Scores stay below any subsequence match.
func typoMatchScore(label, query string) (bool, int) {
	qWords := strings.Fields(strings.ToLower(query))
	lWords := strings.Fields(strings.ToLower(label))
	if len(qWords) == 0 || len(lWords) == 0 {
		return false, 0
	}
	total := 0
	for _, qw := range qWords {
		best := MaxTypoDistance + 1
		for _, lw := range lWords {
			best = min(best, levenshtein.ComputeDistance(qw, lw))
		}
		if best > MaxTypoDistance || best >= len([]rune(qw)) {
			return false, 0
		}
		total += best
	}
	return true, -total
}

func typedChar(key string) bool {
	return len(key) == 1 && key[0] >= ' ' && key[0] <= '~'
}
