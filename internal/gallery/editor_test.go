package gallery

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func seedList() *List {
	return NewList(
		Card{Image: AssetImage("food1.jpg"), Fields: Fields{DishName: "Butter Chicken with Naan", Calories: "750", Ingredients: "Butter Chicken, Butter Sauce, Naan Bread"}},
		Card{Image: AssetImage("food2.jpg"), Fields: Fields{DishName: "Hakka Noodles", Calories: "400", Ingredients: "Noodles, Chili Sauce, Egg, Tofu, Parsley"}},
		Card{Image: AssetImage("food3.jpg"), Fields: Fields{DishName: "Sushi", Calories: "540", Ingredients: "Cucumber, Crab Legs, Seaweed"}},
		Card{Image: AssetImage("food4.jpg"), Fields: Fields{DishName: "Pizza", Calories: "980", Ingredients: "Dough, Cheese, Mushroom, Pepper, Olives"}},
		Card{Image: AssetImage("food5.jpg"), Fields: Fields{DishName: "Burger and Chips", Calories: "610", Ingredients: "Beef, Onion, Cheese, Tomato, Lettuce, Potato Chips"}},
	)
}

func newTestEditor() *Editor {
	return NewEditor(seedList(), NewTracker(30), nil)
}

var fishAndChips = Fields{DishName: "Fish and Chips", Calories: "650", Ingredients: "Fish, Fries, Lemon, Tartar Sauce"}

func TestOpenForNewThenSaveAppends(t *testing.T) {
	t.Parallel()
	e := newTestEditor()
	img := FileImage("/tmp/pic.png")

	require.True(t, e.OpenForNew(img, fishAndChips))
	s, ok := e.Session()
	require.True(t, ok)
	require.Equal(t, ModeNew, s.Mode)
	require.Equal(t, fishAndChips, s.Draft)
	require.Equal(t, fishAndChips, s.Backup)
	require.False(t, s.Editing)

	req, scroll := e.Save()
	require.True(t, scroll)
	require.Equal(t, 5, req.Index)
	require.Equal(t, AppendScrollDelay, req.Delay)
	require.False(t, e.IsOpen())

	require.Equal(t, 6, e.List().Len())
	last, ok := e.List().At(5)
	require.True(t, ok)
	require.Equal(t, fishAndChips, last.Fields)
	require.Equal(t, img, last.Image)
	require.NotEmpty(t, last.ID)
}

func TestOpenForNewThenDiscardKeepsList(t *testing.T) {
	t.Parallel()
	e := newTestEditor()
	before := e.List().Cards()

	require.True(t, e.OpenForNew(FileImage("/tmp/pic.png"), fishAndChips))
	require.False(t, e.Discard())
	require.False(t, e.IsOpen())
	require.Equal(t, before, e.List().Cards())
}

type recordingReleaser struct {
	released []ImageRef
	err      error
}

func (r *recordingReleaser) Release(img ImageRef) error {
	r.released = append(r.released, img)
	return r.err
}

func TestDiscardNewReleasesImage(t *testing.T) {
	t.Parallel()
	rel := &recordingReleaser{err: errors.New("busy")}
	e := newTestEditor().WithReleaser(rel)
	img := FileImage("/tmp/capture.jpg")

	require.True(t, e.OpenForNew(img, fishAndChips))
	e.Discard()
	require.Equal(t, []ImageRef{img}, rel.released)
	require.Equal(t, 5, e.List().Len())
}

func TestSaveEditDoesNotReleaseOrMoveImage(t *testing.T) {
	t.Parallel()
	rel := &recordingReleaser{}
	e := newTestEditor().WithReleaser(rel)
	orig, _ := e.List().At(1)

	_, ok := e.OpenForEdit(1)
	require.True(t, ok)
	require.True(t, e.BeginEdit())
	require.True(t, e.SetDraft(Fields{DishName: "Chow Mein", Calories: "420", Ingredients: "Noodles"}))
	_, scroll := e.Save()
	require.False(t, scroll)

	got, _ := e.List().At(1)
	require.Equal(t, orig.ID, got.ID)
	require.Equal(t, orig.Image, got.Image)
	require.Equal(t, "Chow Mein", got.DishName)
	require.Empty(t, rel.released)
}

func TestOpenForEditOutOfRangeIsNoop(t *testing.T) {
	t.Parallel()
	e := newTestEditor()
	for _, idx := range []int{-1, 5, 99} {
		_, ok := e.OpenForEdit(idx)
		require.False(t, ok, "index %d", idx)
		require.False(t, e.IsOpen())
	}
}

func TestOpenForEditRequestsScroll(t *testing.T) {
	t.Parallel()
	e := newTestEditor()
	req, ok := e.OpenForEdit(3)
	require.True(t, ok)
	require.Equal(t, ScrollRequest{Index: 3}, req)
	s, _ := e.Session()
	require.Equal(t, ModeEdit, s.Mode)
	require.Equal(t, "Pizza", s.Draft.DishName)
	require.Equal(t, s.Draft, s.Backup)
	require.True(t, s.Valid())
}

func TestCancelEditThenSaveKeepsBackup(t *testing.T) {
	t.Parallel()
	e := newTestEditor()
	orig, _ := e.List().At(2)

	_, ok := e.OpenForEdit(2)
	require.True(t, ok)
	require.True(t, e.BeginEdit())
	require.True(t, e.SetDraft(Fields{DishName: "Sashimi", Calories: "1", Ingredients: "Salmon"}))
	require.True(t, e.CancelEdit())

	s, _ := e.Session()
	require.False(t, s.Editing)
	require.Equal(t, orig.Fields, s.Draft)
	require.True(t, e.IsOpen())

	e.Save()
	got, _ := e.List().At(2)
	require.Equal(t, orig.Fields, got.Fields)
}

func TestSetDraftRequiresEditing(t *testing.T) {
	t.Parallel()
	e := newTestEditor()
	require.False(t, e.BeginEdit())
	_, ok := e.OpenForEdit(0)
	require.True(t, ok)
	require.False(t, e.SetDraft(Fields{DishName: "x"}))
	s, _ := e.Session()
	require.Equal(t, "Butter Chicken with Naan", s.Draft.DishName)
}

func TestDiscardEditRemovesTargetAndClamps(t *testing.T) {
	t.Parallel()
	e := newTestEditor()
	former3, _ := e.List().At(3)
	e.Tracker().ScrollTo(2, e.List().Len())

	_, ok := e.OpenForEdit(2)
	require.True(t, ok)
	require.True(t, e.Discard())

	require.Equal(t, 4, e.List().Len())
	at2, _ := e.List().At(2)
	require.Equal(t, former3.ID, at2.ID)
	require.Equal(t, 2, e.Tracker().Active())
}

func TestDiscardLastCardClampsToNewEnd(t *testing.T) {
	t.Parallel()
	e := newTestEditor()
	_, ok := e.OpenForEdit(4)
	require.True(t, ok)
	require.True(t, e.Discard())
	require.Equal(t, 4, e.List().Len())
	require.Equal(t, 3, e.Tracker().Active())
}

func TestDiscardOnlyCardLeavesNoActive(t *testing.T) {
	t.Parallel()
	e := NewEditor(NewList(NewCard(AssetImage("food1.jpg"), fishAndChips)), NewTracker(10), nil)
	_, ok := e.OpenForEdit(0)
	require.True(t, ok)
	require.True(t, e.Discard())
	require.Zero(t, e.List().Len())
	require.Equal(t, -1, e.Tracker().Active())
}

func TestOnlyOneSessionAtATime(t *testing.T) {
	t.Parallel()
	e := newTestEditor()
	_, ok := e.OpenForEdit(0)
	require.True(t, ok)
	require.False(t, e.OpenForNew(FileImage("/tmp/x.png"), fishAndChips))
	_, ok = e.OpenForEdit(1)
	require.False(t, ok)
	s, _ := e.Session()
	require.Equal(t, 0, s.TargetIndex)
}

func TestSaveWithoutImageOnlyCloses(t *testing.T) {
	t.Parallel()
	e := newTestEditor()
	require.True(t, e.OpenForNew(ImageRef{}, fishAndChips))
	_, scroll := e.Save()
	require.False(t, scroll)
	require.False(t, e.IsOpen())
	require.Equal(t, 5, e.List().Len())
}
