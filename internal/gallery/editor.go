package gallery

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// AppendScrollDelay is how long the carousel waits before snapping to a
// freshly appended card.
const AppendScrollDelay = 100 * time.Millisecond

// ScrollRequest asks the carousel to bring Index into view after Delay.
// Nobody acknowledges it.
type ScrollRequest struct {
	Index int
	Delay time.Duration
}

// Releaser frees an image that was picked for a new card but never saved.
type Releaser interface {
	Release(ImageRef) error
}

// Editor applies modal actions to the card list. At most one session is
// open at a time.
type Editor struct {
	list     *List
	tracker  *Tracker
	session  *EditSession
	releaser Releaser
	logger   *log.Logger
}

func NewEditor(list *List, tracker *Tracker, logger *log.Logger) *Editor {
	if list == nil {
		list = NewList()
	}
	if tracker == nil {
		tracker = NewTracker(1)
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Editor{list: list, tracker: tracker, logger: logger}
}

// WithReleaser sets the hook used when a new-card modal is discarded.
func (e *Editor) WithReleaser(r Releaser) *Editor {
	e.releaser = r
	return e
}

func (e *Editor) List() *List       { return e.list }
func (e *Editor) Tracker() *Tracker { return e.tracker }
func (e *Editor) IsOpen() bool      { return e.session != nil }

// Session returns a copy of the open session.
func (e *Editor) Session() (EditSession, bool) {
	if e.session == nil {
		return EditSession{}, false
	}
	return *e.session, true
}

// OpenForNew starts a modal for a freshly picked image with the given
// default fields. It refuses while another session is open.
func (e *Editor) OpenForNew(image ImageRef, defaults Fields) bool {
	if e.session != nil {
		return false
	}
	e.session = &EditSession{
		Mode:        ModeNew,
		Image:       image,
		TargetIndex: -1,
		Draft:       defaults,
		Backup:      defaults,
	}
	e.logger.Debug("open new card", "image", image.String())
	return true
}

// OpenForEdit starts a modal on the card at index. Out of range indexes are
// ignored. The returned request scrolls the carousel to the card.
func (e *Editor) OpenForEdit(index int) (ScrollRequest, bool) {
	if e.session != nil {
		return ScrollRequest{}, false
	}
	card, ok := e.list.At(index)
	if !ok {
		return ScrollRequest{}, false
	}
	e.session = &EditSession{
		Mode:        ModeEdit,
		Image:       card.Image,
		TargetID:    card.ID,
		TargetIndex: index,
		Draft:       card.Fields,
		Backup:      card.Fields,
	}
	e.logger.Debug("open card", "index", index, "id", card.ID)
	return ScrollRequest{Index: index}, true
}

func (e *Editor) BeginEdit() bool {
	if e.session == nil {
		return false
	}
	e.session.Editing = true
	return true
}

// SetDraft replaces the draft. Only allowed while editing.
func (e *Editor) SetDraft(fields Fields) bool {
	if e.session == nil || !e.session.Editing {
		return false
	}
	e.session.Draft = fields
	return true
}

// CancelEdit restores the draft from the backup and leaves the modal open.
func (e *Editor) CancelEdit() bool {
	if e.session == nil {
		return false
	}
	e.session.Draft = e.session.Backup
	e.session.Editing = false
	return true
}

// Save commits the draft and closes the session. In new mode the card is
// appended and a delayed scroll to it is requested.
func (e *Editor) Save() (ScrollRequest, bool) {
	s := e.session
	if s == nil {
		return ScrollRequest{}, false
	}
	defer e.close()
	if !s.Valid() {
		e.logger.Debug("save on empty session")
		return ScrollRequest{}, false
	}
	switch s.Mode {
	case ModeNew:
		card := NewCard(s.Image, s.Draft)
		idx := e.list.Append(card)
		e.logger.Info("card added", "id", card.ID, "dish", card.DishName, "index", idx)
		return ScrollRequest{Index: idx, Delay: AppendScrollDelay}, true
	case ModeEdit:
		if !e.list.Update(s.TargetID, s.Draft) {
			e.logger.Warn("save target vanished", "id", s.TargetID)
			return ScrollRequest{}, false
		}
		e.logger.Info("card updated", "id", s.TargetID, "dish", s.Draft.DishName)
	}
	return ScrollRequest{}, false
}

// Discard closes the session. In edit mode the target card is removed and
// the active index is clamped to min(len-1, target). It reports whether a
// card was removed.
func (e *Editor) Discard() bool {
	s := e.session
	if s == nil {
		return false
	}
	defer e.close()
	switch {
	case s.Mode == ModeNew:
		if e.releaser != nil && !s.Image.IsZero() {
			if err := e.releaser.Release(s.Image); err != nil {
				e.logger.Warn("release discarded image", "image", s.Image.String(), "err", err)
			}
		}
		return false
	case s.Mode == ModeEdit && s.TargetID != "":
		idx, ok := e.list.Remove(s.TargetID)
		if !ok {
			return false
		}
		e.tracker.Clamp(idx, e.list.Len())
		e.logger.Info("card removed", "id", s.TargetID, "index", idx)
		return true
	}
	return false
}

func (e *Editor) close() {
	e.session = nil
}
