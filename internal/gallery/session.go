package gallery

// Mode says whether the modal is adding a card or showing an existing one.
type Mode int

const (
	ModeNew Mode = iota + 1
	ModeEdit
)

func (m Mode) String() string {
	switch m {
	case ModeNew:
		return "new"
	case ModeEdit:
		return "edit"
	default:
		return "none"
	}
}

// EditSession is the state of one open modal. Draft is what the modal shows
// and edits; Backup is the last saved value that CancelEdit restores.
type EditSession struct {
	Mode        Mode
	Image       ImageRef
	TargetID    string
	TargetIndex int
	Draft       Fields
	Backup      Fields
	Editing     bool
}

// Valid reports whether the session has something to show: a picked image in
// new mode or a target card in edit mode, never both.
func (s EditSession) Valid() bool {
	switch s.Mode {
	case ModeNew:
		return !s.Image.IsZero() && s.TargetID == ""
	case ModeEdit:
		return s.TargetID != ""
	default:
		return false
	}
}
