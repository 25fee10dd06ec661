// Package gallery holds the in-memory food card list, the modal edit
// session and the carousel position tracker.
package gallery

import (
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ImageKind distinguishes bundled assets from files picked on this machine.
type ImageKind string

const (
	ImageAsset ImageKind = "asset"
	ImageFile  ImageKind = "file"
)

// ImageRef points at the picture shown on a card.
type ImageRef struct {
	Kind ImageKind
	Ref  string
}

func AssetImage(id string) ImageRef {
	return ImageRef{Kind: ImageAsset, Ref: strings.TrimSpace(id)}
}

func FileImage(path string) ImageRef {
	return ImageRef{Kind: ImageFile, Ref: strings.TrimSpace(path)}
}

func (r ImageRef) IsZero() bool {
	return strings.TrimSpace(r.Ref) == ""
}

// Label is the short name shown in the carousel.
func (r ImageRef) Label() string {
	if r.IsZero() {
		return ""
	}
	if r.Kind == ImageFile {
		return filepath.Base(r.Ref)
	}
	return r.Ref
}

func (r ImageRef) String() string {
	if r.IsZero() {
		return ""
	}
	return string(r.Kind) + ":" + r.Ref
}

// Fields are the user-editable parts of a card.
type Fields struct {
	DishName    string
	Calories    string
	Ingredients string
}

// Card is one food item in the gallery. ID is assigned once at creation
// and survives reordering and removal of other cards.
type Card struct {
	ID    string
	Image ImageRef
	Fields
}

func NewCard(image ImageRef, fields Fields) Card {
	return Card{ID: uuid.NewString(), Image: image, Fields: fields}
}
