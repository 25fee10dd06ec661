// Package media is the boundary to the device picture sources: the image
// library on disk and an external camera capture command.
package media

import (
	"context"
	"errors"
	"strings"
)

// ErrCancelled means the user backed out of a picker or capture. Callers
// treat it as "nothing happened".
var ErrCancelled = errors.New("media: cancelled")

// Access is the configured answer to a permission request.
type Access string

const (
	AccessGranted Access = "granted"
	AccessDenied  Access = "denied"
)

// ParseAccess accepts granted/denied and their yes/no, true/false spellings.
// Anything unrecognised is denied.
func ParseAccess(s string) Access {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "granted", "grant", "allow", "yes", "true", "1":
		return AccessGranted
	default:
		return AccessDenied
	}
}

// Permission answers requests for one device capability.
type Permission struct {
	Name   string
	Access Access
}

// Request reports whether the capability may be used. A denial is not an
// error.
func (p Permission) Request(ctx context.Context) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	return p.Access == AccessGranted, nil
}
