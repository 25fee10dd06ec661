// Package credentials validates the login and account creation forms.
//
// Nothing here is a security boundary. Values are checked for presence only,
// never hashed, stored or sent anywhere.
package credentials

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrLoginIncomplete   = errors.New("username and password are required")
	ErrAccountIncomplete = errors.New("all fields and an exercise frequency are required")
)

// Notice turns a validation error into the title and body of the blocking
// alert that names the fix.
func Notice(err error) (title, body string) {
	switch {
	case err == nil:
		return "", ""
	case errors.Is(err, ErrLoginIncomplete):
		return "Login Failed", "Please enter both username and password"
	case errors.Is(err, ErrAccountIncomplete):
		return "Error", "Please fill out all fields and select exercise frequency"
	default:
		return "Error", err.Error()
	}
}

// Form is anything the credential screens can submit.
type Form interface {
	Validate() error
}

// Submit validates form and calls onSuccess only when it passes. The form is
// never modified.
func Submit(form Form, onSuccess func()) error {
	if err := form.Validate(); err != nil {
		return err
	}
	if onSuccess != nil {
		onSuccess()
	}
	return nil
}

type Login struct {
	Username string
	Password string
}

func (l Login) Validate() error {
	if blank(l.Username) || blank(l.Password) {
		return ErrLoginIncomplete
	}
	return nil
}

type Account struct {
	Username string
	Password string
	Email    string
	Height   string
	Weight   string
	Exercise Exercise
}

func (a Account) Validate() error {
	for _, v := range []string{a.Username, a.Password, a.Email, a.Height, a.Weight} {
		if blank(v) {
			return ErrAccountIncomplete
		}
	}
	if !a.Exercise.Chosen() {
		return ErrAccountIncomplete
	}
	return nil
}

// Summary is the confirmation text shown after an account is created.
func (a Account) Summary() string {
	return fmt.Sprintf("Username: %s\nEmail: %s\nHeight: %s cm\nWeight: %s kg\nExercise: %s",
		strings.TrimSpace(a.Username),
		strings.TrimSpace(a.Email),
		strings.TrimSpace(a.Height),
		strings.TrimSpace(a.Weight),
		a.Exercise.Label(),
	)
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
