// Package pages contains the navigator's full-screen pages: login, account
// creation and the home gallery.
//
// Allowed here:
// - page implementations that satisfy core.Page
// - page-owned state (form inputs, the gallery editor) and async media commands
//
// Not allowed here:
// - navigator transitions or key registry ownership
// - overlay screens and low-level widget primitives
package pages
