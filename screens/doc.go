// Package screens contains concrete overlay flows rendered on top of pages.
//
// Allowed here:
// - screen implementations that satisfy core.Screen (card modal, pickers, alerts, command palette)
// - modal-specific presentation and interaction wiring
//
// Not allowed here:
// - app-wide routing tables and key registry ownership
// - low-level widget/layout primitives
package screens
