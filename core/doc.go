// Package core contains app-wide contracts and state orchestration.
//
// Allowed here:
// - model routing, message contracts, command and key registries
// - the page navigator and its transition table
// - shared state machines used across screens (for example picker logic)
//
// Not allowed here:
// - concrete page, screen or modal rendering implementations
// - low-level widget rendering primitives
package core
