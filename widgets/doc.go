// Package widgets contains dumb render primitives.
//
// Allowed here:
// - stateless drawing/composition helpers (boxes, stacks, carousel strip, popup overlay compositor)
//
// Not allowed here:
// - key handling, app state transitions, scope logic, or navigation policy
package widgets
