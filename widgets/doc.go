// Package widgets contains dumb render primitives.
//
// Allowed here:
// - stateless drawing/composition helpers (pane chrome, stacks, the
//   dialog card and its overlay compositor)
//
// Not allowed here:
// - key handling, session state transitions, or dialog lifecycle logic
package widgets
