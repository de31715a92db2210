// Package core contains the dialog session contracts and state orchestration.
//
// Allowed here:
// - the host registry and its sessions (top-level and nested presentation)
// - the dialog lifecycle controller and its completion channel
// - the typed result adapter and focus capture/restore over element trees
//
// Not allowed here:
// - concrete dialog rendering implementations (package dialogs)
// - low-level overlay/widget rendering primitives (package widgets)
package core
