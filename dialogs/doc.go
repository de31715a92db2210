// Package dialogs provides the stock dialog bodies: a yes/no confirm, a
// single-line input, and a filterable picker. Each wraps itself in a
// core lifecycle controller at construction, so callers only Show and
// wait on the typed completion.
package dialogs
