// Package app is the demo contact browser: a single-pane Bubble Tea model
// exercising the dialog host end to end, including the nested confirm and
// input-veto paths.
package app
