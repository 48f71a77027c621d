// Package tui implements the interactive checkdoc prompter as Bubble Tea
// programs: a single-key confirm question and a filterable keyword chooser
// with completion against the known-keyword set.
package tui
