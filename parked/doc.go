// Package parked implements the typing-state machine of a text field that
// keeps a fixed, non-editable string ("parked text") attached to one edge of
// whatever the user types, e.g. "team" + ".slack.com".
//
// The core is the pure transition Step. Controller drives Step from a
// TextView's edit notifications and pushes the canonical text, styled
// segments and caret offset back to it. All offsets are grapheme clusters.
package parked
