// Package field provides a single-line Bubble Tea input with parked text.
//
// The model wires a buffer.Buffer to a parked.Controller: every text-changing
// key is applied to the buffer, reported to the controller, and the
// controller's canonical text, styled segments and caret are rendered back.
package field
