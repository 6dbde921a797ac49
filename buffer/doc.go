// Package buffer implements the single-line, grapheme-accurate text model
// behind a parked field.
//
// Offsets are 0-based grapheme cluster counts. Ranges are half-open:
// [Start, End). Line breaks and tabs never enter the buffer; inserted text has
// them folded to spaces.
package buffer
