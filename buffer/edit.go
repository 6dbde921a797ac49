package buffer

import "github.com/iw2rmb/parkedfield/internal/grapheme"

// InsertText inserts text at the cursor, or replaces the active selection.
// Line breaks are folded to spaces.
func (b *Buffer) InsertText(s string) bool {
	if s == "" {
		if _, ok := b.Selection(); ok {
			return b.DeleteSelection()
		}
		return false
	}

	r, ok := b.Selection()
	if !ok {
		r = Range{Start: b.cursor, End: b.cursor}
	}
	return b.edit(r, foldLineBreaks(s))
}

// DeleteBackward applies backspace semantics.
func (b *Buffer) DeleteBackward() bool {
	if _, ok := b.Selection(); ok {
		return b.DeleteSelection()
	}
	if b.cursor == 0 {
		return false
	}
	return b.edit(Range{Start: b.cursor - 1, End: b.cursor}, "")
}

// DeleteForward applies delete-key semantics.
func (b *Buffer) DeleteForward() bool {
	if _, ok := b.Selection(); ok {
		return b.DeleteSelection()
	}
	if b.cursor >= len(b.clusters) {
		return false
	}
	return b.edit(Range{Start: b.cursor, End: b.cursor + 1}, "")
}

// DeleteWordBackward deletes from the previous word boundary to the cursor.
func (b *Buffer) DeleteWordBackward() bool {
	if _, ok := b.Selection(); ok {
		return b.DeleteSelection()
	}
	start := prevWordBoundary(b.clusters, b.cursor)
	if start == b.cursor {
		return false
	}
	return b.edit(Range{Start: start, End: b.cursor}, "")
}

// DeleteSelection deletes the active selection, if any.
func (b *Buffer) DeleteSelection() bool {
	r, ok := b.Selection()
	if !ok {
		return false
	}
	return b.edit(r, "")
}

// Replace replaces r with text as a local edit.
func (b *Buffer) Replace(r Range, text string) bool {
	return b.edit(r, foldLineBreaks(text))
}

func (b *Buffer) edit(r Range, text string) bool {
	change := b.beginChange(ChangeSourceLocal)
	nextCursor, applied, changed := b.replaceRange(r, text)
	if !changed {
		return false
	}
	b.cursor = nextCursor
	b.sel = selectionState{}
	b.version++
	change.addAppliedEdit(applied)
	b.commitChange(change)
	return true
}

func (b *Buffer) replaceRange(r Range, text string) (nextCursor int, applied AppliedEdit, changed bool) {
	r = NormalizeRange(ClampRange(r, len(b.clusters)))
	deleted := grapheme.Join(b.clusters[r.Start:r.End])
	if deleted == text {
		return b.cursor, AppliedEdit{}, false
	}

	ins := grapheme.Split(text)
	out := make([]string, 0, len(b.clusters)-r.Len()+len(ins))
	out = append(out, b.clusters[:r.Start]...)
	out = append(out, ins...)
	out = append(out, b.clusters[r.End:]...)

	// Re-segment: an inserted combining mark may merge with its neighbour.
	joined := grapheme.Join(out)
	b.clusters = grapheme.Split(joined)

	nextCursor = ClampOffset(grapheme.Count(grapheme.Join(out[:r.Start+len(ins)])), len(b.clusters))

	applied = AppliedEdit{
		RangeBefore: r,
		RangeAfter:  Range{Start: r.Start, End: nextCursor},
		InsertText:  text,
		DeletedText: deleted,
	}
	return nextCursor, applied, true
}
