package buffer

import (
	"strings"

	"github.com/iw2rmb/parkedfield/internal/grapheme"
)

type selectionState struct {
	active bool
	anchor int
	end    int
}

// Buffer is the pure field state: text, caret, and selection.
type Buffer struct {
	clusters []string
	version  uint64

	cursor int
	sel    selectionState

	lastChange    Change
	hasLastChange bool
}

func New(text string) *Buffer {
	return &Buffer{clusters: grapheme.Split(foldLineBreaks(text))}
}

func (b *Buffer) Text() string { return grapheme.Join(b.clusters) }

// Len returns the text length in grapheme clusters.
func (b *Buffer) Len() int { return len(b.clusters) }

func (b *Buffer) Version() uint64 { return b.version }

func (b *Buffer) Cursor() int { return b.cursor }

// Clusters returns a copy of the grapheme clusters.
func (b *Buffer) Clusters() []string {
	return append([]string(nil), b.clusters...)
}

func (b *Buffer) SetCursor(off int) {
	next := ClampOffset(off, len(b.clusters))
	if next == b.cursor && !b.sel.active {
		return
	}
	b.cursor = next
	b.sel = selectionState{}
	b.version++
}

// SetText replaces the whole text as a host-originated change. The caret
// is clamped to the new length and the selection is cleared.
func (b *Buffer) SetText(text string) {
	text = foldLineBreaks(text)
	before := b.Text()
	if before == text {
		return
	}
	change := b.beginChange(ChangeSourceHost)
	b.clusters = grapheme.Split(text)
	b.cursor = ClampOffset(b.cursor, len(b.clusters))
	b.sel = selectionState{}
	b.version++
	change.addAppliedEdit(AppliedEdit{
		RangeBefore: Range{Start: 0, End: grapheme.Count(before)},
		RangeAfter:  Range{Start: 0, End: len(b.clusters)},
		InsertText:  text,
		DeletedText: before,
	})
	b.commitChange(change)
}

func (b *Buffer) Selection() (Range, bool) {
	if !b.sel.active {
		return Range{}, false
	}
	r := NormalizeRange(Range{Start: b.sel.anchor, End: b.sel.end})
	if r.IsEmpty() {
		return Range{}, false
	}
	return r, true
}

// SelectionRaw returns the raw selection anchor/end without normalization.
func (b *Buffer) SelectionRaw() (Range, bool) {
	if !b.sel.active || b.sel.anchor == b.sel.end {
		return Range{}, false
	}
	return Range{Start: b.sel.anchor, End: b.sel.end}, true
}

// SetSelection selects r and moves the caret to r.End.
func (b *Buffer) SetSelection(r Range) {
	clamped := ClampRange(r, len(b.clusters))
	next := selectionState{active: true, anchor: clamped.Start, end: clamped.End}
	if clamped.IsEmpty() {
		next = selectionState{}
	}
	if selectionStateEqual(b.sel, next) && b.cursor == clamped.End {
		return
	}
	b.sel = next
	b.cursor = clamped.End
	b.version++
}

// SelectAll selects the whole text.
func (b *Buffer) SelectAll() {
	b.SetSelection(Range{Start: 0, End: len(b.clusters)})
}

func (b *Buffer) ClearSelection() {
	if !b.sel.active {
		return
	}
	if _, ok := b.Selection(); !ok {
		b.sel = selectionState{}
		return
	}
	b.sel = selectionState{}
	b.version++
}

// TextInRange returns the text covered by r, clamped to the buffer.
func (b *Buffer) TextInRange(r Range) string {
	r = NormalizeRange(ClampRange(r, len(b.clusters)))
	return grapheme.Join(b.clusters[r.Start:r.End])
}

var singleLine = strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ", "\t", " ")

// foldLineBreaks keeps text on one line: line breaks and tabs become spaces.
func foldLineBreaks(s string) string {
	if !strings.ContainsAny(s, "\r\n\t") {
		return s
	}
	return singleLine.Replace(s)
}
