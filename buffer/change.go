package buffer

// ChangeSource identifies where a change originated.
type ChangeSource uint8

const (
	// ChangeSourceLocal marks edits made through the editing API (keys, paste).
	ChangeSourceLocal ChangeSource = iota
	// ChangeSourceHost marks whole-text replacement through SetText.
	ChangeSourceHost
)

func (s ChangeSource) String() string {
	switch s {
	case ChangeSourceLocal:
		return "local"
	case ChangeSourceHost:
		return "host"
	default:
		return "unknown"
	}
}

// SelectionState captures normalized selection state at a point in time.
type SelectionState struct {
	Active bool
	Range  Range
}

// AppliedEdit describes one effective text replacement.
type AppliedEdit struct {
	RangeBefore Range
	RangeAfter  Range
	InsertText  string
	DeletedText string
}

// Change is a normalized, versioned text mutation.
type Change struct {
	Source          ChangeSource
	VersionBefore   uint64
	VersionAfter    uint64
	CursorBefore    int
	CursorAfter     int
	SelectionBefore SelectionState
	SelectionAfter  SelectionState
	Edit            AppliedEdit
}

type changeBuilder struct {
	source          ChangeSource
	versionBefore   uint64
	cursorBefore    int
	selectionBefore SelectionState
	edit            AppliedEdit
}

// LastChange returns the most recent effective text change.
func (b *Buffer) LastChange() (Change, bool) {
	if !b.hasLastChange {
		return Change{}, false
	}
	return b.lastChange, true
}

func selectionStateFromInternal(sel selectionState) SelectionState {
	if !sel.active {
		return SelectionState{}
	}
	r := NormalizeRange(Range{Start: sel.anchor, End: sel.end})
	if r.IsEmpty() {
		return SelectionState{}
	}
	return SelectionState{Active: true, Range: r}
}

func (b *Buffer) beginChange(source ChangeSource) changeBuilder {
	return changeBuilder{
		source:          source,
		versionBefore:   b.version,
		cursorBefore:    b.cursor,
		selectionBefore: selectionStateFromInternal(b.sel),
	}
}

func (cb *changeBuilder) addAppliedEdit(edit AppliedEdit) {
	edit.RangeBefore = NormalizeRange(edit.RangeBefore)
	edit.RangeAfter = NormalizeRange(edit.RangeAfter)
	cb.edit = edit
}

func (b *Buffer) commitChange(cb changeBuilder) {
	if b.version == cb.versionBefore {
		return
	}
	b.lastChange = Change{
		Source:          cb.source,
		VersionBefore:   cb.versionBefore,
		VersionAfter:    b.version,
		CursorBefore:    cb.cursorBefore,
		CursorAfter:     b.cursor,
		SelectionBefore: cb.selectionBefore,
		SelectionAfter:  selectionStateFromInternal(b.sel),
		Edit:            cb.edit,
	}
	b.hasLastChange = true
}
