package buffer

import "github.com/iw2rmb/parkedfield/internal/grapheme"

type MoveUnit int

const (
	MoveGrapheme MoveUnit = iota
	MoveWord
	MoveLine
)

type MoveDir int

const (
	DirLeft MoveDir = iota
	DirRight
	DirHome
	DirEnd
)

type Move struct {
	Unit   MoveUnit
	Dir    MoveDir
	Extend bool // if true, updates selection anchor/end; if false clears selection
}

func (b *Buffer) Move(m Move) {
	prevCursor := b.cursor
	prevSel := b.sel

	nextCursor := ClampOffset(b.moveCursor(prevCursor, m), len(b.clusters))

	nextSel := selectionState{}
	if m.Extend {
		anchor := prevCursor
		if prevSel.active && prevSel.anchor != prevSel.end {
			anchor = prevSel.anchor
		}
		if anchor != nextCursor {
			nextSel = selectionState{active: true, anchor: anchor, end: nextCursor}
		}
	} else if sel, ok := b.Selection(); ok && m.Unit == MoveGrapheme {
		// Collapsing a selection lands on its edge instead of stepping past it.
		switch m.Dir {
		case DirLeft:
			nextCursor = sel.Start
		case DirRight:
			nextCursor = sel.End
		}
	}

	if prevCursor == nextCursor && selectionStateEqual(prevSel, nextSel) {
		return
	}

	b.cursor = nextCursor
	b.sel = nextSel
	b.version++
}

func selectionStateEqual(a, b selectionState) bool {
	if !a.active && !b.active {
		return true
	}
	return a.active == b.active && a.anchor == b.anchor && a.end == b.end
}

func (b *Buffer) moveCursor(p int, m Move) int {
	switch m.Dir {
	case DirHome:
		return 0
	case DirEnd:
		return len(b.clusters)
	}

	switch m.Unit {
	case MoveGrapheme:
		if m.Dir == DirLeft {
			return p - 1
		}
		return p + 1
	case MoveWord:
		if m.Dir == DirLeft {
			return prevWordBoundary(b.clusters, p)
		}
		return nextWordBoundary(b.clusters, p)
	default:
		return p
	}
}

// Word boundary rules:
// - skip whitespace, then skip non-whitespace
// - punctuation runs count as their own word, so "team.slack" has three stops
func prevWordBoundary(line []string, col int) int {
	i := ClampOffset(col, len(line))
	for i > 0 && grapheme.IsSpace(line[i-1]) {
		i--
	}
	if i > 0 && grapheme.IsPunct(line[i-1]) {
		for i > 0 && grapheme.IsPunct(line[i-1]) {
			i--
		}
		return i
	}
	for i > 0 && isWordCluster(line[i-1]) {
		i--
	}
	return i
}

func nextWordBoundary(line []string, col int) int {
	i := ClampOffset(col, len(line))
	for i < len(line) && grapheme.IsSpace(line[i]) {
		i++
	}
	if i < len(line) && grapheme.IsPunct(line[i]) {
		for i < len(line) && grapheme.IsPunct(line[i]) {
			i++
		}
		return i
	}
	for i < len(line) && isWordCluster(line[i]) {
		i++
	}
	return i
}

func isWordCluster(c string) bool {
	return !grapheme.IsSpace(c) && !grapheme.IsPunct(c)
}
