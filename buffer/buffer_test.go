package buffer

import "testing"

func TestBuffer_New_FoldsLineBreaks(t *testing.T) {
	b := New("a\nb\r\nc\td")
	if got, want := b.Text(), "a b c d"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := b.Len(), 7; got != want {
		t.Fatalf("len=%d, want %d", got, want)
	}
	if b.Version() != 0 {
		t.Fatalf("expected version 0, got %d", b.Version())
	}
}

func TestBuffer_SetCursor_ClampsAndVersions(t *testing.T) {
	b := New("abc")

	b.SetCursor(999)
	if got := b.Cursor(); got != 3 {
		t.Fatalf("cursor=%d, want 3", got)
	}
	if b.Version() != 1 {
		t.Fatalf("expected version 1, got %d", b.Version())
	}

	b.SetCursor(3)
	if b.Version() != 1 {
		t.Fatalf("expected version unchanged, got %d", b.Version())
	}

	b.SetCursor(-5)
	if got := b.Cursor(); got != 0 {
		t.Fatalf("cursor=%d, want 0", got)
	}
}

func TestBuffer_SetSelection_NormalizesClampsAndVersions(t *testing.T) {
	b := New("hello")

	b.SetSelection(Range{Start: 99, End: -1})
	r, ok := b.Selection()
	if !ok {
		t.Fatalf("expected selection active")
	}
	if want := (Range{Start: 0, End: 5}); r != want {
		t.Fatalf("selection=%v, want %v", r, want)
	}
	raw, _ := b.SelectionRaw()
	if want := (Range{Start: 5, End: 0}); raw != want {
		t.Fatalf("raw selection=%v, want %v", raw, want)
	}
	if got := b.Cursor(); got != 0 {
		t.Fatalf("cursor=%d, want 0", got)
	}

	v := b.Version()
	b.SetSelection(Range{Start: 2, End: 2})
	if _, ok := b.Selection(); ok {
		t.Fatalf("empty selection must be inactive")
	}
	if b.Version() != v+1 {
		t.Fatalf("version=%d, want %d", b.Version(), v+1)
	}
}

func TestBuffer_SetText_RecordsHostChange(t *testing.T) {
	b := New("team")
	b.SetCursor(4)
	b.SetText("team.slack.com")

	if got, want := b.Text(), "team.slack.com"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got := b.Cursor(); got != 4 {
		t.Fatalf("cursor=%d, want 4 (unchanged)", got)
	}
	ch, ok := b.LastChange()
	if !ok {
		t.Fatalf("expected last change")
	}
	if ch.Source != ChangeSourceHost {
		t.Fatalf("source=%v, want host", ch.Source)
	}
	if ch.Edit.DeletedText != "team" || ch.Edit.InsertText != "team.slack.com" {
		t.Fatalf("edit=%+v", ch.Edit)
	}

	v := b.Version()
	b.SetText("team.slack.com")
	if b.Version() != v {
		t.Fatalf("identical SetText must not bump version")
	}

	b.SetText("")
	if got := b.Cursor(); got != 0 {
		t.Fatalf("cursor after clear=%d, want 0", got)
	}
}

func TestBuffer_SelectAllAndTextInRange(t *testing.T) {
	b := New("alice@gmail.com")
	b.SelectAll()
	r, ok := b.Selection()
	if !ok || r != (Range{Start: 0, End: 15}) {
		t.Fatalf("select all=(%v,%v)", r, ok)
	}
	if got, want := b.TextInRange(Range{Start: 5, End: 99}), "@gmail.com"; got != want {
		t.Fatalf("text in range=%q, want %q", got, want)
	}
	b.ClearSelection()
	if _, ok := b.Selection(); ok {
		t.Fatalf("expected selection cleared")
	}
}
