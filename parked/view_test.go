package parked

import "github.com/iw2rmb/parkedfield/internal/grapheme"

// fakeView is an in-memory TextView. Like most toolkits it notifies the
// listener on programmatic SetText as well as on user edits.
type fakeView struct {
	text     string
	caret    int
	segments []Segment

	placeholder     string
	placeholderSpan Span

	listener func()
	notified int
}

func (v *fakeView) Text() string { return v.text }

func (v *fakeView) SetText(text string) {
	v.text = text
	v.caret = clamp(v.caret, 0, grapheme.Count(text))
	v.notify()
}

func (v *fakeView) SetStyledText(segments []Segment) { v.segments = segments }

func (v *fakeView) SetPlaceholder(text string, parked Span) {
	v.placeholder = text
	v.placeholderSpan = parked
}

func (v *fakeView) SetCaret(offset int) { v.caret = offset }

func (v *fakeView) SetEditListener(fn func()) { v.listener = fn }

func (v *fakeView) notify() {
	v.notified++
	if v.listener != nil {
		v.listener()
	}
}

// typeText inserts s at the caret, as a keystroke or paste would.
func (v *fakeView) typeText(s string) {
	clusters := grapheme.Split(v.text)
	at := clamp(v.caret, 0, len(clusters))
	v.text = grapheme.Join(clusters[:at]) + s + grapheme.Join(clusters[at:])
	v.caret = at + grapheme.Count(s)
	v.notify()
}

// backspace deletes the cluster before the caret.
func (v *fakeView) backspace() {
	if v.caret == 0 {
		return
	}
	v.deleteAt(v.caret - 1)
}

// deleteAt removes the cluster at offset i and leaves the caret there.
func (v *fakeView) deleteAt(i int) {
	clusters := grapheme.Split(v.text)
	if i < 0 || i >= len(clusters) {
		return
	}
	v.text = grapheme.Join(clusters[:i]) + grapheme.Join(clusters[i+1:])
	v.caret = i
	v.notify()
}
