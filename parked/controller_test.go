package parked

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func newSuffixField(t *testing.T) (*fakeView, *Controller) {
	t.Helper()
	v := &fakeView{}
	c := NewController(v, Config{ParkedText: ".slack.com", PlaceholderText: "yourteam"})
	return v, c
}

func typeEach(v *fakeView, s string) {
	for _, r := range s {
		v.typeText(string(r))
	}
}

func TestController_FirstKeystrokeEngages(t *testing.T) {
	v, c := newSuffixField(t)

	v.typeText("t")
	if got, want := v.text, "t.slack.com"; got != want {
		t.Fatalf("raw=%q, want %q", got, want)
	}
	if got, want := c.TypedText(), "t"; got != want {
		t.Fatalf("typed=%q, want %q", got, want)
	}
	if got := c.State().Phase; got != PhaseEngaged {
		t.Fatalf("phase=%v, want engaged", got)
	}
	if v.caret != 1 {
		t.Fatalf("caret=%d, want 1 (before parked text)", v.caret)
	}
	want := []Segment{{Text: "t", Tag: TagTyped}, {Text: ".slack.com", Tag: TagParked}}
	if diff := cmp.Diff(want, v.segments); diff != "" {
		t.Fatalf("segments (-want +got):\n%s", diff)
	}
}

func TestController_SequentialTyping(t *testing.T) {
	v, c := newSuffixField(t)
	typeEach(v, "team")

	if got, want := v.text, "team.slack.com"; got != want {
		t.Fatalf("raw=%q, want %q", got, want)
	}
	if got, want := c.TypedText(), "team"; got != want {
		t.Fatalf("typed=%q, want %q", got, want)
	}
	if v.caret != 4 {
		t.Fatalf("caret=%d, want 4", v.caret)
	}
}

func TestController_DeleteInsideParkedTextIsRejected(t *testing.T) {
	v, c := newSuffixField(t)
	typeEach(v, "team")

	v.deleteAt(5) // the "s" of ".slack.com"
	if got, want := v.text, "team.slack.com"; got != want {
		t.Fatalf("raw=%q, want %q", got, want)
	}
	if got := c.LastResult().Outcome; got != OutcomeRejected {
		t.Fatalf("outcome=%v, want rejected", got)
	}
	if v.caret != 4 {
		t.Fatalf("caret=%d, want 4 (anchor)", v.caret)
	}
	if got := c.State().PrevValid; got != "team.slack.com" {
		t.Fatalf("prev valid=%q", got)
	}
}

func TestController_DeletingAllTypedTextCollapses(t *testing.T) {
	v, c := newSuffixField(t)
	typeEach(v, "team")

	for i := 0; i < 3; i++ {
		v.backspace()
	}
	if got, want := v.text, "t.slack.com"; got != want {
		t.Fatalf("raw=%q, want %q", got, want)
	}

	v.backspace()
	if v.text != "" {
		t.Fatalf("raw=%q, want empty", v.text)
	}
	if got := c.State().Phase; got != PhaseIdle {
		t.Fatalf("phase=%v, want idle", got)
	}
	if v.segments != nil {
		t.Fatalf("segments=%v, want none", v.segments)
	}
	if got := c.TypedText(); got != "" {
		t.Fatalf("typed=%q, want empty", got)
	}

	// The field engages again on the next keystroke.
	v.typeText("x")
	if got, want := v.text, "x.slack.com"; got != want {
		t.Fatalf("re-engage raw=%q, want %q", got, want)
	}
}

func TestController_SetParkedTextKeepsTypedText(t *testing.T) {
	v := &fakeView{}
	c := NewController(v, Config{ParkedText: ".slack.com"})
	c.SetTypedText("alice")

	c.SetParkedText("@gmail.com")
	if got, want := v.text, "alice@gmail.com"; got != want {
		t.Fatalf("raw=%q, want %q", got, want)
	}
	want := []Segment{{Text: "alice", Tag: TagTyped}, {Text: "@gmail.com", Tag: TagParked}}
	if diff := cmp.Diff(want, v.segments); diff != "" {
		t.Fatalf("segments (-want +got):\n%s", diff)
	}
	if got, want := v.placeholder, "@gmail.com"; got != want {
		t.Fatalf("placeholder=%q, want %q", got, want)
	}
	if v.caret != 5 {
		t.Fatalf("caret=%d, want 5", v.caret)
	}
	if got := c.State().PrevValid; got != "alice@gmail.com" {
		t.Fatalf("prev valid=%q", got)
	}
}

func TestController_SetParkedTextWhileEmptyOnlyStores(t *testing.T) {
	v, c := newSuffixField(t)
	c.SetParkedText(".kayako.com")

	if v.text != "" {
		t.Fatalf("raw=%q, want empty", v.text)
	}
	if got := c.ParkedText(); got != ".kayako.com" {
		t.Fatalf("parked=%q", got)
	}
	if got, want := v.placeholder, "yourteam.kayako.com"; got != want {
		t.Fatalf("placeholder=%q, want %q", got, want)
	}
	if got, want := v.placeholderSpan, (Span{Start: 8, Len: 11}); got != want {
		t.Fatalf("placeholder span=%v, want %v", got, want)
	}

	v.typeText("k")
	if got, want := v.text, "k.kayako.com"; got != want {
		t.Fatalf("raw=%q, want %q", got, want)
	}
}

func TestController_PrefixMode(t *testing.T) {
	v := &fakeView{}
	c := NewController(v, Config{ParkedText: "https://", Edge: EdgeStart})
	typeEach(v, "example.com")

	if got, want := v.text, "https://example.com"; got != want {
		t.Fatalf("raw=%q, want %q", got, want)
	}
	if v.caret != 19 {
		t.Fatalf("caret=%d, want 19 (end of document)", v.caret)
	}
	if got, want := c.TypedText(), "example.com"; got != want {
		t.Fatalf("typed=%q, want %q", got, want)
	}

	v.deleteAt(4) // the "s" of "https"
	if got, want := v.text, "https://example.com"; got != want {
		t.Fatalf("after rejected delete raw=%q, want %q", got, want)
	}
}

func TestController_SetTypedTextRoundTrip(t *testing.T) {
	v, c := newSuffixField(t)
	for _, typed := range []string{"bob", "a b", "日本", "", "x"} {
		c.SetTypedText(typed)
		if got := c.TypedText(); got != typed {
			t.Fatalf("SetTypedText(%q): TypedText=%q", typed, got)
		}
	}
	if got, want := v.text, "x.slack.com"; got != want {
		t.Fatalf("raw=%q, want %q", got, want)
	}

	c.SetTypedText("")
	if v.text != "" || c.State().Phase != PhaseIdle {
		t.Fatalf("empty typed text must collapse: raw=%q phase=%v", v.text, c.State().Phase)
	}
}

func TestController_AdoptsExistingViewText(t *testing.T) {
	v := &fakeView{text: "bob"}
	c := NewController(v, Config{ParkedText: ".slack.com"})
	if got, want := v.text, "bob.slack.com"; got != want {
		t.Fatalf("raw=%q, want %q", got, want)
	}
	if c.State().Phase != PhaseEngaged {
		t.Fatalf("phase=%v, want engaged", c.State().Phase)
	}
}

func TestController_IgnoresItsOwnWrites(t *testing.T) {
	v, c := newSuffixField(t)
	v.typeText("t")

	// One notification from typing and one from the controller's own SetText.
	if v.notified != 2 {
		t.Fatalf("notified=%d, want 2", v.notified)
	}
	if got := c.LastResult().Outcome; got != OutcomeEngaged {
		t.Fatalf("outcome=%v, want engaged (own write must not be re-processed)", got)
	}
}

func TestController_SetEdgeMovesParkedText(t *testing.T) {
	v, c := newSuffixField(t)
	c.SetTypedText("team")

	c.SetEdge(EdgeStart)
	if got, want := v.text, ".slack.comteam"; got != want {
		t.Fatalf("raw=%q, want %q", got, want)
	}
	if got, want := v.placeholder, ".slack.comyourteam"; got != want {
		t.Fatalf("placeholder=%q, want %q", got, want)
	}
	if c.Edge() != EdgeStart {
		t.Fatalf("edge=%v, want start", c.Edge())
	}
}

func TestController_Clear(t *testing.T) {
	v, c := newSuffixField(t)
	typeEach(v, "team")

	c.Clear()
	if v.text != "" || v.caret != 0 || v.segments != nil {
		t.Fatalf("view after clear: text=%q caret=%d segments=%v", v.text, v.caret, v.segments)
	}
	if c.State().Phase != PhaseIdle {
		t.Fatalf("phase=%v, want idle", c.State().Phase)
	}
}

func TestController_SetPlaceholderText(t *testing.T) {
	v, c := newSuffixField(t)
	c.SetPlaceholderText("acme")
	if got, want := v.placeholder, "acme.slack.com"; got != want {
		t.Fatalf("placeholder=%q, want %q", got, want)
	}
	if got := c.PlaceholderText(); got != "acme" {
		t.Fatalf("placeholder text=%q", got)
	}
}

func TestController_LogsRejections(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	v := &fakeView{}
	NewController(v, Config{ParkedText: ".slack.com"}, WithLogger(logger))
	typeEach(v, "team")
	v.deleteAt(6)

	if !strings.Contains(logs.String(), "parked text edit rejected") {
		t.Fatalf("expected rejection log, got:\n%s", logs.String())
	}
	if !strings.Contains(logs.String(), "to=engaged") {
		t.Fatalf("expected phase change log, got:\n%s", logs.String())
	}
}

func TestController_CombiningMarkAfterPrefixIsDropped(t *testing.T) {
	cfg := Config{ParkedText: "https://", Edge: EdgeStart}
	v := &fakeView{}
	c := NewController(v, cfg)

	v.typeText("\u0301")
	if st := c.State(); st.Phase != PhaseIdle || v.text != "" {
		t.Fatalf("phase=%v text=%q, want idle and empty", st.Phase, v.text)
	}

	v.typeText("x")
	if v.text != "https://x" {
		t.Fatalf("text=%q, want %q", v.text, "https://x")
	}

	v.typeText("\u0301")
	if v.text != "https://x\u0301" || !Satisfies(cfg, v.text) {
		t.Fatalf("text=%q, want mark on typed cluster", v.text)
	}
}

func TestController_SetTypedTextThatCannotBeParked(t *testing.T) {
	cfg := Config{ParkedText: "https://", Edge: EdgeStart}
	v := &fakeView{}
	c := NewController(v, cfg)

	c.SetTypedText("\u0301a")
	if st := c.State(); st.Phase != PhaseIdle || v.text != "" {
		t.Fatalf("idle: phase=%v text=%q", st.Phase, v.text)
	}

	c.SetTypedText("a")
	c.SetTypedText("\u0301b")
	if v.text != "https://a" || c.LastResult().Outcome != OutcomeRejected {
		t.Fatalf("engaged: text=%q outcome=%v, want previous text kept", v.text, c.LastResult().Outcome)
	}
}

func TestController_SetParkedTextClearsWhenTypedTextWouldFuse(t *testing.T) {
	v := &fakeView{}
	c := NewController(v, Config{ParkedText: ".io"})

	c.SetTypedText("x")
	c.SetParkedText("\u0301io")
	if st := c.State(); st.Phase != PhaseIdle || v.text != "" {
		t.Fatalf("phase=%v text=%q, want field cleared", st.Phase, v.text)
	}
	if c.ParkedText() != "\u0301io" {
		t.Fatalf("parked=%q, want new parked text stored", c.ParkedText())
	}
}
