package parked

import "github.com/iw2rmb/parkedfield/internal/grapheme"

// Tag classifies a rendered run of text.
type Tag uint8

const (
	TagTyped Tag = iota
	TagParked
	TagPlaceholder
)

func (t Tag) String() string {
	switch t {
	case TagTyped:
		return "typed"
	case TagParked:
		return "parked"
	case TagPlaceholder:
		return "placeholder"
	default:
		return "unknown"
	}
}

// Segment is one styled run of field text.
type Segment struct {
	Text string
	Tag  Tag
}

// Span is a grapheme range [Start, Start+Len).
type Span struct {
	Start int
	Len   int
}

func (s Span) End() int { return s.Start + s.Len }

// Satisfies reports whether raw carries the parked text at the configured
// edge. An empty parked text is always satisfied.
func Satisfies(cfg Config, raw string) bool {
	if cfg.AtEnd() {
		return grapheme.HasSuffix(raw, cfg.ParkedText)
	}
	return grapheme.HasPrefix(raw, cfg.ParkedText)
}

// TypedText returns raw without the parked text at the configured edge, or
// raw unchanged when the parked text is not there.
func TypedText(cfg Config, raw string) string {
	if cfg.AtEnd() {
		typed, _ := grapheme.CutSuffix(raw, cfg.ParkedText)
		return typed
	}
	typed, _ := grapheme.CutPrefix(raw, cfg.ParkedText)
	return typed
}

// Compose attaches the parked text to typed at the configured edge.
func Compose(cfg Config, typed string) string {
	if cfg.AtEnd() {
		return typed + cfg.ParkedText
	}
	return cfg.ParkedText + typed
}

// Anchor returns the caret offset that keeps input in the typed region:
// just before the parked text in suffix mode, end of text in prefix mode.
func Anchor(cfg Config, raw string) int {
	n := grapheme.Count(raw)
	if !cfg.AtEnd() {
		return n
	}
	off := n - grapheme.Count(cfg.ParkedText)
	if off < 0 {
		return 0
	}
	return off
}

// ParkedSpan locates the parked text in raw, searching from the end in
// suffix mode and from the start in prefix mode.
func ParkedSpan(cfg Config, raw string) (Span, bool) {
	if cfg.ParkedText == "" || raw == "" {
		return Span{}, false
	}
	var at int
	if cfg.AtEnd() {
		at = grapheme.LastIndex(raw, cfg.ParkedText)
	} else {
		at = grapheme.Index(raw, cfg.ParkedText)
	}
	if at < 0 {
		return Span{}, false
	}
	return Span{Start: at, Len: grapheme.Count(cfg.ParkedText)}, true
}

// Segments splits raw into typed and parked runs for rendering. Empty runs
// are omitted; raw without the parked text renders as one typed run.
func Segments(cfg Config, raw string) []Segment {
	if raw == "" {
		return nil
	}
	span, ok := ParkedSpan(cfg, raw)
	if !ok {
		return []Segment{{Text: raw, Tag: TagTyped}}
	}

	out := make([]Segment, 0, 3)
	out = appendSegment(out, grapheme.Slice(raw, 0, span.Start), TagTyped)
	out = appendSegment(out, grapheme.Slice(raw, span.Start, span.End()), TagParked)
	out = appendSegment(out, grapheme.Slice(raw, span.End(), grapheme.Count(raw)), TagTyped)
	return out
}

// Placeholder returns the placeholder line and the span of the parked text
// within it. The placeholder text precedes the parked text in suffix mode
// and follows it in prefix mode.
func Placeholder(cfg Config) (string, Span) {
	parkedLen := grapheme.Count(cfg.ParkedText)
	if cfg.AtEnd() {
		return cfg.PlaceholderText + cfg.ParkedText, Span{Start: grapheme.Count(cfg.PlaceholderText), Len: parkedLen}
	}
	return cfg.ParkedText + cfg.PlaceholderText, Span{Start: 0, Len: parkedLen}
}

// PlaceholderSegments is Placeholder split into styled runs.
func PlaceholderSegments(cfg Config) []Segment {
	out := make([]Segment, 0, 2)
	if cfg.AtEnd() {
		out = appendSegment(out, cfg.PlaceholderText, TagPlaceholder)
		return appendSegment(out, cfg.ParkedText, TagParked)
	}
	out = appendSegment(out, cfg.ParkedText, TagParked)
	return appendSegment(out, cfg.PlaceholderText, TagPlaceholder)
}

// SegmentsWithin splits text by a parked span, as reported through
// TextView.SetPlaceholder.
func SegmentsWithin(text string, parked Span, rest Tag) []Segment {
	n := grapheme.Count(text)
	start := clamp(parked.Start, 0, n)
	end := clamp(parked.End(), start, n)

	out := make([]Segment, 0, 3)
	out = appendSegment(out, grapheme.Slice(text, 0, start), rest)
	out = appendSegment(out, grapheme.Slice(text, start, end), TagParked)
	return appendSegment(out, grapheme.Slice(text, end, n), rest)
}

func appendSegment(out []Segment, text string, tag Tag) []Segment {
	if text == "" {
		return out
	}
	return append(out, Segment{Text: text, Tag: tag})
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
