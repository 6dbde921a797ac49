package field

import (
	"github.com/iw2rmb/parkedfield/buffer"
	"github.com/iw2rmb/parkedfield/parked"
)

// textView adapts a buffer to parked.TextView. The controller writes the
// canonical text, segments and caret here; the model renders from it.
type textView struct {
	buf *buffer.Buffer

	segments []parked.Segment

	placeholder     string
	placeholderSpan parked.Span

	listener func()
}

var _ parked.TextView = (*textView)(nil)

func (v *textView) Text() string { return v.buf.Text() }

func (v *textView) SetText(text string) {
	v.buf.SetText(text)
	v.notify()
}

func (v *textView) SetStyledText(segments []parked.Segment) {
	v.segments = append(v.segments[:0:0], segments...)
}

func (v *textView) SetPlaceholder(text string, span parked.Span) {
	v.placeholder = text
	v.placeholderSpan = span
}

func (v *textView) SetCaret(offset int) { v.buf.SetCursor(offset) }

func (v *textView) SetEditListener(fn func()) { v.listener = fn }

func (v *textView) notify() {
	if v.listener != nil {
		v.listener()
	}
}

// styledClusters returns the text as (cluster, tag) pairs. Segments that no
// longer match the buffer fall back to one typed run.
func (v *textView) styledClusters() ([]string, []parked.Tag) {
	clusters := v.buf.Clusters()
	tags := make([]parked.Tag, 0, len(clusters))
	for _, seg := range v.segments {
		for range splitClusters(seg.Text) {
			tags = append(tags, seg.Tag)
		}
	}
	if len(tags) != len(clusters) {
		tags = tags[:0]
		for range clusters {
			tags = append(tags, parked.TagTyped)
		}
	}
	return clusters, tags
}

// placeholderClusters returns the placeholder as (cluster, tag) pairs.
func (v *textView) placeholderClusters() ([]string, []parked.Tag) {
	var clusters []string
	var tags []parked.Tag
	for _, seg := range parked.SegmentsWithin(v.placeholder, v.placeholderSpan, parked.TagPlaceholder) {
		for _, c := range splitClusters(seg.Text) {
			clusters = append(clusters, c)
			tags = append(tags, seg.Tag)
		}
	}
	return clusters, tags
}
