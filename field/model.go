package field

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/parkedfield/buffer"
	"github.com/iw2rmb/parkedfield/parked"
)

// Model is a Bubble Tea component for a single-line input with parked text.
type Model struct {
	cfg  Config
	buf  *buffer.Buffer
	view *textView
	ctrl *parked.Controller

	focused bool

	// offset is the first visible cluster when the text is wider than Width.
	offset int
}

func New(cfg Config) Model {
	if cfg.KeyMap.isZero() {
		cfg.KeyMap = DefaultKeyMap()
	}
	if cfg.Width < 0 {
		cfg.Width = 0
	}

	buf := buffer.New("")
	view := &textView{buf: buf}
	m := Model{
		cfg:     cfg,
		buf:     buf,
		view:    view,
		ctrl:    parked.NewController(view, cfg.parked(), parked.WithLogger(cfg.Logger)),
		focused: true,
	}
	return m
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Focus() Model {
	m.focused = true
	return m
}

func (m Model) Blur() Model {
	m.focused = false
	return m
}

func (m Model) Focused() bool { return m.focused }

// SetWidth sets the input width in cells. Zero means unbounded.
func (m Model) SetWidth(width int) Model {
	if width < 0 {
		width = 0
	}
	m.cfg.Width = width
	m.scrollToCursor()
	return m
}

func (m Model) Width() int { return m.cfg.Width }

// Value returns the full text, parked segment included.
func (m Model) Value() string { return m.buf.Text() }

// TypedText returns the user-entered part of the text.
func (m Model) TypedText() string { return m.ctrl.TypedText() }

// SetTypedText replaces the user-entered part, keeping the parked text.
func (m Model) SetTypedText(s string) Model {
	m.ctrl.SetTypedText(s)
	return m.afterEdit()
}

func (m Model) ParkedText() string { return m.ctrl.ParkedText() }

// SetParkedText swaps the parked text, keeping any typed text.
func (m Model) SetParkedText(s string) Model {
	had := m.buf.Text()
	m.ctrl.SetParkedText(s)
	if m.buf.Text() == had {
		m.scrollToCursor()
		return m
	}
	return m.afterEdit()
}

// SetEdge moves the parked text to the other edge, keeping any typed text.
func (m Model) SetEdge(e parked.Edge) Model {
	had := m.buf.Text()
	m.ctrl.SetEdge(e)
	if m.buf.Text() == had {
		return m
	}
	return m.afterEdit()
}

func (m Model) Placeholder() string { return m.ctrl.PlaceholderText() }

func (m Model) SetPlaceholder(s string) Model {
	m.ctrl.SetPlaceholderText(s)
	return m
}

// Reset empties the field.
func (m Model) Reset() Model {
	if m.buf.Text() == "" {
		return m
	}
	m.ctrl.Clear()
	return m.afterEdit()
}

func (m Model) Phase() parked.Phase { return m.ctrl.State().Phase }

// Caret returns the caret offset in grapheme clusters.
func (m Model) Caret() int { return m.buf.Cursor() }

func (m Model) Selection() (buffer.Range, bool) { return m.buf.Selection() }

func (m Model) KeyMap() KeyMap { return m.cfg.KeyMap }

// afterEdit keeps the caret visible and reports the change to the host.
func (m Model) afterEdit() Model {
	m.scrollToCursor()
	if m.cfg.OnChange != nil {
		m.cfg.OnChange(m.buildChangeEvent())
	}
	return m
}

func (m *Model) scrollToCursor() {
	w := m.cfg.Width
	if w <= 0 {
		m.offset = 0
		return
	}

	widths := cellWidths(m.buf.Clusters())
	cur := m.buf.Cursor()
	caretW := 1
	if cur < len(widths) && widths[cur] > 0 {
		caretW = widths[cur]
	}

	if m.offset > cur {
		m.offset = cur
	}
	for m.offset < cur && sumRange(widths, m.offset, cur)+caretW > w {
		m.offset++
	}
	// Pull text back in when a deletion left room on the right.
	for m.offset > 0 && sumRange(widths, m.offset-1, len(widths))+1 <= w {
		m.offset--
	}
}
