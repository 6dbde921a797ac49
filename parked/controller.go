package parked

import (
	"io"
	"log/slog"
	"math"
)

// TextView is the host capability a Controller drives.
//
// The view reports every raw-text mutation through the listener installed by
// SetEditListener, before the next user input is processed.
type TextView interface {
	Text() string
	SetText(text string)
	SetStyledText(segments []Segment)
	SetPlaceholder(text string, parked Span)
	SetCaret(offset int)
	SetEditListener(fn func())
}

type Option func(*Controller)

// WithLogger routes transition logs to l.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.log = l
		}
	}
}

// Controller owns a field's State and keeps its TextView consistent with it.
//
// A Controller is not safe for concurrent use; it is driven from the UI
// event loop.
type Controller struct {
	view  TextView
	cfg   Config
	state State
	last  Result

	// handling suppresses notifications raised by the controller's own writes.
	handling bool

	log *slog.Logger
}

// NewController attaches a controller to view. Text already present in the
// view is adopted as if the user had typed it.
func NewController(view TextView, cfg Config, opts ...Option) *Controller {
	c := &Controller{
		view: view,
		cfg:  cfg,
		log:  slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.Level(math.MaxInt)})),
	}
	for _, opt := range opts {
		opt(c)
	}
	view.SetEditListener(c.OnEditEvent)
	c.refreshPlaceholder()
	if view.Text() != "" {
		c.OnEditEvent()
	}
	return c
}

// OnEditEvent re-derives the field after the view's text changed.
func (c *Controller) OnEditEvent() {
	if c.handling {
		return
	}
	c.apply(c.view.Text())
}

// Config returns the current configuration.
func (c *Controller) Config() Config { return c.cfg }

// State returns a copy of the current field state.
func (c *Controller) State() State { return c.state }

// LastResult returns the result of the most recent transition.
func (c *Controller) LastResult() Result { return c.last }

func (c *Controller) ParkedText() string { return c.cfg.ParkedText }

// SetParkedText replaces the parked text. Typed text, if any, is kept and
// the new parked text is swapped in at the same edge.
func (c *Controller) SetParkedText(v string) {
	typed := c.TypedText()
	c.cfg.ParkedText = v
	if typed != "" {
		c.recompose(typed)
	}
	c.refreshPlaceholder()
}

func (c *Controller) Edge() Edge { return c.cfg.Edge }

// SetEdge moves the parked text to edge e, keeping typed text.
func (c *Controller) SetEdge(e Edge) {
	if e == c.cfg.Edge {
		return
	}
	typed := c.TypedText()
	c.cfg.Edge = e
	if typed != "" {
		c.recompose(typed)
	}
	c.refreshPlaceholder()
}

func (c *Controller) PlaceholderText() string { return c.cfg.PlaceholderText }

func (c *Controller) SetPlaceholderText(v string) {
	c.cfg.PlaceholderText = v
	c.refreshPlaceholder()
}

// TypedText returns the user-entered part of the view's text.
func (c *Controller) TypedText() string {
	return TypedText(c.cfg, c.view.Text())
}

// SetTypedText replaces the user-entered part and re-runs the edit handler.
func (c *Controller) SetTypedText(v string) {
	raw := Compose(c.cfg, v)
	c.write(raw)
	c.apply(raw)
}

// Clear empties the field and returns it to PhaseIdle.
func (c *Controller) Clear() {
	c.write("")
	c.state = State{PrevValid: c.state.PrevValid}
	c.last = Result{State: c.state, Outcome: OutcomeCollapsed}
	c.view.SetStyledText(nil)
	c.view.SetCaret(0)
}

func (c *Controller) recompose(typed string) {
	raw := Compose(c.cfg, typed)
	if !Satisfies(c.cfg, raw) {
		c.log.Debug("typed text cannot be parked, clearing", "typed", typed, "parked", c.cfg.ParkedText)
		c.Clear()
		return
	}
	c.state.PrevValid = raw
	c.write(raw)
	c.apply(raw)
}

func (c *Controller) apply(raw string) {
	prev := c.state
	res := Step(c.cfg, prev, raw)
	c.state = res.State
	c.last = res

	c.write(res.State.Raw)
	c.view.SetStyledText(res.Segments)
	c.view.SetCaret(res.Caret)

	switch res.Outcome {
	case OutcomeRejected:
		c.log.Debug("parked text edit rejected", "raw", raw, "restored", res.State.Raw)
	case OutcomeEngaged, OutcomeCollapsed:
		c.log.Debug("parked field phase changed", "from", prev.Phase, "to", res.State.Phase, "raw", res.State.Raw)
	}
}

// write pushes text to the view without re-entering the edit handler.
func (c *Controller) write(text string) {
	if c.view.Text() == text {
		return
	}
	c.handling = true
	defer func() { c.handling = false }()
	c.view.SetText(text)
}

func (c *Controller) refreshPlaceholder() {
	text, span := Placeholder(c.cfg)
	c.view.SetPlaceholder(text, span)
}
