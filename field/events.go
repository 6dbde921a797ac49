package field

import "github.com/iw2rmb/parkedfield/parked"

// ChangeEvent reports the field after an edit was processed.
type ChangeEvent struct {
	Version uint64

	// Text is the full field text, parked segment included.
	Text string
	// Typed is Text without the parked segment.
	Typed string

	Caret   int
	Phase   parked.Phase
	Outcome parked.Outcome
}

func (m Model) buildChangeEvent() ChangeEvent {
	res := m.ctrl.LastResult()
	return ChangeEvent{
		Version: m.buf.Version(),
		Text:    m.buf.Text(),
		Typed:   m.ctrl.TypedText(),
		Caret:   m.buf.Cursor(),
		Phase:   m.ctrl.State().Phase,
		Outcome: res.Outcome,
	}
}
