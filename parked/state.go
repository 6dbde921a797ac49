package parked

// Phase is the typing phase of a field.
type Phase uint8

const (
	// PhaseIdle means the field is empty and the parked text is not inserted.
	PhaseIdle Phase = iota
	// PhaseEngaged means the parked text is present and anchored.
	PhaseEngaged
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseEngaged:
		return "engaged"
	default:
		return "unknown"
	}
}

// State is the mutable field state. The zero value is an empty, idle field.
//
// While Phase is PhaseEngaged, Raw carries the parked text at the configured
// edge. PrevValid is only ever assigned values that do.
type State struct {
	Raw       string
	PrevValid string
	Phase     Phase
}

// Outcome reports which transition Step took.
type Outcome uint8

const (
	// OutcomeNone: idle field stayed empty.
	OutcomeNone Outcome = iota
	// OutcomeEngaged: first input composed with the parked text.
	OutcomeEngaged
	// OutcomeAccepted: edit stayed inside the typed region.
	OutcomeAccepted
	// OutcomeRejected: edit touched the parked text and was rolled back.
	OutcomeRejected
	// OutcomeCollapsed: only the parked text was left, field emptied.
	OutcomeCollapsed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeEngaged:
		return "engaged"
	case OutcomeAccepted:
		return "accepted"
	case OutcomeRejected:
		return "rejected"
	case OutcomeCollapsed:
		return "collapsed"
	default:
		return "unknown"
	}
}
