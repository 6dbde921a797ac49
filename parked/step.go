package parked

import "strings"

// Result is the outcome of one edit event.
type Result struct {
	// State is the next field state. State.Raw is the canonical text the
	// view must display.
	State State

	// Segments renders State.Raw. Nil when the field is empty.
	Segments []Segment

	// Caret is the grapheme offset the view must place its caret at.
	Caret int

	Outcome Outcome
}

// Step applies raw, the view's text after an edit, to st.
//
//	Idle,    raw empty            -> no-op
//	Idle,    raw non-empty        -> compose typed+parked, Engaged
//	Idle,    typed merges parked  -> drop input, stay Idle
//	Engaged, raw == parked        -> clear, Idle
//	Engaged, parked at edge       -> accept
//	Engaged, parked text damaged  -> restore PrevValid
//
// Rejection is whole-snapshot: no attempt is made to merge the part of the
// edit that landed in the typed region.
func Step(cfg Config, st State, raw string) Result {
	if st.Phase != PhaseEngaged {
		return stepIdle(cfg, st, raw)
	}

	if raw == cfg.ParkedText {
		return collapsed(st)
	}
	if Satisfies(cfg, raw) {
		return engaged(cfg, raw, OutcomeAccepted)
	}

	restored := st.PrevValid
	if !Satisfies(cfg, restored) {
		// Config changed under a stale snapshot; rebuild it around the typed part.
		var ok bool
		if restored, ok = attach(cfg, restored); !ok {
			return collapsed(State{})
		}
	}
	if restored == "" || restored == cfg.ParkedText {
		return collapsed(st)
	}
	return engaged(cfg, restored, OutcomeRejected)
}

func stepIdle(cfg Config, st State, raw string) Result {
	if raw == "" {
		return Result{State: State{PrevValid: st.PrevValid}, Outcome: OutcomeNone}
	}
	composed, ok := attach(cfg, raw)
	if !ok {
		// The input cannot sit next to the parked text without merging into
		// its edge cluster; drop it and stay Idle.
		return Result{State: State{PrevValid: st.PrevValid}, Outcome: OutcomeRejected}
	}
	if composed == "" {
		return collapsed(st)
	}
	return engaged(cfg, composed, OutcomeEngaged)
}

// attach composes the typed part of raw with the parked text. It returns ""
// when nothing was typed, and false when the result would not carry the
// parked text at its edge: either raw holds the parked bytes at the edge
// without a cluster boundary, or the typed text merges with the parked text.
func attach(cfg Config, raw string) (string, bool) {
	typed := raw
	if Satisfies(cfg, raw) {
		typed = TypedText(cfg, raw)
	} else if hasParkedBytes(cfg, raw) {
		return "", false
	}
	if typed == "" {
		return "", true
	}
	composed := Compose(cfg, typed)
	if !Satisfies(cfg, composed) {
		return "", false
	}
	return composed, true
}

func hasParkedBytes(cfg Config, raw string) bool {
	if cfg.AtEnd() {
		return strings.HasSuffix(raw, cfg.ParkedText)
	}
	return strings.HasPrefix(raw, cfg.ParkedText)
}

func engaged(cfg Config, raw string, outcome Outcome) Result {
	return Result{
		State:    State{Raw: raw, PrevValid: raw, Phase: PhaseEngaged},
		Segments: Segments(cfg, raw),
		Caret:    Anchor(cfg, raw),
		Outcome:  outcome,
	}
}

func collapsed(st State) Result {
	return Result{State: State{PrevValid: st.PrevValid}, Outcome: OutcomeCollapsed}
}
