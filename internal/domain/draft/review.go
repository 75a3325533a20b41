package draft

// ReviewState is the clinician-review state of a generated document. It
// drives every status code the assembler emits: model-authored content stays
// preliminary/in-progress until an explicit human transition to reviewed or
// signed, and nothing transitions out of signed (corrections are addenda,
// handled elsewhere).
type ReviewState string

const (
	StateUnvalidated ReviewState = "unvalidated"
	StateValidated   ReviewState = "validated"
	StateReviewed    ReviewState = "reviewed"
	StateSigned      ReviewState = "signed"
	StateBlocked     ReviewState = "blocked"
)

var reviewTransitions = map[ReviewState][]ReviewState{
	StateUnvalidated: {StateValidated, StateBlocked},
	StateValidated:   {StateReviewed, StateBlocked},
	StateReviewed:    {StateSigned, StateBlocked},
	StateSigned:      {},
	StateBlocked:     {},
}

// Valid reports whether s is a known review state.
func (s ReviewState) Valid() bool {
	_, ok := reviewTransitions[s]
	return ok
}

// Final reports whether the content has passed human review; final statuses
// are only ever emitted for these states.
func (s ReviewState) Final() bool {
	return s == StateReviewed || s == StateSigned
}

// Transition validates a review-state change. Any state may move to blocked
// when validation fails; no state may leave signed or blocked otherwise.
func Transition(from, to ReviewState) error {
	if !from.Valid() {
		return &StateError{From: from, To: to}
	}
	for _, allowed := range reviewTransitions[from] {
		if allowed == to {
			return nil
		}
	}
	return &StateError{From: from, To: to}
}
