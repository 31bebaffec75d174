package checkout

import "fmt"

// Step is one stage of the linear purchase workflow.
type Step string

const (
	StepShipping     Step = "shipping"
	StepPayment      Step = "payment"
	StepReview       Step = "review"
	StepConfirmation Step = "confirmation"
	// StepFailed is entered when the commit sequence reports failure.
	// The session can be retried or edited from here.
	StepFailed Step = "failed"
)

func (s Step) String() string {
	return string(s)
}

// IsTerminal reports whether no further transition is defined.
func (s Step) IsTerminal() bool {
	return s == StepConfirmation
}

// Event is a user action or commit outcome driving the machine.
type Event string

const (
	EventSubmitShipping  Event = "submit_shipping"
	EventSubmitPayment   Event = "submit_payment"
	EventCommitSucceeded Event = "commit_succeeded"
	EventCommitFailed    Event = "commit_failed"
	EventEditShipping    Event = "edit_shipping"
	EventEditPayment     Event = "edit_payment"
)

var transitions = map[Step]map[Event]Step{
	StepShipping: {
		EventSubmitShipping: StepPayment,
	},
	StepPayment: {
		EventSubmitPayment: StepReview,
		EventEditShipping:  StepShipping,
	},
	StepReview: {
		EventCommitSucceeded: StepConfirmation,
		EventCommitFailed:    StepFailed,
		EventEditShipping:    StepShipping,
		EventEditPayment:     StepPayment,
	},
	StepFailed: {
		EventCommitSucceeded: StepConfirmation,
		EventCommitFailed:    StepFailed,
		EventEditShipping:    StepShipping,
		EventEditPayment:     StepPayment,
	},
}

// Next returns the step reached by applying event at current. Field-level
// guards (required shipping fields, selectable payment method) are checked
// by the caller before the transition is applied.
func Next(current Step, event Event) (Step, error) {
	next, ok := transitions[current][event]
	if !ok {
		return current, fmt.Errorf("%w: %s from %s", ErrInvalidTransition, event, current)
	}
	return next, nil
}
