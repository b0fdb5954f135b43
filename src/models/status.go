package models

// Status is the workflow stage of a Submission.
type Status string

const (
	StatusPending         Status = "pending"
	StatusAwaitingPayment Status = "awaiting_payment"
	StatusPaid            Status = "paid"
	StatusConverted       Status = "converted"
	StatusRejected        Status = "rejected"
	StatusEscalated       Status = "escalated"
)

// AllStatuses lists every workflow state in lifecycle order.
var AllStatuses = []Status{
	StatusPending,
	StatusAwaitingPayment,
	StatusPaid,
	StatusConverted,
	StatusRejected,
	StatusEscalated,
}

func IsKnownStatus(s Status) bool {
	for _, st := range AllStatuses {
		if s == st {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transition may leave s.
// converted is fully terminal; paid still allows the back-office conversion.
func (s Status) IsTerminal() bool {
	return s == StatusRejected || s == StatusConverted
}

// SendActionsLocked reports whether the review console must disable the
// quote / payment-link send actions for a record in this state.
func (s Status) SendActionsLocked() bool {
	return s == StatusPaid || s == StatusConverted || s == StatusRejected
}

// transitions encodes the workflow table. Sending a quote or payment link
// while already awaiting_payment is a re-send, handled separately; it is not
// a transition.
var transitions = map[Status][]Status{
	StatusPending:         {StatusAwaitingPayment, StatusRejected, StatusEscalated},
	StatusAwaitingPayment: {StatusPaid, StatusRejected, StatusEscalated},
	StatusEscalated:       {StatusAwaitingPayment, StatusRejected},
	StatusPaid:            {StatusConverted},
	StatusRejected:        {},
	StatusConverted:       {},
}

// CanTransition reports whether the workflow permits moving from one status
// to another. Guards that depend on record contents (quotedPrice being set
// before a send) are checked by the caller, not here.
func CanTransition(from, to Status) bool {
	for _, t := range transitions[from] {
		if t == to {
			return true
		}
	}
	return false
}
