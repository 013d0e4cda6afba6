package booking

import "errors"

var (
	ErrUnknownStatus     = errors.New("unknown booking status")
	ErrIllegalTransition = errors.New("illegal status transition")
	ErrNoOpTransition    = errors.New("requested status equals current status")
)

// transitions is the single source of truth for the booking lifecycle.
// Terminal statuses map to an empty successor set.
var transitions = map[Status][]Status{
	StatusPending:    {StatusApproved, StatusRejected},
	StatusApproved:   {StatusPaid},
	StatusPaid:       {StatusCheckedIn},
	StatusCheckedIn:  {StatusCheckedOut},
	StatusRejected:   {},
	StatusCheckedOut: {},
}

// AttemptTransition decides whether current may move to requested. It never
// mutates anything; applying the returned status to persisted state is the
// caller's concern.
func AttemptTransition(current, requested Status) (Status, error) {
	if !current.IsValid() || !requested.IsValid() {
		return "", ErrUnknownStatus
	}
	if requested == current {
		return "", ErrNoOpTransition
	}
	for _, next := range transitions[current] {
		if next == requested {
			return requested, nil
		}
	}
	return "", ErrIllegalTransition
}

// AvailableActions returns the direct successors of current in lifecycle
// order. Presentation layers render exactly these as actions, so terminal
// statuses naturally offer nothing.
func AvailableActions(current Status) []Status {
	next := transitions[current]
	out := make([]Status, len(next))
	copy(out, next)
	return out
}
