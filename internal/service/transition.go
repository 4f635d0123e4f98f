package service

import (
	"fmt"

	"github.com/pickle-rental/pickle-api/internal/domain"
)

// TransitionPolicy decides whether a reservation may move from one status
// to another. It returns nil to allow the change.
type TransitionPolicy interface {
	Check(from, to domain.ReservationStatus) error
}

// TransitionPolicyFunc adapts a function to TransitionPolicy.
type TransitionPolicyFunc func(from, to domain.ReservationStatus) error

// Check calls f(from, to).
func (f TransitionPolicyFunc) Check(from, to domain.ReservationStatus) error {
	return f(from, to)
}

// AllowAllTransitions permits every change, including canceling an already
// canceled or fulfilled reservation. It is the default policy.
var AllowAllTransitions TransitionPolicy = TransitionPolicyFunc(func(_, _ domain.ReservationStatus) error {
	return nil
})

// TransitionTable allows only the listed target statuses for each source status.
type TransitionTable map[domain.ReservationStatus][]domain.ReservationStatus

// Check implements TransitionPolicy.
func (t TransitionTable) Check(from, to domain.ReservationStatus) error {
	for _, allowed := range t[from] {
		if allowed == to {
			return nil
		}
	}
	return fmt.Errorf("%w: %s -> %s", ErrTransitionNotAllowed, from, to)
}
