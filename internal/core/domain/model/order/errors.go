package order

import (
	"errors"
	"fmt"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrInvalidStateTransition is the sentinel every InvalidTransitionError unwraps to.
	ErrInvalidStateTransition = errors.New("invalid state transition")

	// ErrCompletionNotPending is returned by CompleteAfterAcceptance when the order
	// is no longer accepted, e.g. because a dispute was opened in the meantime.
	ErrCompletionNotPending = errors.New("order has no pending completion")

	// ErrCompletionNotDue is returned by CompleteAfterAcceptance before the completion due time.
	ErrCompletionNotDue = errors.New("order completion is not due yet")
)

// InvalidTransitionError carries the rejected move for diagnostics.
type InvalidTransitionError struct {
	From Status
	To   Status
	Role Role
}

func NewInvalidTransitionError(from, to Status, role Role) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to, Role: role}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s is not allowed for %s", ErrInvalidStateTransition, e.From, e.To, e.Role)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidStateTransition
}
