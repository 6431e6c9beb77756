package order

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// Main path:
//
//	pending ──> in_progress ──> delivered ──> accepted ──> completed
//	                               │    ▲
//	                               ▼    │
//	                        revision_requested
//
// Side exits lead to cancelled (terminal) and disputed; the full edge list
// with the roles allowed on each edge lives in rules.go.
// Status is persisted by its string form.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of a freshly created, unpaid order.
	Pending

	// InProgress means payment was received and the seller is working.
	InProgress

	// Delivered means the seller attached a delivery awaiting buyer review.
	Delivered

	// RevisionRequested means the buyer asked for changes to the last delivery.
	RevisionRequested

	// Accepted means the buyer accepted the delivery; completion is pending.
	Accepted

	// Completed means funds were released to the seller.
	Completed

	// Cancelled is terminal; no transition leaves it.
	Cancelled

	// Disputed means a party escalated the order to an admin.
	Disputed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:           "unknown",
		Pending:           "pending",
		InProgress:        "in_progress",
		Delivered:         "delivered",
		RevisionRequested: "revision_requested",
		Accepted:          "accepted",
		Completed:         "completed",
		Cancelled:         "cancelled",
		Disputed:          "disputed",
	}
}

// AllStatuses lists every valid status in lifecycle order.
func AllStatuses() []Status {
	return []Status{Pending, InProgress, Delivered, RevisionRequested, Accepted, Completed, Cancelled, Disputed}
}

// ActiveStatuses are the statuses in which a seller still has work to do.
func ActiveStatuses() []Status {
	return []Status{InProgress, Delivered, RevisionRequested}
}

// ParseStatus converts the persisted string form back to a Status.
//
// Example:
//
//	s, err := order.ParseStatus("revision_requested")
//	// s == order.RevisionRequested
func ParseStatus(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if status != Unknown && str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks that s is one of the eight lifecycle states.
func (s Status) Validate() error {
	if s <= Unknown || s > Disputed {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the snake_case name used in storage and on the wire.
// Values outside the enum render as "unknown".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no transition can leave s.
func (s Status) IsTerminal() bool {
	return len(transitions[s]) == 0
}
