package order

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
)

// HistoryEntry is one element of the append-only status history.
// ActorID is the zero UUID for entries written by the system actor.
type HistoryEntry struct {
	Status  Status
	At      time.Time
	ActorID kernel.UUID
	Role    Role
	Note    string
}

// Timeline holds the per-state timestamps. Each is set the first time its
// state is entered and never overwritten.
type Timeline struct {
	PaidAt              *time.Time
	DeliveredAt         *time.Time
	RevisionRequestedAt *time.Time
	AcceptedAt          *time.Time
	CompletedAt         *time.Time
	CancelledAt         *time.Time
	DisputedAt          *time.Time
}

// stamp records at for status if that state's timestamp is still unset.
func (t *Timeline) stamp(status Status, at time.Time) {
	var slot **time.Time
	switch status {
	case InProgress:
		slot = &t.PaidAt
	case Delivered:
		slot = &t.DeliveredAt
	case RevisionRequested:
		slot = &t.RevisionRequestedAt
	case Accepted:
		slot = &t.AcceptedAt
	case Completed:
		slot = &t.CompletedAt
	case Cancelled:
		slot = &t.CancelledAt
	case Disputed:
		slot = &t.DisputedAt
	default:
		return
	}
	if *slot == nil {
		stamped := at
		*slot = &stamped
	}
}

func (t Timeline) clone() Timeline {
	return Timeline{
		PaidAt:              cloneTime(t.PaidAt),
		DeliveredAt:         cloneTime(t.DeliveredAt),
		RevisionRequestedAt: cloneTime(t.RevisionRequestedAt),
		AcceptedAt:          cloneTime(t.AcceptedAt),
		CompletedAt:         cloneTime(t.CompletedAt),
		CancelledAt:         cloneTime(t.CancelledAt),
		DisputedAt:          cloneTime(t.DisputedAt),
	}
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
