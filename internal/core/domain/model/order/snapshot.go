package order

import (
	"errors"
	"fmt"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

// Snapshot is the flat persisted form of an Order. Repositories map it to and
// from their storage representation; it carries no behaviour.
type Snapshot struct {
	ID                 kernel.UUID
	BuyerID            kernel.UUID
	SellerID           kernel.UUID
	Package            Package
	Pricing            Pricing
	Requirements       string
	Status             Status
	History            []HistoryEntry
	Timeline           Timeline
	IsPaid             bool
	PaymentError       string
	Delivery           *Delivery
	RevisionRequest    *RevisionRequest
	RevisionCount      int
	AcceptanceFeedback string
	CancellationReason string
	DisputeReason      string
	CompletionDueAt    *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
	Version            int64
}

// Snapshot returns a deep copy of the order's state.
func (o *Order) Snapshot() Snapshot {
	return Snapshot{
		ID:                 o.id,
		BuyerID:            o.buyerID,
		SellerID:           o.sellerID,
		Package:            o.pkg,
		Pricing:            o.pricing,
		Requirements:       o.requirements,
		Status:             o.status,
		History:            o.History(),
		Timeline:           o.Timeline(),
		IsPaid:             o.isPaid,
		PaymentError:       o.paymentError,
		Delivery:           o.Delivery(),
		RevisionRequest:    o.RevisionRequest(),
		RevisionCount:      o.revisionCount,
		AcceptanceFeedback: o.acceptanceFeedback,
		CancellationReason: o.cancellationReason,
		DisputeReason:      o.disputeReason,
		CompletionDueAt:    o.CompletionDueAt(),
		CreatedAt:          o.createdAt,
		UpdatedAt:          o.updatedAt,
		Version:            o.version,
	}
}

// RestoreOrder rebuilds an order loaded from storage. The restored order has no
// pending changes.
func RestoreOrder(s Snapshot) (*Order, error) {
	o := &Order{isConstructed: true}

	if err := errors.Join(
		o.setID(s.ID),
		o.setParties(s.BuyerID, s.SellerID),
		o.setTerms(s.Package, s.Pricing),
		s.Status.Validate(),
		validateHistory(s.History, s.Status),
		validateRevisionCount(s.RevisionCount),
	); err != nil {
		return nil, fmt.Errorf("restore order %s: %w", s.ID, err)
	}

	o.requirements = s.Requirements
	o.status = s.Status
	o.history = append([]HistoryEntry(nil), s.History...)
	o.timeline = s.Timeline.clone()
	o.isPaid = s.IsPaid
	o.paymentError = s.PaymentError
	if s.Delivery != nil {
		d := s.Delivery.clone()
		o.delivery = &d
	}
	if s.RevisionRequest != nil {
		r := *s.RevisionRequest
		o.revisionRequest = &r
	}
	o.revisionCount = s.RevisionCount
	o.acceptanceFeedback = s.AcceptanceFeedback
	o.cancellationReason = s.CancellationReason
	o.disputeReason = s.DisputeReason
	o.completionDueAt = cloneTime(s.CompletionDueAt)
	o.createdAt = s.CreatedAt
	o.updatedAt = s.UpdatedAt
	o.version = s.Version

	return o, nil
}

func validateHistory(history []HistoryEntry, current Status) error {
	if len(history) == 0 {
		return errs.NewValueIsRequiredError("status history")
	}
	if last := history[len(history)-1].Status; last != current {
		return errs.NewValueIsInvalidErrorWithCause("status history",
			fmt.Errorf("last entry is %s but status is %s", last, current))
	}
	return nil
}

func validateRevisionCount(count int) error {
	if count < 0 {
		return errs.NewValueIsInvalidErrorWithCause("revision count", fmt.Errorf("%d is negative", count))
	}
	return nil
}
