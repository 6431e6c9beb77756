// Package queries contains the read side of the order lifecycle. Queries never
// change state; every handler reads through ports.OrderReader and checks that
// the caller may see what it asks for.
package queries

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"
)

// OrderResponse is the full read model of an order.
type OrderResponse struct {
	ID                 kernel.UUID
	BuyerID            kernel.UUID
	SellerID           kernel.UUID
	Package            order.Package
	Pricing            order.Pricing
	Requirements       string
	Status             order.Status
	IsPaid             bool
	PaymentError       string
	RevisionCount      int
	RevisionsRemaining int
	Delivery           *order.Delivery
	RevisionRequest    *order.RevisionRequest
	AcceptanceFeedback string
	CancellationReason string
	DisputeReason      string
	History            []order.HistoryEntry
	Timeline           order.Timeline
	CompletionDueAt    *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func newOrderResponse(o *order.Order) OrderResponse {
	return OrderResponse{
		ID:                 o.ID(),
		BuyerID:            o.BuyerID(),
		SellerID:           o.SellerID(),
		Package:            o.Package(),
		Pricing:            o.Pricing(),
		Requirements:       o.Requirements(),
		Status:             o.Status(),
		IsPaid:             o.IsPaid(),
		PaymentError:       o.PaymentError(),
		RevisionCount:      o.RevisionCount(),
		RevisionsRemaining: o.RevisionsRemaining(),
		Delivery:           o.Delivery(),
		RevisionRequest:    o.RevisionRequest(),
		AcceptanceFeedback: o.AcceptanceFeedback(),
		CancellationReason: o.CancellationReason(),
		DisputeReason:      o.DisputeReason(),
		History:            o.History(),
		Timeline:           o.Timeline(),
		CompletionDueAt:    o.CompletionDueAt(),
		CreatedAt:          o.CreatedAt(),
		UpdatedAt:          o.UpdatedAt(),
	}
}

func newOrderResponses(orders []*order.Order) []OrderResponse {
	responses := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		responses = append(responses, newOrderResponse(o))
	}
	return responses
}

// authorizeListing lets admins list anyone's orders and parties list their own.
func authorizeListing(caller order.Actor, ownerID kernel.UUID, resource string) error {
	if caller.Role() == order.RoleAdmin || caller.ID().IsEqual(ownerID) {
		return nil
	}
	return errs.NewUnauthorizedError(caller.ID().String(), resource, "orders of another user")
}

func validateCaller(caller order.Actor) error {
	if err := caller.Role().Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("caller", err)
	}
	if !caller.IsSystem() {
		if err := caller.ID().Validate(); err != nil {
			return errs.NewValueIsRequiredErrorWithCause("caller", err)
		}
	}
	return nil
}

func validateID(param string, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause(param, err)
	}
	return nil
}
