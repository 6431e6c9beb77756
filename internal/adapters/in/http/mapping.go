package http

import (
	"marketplace/internal/adapters/in/http/api"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/order"
)

func toAPIOrder(o queries.OrderResponse) api.Order {
	history := make([]api.HistoryEntry, len(o.History))
	for i, h := range o.History {
		history[i] = api.HistoryEntry{
			Status: h.Status.String(),
			At:     h.At,
			Role:   h.Role.String(),
			Note:   h.Note,
		}
		if !h.ActorID.IsZero() {
			actorID := h.ActorID.Bytes()
			history[i].ActorId = &actorID
		}
	}

	resp := api.Order{
		Id:                 o.ID.Bytes(),
		BuyerId:            o.BuyerID.Bytes(),
		SellerId:           o.SellerID.Bytes(),
		Package:            toAPIPackage(o.Package),
		Pricing:            toAPIPricing(o.Pricing),
		Requirements:       o.Requirements,
		Status:             o.Status.String(),
		IsPaid:             o.IsPaid,
		PaymentError:       o.PaymentError,
		RevisionCount:      o.RevisionCount,
		RevisionsRemaining: o.RevisionsRemaining,
		AcceptanceFeedback: o.AcceptanceFeedback,
		CancellationReason: o.CancellationReason,
		DisputeReason:      o.DisputeReason,
		History:            history,
		Timeline: api.Timeline{
			PaidAt:              o.Timeline.PaidAt,
			DeliveredAt:         o.Timeline.DeliveredAt,
			RevisionRequestedAt: o.Timeline.RevisionRequestedAt,
			AcceptedAt:          o.Timeline.AcceptedAt,
			CompletedAt:         o.Timeline.CompletedAt,
			CancelledAt:         o.Timeline.CancelledAt,
			DisputedAt:          o.Timeline.DisputedAt,
		},
		CompletionDueAt: o.CompletionDueAt,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}

	if o.Delivery != nil {
		resp.Delivery = &api.Delivery{
			Message:     o.Delivery.Message,
			Files:       o.Delivery.Files,
			DeliveredAt: o.Delivery.DeliveredAt,
		}
	}
	if o.RevisionRequest != nil {
		resp.RevisionRequest = &api.RevisionRequest{
			Message:     o.RevisionRequest.Message,
			RequestedAt: o.RevisionRequest.RequestedAt,
		}
	}

	return resp
}

func toAPIOrders(orders []queries.OrderResponse) []api.Order {
	resp := make([]api.Order, len(orders))
	for i, o := range orders {
		resp[i] = toAPIOrder(o)
	}
	return resp
}

func toAPIPackage(p order.Package) api.Package {
	return api.Package{
		Name:         p.Name(),
		DeliveryDays: p.DeliveryDays(),
		Revisions:    p.Revisions(),
		PriceCents:   p.Price().Cents(),
	}
}

func toAPIPricing(p order.Pricing) api.Pricing {
	return api.Pricing{
		BaseCents:         p.Base().Cents(),
		BuyerFeeCents:     p.BuyerFee().Cents(),
		CommissionCents:   p.Commission().Cents(),
		PlatformFeeCents:  p.PlatformFee().Cents(),
		TotalChargedCents: p.TotalCharged().Cents(),
		SellerNetCents:    p.SellerNet().Cents(),
	}
}

func toAPIActions(resp queries.GetAvailableActionsQueryResponse) api.AvailableActions {
	actions := make([]string, len(resp.Actions))
	for i, a := range resp.Actions {
		actions[i] = string(a)
	}
	return api.AvailableActions{
		OrderId: resp.OrderID.Bytes(),
		Status:  resp.Status.String(),
		Role:    resp.Role.String(),
		Actions: actions,
	}
}
