package api

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Error defines model for Error.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Package defines model for Package.
type Package struct {
	Name         string `json:"name"`
	DeliveryDays int    `json:"deliveryDays"`
	Revisions    int    `json:"revisions"`
	PriceCents   int64  `json:"priceCents"`
}

// Pricing defines model for Pricing.
type Pricing struct {
	BaseCents         int64 `json:"baseCents"`
	BuyerFeeCents     int64 `json:"buyerFeeCents"`
	CommissionCents   int64 `json:"commissionCents"`
	PlatformFeeCents  int64 `json:"platformFeeCents"`
	TotalChargedCents int64 `json:"totalChargedCents"`
	SellerNetCents    int64 `json:"sellerNetCents"`
}

// NewOrder defines model for NewOrder.
type NewOrder struct {
	SellerId     openapi_types.UUID `json:"sellerId"`
	Package      Package            `json:"package"`
	Requirements string             `json:"requirements,omitempty"`
}

// DeliveryRequest defines model for DeliveryRequest.
type DeliveryRequest struct {
	Message string   `json:"message,omitempty"`
	Files   []string `json:"files,omitempty"`
}

// NoteRequest carries the free text of an operation: feedback, revision
// instructions, a cancellation or dispute reason, an admin note or a payment
// failure reason.
type NoteRequest struct {
	Note string `json:"note,omitempty"`
}

// PaymentCompleted defines model for PaymentCompleted.
type PaymentCompleted struct {
	AmountCents int64 `json:"amountCents"`
}

// HistoryEntry defines model for HistoryEntry.
type HistoryEntry struct {
	Status  string              `json:"status"`
	At      time.Time           `json:"at"`
	ActorId *openapi_types.UUID `json:"actorId,omitempty"`
	Role    string              `json:"role"`
	Note    string              `json:"note,omitempty"`
}

// Delivery defines model for Delivery.
type Delivery struct {
	Message     string    `json:"message,omitempty"`
	Files       []string  `json:"files"`
	DeliveredAt time.Time `json:"deliveredAt"`
}

// RevisionRequest defines model for RevisionRequest.
type RevisionRequest struct {
	Message     string    `json:"message"`
	RequestedAt time.Time `json:"requestedAt"`
}

// Timeline defines model for Timeline.
type Timeline struct {
	PaidAt              *time.Time `json:"paidAt,omitempty"`
	DeliveredAt         *time.Time `json:"deliveredAt,omitempty"`
	RevisionRequestedAt *time.Time `json:"revisionRequestedAt,omitempty"`
	AcceptedAt          *time.Time `json:"acceptedAt,omitempty"`
	CompletedAt         *time.Time `json:"completedAt,omitempty"`
	CancelledAt         *time.Time `json:"cancelledAt,omitempty"`
	DisputedAt          *time.Time `json:"disputedAt,omitempty"`
}

// Order defines model for Order.
type Order struct {
	Id                 openapi_types.UUID `json:"id"`
	BuyerId            openapi_types.UUID `json:"buyerId"`
	SellerId           openapi_types.UUID `json:"sellerId"`
	Package            Package            `json:"package"`
	Pricing            Pricing            `json:"pricing"`
	Requirements       string             `json:"requirements,omitempty"`
	Status             string             `json:"status"`
	IsPaid             bool               `json:"isPaid"`
	PaymentError       string             `json:"paymentError,omitempty"`
	RevisionCount      int                `json:"revisionCount"`
	RevisionsRemaining int                `json:"revisionsRemaining"`
	Delivery           *Delivery          `json:"delivery,omitempty"`
	RevisionRequest    *RevisionRequest   `json:"revisionRequest,omitempty"`
	AcceptanceFeedback string             `json:"acceptanceFeedback,omitempty"`
	CancellationReason string             `json:"cancellationReason,omitempty"`
	DisputeReason      string             `json:"disputeReason,omitempty"`
	History            []HistoryEntry     `json:"history"`
	Timeline           Timeline           `json:"timeline"`
	CompletionDueAt    *time.Time         `json:"completionDueAt,omitempty"`
	CreatedAt          time.Time          `json:"createdAt"`
	UpdatedAt          time.Time          `json:"updatedAt"`
}

// AvailableActions defines model for AvailableActions.
type AvailableActions struct {
	OrderId openapi_types.UUID `json:"orderId"`
	Status  string             `json:"status"`
	Role    string             `json:"role"`
	Actions []string           `json:"actions"`
}

// ListParams defines the paging parameters of the list operations.
type ListParams struct {
	Limit  *int `form:"limit,omitempty" json:"limit,omitempty"`
	Offset *int `form:"offset,omitempty" json:"offset,omitempty"`
}
