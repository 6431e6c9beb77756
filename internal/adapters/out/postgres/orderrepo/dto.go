// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
//
// An order is stored as one row in "orders" plus one row per status change in
// "order_status_history", keyed by (order_id, seq). History rows are only ever
// inserted.
package orderrepo

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Indexed for the list queries (by buyer, by seller and status) and for the
// completion sweep (by completion due time).
type OrderDTO struct {
	ID       uuid.UUID  `gorm:"type:uuid;primaryKey"`
	BuyerID  uuid.UUID  `gorm:"type:uuid;not null;index:idx_orders_buyer_created,priority:1"`
	SellerID uuid.UUID  `gorm:"type:uuid;not null;index:idx_orders_seller_created,priority:1"`
	Package  PackageDTO `gorm:"embedded;embeddedPrefix:package_"`
	Pricing  PricingDTO `gorm:"embedded"`

	Requirements string `gorm:"type:text"`
	Status       int    `gorm:"not null;index"`
	IsPaid       bool   `gorm:"not null"`
	PaymentError string `gorm:"type:text"`

	DeliveryMessage string                      `gorm:"type:text"`
	DeliveryFiles   datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	LastDeliveryAt  *time.Time

	RevisionInstructions string `gorm:"type:text"`
	LastRevisionAt       *time.Time
	RevisionCount        int `gorm:"not null"`

	AcceptanceFeedback string `gorm:"type:text"`
	CancellationReason string `gorm:"type:text"`
	DisputeReason      string `gorm:"type:text"`

	Timeline        TimelineDTO `gorm:"embedded"`
	CompletionDueAt *time.Time  `gorm:"index"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime:false;index:idx_orders_buyer_created,priority:2;index:idx_orders_seller_created,priority:2"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime:false"`
	Version   int64     `gorm:"not null"`

	History []StatusHistoryDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// PackageDTO is the package snapshot embedded in the order row.
type PackageDTO struct {
	Name         string `gorm:"not null"`
	DeliveryDays int    `gorm:"not null"`
	Revisions    int    `gorm:"not null"`
	PriceCents   int64  `gorm:"not null"`
}

// PricingDTO holds the monetary fields in integer cents.
type PricingDTO struct {
	BaseCents         int64 `gorm:"not null"`
	BuyerFeeCents     int64 `gorm:"not null"`
	CommissionCents   int64 `gorm:"not null"`
	PlatformFeeCents  int64 `gorm:"not null"`
	TotalChargedCents int64 `gorm:"not null"`
	SellerNetCents    int64 `gorm:"not null"`
}

// TimelineDTO holds the first-entry timestamp of each state.
type TimelineDTO struct {
	PaidAt              *time.Time
	DeliveredAt         *time.Time
	RevisionRequestedAt *time.Time
	AcceptedAt          *time.Time
	CompletedAt         *time.Time
	CancelledAt         *time.Time
	DisputedAt          *time.Time
}

// StatusHistoryDTO is one status change. ActorID is NULL for the system actor.
type StatusHistoryDTO struct {
	OrderID uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Seq     int        `gorm:"primaryKey;autoIncrement:false"`
	Status  int        `gorm:"not null"`
	At      time.Time  `gorm:"not null"`
	ActorID *uuid.UUID `gorm:"type:uuid"`
	Role    int        `gorm:"not null"`
	Note    string     `gorm:"type:text"`
}

// TableName specifies the database table name for status history entries.
func (StatusHistoryDTO) TableName() string {
	return "order_status_history"
}

// fromDomain converts an order aggregate to its database representation.
// The version column is left to the repository.
func fromDomain(o *order.Order) OrderDTO {
	s := o.Snapshot()
	id := s.ID.Bytes()

	dto := OrderDTO{
		ID:       id,
		BuyerID:  s.BuyerID.Bytes(),
		SellerID: s.SellerID.Bytes(),
		Package: PackageDTO{
			Name:         s.Package.Name(),
			DeliveryDays: s.Package.DeliveryDays(),
			Revisions:    s.Package.Revisions(),
			PriceCents:   s.Package.Price().Cents(),
		},
		Pricing: PricingDTO{
			BaseCents:         s.Pricing.Base().Cents(),
			BuyerFeeCents:     s.Pricing.BuyerFee().Cents(),
			CommissionCents:   s.Pricing.Commission().Cents(),
			PlatformFeeCents:  s.Pricing.PlatformFee().Cents(),
			TotalChargedCents: s.Pricing.TotalCharged().Cents(),
			SellerNetCents:    s.Pricing.SellerNet().Cents(),
		},
		Requirements:       s.Requirements,
		Status:             int(s.Status),
		IsPaid:             s.IsPaid,
		PaymentError:       s.PaymentError,
		RevisionCount:      s.RevisionCount,
		AcceptanceFeedback: s.AcceptanceFeedback,
		CancellationReason: s.CancellationReason,
		DisputeReason:      s.DisputeReason,
		Timeline: TimelineDTO{
			PaidAt:              s.Timeline.PaidAt,
			DeliveredAt:         s.Timeline.DeliveredAt,
			RevisionRequestedAt: s.Timeline.RevisionRequestedAt,
			AcceptedAt:          s.Timeline.AcceptedAt,
			CompletedAt:         s.Timeline.CompletedAt,
			CancelledAt:         s.Timeline.CancelledAt,
			DisputedAt:          s.Timeline.DisputedAt,
		},
		CompletionDueAt: s.CompletionDueAt,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
		Version:         s.Version,
		DeliveryFiles:   datatypes.NewJSONSlice([]string{}),
	}

	if s.Delivery != nil {
		dto.DeliveryMessage = s.Delivery.Message
		dto.DeliveryFiles = datatypes.NewJSONSlice(s.Delivery.Files)
		dto.LastDeliveryAt = &s.Delivery.DeliveredAt
	}
	if s.RevisionRequest != nil {
		dto.RevisionInstructions = s.RevisionRequest.Message
		dto.LastRevisionAt = &s.RevisionRequest.RequestedAt
	}

	dto.History = make([]StatusHistoryDTO, 0, len(s.History))
	for i, entry := range s.History {
		var actorID *uuid.UUID
		if !entry.ActorID.IsZero() {
			raw := entry.ActorID.Bytes()
			actorID = &raw
		}
		dto.History = append(dto.History, StatusHistoryDTO{
			OrderID: id,
			Seq:     i,
			Status:  int(entry.Status),
			At:      entry.At,
			ActorID: actorID,
			Role:    int(entry.Role),
			Note:    entry.Note,
		})
	}

	return dto
}

// toDomain converts a database DTO, with its history loaded in seq order, to
// an order aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, idErr := kernel.UUIDFromBytes(dto.ID[:])
	buyerID, buyerErr := kernel.UUIDFromBytes(dto.BuyerID[:])
	sellerID, sellerErr := kernel.UUIDFromBytes(dto.SellerID[:])
	if err := errors.Join(idErr, buyerErr, sellerErr); err != nil {
		return nil, err
	}

	pkg, err := packageFromDTO(dto.Package)
	if err != nil {
		return nil, err
	}
	pricing, err := pricingFromDTO(dto.Pricing)
	if err != nil {
		return nil, err
	}
	history, err := historyFromDTO(dto.History)
	if err != nil {
		return nil, err
	}

	s := order.Snapshot{
		ID:                 id,
		BuyerID:            buyerID,
		SellerID:           sellerID,
		Package:            pkg,
		Pricing:            pricing,
		Requirements:       dto.Requirements,
		Status:             order.Status(dto.Status),
		History:            history,
		IsPaid:             dto.IsPaid,
		PaymentError:       dto.PaymentError,
		RevisionCount:      dto.RevisionCount,
		AcceptanceFeedback: dto.AcceptanceFeedback,
		CancellationReason: dto.CancellationReason,
		DisputeReason:      dto.DisputeReason,
		Timeline: order.Timeline{
			PaidAt:              utc(dto.Timeline.PaidAt),
			DeliveredAt:         utc(dto.Timeline.DeliveredAt),
			RevisionRequestedAt: utc(dto.Timeline.RevisionRequestedAt),
			AcceptedAt:          utc(dto.Timeline.AcceptedAt),
			CompletedAt:         utc(dto.Timeline.CompletedAt),
			CancelledAt:         utc(dto.Timeline.CancelledAt),
			DisputedAt:          utc(dto.Timeline.DisputedAt),
		},
		CompletionDueAt: utc(dto.CompletionDueAt),
		CreatedAt:       dto.CreatedAt.UTC(),
		UpdatedAt:       dto.UpdatedAt.UTC(),
		Version:         dto.Version,
	}

	if dto.LastDeliveryAt != nil {
		s.Delivery = &order.Delivery{
			Message:     dto.DeliveryMessage,
			Files:       append([]string{}, dto.DeliveryFiles...),
			DeliveredAt: dto.LastDeliveryAt.UTC(),
		}
	}
	if dto.LastRevisionAt != nil {
		s.RevisionRequest = &order.RevisionRequest{
			Message:     dto.RevisionInstructions,
			RequestedAt: dto.LastRevisionAt.UTC(),
		}
	}

	return order.RestoreOrder(s)
}

func packageFromDTO(dto PackageDTO) (order.Package, error) {
	price, err := kernel.NewMoney(dto.PriceCents)
	if err != nil {
		return order.Package{}, err
	}
	return order.NewPackage(dto.Name, dto.DeliveryDays, dto.Revisions, price)
}

func pricingFromDTO(dto PricingDTO) (order.Pricing, error) {
	cents := []int64{
		dto.BaseCents, dto.BuyerFeeCents, dto.CommissionCents,
		dto.PlatformFeeCents, dto.TotalChargedCents, dto.SellerNetCents,
	}
	amounts := make([]kernel.Money, len(cents))
	for i, c := range cents {
		m, err := kernel.NewMoney(c)
		if err != nil {
			return order.Pricing{}, err
		}
		amounts[i] = m
	}
	return order.RestorePricing(amounts[0], amounts[1], amounts[2], amounts[3], amounts[4], amounts[5]), nil
}

func historyFromDTO(rows []StatusHistoryDTO) ([]order.HistoryEntry, error) {
	history := make([]order.HistoryEntry, 0, len(rows))
	for _, row := range rows {
		entry := order.HistoryEntry{
			Status: order.Status(row.Status),
			At:     row.At.UTC(),
			Role:   order.Role(row.Role),
			Note:   row.Note,
		}
		if row.ActorID != nil {
			actorID, err := kernel.UUIDFromBytes(row.ActorID[:])
			if err != nil {
				return nil, err
			}
			entry.ActorID = actorID
		}
		history = append(history, entry)
	}
	return history, nil
}

func utc(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
