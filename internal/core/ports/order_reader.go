package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

const (
	DefaultListLimit = 50
	MaxListLimit     = 100
)

// ListOptions pages list queries.
type ListOptions struct {
	Limit  int
	Offset int
}

// Normalized applies the default page size, caps it at MaxListLimit and
// floors the offset at zero.
func (o ListOptions) Normalized() ListOptions {
	switch {
	case o.Limit <= 0:
		o.Limit = DefaultListLimit
	case o.Limit > MaxListLimit:
		o.Limit = MaxListLimit
	}
	o.Offset = max(o.Offset, 0)
	return o
}

// OrderReader is the read-only side of the store used by queries.
// List results are ordered by creation time, newest first.
type OrderReader interface {
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
	ListByBuyer(ctx context.Context, buyerID kernel.UUID, opts ListOptions) ([]*order.Order, error)
	ListBySeller(ctx context.Context, sellerID kernel.UUID, opts ListOptions) ([]*order.Order, error)

	// ListActiveBySeller returns the seller's orders in order.ActiveStatuses().
	ListActiveBySeller(ctx context.Context, sellerID kernel.UUID, opts ListOptions) ([]*order.Order, error)
}
