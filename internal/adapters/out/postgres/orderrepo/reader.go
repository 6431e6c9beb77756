package orderrepo

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"

	"gorm.io/gorm"
)

// GormOrderReader implements ports.OrderReader outside of any transaction.
type GormOrderReader struct {
	db *gorm.DB
}

func NewGormOrderReader(db *gorm.DB) *GormOrderReader {
	return &GormOrderReader{db: db}
}

func (r *GormOrderReader) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	return loadOrder(r.db.WithContext(ctx), id)
}

func (r *GormOrderReader) ListByBuyer(
	ctx context.Context,
	buyerID kernel.UUID,
	opts ports.ListOptions,
) ([]*order.Order, error) {
	return r.list(r.db.WithContext(ctx).Where("buyer_id = ?", buyerID.Bytes()), opts)
}

func (r *GormOrderReader) ListBySeller(
	ctx context.Context,
	sellerID kernel.UUID,
	opts ports.ListOptions,
) ([]*order.Order, error) {
	return r.list(r.db.WithContext(ctx).Where("seller_id = ?", sellerID.Bytes()), opts)
}

func (r *GormOrderReader) ListActiveBySeller(
	ctx context.Context,
	sellerID kernel.UUID,
	opts ports.ListOptions,
) ([]*order.Order, error) {
	active := order.ActiveStatuses()
	statuses := make([]int, 0, len(active))
	for _, s := range active {
		statuses = append(statuses, int(s))
	}

	return r.list(r.db.WithContext(ctx).Where("seller_id = ? AND status IN ?", sellerID.Bytes(), statuses), opts)
}

func (r *GormOrderReader) list(scope *gorm.DB, opts ports.ListOptions) ([]*order.Order, error) {
	opts = opts.Normalized()

	var dtos []OrderDTO
	err := scope.
		Preload("History", orderedHistory).
		Order("created_at DESC, id DESC").
		Limit(opts.Limit).
		Offset(opts.Offset).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}
