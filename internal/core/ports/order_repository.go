// Package ports defines the persistence contracts of the order lifecycle.
// These interfaces establish contracts between the application layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

// OrderRepository is the transactional write-side store of order aggregates.
// Instances are bound to a UnitOfWork; every call runs inside its transaction.
type OrderRepository interface {
	// Add persists a newly created order together with its first history entry.
	// Returns errs.ErrObjectAlreadyExists if the id is taken.
	// The aggregate's version is advanced when the unit of work commits.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update writes the order's current state and appends its new history entries
	// as one atomic write, provided the stored version still equals
	// aggregate.Version(). A lost race returns errs.ErrConcurrentModification.
	// The aggregate's version is advanced when the unit of work commits.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get loads an order without locking it.
	// Returns an errs.ObjectNotFoundError if absent.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate loads an order and locks it until the transaction ends,
	// serialising concurrent read-modify-write cycles on the same order.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// ListDueForCompletion returns up to limit ids of accepted orders whose
	// completion due time is at or before now, earliest first.
	ListDueForCompletion(ctx context.Context, now time.Time, limit int) ([]kernel.UUID, error)
}
