// Package memory provides an in-process order store with the same transactional
// contract as the postgres adapter. It backs the "memory" storage driver used
// for local runs and the lifecycle scenario tests.
//
// The store has no row locks. Writes are staged in a unit of work and applied
// at commit under the store mutex; a stale version at that point fails the
// commit with errs.ErrConcurrentModification, which the command layer retries.
package memory

import (
	"context"
	"slices"
	"sync"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"

	"github.com/google/uuid"
)

// Store holds committed order snapshots keyed by order id.
type Store struct {
	mu     sync.RWMutex
	orders map[uuid.UUID]order.Snapshot
}

func NewStore() *Store {
	return &Store{orders: make(map[uuid.UUID]order.Snapshot)}
}

var _ ports.OrderReader = (*Store)(nil)

// Get implements ports.OrderReader.
func (s *Store) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	snap, ok := s.orders[id.Bytes()]
	s.mu.RUnlock()

	if !ok {
		return nil, errs.NewObjectNotFoundError("id", id)
	}
	return order.RestoreOrder(snap)
}

func (s *Store) ListByBuyer(ctx context.Context, buyerID kernel.UUID, opts ports.ListOptions) ([]*order.Order, error) {
	return s.list(ctx, opts, func(snap order.Snapshot) bool {
		return snap.BuyerID.IsEqual(buyerID)
	})
}

func (s *Store) ListBySeller(ctx context.Context, sellerID kernel.UUID, opts ports.ListOptions) ([]*order.Order, error) {
	return s.list(ctx, opts, func(snap order.Snapshot) bool {
		return snap.SellerID.IsEqual(sellerID)
	})
}

func (s *Store) ListActiveBySeller(
	ctx context.Context,
	sellerID kernel.UUID,
	opts ports.ListOptions,
) ([]*order.Order, error) {
	active := order.ActiveStatuses()
	return s.list(ctx, opts, func(snap order.Snapshot) bool {
		return snap.SellerID.IsEqual(sellerID) && slices.Contains(active, snap.Status)
	})
}

func (s *Store) list(
	ctx context.Context,
	opts ports.ListOptions,
	match func(order.Snapshot) bool,
) ([]*order.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	opts = opts.Normalized()

	s.mu.RLock()
	matched := make([]order.Snapshot, 0)
	for _, snap := range s.orders {
		if match(snap) {
			matched = append(matched, snap)
		}
	}
	s.mu.RUnlock()

	slices.SortFunc(matched, func(a, b order.Snapshot) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return compareIDs(b.ID, a.ID)
	})

	if opts.Offset >= len(matched) {
		return []*order.Order{}, nil
	}
	matched = matched[opts.Offset:min(opts.Offset+opts.Limit, len(matched))]

	result := make([]*order.Order, 0, len(matched))
	for _, snap := range matched {
		o, err := order.RestoreOrder(snap)
		if err != nil {
			return nil, err
		}
		result = append(result, o)
	}
	return result, nil
}

func (s *Store) dueForCompletion(now time.Time, limit int) []kernel.UUID {
	s.mu.RLock()
	due := make([]order.Snapshot, 0)
	for _, snap := range s.orders {
		if snap.Status == order.Accepted && snap.CompletionDueAt != nil && !snap.CompletionDueAt.After(now) {
			due = append(due, snap)
		}
	}
	s.mu.RUnlock()

	slices.SortFunc(due, func(a, b order.Snapshot) int {
		return a.CompletionDueAt.Compare(*b.CompletionDueAt)
	})

	ids := make([]kernel.UUID, 0, min(limit, len(due)))
	for _, snap := range due[:min(limit, len(due))] {
		ids = append(ids, snap.ID)
	}
	return ids
}

func (s *Store) snapshot(id kernel.UUID) (order.Snapshot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap, ok := s.orders[id.Bytes()]
	return snap, ok
}

// apply commits staged writes atomically: either every write passes its
// existence and version checks and all are stored, or none is.
func (s *Store) apply(writes []stagedWrite) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, w := range writes {
		current, exists := s.orders[w.snapshot.ID.Bytes()]
		switch {
		case w.insert && exists:
			return errs.ErrObjectAlreadyExists
		case !w.insert && !exists:
			return errs.NewObjectNotFoundError("id", w.snapshot.ID)
		case !w.insert && current.Version != w.expectedVersion:
			return errs.ErrConcurrentModification
		}
	}

	for _, w := range writes {
		s.orders[w.snapshot.ID.Bytes()] = w.snapshot
	}
	return nil
}

func compareIDs(a, b kernel.UUID) int {
	x, y := a.Bytes(), b.Bytes()
	return slices.Compare(x[:], y[:])
}
