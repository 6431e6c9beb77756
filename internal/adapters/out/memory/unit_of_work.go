package memory

import (
	"context"
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"
)

var errNoActiveTransaction = errors.New("no active transaction")

type stagedWrite struct {
	snapshot        order.Snapshot
	expectedVersion int64
	insert          bool
}

type UnitOfWorkFactory struct {
	store *Store
}

func NewUnitOfWorkFactory(store *Store) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{store: store}
}

func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{store: f.store}
}

// UnitOfWork stages writes until Commit. It is not safe for concurrent use;
// create one per command.
type UnitOfWork struct {
	store   *Store
	active  bool
	writes  []stagedWrite
	tracked []*order.Order
}

func (u *UnitOfWork) Begin(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	u.active = true
	return nil
}

// Commit applies the staged writes and advances the version of every order
// written through this unit of work.
func (u *UnitOfWork) Commit(ctx context.Context) error {
	if !u.active {
		return errNoActiveTransaction
	}
	writes, tracked := u.writes, u.tracked
	u.reset()

	if err := ctx.Err(); err != nil {
		return err
	}
	if err := u.store.apply(writes); err != nil {
		return err
	}

	for _, o := range tracked {
		o.AdvanceVersion()
	}
	return nil
}

func (u *UnitOfWork) Rollback(_ context.Context) error {
	if !u.active {
		return errNoActiveTransaction
	}
	u.reset()
	return nil
}

func (u *UnitOfWork) OrderRepository() ports.OrderRepository {
	return &orderRepository{uow: u}
}

func (u *UnitOfWork) reset() {
	u.active = false
	u.writes = nil
	u.tracked = nil
}

func (u *UnitOfWork) stage(aggregate *order.Order, insert bool) {
	snapshot := aggregate.Snapshot()
	snapshot.Version = aggregate.Version() + 1
	u.writes = append(u.writes, stagedWrite{
		snapshot:        snapshot,
		expectedVersion: aggregate.Version(),
		insert:          insert,
	})
	u.tracked = append(u.tracked, aggregate)
}

type orderRepository struct {
	uow *UnitOfWork
}

func (r *orderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := errors.Join(ctx.Err(), aggregate.Validate()); err != nil {
		return err
	}
	if _, exists := r.uow.store.snapshot(aggregate.ID()); exists || r.staged(aggregate.ID()) {
		return errs.ErrObjectAlreadyExists
	}

	r.uow.stage(aggregate, true)
	return nil
}

func (r *orderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := errors.Join(ctx.Err(), aggregate.Validate()); err != nil {
		return err
	}

	current, exists := r.uow.store.snapshot(aggregate.ID())
	if !exists {
		return errs.NewObjectNotFoundError("id", aggregate.ID())
	}
	if current.Version != aggregate.Version() {
		return errs.ErrConcurrentModification
	}

	r.uow.stage(aggregate, false)
	return nil
}

func (r *orderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	return r.uow.store.Get(ctx, id)
}

// GetForUpdate is Get; isolation comes from the version check at commit.
func (r *orderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	return r.uow.store.Get(ctx, id)
}

func (r *orderRepository) ListDueForCompletion(ctx context.Context, now time.Time, limit int) ([]kernel.UUID, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return r.uow.store.dueForCompletion(now, limit), nil
}

func (r *orderRepository) staged(id kernel.UUID) bool {
	for _, w := range r.uow.writes {
		if w.snapshot.ID.IsEqual(id) {
			return true
		}
	}
	return false
}
