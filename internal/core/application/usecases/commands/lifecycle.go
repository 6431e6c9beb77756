package commands

import (
	"context"
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"
)

// maxConflictRetries bounds how often a mutation is retried after losing a
// versioned write to a concurrent writer.
const maxConflictRetries = 3

// orderMutation applies one domain operation to a loaded order.
type orderMutation func(o *order.Order, now time.Time) error

// orderMutator runs the load, mutate, persist cycle shared by every
// lifecycle command.
type orderMutator struct {
	uowFactory OrderUoWFactory
	clock      kernel.Clock
}

// mutate applies fn to the order in its own transaction. The order is locked
// for the duration of the transaction and written with a version check, so a
// concurrent writer either waits or causes ErrConcurrentModification, in which
// case the whole cycle is repeated on fresh state.
//
// A mutation that leaves the order unchanged (same-status request) commits
// nothing.
func (m orderMutator) mutate(ctx context.Context, id kernel.UUID, fn orderMutation) error {
	var err error
	for attempt := 0; attempt <= maxConflictRetries; attempt++ {
		if err = ctx.Err(); err != nil {
			return err
		}

		err = m.mutateOnce(ctx, id, fn)
		if !errors.Is(err, errs.ErrConcurrentModification) {
			return err
		}
	}
	return err
}

func (m orderMutator) mutateOnce(ctx context.Context, id kernel.UUID, fn orderMutation) error {
	uow := m.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.GetForUpdate(ctx, id)
	if err != nil {
		return err
	}

	if err = fn(o, m.clock.Now()); err != nil {
		return err
	}

	if !o.HasChanges() {
		return nil
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func validateOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("order id", err)
	}
	return nil
}

func validateActor(actor order.Actor) error {
	if err := actor.Role().Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("actor", err)
	}
	if !actor.IsSystem() {
		if err := actor.ID().Validate(); err != nil {
			return errs.NewValueIsRequiredErrorWithCause("actor", err)
		}
	}
	return nil
}
