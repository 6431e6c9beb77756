package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

// CompleteDueOrdersResult summarises one sweep.
type CompleteDueOrdersResult struct {
	Due       int
	Completed []kernel.UUID
	// Skipped holds orders that were due when listed but had left the accepted
	// state by the time their row was locked.
	Skipped []kernel.UUID
}

// CompleteDueOrdersCommandHandler applies deferred completions as the system actor.
//
// Each due order is completed in its own transaction under a row lock, after
// re-checking that it is still accepted; an order disputed or completed by an
// admin in the meantime is skipped rather than completed. Failures of single
// orders do not stop the sweep; they are joined into the returned error.
//
// Example:
//
//	handler := NewCompleteDueOrdersCommandHandler(uowFactory, kernel.SystemClock{})
//	cmd, _ := NewCompleteDueOrdersCommand(100)
//	res, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    logger.ErrorContext(ctx, "some completions failed", "error", err)
//	}
//	logger.InfoContext(ctx, "sweep done", "completed", len(res.Completed))
type CompleteDueOrdersCommandHandler struct {
	mutator orderMutator
}

func NewCompleteDueOrdersCommandHandler(
	uowFactory OrderUoWFactory,
	clock kernel.Clock,
) CompleteDueOrdersCommandHandler {
	return CompleteDueOrdersCommandHandler{mutator: orderMutator{uowFactory: uowFactory, clock: clock}}
}

func (h CompleteDueOrdersCommandHandler) Handle(
	ctx context.Context,
	cmd CompleteDueOrdersCommand,
) (CompleteDueOrdersResult, error) {
	if err := cmd.Validate(); err != nil {
		return CompleteDueOrdersResult{}, err
	}

	due, err := h.listDue(ctx, cmd.BatchSize())
	if err != nil {
		return CompleteDueOrdersResult{}, err
	}

	result := CompleteDueOrdersResult{Due: len(due)}
	var failures []error

	for _, id := range due {
		err = h.mutator.mutate(ctx, id, func(o *order.Order, now time.Time) error {
			return o.CompleteAfterAcceptance(now)
		})

		switch {
		case err == nil:
			result.Completed = append(result.Completed, id)
		case errors.Is(err, order.ErrCompletionNotPending), errors.Is(err, order.ErrCompletionNotDue):
			result.Skipped = append(result.Skipped, id)
		case ctx.Err() != nil:
			return result, errors.Join(append(failures, ctx.Err())...)
		default:
			failures = append(failures, fmt.Errorf("complete order %s: %w", id, err))
		}
	}

	return result, errors.Join(failures...)
}

func (h CompleteDueOrdersCommandHandler) listDue(ctx context.Context, limit int) ([]kernel.UUID, error) {
	uow := h.mutator.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	return uow.OrderRepository().ListDueForCompletion(ctx, h.mutator.clock.Now(), limit)
}
