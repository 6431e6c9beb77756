package commands

import (
	"errors"

	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

const maxCompletionBatchSize = 1000

var ErrCompleteDueOrdersCommandIsNotConstructed = errors.New(
	"CompleteDueOrdersCommand must be created via NewCompleteDueOrdersCommand constructor",
)

// CompleteDueOrdersCommand asks for one sweep of deferred completions.
type CompleteDueOrdersCommand struct { //nolint:recvcheck //using for validation
	batchSize int

	guard guard.ConstructorGuard
}

// NewCompleteDueOrdersCommand creates a sweep handling at most batchSize orders.
func NewCompleteDueOrdersCommand(batchSize int) (CompleteDueOrdersCommand, error) {
	if batchSize <= 0 || batchSize > maxCompletionBatchSize {
		return CompleteDueOrdersCommand{}, errs.NewValueIsOutOfRangeError("batch size", batchSize, 1, maxCompletionBatchSize)
	}
	return CompleteDueOrdersCommand{batchSize: batchSize, guard: guard.NewConstructorGuard()}, nil
}

func (c CompleteDueOrdersCommand) Validate() error {
	return c.guard.Validate(ErrCompleteDueOrdersCommandIsNotConstructed)
}

func (c CompleteDueOrdersCommand) BatchSize() int {
	return c.batchSize
}
