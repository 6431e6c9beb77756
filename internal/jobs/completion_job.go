package jobs

import (
	"context"
	"log/slog"
	"time"

	"marketplace/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DueOrdersCompleter runs one completion sweep.
// commands.CompleteDueOrdersCommandHandler implements it.
type DueOrdersCompleter interface {
	Handle(ctx context.Context, cmd commands.CompleteDueOrdersCommand) (commands.CompleteDueOrdersResult, error)
}

// CompletionConfig configures the deferred completion sweep.
type CompletionConfig struct {
	// Schedule is a cron expression with seconds, e.g. "*/5 * * * * *".
	Schedule  string
	BatchSize int
	// Timeout bounds a single sweep; zero means DefaultCompletionTimeout.
	Timeout   time.Duration
}

const DefaultCompletionTimeout = 30 * time.Second

// CompletionJob completes accepted orders once their completion delay has passed.
type CompletionJob struct {
	completer DueOrdersCompleter
	config    CompletionConfig
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewCompletionJob creates the sweep job. Overlapping runs are skipped.
func NewCompletionJob(completer DueOrdersCompleter, config CompletionConfig, logger *slog.Logger) *CompletionJob {
	return &CompletionJob{
		completer: completer,
		config:    config,
		cron:      cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:    logger.With("component", "completion_job"),
	}
}

// Start schedules the sweep.
func (j *CompletionJob) Start() error {
	cmd, err := commands.NewCompleteDueOrdersCommand(j.config.BatchSize)
	if err != nil {
		return err
	}

	timeout := j.config.Timeout
	if timeout <= 0 {
		timeout = DefaultCompletionTimeout
	}

	if _, err = j.cron.AddFunc(j.config.Schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		j.Run(ctx, cmd)
	}); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Completion job started",
		"schedule", j.config.Schedule, "batch_size", j.config.BatchSize, "timeout", timeout)
	return nil
}

// Run performs one sweep and logs its outcome.
func (j *CompletionJob) Run(ctx context.Context, cmd commands.CompleteDueOrdersCommand) {
	result, err := j.completer.Handle(ctx, cmd)

	for _, id := range result.Completed {
		j.logger.InfoContext(ctx, "Order completed after acceptance", "order_id", id.String())
	}
	for _, id := range result.Skipped {
		j.logger.DebugContext(ctx, "Order no longer awaiting completion", "order_id", id.String())
	}
	if err != nil {
		j.logger.ErrorContext(ctx, "Completion job failed", "error", err,
			"due", result.Due, "completed", len(result.Completed))
	}
}

// Stop stops scheduling and waits for a running sweep to finish.
func (j *CompletionJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Completion job stopped")
}
