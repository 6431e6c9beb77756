package jobs_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/jobs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockDueOrdersCompleter struct{ mock.Mock }

func (m *MockDueOrdersCompleter) Handle(
	ctx context.Context,
	cmd commands.CompleteDueOrdersCommand,
) (commands.CompleteDueOrdersResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(commands.CompleteDueOrdersResult), args.Error(1)
}

// syncBuffer guards the log buffer written by cron goroutines.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func newLogger(buf *syncBuffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestCompletionJob_RunLogsOutcome(t *testing.T) {
	ctx := t.Context()
	completed, skipped := kernel.NewUUID(), kernel.NewUUID()
	cmd, err := commands.NewCompleteDueOrdersCommand(10)
	require.NoError(t, err)

	completer := new(MockDueOrdersCompleter)
	completer.On("Handle", ctx, cmd).Return(commands.CompleteDueOrdersResult{
		Due:       3,
		Completed: []kernel.UUID{completed},
		Skipped:   []kernel.UUID{skipped},
	}, errors.New("complete order x: connection reset")).Once()

	var logs syncBuffer
	job := jobs.NewCompletionJob(completer, jobs.CompletionConfig{Schedule: "* * * * * *", BatchSize: 10}, newLogger(&logs))
	job.Run(ctx, cmd)

	out := logs.String()
	assert.Contains(t, out, "component=completion_job")
	assert.Contains(t, out, "Order completed after acceptance")
	assert.Contains(t, out, completed.String())
	assert.Contains(t, out, "level=DEBUG")
	assert.Contains(t, out, skipped.String())
	assert.Contains(t, out, "level=ERROR")
	assert.Contains(t, out, "connection reset")
	completer.AssertExpectations(t)
}

func TestCompletionJob_StartRejectsInvalidConfig(t *testing.T) {
	var logs syncBuffer
	completer := new(MockDueOrdersCompleter)

	job := jobs.NewCompletionJob(completer, jobs.CompletionConfig{Schedule: "not a schedule", BatchSize: 10}, newLogger(&logs))
	require.Error(t, job.Start())

	job = jobs.NewCompletionJob(completer, jobs.CompletionConfig{Schedule: "* * * * * *", BatchSize: 0}, newLogger(&logs))
	require.Error(t, job.Start())

	manager := jobs.NewJobManager(completer, jobs.CompletionConfig{Schedule: "* * *", BatchSize: 10}, newLogger(&logs))
	err := manager.StartAll()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to start completion job")
}

func TestJobManager_RunsSweepOnSchedule(t *testing.T) {
	ran := make(chan struct{}, 10)
	completer := new(MockDueOrdersCompleter)
	completer.On("Handle", mock.Anything, mock.AnythingOfType("commands.CompleteDueOrdersCommand")).
		Run(func(mock.Arguments) { ran <- struct{}{} }).
		Return(commands.CompleteDueOrdersResult{}, nil)

	var logs syncBuffer
	manager := jobs.NewJobManager(completer, jobs.CompletionConfig{Schedule: "* * * * * *", BatchSize: 5}, newLogger(&logs))
	require.NoError(t, manager.StartAll())

	select {
	case <-ran:
	case <-time.After(3 * time.Second):
		t.Fatal("sweep did not run")
	}
	manager.StopAll()

	out := logs.String()
	assert.Contains(t, out, "Completion job started")
	assert.Contains(t, out, "timeout="+jobs.DefaultCompletionTimeout.String())
	assert.Contains(t, out, "Completion job stopped")
	assert.NotContains(t, out, "level=ERROR")
}

func TestCompletionJob_SweepIsBoundedByTimeout(t *testing.T) {
	deadlines := make(chan time.Duration, 10)
	completer := new(MockDueOrdersCompleter)
	completer.On("Handle", mock.Anything, mock.AnythingOfType("commands.CompleteDueOrdersCommand")).
		Run(func(args mock.Arguments) {
			ctx := args.Get(0).(context.Context)
			deadline, ok := ctx.Deadline()
			if !ok {
				deadlines <- 0
				return
			}
			<-ctx.Done()
			deadlines <- time.Until(deadline)
		}).
		Return(commands.CompleteDueOrdersResult{}, context.DeadlineExceeded)

	var logs syncBuffer
	job := jobs.NewCompletionJob(completer, jobs.CompletionConfig{
		Schedule:  "* * * * * *",
		BatchSize: 5,
		Timeout:   50 * time.Millisecond,
	}, newLogger(&logs))
	require.NoError(t, job.Start())
	defer job.Stop()

	select {
	case remaining := <-deadlines:
		assert.LessOrEqual(t, remaining, time.Duration(0), "sweep context has no deadline or outlived it")
	case <-time.After(3 * time.Second):
		t.Fatal("sweep did not run")
	}
	assert.Eventually(t, func() bool {
		return strings.Contains(logs.String(), "Completion job failed")
	}, time.Second, 10*time.Millisecond)
}
