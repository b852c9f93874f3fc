package scheduler

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRefresher struct {
	calls chan struct{}
	err   error
}

func (f *fakeRefresher) Refresh(ctx context.Context) error {
	f.calls <- struct{}{}
	return f.err
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func waitForCall(t *testing.T, calls <-chan struct{}) {
	t.Helper()
	select {
	case <-calls:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for a refresh call")
	}
}

func TestScheduler_RefreshesImmediatelyAndOnEveryTick(t *testing.T) {
	refresher := &fakeRefresher{calls: make(chan struct{}, 64)}
	sched := NewScheduler(refresher, 10*time.Millisecond, testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- sched.Start(ctx)
	}()

	// One call up front, then the ticker takes over.
	waitForCall(t, refresher.calls)
	waitForCall(t, refresher.calls)
	waitForCall(t, refresher.calls)

	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("scheduler did not stop after cancel")
	}
}

func TestScheduler_KeepsTickingAfterFailedRefreshes(t *testing.T) {
	refresher := &fakeRefresher{
		calls: make(chan struct{}, 64),
		err:   errors.New("remote unavailable"),
	}
	sched := NewScheduler(refresher, 10*time.Millisecond, testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- sched.Start(ctx)
	}()

	waitForCall(t, refresher.calls)
	waitForCall(t, refresher.calls)

	cancel()
	require.ErrorIs(t, <-done, context.Canceled)
}
