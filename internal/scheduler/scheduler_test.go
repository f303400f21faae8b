package scheduler_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/ptypek/listic/internal/scheduler"
)

func TestScheduler_RunsTaskRepeatedly(t *testing.T) {
	defer goleak.VerifyNone(t)
	var runs atomic.Int32
	s := scheduler.New("test", func(context.Context) error {
		runs.Add(1)
		return nil
	}, 5*time.Millisecond)

	s.Start()
	require.Eventually(t, func() bool { return runs.Load() >= 2 }, time.Second, time.Millisecond)
	s.Stop()
}

func TestScheduler_StopCancelsRunningTask(t *testing.T) {
	defer goleak.VerifyNone(t)
	started := make(chan struct{}, 1)
	var cancelled atomic.Bool
	s := scheduler.New("test", func(ctx context.Context) error {
		select {
		case started <- struct{}{}:
		default:
		}
		<-ctx.Done()
		cancelled.Store(true)
		return ctx.Err()
	}, 20*time.Millisecond)

	s.Start()
	<-started
	s.Stop()
	require.True(t, cancelled.Load())
}

func TestScheduler_KeepsRunningAfterFailure(t *testing.T) {
	defer goleak.VerifyNone(t)
	var runs atomic.Int32
	s := scheduler.New("test", func(context.Context) error {
		runs.Add(1)
		return errors.New("disk busy")
	}, 5*time.Millisecond)

	s.Start()
	require.Eventually(t, func() bool { return runs.Load() >= 3 }, time.Second, time.Millisecond)
	s.Stop()
}
