package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/ptypek/listic/internal/logger"
)

// Task is a unit of periodic work.
type Task func(ctx context.Context) error

// Scheduler runs one task at a fixed interval until stopped. Each run gets a
// context bounded by the interval.
type Scheduler struct {
	name       string
	task       Task
	interval   time.Duration
	stopCh     chan struct{}
	wg         sync.WaitGroup
	mu         sync.Mutex
	cancelFunc context.CancelFunc
}

func New(name string, task Task, interval time.Duration) *Scheduler {
	return &Scheduler{
		name:     name,
		task:     task,
		interval: interval,
		stopCh:   make(chan struct{}),
	}
}

func (s *Scheduler) Start() {
	s.wg.Add(1)
	go s.run()
	logger.Info("scheduler started", "module", "scheduler", "action", "start", "resource", s.name, "result", "ok", "interval_ms", s.interval.Milliseconds())
}

// Stop cancels a running task and waits for the loop to exit.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	if s.cancelFunc != nil {
		s.cancelFunc()
	}
	s.mu.Unlock()

	close(s.stopCh)
	s.wg.Wait()
	logger.Info("scheduler stopped", "module", "scheduler", "action", "stop", "resource", s.name, "result", "ok")
}

func (s *Scheduler) run() {
	defer s.wg.Done()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.runOnce()
		case <-s.stopCh:
			return
		}
	}
}

func (s *Scheduler) runOnce() {
	ctx, cancel := context.WithTimeout(context.Background(), s.interval)

	s.mu.Lock()
	s.cancelFunc = cancel
	s.mu.Unlock()

	defer func() {
		cancel()
		s.mu.Lock()
		s.cancelFunc = nil
		s.mu.Unlock()
	}()

	start := time.Now()
	if err := s.task(ctx); err != nil {
		if ctx.Err() != nil {
			logger.Warn("scheduled task cancelled", "module", "scheduler", "action", "run", "resource", s.name, "result", "cancelled")
			return
		}
		logger.Error("scheduled task failed", "module", "scheduler", "action", "run", "resource", s.name, "result", "failed", "error", err)
		return
	}
	logger.Debug("scheduled task completed", "module", "scheduler", "action", "run", "resource", s.name, "result", "ok", "duration_ms", time.Since(start).Milliseconds())
}
