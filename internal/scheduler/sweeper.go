package scheduler

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"remind-chat-backend/internal/tasks"
)

// Store is the slice of task persistence the sweeper needs.
type Store interface {
	Due(ctx context.Context, now time.Time) ([]tasks.Task, error)
	MarkNotified(ctx context.Context, id int) error
}

// Dispatcher attempts delivery for one due task.
type Dispatcher interface {
	Dispatch(t tasks.Task) bool
}

// Sweeper periodically scans for due tasks and hands them to the
// dispatcher. All ticks run serially on the Run goroutine, so two
// sweeps never overlap.
type Sweeper struct {
	store      Store
	dispatcher Dispatcher
	interval   time.Duration
	log        *zap.Logger
	now        func() time.Time
}

func New(store Store, dispatcher Dispatcher, interval time.Duration, log *zap.Logger) *Sweeper {
	return &Sweeper{
		store:      store,
		dispatcher: dispatcher,
		interval:   interval,
		log:        log,
		now:        time.Now,
	}
}

// Run blocks, sweeping immediately and then on every interval until
// ctx is cancelled.
func (s *Sweeper) Run(ctx context.Context) error {
	if s.interval <= 0 {
		return fmt.Errorf("sweep interval must be positive, got %s", s.interval)
	}

	s.log.Info("sweeper started", zap.Duration("interval", s.interval))

	s.tick(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.log.Info("sweeper shutting down")
			return nil
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

// tick processes every currently due task. A failure on one task is
// logged and must not abort the rest of the batch. The task is marked
// notified whether or not delivery succeeded, so it is attempted at
// most once.
func (s *Sweeper) tick(ctx context.Context) {
	due, err := s.store.Due(ctx, s.now())
	if err != nil {
		s.log.Error("due-task query failed", zap.Error(err))
		return
	}

	for _, t := range due {
		sent := s.dispatcher.Dispatch(t)

		if err := s.store.MarkNotified(ctx, t.ID); err != nil {
			s.log.Error("failed to mark task notified",
				zap.Int("task_id", t.ID), zap.Error(err))
			continue
		}

		s.log.Info("processed due task",
			zap.Int("task_id", t.ID),
			zap.String("task", t.Text),
			zap.Bool("sent", sent))
	}
}
