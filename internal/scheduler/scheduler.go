// Package scheduler feeds periodic jobs into a worker pool.
package scheduler

import (
	"sync"
	"time"

	"github.com/osse101/PixelFarm_Go/internal/worker"
)

// Enqueuer accepts jobs without blocking. *worker.Pool implements it.
type Enqueuer interface {
	TryEnqueue(job worker.Job) bool
}

// Scheduler manages scheduled jobs
type Scheduler struct {
	pool Enqueuer
	quit chan struct{}
	once sync.Once
	wg   sync.WaitGroup
}

// New creates a new scheduler
func New(pool Enqueuer) *Scheduler {
	return &Scheduler{
		pool: pool,
		quit: make(chan struct{}),
	}
}

// Schedule registers a job to run at a fixed interval, starting one interval
// from now. A run is skipped when the pool queue is full so a slow job never
// queues up a backlog of stale runs.
func (s *Scheduler) Schedule(interval time.Duration, job worker.Job) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				s.pool.TryEnqueue(job)
			case <-s.quit:
				return
			}
		}
	}()
}

// Stop stops all scheduled jobs. It is safe to call more than once.
func (s *Scheduler) Stop() {
	s.once.Do(func() { close(s.quit) })
	s.wg.Wait()
}
