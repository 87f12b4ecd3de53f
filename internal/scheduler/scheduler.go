// Package scheduler feeds recurring jobs into a worker pool.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/osse101/EmojiKombat_Go/internal/worker"
)

// Entry is one recurring job. A tick that arrives while the previous run is
// queued or executing is skipped, so runs of the same job never overlap.
type Entry struct {
	interval time.Duration
	job      worker.Job
	name     string

	busy    atomic.Bool
	runs    atomic.Int64
	skipped atomic.Int64
}

// Process runs the wrapped job and releases the entry for the next tick
func (e *Entry) Process(ctx context.Context) error {
	defer e.busy.Store(false)
	e.runs.Add(1)
	return e.job.Process(ctx)
}

// Name reports the wrapped job's name
func (e *Entry) Name() string { return e.name }

// Runs is the number of times the job has started
func (e *Entry) Runs() int64 { return e.runs.Load() }

// Skipped is the number of ticks dropped because a run was still pending
func (e *Entry) Skipped() int64 { return e.skipped.Load() }

// tick hands the entry to the pool unless a run is already pending
func (e *Entry) tick(pool *worker.Pool) {
	if !e.busy.CompareAndSwap(false, true) {
		e.skipped.Add(1)
		slog.Debug(LogMsgTickSkipped, "job", e.name)
		return
	}
	if !pool.TryEnqueue(e) {
		e.busy.Store(false)
		e.skipped.Add(1)
	}
}

// Scheduler owns one ticker goroutine per entry
type Scheduler struct {
	pool *worker.Pool
	done chan struct{}
	stop sync.Once
	wg   sync.WaitGroup
}

// New returns a scheduler that submits to pool
func New(pool *worker.Pool) *Scheduler {
	return &Scheduler{pool: pool, done: make(chan struct{})}
}

// Every runs job once per interval, the first run one interval from now
func (s *Scheduler) Every(interval time.Duration, job worker.Job) *Entry {
	e := &Entry{interval: interval, job: job, name: nameOf(job)}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		t := time.NewTicker(e.interval)
		defer t.Stop()
		for {
			select {
			case <-s.done:
				return
			case <-t.C:
				e.tick(s.pool)
			}
		}
	}()
	return e
}

// Stop halts every ticker and waits for the goroutines to exit. Runs already
// handed to the pool are left to the pool. Safe to call more than once.
func (s *Scheduler) Stop() {
	s.stop.Do(func() { close(s.done) })
	s.wg.Wait()
}

func nameOf(job worker.Job) string {
	if n, ok := job.(worker.Named); ok {
		return n.Name()
	}
	return fmt.Sprintf("%T", job)
}
