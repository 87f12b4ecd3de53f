package progression

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/osse101/EmojiKombat_Go/internal/domain"
	"github.com/osse101/EmojiKombat_Go/internal/logger"
	"github.com/osse101/EmojiKombat_Go/internal/metrics"
	"github.com/osse101/EmojiKombat_Go/internal/repository"
)

// PersisterConfig configures retries and the optional dead-letter file
type PersisterConfig struct {
	MaxRetries int
	RetryDelay time.Duration
	DeadLetter *DeadLetterWriter
}

// Persister is the single writer between sessions and the snapshot store.
//
// Writes are coalesced per player: only the newest pending snapshot is kept,
// and a snapshot older than one already handed to the store is dropped, so the
// store never moves a player backwards.
type Persister struct {
	repo repository.Progression
	cfg  PersisterConfig

	mu       sync.Mutex
	pending  map[string]pendingWrite
	queue    []string
	written  map[string]uint64 // dropped once a session's final write lands
	inFlight bool
	current  string
	writing  pendingWrite
	failed   []error
	waiters  []chan error
	closed   bool

	wake chan struct{}
	stop chan struct{}
	done chan struct{}
}

type pendingWrite struct {
	snap   domain.Snapshot
	delete bool

	// final marks the last snapshot of a session leaving memory
	final bool
}

// NewPersister starts the writer goroutine
func NewPersister(repo repository.Progression, cfg PersisterConfig) *Persister {
	if cfg.MaxRetries < 0 {
		cfg.MaxRetries = 0
	}
	p := &Persister{
		repo:    repo,
		cfg:     cfg,
		pending: make(map[string]pendingWrite),
		written: make(map[string]uint64),
		wake:    make(chan struct{}, 1),
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}
	go p.run()
	return p
}

// Save queues snap for playerID and reports whether it was accepted.
// A snapshot older than the newest one already seen is dropped.
func (p *Persister) Save(playerID string, snap domain.Snapshot) bool {
	return p.enqueue(playerID, pendingWrite{snap: snap})
}

// SaveFinal queues the last snapshot of a session leaving memory. Once it
// lands with nothing newer queued, the player's generation record is dropped.
func (p *Persister) SaveFinal(playerID string, snap domain.Snapshot) bool {
	return p.enqueue(playerID, pendingWrite{snap: snap, final: true})
}

// Delete queues removal of playerID's snapshot at the given generation.
// Saves older than generation are dropped afterwards.
func (p *Persister) Delete(playerID string, generation uint64) bool {
	return p.enqueue(playerID, pendingWrite{snap: domain.Snapshot{Generation: generation}, delete: true})
}

func (p *Persister) enqueue(playerID string, w pendingWrite) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		slog.Warn(LogMsgSaveFailed, logger.AttrKeyPlayerID, playerID, "error", "persister closed")
		return false
	}

	gen := w.snap.Generation
	if last, ok := p.written[playerID]; ok && last > gen {
		return false
	}
	if queued, ok := p.pending[playerID]; ok {
		if queued.snap.Generation > gen {
			return false
		}
	} else {
		p.queue = append(p.queue, playerID)
	}
	p.pending[playerID] = w

	select {
	case p.wake <- struct{}{}:
	default:
	}
	return true
}

// Pending returns the newest write queued or in flight for playerID. A
// session loaded while its last write is still pending must start from it.
func (p *Persister) Pending(playerID string) (snap domain.Snapshot, deleted, ok bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if w, found := p.pending[playerID]; found {
		return w.snap, w.delete, true
	}
	if p.current == playerID && playerID != "" {
		return p.writing.snap, p.writing.delete, true
	}
	return domain.Snapshot{}, false, false
}

// Flush blocks until every queued write has been attempted. It returns the
// failures seen since the previous Flush, or ctx's error on timeout.
func (p *Persister) Flush(ctx context.Context) error {
	p.mu.Lock()
	if len(p.queue) == 0 && !p.inFlight {
		err := errors.Join(p.failed...)
		p.failed = nil
		p.mu.Unlock()
		return err
	}
	ch := make(chan error, 1)
	p.waiters = append(p.waiters, ch)
	p.mu.Unlock()

	select {
	case err := <-ch:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close flushes pending writes and stops the writer. Later saves are rejected.
func (p *Persister) Close(ctx context.Context) error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		<-p.done
		return nil
	}
	p.closed = true
	p.mu.Unlock()

	flushErr := p.Flush(ctx)
	close(p.stop)

	select {
	case <-p.done:
	case <-ctx.Done():
		return ctx.Err()
	}

	if p.cfg.DeadLetter != nil {
		if err := p.cfg.DeadLetter.Close(); err != nil {
			flushErr = errors.Join(flushErr, err)
		}
	}
	slog.Info(LogMsgPersisterStopped)
	return flushErr
}

func (p *Persister) run() {
	defer close(p.done)
	for {
		select {
		case <-p.wake:
			p.drain()
		case <-p.stop:
			p.drain()
			return
		}
	}
}

func (p *Persister) drain() {
	for {
		p.mu.Lock()
		if len(p.queue) == 0 {
			p.inFlight = false
			err := errors.Join(p.failed...)
			if len(p.waiters) > 0 {
				p.failed = nil
				for _, ch := range p.waiters {
					ch <- err
				}
				p.waiters = nil
			}
			p.mu.Unlock()
			return
		}
		playerID := p.queue[0]
		p.queue = p.queue[1:]
		w := p.pending[playerID]
		delete(p.pending, playerID)
		if last, ok := p.written[playerID]; !ok || w.snap.Generation >= last {
			p.written[playerID] = w.snap.Generation
		}
		p.inFlight = true
		p.current, p.writing = playerID, w
		p.mu.Unlock()

		err := p.apply(playerID, w)

		p.mu.Lock()
		p.current, p.writing = "", pendingWrite{}
		if err != nil {
			p.failed = append(p.failed, err)
		}
		if _, queued := p.pending[playerID]; w.final && !queued {
			delete(p.written, playerID)
		}
		p.mu.Unlock()
	}
}

func (p *Persister) apply(playerID string, w pendingWrite) error {
	ctx := context.Background()
	log := logger.FromContext(ctx)

	operation := metrics.OperationSave
	if w.delete {
		operation = metrics.OperationDelete
	}

	attempts := p.cfg.MaxRetries + 1
	var err error
	for attempt := 1; attempt <= attempts; attempt++ {
		if w.delete {
			err = p.repo.DeleteSnapshot(ctx, playerID)
		} else {
			err = p.repo.SaveSnapshot(ctx, playerID, w.snap)
		}
		if err == nil {
			if !w.delete {
				metrics.SnapshotsSaved.Inc()
			}
			return nil
		}
		if attempt < attempts {
			log.Warn(LogMsgSaveRetry, logger.AttrKeyPlayerID, playerID, "attempt", attempt, "error", err)
			select {
			case <-time.After(p.cfg.RetryDelay * time.Duration(attempt)):
			case <-p.stop:
			}
		}
	}

	metrics.PersistenceFailures.WithLabelValues(operation).Inc()
	log.Error(LogMsgSaveFailed, logger.AttrKeyPlayerID, playerID, "operation", operation, "attempts", attempts, "error", err)

	if !w.delete && p.cfg.DeadLetter != nil {
		if dlErr := p.cfg.DeadLetter.Write(playerID, w.snap, attempts, err); dlErr != nil {
			log.Error(LogMsgDeadLetterWriteFailed, logger.AttrKeyPlayerID, playerID, "error", dlErr)
		}
	}

	if errors.Is(err, domain.ErrPersistenceFailure) {
		return err
	}
	return fmt.Errorf("%w: %s %s: %v", domain.ErrPersistenceFailure, operation, playerID, err)
}
