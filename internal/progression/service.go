package progression

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/EmojiKombat_Go/internal/catalog"
	"github.com/osse101/EmojiKombat_Go/internal/concurrency"
	"github.com/osse101/EmojiKombat_Go/internal/domain"
	"github.com/osse101/EmojiKombat_Go/internal/event"
	"github.com/osse101/EmojiKombat_Go/internal/logger"
	"github.com/osse101/EmojiKombat_Go/internal/metrics"
	"github.com/osse101/EmojiKombat_Go/internal/repository"
	"github.com/osse101/EmojiKombat_Go/internal/task"
)

// Service is the multi-player façade over per-player engines
type Service interface {
	CreatePlayer(ctx context.Context) (string, domain.View, error)
	GetState(ctx context.Context, playerID string) (domain.View, error)
	Tap(ctx context.Context, playerID string, count int) (domain.View, error)
	PurchaseUpgrade(ctx context.Context, playerID, upgradeID string) (domain.View, error)
	CompleteTask(ctx context.Context, playerID, taskID string, reward int64) (domain.View, error)
	ClaimTask(ctx context.Context, playerID, taskID string) (domain.View, error)
	EarnFromMinigame(ctx context.Context, playerID string, amount int64) (domain.View, error)
	IncrementReferral(ctx context.Context, playerID string) (domain.View, error)
	Offers(ctx context.Context, playerID string) ([]domain.UpgradeOffer, error)
	Tasks(ctx context.Context, playerID string) ([]domain.TaskStatus, error)
	Reset(ctx context.Context, playerID string) (domain.View, error)

	// AccrueAll credits idle yield to every live session and returns how many changed
	AccrueAll(ctx context.Context) (int, error)
	Catalog() *catalog.Catalog
	Shutdown(ctx context.Context) error
}

// Config tunes the session cache and idle accrual
type Config struct {
	SessionCacheSize int
	SessionTTL       time.Duration

	// MaxIdleAccrual caps offline catch-up; 0 means unbounded
	MaxIdleAccrual time.Duration

	Now func() time.Time
}

// Session cache defaults
const (
	DefaultSessionCacheSize = 1024
	DefaultSessionTTL       = 30 * time.Minute
	maxPlayerIDLength       = 64
)

type service struct {
	catalog   *catalog.Catalog
	repo      repository.Progression
	persister *Persister
	bus       event.Bus
	cfg       Config

	sessions *expirable.LRU[string, *Engine]
	locks    *concurrency.LockManager

	shutdownOnce sync.Once
}

// NewService creates a progression service. The service owns persister and
// closes it on Shutdown.
func NewService(cat *catalog.Catalog, repo repository.Progression, persister *Persister, bus event.Bus, cfg Config) Service {
	if cfg.SessionCacheSize <= 0 {
		cfg.SessionCacheSize = DefaultSessionCacheSize
	}
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = DefaultSessionTTL
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	s := &service{
		catalog:   cat,
		repo:      repo,
		persister: persister,
		bus:       bus,
		cfg:       cfg,
		locks:     concurrency.NewLockManager(),
	}
	s.sessions = expirable.NewLRU[string, *Engine](cfg.SessionCacheSize, s.onEvict, cfg.SessionTTL)
	return s
}

// onEvict hands the final snapshot of an expired or displaced session to the
// writer. It runs under the cache's lock, so it must not call back into the cache.
func (s *service) onEvict(playerID string, engine *Engine) {
	s.persister.SaveFinal(playerID, engine.Snapshot())
	slog.Debug(LogMsgSessionEvicted, logger.AttrKeyPlayerID, playerID)
}

func (s *service) Catalog() *catalog.Catalog {
	return s.catalog
}

func (s *service) CreatePlayer(ctx context.Context) (string, domain.View, error) {
	playerID := uuid.NewString()
	view, err := s.GetState(ctx, playerID)
	if err != nil {
		return "", domain.View{}, err
	}
	return playerID, view, nil
}

func (s *service) GetState(ctx context.Context, playerID string) (domain.View, error) {
	var view domain.View
	err := s.withSession(ctx, playerID, func(engine *Engine) error {
		view = engine.View()
		return nil
	})
	return view, err
}

func (s *service) Tap(ctx context.Context, playerID string, count int) (domain.View, error) {
	if count < 1 || count > domain.MaxTapsPerRequest {
		return domain.View{}, fmt.Errorf("%w: tap count must be between 1 and %d, got %d", domain.ErrInvalidInput, domain.MaxTapsPerRequest, count)
	}
	var view domain.View
	err := s.withSession(ctx, playerID, func(engine *Engine) error {
		r := engine.TapN(count)
		metrics.Taps.Add(float64(count))
		s.commit(ctx, playerID, r, domain.SourceTap)
		view = r.View
		return nil
	})
	return view, err
}

func (s *service) PurchaseUpgrade(ctx context.Context, playerID, upgradeID string) (domain.View, error) {
	if _, ok := s.catalog.Upgrades.Get(upgradeID); !ok {
		return domain.View{}, fmt.Errorf("%w: %s", domain.ErrUnknownUpgrade, upgradeID)
	}

	var view domain.View
	err := s.withSession(ctx, playerID, func(engine *Engine) error {
		r, err := engine.PurchaseUpgrade(upgradeID)
		view = r.View
		if err != nil {
			reason := metrics.ReasonInsufficientFunds
			if errors.Is(err, domain.ErrMaxLevelReached) {
				reason = metrics.ReasonMaxLevel
			}
			metrics.PurchasesRejected.WithLabelValues(reason).Inc()
			logger.FromContext(ctx).Debug(LogMsgPurchaseRejected, logger.AttrKeyPlayerID, playerID, "upgrade", upgradeID, "reason", reason)
			return err
		}

		s.commit(ctx, playerID, r, "")
		s.publish(ctx, event.NewUpgradePurchasedEvent(playerID, upgradeID, r.Snapshot.OwnedUpgrades[upgradeID], r.Spent))
		return nil
	})
	return view, err
}

func (s *service) CompleteTask(ctx context.Context, playerID, taskID string, reward int64) (domain.View, error) {
	if taskID == "" {
		return domain.View{}, fmt.Errorf("%w: task id is required", domain.ErrInvalidInput)
	}

	var view domain.View
	err := s.withSession(ctx, playerID, func(engine *Engine) error {
		r, granted := engine.CompleteTask(taskID, reward)
		if granted {
			s.afterTask(ctx, playerID, taskID, r)
		}
		view = r.View
		return nil
	})
	return view, err
}

func (s *service) ClaimTask(ctx context.Context, playerID, taskID string) (domain.View, error) {
	def, ok := s.catalog.Tasks.Get(taskID)
	if !ok {
		return domain.View{}, fmt.Errorf("%w: %s", domain.ErrTaskNotFound, taskID)
	}

	var view domain.View
	err := s.withSession(ctx, playerID, func(engine *Engine) error {
		state := engine.State()
		if _, done := state.CompletedTasks[taskID]; done {
			view = engine.View()
			return fmt.Errorf("%w: %s", domain.ErrTaskAlreadyCompleted, taskID)
		}
		if !task.Eligible(def, state.ReferralCount) {
			view = engine.View()
			return fmt.Errorf("%w: %s needs %d referrals, have %d", domain.ErrTaskRequirementNotMet, taskID, def.Requirement, state.ReferralCount)
		}

		r, granted := engine.CompleteTask(taskID, def.Reward)
		view = r.View
		if !granted {
			return fmt.Errorf("%w: %s", domain.ErrTaskAlreadyCompleted, taskID)
		}
		s.afterTask(ctx, playerID, taskID, r)
		return nil
	})
	return view, err
}

func (s *service) afterTask(ctx context.Context, playerID, taskID string, r Result) {
	s.commit(ctx, playerID, r, domain.SourceTask)
	s.publish(ctx, event.NewTaskCompletedEvent(playerID, taskID, r.Earned))
	logger.FromContext(ctx).Info(LogMsgTaskCompleted, logger.AttrKeyPlayerID, playerID, "task", taskID, "reward", r.Earned)
}

func (s *service) EarnFromMinigame(ctx context.Context, playerID string, amount int64) (domain.View, error) {
	var view domain.View
	err := s.withSession(ctx, playerID, func(engine *Engine) error {
		r := engine.EarnFromMinigame(amount)
		s.commit(ctx, playerID, r, domain.SourceMinigame)
		view = r.View
		return nil
	})
	return view, err
}

func (s *service) IncrementReferral(ctx context.Context, playerID string) (domain.View, error) {
	var view domain.View
	err := s.withSession(ctx, playerID, func(engine *Engine) error {
		r := engine.IncrementReferral()
		s.commit(ctx, playerID, r, "")
		view = r.View
		return nil
	})
	return view, err
}

func (s *service) Offers(ctx context.Context, playerID string) ([]domain.UpgradeOffer, error) {
	var offers []domain.UpgradeOffer
	err := s.withSession(ctx, playerID, func(engine *Engine) error {
		offers = engine.Offers()
		return nil
	})
	return offers, err
}

func (s *service) Tasks(ctx context.Context, playerID string) ([]domain.TaskStatus, error) {
	var statuses []domain.TaskStatus
	err := s.withSession(ctx, playerID, func(engine *Engine) error {
		state := engine.State()
		statuses = s.catalog.Tasks.Statuses(state.CompletedTasks, state.ReferralCount)
		return nil
	})
	return statuses, err
}

// Reset wipes the player's progress and removes the stored snapshot
func (s *service) Reset(ctx context.Context, playerID string) (domain.View, error) {
	var view domain.View
	err := s.withSession(ctx, playerID, func(engine *Engine) error {
		r := engine.Reset()
		s.persister.Delete(playerID, r.Snapshot.Generation)
		view = r.View
		return nil
	})
	if err != nil {
		return domain.View{}, err
	}
	logger.FromContext(ctx).Info("Player progress reset", logger.AttrKeyPlayerID, playerID)
	return view, nil
}

func (s *service) AccrueAll(ctx context.Context) (int, error) {
	start := time.Now()
	defer func() { metrics.AccrualDuration.Observe(time.Since(start).Seconds()) }()

	now := s.cfg.Now()
	changed := 0
	for _, playerID := range s.sessions.Keys() {
		if err := ctx.Err(); err != nil {
			return changed, err
		}
		if s.accrue(ctx, playerID, now) {
			changed++
		}
	}
	metrics.ActiveSessions.Set(float64(s.sessions.Len()))
	return changed, nil
}

// accrue credits one cached session without loading players that have left
func (s *service) accrue(ctx context.Context, playerID string, now time.Time) bool {
	unlock := s.locks.Lock(playerID)
	defer unlock()

	engine, ok := s.sessions.Peek(playerID)
	if !ok {
		return false
	}
	r := engine.AccrueUntil(now, s.cfg.MaxIdleAccrual)
	s.commit(ctx, playerID, r, domain.SourceIdle)
	return r.Changed
}

// Shutdown saves every live session and drains the writer
func (s *service) Shutdown(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgShutdown, "sessions", s.sessions.Len())

	var err error
	s.shutdownOnce.Do(func() {
		// Purge runs onEvict for every session, queueing its final snapshot
		s.sessions.Purge()
		metrics.ActiveSessions.Set(0)
		err = s.persister.Close(ctx)
	})

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		log.Warn(LogMsgShutdownTimedOut, "error", err)
		return err
	}
	if err != nil {
		log.Error(LogMsgShutdownComplete, "error", err)
		return err
	}
	log.Info(LogMsgShutdownComplete)
	return nil
}

// withSession runs fn against the player's engine while holding the player's
// lock. Loading takes the same lock, so a replacement engine is only built once
// every change to the previous one has been queued for saving.
func (s *service) withSession(ctx context.Context, playerID string, fn func(*Engine) error) error {
	if err := validatePlayerID(playerID); err != nil {
		return err
	}
	unlock := s.locks.Lock(playerID)
	defer unlock()
	return fn(s.session(ctx, playerID))
}

// session returns the cached engine for playerID, loading it on a miss.
// Callers hold the player's lock.
func (s *service) session(ctx context.Context, playerID string) *Engine {
	if engine, ok := s.sessions.Get(playerID); ok {
		// Get does not extend the TTL; re-adding does
		s.sessions.Add(playerID, engine)
		return engine
	}

	// An expired entry can linger until the cache's sweep; drop it so its
	// final snapshot is queued before the reload reads it back.
	s.sessions.Remove(playerID)
	engine := s.load(ctx, playerID)
	s.sessions.Add(playerID, engine)
	metrics.ActiveSessions.Set(float64(s.sessions.Len()))
	return engine
}

// load rehydrates a player and applies idle catch-up. Storage errors fall back
// to fresh state so gameplay is never blocked by persistence.
func (s *service) load(ctx context.Context, playerID string) *Engine {
	log := logger.FromContext(ctx)
	clock := WithClock(s.cfg.Now)

	snap, deleted, queued := s.persister.Pending(playerID)
	if !queued {
		stored, err := s.repo.LoadSnapshot(ctx, playerID)
		if err != nil {
			metrics.PersistenceFailures.WithLabelValues(metrics.OperationLoad).Inc()
			log.Warn(LogMsgSessionLoadFailed, logger.AttrKeyPlayerID, playerID, "error", err)
		} else if stored != nil {
			snap = *stored
			queued = true
		}
	}

	if !queued {
		log.Info(LogMsgSessionCreated, logger.AttrKeyPlayerID, playerID)
		return NewEngine(s.catalog, clock)
	}
	if deleted {
		// a reset is still being written; keep its generation so the delete stays ordered before new saves
		return NewEngineFromSnapshot(s.catalog, domain.Snapshot{Generation: snap.Generation, LastTickAt: s.cfg.Now()}, clock)
	}

	engine := NewEngineFromSnapshot(s.catalog, snap, clock)
	r := engine.AccrueUntil(s.cfg.Now(), s.cfg.MaxIdleAccrual)
	log.Info(LogMsgSessionLoaded, logger.AttrKeyPlayerID, playerID, "generation", snap.Generation)
	if r.Changed {
		log.Info(LogMsgIdleAccrual, logger.AttrKeyPlayerID, playerID, "earned", r.Earned)
		s.commit(ctx, playerID, r, domain.SourceIdle)
	}
	return engine
}

// commit persists a changed result, records earnings and announces transitions
func (s *service) commit(ctx context.Context, playerID string, r Result, source string) {
	if !r.Changed {
		return
	}
	s.persister.Save(playerID, r.Snapshot)

	if r.Earned > 0 && source != "" {
		metrics.CoinsEarned.WithLabelValues(source).Add(float64(r.Earned))
	}
	if r.LeveledUp() {
		s.publish(ctx, event.NewLevelUpEvent(playerID, r.PrevLevel, r.View.Level, source))
	}
	if r.RankedUp() {
		s.publish(ctx, event.NewRankUpEvent(playerID, r.PrevRank.Name, r.View.Rank.Name, r.View.TotalEarned))
	}
}

func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(ctx, evt); err != nil {
		metrics.EventHandlerErrors.WithLabelValues(string(evt.Type)).Inc()
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "type", evt.Type, "error", err)
	}
}

func validatePlayerID(playerID string) error {
	if playerID == "" {
		return fmt.Errorf("%w: player id is required", domain.ErrInvalidInput)
	}
	if len(playerID) > maxPlayerIDLength {
		return fmt.Errorf("%w: player id longer than %d characters", domain.ErrInvalidInput, maxPlayerIDLength)
	}
	for _, r := range playerID {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
		default:
			return fmt.Errorf("%w: player id may only contain letters, digits, '-' and '_'", domain.ErrInvalidInput)
		}
	}
	return nil
}
