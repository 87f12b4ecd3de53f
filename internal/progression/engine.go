package progression

import (
	"fmt"
	"math"
	"sort"
	"sync"
	"time"

	"github.com/osse101/EmojiKombat_Go/internal/catalog"
	"github.com/osse101/EmojiKombat_Go/internal/domain"
	"github.com/osse101/EmojiKombat_Go/internal/rank"
	"github.com/osse101/EmojiKombat_Go/internal/upgrade"
	"github.com/osse101/EmojiKombat_Go/internal/utils"
)

// Result is the outcome of one engine operation. View and Snapshot are taken
// under the same lock as the mutation, so they always describe the same state.
type Result struct {
	View     domain.View
	Snapshot domain.Snapshot

	// Changed is false for no-ops (duplicate task claims, empty ticks)
	Changed bool
	Earned  int64
	Spent   int64

	PrevLevel int64
	PrevRank  domain.RankInfo
}

// LeveledUp reports whether the operation raised the player's level
func (r Result) LeveledUp() bool {
	return r.View.Level > r.PrevLevel
}

// RankedUp reports whether the operation moved the player into a higher rank
func (r Result) RankedUp() bool {
	return r.View.Rank.MinEarnings > r.PrevRank.MinEarnings
}

// Engine owns one player's progression state and applies every game rule to it.
// All methods are safe for concurrent use; each operation is atomic.
type Engine struct {
	mu         sync.Mutex
	state      domain.State
	generation uint64

	upgrades *upgrade.Catalog
	ranks    *rank.Table
	now      func() time.Time
}

// Option configures an Engine
type Option func(*Engine)

// WithClock overrides the wall clock used for idle accrual and resets
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// NewEngine creates an engine with fresh default state
func NewEngine(cat *catalog.Catalog, opts ...Option) *Engine {
	e := &Engine{
		upgrades: cat.Upgrades,
		ranks:    cat.Ranks,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.state = domain.NewState(e.now())
	return e
}

// NewEngineFromSnapshot rehydrates an engine from persisted state.
// Missing or out-of-range fields are defaulted, and yields are recomputed from
// owned counts against the current catalog.
func NewEngineFromSnapshot(cat *catalog.Catalog, snap domain.Snapshot, opts ...Option) *Engine {
	e := NewEngine(cat, opts...)
	e.state = stateFromSnapshot(snap, e.upgrades, e.now())
	e.generation = snap.Generation
	return e
}

func stateFromSnapshot(snap domain.Snapshot, upgrades *upgrade.Catalog, now time.Time) domain.State {
	s := domain.NewState(now)
	s.Balance = nonNegative(snap.Balance)
	s.TotalEarned = nonNegative(snap.TotalEarned)
	s.TotalTaps = nonNegative(snap.TotalTaps)
	s.ReferralCount = nonNegative(snap.ReferralCount)
	if !snap.LastTickAt.IsZero() {
		s.LastTickAt = snap.LastTickAt
	}

	for id, count := range snap.OwnedUpgrades {
		if count <= 0 {
			continue
		}
		if def, ok := upgrades.Get(id); ok && def.Capped() && count > def.MaxOwned {
			count = def.MaxOwned
		}
		s.OwnedUpgrades[id] = count
	}
	for _, id := range snap.CompletedTasks {
		if id != "" {
			s.CompletedTasks[id] = struct{}{}
		}
	}

	s.PerTapYield, s.PerSecondYield = ComputeYields(upgrades, s.OwnedUpgrades)
	return s
}

func nonNegative(v int64) int64 {
	if v < 0 {
		return 0
	}
	return v
}

// Tap applies a single tap
func (e *Engine) Tap() Result {
	return e.TapN(1)
}

// TapN applies n taps atomically. n <= 0 is a no-op.
func (e *Engine) TapN(n int) Result {
	e.mu.Lock()
	defer e.mu.Unlock()

	prev := e.mark()
	if n <= 0 {
		return e.result(prev, false)
	}
	earned := utils.SaturatingMul(e.state.PerTapYield, int64(n))
	e.credit(earned)
	e.state.TotalTaps = utils.SaturatingAdd(e.state.TotalTaps, int64(n))

	r := e.result(prev, true)
	r.Earned = earned
	return r
}

// PurchaseUpgrade buys one unit of the upgrade. A capped upgrade is rejected
// with ErrMaxLevelReached before affordability is checked; an unaffordable one
// with ErrInsufficientFunds. Rejections leave state untouched.
//
// The id must exist in the catalog; an unknown id panics.
func (e *Engine) PurchaseUpgrade(id string) (Result, error) {
	def := e.upgrades.MustGet(id)

	e.mu.Lock()
	defer e.mu.Unlock()

	prev := e.mark()
	owned := e.state.OwnedUpgrades[id]
	if upgrade.AtMax(def, owned) {
		return e.result(prev, false), fmt.Errorf("%w: %s owned %d of %d", domain.ErrMaxLevelReached, id, owned, def.MaxOwned)
	}
	cost := upgrade.CostAt(def, owned)
	if e.state.Balance < cost {
		return e.result(prev, false), fmt.Errorf("%w: %s costs %d, balance %d", domain.ErrInsufficientFunds, id, cost, e.state.Balance)
	}

	e.state.Balance -= cost
	e.state.OwnedUpgrades[id] = owned + 1
	e.state.PerTapYield, e.state.PerSecondYield = ComputeYields(e.upgrades, e.state.OwnedUpgrades)

	r := e.result(prev, true)
	r.Spent = cost
	return r, nil
}

// CompleteTask grants reward the first time taskID is seen and reports whether
// it did. Repeated calls with the same id are no-ops. Negative rewards grant 0.
func (e *Engine) CompleteTask(taskID string, reward int64) (Result, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	prev := e.mark()
	if _, done := e.state.CompletedTasks[taskID]; done {
		return e.result(prev, false), false
	}
	reward = nonNegative(reward)
	e.state.CompletedTasks[taskID] = struct{}{}
	e.credit(reward)

	r := e.result(prev, true)
	r.Earned = reward
	return r, true
}

// EarnFromMinigame credits a minigame payout. Negative amounts contribute 0.
func (e *Engine) EarnFromMinigame(amount int64) Result {
	e.mu.Lock()
	defer e.mu.Unlock()

	prev := e.mark()
	amount = nonNegative(amount)
	if amount == 0 {
		return e.result(prev, false)
	}
	e.credit(amount)

	r := e.result(prev, true)
	r.Earned = amount
	return r
}

// Tick credits perSecondYield * elapsedSeconds, floored. It is the entry point
// for an external scheduler that counts elapsed time itself; Tick does not move
// the last tick timestamp. Negative, NaN and infinite durations are ignored.
func (e *Engine) Tick(elapsedSeconds float64) Result {
	e.mu.Lock()
	defer e.mu.Unlock()

	prev := e.mark()
	if math.IsNaN(elapsedSeconds) || math.IsInf(elapsedSeconds, 0) || elapsedSeconds <= 0 || e.state.PerSecondYield <= 0 {
		return e.result(prev, false)
	}
	return e.creditYield(prev, utils.FloorToInt64(float64(e.state.PerSecondYield)*elapsedSeconds))
}

// creditYield books one accrual step. Caller holds mu.
func (e *Engine) creditYield(prev checkpoint, earned int64) Result {
	if earned <= 0 {
		return e.result(prev, false)
	}
	e.credit(earned)

	r := e.result(prev, true)
	r.Earned = earned
	return r
}

// AccrueUntil credits idle accrual for the whole seconds between the last tick
// and now. The fractional remainder stays on the clock for the next call, so
// irregular tick intervals never lose currency. maxIdle > 0 caps the credited
// span; time beyond the cap is forfeited.
func (e *Engine) AccrueUntil(now time.Time, maxIdle time.Duration) Result {
	e.mu.Lock()
	defer e.mu.Unlock()

	prev := e.mark()
	elapsed := now.Sub(e.state.LastTickAt)
	if elapsed <= 0 {
		return e.result(prev, false)
	}
	if e.state.PerSecondYield <= 0 {
		// Nothing is owed, so idle time carries no credit into a later purchase
		e.state.LastTickAt = now
		return e.result(prev, false)
	}

	if maxIdle > 0 && elapsed > maxIdle {
		e.state.LastTickAt = now.Add(-maxIdle)
		elapsed = maxIdle
	}
	seconds := int64(elapsed / time.Second)
	if seconds == 0 {
		return e.result(prev, false)
	}
	e.state.LastTickAt = e.state.LastTickAt.Add(time.Duration(seconds) * time.Second)
	return e.creditYield(prev, utils.SaturatingMul(e.state.PerSecondYield, seconds))
}

// IncrementReferral adds one to the referral count
func (e *Engine) IncrementReferral() Result {
	e.mu.Lock()
	defer e.mu.Unlock()

	prev := e.mark()
	e.state.ReferralCount = utils.SaturatingAdd(e.state.ReferralCount, 1)
	return e.result(prev, true)
}

// Reset discards all progress and starts over with fresh defaults.
// The generation keeps counting so stale writes are still ordered behind it.
func (e *Engine) Reset() Result {
	e.mu.Lock()
	defer e.mu.Unlock()

	prev := e.mark()
	e.state = domain.NewState(e.now())
	return e.result(prev, true)
}

// View returns the current render model
func (e *Engine) View() domain.View {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.view()
}

// Snapshot returns the persistable form of the current state
func (e *Engine) Snapshot() domain.Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshot()
}

// State returns a deep copy of the current state
func (e *Engine) State() domain.State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.Clone()
}

// Generation is a counter bumped by every state change
func (e *Engine) Generation() uint64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.generation
}

// CanAfford applies the same test PurchaseUpgrade uses. Unknown ids and capped
// upgrades are never affordable.
func (e *Engine) CanAfford(id string) bool {
	def, ok := e.upgrades.Get(id)
	if !ok {
		return false
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	owned := e.state.OwnedUpgrades[id]
	return !upgrade.AtMax(def, owned) && e.state.Balance >= upgrade.CostAt(def, owned)
}

// Offers lists every catalog upgrade with the player's owned count, next
// cost and affordability, in catalog order
func (e *Engine) Offers() []domain.UpgradeOffer {
	e.mu.Lock()
	defer e.mu.Unlock()

	defs := e.upgrades.All()
	out := make([]domain.UpgradeOffer, 0, len(defs))
	for _, def := range defs {
		owned := e.state.OwnedUpgrades[def.ID]
		cost := upgrade.CostAt(def, owned)
		maxed := upgrade.AtMax(def, owned)
		out = append(out, domain.UpgradeOffer{
			Upgrade:    def,
			Owned:      owned,
			NextCost:   cost,
			Affordable: !maxed && e.state.Balance >= cost,
			Maxed:      maxed,
		})
	}
	return out
}

// credit adds amount to both balance and lifetime earnings. Caller holds mu.
func (e *Engine) credit(amount int64) {
	e.state.Balance = utils.SaturatingAdd(e.state.Balance, amount)
	e.state.TotalEarned = utils.SaturatingAdd(e.state.TotalEarned, amount)
}

type checkpoint struct {
	level int64
	rank  domain.RankInfo
}

func (e *Engine) mark() checkpoint {
	return checkpoint{
		level: rank.Level(e.state.TotalEarned),
		rank:  rankInfo(e.ranks.RankFor(e.state.TotalEarned)),
	}
}

// result builds the operation outcome, bumping the generation when changed. Caller holds mu.
func (e *Engine) result(prev checkpoint, changed bool) Result {
	if changed {
		e.generation++
	}
	return Result{
		View:      e.view(),
		Snapshot:  e.snapshot(),
		Changed:   changed,
		PrevLevel: prev.level,
		PrevRank:  prev.rank,
	}
}

func (e *Engine) view() domain.View {
	s := e.state
	v := domain.View{
		Balance:        s.Balance,
		BalanceDisplay: utils.FormatCompact(s.Balance),
		TotalEarned:    s.TotalEarned,
		TotalTaps:      s.TotalTaps,
		PerTapYield:    s.PerTapYield,
		PerSecondYield: s.PerSecondYield,
		Level:          rank.Level(s.TotalEarned),
		Rank:           rankInfo(e.ranks.RankFor(s.TotalEarned)),
		RankProgress:   e.ranks.ProgressFraction(s.TotalEarned),
		ReferralCount:  s.ReferralCount,
		CompletedTasks: completedIDs(s.CompletedTasks),
		LastTickAt:     s.LastTickAt,
	}
	if next, ok := e.ranks.NextRankFor(s.TotalEarned); ok {
		info := rankInfo(next)
		v.NextRank = &info
	}
	return v
}

func (e *Engine) snapshot() domain.Snapshot {
	s := e.state
	owned := make(map[string]int, len(s.OwnedUpgrades))
	for k, v := range s.OwnedUpgrades {
		owned[k] = v
	}
	return domain.Snapshot{
		Version:        domain.SnapshotVersion,
		Generation:     e.generation,
		Balance:        s.Balance,
		TotalEarned:    s.TotalEarned,
		TotalTaps:      s.TotalTaps,
		OwnedUpgrades:  owned,
		CompletedTasks: completedIDs(s.CompletedTasks),
		ReferralCount:  s.ReferralCount,
		LastTickAt:     s.LastTickAt,
	}
}

func rankInfo(r domain.RankThreshold) domain.RankInfo {
	return domain.RankInfo{
		Name:        r.Name,
		Emoji:       r.Emoji,
		Color:       r.Color,
		MinEarnings: r.MinEarnings,
	}
}

func completedIDs(set map[string]struct{}) []string {
	ids := make([]string, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
