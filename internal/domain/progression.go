package domain

import (
	"math"
	"time"
)

// EffectKind describes how an upgrade changes a player's yields
type EffectKind string

const (
	EffectAdditiveTap       EffectKind = "additive-tap"
	EffectAdditivePerSecond EffectKind = "additive-per-second"
	EffectMultiplicativeTap EffectKind = "multiplicative-tap"
)

// Valid reports whether k is one of the known effect kinds
func (k EffectKind) Valid() bool {
	switch k {
	case EffectAdditiveTap, EffectAdditivePerSecond, EffectMultiplicativeTap:
		return true
	default:
		return false
	}
}

// UpgradeDefinition is an immutable catalog entry for a purchasable upgrade
type UpgradeDefinition struct {
	ID           string     `json:"id" yaml:"id" validate:"required,max=64"`
	Name         string     `json:"name" yaml:"name" validate:"required"`
	Description  string     `json:"description,omitempty" yaml:"description,omitempty"`
	BaseCost     int64      `json:"base_cost" yaml:"base_cost" validate:"gt=0"`
	GrowthFactor float64    `json:"growth_factor" yaml:"growth_factor" validate:"gte=1"`
	Effect       EffectKind `json:"effect" yaml:"effect" validate:"required"`
	Magnitude    float64    `json:"magnitude" yaml:"magnitude" validate:"gt=0"`
	MaxOwned     int        `json:"max_owned,omitempty" yaml:"max_owned,omitempty" validate:"gte=0"` // 0 = uncapped
}

// Capped reports whether the definition has a max-owned limit
func (d UpgradeDefinition) Capped() bool {
	return d.MaxOwned > 0
}

// NoMaxEarnings marks the open upper bound of the last rank
const NoMaxEarnings int64 = math.MaxInt64

// RankThreshold is an immutable rank table entry covering [MinEarnings, MaxEarnings)
type RankThreshold struct {
	Name        string `json:"name" yaml:"name" validate:"required"`
	Emoji       string `json:"emoji,omitempty" yaml:"emoji,omitempty"`
	Color       string `json:"color,omitempty" yaml:"color,omitempty"`
	MinEarnings int64  `json:"min_earnings" yaml:"min_earnings" validate:"gte=0"`
	MaxEarnings int64  `json:"max_earnings" yaml:"max_earnings"`
}

// Contains reports whether totalEarned falls inside the threshold
func (r RankThreshold) Contains(totalEarned int64) bool {
	if totalEarned < r.MinEarnings {
		return false
	}
	return r.MaxEarnings == NoMaxEarnings || totalEarned < r.MaxEarnings
}

// State is the mutable per-player progression aggregate.
// Only the progression engine mutates it.
type State struct {
	Balance        int64
	TotalEarned    int64
	TotalTaps      int64
	PerTapYield    int64
	PerSecondYield int64
	OwnedUpgrades  map[string]int
	CompletedTasks map[string]struct{}
	ReferralCount  int64
	LastTickAt     time.Time
}

// NewState returns fresh defaults for a new player
func NewState(now time.Time) State {
	return State{
		PerTapYield:    DefaultPerTapYield,
		OwnedUpgrades:  make(map[string]int),
		CompletedTasks: make(map[string]struct{}),
		LastTickAt:     now,
	}
}

// Clone returns a deep copy of the state
func (s State) Clone() State {
	out := s
	out.OwnedUpgrades = make(map[string]int, len(s.OwnedUpgrades))
	for k, v := range s.OwnedUpgrades {
		out.OwnedUpgrades[k] = v
	}
	out.CompletedTasks = make(map[string]struct{}, len(s.CompletedTasks))
	for k := range s.CompletedTasks {
		out.CompletedTasks[k] = struct{}{}
	}
	return out
}

// Snapshot is the persisted form of State.
// Yields are not stored; they are derived from owned upgrades on load.
type Snapshot struct {
	Version        int            `json:"version"`
	Generation     uint64         `json:"generation"`
	Balance        int64          `json:"balance"`
	TotalEarned    int64          `json:"total_earned"`
	TotalTaps      int64          `json:"total_taps"`
	OwnedUpgrades  map[string]int `json:"owned_upgrades,omitempty"`
	CompletedTasks []string       `json:"completed_tasks,omitempty"`
	ReferralCount  int64          `json:"referral_count"`
	LastTickAt     time.Time      `json:"last_tick_at"`
}

// RankInfo is the render model for a rank
type RankInfo struct {
	Name        string `json:"name"`
	Emoji       string `json:"emoji,omitempty"`
	Color       string `json:"color,omitempty"`
	MinEarnings int64  `json:"min_earnings"`
}

// View is the read-only state handed to presentation after every intent
type View struct {
	Balance         int64     `json:"balance"`
	BalanceDisplay  string    `json:"balance_display"`
	TotalEarned     int64     `json:"total_earned"`
	TotalTaps       int64     `json:"total_taps"`
	PerTapYield     int64     `json:"per_tap_yield"`
	PerSecondYield  int64     `json:"per_second_yield"`
	Level           int64     `json:"level"`
	Rank            RankInfo  `json:"rank"`
	NextRank        *RankInfo `json:"next_rank,omitempty"`
	RankProgress    float64   `json:"rank_progress"`
	ReferralCount   int64     `json:"referral_count"`
	CompletedTasks  []string  `json:"completed_tasks"`
	LastTickAt      time.Time `json:"last_tick_at"`
	EarnedThisEvent int64     `json:"earned_this_event,omitempty"`
}

// UpgradeOffer is one catalog upgrade as seen by a specific player
type UpgradeOffer struct {
	Upgrade    UpgradeDefinition `json:"upgrade"`
	Owned      int               `json:"owned"`
	NextCost   int64             `json:"next_cost"`
	Affordable bool              `json:"affordable"`
	Maxed      bool              `json:"maxed"`
}
