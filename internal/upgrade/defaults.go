package upgrade

import "github.com/osse101/EmojiKombat_Go/internal/domain"

// DefaultGrowthFactor is the per-purchase cost multiplier used by the shipped upgrades
const DefaultGrowthFactor = 1.5

// DefaultDefinitions returns the upgrades shipped with the game
func DefaultDefinitions() []domain.UpgradeDefinition {
	return []domain.UpgradeDefinition{
		{
			ID:           domain.UpgradeTapPower,
			Name:         "Diamond Hands",
			Description:  "Increases coins per tap",
			BaseCost:     50,
			GrowthFactor: DefaultGrowthFactor,
			Effect:       domain.EffectAdditiveTap,
			Magnitude:    1,
		},
		{
			ID:           domain.UpgradeAutoMiner,
			Name:         "Mining Rig",
			Description:  "Earns coins automatically",
			BaseCost:     200,
			GrowthFactor: DefaultGrowthFactor,
			Effect:       domain.EffectAdditivePerSecond,
			Magnitude:    1,
		},
		{
			ID:           domain.UpgradeBoostMultiplier,
			Name:         "Rocket Boost",
			Description:  "Multiplies tap earnings",
			BaseCost:     1000,
			GrowthFactor: DefaultGrowthFactor,
			Effect:       domain.EffectMultiplicativeTap,
			Magnitude:    1.5,
		},
		{
			ID:           domain.UpgradeSocialPower,
			Name:         "Influencer Status",
			Description:  "Massive tap power boost",
			BaseCost:     5000,
			GrowthFactor: DefaultGrowthFactor,
			Effect:       domain.EffectAdditiveTap,
			Magnitude:    10,
		},
	}
}

// DefaultCatalog returns the built-in upgrade catalog
func DefaultCatalog() *Catalog {
	return MustNewCatalog(DefaultDefinitions())
}
