package progression

import (
	"github.com/osse101/EmojiKombat_Go/internal/domain"
	"github.com/osse101/EmojiKombat_Go/internal/upgrade"
	"github.com/osse101/EmojiKombat_Go/internal/utils"
)

// ComputeYields derives per-tap and per-second yield from owned counts.
//
// Yields are recomputed from scratch on every change so purchase order never
// matters: additive tap effects are summed onto the base yield, every
// multiplicative tap effect is then applied as a product, and the result is
// floored. Per-tap yield never drops below the default of 1.
// Owned ids missing from the catalog contribute nothing.
func ComputeYields(catalog *upgrade.Catalog, owned map[string]int) (perTap, perSecond int64) {
	additiveTap := float64(domain.DefaultPerTapYield)
	multiplier := 1.0
	additivePerSecond := 0.0

	for _, def := range catalog.All() {
		count := owned[def.ID]
		if count <= 0 {
			continue
		}
		effect := upgrade.EffectAt(def, count)
		switch def.Effect {
		case domain.EffectAdditiveTap:
			additiveTap += effect
		case domain.EffectAdditivePerSecond:
			additivePerSecond += effect
		case domain.EffectMultiplicativeTap:
			multiplier *= effect
		}
	}

	perTap = utils.FloorToInt64(additiveTap * multiplier)
	if perTap < domain.DefaultPerTapYield {
		perTap = domain.DefaultPerTapYield
	}
	perSecond = utils.FloorToInt64(additivePerSecond)
	return perTap, perSecond
}
