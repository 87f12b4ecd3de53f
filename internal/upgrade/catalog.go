package upgrade

import (
	"fmt"
	"math"
	"strings"

	"github.com/osse101/EmojiKombat_Go/internal/domain"
	"github.com/osse101/EmojiKombat_Go/internal/utils"
)

// Catalog is the immutable set of purchasable upgrades, kept in display order
type Catalog struct {
	defs  []domain.UpgradeDefinition
	index map[string]int
}

// NewCatalog validates definitions and builds a catalog
func NewCatalog(defs []domain.UpgradeDefinition) (*Catalog, error) {
	if err := Validate(defs); err != nil {
		return nil, err
	}
	c := &Catalog{
		defs:  make([]domain.UpgradeDefinition, len(defs)),
		index: make(map[string]int, len(defs)),
	}
	copy(c.defs, defs)
	for i, d := range c.defs {
		c.index[d.ID] = i
	}
	return c, nil
}

// MustNewCatalog is NewCatalog for built-in catalogs; a malformed catalog is a build defect
func MustNewCatalog(defs []domain.UpgradeDefinition) *Catalog {
	c, err := NewCatalog(defs)
	if err != nil {
		panic(err)
	}
	return c
}

// Validate checks every definition and reports all violations at once
func Validate(defs []domain.UpgradeDefinition) error {
	var errs []string
	seen := make(map[string]bool, len(defs))
	for i, d := range defs {
		if d.ID == "" {
			errs = append(errs, fmt.Sprintf("upgrades[%d] has no id", i))
		} else if seen[d.ID] {
			errs = append(errs, fmt.Sprintf("upgrades[%d] duplicate id %q", i, d.ID))
		}
		seen[d.ID] = true
		if d.BaseCost <= 0 {
			errs = append(errs, fmt.Sprintf("upgrades[%d] %q base_cost must be > 0", i, d.ID))
		}
		if math.IsNaN(d.GrowthFactor) || d.GrowthFactor < 1 {
			errs = append(errs, fmt.Sprintf("upgrades[%d] %q growth_factor must be >= 1", i, d.ID))
		}
		if !d.Effect.Valid() {
			errs = append(errs, fmt.Sprintf("upgrades[%d] %q effect %q must be one of: %s, %s, %s", i, d.ID, d.Effect,
				domain.EffectAdditiveTap, domain.EffectAdditivePerSecond, domain.EffectMultiplicativeTap))
		}
		if math.IsNaN(d.Magnitude) || d.Magnitude <= 0 {
			errs = append(errs, fmt.Sprintf("upgrades[%d] %q magnitude must be > 0", i, d.ID))
		}
		if d.MaxOwned < 0 {
			errs = append(errs, fmt.Sprintf("upgrades[%d] %q max_owned must be >= 0 (0 means uncapped)", i, d.ID))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %s", domain.ErrMalformedCatalog, strings.Join(errs, "; "))
	}
	return nil
}

// Get looks up a definition by id
func (c *Catalog) Get(id string) (domain.UpgradeDefinition, bool) {
	i, ok := c.index[id]
	if !ok {
		return domain.UpgradeDefinition{}, false
	}
	return c.defs[i], true
}

// MustGet looks up a definition and panics when the id is not in the catalog.
// Callers handling untrusted ids must check Get first.
func (c *Catalog) MustGet(id string) domain.UpgradeDefinition {
	d, ok := c.Get(id)
	if !ok {
		panic(fmt.Sprintf("%s: %q", domain.ErrMsgUnknownUpgrade, id))
	}
	return d
}

// All returns the definitions in catalog order
func (c *Catalog) All() []domain.UpgradeDefinition {
	out := make([]domain.UpgradeDefinition, len(c.defs))
	copy(out, c.defs)
	return out
}

// Len returns the number of definitions
func (c *Catalog) Len() int {
	return len(c.defs)
}

// CostAt is the price of the next unit when ownedCount are already owned:
// floor(baseCost * growthFactor^ownedCount)
func CostAt(def domain.UpgradeDefinition, ownedCount int) int64 {
	if ownedCount < 0 {
		ownedCount = 0
	}
	return utils.FloorToInt64(float64(def.BaseCost) * math.Pow(def.GrowthFactor, float64(ownedCount)))
}

// EffectAt is the contribution of ownedCount units of def.
// Additive kinds contribute ownedCount*magnitude; multiplicative kinds
// contribute the factor magnitude^ownedCount.
func EffectAt(def domain.UpgradeDefinition, ownedCount int) float64 {
	if ownedCount <= 0 {
		if def.Effect == domain.EffectMultiplicativeTap {
			return 1
		}
		return 0
	}
	if def.Effect == domain.EffectMultiplicativeTap {
		return math.Pow(def.Magnitude, float64(ownedCount))
	}
	return float64(ownedCount) * def.Magnitude
}

// AtMax reports whether ownedCount has reached the definition's cap
func AtMax(def domain.UpgradeDefinition, ownedCount int) bool {
	return def.Capped() && ownedCount >= def.MaxOwned
}
