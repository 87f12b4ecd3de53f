package progression

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/EmojiKombat_Go/internal/domain"
	"github.com/osse101/EmojiKombat_Go/internal/upgrade"
)

func TestComputeYields(t *testing.T) {
	cat := upgrade.DefaultCatalog()

	tests := []struct {
		name          string
		owned         map[string]int
		wantPerTap    int64
		wantPerSecond int64
	}{
		{"nothing owned", nil, 1, 0},
		{"tap power", map[string]int{domain.UpgradeTapPower: 4}, 5, 0},
		{"auto miner", map[string]int{domain.UpgradeAutoMiner: 7}, 1, 7},
		{"one boost", map[string]int{domain.UpgradeBoostMultiplier: 1}, 1, 0},
		{"boost over additive", map[string]int{domain.UpgradeTapPower: 3, domain.UpgradeBoostMultiplier: 2}, 9, 0},
		{"social power", map[string]int{domain.UpgradeSocialPower: 1, domain.UpgradeTapPower: 1}, 12, 0},
		{"unknown ids ignored", map[string]int{"ghost": 99}, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			perTap, perSecond := ComputeYields(cat, tt.owned)
			assert.Equal(t, tt.wantPerTap, perTap)
			assert.Equal(t, tt.wantPerSecond, perSecond)
		})
	}
}

func TestComputeYields_OrderIndependent(t *testing.T) {
	cat := upgrade.DefaultCatalog()
	owned := map[string]int{domain.UpgradeTapPower: 2, domain.UpgradeBoostMultiplier: 1}

	a, _ := ComputeYields(cat, owned)
	b, _ := ComputeYields(cat, map[string]int{domain.UpgradeBoostMultiplier: 1, domain.UpgradeTapPower: 2})
	assert.Equal(t, a, b)
	assert.Equal(t, int64(4), a, "floor((1+2) * 1.5)")
}
