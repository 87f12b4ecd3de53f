package rank

import (
	"fmt"
	"strings"

	"github.com/osse101/EmojiKombat_Go/internal/domain"
	"github.com/osse101/EmojiKombat_Go/internal/utils"
)

// Table is an ordered, gap-free list of rank thresholds covering [0, ∞)
type Table struct {
	ranks []domain.RankThreshold
}

// NewTable validates thresholds and builds a table.
// Thresholds must be ascending, start at 0, be contiguous (each max equals the
// next min) and end with an unbounded rank.
func NewTable(thresholds []domain.RankThreshold) (*Table, error) {
	if err := Validate(thresholds); err != nil {
		return nil, err
	}
	ranks := make([]domain.RankThreshold, len(thresholds))
	copy(ranks, thresholds)
	return &Table{ranks: ranks}, nil
}

// MustNewTable is NewTable for built-in tables; a malformed table is a build defect
func MustNewTable(thresholds []domain.RankThreshold) *Table {
	t, err := NewTable(thresholds)
	if err != nil {
		panic(err)
	}
	return t
}

// Validate checks the structural invariants of a rank table and reports every violation
func Validate(thresholds []domain.RankThreshold) error {
	if len(thresholds) == 0 {
		return fmt.Errorf("%w: rank table is empty", domain.ErrMalformedCatalog)
	}

	var errs []string
	if thresholds[0].MinEarnings != 0 {
		errs = append(errs, fmt.Sprintf("ranks[0] %q must start at 0, got %d", thresholds[0].Name, thresholds[0].MinEarnings))
	}
	seen := make(map[string]bool, len(thresholds))
	for i, r := range thresholds {
		if r.Name == "" {
			errs = append(errs, fmt.Sprintf("ranks[%d] has no name", i))
		}
		if seen[r.Name] {
			errs = append(errs, fmt.Sprintf("ranks[%d] duplicate name %q", i, r.Name))
		}
		seen[r.Name] = true
		if r.MaxEarnings <= r.MinEarnings {
			errs = append(errs, fmt.Sprintf("ranks[%d] %q max %d must exceed min %d", i, r.Name, r.MaxEarnings, r.MinEarnings))
		}
		if i > 0 && thresholds[i-1].MaxEarnings != r.MinEarnings {
			errs = append(errs, fmt.Sprintf("ranks[%d] %q min %d leaves a gap or overlap with previous max %d",
				i, r.Name, r.MinEarnings, thresholds[i-1].MaxEarnings))
		}
	}
	if last := thresholds[len(thresholds)-1]; last.MaxEarnings != domain.NoMaxEarnings {
		errs = append(errs, fmt.Sprintf("last rank %q must be unbounded", last.Name))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %s", domain.ErrMalformedCatalog, strings.Join(errs, "; "))
	}
	return nil
}

// index returns the position of the rank containing totalEarned.
// Negative totals are treated as 0.
func (t *Table) index(totalEarned int64) int {
	if totalEarned < 0 {
		totalEarned = 0
	}
	lo, hi := 0, len(t.ranks)-1
	for lo <= hi {
		mid := (lo + hi) / 2
		r := t.ranks[mid]
		switch {
		case totalEarned < r.MinEarnings:
			hi = mid - 1
		case !r.Contains(totalEarned):
			lo = mid + 1
		default:
			return mid
		}
	}
	// unreachable for a validated table
	panic(fmt.Sprintf("rank table does not cover %d", totalEarned))
}

// RankFor returns the threshold where min <= totalEarned < max
func (t *Table) RankFor(totalEarned int64) domain.RankThreshold {
	return t.ranks[t.index(totalEarned)]
}

// NextRankFor returns the rank after the current one, or false at the top rank
func (t *Table) NextRankFor(totalEarned int64) (domain.RankThreshold, bool) {
	i := t.index(totalEarned)
	if i+1 >= len(t.ranks) {
		return domain.RankThreshold{}, false
	}
	return t.ranks[i+1], true
}

// Position returns the 0-based table position of the rank for totalEarned
func (t *Table) Position(totalEarned int64) int {
	return t.index(totalEarned)
}

// ProgressFraction is how far totalEarned is from the current rank's min to the
// next rank's min, clamped to [0, 1]. It is 1 at the top rank.
func (t *Table) ProgressFraction(totalEarned int64) float64 {
	current := t.RankFor(totalEarned)
	next, ok := t.NextRankFor(totalEarned)
	if !ok {
		return 1
	}
	span := next.MinEarnings - current.MinEarnings
	return utils.Clamp01(float64(totalEarned-current.MinEarnings) / float64(span))
}

// All returns a copy of the thresholds in table order
func (t *Table) All() []domain.RankThreshold {
	out := make([]domain.RankThreshold, len(t.ranks))
	copy(out, t.ranks)
	return out
}

// Len returns the number of ranks
func (t *Table) Len() int {
	return len(t.ranks)
}

// Level derives the player level from lifetime earnings: floor(totalEarned/1000)+1
func Level(totalEarned int64) int64 {
	if totalEarned < 0 {
		return 1
	}
	return totalEarned/domain.CoinsPerLevel + 1
}
