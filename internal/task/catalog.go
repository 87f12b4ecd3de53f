package task

import (
	"fmt"
	"strings"

	"github.com/osse101/EmojiKombat_Go/internal/domain"
)

// Catalog is the immutable list of rewardable tasks, in display order
type Catalog struct {
	defs  []domain.TaskDefinition
	index map[string]int
}

// NewCatalog validates definitions and builds a catalog
func NewCatalog(defs []domain.TaskDefinition) (*Catalog, error) {
	if err := Validate(defs); err != nil {
		return nil, err
	}
	c := &Catalog{
		defs:  make([]domain.TaskDefinition, len(defs)),
		index: make(map[string]int, len(defs)),
	}
	copy(c.defs, defs)
	for i, d := range c.defs {
		c.index[d.ID] = i
	}
	return c, nil
}

// MustNewCatalog panics on a malformed catalog
func MustNewCatalog(defs []domain.TaskDefinition) *Catalog {
	c, err := NewCatalog(defs)
	if err != nil {
		panic(err)
	}
	return c
}

// Validate reports every structural problem in defs
func Validate(defs []domain.TaskDefinition) error {
	var errs []string
	seen := make(map[string]bool, len(defs))
	for i, d := range defs {
		if d.ID == "" {
			errs = append(errs, fmt.Sprintf("tasks[%d] has no id", i))
		} else if seen[d.ID] {
			errs = append(errs, fmt.Sprintf("tasks[%d] duplicate id %q", i, d.ID))
		}
		seen[d.ID] = true
		if d.Reward < 0 {
			errs = append(errs, fmt.Sprintf("tasks[%d] %q reward must be >= 0", i, d.ID))
		}
		switch d.Type {
		case domain.TaskTypeReferral:
			if d.Requirement <= 0 {
				errs = append(errs, fmt.Sprintf("tasks[%d] %q referral task needs a requirement > 0", i, d.ID))
			}
		case domain.TaskTypeSocial, domain.TaskTypeAction:
		default:
			errs = append(errs, fmt.Sprintf("tasks[%d] %q unknown type %q", i, d.ID, d.Type))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %s", domain.ErrMalformedCatalog, strings.Join(errs, "; "))
	}
	return nil
}

// Get looks up a task by id
func (c *Catalog) Get(id string) (domain.TaskDefinition, bool) {
	i, ok := c.index[id]
	if !ok {
		return domain.TaskDefinition{}, false
	}
	return c.defs[i], true
}

// All returns the tasks in catalog order
func (c *Catalog) All() []domain.TaskDefinition {
	out := make([]domain.TaskDefinition, len(c.defs))
	copy(out, c.defs)
	return out
}

// Eligible reports whether a player with referrals referrals may claim def.
// Only referral tasks carry a requirement.
func Eligible(def domain.TaskDefinition, referrals int64) bool {
	if def.Type != domain.TaskTypeReferral {
		return true
	}
	return referrals >= def.Requirement
}

// Statuses joins the catalog with a player's completed ids and referral count
func (c *Catalog) Statuses(completed map[string]struct{}, referrals int64) []domain.TaskStatus {
	out := make([]domain.TaskStatus, 0, len(c.defs))
	for _, d := range c.defs {
		_, done := completed[d.ID]
		out = append(out, domain.TaskStatus{
			Task:      d,
			Completed: done,
			Claimable: !done && Eligible(d, referrals),
		})
	}
	return out
}
