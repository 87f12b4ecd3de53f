package catalog

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/osse101/EmojiKombat_Go/internal/domain"
	"github.com/osse101/EmojiKombat_Go/internal/rank"
	"github.com/osse101/EmojiKombat_Go/internal/task"
	"github.com/osse101/EmojiKombat_Go/internal/upgrade"
)

// Catalog bundles the static game definitions a session is built from
type Catalog struct {
	Upgrades *upgrade.Catalog
	Ranks    *rank.Table
	Tasks    *task.Catalog
}

// Default returns the catalog shipped with the game
func Default() *Catalog {
	return &Catalog{
		Upgrades: upgrade.DefaultCatalog(),
		Ranks:    rank.DefaultTable(),
		Tasks:    task.DefaultCatalog(),
	}
}

// rawFile is the YAML layout. Absent sections fall back to the built-in defaults.
type rawFile struct {
	Upgrades []domain.UpgradeDefinition `yaml:"upgrades" validate:"omitempty,dive"`
	Ranks    []rawRank                  `yaml:"ranks" validate:"omitempty,dive"`
	Tasks    []domain.TaskDefinition    `yaml:"tasks" validate:"omitempty,dive"`
}

// rawRank allows max_earnings to be omitted; it defaults to the next rank's
// min_earnings, or unbounded for the last rank.
type rawRank struct {
	Name        string `yaml:"name" validate:"required"`
	Emoji       string `yaml:"emoji"`
	Color       string `yaml:"color"`
	MinEarnings int64  `yaml:"min_earnings" validate:"gte=0"`
	MaxEarnings *int64 `yaml:"max_earnings"`
}

var validate = validator.New()

// Load reads a catalog from a YAML file. An empty path returns Default().
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("catalog file %s does not exist: %w", path, err)
		}
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	c, err := Parse(b)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return c, nil
}

// Parse builds a catalog from YAML bytes, validating every section and
// reporting all problems together.
func Parse(data []byte) (*Catalog, error) {
	var raw rawFile
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedCatalog, err)
	}

	var errs []string
	if err := validate.Struct(raw); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				errs = append(errs, fmt.Sprintf("%s failed %s", fe.Namespace(), fe.Tag()))
			}
		} else {
			errs = append(errs, err.Error())
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrMalformedCatalog, strings.Join(errs, "; "))
	}

	out := Default()
	var sectionErrs []error

	if len(raw.Upgrades) > 0 {
		u, err := upgrade.NewCatalog(raw.Upgrades)
		if err != nil {
			sectionErrs = append(sectionErrs, err)
		} else {
			out.Upgrades = u
		}
	}
	if len(raw.Ranks) > 0 {
		r, err := rank.NewTable(resolveRanks(raw.Ranks))
		if err != nil {
			sectionErrs = append(sectionErrs, err)
		} else {
			out.Ranks = r
		}
	}
	if len(raw.Tasks) > 0 {
		t, err := task.NewCatalog(raw.Tasks)
		if err != nil {
			sectionErrs = append(sectionErrs, err)
		} else {
			out.Tasks = t
		}
	}

	if len(sectionErrs) > 0 {
		return nil, errors.Join(sectionErrs...)
	}
	return out, nil
}

func resolveRanks(raw []rawRank) []domain.RankThreshold {
	out := make([]domain.RankThreshold, len(raw))
	for i, r := range raw {
		maxEarnings := domain.NoMaxEarnings
		switch {
		case r.MaxEarnings != nil:
			maxEarnings = *r.MaxEarnings
		case i+1 < len(raw):
			maxEarnings = raw[i+1].MinEarnings
		}
		out[i] = domain.RankThreshold{
			Name:        r.Name,
			Emoji:       r.Emoji,
			Color:       r.Color,
			MinEarnings: r.MinEarnings,
			MaxEarnings: maxEarnings,
		}
	}
	return out
}
