package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/osse101/EmojiKombat_Go/internal/catalog"
)

// LoadCatalog reads and validates the catalog file at path. An empty path
// selects the built-in catalog.
func LoadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		slog.Info(LogMsgCatalogDefault)
		return catalog.Default(), nil
	}

	cat, err := catalog.Load(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadCatalog, err)
	}

	slog.Info(LogMsgCatalogLoaded,
		"path", path,
		"upgrades", cat.Upgrades.Len(),
		"ranks", cat.Ranks.Len(),
		"tasks", len(cat.Tasks.All()))
	return cat, nil
}
