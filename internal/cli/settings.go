package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/osse101/EmojiKombat_Go/internal/config"
	"github.com/osse101/EmojiKombat_Go/internal/domain"
)

// SettingsFileName is looked up in the user's home directory
const SettingsFileName = ".emojikombat.toml"

// Settings is the tapctl configuration file.
//
//	backend     = "file"          # or "sqlite"
//	data_dir    = "~/.emojikombat"
//	sqlite_path = "~/.emojikombat/emojikombat.db"
//	catalog     = ""              # empty uses the built-in catalog
//	player      = "emoji_kombat_user"
//	max_idle    = "12h"           # offline catch-up cap, 0 is unbounded
type Settings struct {
	Backend     string   `toml:"backend"`
	DataDir     string   `toml:"data_dir"`
	SQLitePath  string   `toml:"sqlite_path"`
	CatalogPath string   `toml:"catalog"`
	PlayerID    string   `toml:"player"`
	MaxIdle     Duration `toml:"max_idle"`
	NoColor     bool     `toml:"no_color"`
}

// Duration decodes "90s"-style strings from TOML
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// DefaultSettings keeps everything under ~/.emojikombat
func DefaultSettings() Settings {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	dir := filepath.Join(home, ".emojikombat")
	return Settings{
		Backend:    config.BackendFile,
		DataDir:    dir,
		SQLitePath: filepath.Join(dir, "emojikombat.db"),
		PlayerID:   domain.DefaultPlayerKey,
	}
}

// DefaultSettingsPath returns ~/.emojikombat.toml
func DefaultSettingsPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return SettingsFileName
	}
	return filepath.Join(home, SettingsFileName)
}

// LoadSettings overlays the file at path onto the defaults. A missing file
// is not an error.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()
	if path == "" {
		return s, nil
	}

	if _, err := toml.DecodeFile(path, &s); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return s, nil
		}
		return s, fmt.Errorf("read %s: %w", path, err)
	}

	s.Backend = strings.ToLower(s.Backend)
	s.DataDir = expandHome(s.DataDir)
	s.SQLitePath = expandHome(s.SQLitePath)
	s.CatalogPath = expandHome(s.CatalogPath)
	return s, s.Validate()
}

// Validate rejects backends tapctl cannot open
func (s Settings) Validate() error {
	switch s.Backend {
	case config.BackendFile:
		if s.DataDir == "" {
			return errors.New("data_dir is required for the file backend")
		}
	case config.BackendSQLite:
		if s.SQLitePath == "" {
			return errors.New("sqlite_path is required for the sqlite backend")
		}
	default:
		return fmt.Errorf("unsupported backend %q (want %s or %s)", s.Backend, config.BackendFile, config.BackendSQLite)
	}
	if s.PlayerID == "" {
		return errors.New("player must not be empty")
	}
	return nil
}

func expandHome(p string) string {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, strings.TrimPrefix(p, "~"))
}
