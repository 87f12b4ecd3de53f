package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/EmojiKombat_Go/internal/domain"
)

type tapctl struct {
	t       *testing.T
	dir     string
	backend string
}

func newTapctl(t *testing.T, backend string) *tapctl {
	return &tapctl{t: t, dir: t.TempDir(), backend: backend}
}

func (c *tapctl) run(args ...string) (string, error) {
	c.t.Helper()
	settings := filepath.Join(c.dir, "settings.toml")
	content := "backend = \"" + c.backend + "\"\n" +
		"data_dir = \"" + filepath.ToSlash(filepath.Join(c.dir, "players")) + "\"\n" +
		"sqlite_path = \"" + filepath.ToSlash(filepath.Join(c.dir, "db", "tapctl.db")) + "\"\n"
	require.NoError(c.t, os.WriteFile(settings, []byte(content), 0o600))

	var out bytes.Buffer
	root := NewRootCommand()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--config", settings, "--no-color"}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestTapctl_Journey(t *testing.T) {
	for _, backend := range []string{"file", "sqlite"} {
		t.Run(backend, func(t *testing.T) {
			c := newTapctl(t, backend)

			out, err := c.run("status")
			require.NoError(t, err)
			assert.Contains(t, out, "Balance:     0 (0)")
			assert.Contains(t, out, "Per tap:     1")

			out, err = c.run("tap", "49")
			require.NoError(t, err)
			assert.Contains(t, out, "Balance:     49")

			out, err = c.run("buy", domain.UpgradeTapPower)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
			assert.Contains(t, out, "✗ Not enough coins")
			assert.Contains(t, out, "Balance:     49", "rejection prints unchanged view")

			_, err = c.run("tap")
			require.NoError(t, err)

			out, err = c.run("buy", domain.UpgradeTapPower)
			require.NoError(t, err)
			assert.Contains(t, out, "✓ Bought "+domain.UpgradeTapPower)
			assert.Contains(t, out, "Per tap:     2")

			out, err = c.run("status")
			require.NoError(t, err)
			assert.Contains(t, out, "Balance:     0 (0)", "state survives between runs")
			assert.Contains(t, out, "Taps:        50")
		})
	}
}

func TestTapctl_Tasks(t *testing.T) {
	c := newTapctl(t, "file")

	_, err := c.run("claim", "referral_1")
	assert.ErrorIs(t, err, domain.ErrTaskRequirementNotMet)

	out, err := c.run("refer")
	require.NoError(t, err)
	assert.Contains(t, out, "Referrals:   1")

	out, err = c.run("tasks")
	require.NoError(t, err)
	assert.Regexp(t, `referral_1\s+Invite 1 friend\s+1\.0K\s+claimable`, out)

	out, err = c.run("claim", "referral_1")
	require.NoError(t, err)
	assert.Contains(t, out, "Balance:     1.0K (1,000)")

	_, err = c.run("claim", "referral_1")
	assert.ErrorIs(t, err, domain.ErrTaskAlreadyCompleted)

	out, err = c.run("complete", "daily_login", "250")
	require.NoError(t, err)
	assert.Contains(t, out, "(1,250)")

	out, err = c.run("complete", "daily_login", "250")
	require.NoError(t, err)
	assert.Contains(t, out, "(1,250)", "second completion grants nothing")
}

func TestTapctl_EarnAndReset(t *testing.T) {
	c := newTapctl(t, "file")

	out, err := c.run("earn", "5000")
	require.NoError(t, err)
	assert.Contains(t, out, "Balance:     5.0K")

	_, err = c.run("reset")
	require.Error(t, err, "reset requires confirmation")

	out, err = c.run("reset", "--yes")
	require.NoError(t, err)
	assert.Contains(t, out, "✓ Progress reset")
	assert.Contains(t, out, "Balance:     0 (0)")
}

func TestTapctl_Listings(t *testing.T) {
	c := newTapctl(t, "file")

	out, err := c.run("upgrades")
	require.NoError(t, err)
	assert.Contains(t, out, domain.UpgradeTapPower)
	assert.Contains(t, out, "(need more)")

	out, err = c.run("ranks")
	require.NoError(t, err)
	assert.Contains(t, out, "<- you")
}

func TestTapctl_BadArguments(t *testing.T) {
	c := newTapctl(t, "file")

	tests := []struct {
		name string
		args []string
	}{
		{"non-numeric tap", []string{"tap", "lots"}},
		{"tap above batch limit", []string{"tap", "501"}},
		{"unknown upgrade", []string{"buy", "ghost"}},
		{"non-numeric reward", []string{"complete", "x", "many"}},
		{"zero earn", []string{"earn", "0"}},
		{"missing args", []string{"buy"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.run(tt.args...)
			assert.Error(t, err)
		})
	}
}
