package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/snek/internal/core"
)

// isolate points HOME at an empty directory so a developer's own config is not picked up.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	return home
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, DefaultConfig(), cfg)
	assert.Equal(t, 150*time.Millisecond, cfg.Game.Tick)
	assert.Equal(t, ":23234", cfg.Server.Address)
}

func TestLoadCustomFileOverlaysDefaults(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "snek.yaml")
	writeFile(t, path, "game:\n  tick: 80ms\ntheme:\n  food:\n    rune: \"*\"\n    color: yellow\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 80*time.Millisecond, cfg.Game.Tick)
	assert.Equal(t, Glyph{Rune: "*", Color: "yellow"}, cfg.Theme.Food)
	assert.Equal(t, "Snek", cfg.Theme.Title, "unset keys keep their defaults")
	assert.True(t, cfg.Game.ShowHelp)
}

func TestLoadMissingCustomFile(t *testing.T) {
	isolate(t)

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadUserConfig(t *testing.T) {
	home := isolate(t)
	writeFile(t, filepath.Join(home, ".snek", "config.yaml"), "game:\n  seed: 99\n")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, int64(99), cfg.Game.Seed)
}

func TestLoadEnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("SNEK_TICK", "60ms")
	t.Setenv("SNEK_SEED", "7")
	t.Setenv("SNEK_SSH_ADDR", ":2222")
	t.Setenv("SNEK_SHOW_HELP", "false")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 60*time.Millisecond, cfg.Game.Tick)
	assert.Equal(t, int64(7), cfg.Game.Seed)
	assert.Equal(t, ":2222", cfg.Server.Address)
	assert.False(t, cfg.Game.ShowHelp)
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"zero tick", "game:\n  tick: 0s\n"},
		{"negative idle timeout", "server:\n  idle_timeout: -1m\n"},
		{"unknown color", "theme:\n  head:\n    rune: \"@\"\n    color: chartreuse\n"},
		{"multi-rune glyph", "theme:\n  body:\n    rune: \"ab\"\n    color: green\n"},
		{"wide glyph", "theme:\n  food:\n    rune: \"🍎\"\n    color: red\n"},
		{"unknown border color", "theme:\n  border_color: chartreuse\n"},
		{"broken yaml", "game: [\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			isolate(t)
			path := filepath.Join(t.TempDir(), "snek.yaml")
			writeFile(t, path, tc.yaml)

			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestThemeResolve(t *testing.T) {
	theme, err := DefaultConfig().Theme.Resolve()
	require.NoError(t, err)

	assert.Equal(t, "Snek", theme.Title)
	assert.Equal(t, core.Cell{Rune: '█', Color: core.ColorBrightGreen}, theme.Head)
	assert.Equal(t, core.Cell{Rune: '█', Color: core.ColorGreen}, theme.Body)
	assert.Equal(t, core.Cell{Rune: 'O', Color: core.ColorRed}, theme.Food)
	assert.Equal(t, core.ColorWhite, theme.Border)
}

func TestGlyphResolveWidth(t *testing.T) {
	tests := []struct {
		rune string
		ok   bool
	}{
		{"@", true},
		{" ", true},
		{"█", true},
		{"─", true},
		{"🍎", false},
		{"蛇", false},
		{"\u0301", false}, // combining accent
		{"", false},
	}

	for _, tt := range tests {
		_, err := Glyph{Rune: tt.rune}.Resolve()
		if tt.ok && err != nil {
			t.Errorf("Resolve(%q) = %v, want nil", tt.rune, err)
		}
		if !tt.ok && err == nil {
			t.Errorf("Resolve(%q) = nil, want error", tt.rune)
		}
	}

	cfg := DefaultConfig()
	cfg.Theme.Food = Glyph{Rune: "🍎", Color: "red"}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "single-column")
}

func TestDefaultConfigMatchesEmbeddedFile(t *testing.T) {
	var embedded Config
	require.NoError(t, yaml.Unmarshal(DefaultYAML(), &embedded))
	assert.Equal(t, DefaultConfig(), embedded)
}

func TestMarshalRoundTrip(t *testing.T) {
	isolate(t)
	data, err := Marshal(DefaultConfig())
	require.NoError(t, err)
	assert.Contains(t, string(data), "tick: 150ms")

	path := filepath.Join(t.TempDir(), "dump.yaml")
	writeFile(t, path, string(data))
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestExpandHome(t *testing.T) {
	home := isolate(t)

	got, err := ExpandHome("~/.snek/host_key")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".snek", "host_key"), got)

	got, err = ExpandHome("/etc/snek")
	require.NoError(t, err)
	assert.Equal(t, "/etc/snek", got)
}

func TestRuntime(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Game.Seed = 3
	rc := cfg.Runtime(100, 40)

	assert.Equal(t, core.RuntimeConfig{ScreenW: 100, ScreenH: 40, Tick: 150 * time.Millisecond, Seed: 3}, rc)
}
