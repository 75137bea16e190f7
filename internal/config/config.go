// Package config provides YAML-based configuration loading for snek, with
// embedded defaults and environment overrides.
package config

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"

	"github.com/vovakirdan/snek/internal/core"
)

// glyphWidth measures glyphs with East Asian ambiguous runes (box drawing,
// blocks) counted as narrow, so the defaults hold in every locale.
var glyphWidth = &runewidth.Condition{EastAsianWidth: false}

// Config is the complete snek configuration.
type Config struct {
	Game   GameConfig   `yaml:"game"`
	Theme  ThemeConfig  `yaml:"theme"`
	Server ServerConfig `yaml:"server"`
	Log    LogConfig    `yaml:"log"`
}

// GameConfig controls pacing and randomness.
type GameConfig struct {
	Tick     time.Duration `yaml:"tick" env:"SNEK_TICK"`
	Seed     int64         `yaml:"seed" env:"SNEK_SEED"` // 0 = fresh seed per session
	ShowHelp bool          `yaml:"show_help" env:"SNEK_SHOW_HELP"`
}

// ThemeConfig defines glyphs and colors. Presentation only.
type ThemeConfig struct {
	Title       string `yaml:"title" env:"SNEK_TITLE"`
	Head        Glyph  `yaml:"head"`
	Body        Glyph  `yaml:"body"`
	Food        Glyph  `yaml:"food"`
	BorderColor string `yaml:"border_color"` // frame, title and score
	Prompt      Glyph  `yaml:"prompt"`       // rune fills the prompt box background
}

// Glyph is a single character with a named color (see core.ParseColor).
type Glyph struct {
	Rune  string `yaml:"rune"`
	Color string `yaml:"color"`
}

// ServerConfig configures `snek serve`.
type ServerConfig struct {
	Address        string        `yaml:"address" env:"SNEK_SSH_ADDR"`
	HostKeyPath    string        `yaml:"host_key" env:"SNEK_HOST_KEY"`
	IdleTimeout    time.Duration `yaml:"idle_timeout" env:"SNEK_IDLE_TIMEOUT"`
	MetricsAddress string        `yaml:"metrics_address" env:"SNEK_METRICS_ADDR"`
}

// LogConfig configures the charmbracelet logger.
type LogConfig struct {
	Level string `yaml:"level" env:"SNEK_LOG_LEVEL"`
	File  string `yaml:"file" env:"SNEK_LOG_FILE"`
}

// Theme is a resolved ThemeConfig, ready for drawing.
type Theme struct {
	Title  string
	Head   core.Cell
	Body   core.Cell
	Food   core.Cell
	Border core.Color
	Prompt core.Cell
}

// Resolve parses a glyph into a screen cell.
func (g Glyph) Resolve() (core.Cell, error) {
	if utf8.RuneCountInString(g.Rune) != 1 {
		return core.Cell{}, fmt.Errorf("glyph %q must be exactly one character", g.Rune)
	}
	r, _ := utf8.DecodeRuneInString(g.Rune)
	// Every engine cell is one screen column
	if glyphWidth.RuneWidth(r) != 1 {
		return core.Cell{}, fmt.Errorf("glyph %q must be a single-column character", g.Rune)
	}

	color := core.ColorDefault
	if g.Color != "" {
		c, ok := core.ParseColor(g.Color)
		if !ok {
			return core.Cell{}, fmt.Errorf("unknown color %q", g.Color)
		}
		color = c
	}
	return core.Cell{Rune: r, Color: color}, nil
}

// Resolve turns the theme into drawable cells.
func (t ThemeConfig) Resolve() (Theme, error) {
	theme := Theme{Title: t.Title}
	glyphs := []struct {
		name string
		in   Glyph
		out  *core.Cell
	}{
		{"head", t.Head, &theme.Head},
		{"body", t.Body, &theme.Body},
		{"food", t.Food, &theme.Food},
		{"prompt", t.Prompt, &theme.Prompt},
	}
	for _, g := range glyphs {
		cell, err := g.in.Resolve()
		if err != nil {
			return Theme{}, fmt.Errorf("theme.%s: %w", g.name, err)
		}
		*g.out = cell
	}

	border := core.ColorDefault
	if t.BorderColor != "" {
		c, ok := core.ParseColor(t.BorderColor)
		if !ok {
			return Theme{}, fmt.Errorf("theme.border_color: unknown color %q", t.BorderColor)
		}
		border = c
	}
	theme.Border = border
	return theme, nil
}

// Validate checks values that would break the game loop or the renderer.
func (c Config) Validate() error {
	if c.Game.Tick <= 0 {
		return fmt.Errorf("config: game.tick must be positive, got %s", c.Game.Tick)
	}
	if c.Server.IdleTimeout < 0 {
		return fmt.Errorf("config: server.idle_timeout must not be negative, got %s", c.Server.IdleTimeout)
	}
	if _, err := c.Theme.Resolve(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Runtime builds the shell runtime config for a screen of the given size.
func (c Config) Runtime(width, height int) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		Tick:    c.Game.Tick,
		Seed:    c.Game.Seed,
	}
}
