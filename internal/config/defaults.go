package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/snek.yaml
var defaultYAML []byte

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}

// DefaultConfig returns the built-in configuration. It mirrors defaults/snek.yaml
// and is used if the embedded file cannot be parsed.
func DefaultConfig() Config {
	return Config{
		Game: GameConfig{
			Tick:     150 * time.Millisecond,
			ShowHelp: true,
		},
		Theme: ThemeConfig{
			Title:       "Snek",
			Head:        Glyph{Rune: "█", Color: "bright_green"},
			Body:        Glyph{Rune: "█", Color: "green"},
			Food:        Glyph{Rune: "O", Color: "red"},
			BorderColor: "white",
			Prompt:      Glyph{Rune: " ", Color: "bright_white"},
		},
		Server: ServerConfig{
			Address:     ":23234",
			IdleTimeout: 30 * time.Minute,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
