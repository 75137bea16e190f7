package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/snek/internal/platform/tui"
)

var (
	flagTick   time.Duration
	flagSeed   int64
	flagNoHelp bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game of snake in the current terminal.

Controls:
  Space          - Start / restart
  Arrows, WASD   - Steer
  Q/Esc/Ctrl+C   - Quit

Resizing the terminal discards the running game.

Examples:
  snek play
  snek play --tick 100ms
  snek play --seed 42
  snek play --log-file ~/.snek/snek.log --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().DurationVar(&flagTick, "tick", 0, "Time between moves (default from config, 150ms)")
	playCmd.Flags().Int64Var(&flagSeed, "seed", 0, "Food placement seed (0 = random)")
	playCmd.Flags().BoolVar(&flagNoHelp, "no-help", false, "Hide the key help footer")
}

func runPlay(cmd *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if cmd.Flags().Changed("tick") {
		cfg.Game.Tick = flagTick
	}
	if cmd.Flags().Changed("seed") {
		cfg.Game.Seed = flagSeed
	}
	if flagNoHelp {
		cfg.Game.ShowHelp = false
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	theme, err := cfg.Theme.Resolve()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// The alt screen owns the terminal; logs only go to a file.
	logger, closeLog, err := newLogger(cfg.Log, io.Discard, "snek")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog() //nolint:errcheck

	// Get terminal size; the first WindowSizeMsg corrects it anyway
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	logger.Debug("starting", "width", width, "height", height, "tick", cfg.Game.Tick, "seed", cfg.Game.Seed)

	opts := tui.Options{
		Runtime:  cfg.Runtime(width, height),
		Theme:    theme,
		ShowHelp: cfg.Game.ShowHelp,
		Logger:   logger,
	}
	if err := tui.Run(opts); err != nil {
		closeLog() //nolint:errcheck
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
