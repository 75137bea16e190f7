// snek is a terminal snake game.
//
// Usage:
//
//	snek play     - Play in this terminal
//	snek serve    - Start an SSH server, one game per connection
//	snek config   - Print the effective configuration
//
// Global flags:
//
//	--config <path>      - Config file (default: ~/.snek/config.yaml, ./configs/snek.yaml)
//	--log-level <level>  - debug, info, warn, error
//	--log-file <path>    - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snek",
	Short: "Snek - snake in your terminal",
	Long: `Snek is a classic snake game for the terminal.

Eat the food, grow, and stay away from the walls and your own tail.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  config   - Print the effective configuration

Examples:
  snek play
  snek play --tick 100ms
  snek serve --ssh :2222
  SNEK_TICK=80ms snek play`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}
