// snake is the classic snake game for the terminal.
//
// Usage:
//
//	snake                    - Play (same as snake play)
//	snake play               - Play a single board
//	snake menu               - Start menu with speed picker and scoreboard
//	snake scores             - Show recorded games
//	snake serve              - Start SSH server for remote play
//	snake config             - Print the effective configuration
//
// Global flags:
//
//	--config <path>      - Custom YAML config
//	--difficulty <name>  - Starting speed: easy, medium, hard
//	--seed <value>       - Set RNG seed for reproducible food placement
//	--db <path>          - Set database path (default from config: ~/.snake/scores.db)
//	--mute               - Disable sound effects
//	--log-file <path>    - Write debug logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/snake"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	// Global flags
	flagConfig     string
	flagDifficulty string
	flagSeed       int64
	flagDBPath     string
	flagMute       bool
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic grid game in your terminal",
	Long: `Snake steers a growing snake around a square board. Each food
eaten is worth 10 points and grows the snake by one tile; hitting a
wall or the snake's own body ends the game.

Available commands:
  play     - Play a single board (default)
  menu     - Start menu with speed picker and scoreboard
  scores   - View recorded games
  serve    - Start SSH server for remote play
  config   - Print the effective configuration

Examples:
  snake
  snake play --difficulty hard
  snake menu
  snake scores --difficulty easy
  snake serve --ssh :2222`,
	Run: runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Starting speed: easy, medium, hard")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to scores database (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable sound effects")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the YAML config and applies command-line overrides.
func loadConfig() (config.SnakeConfig, snake.Difficulty, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, snake.Medium, err
	}
	if err := config.ApplyDifficultyPreset(&cfg, flagDifficulty); err != nil {
		return cfg, snake.Medium, err
	}
	if flagDBPath != "" {
		cfg.Storage.Path = flagDBPath
	}
	if flagMute {
		cfg.Audio.Enabled = false
	}
	level, err := cfg.Level()
	return cfg, level, err
}

// mustLoadConfig is loadConfig for commands that cannot continue without it.
func mustLoadConfig() (config.SnakeConfig, snake.Difficulty) {
	cfg, level, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg, level
}

// newLogger returns a file logger, or a discarding one when no file is set.
// The terminal belongs to the game, so logs never go to stdout or stderr.
func newLogger(path string) (*log.Logger, func()) {
	if path == "" {
		return log.New(io.Discard), func() {}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
		return log.New(io.Discard), func() {}
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake",
		Level:           log.DebugLevel,
	})
	return logger, func() { f.Close() }
}

// shutdown closes the store and the log file and returns the exit code for
// runErr. Must run before os.Exit, which skips deferred calls.
func shutdown(store *storage.Store, logger *log.Logger, closeLog func(), runErr error) int {
	if store != nil {
		if err := store.Close(); err != nil {
			logger.Warn("could not close scores database", "error", err)
		}
	}
	code := 0
	if runErr != nil {
		logger.Error("exited with error", "error", runErr)
		code = 1
	}
	closeLog()
	return code
}

// openStore opens the scores database, continuing without one on failure.
func openStore(path string, logger *log.Logger) *storage.Store {
	store, err := storage.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("could not open scores database", "path", path, "error", err)
		return nil
	}
	return store
}
