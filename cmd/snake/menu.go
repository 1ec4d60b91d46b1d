package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a menu",
	Long: `Start snake in interactive menu mode.

Pick a speed, play, and return to the menu with Esc when the game is
over. Tab opens the scoreboard.

Controls:
  Up/Down/j/k     - Navigate menu
  Left/Right      - Change speed
  Enter/Space     - Select
  Tab             - Scores
  Q               - Quit

Examples:
  snake menu
  snake menu --difficulty hard
  snake menu --db ./scores.db`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	cfg, level := mustLoadConfig()

	logger, closeLog := newLogger(flagLogFile)

	store := openStore(cfg.Storage.Path, logger)

	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	runErr := tui.RunSession(store, tui.SessionConfig{
		TileCount:  cfg.Board.TileCount,
		Difficulty: level,
		Intervals:  cfg.Intervals(),
		Seed:       flagSeed,
		Audio:      newAudio(cfg.Audio, logger),
		Logger:     logger,
		Width:      width,
		Height:     height,
	})

	if code := shutdown(store, logger, closeLog, runErr); code != 0 {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(code)
	}
}
