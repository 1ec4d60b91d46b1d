package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/audio"
	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a single snake board.

Controls:
  Arrows/WASD/hjkl  - Steer
  Mouse drag        - Steer (swipe)
  Enter/N           - New game
  P/Space           - Pause / resume
  1/2/3             - Easy / medium / hard
  E                 - End the current game
  ?                 - Toggle help
  Ctrl+S            - Screenshot
  Q/Ctrl+C          - Quit

Examples:
  snake play
  snake play --difficulty easy
  snake play --seed 42 --mute
  snake play --config ./my-snake.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, level := mustLoadConfig()

	logger, closeLog := newLogger(flagLogFile)

	store := openStore(cfg.Storage.Path, logger)

	// Get terminal size early so the first frame fits
	width, height := 0, 0
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runErr := tui.Run(store, tui.Options{
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
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(code)
	}
}

// newAudio opens the sound device, falling back to silence.
func newAudio(cfg config.AudioConfig, logger *log.Logger) snake.AudioSink {
	if !cfg.Enabled {
		return audio.Nop{}
	}
	player, err := audio.New(cfg.Volume)
	if err != nil {
		logger.Warn("audio unavailable", "error", err)
		return audio.Nop{}
	}
	return player
}
