package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/snake"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
	flagScoresTUI   bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show recorded games",
	Long: `Display the best recorded games, optionally for one speed.

Examples:
  snake scores
  snake scores --difficulty hard --limit 5
  snake scores --tui
  snake scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of games to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all recorded games and the high score")
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse scores interactively")
}

func runScores(_ *cobra.Command, _ []string) {
	cfg, _ := mustLoadConfig()

	// Validate the filter before touching the database
	filter := ""
	if flagDifficulty != "" {
		level, err := snake.ParseDifficulty(flagDifficulty)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		filter = level.String()
	}

	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}

	switch {
	case flagScoresClear:
		if err = store.ClearScores(); err == nil {
			fmt.Println("Scores cleared.")
		}
	case flagScoresTUI:
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		err = tui.RunScoreboard(store, width, height)
	default:
		err = printScores(os.Stdout, store, filter, flagScoresLimit)
	}

	// os.Exit skips deferred calls
	store.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// printScores writes the top games for filter as a text table.
func printScores(w io.Writer, store *storage.Store, filter string, limit int) error {
	scores, err := store.TopScores(filter, limit)
	if err != nil {
		return err
	}

	title := "all speeds"
	if filter != "" {
		title = filter
	}
	fmt.Fprintf(w, "High Scores - %s\n\n", title)

	if len(scores) == 0 {
		fmt.Fprintln(w, "No scores recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Play 'snake' to set the first high score!")
		return nil
	}

	fmt.Fprintf(w, "  %-4s  %-8s  %-8s  %s\n", "Rank", "Score", "Speed", "Date")
	fmt.Fprintf(w, "  %-4s  %-8s  %-8s  %s\n", "----", "-----", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Fprintf(w, "  %-4d  %-8d  %-8s  %s\n", i+1, entry.Score, entry.Difficulty, dateStr)
	}

	fmt.Fprintln(w)
	if best, err := store.Get(storage.HighScoreKey); err == nil {
		fmt.Fprintf(w, "Best: %d\n", best)
	}
	if n, err := store.CountScores(); err == nil {
		fmt.Fprintf(w, "Games played: %d\n", n)
	}
	return nil
}
