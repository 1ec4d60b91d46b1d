package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/storage"
)

func TestShutdownClosesLogBeforeExit(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "snake.log")

	store, err := storage.Open(filepath.Join(dir, "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	logger, closeLog := newLogger(logPath)
	closed := 0
	countingClose := func() {
		closed++
		closeLog()
	}

	code := shutdown(store, logger, countingClose, errors.New("terminal went away"))

	if code != 1 {
		t.Errorf("Expected exit code 1, got %d", code)
	}
	if closed != 1 {
		t.Errorf("Expected log closed once, got %d", closed)
	}
	if _, err := store.Get(storage.HighScoreKey); err == nil {
		t.Error("Store should be closed")
	}

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("ReadFile() failed: %v", err)
	}
	if !strings.Contains(string(data), "terminal went away") {
		t.Errorf("Expected the run error in the log, got %q", data)
	}
}

func TestShutdownWithoutError(t *testing.T) {
	logger, closeLog := newLogger("")
	closed := false

	code := shutdown(nil, logger, func() {
		closed = true
		closeLog()
	}, nil)

	if code != 0 {
		t.Errorf("Expected exit code 0, got %d", code)
	}
	if !closed {
		t.Error("Log should be closed on a clean exit too")
	}
}

func TestPrintScores(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	var buf bytes.Buffer
	if err := printScores(&buf, store, "", 10); err != nil {
		t.Fatalf("printScores() failed: %v", err)
	}
	if !strings.Contains(buf.String(), "No scores recorded yet.") {
		t.Errorf("Expected empty message, got:\n%s", buf.String())
	}

	store.SaveScore(30, "easy")
	store.SaveScore(70, "hard")
	store.SaveScore(50, "hard")
	store.SetMax(storage.HighScoreKey, 70)

	buf.Reset()
	if err := printScores(&buf, store, "hard", 10); err != nil {
		t.Fatalf("printScores() failed: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"High Scores - hard", "Best: 70", "Games played: 3"} {
		if !strings.Contains(out, want) {
			t.Errorf("Output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "easy") {
		t.Errorf("Filtered output should not list easy games:\n%s", out)
	}
	if strings.Index(out, "70") > strings.Index(out, "50") {
		t.Errorf("Expected 70 listed before 50:\n%s", out)
	}
}
