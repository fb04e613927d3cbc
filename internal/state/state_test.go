package state

import (
	"errors"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Paintersrp/sift/internal/config"
	"github.com/Paintersrp/sift/internal/note"
)

func TestNewStateCreatesConfigAndLog(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	s, err := NewState()
	if err != nil {
		t.Fatalf("NewState returned error: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })

	if _, err := os.Stat(config.GetConfigPath(home)); err != nil {
		t.Fatalf("expected config file to be created: %v", err)
	}

	log.Printf("hello from the test")
	if err := s.Close(); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(home, ".sift", "sift.log"))
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	if !strings.Contains(string(data), "hello from the test") {
		t.Fatalf("expected log line in file, got %q", data)
	}
}

func TestNewStateAppliesEnvironment(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("SIFT_NOTES_FILE", "/elsewhere/notes")
	t.Setenv("SIFT_LOG_FILE", "-")
	t.Setenv("SIFT_WORD_WRAP", "42")

	s, err := NewState()
	if err != nil {
		t.Fatalf("NewState returned error: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })

	if s.Config.NotesFile != "/elsewhere/notes" {
		t.Fatalf("expected env notes file, got %q", s.Config.NotesFile)
	}
	if s.Config.WordWrap != 42 {
		t.Fatalf("expected env word wrap, got %d", s.Config.WordWrap)
	}
	if s.logFile != nil {
		t.Fatalf("expected logging to be disabled")
	}
}

func TestNewStateInvalidEnvironmentIsSetupError(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("SIFT_GLAMOUR_STYLE", "neon")
	t.Setenv("SIFT_LOG_FILE", "-")

	_, err := NewState()
	var setupErr *note.SetupError
	if !errors.As(err, &setupErr) {
		t.Fatalf("expected SetupError, got %v", err)
	}
	var cfgErr *config.ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected wrapped ConfigError, got %v", err)
	}
}

func TestNotesWatcherReportsWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes")
	if err := os.WriteFile(path, []byte("A\n%\n"), 0o644); err != nil {
		t.Fatalf("failed to write notes: %v", err)
	}

	w, err := NewNotesWatcher(path)
	if err != nil {
		t.Fatalf("NewNotesWatcher returned error: %v", err)
	}
	t.Cleanup(func() { _ = w.Close() })

	msgs := make(chan any, 1)
	go func() { msgs <- w.Start()() }()

	// Unrelated files in the same directory are ignored.
	if err := os.WriteFile(filepath.Join(dir, "other"), []byte("x"), 0o644); err != nil {
		t.Fatalf("failed to write other file: %v", err)
	}
	if err := os.WriteFile(path, []byte("B\n%\n"), 0o644); err != nil {
		t.Fatalf("failed to rewrite notes: %v", err)
	}

	select {
	case msg := <-msgs:
		changed, ok := msg.(NotesChangedMsg)
		if !ok {
			t.Fatalf("expected NotesChangedMsg, got %#v", msg)
		}
		if changed.Path != path {
			t.Fatalf("expected path %q, got %q", path, changed.Path)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("timed out waiting for change notification")
	}
}

func TestNotesWatcherCloseStopsStart(t *testing.T) {
	w, err := NewNotesWatcher(filepath.Join(t.TempDir(), "notes"))
	if err != nil {
		t.Fatalf("NewNotesWatcher returned error: %v", err)
	}

	msgs := make(chan any, 1)
	go func() { msgs <- w.Start()() }()

	if err := w.Close(); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("second Close returned error: %v", err)
	}

	select {
	case msg := <-msgs:
		if msg != nil {
			t.Fatalf("expected nil message after close, got %#v", msg)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("timed out waiting for watcher to stop")
	}
}

func TestNilStateIsSafe(t *testing.T) {
	var s *State
	if s.WatchNotes() != nil {
		t.Fatalf("expected nil watcher")
	}
	if err := s.Close(); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
}
