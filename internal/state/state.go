package state

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/viper"

	"github.com/Paintersrp/sift/internal/config"
	"github.com/Paintersrp/sift/internal/constants"
	"github.com/Paintersrp/sift/internal/note"
)

type State struct {
	Config  *config.Config
	Home    string
	Watcher *NotesWatcher

	logFile *os.File
}

// NewState loads the configuration and redirects the standard logger to the
// configured log file. Every failure is a *note.SetupError.
func NewState() (*State, error) {
	home, err := GetHomeDir()
	if err != nil {
		return nil, &note.SetupError{Err: err}
	}

	cfg, err := LoadConfig(home)
	if err != nil {
		return nil, &note.SetupError{Err: err}
	}

	s := &State{Config: cfg, Home: home}
	if err := s.openLog(); err != nil {
		return nil, &note.SetupError{Err: err}
	}

	return s, nil
}

func GetHomeDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	return home, nil
}

// LoadConfig reads the config file under home, creating it when missing, and
// layers SIFT_* environment variables on top.
func LoadConfig(home string) (*config.Config, error) {
	if err := config.EnsureConfigExists(home); err != nil {
		return nil, err
	}

	v := viper.New()
	v.AddConfigPath(filepath.Join(home, constants.ConfigDir))
	v.SetConfigName(constants.ConfigFile)
	v.SetConfigType(constants.ConfigFileType)
	v.SetEnvPrefix(constants.EnvPrefix)
	for _, key := range config.Keys {
		if err := v.BindEnv(key); err != nil {
			return nil, err
		}
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg, err := config.Load(home)
	if err != nil {
		return nil, err
	}

	cfg.ApplyViper(v)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (s *State) openLog() error {
	path := s.Config.LogPath()
	if path == "" {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := tea.LogToFile(path, constants.AppName)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	s.logFile = f
	return nil
}

// WatchNotes starts watching the configured notes file. A watcher that
// cannot be created is logged and otherwise ignored.
func (s *State) WatchNotes() *NotesWatcher {
	if s == nil {
		return nil
	}
	if s.Watcher != nil {
		return s.Watcher
	}

	w, err := NewNotesWatcher(s.Config.NotesPath())
	if err != nil {
		log.Printf("notes watcher disabled: %v", err)
		return nil
	}
	s.Watcher = w
	return w
}

// Close stops the notes watcher and closes the log file.
func (s *State) Close() error {
	if s == nil {
		return nil
	}

	var errs []error
	if s.Watcher != nil {
		if err := s.Watcher.Close(); err != nil {
			errs = append(errs, err)
		}
		s.Watcher = nil
	}
	if s.logFile != nil {
		log.SetOutput(os.Stderr)
		if err := s.logFile.Close(); err != nil {
			errs = append(errs, err)
		}
		s.logFile = nil
	}

	if len(errs) == 0 {
		return nil
	}
	return errors.Join(errs...)
}
