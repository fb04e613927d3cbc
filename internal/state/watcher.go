package state

import (
	"errors"
	"path/filepath"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"

	"github.com/Paintersrp/sift/internal/pathutil"
)

// NotesChangedMsg reports that the notes file was modified after it was
// loaded. The loaded notes are not refreshed.
type NotesChangedMsg struct {
	Path string
}

type NotesWatcherErrMsg struct {
	Err error
}

// NotesWatcher watches the directory holding the notes file so that
// editors which save through a rename are still noticed.
type NotesWatcher struct {
	watcher *fsnotify.Watcher
	path    string
	done    chan struct{}
	once    sync.Once
}

func NewNotesWatcher(path string) (*NotesWatcher, error) {
	normalized := pathutil.NormalizePath(path)
	if normalized == "" {
		return nil, errors.New("notes file cannot be empty")
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	watcher := &NotesWatcher{
		watcher: w,
		path:    normalized,
		done:    make(chan struct{}),
	}

	if err := w.Add(filepath.Dir(normalized)); err != nil {
		_ = watcher.Close()
		return nil, err
	}

	return watcher, nil
}

// Start returns a command that blocks until the next relevant change. The
// receiver of the resulting message must call Start again to keep watching.
func (w *NotesWatcher) Start() tea.Cmd {
	if w == nil {
		return nil
	}

	return func() tea.Msg {
		for {
			select {
			case <-w.done:
				return nil
			case event, ok := <-w.watcher.Events:
				if !ok {
					return nil
				}
				if !w.isRelevant(event) {
					continue
				}
				return NotesChangedMsg{Path: w.path}
			case err, ok := <-w.watcher.Errors:
				if !ok {
					return nil
				}
				if err != nil {
					return NotesWatcherErrMsg{Err: err}
				}
			}
		}
	}
}

func (w *NotesWatcher) Close() error {
	if w == nil {
		return nil
	}

	var closeErr error
	w.once.Do(func() {
		close(w.done)
		closeErr = w.watcher.Close()
	})

	return closeErr
}

func (w *NotesWatcher) isRelevant(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
		return false
	}
	return pathutil.NormalizePath(event.Name) == w.path
}
