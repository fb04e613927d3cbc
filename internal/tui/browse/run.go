package browse

import (
	"errors"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/Paintersrp/sift/internal/note"
)

// Run browses store until the user quits. The terminal state is saved before
// the program starts and restored on every return path.
func Run(store *note.Store, opts Options) (err error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return &note.SetupError{Err: errors.New("stdin is not a terminal")}
	}

	originalState, err := term.GetState(fd)
	if err != nil {
		return &note.SetupError{Err: fmt.Errorf("failed to get terminal state: %w", err)}
	}
	defer func() {
		if restoreErr := term.Restore(fd, originalState); restoreErr != nil {
			log.Printf("failed to restore terminal state: %v", restoreErr)
			if err == nil {
				err = fmt.Errorf("failed to restore terminal state: %w", restoreErr)
			}
		}
	}()

	m, err := New(store, opts)
	if err != nil {
		return err
	}

	log.Printf("session started with %d notes", store.Len())
	final, err := tea.NewProgram(m, tea.WithInput(os.Stdin), tea.WithAltScreen()).Run()
	if err != nil {
		return fmt.Errorf("error running program: %w", err)
	}

	if fm, ok := final.(Model); ok {
		return fm.Err()
	}
	return nil
}
