// Package note provides the immutable note collection browsed by a session.
package note

import (
	"fmt"
	"strings"
)

// Note is a single entry with a one line header and a multi-line body.
type Note struct {
	Header string
	Body   string
}

// Lines splits the body into display lines. The split is recomputed on every
// call; bodies are expected to be small.
func (n Note) Lines() []string {
	if n.Body == "" {
		return nil
	}
	return strings.Split(n.Body, "\n")
}

// Store holds the notes loaded at startup. It is never mutated after
// construction, so it can be shared freely between frames.
type Store struct {
	notes []Note
}

// NewStore copies the provided notes into a read-only store.
func NewStore(notes []Note) *Store {
	return &Store{notes: append([]Note(nil), notes...)}
}

// Len reports the number of notes in the store.
func (s *Store) Len() int {
	if s == nil {
		return 0
	}
	return len(s.notes)
}

// At returns the note at index i. It panics when i is out of range, matching
// slice indexing.
func (s *Store) At(i int) Note {
	return s.notes[i]
}

// Notes returns a copy of every note in original order.
func (s *Store) Notes() []Note {
	if s == nil {
		return nil
	}
	return append([]Note(nil), s.notes...)
}

// SetupError reports a problem that prevents a session from starting, such
// as a missing or malformed notes source.
type SetupError struct {
	Path string
	Err  error
}

func (e *SetupError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("setup failed: %v", e.Err)
	}
	return fmt.Sprintf("failed to load notes from %s: %v", e.Path, e.Err)
}

func (e *SetupError) Unwrap() error {
	return e.Err
}
