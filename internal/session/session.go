// Package session holds the state of one browsing session and the mode
// machine that updates it in response to key events.
//
// A Session is a plain value. Handle takes the current value and returns the
// next one, so callers own the only copy of the state.
package session

import (
	"fmt"
	"unicode/utf8"

	"github.com/Paintersrp/sift/internal/note"
	"github.com/Paintersrp/sift/internal/search"
	"github.com/Paintersrp/sift/internal/window"
)

// Outcome tells the caller whether the session continues after an event.
type Outcome int

const (
	Continue Outcome = iota
	Terminate
)

// Session is the complete browsing state.
type Session struct {
	store   *note.Store
	index   *search.Index
	query   string
	matches search.MatchSet
	win     window.Optional
	mode    Mode
	layout  Layout
}

// New starts a session in Listing mode with an empty query, so every note
// matches.
func New(store *note.Store) Session {
	s := Session{
		store: store,
		index: search.NewStoreIndex(store),
		mode:  Listing{},
	}
	return s.refilter()
}

func (s Session) Store() *note.Store       { return s.store }
func (s Session) Query() string            { return s.query }
func (s Session) Matches() search.MatchSet { return s.matches }
func (s Session) Window() window.Optional  { return s.win }
func (s Session) Mode() Mode               { return s.mode }

// Selected returns the store index of the highlighted note.
func (s Session) Selected() (int, bool) {
	w, ok := s.win.Get()
	if !ok {
		return 0, false
	}
	return s.matches[w.Selected], true
}

// Handle applies ev to s. height is the number of content rows the renderer
// reported for the current frame; it is never stored.
func Handle(s Session, ev Event, height int) (Session, Outcome) {
	if ev.Key == KeyInterrupt {
		return s, Terminate
	}

	switch m := s.mode.(type) {
	case Listing:
		return s.handleListing(ev, height)
	case Viewing:
		return s.handleViewing(m, ev, height)
	default:
		panic(fmt.Sprintf("session: unhandled mode %T", m))
	}
}

func (s Session) handleListing(ev Event, height int) (Session, Outcome) {
	switch ev.Key {
	case KeyEnter:
		if idx, ok := s.Selected(); ok {
			s.mode = Viewing{Note: idx}
		}
	case KeyEscape:
		return s, Terminate
	case KeyRune:
		s.query += string(ev.Rune)
		s = s.refilter()
	case KeyBackspace:
		if _, size := utf8.DecodeLastRuneInString(s.query); size > 0 {
			s.query = s.query[:len(s.query)-size]
		}
		s = s.refilter()
	case KeyClearLine:
		s.query = ""
		s = s.refilter()
	case KeyUp:
		s.win = s.win.MoveUp()
	case KeyDown:
		s.win = s.win.MoveDown(s.matches.Len(), height)
	}
	return s, Continue
}

func (s Session) handleViewing(m Viewing, ev Event, height int) (Session, Outcome) {
	switch ev.Key {
	case KeyEscape:
		s.mode = Listing{}
		return s, Continue
	case KeyUp:
		if m.Offset > 0 {
			m.Offset--
		}
	case KeyDown:
		lines := s.bodyLines(m.Note)
		if m.Offset+height < len(lines) {
			m.Offset++
		}
	}
	s.mode = m
	return s, Continue
}

func (s Session) refilter() Session {
	s.matches = s.index.Search(s.query)
	s.win = window.Reset(s.matches.Len())
	return s
}
