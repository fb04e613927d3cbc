package session

import "github.com/Paintersrp/sift/internal/note"

// Layout splits a note body into the display lines that Viewing mode scrolls
// over and counts. A renderer that wraps or styles bodies installs its own
// Layout so that offsets and counters match the rows it actually paints.
type Layout func(n note.Note) []string

// PlainLines shows one display line per body line.
func PlainLines(n note.Note) []string {
	return n.Lines()
}

// WithLayout returns s using l for body lines. A nil l restores PlainLines.
// An open note keeps its offset unless the new layout is too short for it.
func (s Session) WithLayout(l Layout) Session {
	s.layout = l
	if m, ok := s.mode.(Viewing); ok {
		if n := len(s.bodyLines(m.Note)); m.Offset >= n {
			m.Offset = max(n-1, 0)
		}
		s.mode = m
	}
	return s
}

func (s Session) bodyLines(idx int) []string {
	n := s.store.At(idx)
	if s.layout == nil {
		return PlainLines(n)
	}
	return s.layout(n)
}
