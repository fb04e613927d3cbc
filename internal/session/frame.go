package session

import (
	"fmt"
	"strconv"
)

const (
	// ChromeRows is the number of rows used by the status and query (or
	// header) lines.
	ChromeRows = 2
	// MinRows is the smallest terminal that still shows one content row.
	MinRows = ChromeRows + 1
)

// ViewportHeight returns the content rows available in a terminal of rows
// lines. It may be zero or negative for terminals below MinRows.
func ViewportHeight(rows int) int {
	return rows - ChromeRows
}

// Row is a single visible entry of the match list.
type Row struct {
	Index    int
	Header   string
	Selected bool
}

// Frame is an immutable snapshot of what to paint. Listing frames fill Query
// and Rows, Viewing frames fill Header, Lines and the line counters.
type Frame struct {
	Mode   Mode
	Status string

	Query string
	Rows  []Row

	Header     string
	Lines      []string
	FirstLine  int
	TotalLines int
}

// Render produces the frame for s in a terminal of rows lines.
func Render(s Session, rows int) (Frame, error) {
	if rows < MinRows {
		return Frame{}, &RenderSizeError{Rows: rows, Min: MinRows}
	}
	height := ViewportHeight(rows)

	switch m := s.mode.(type) {
	case Listing:
		return renderListing(s, height), nil
	case Viewing:
		return renderViewing(s, m, height), nil
	default:
		panic(fmt.Sprintf("session: unhandled mode %T", m))
	}
}

func renderListing(s Session, height int) Frame {
	f := Frame{
		Mode:   Listing{},
		Query:  s.query,
		Status: strconv.Itoa(s.matches.Len()) + "/" + strconv.Itoa(s.store.Len()) + " notes",
	}

	w, ok := s.win.Get()
	if !ok {
		return f
	}

	start, end := w.Visible(s.matches.Len(), height)
	f.Rows = make([]Row, 0, end-start)
	for i := start; i < end; i++ {
		idx := s.matches[i]
		f.Rows = append(f.Rows, Row{
			Index:    idx,
			Header:   s.store.At(idx).Header,
			Selected: i == w.Selected,
		})
	}
	return f
}

func renderViewing(s Session, m Viewing, height int) Frame {
	n := s.store.At(m.Note)
	lines := s.bodyLines(m.Note)

	start := m.Offset
	if start > len(lines) {
		start = len(lines)
	}
	end := start + height
	if end > len(lines) {
		end = len(lines)
	}

	f := Frame{
		Mode:       m,
		Header:     n.Header,
		Lines:      lines[start:end],
		FirstLine:  start,
		TotalLines: len(lines),
	}
	if len(lines) == 0 {
		f.Status = "0/0"
	} else {
		f.Status = fmt.Sprintf("%d-%d/%d", start+1, end, len(lines))
	}
	return f
}
