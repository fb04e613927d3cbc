package browse

import (
	"strings"

	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"

	"github.com/Paintersrp/sift/internal/note"
	"github.com/Paintersrp/sift/internal/session"
)

// wrapWidth is the column body text wraps at: the terminal width, narrowed
// to the configured word wrap when that is smaller. Zero means no wrapping.
func wrapWidth(termWidth, wordWrap int) int {
	if termWidth <= 0 {
		return 0
	}
	if wordWrap > 0 && wordWrap < termWidth {
		return wordWrap
	}
	return termWidth
}

// wrapLines word wraps each line at width, hard wrapping words that are
// longer than a whole row.
func wrapLines(lines []string, width int) []string {
	if width <= 0 {
		return lines
	}
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		wrapped := wrap.String(wordwrap.String(line, width), width)
		out = append(out, strings.Split(wrapped, "\n")...)
	}
	return out
}

// layout returns the body layout for the current terminal width.
func (m Model) layout() session.Layout {
	width := wrapWidth(m.width, m.wordWrap)
	if m.markdown != nil {
		mr := m.markdown
		return func(n note.Note) []string {
			return mr.lines(n, width)
		}
	}
	return func(n note.Note) []string {
		return wrapLines(n.Lines(), width)
	}
}
