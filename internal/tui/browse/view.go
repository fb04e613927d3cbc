package browse

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/Paintersrp/sift/internal/session"
)

const ellipsis = "…"

func clip(s string, width int) string {
	if width <= 0 {
		return s
	}
	return truncate.StringWithTail(s, uint(width), ellipsis)
}

func (m Model) statusLine(status string) string {
	var b strings.Builder
	b.WriteString(statusStyle(status))
	if m.stale {
		b.WriteString(" ")
		b.WriteString(staleStyle.Render("(changed on disk)"))
	}

	bindings := m.keys.listingHelp()
	if _, ok := m.frame.Mode.(session.Viewing); ok {
		bindings = m.keys.viewingHelp()
	}

	left := b.String()
	helpView := m.help.ShortHelpView(bindings)
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(helpView)
	if gap < 1 {
		return clip(left, m.width)
	}
	return left + strings.Repeat(" ", gap) + helpView
}

func (m Model) viewListing() string {
	f := m.frame
	lines := make([]string, 0, session.ChromeRows+len(f.Rows))
	lines = append(lines, m.statusLine(f.Status))
	lines = append(lines, clip(promptStyle.Render("> ")+f.Query+cursorStyle.Render(" "), m.width))

	if len(f.Rows) == 0 {
		lines = append(lines, emptyStyle.Render(clip("No matching notes.", m.width)))
	}
	for _, row := range f.Rows {
		header := clip(row.Header, m.width)
		if row.Selected {
			lines = append(lines, selectedItemStyle.Render(header))
		} else {
			lines = append(lines, itemStyle.Render(header))
		}
	}

	return strings.Join(lines, "\n")
}

func (m Model) viewViewing() string {
	f := m.frame

	lines := make([]string, 0, session.ChromeRows+len(f.Lines))
	lines = append(lines, titleStyle.Render(clip(f.Header, m.width)))
	lines = append(lines, m.statusLine(f.Status))
	for _, line := range f.Lines {
		lines = append(lines, clip(line, m.width))
	}

	return strings.Join(lines, "\n")
}
