package browse

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Paintersrp/sift/internal/note"
	"github.com/Paintersrp/sift/internal/session"
	"github.com/Paintersrp/sift/internal/state"
)

func newTestModel(t *testing.T, count int) Model {
	t.Helper()
	notes := make([]note.Note, count)
	for i := range notes {
		notes[i] = note.Note{
			Header: fmt.Sprintf("note %02d", i),
			Body:   fmt.Sprintf("# Note %d\nline a\nline b\nline c", i),
		}
	}

	m, err := New(note.NewStore(notes), Options{})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	updated, cmd := m.Update(tea.WindowSizeMsg{Width: 80, Height: 6})
	if cmd != nil {
		t.Fatalf("expected no command after resize")
	}
	return updated.(Model)
}

func update(t *testing.T, m Model, msgs ...tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		m = next.(Model)
	}
	return m, cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestTypingFiltersList(t *testing.T) {
	m := newTestModel(t, 12)
	m, _ = update(t, m, runes("note"), tea.KeyMsg{Type: tea.KeySpace}, runes("1"))

	if got := m.Session().Query(); got != "note 1" {
		t.Fatalf("expected query %q, got %q", "note 1", got)
	}

	view := m.View()
	if !strings.Contains(view, "3/12 notes") {
		t.Fatalf("expected status line in view, got:\n%s", view)
	}
	if !strings.Contains(view, "note 10") || strings.Contains(view, "note 02") {
		t.Fatalf("unexpected rows in view:\n%s", view)
	}
}

func TestPastedRunesAppendEach(t *testing.T) {
	m := newTestModel(t, 3)
	m, _ = update(t, m, runes("note 02"))
	if m.Session().Matches().Len() != 1 {
		t.Fatalf("expected one match, got %v", m.Session().Matches())
	}
}

func TestClearLineKeys(t *testing.T) {
	for _, kt := range []tea.KeyType{tea.KeyCtrlW, tea.KeyCtrlU} {
		m := newTestModel(t, 3)
		m, _ = update(t, m, runes("zzz"), tea.KeyMsg{Type: kt})
		if m.Session().Query() != "" {
			t.Fatalf("%v: expected cleared query, got %q", kt, m.Session().Query())
		}
	}
}

func TestEnterAndEscape(t *testing.T) {
	m := newTestModel(t, 3)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyEnter})

	mode, ok := m.Session().Mode().(session.Viewing)
	if !ok || mode.Note != 1 {
		t.Fatalf("expected to view note 1, got %#v", m.Session().Mode())
	}
	view := m.View()
	if !strings.Contains(view, "note 01") || !strings.Contains(view, "line a") {
		t.Fatalf("expected note contents in view, got:\n%s", view)
	}
	if !strings.Contains(view, "1-4/4") {
		t.Fatalf("expected line counter in view, got:\n%s", view)
	}

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if isQuit(cmd) {
		t.Fatalf("expected Escape in Viewing to return to the list")
	}
	if _, ok := m.Session().Mode().(session.Listing); !ok {
		t.Fatalf("expected Listing mode, got %T", m.Session().Mode())
	}

	_, cmd = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !isQuit(cmd) {
		t.Fatalf("expected Escape in Listing to quit")
	}
}

func TestCtrlCQuitsFromViewing(t *testing.T) {
	m := newTestModel(t, 2)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if !isQuit(cmd) {
		t.Fatalf("expected ctrl+c to quit")
	}
	if m.Err() != nil {
		t.Fatalf("expected clean exit, got %v", m.Err())
	}
}

func TestShrinkingBelowMinimumFails(t *testing.T) {
	m := newTestModel(t, 2)
	m, cmd := update(t, m, tea.WindowSizeMsg{Width: 80, Height: session.MinRows - 1})
	if !isQuit(cmd) {
		t.Fatalf("expected program to quit")
	}

	var sizeErr *session.RenderSizeError
	if !errors.As(m.Err(), &sizeErr) {
		t.Fatalf("expected RenderSizeError, got %v", m.Err())
	}
	if m.View() != "" {
		t.Fatalf("expected no output after failure")
	}
}

func TestInvalidRuneFails(t *testing.T) {
	m := newTestModel(t, 2)
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a', 0xD800}})
	if !isQuit(cmd) {
		t.Fatalf("expected program to quit")
	}

	var decodeErr *session.InputDecodeError
	if !errors.As(m.Err(), &decodeErr) {
		t.Fatalf("expected InputDecodeError, got %v", m.Err())
	}
	if m.Session().Query() != "" {
		t.Fatalf("expected no partial input to be applied, got %q", m.Session().Query())
	}
}

func TestUnmappedKeysAreIgnored(t *testing.T) {
	m := newTestModel(t, 2)
	before := m.Session()
	m, cmd := update(t, m,
		tea.KeyMsg{Type: tea.KeyTab},
		tea.KeyMsg{Type: tea.KeyF1},
		tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}, Alt: true},
	)
	if cmd != nil {
		t.Fatalf("expected no command")
	}
	if m.Session().Query() != before.Query() {
		t.Fatalf("expected query untouched, got %q", m.Session().Query())
	}
}

func TestNotesChangedMarksStale(t *testing.T) {
	m := newTestModel(t, 2)
	m, cmd := update(t, m, state.NotesChangedMsg{Path: "/tmp/notes"})
	if cmd != nil {
		t.Fatalf("expected no command without a watcher")
	}
	if !strings.Contains(m.View(), "changed on disk") {
		t.Fatalf("expected stale marker in view, got:\n%s", m.View())
	}
}

func TestMarkdownRendering(t *testing.T) {
	store := note.NewStore([]note.Note{{Header: "md", Body: "# Title\n\nsome **bold** text"}})
	m, err := New(store, Options{Markdown: true, GlamourStyle: "dark", WordWrap: 40})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 60, Height: 10}, tea.KeyMsg{Type: tea.KeyEnter})

	view := m.View()
	if !strings.Contains(view, "Title") || !strings.Contains(view, "bold") {
		t.Fatalf("expected rendered markdown, got:\n%s", view)
	}
	if strings.Contains(view, "**bold**") {
		t.Fatalf("expected emphasis markers to be rendered, got:\n%s", view)
	}
	if m.markdown.cache.Len() != 1 {
		t.Fatalf("expected rendered body to be cached, got %d entries", m.markdown.cache.Len())
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	_ = m.View()
	if m.markdown.cache.Len() != 1 {
		t.Fatalf("expected cache hit on repeated render")
	}
}

func longBody() string {
	lines := []string{strings.TrimSpace(strings.Repeat("word ", 40))}
	for i := 2; i < 8; i++ {
		lines = append(lines, fmt.Sprintf("line %d", i))
	}
	return strings.Join(append(lines, "LASTLINE"), "\n")
}

func scrollToEnd(t *testing.T, opts Options) Model {
	t.Helper()
	store := note.NewStore([]note.Note{{Header: "long", Body: longBody()}})
	m, err := New(store, opts)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 60, Height: 10}, tea.KeyMsg{Type: tea.KeyEnter})
	for i := 0; i < 50; i++ {
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}
	return m
}

func TestMarkdownScrollReachesLastLine(t *testing.T) {
	m := scrollToEnd(t, Options{Markdown: true, GlamourStyle: "dark", WordWrap: 20})

	f := m.frame
	if f.TotalLines <= 8 {
		t.Fatalf("expected wrapped rows to be counted, got %d", f.TotalLines)
	}
	if f.FirstLine+len(f.Lines) != f.TotalLines {
		t.Fatalf("expected the last row at the largest offset, got %+v", f)
	}
	if view := m.View(); !strings.Contains(view, "LASTLINE") {
		t.Fatalf("expected last body line in view, got:\n%s", view)
	}
	want := fmt.Sprintf("%d-%d/%d", f.FirstLine+1, f.TotalLines, f.TotalLines)
	if f.Status != want {
		t.Fatalf("expected status %q, got %q", want, f.Status)
	}
}

func TestPlainBodyWrapsLongLines(t *testing.T) {
	m := scrollToEnd(t, Options{WordWrap: 20})

	f := m.frame
	if f.TotalLines <= 8 {
		t.Fatalf("expected long line to wrap, got %d rows", f.TotalLines)
	}
	for _, line := range f.Lines {
		if len(line) > 20 {
			t.Fatalf("expected rows of at most 20 columns, got %q", line)
		}
	}
	view := m.View()
	if !strings.Contains(view, "LASTLINE") {
		t.Fatalf("expected last body line in view, got:\n%s", view)
	}
	for _, row := range strings.Split(view, "\n")[session.ChromeRows:] {
		if strings.Contains(row, ellipsis) {
			t.Fatalf("expected no truncated rows, got:\n%s", view)
		}
	}
}

func TestResizeRewrapsOpenNote(t *testing.T) {
	store := note.NewStore([]note.Note{{Header: "long", Body: longBody()}})
	m, err := New(store, Options{})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 200, Height: 10}, tea.KeyMsg{Type: tea.KeyEnter})
	if m.frame.TotalLines != 8 {
		t.Fatalf("expected one row per body line, got %d", m.frame.TotalLines)
	}

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 30, Height: 10})
	if m.frame.TotalLines <= 8 {
		t.Fatalf("expected narrower terminal to wrap the body, got %d rows", m.frame.TotalLines)
	}
}

func TestResizeAfterExitIsIgnored(t *testing.T) {
	m := newTestModel(t, 2)
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !isQuit(cmd) {
		t.Fatalf("expected Escape to quit")
	}

	m, cmd = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 1})
	if cmd != nil {
		t.Fatalf("expected no command after exit")
	}
	if m.Err() != nil {
		t.Fatalf("expected clean exit to survive a late resize, got %v", m.Err())
	}
}

func TestReplacementCharacterIsTyped(t *testing.T) {
	m := newTestModel(t, 2)
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a', 0xFFFD}})
	if cmd != nil || m.Err() != nil {
		t.Fatalf("expected U+FFFD to be accepted, got %v", m.Err())
	}
	if got := m.Session().Query(); got != "a\uFFFD" {
		t.Fatalf("expected query %q, got %q", "a\uFFFD", got)
	}
}

func TestMalformedInputFails(t *testing.T) {
	if err := malformedInput(runes("x")); err != nil {
		t.Fatalf("expected key messages to pass, got %v", err)
	}
	if err := malformedInput(state.NotesChangedMsg{}); err != nil {
		t.Fatalf("expected other messages to pass, got %v", err)
	}
}

func TestResolveStyle(t *testing.T) {
	for _, style := range []string{"dark", "light", "dracula", "notty"} {
		if got := resolveStyle(style); got != style {
			t.Fatalf("expected %q to pass through, got %q", style, got)
		}
	}
	if got := resolveStyle("auto"); got != "dark" && got != "light" {
		t.Fatalf("expected auto to resolve to dark or light, got %q", got)
	}
}
