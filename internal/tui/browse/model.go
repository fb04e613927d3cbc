// Package browse drives a note browsing session in the terminal.
package browse

import (
	"log"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Paintersrp/sift/internal/config"
	"github.com/Paintersrp/sift/internal/note"
	"github.com/Paintersrp/sift/internal/session"
	"github.com/Paintersrp/sift/internal/state"
)

type Options struct {
	Markdown     bool
	GlamourStyle string
	WordWrap     int
	Watcher      *state.NotesWatcher
}

func OptionsFromConfig(cfg *config.Config) Options {
	if cfg == nil {
		return Options{}
	}
	return Options{
		Markdown:     cfg.Markdown,
		GlamourStyle: cfg.GlamourStyle,
		WordWrap:     cfg.WordWrap,
	}
}

// Model adapts a session to bubbletea. Nothing is drawn until the first
// window size message reports the terminal height.
type Model struct {
	sess     session.Session
	frame    session.Frame
	keys     keyMap
	help     help.Model
	markdown *markdownRenderer
	watcher  *state.NotesWatcher

	width    int
	height   int
	wordWrap int
	ready    bool
	stale    bool
	done     bool
	err      error
}

func New(store *note.Store, opts Options) (Model, error) {
	m := Model{
		sess:     session.New(store),
		keys:     newKeyMap(),
		help:     help.New(),
		watcher:  opts.Watcher,
		wordWrap: opts.WordWrap,
	}

	if opts.Markdown {
		mr, err := newMarkdownRenderer(opts.GlamourStyle)
		if err != nil {
			return Model{}, &note.SetupError{Err: err}
		}
		m.markdown = mr
	}

	return m, nil
}

func (m Model) Init() tea.Cmd {
	return m.watcher.Start()
}

// Err returns the error that ended the session, if any.
func (m Model) Err() error {
	return m.err
}

// Session returns the current session state.
func (m Model) Session() session.Session {
	return m.sess
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if m.done {
			return m, nil
		}
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.ready = true
		m.sess = m.sess.WithLayout(m.layout())
		return m.rerender()

	case tea.KeyMsg:
		if m.done {
			return m, nil
		}

		events, err := m.keys.decode(msg)
		if err != nil {
			log.Printf("input decode error: %v", err)
			return m.fail(err)
		}

		height := session.ViewportHeight(m.height)
		if height < 1 {
			height = 1
		}
		for _, ev := range events {
			var out session.Outcome
			m.sess, out = session.Handle(m.sess, ev, height)
			if out == session.Terminate {
				log.Printf("session ended by %s", ev.Key)
				m.done = true
				return m, tea.Quit
			}
		}
		if !m.ready {
			return m, nil
		}
		return m.rerender()

	case state.NotesChangedMsg:
		if !m.stale {
			log.Printf("notes file %s changed on disk", msg.Path)
		}
		m.stale = true
		return m, m.watcher.Start()

	case state.NotesWatcherErrMsg:
		log.Printf("notes watcher error: %v", msg.Err)
		return m, m.watcher.Start()
	}

	if err := malformedInput(msg); err != nil && !m.done {
		log.Printf("input decode error: %v", err)
		return m.fail(err)
	}

	return m, nil
}

// rerender rebuilds the frame for the current height, ending the session
// when the terminal is too small to draw it.
func (m Model) rerender() (tea.Model, tea.Cmd) {
	frame, err := session.Render(m.sess, m.height)
	if err != nil {
		log.Printf("render failed: %v", err)
		return m.fail(err)
	}
	m.frame = frame
	return m, nil
}

func (m Model) fail(err error) (tea.Model, tea.Cmd) {
	m.err = err
	m.done = true
	return m, tea.Quit
}

func (m Model) View() string {
	if m.done || !m.ready {
		return ""
	}

	switch m.frame.Mode.(type) {
	case session.Viewing:
		return m.viewViewing()
	default:
		return m.viewListing()
	}
}
