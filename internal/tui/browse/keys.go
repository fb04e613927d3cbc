package browse

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Paintersrp/sift/internal/session"
)

type keyMap struct {
	open      key.Binding
	escape    key.Binding
	up        key.Binding
	down      key.Binding
	backspace key.Binding
	clearLine key.Binding
	interrupt key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("↵", "open"),
		),
		escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "quit"),
		),
		up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "up"),
		),
		down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "down"),
		),
		backspace: key.NewBinding(
			key.WithKeys("backspace", "ctrl+h"),
		),
		clearLine: key.NewBinding(
			key.WithKeys("ctrl+w", "ctrl+u"),
			key.WithHelp("ctrl+w", "clear"),
		),
		interrupt: key.NewBinding(
			key.WithKeys("ctrl+c"),
		),
	}
}

func (k keyMap) listingHelp() []key.Binding {
	return []key.Binding{k.open, k.up, k.down, k.clearLine, k.escape}
}

func (k keyMap) viewingHelp() []key.Binding {
	back := k.escape
	back.SetHelp("esc", "back")
	up, down := k.up, k.down
	up.SetHelp("↑", "scroll up")
	down.SetHelp("↓", "scroll down")
	return []key.Binding{up, down, back}
}

// decode turns a key message into session events. Pasted or buffered input
// can carry several runes, each becoming its own event.
func (k keyMap) decode(msg tea.KeyMsg) ([]session.Event, error) {
	switch {
	case key.Matches(msg, k.interrupt):
		return []session.Event{session.KeyEvent(session.KeyInterrupt)}, nil
	case key.Matches(msg, k.open):
		return []session.Event{session.KeyEvent(session.KeyEnter)}, nil
	case key.Matches(msg, k.escape):
		return []session.Event{session.KeyEvent(session.KeyEscape)}, nil
	case key.Matches(msg, k.up):
		return []session.Event{session.KeyEvent(session.KeyUp)}, nil
	case key.Matches(msg, k.down):
		return []session.Event{session.KeyEvent(session.KeyDown)}, nil
	case key.Matches(msg, k.backspace):
		return []session.Event{session.KeyEvent(session.KeyBackspace)}, nil
	case key.Matches(msg, k.clearLine):
		return []session.Event{session.KeyEvent(session.KeyClearLine)}, nil
	}

	switch msg.Type {
	case tea.KeySpace:
		ev, err := session.RuneEvent(' ')
		if err != nil {
			return nil, err
		}
		return []session.Event{ev}, nil
	case tea.KeyRunes:
		if msg.Alt {
			break
		}
		events := make([]session.Event, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			ev, err := session.RuneEvent(r)
			if err != nil {
				return nil, err
			}
			events = append(events, ev)
		}
		return events, nil
	}

	return []session.Event{session.KeyEvent(session.KeyOther)}, nil
}

// bubbletea reports bytes that are not valid UTF-8 with an unexported message
// type, so it can only be recognised by name.
const unknownInputByteType = "tea.unknownInputByteMsg"

// malformedInput returns an *session.InputDecodeError when msg carries input
// bytes the terminal reader could not decode.
func malformedInput(msg tea.Msg) error {
	if fmt.Sprintf("%T", msg) != unknownInputByteType {
		return nil
	}
	return &session.InputDecodeError{Input: fmt.Sprint(msg)}
}
