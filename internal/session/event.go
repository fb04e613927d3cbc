package session

import "unicode/utf8"

// Key identifies the decoded input kinds the session understands.
type Key int

const (
	// KeyOther is any input the session ignores.
	KeyOther Key = iota
	KeyEnter
	KeyEscape
	KeyRune
	KeyBackspace
	// KeyClearLine truncates the query.
	KeyClearLine
	KeyUp
	KeyDown
	// KeyInterrupt ends the session from any mode.
	KeyInterrupt
)

var keyNames = map[Key]string{
	KeyOther:     "other",
	KeyEnter:     "enter",
	KeyEscape:    "escape",
	KeyRune:      "rune",
	KeyBackspace: "backspace",
	KeyClearLine: "clear-line",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyInterrupt: "interrupt",
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "unknown"
}

// Event is a single decoded key press. Rune is only set for KeyRune.
type Event struct {
	Key  Key
	Rune rune
}

// KeyEvent returns an event for a non-printable key.
func KeyEvent(k Key) Event {
	return Event{Key: k}
}

// RuneEvent returns an event that appends r to the query. Runes that are not
// valid Unicode scalar values are rejected with an *InputDecodeError. U+FFFD
// is a valid character here; malformed bytes are reported by the decoder.
func RuneEvent(r rune) (Event, error) {
	if !utf8.ValidRune(r) {
		return Event{}, &InputDecodeError{Input: string(r)}
	}
	return Event{Key: KeyRune, Rune: r}, nil
}
