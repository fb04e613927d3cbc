package session

import "fmt"

// RenderSizeError is returned when the terminal is too short to draw a
// usable frame.
type RenderSizeError struct {
	Rows int
	Min  int
}

func (e *RenderSizeError) Error() string {
	return fmt.Sprintf("terminal too small: %d rows, need at least %d", e.Rows, e.Min)
}

// InputDecodeError is returned for key input that cannot be decoded.
type InputDecodeError struct {
	Input string
}

func (e *InputDecodeError) Error() string {
	return fmt.Sprintf("failed to decode input %q", e.Input)
}
