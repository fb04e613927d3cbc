// Package window tracks the scrolled, highlighted slice of a match list.
package window

// Window is the scroll state over a match list of some length.
//
// A valid window satisfies 0 <= First <= Selected < count and
// Selected-First < height for the count and height it was last moved with.
type Window struct {
	First    int
	Selected int
}

// Optional holds a Window that is absent while the match list is empty.
type Optional struct {
	w     Window
	valid bool
}

// Some wraps w as a present window.
func Some(w Window) Optional {
	return Optional{w: w, valid: true}
}

// None is the absent window.
func None() Optional {
	return Optional{}
}

// Get returns the window and whether it is present.
func (o Optional) Get() (Window, bool) {
	return o.w, o.valid
}

// Valid reports whether a window is present.
func (o Optional) Valid() bool {
	return o.valid
}

// Reset starts a new window at the top of a list of count entries. The
// result is absent when count is zero.
func Reset(count int) Optional {
	if count <= 0 {
		return None()
	}
	return Some(Window{})
}

// MoveUp moves the highlight one entry up, scrolling when the highlight is
// already on the top row.
func (w Window) MoveUp() Window {
	switch {
	case w.Selected > w.First:
		w.Selected--
	case w.First > 0:
		w.First--
		w.Selected--
	}
	return w
}

// MoveDown moves the highlight one entry down, scrolling when it would leave
// a viewport of height rows. It does nothing on the last entry.
//
// A viewport that shrank since the last move is handled here: first is
// pulled forward until the highlight fits again.
func (w Window) MoveDown(count, height int) Window {
	if height < 1 {
		height = 1
	}
	if w.Selected >= count-1 {
		return w
	}
	w.Selected++
	if w.Selected-w.First >= height {
		w.First = w.Selected - height + 1
	}
	return w
}

// Visible returns the half-open range [start, end) of entries to draw in a
// viewport of height rows. The range always contains Selected. When the
// viewport has shrunk below the current window the range ends at Selected
// rather than starting at First.
func (w Window) Visible(count, height int) (start, end int) {
	if height < 1 {
		height = 1
	}
	start = w.First
	if w.Selected-start >= height {
		start = w.Selected - height + 1
	}
	end = start + height
	if end > count {
		end = count
	}
	return start, end
}

// MoveUp applies Window.MoveUp when the window is present.
func (o Optional) MoveUp() Optional {
	if !o.valid {
		return o
	}
	return Some(o.w.MoveUp())
}

// MoveDown applies Window.MoveDown when the window is present.
func (o Optional) MoveDown(count, height int) Optional {
	if !o.valid {
		return o
	}
	return Some(o.w.MoveDown(count, height))
}
