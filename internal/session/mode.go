package session

// Mode is either Listing or Viewing.
type Mode interface {
	isMode()
}

// Listing is the initial mode: the query is editable and arrows move the
// highlight through the matches.
type Listing struct{}

// Viewing shows a single note. Note indexes the store, Offset is the first
// visible body line.
type Viewing struct {
	Note   int
	Offset int
}

func (Listing) isMode() {}
func (Viewing) isMode() {}
