package browse

import (
	"fmt"
	"log"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"

	"github.com/Paintersrp/sift/internal/cache"
	"github.com/Paintersrp/sift/internal/note"
)

const markdownCacheSize = 64

type markdownKey struct {
	note  note.Note
	width int
}

// markdownRenderer renders whole note bodies through glamour. Rendered rows
// are cached per note and wrap width, so scrolling never renders again.
type markdownRenderer struct {
	style string
	width int
	r     *glamour.TermRenderer
	cache *cache.LRUCache[markdownKey, []string]
}

// resolveStyle maps the configured style to a glamour standard style.
func resolveStyle(style string) string {
	if style == "" || style == "auto" {
		if termenv.HasDarkBackground() {
			return "dark"
		}
		return "light"
	}
	return style
}

func newMarkdownRenderer(style string) (*markdownRenderer, error) {
	style = resolveStyle(style)
	r, err := newTermRenderer(style, 0)
	if err != nil {
		return nil, err
	}

	c, err := cache.NewLRUCache[markdownKey, []string](markdownCacheSize)
	if err != nil {
		return nil, err
	}

	return &markdownRenderer{style: style, r: r, cache: c}, nil
}

func newTermRenderer(style string, width int) (*glamour.TermRenderer, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
		glamour.WithColorProfile(termenv.ANSI256),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create markdown renderer: %w", err)
	}
	return r, nil
}

// lines renders the body of n wrapped at width and returns its rows.
// Rendering failures fall back to plain wrapped lines.
func (mr *markdownRenderer) lines(n note.Note, width int) []string {
	if n.Body == "" {
		return nil
	}
	k := markdownKey{note: n, width: width}
	if out, ok := mr.cache.Get(k); ok {
		return out
	}

	if width != mr.width {
		r, err := newTermRenderer(mr.style, width)
		if err != nil {
			log.Printf("markdown renderer for width %d: %v", width, err)
			return wrapLines(n.Lines(), width)
		}
		mr.r, mr.width = r, width
	}

	rendered, err := mr.r.Render(n.Body)
	if err != nil {
		log.Printf("markdown render failed for %q: %v", n.Header, err)
		return wrapLines(n.Lines(), width)
	}

	out := strings.Split(strings.Trim(rendered, "\n"), "\n")
	mr.cache.Put(k, out)
	return out
}
