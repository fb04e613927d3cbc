// Package search filters a note collection by case-insensitive keywords.
package search

import (
	"strings"

	"github.com/Paintersrp/sift/internal/note"
)

// MatchSet is the ordered list of note indices that satisfy a query.
// Indices always appear in the order the notes were loaded.
type MatchSet []int

// Len reports the number of matches.
func (m MatchSet) Len() int {
	return len(m)
}

// Empty reports whether the set holds no matches.
func (m MatchSet) Empty() bool {
	return len(m) == 0
}

type document struct {
	header string
	body   string
}

// Index stores lowercased copies of each note so repeated searches do not
// fold case on every keystroke. Every search still scans the full index.
type Index struct {
	docs []document
}

// NewIndex builds an index over notes, preserving their order.
func NewIndex(notes []note.Note) *Index {
	docs := make([]document, len(notes))
	for i, n := range notes {
		docs[i] = document{
			header: strings.ToLower(n.Header),
			body:   strings.ToLower(n.Body),
		}
	}
	return &Index{docs: docs}
}

// NewStoreIndex builds an index over every note held by store.
func NewStoreIndex(store *note.Store) *Index {
	return NewIndex(store.Notes())
}

// Len reports the number of indexed notes.
func (idx *Index) Len() int {
	if idx == nil {
		return 0
	}
	return len(idx.docs)
}

// Search returns every note matching query. A note matches when each keyword
// appears in its header or its body. An empty query matches everything.
func (idx *Index) Search(query string) MatchSet {
	if idx == nil {
		return MatchSet{}
	}

	tokens := Tokenize(query)
	matches := make(MatchSet, 0, len(idx.docs))
	for i, doc := range idx.docs {
		if doc.matches(tokens) {
			matches = append(matches, i)
		}
	}
	return matches
}

func (d document) matches(tokens []string) bool {
	for _, tok := range tokens {
		if !strings.Contains(d.header, tok) && !strings.Contains(d.body, tok) {
			return false
		}
	}
	return true
}

// Tokenize splits query on whitespace into lowercase keywords.
func Tokenize(query string) []string {
	return strings.Fields(strings.ToLower(query))
}

// Recompute filters notes against query from scratch.
func Recompute(notes []note.Note, query string) MatchSet {
	return NewIndex(notes).Search(query)
}

// Matches reports whether a single note satisfies query.
func Matches(n note.Note, query string) bool {
	doc := document{
		header: strings.ToLower(n.Header),
		body:   strings.ToLower(n.Body),
	}
	return doc.matches(Tokenize(query))
}
