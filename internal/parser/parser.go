package parser

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/Paintersrp/sift/internal/note"
)

// Separator is the line that terminates a note in a notes source.
const Separator = "%"

const maxLineSize = 1024 * 1024

// ErrMalformed is returned when the notes source cannot be decoded.
var ErrMalformed = errors.New("malformed notes source")

// Parser accumulates notes from a separator delimited source.
//
// Blank lines and lines starting with '#' are skipped. The first remaining
// line after a separator (or at the start of input) is the header and every
// following line up to the next separator joins the body.
type Parser struct {
	notes   []note.Note
	header  string
	body    []string
	lineNum int
}

func NewParser() *Parser {
	return &Parser{}
}

// Parse reads every note from r.
func Parse(r io.Reader) ([]note.Note, error) {
	p := NewParser()
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		if err := p.ParseLine(scanner.Text()); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return p.Finish(), nil
}

// ParseLine feeds a single line, without its terminator, to the parser.
func (p *Parser) ParseLine(line string) error {
	p.lineNum++
	if !utf8.ValidString(line) {
		return fmt.Errorf("%w: invalid UTF-8 on line %d", ErrMalformed, p.lineNum)
	}

	line = strings.TrimSuffix(line, "\r")
	switch {
	case strings.TrimSpace(line) == "":
		return nil
	case strings.HasPrefix(line, "#"):
		return nil
	case line == Separator:
		p.flush()
	case p.header == "":
		p.header = line
	default:
		p.body = append(p.body, line)
	}
	return nil
}

// Finish emits any trailing note and returns everything parsed so far.
func (p *Parser) Finish() []note.Note {
	p.flush()
	return p.notes
}

func (p *Parser) flush() {
	if p.header != "" {
		p.notes = append(p.notes, note.Note{
			Header: p.header,
			Body:   strings.Join(p.body, "\n"),
		})
	}
	p.header = ""
	p.body = nil
}

// ParseFile loads the notes file at path into an immutable store. Every
// failure is reported as a *note.SetupError.
func ParseFile(path string) (*note.Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &note.SetupError{Path: path, Err: err}
	}
	defer f.Close()

	notes, err := Parse(f)
	if err != nil {
		return nil, &note.SetupError{Path: path, Err: err}
	}
	return note.NewStore(notes), nil
}

// Format writes notes in the separator format read by Parse. Some body lines
// do not survive a round trip because Parse drops them: blank lines, lines of
// only whitespace, lines starting with "#", and lines that are exactly the
// separator.
func Format(w io.Writer, notes []note.Note) error {
	bw := bufio.NewWriter(w)
	for _, n := range notes {
		if _, err := fmt.Fprintln(bw, n.Header); err != nil {
			return err
		}
		if n.Body != "" {
			if _, err := fmt.Fprintln(bw, n.Body); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(bw, Separator); err != nil {
			return err
		}
	}
	return bw.Flush()
}
