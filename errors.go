package tldr

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidUTF8 reports a page line that is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("invalid utf-8 input")
	// ErrBinaryInput reports a page line that appears to be binary.
	ErrBinaryInput = errors.New("binary input detected")
	// ErrNoPages is returned when a page selection has no candidates.
	ErrNoPages = errors.New("no pages to render")
)

const (
	hintGrammar = "every non-empty line must begin with either '# ', '> ', '- ' or '`'"
	hintExample = "every line with an example must end with a backtick"
)

// IOError reports a page that could not be opened, read or written.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("'%s': %s: %v", e.Path, e.Op, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// ParseError reports a page line that violates the page grammar.
type ParseError struct {
	Path string
	// Line is 1-based.
	Line int
	Text string
	Hint string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("'%s:%d' is not a valid page: %s\n\n    %s", e.Path, e.Line, e.Hint, e.Text)
}

func (e *ParseError) Unwrap() error { return e.Err }
