// Package scan implements the sdata lexical scanner: it runs the compiled
// token-category automata against a source buffer, in priority order, and
// emits a stream of categorized tokens.
package scan

import (
	"fmt"

	"github.com/mabhi256/sdata/diag"
	"github.com/mabhi256/sdata/regex"
	"github.com/mabhi256/sdata/sourceloc"
	"github.com/mabhi256/sdata/token"
)

// Error is raised when no token pattern matches the current position.
type Error[C regex.Char] struct {
	Loc sourceloc.Location[C]
}

func (e *Error[C]) Error() string {
	return fmt.Sprintf("scan: unrecognized token\n\t%d | %s", e.Loc.Line(), e.Loc.Snippet())
}

func (e *Error[C]) Kind() diag.Kind { return diag.KindScan }

// Scanner consumes a source buffer and emits tokens one at a time. It is
// stateful only in its cursor position; it is not safe for concurrent use
// by multiple goroutines on the same instance.
type Scanner[C regex.Char] struct {
	source  []C
	pos     int
	catalog []token.Entry[C]
}

// New creates a scanner over source, using the process-wide token catalog
// for width C (built lazily on first use, then shared read-only).
func New[C regex.Char](source []C) *Scanner[C] {
	return &Scanner[C]{source: source, catalog: token.Catalog[C]()}
}

// AtEnd reports whether the scanner has consumed the whole source buffer.
func (s *Scanner[C]) AtEnd() bool {
	return s.pos >= len(s.source)
}

// Tokenize returns the next token, skipping (and not returning) whitespace
// and comments. Once the source is exhausted it returns an EOF token on
// every call and never advances past it.
func (s *Scanner[C]) Tokenize() (token.Token[C], error) {
	for {
		if s.AtEnd() {
			return token.Token[C]{Category: token.EOF, Loc: s.locate()}, nil
		}

		remaining := s.source[s.pos:]

		if tok, ok := s.matchComment(remaining); ok {
			s.pos += len(tok)
			continue
		}

		matched := false
		for _, entry := range s.catalog {
			ok, length := entry.Automata.Match(remaining)
			if !ok || length == 0 {
				continue
			}

			loc := s.locate()
			text := remaining[:length]
			s.pos += length
			matched = true

			if entry.Category == token.Empty {
				break // discard whitespace, scan again
			}

			return token.Token[C]{Text: text, Category: entry.Category, Loc: loc}, nil
		}

		if matched {
			continue
		}

		return token.Token[C]{}, &Error[C]{Loc: s.locate()}
	}
}

func (s *Scanner[C]) locate() sourceloc.Location[C] {
	return sourceloc.New(s.source, s.pos)
}

// matchComment recognizes a `//` line comment, up to and including the
// next newline, or to the end of the buffer when none follows. The static
// token table has no comment pattern: an unterminated trailing comment
// (the last line of a file) has no representable "end of buffer"
// character in the regex mini-language, so comments are recognized here
// rather than by token.patternTable.
func (s *Scanner[C]) matchComment(remaining []C) ([]C, bool) {
	if len(remaining) < 2 || remaining[0] != '/' || remaining[1] != '/' {
		return nil, false
	}

	end := len(remaining)
	for i, c := range remaining {
		if c == '\n' {
			end = i + 1
			break
		}
	}

	return remaining[:end], true
}
