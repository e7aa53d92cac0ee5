// Package domain contains the return-type inference engine and the batch
// processing workflow built on top of it.
package domain

import (
	"errors"
	"fmt"

	m "github.com/bird-chinese-community/bird2-autotype/internal/model"
)

// Scan failure sentinels. They are wrapped with positional detail and
// surfaced as model.Problem records; none of them aborts a batch run.
var (
	ErrUnbalancedDelimiter  = errors.New("unbalanced delimiter")
	ErrMalformedDeclaration = errors.New("malformed declaration")
	ErrMalformedReturn      = errors.New("malformed return")
)

// commentMode tracks which comment form, if any, the cursor is inside.
type commentMode int

const (
	commentNone commentMode = iota
	commentLine
	commentBlock
)

// scanState carries the quoting, comment, and relative nesting state of a
// cursor as it advances through a buffer. A fresh state is at depth zero
// relative to wherever the scan starts, which is what lets return terminators
// be matched at the return's own depth.
type scanState struct {
	quote   byte // active quote character, 0 outside string literals
	comment commentMode
	depth   int
}

func (st scanState) inCode() bool {
	return st.quote == 0 && st.comment == commentNone
}

// Scanner walks a BIRD config buffer byte by byte, tracking string, comment,
// and delimiter nesting state so callers never match tokens inside literals.
// It recognizes '#' and '//' line comments, '/* */' block comments, and
// double- or single-quoted strings with backslash escapes.
type Scanner struct {
	buf []byte
}

// NewScanner wraps buf for scanning. The buffer is never mutated.
func NewScanner(buf []byte) *Scanner {
	return &Scanner{buf: buf}
}

// step consumes the byte at offset i, updating st, and returns the offset of
// the next unconsumed byte.
func (s *Scanner) step(st *scanState, i int) int {
	b := s.buf[i]

	switch {
	case st.comment == commentLine:
		if b == '\n' {
			st.comment = commentNone
		}

		return i + 1
	case st.comment == commentBlock:
		if b == '*' && i+1 < len(s.buf) && s.buf[i+1] == '/' {
			st.comment = commentNone
			return i + 2
		}

		return i + 1
	case st.quote != 0:
		switch b {
		case '\\':
			// The escaped byte never terminates the string.
			return i + 2
		case st.quote:
			st.quote = 0
		}

		return i + 1
	}

	switch b {
	case '"', '\'':
		st.quote = b
	case '#':
		st.comment = commentLine
	case '/':
		if i+1 < len(s.buf) {
			switch s.buf[i+1] {
			case '/':
				st.comment = commentLine
				return i + 2
			case '*':
				st.comment = commentBlock
				return i + 2
			}
		}
	case '{', '(':
		st.depth++
	case '}', ')':
		st.depth--
	}

	return i + 1
}

// SkipToMatchingClose returns the offset just past the delimiter matching the
// opener at openOffset, skipping nested delimiters, string contents, and
// comments.
func (s *Scanner) SkipToMatchingClose(openOffset int) (int, error) {
	if openOffset >= len(s.buf) {
		return 0, fmt.Errorf("%w: offset %d past end of buffer", ErrUnbalancedDelimiter, openOffset)
	}

	var st scanState

	i := s.step(&st, openOffset)
	if st.depth != 1 {
		return 0, fmt.Errorf("%w: no opening delimiter at offset %d", ErrUnbalancedDelimiter, openOffset)
	}

	for i < len(s.buf) {
		i = s.step(&st, i)

		if st.depth == 0 && st.inCode() {
			return i, nil
		}
	}

	return 0, fmt.Errorf("%w: delimiter opened at offset %d never closes", ErrUnbalancedDelimiter, openOffset)
}

// FindNextTopLevelToken finds the next occurrence of token at or after from
// that sits at the same nesting depth as from, outside strings and comments.
// The search never looks past within.End and gives up once the depth drops
// below the starting depth, so a terminator belonging to an enclosing scope
// is never matched.
func (s *Scanner) FindNextTopLevelToken(from int, token string, within m.Span) (int, bool) {
	var st scanState

	i := from
	for i < within.End {
		if st.depth < 0 {
			return 0, false
		}

		if st.depth == 0 && st.inCode() && s.hasTokenAt(i, token, within.End) {
			return i, true
		}

		i = s.step(&st, i)
	}

	return 0, false
}

// FindNextToken finds the next occurrence of token at or after from that is
// outside strings and comments, at any nesting depth within the span.
func (s *Scanner) FindNextToken(from int, token string, within m.Span) (int, bool) {
	var st scanState

	i := from
	for i < within.End {
		if st.inCode() && s.hasTokenAt(i, token, within.End) {
			return i, true
		}

		i = s.step(&st, i)
	}

	return 0, false
}

// SkipSpaceAndComments returns the offset of the next byte at or after from
// that is neither whitespace nor part of a comment.
func (s *Scanner) SkipSpaceAndComments(from int) int {
	var st scanState

	i := from
	for i < len(s.buf) {
		if st.inCode() && !isSpace(s.buf[i]) && !s.startsComment(i) {
			return i
		}

		i = s.step(&st, i)
	}

	return len(s.buf)
}

// ValidateTail reports whether the buffer ends inside a string, a block
// comment, or an unclosed delimiter group opened at or after from. Line
// comments close at end of input.
func (s *Scanner) ValidateTail(from int) error {
	var (
		st      scanState
		openers []int
	)

	i := from
	for i < len(s.buf) {
		at := i
		depth := st.depth
		i = s.step(&st, i)

		switch {
		case st.depth > depth:
			openers = append(openers, at)
		case st.depth < depth && len(openers) > 0:
			openers = openers[:len(openers)-1]
		}
	}

	if st.quote != 0 {
		return fmt.Errorf("%w: string literal never closes", ErrUnbalancedDelimiter)
	}

	if st.comment == commentBlock {
		return fmt.Errorf("%w: block comment never closes", ErrUnbalancedDelimiter)
	}

	if len(openers) > 0 {
		return fmt.Errorf("%w: delimiter opened at offset %d never closes", ErrUnbalancedDelimiter, openers[0])
	}

	return nil
}

// hasTokenAt reports whether token occurs at offset i, entirely before limit.
// Word-like tokens must not be part of a longer identifier.
func (s *Scanner) hasTokenAt(i int, token string, limit int) bool {
	end := i + len(token)
	if end > limit || end > len(s.buf) {
		return false
	}

	if string(s.buf[i:end]) != token {
		return false
	}

	if isWordChar(token[0]) {
		if i > 0 && isWordChar(s.buf[i-1]) {
			return false
		}

		if end < len(s.buf) && isWordChar(s.buf[end]) {
			return false
		}
	}

	return true
}

func (s *Scanner) startsComment(i int) bool {
	if s.buf[i] == '#' {
		return true
	}

	if s.buf[i] == '/' && i+1 < len(s.buf) {
		return s.buf[i+1] == '/' || s.buf[i+1] == '*'
	}

	return false
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

func isWordChar(b byte) bool {
	return b == '_' ||
		(b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z') ||
		(b >= '0' && b <= '9')
}
