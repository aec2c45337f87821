// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jparse

import (
	"unicode"

	"go4.org/mem"
)

// A cursor tracks a position in the input text. The position only moves
// forward, and always lies on the boundary of a UTF-8 sequence.
type cursor struct {
	text mem.RO
	pos  int // byte offset, 0 <= pos <= text.Len()
}

func newCursor(text mem.RO) *cursor { return &cursor{text: text} }

// rest returns the unconsumed remainder of the input.
func (c *cursor) rest() mem.RO { return c.text.SliceFrom(c.pos) }

// peek returns the rune at the current position without consuming it.
// It returns false at the end of the input. An invalid UTF-8 byte is reported
// as utf8.RuneError.
func (c *cursor) peek() (rune, bool) {
	r, _, ok := c.decode()
	return r, ok
}

// consume returns the rune at the current position and advances past it.
// It returns false at the end of the input.
func (c *cursor) consume() (rune, bool) {
	r, n, ok := c.decode()
	c.pos += n
	return r, ok
}

func (c *cursor) decode() (rune, int, bool) {
	if c.pos >= c.text.Len() {
		return 0, 0, false
	}
	r, n := mem.DecodeRune(c.rest())
	return r, n, true
}

// consumeN consumes exactly n runes and returns the text spanned by them.
// If fewer than n runes remain, consumeN returns false and the position is
// not changed.
func (c *cursor) consumeN(n int) (mem.RO, bool) {
	start := c.pos
	for range n {
		if _, ok := c.consume(); !ok {
			c.pos = start
			return mem.RO{}, false
		}
	}
	return c.text.Slice(start, c.pos), true
}

// skipSpace advances past any whitespace runes.
func (c *cursor) skipSpace() {
	for {
		r, n, ok := c.decode()
		if !ok || !unicode.IsSpace(r) {
			return
		}
		c.pos += n
	}
}

// match reports whether the remaining input begins with lit, and if so
// advances past it. Otherwise the position is not changed.
func (c *cursor) match(lit string) bool {
	if !mem.HasPrefix(c.rest(), mem.S(lit)) {
		return false
	}
	c.pos += len(lit)
	return true
}

// fail returns an error of the given kind at the current position.
func (c *cursor) fail(kind ErrorKind) *SyntaxError {
	return &SyntaxError{Kind: kind, Offset: c.pos}
}

// failAt reports the rune at the current position as unexpected, or
// UnexpectedEnd if the input is exhausted.
func (c *cursor) failAt() *SyntaxError {
	r, ok := c.peek()
	if !ok {
		return c.fail(UnexpectedEnd)
	}
	return &SyntaxError{Kind: UnexpectedChar, Char: r, Offset: c.pos}
}
