// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jparse

import (
	"unicode/utf16"
	"unicode/utf8"

	"github.com/creachadair/jparse/internal/escape"
)

// parseString consumes a quoted string and decodes its escape sequences.
// Precondition: the next rune is a double quotation mark.
func (p *parser) parseString() String {
	p.c.consume()
	p.buf = p.buf[:0]
	for {
		ch, ok := p.c.consume()
		if !ok {
			p.fail(UnexpectedEnd)
		}
		switch ch {
		case '"':
			return String(p.buf)
		case '\\':
			p.parseEscape()
		default:
			p.buf = utf8.AppendRune(p.buf, ch)
		}
	}
}

// parseEscape consumes the remainder of an escape sequence whose backslash
// has already been consumed, and appends its meaning to the buffer.
func (p *parser) parseEscape() {
	ch, ok := p.c.peek()
	if !ok {
		p.fail(UnexpectedEnd)
	} else if r, ok := escape.Simple(ch); ok {
		p.c.consume()
		p.buf = utf8.AppendRune(p.buf, r)
		return
	} else if ch != 'u' {
		p.fail(InvalidEscape)
	}
	p.c.consume()

	// A Unicode escape requires exactly 4 hex digits giving a code point
	// outside the surrogate range. Surrogate pairs are not combined.
	hex, ok := p.c.consumeN(4)
	if !ok {
		p.fail(InvalidUnicode)
	}
	v, err := escape.Hex4(hex)
	if err != nil || utf16.IsSurrogate(rune(v)) {
		p.fail(InvalidUnicode)
	}
	p.buf = utf8.AppendRune(p.buf, rune(v))
}
