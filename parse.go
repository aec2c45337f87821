// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jparse

import (
	"go4.org/mem"
)

// Parse parses a single JSON value from the front of text. Any text after
// the value is ignored. In case of error, the returned error has concrete
// type *SyntaxError.
func Parse(text string) (Value, error) {
	v, _, err := parseRO(mem.S(text))
	return v, err
}

// ParseBytes parses a single JSON value from the front of data. It behaves as
// Parse, but does not copy data.
func ParseBytes(data []byte) (Value, error) {
	v, _, err := parseRO(mem.B(data))
	return v, err
}

// ParsePrefix parses a single JSON value from the front of text, and reports
// the byte offset of the end of the value. Whitespace following the value is
// not consumed. In case of error, the offset is that of the error.
func ParsePrefix(text string) (Value, int, error) {
	return parseRO(mem.S(text))
}

// MustParse parses text as by Parse, and panics if parsing fails.
func MustParse(text string) Value {
	v, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return v
}

func parseRO(text mem.RO) (_ Value, end int, err error) {
	p := &parser{c: newCursor(text)}
	defer p.recoverSyntaxError(&err, &end)
	v := p.parseValue()
	return v, p.c.pos, nil
}

// A parser holds the state of a single call to Parse.
// Parse errors are reported by panicking with a *SyntaxError, which is
// recovered at the entry point.
type parser struct {
	c   *cursor
	buf []byte // scratch space for decoding strings
}

func (p *parser) recoverSyntaxError(errp *error, endp *int) {
	if x := recover(); x != nil {
		serr, ok := x.(*SyntaxError)
		if !ok {
			panic(x)
		}
		*errp = serr
		*endp = serr.Offset
	}
}

func (p *parser) fail(kind ErrorKind) { panic(p.c.fail(kind)) }

func (p *parser) unexpected() { panic(p.c.failAt()) }

// parseValue consumes a single value of any type, after skipping leading
// whitespace.
func (p *parser) parseValue() Value {
	p.c.skipSpace()

	switch {
	case p.c.match("null"):
		return NullValue
	case p.c.match("true"):
		return Bool(true)
	case p.c.match("false"):
		return Bool(false)
	}

	ch, ok := p.c.peek()
	switch {
	case !ok:
		p.fail(UnexpectedEnd)
	case ch == '"':
		return p.parseString()
	case ch == '[':
		return p.parseArray()
	case ch == '{':
		return p.parseObject()
	case ch == '-' || isDigit(ch):
		return p.parseNumber()
	}
	p.unexpected()
	panic("unreachable")
}

// parseArray consumes zero or more comma-separated values in brackets.
// Precondition: the next rune is "[".
func (p *parser) parseArray() Array {
	p.c.consume()
	arr := Array{}
	for {
		p.c.skipSpace()
		if p.c.match("]") {
			return arr
		}
		arr = append(arr, p.parseValue())

		// Check whether we have more elements (",") or are done ("]").
		p.c.skipSpace()
		if p.c.match("]") {
			return arr
		} else if !p.c.match(",") {
			p.unexpected()
		}
	}
}

// parseObject consumes zero or more comma-separated "key": value members in
// braces.
// Precondition: the next rune is "{".
func (p *parser) parseObject() Object {
	p.c.consume()
	obj := Object{}
	for {
		p.c.skipSpace()
		if p.c.match("}") {
			return obj
		}

		// Parse a single member: "key": value
		if ch, ok := p.c.peek(); !ok || ch != '"' {
			p.unexpected()
		}
		key := p.parseString()
		p.c.skipSpace()
		if !p.c.match(":") {
			p.unexpected()
		}
		p.c.skipSpace()
		obj = append(obj, Member{Key: string(key), Value: p.parseValue()})

		// Check whether we have more members (",") or are done ("}").
		p.c.skipSpace()
		if p.c.match("}") {
			return obj
		} else if !p.c.match(",") {
			p.unexpected()
		}
	}
}

func isDigit(ch rune) bool { return '0' <= ch && ch <= '9' }
