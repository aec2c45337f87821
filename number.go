// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jparse

import (
	"errors"
	"strconv"
)

// parseNumber consumes a numeric literal: an optional leading minus sign
// followed by a run of digits and decimal points. The run is accumulated
// without checking its shape, and is validated only when it is converted.
// Exponents are not supported.
//
// An invalid literal is reported at the end of the run, not at its start.
// A literal too large for a float64 is accepted as an infinity.
//
// Precondition: the next rune is "-" or a digit.
func (p *parser) parseNumber() Number {
	start := p.c.pos
	p.c.match("-")
	for {
		ch, ok := p.c.peek()
		if !ok || !(isDigit(ch) || ch == '.') {
			break
		}
		p.c.consume()
	}

	text := p.c.text.Slice(start, p.c.pos).StringCopy()
	v, err := strconv.ParseFloat(text, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		p.fail(InvalidNumber)
	}
	return Number(v)
}
