// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jparse

import (
	"bytes"

	"github.com/tailscale/hujson"
	"go4.org/mem"
)

// ParseHuJSON parses a single value from data, which may be in HuJSON format
// (JSON with comments and trailing commas). Comments are replaced by spaces
// before parsing, so error offsets refer to positions in data.
//
// If data is not valid HuJSON, ParseHuJSON parses it as plain JSON so that
// the caller gets a *SyntaxError where one applies. If plain parsing
// succeeds, the HuJSON error is returned instead. The contents of data are
// not modified.
//
// HuJSON admits a single value per document, so unlike Parse, any text
// remaining after the value (such as the exponent of 1e5, which the parser
// does not support) is reported as an UnexpectedChar error.
func ParseHuJSON(data []byte) (Value, error) {
	std, herr := hujson.Standardize(bytes.Clone(data))
	if herr != nil {
		if _, err := ParseBytes(data); err != nil {
			return nil, err
		}
		return nil, herr
	}
	text := mem.B(std)
	v, end, err := parseRO(text)
	if err != nil {
		return nil, err
	}
	c := newCursor(text)
	c.pos = end
	c.skipSpace()
	if _, ok := c.peek(); ok {
		return nil, c.failAt()
	}
	return v, nil
}
