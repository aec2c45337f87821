// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jparse

import (
	"github.com/creachadair/jparse/internal/escape"

	"go4.org/mem"
)

// Quote encodes src as a JSON string literal. The contents are escaped and
// double quotation marks are added. Parsing the result with Parse yields
// String(src) for any valid UTF-8 src.
func Quote(src string) string { return string(escape.Quote(mem.S(src))) }
