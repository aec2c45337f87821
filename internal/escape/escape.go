// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package escape handles the escape sequences of JSON strings.
package escape

import (
	"fmt"
	"unicode/utf8"

	"go4.org/mem"
)

// simple maps the character following a backslash to its meaning, for the
// escapes that are a single character long.
var simple = [...]rune{
	'"':  '"',
	'\\': '\\',
	'/':  '/',
	'b':  '\b',
	'f':  '\f',
	'n':  '\n',
	'r':  '\r',
	't':  '\t',
}

// Simple reports the character denoted by the escape sequence \c, and whether
// c introduces a single-character escape. The Unicode escape \u is not simple.
func Simple(c rune) (rune, bool) {
	if c < 0 || int(c) >= len(simple) || simple[c] == 0 {
		return 0, false
	}
	return simple[c], true
}

// Hex4 decodes src, which must consist of exactly 4 hexadecimal digits, as a
// 16-bit unsigned value. A sign is not a digit, so "+fff" is rejected.
func Hex4(src mem.RO) (uint16, error) {
	if src.Len() != 4 {
		return 0, fmt.Errorf("got %d bytes, want 4 hex digits", src.Len())
	}
	var v uint16
	for i := 0; i < 4; i++ {
		b := src.At(i)
		v <<= 4
		switch {
		case '0' <= b && b <= '9':
			v += uint16(b - '0')
		case 'a' <= b && b <= 'f':
			v += uint16(b - 'a' + 10)
		case 'A' <= b && b <= 'F':
			v += uint16(b - 'A' + 10)
		default:
			return 0, fmt.Errorf("invalid hex digit %q", b)
		}
	}
	return v, nil
}

var controlEsc = [...]byte{
	'\b': 'b',
	'\f': 'f',
	'\n': 'n',
	'\r': 'r',
	'\t': 't',
	' ':  ' ', // sentinel
}

const hexDigit = "0123456789abcdef"

// Quote encodes src as a JSON string, with enclosing double quotation marks.
// Control characters, quotes, and backslashes are escaped, as are the line
// and paragraph separators and the replacement rune.
func Quote(src mem.RO) []byte {
	buf := make([]byte, 0, src.Len()+2)
	buf = append(buf, '"')
	for src.Len() != 0 {
		r, n := mem.DecodeRune(src)
		src = src.SliceFrom(n)

		switch {
		case r < ' ':
			if b := controlEsc[r]; b != 0 {
				buf = append(buf, '\\', b)
			} else {
				buf = append(buf, '\\', 'u', '0', '0', hexDigit[r>>4], hexDigit[r&15])
			}
		case r == '\\' || r == '"':
			buf = append(buf, '\\', byte(r))
		case r < utf8.RuneSelf:
			buf = append(buf, byte(r))
		case r == utf8.RuneError, r == '\u2028', r == '\u2029':
			buf = fmt.Appendf(buf, `\u%04x`, r)
		default:
			buf = utf8.AppendRune(buf, r)
		}
	}
	return append(buf, '"')
}
