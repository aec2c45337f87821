// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jparse_test

import (
	"errors"
	"testing"

	"github.com/creachadair/jparse"
	"github.com/google/go-cmp/cmp"
)

func TestParseHuJSON(t *testing.T) {
	const input = `{
  // The name of the thing.
  "name": "John Doe", /* inline */
  "phones": [
    "+44 1234567",
    "+44 2345678", // trailing comma
  ],
}
`
	want := obj{
		{Key: "name", Value: str("John Doe")},
		{Key: "phones", Value: arr{str("+44 1234567"), str("+44 2345678")}},
	}
	data := []byte(input)
	got, err := jparse.ParseHuJSON(data)
	if err != nil {
		t.Fatalf("ParseHuJSON: unexpected error: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ParseHuJSON: wrong result (-want, +got):\n%s", diff)
	}
	if string(data) != input {
		t.Error("ParseHuJSON modified its input")
	}
}

func TestParseHuJSONErrors(t *testing.T) {
	tests := []struct {
		input string
		kind  jparse.ErrorKind
		pos   int
	}{
		{`{"name"; "x"}`, jparse.UnexpectedChar, 7},
		{`["\q"]`, jparse.InvalidEscape, 3},
		{`[1, 2`, jparse.UnexpectedEnd, 5},
		{`"\u{110000}"`, jparse.InvalidUnicode, 7},
	}
	for _, test := range tests {
		_, err := jparse.ParseHuJSON([]byte(test.input))
		var serr *jparse.SyntaxError
		if !errors.As(err, &serr) {
			t.Errorf("ParseHuJSON(%#q): got %v, want *SyntaxError", test.input, err)
			continue
		}
		if serr.Kind != test.kind || serr.Offset != test.pos {
			t.Errorf("ParseHuJSON(%#q): got %v at %d, want %v at %d",
				test.input, serr.Kind, serr.Offset, test.kind, test.pos)
		}

		// The result agrees with the plain parser.
		_, perr := jparse.Parse(test.input)
		if diff := cmp.Diff(perr, err); diff != "" {
			t.Errorf("ParseHuJSON(%#q) disagrees with Parse (-parse, +hujson):\n%s", test.input, diff)
		}
	}

	// Input that the plain parser accepts but HuJSON rejects reports the
	// HuJSON error.
	for _, input := range []string{`[1] junk`, `[1] 2e3`} {
		if _, err := jparse.ParseHuJSON([]byte(input)); err == nil {
			t.Errorf("ParseHuJSON(%#q): got nil, want error", input)
		}
	}
}

func TestParseHuJSONUnconsumed(t *testing.T) {
	tests := []struct {
		input string
		char  rune
		pos   int
	}{
		{`1e5`, 'e', 1},
		{"-2.5E3 // exponent\n", 'E', 4},
		{`[1e5]`, 'e', 2},
		{`{"a": 3e1,}`, 'e', 7},
	}
	for _, test := range tests {
		got, err := jparse.ParseHuJSON([]byte(test.input))
		var serr *jparse.SyntaxError
		if !errors.As(err, &serr) {
			t.Errorf("ParseHuJSON(%#q): got %v, %v; want *SyntaxError", test.input, got, err)
			continue
		}
		if serr.Kind != jparse.UnexpectedChar || serr.Char != test.char || serr.Offset != test.pos {
			t.Errorf("ParseHuJSON(%#q): got %v, want %q at %d", test.input, serr, test.char, test.pos)
		}
	}

	// Trailing whitespace and comments are fine.
	got, err := jparse.ParseHuJSON([]byte("15 /* done */\n\t"))
	if err != nil {
		t.Fatalf("ParseHuJSON: unexpected error: %v", err)
	}
	if diff := cmp.Diff(jparse.Value(num(15)), got); diff != "" {
		t.Errorf("ParseHuJSON: wrong result (-want, +got):\n%s", diff)
	}
}
