// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jparse

import (
	"slices"
	"testing"
	"unicode/utf8"

	"go4.org/mem"
)

func TestCursorPeekConsume(t *testing.T) {
	c := newCursor(mem.S("aé日"))

	var got []rune
	var offsets []int
	for {
		p, ok := c.peek()
		if !ok {
			break
		}
		r, ok := c.consume()
		if !ok || r != p {
			t.Fatalf("consume: got (%q, %v), want (%q, true)", r, ok, p)
		}
		got = append(got, r)
		offsets = append(offsets, c.pos)
	}
	if string(got) != "aé日" {
		t.Errorf("Runes: got %q, want %q", string(got), "aé日")
	}
	if want := []int{1, 3, 6}; !slices.Equal(offsets, want) {
		t.Errorf("Offsets: got %v, want %v", offsets, want)
	}
	if r, ok := c.consume(); ok {
		t.Errorf("consume at end: got %q, want none", r)
	}
	if c.pos != 6 {
		t.Errorf("Position after end: got %d, want 6", c.pos)
	}
}

func TestCursorInvalidUTF8(t *testing.T) {
	c := newCursor(mem.S("\xffa"))
	if r, ok := c.consume(); !ok || r != utf8.RuneError {
		t.Errorf("consume: got (%q, %v), want (RuneError, true)", r, ok)
	}
	if c.pos != 1 {
		t.Errorf("Position: got %d, want 1", c.pos)
	}
	if r, _ := c.peek(); r != 'a' {
		t.Errorf("peek: got %q, want 'a'", r)
	}
}

func TestCursorConsumeN(t *testing.T) {
	tests := []struct {
		input string
		start int
		n     int
		want  string
		ok    bool
		end   int
	}{
		{"00e9", 0, 4, "00e9", true, 4},
		{"00e9xyz", 0, 4, "00e9", true, 4},
		{`\u12"`, 2, 4, "", false, 2},
		{`\u`, 2, 4, "", false, 2},
		{"abc", 0, 4, "", false, 0},
		{"aé日b", 0, 4, "aé日b", true, 7},
		{"aé日", 1, 3, "", false, 1},
		{"", 0, 0, "", true, 0},
	}
	for _, test := range tests {
		c := newCursor(mem.S(test.input))
		c.pos = test.start
		got, ok := c.consumeN(test.n)
		if ok != test.ok || got.StringCopy() != test.want {
			t.Errorf("consumeN(%q@%d, %d): got (%q, %v), want (%q, %v)",
				test.input, test.start, test.n, got.StringCopy(), ok, test.want, test.ok)
		}
		if c.pos != test.end {
			t.Errorf("consumeN(%q@%d, %d): position %d, want %d",
				test.input, test.start, test.n, c.pos, test.end)
		}
	}
}

func TestCursorSkipSpace(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"", 0},
		{"x", 0},
		{" \t\r\n x", 5},
		{"\u00a0\u2003x", 5}, // non-ASCII whitespace
		{"    ", 4},
	}
	for _, test := range tests {
		c := newCursor(mem.S(test.input))
		c.skipSpace()
		if c.pos != test.want {
			t.Errorf("skipSpace(%q): position %d, want %d", test.input, c.pos, test.want)
		}
	}
}

func TestCursorMatch(t *testing.T) {
	tests := []struct {
		input string
		lit   string
		ok    bool
		end   int
	}{
		{"null", "null", true, 4},
		{"nullx", "null", true, 4},
		{"nul", "null", false, 0},
		{"Null", "null", false, 0},
		{"true", "false", false, 0},
		{": 1", ":", true, 1},
		{"; 1", ":", false, 0},
		{"", ":", false, 0},
	}
	for _, test := range tests {
		c := newCursor(mem.S(test.input))
		ok := c.match(test.lit)
		if ok != test.ok || c.pos != test.end {
			t.Errorf("match(%q, %q): got (%v, %d), want (%v, %d)",
				test.input, test.lit, ok, c.pos, test.ok, test.end)
		}
	}
}

func TestCursorFail(t *testing.T) {
	c := newCursor(mem.S("ab"))
	c.consume()
	if got := c.failAt(); got.Kind != UnexpectedChar || got.Char != 'b' || got.Offset != 1 {
		t.Errorf("failAt: got %+v, want UnexpectedChar 'b' at 1", got)
	}
	c.consume()
	if got := c.failAt(); got.Kind != UnexpectedEnd || got.Offset != 2 {
		t.Errorf("failAt: got %+v, want UnexpectedEnd at 2", got)
	}
	if got := c.fail(InvalidNumber); got.Kind != InvalidNumber || got.Offset != 2 {
		t.Errorf("fail: got %+v, want InvalidNumber at 2", got)
	}
}
