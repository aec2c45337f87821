// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jparse

import "fmt"

// ErrorKind identifies the cause of a SyntaxError.
type ErrorKind byte

// Constants defining the valid ErrorKind values.
const (
	UnexpectedChar ErrorKind = iota + 1 // a character not valid at this point
	UnexpectedEnd                       // input ended where more was required
	InvalidNumber                       // numeric literal is not a valid float
	InvalidEscape                       // unknown character after a backslash
	InvalidUnicode                      // malformed or invalid \uXXXX escape
)

var errorKindStr = [...]string{
	0:              "unknown error",
	UnexpectedChar: "unexpected character",
	UnexpectedEnd:  "unexpected end of input",
	InvalidNumber:  "invalid number",
	InvalidEscape:  "invalid escape",
	InvalidUnicode: "invalid Unicode escape",
}

func (k ErrorKind) String() string {
	if int(k) >= len(errorKindStr) {
		return errorKindStr[0]
	}
	return errorKindStr[k]
}

// SyntaxError is the concrete type of errors reported by the parser.
type SyntaxError struct {
	Kind   ErrorKind
	Char   rune // the offending character, for UnexpectedChar
	Offset int  // byte offset in the input where the error was detected
}

// Error satisfies the error interface.
func (e *SyntaxError) Error() string {
	if e.Kind == UnexpectedChar {
		return fmt.Sprintf("unexpected %s (offset %d)", quoteRune(e.Char), e.Offset)
	}
	return fmt.Sprintf("%s (offset %d)", e.Kind, e.Offset)
}

// Is reports whether target is a *SyntaxError with the same kind as e.
// This permits errors.Is(err, &SyntaxError{Kind: InvalidEscape}).
func (e *SyntaxError) Is(target error) bool {
	t, ok := target.(*SyntaxError)
	return ok && t.Kind == e.Kind
}

// Position reports the line and column of the error in text, which should be
// the input that produced e.
func (e *SyntaxError) Position(text string) LineCol { return Position(text, e.Offset) }

func quoteRune(r rune) string {
	s := Quote(string(r))
	return "'" + s[1:len(s)-1] + "'"
}
