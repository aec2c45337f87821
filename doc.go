// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package jparse implements a recursive-descent parser for JSON text.
//
// # Parsing
//
// Call Parse with the complete text of a document. Parse reads a single value
// from the front of the input and returns it as a tree of Value nodes:
//
//	v, err := jparse.Parse(`{"name": "John Doe", "age": 43}`)
//	if err != nil {
//	   log.Fatalf("Parse failed: %v", err)
//	}
//
// Text following the first value is ignored. Use ParsePrefix to find where
// the value ended, if the caller needs to reject trailing data.
//
// # Values
//
// The concrete type of a Value is one of Null, Bool, Number, String, Array,
// or Object. All numbers are represented as float64. Objects keep their
// members in input order, and duplicate keys are retained as separate
// members:
//
//	JSON type  | Go type         | Notes
//	---------- | --------------- | ---------------------------------------
//	null       | Null            | NullValue is the canonical instance
//	boolean    | Bool            |
//	number     | Number          | float64, no exponent notation
//	string     | String          | escapes decoded
//	array      | Array           | []Value
//	object     | Object          | []Member, in input order
//
// # Errors
//
// Parsing stops at the first error. The error has concrete type
// *SyntaxError, and reports the kind of failure and the byte offset in the
// input where it was detected:
//
//	var serr *jparse.SyntaxError
//	if errors.As(err, &serr) {
//	   log.Printf("at %v: %v", serr.Position(text), serr.Kind)
//	}
//
// For an invalid number, the offset is that of the first byte after the
// malformed literal, not its start.
package jparse
