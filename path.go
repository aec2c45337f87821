// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jparse

import (
	"fmt"
	"strconv"
	"strings"
)

// Path traverses a sequential path through the structure of a value starting
// at v, where path elements are either strings (denoting object keys) or
// integers (denoting offsets into arrays or objects).  If the path is valid,
// the element reached is returned. In case of error, the input v is returned
// along with the error.
//
// If a path element is a string, the corresponding value must be an object,
// and the string resolves the first member with that key.
//
// If a path element is an integer, the corresponding value must be an array
// or object, and the integer is an index into its elements or members.
// Negative indices count backward from the end (-1 is last, -2 second last).
// Indexing an object yields the value of the selected member.
//
// If a path element is a function, the function is executed and its result
// becomes the next value in the sequence. The function must have a signature
//
//	func(jparse.Value) (jparse.Value, error)
//
// If the function fails, the traversal reports its error.
func Path(v Value, path ...any) (Value, error) {
	cur := v
	for _, elt := range path {
		switch t := elt.(type) {
		case string:
			o, ok := cur.(Object)
			if !ok {
				return v, fmt.Errorf("cannot traverse %v with %q", kindOf(cur), t)
			}
			m := o.Find(t)
			if m == nil {
				return v, fmt.Errorf("key %q not found", t)
			}
			cur = m.Value

		case int:
			switch c := cur.(type) {
			case Array:
				i, ok := fixArrayBound(len(c), t)
				if !ok {
					return v, fmt.Errorf("array index %d out of bounds (n=%d)", t, len(c))
				}
				cur = c[i]
			case Object:
				i, ok := fixArrayBound(len(c), t)
				if !ok {
					return v, fmt.Errorf("object index %d out of bounds (n=%d)", t, len(c))
				}
				cur = c[i].Value
			default:
				return v, fmt.Errorf("cannot traverse %v with %d", kindOf(cur), t)
			}

		case func(Value) (Value, error):
			next, err := t(cur)
			if err != nil {
				return v, err
			}
			cur = next

		default:
			return v, fmt.Errorf("invalid path element %T", elt)
		}
	}
	return cur, nil
}

// ParsePath splits a dot-separated path string into elements for Path.
// Components that are decimal integers, with an optional sign,
// become int elements; all others are object keys. An empty string yields an
// empty path.
func ParsePath(s string) []any {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ".")
	path := make([]any, len(parts))
	for i, part := range parts {
		if n, err := strconv.Atoi(part); err == nil {
			path[i] = n
		} else {
			path[i] = part
		}
	}
	return path
}

func fixArrayBound(n, i int) (int, bool) {
	if i < 0 {
		i += n
	}
	return i, i >= 0 && i < n
}

func kindOf(v Value) Kind {
	if v == nil {
		return 0
	}
	return v.Kind()
}
