// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jparse

// A Value is an arbitrary JSON value. The concrete type is one of Null, Bool,
// Number, String, Array, or Object.
type Value interface {
	// Kind reports the JSON type of the value.
	Kind() Kind

	isValue()
}

// Kind identifies the JSON type of a Value.
type Kind byte

// Constants defining the valid Kind values.
const (
	KindNull   Kind = iota + 1 // null
	KindBool                   // true, false
	KindNumber                 // number
	KindString                 // quoted string
	KindArray                  // [ ... ]
	KindObject                 // { ... }
)

var kindStr = [...]string{
	0:          "invalid",
	KindNull:   "null",
	KindBool:   "boolean",
	KindNumber: "number",
	KindString: "string",
	KindArray:  "array",
	KindObject: "object",
}

func (k Kind) String() string {
	if int(k) >= len(kindStr) {
		return kindStr[0]
	}
	return kindStr[k]
}

// Null represents the null constant.
type Null struct{}

// NullValue is the canonical value of the null constant.
var NullValue = Null{}

// Kind satisfies the Value interface.
func (Null) Kind() Kind { return KindNull }

// A Bool is a Boolean constant, true or false.
type Bool bool

// Kind satisfies the Value interface.
func (Bool) Kind() Kind { return KindBool }

// A Number is a numeric value.
type Number float64

// Kind satisfies the Value interface.
func (Number) Kind() Kind { return KindNumber }

// Float64 returns n as a float64.
func (n Number) Float64() float64 { return float64(n) }

// A String is a string value with its escapes decoded.
type String string

// Kind satisfies the Value interface.
func (String) Kind() Kind { return KindString }

// An Array is a sequence of values.
type Array []Value

// Kind satisfies the Value interface.
func (Array) Kind() Kind { return KindArray }

// Len reports the number of elements in a.
func (a Array) Len() int { return len(a) }

// An Object is a sequence of key-value members. Members are in input order,
// and an object may contain more than one member with the same key.
type Object []Member

// Kind satisfies the Value interface.
func (Object) Kind() Kind { return KindObject }

// Len reports the number of members in o.
func (o Object) Len() int { return len(o) }

// Find returns the first member of o with the given key, or nil.
func (o Object) Find(key string) *Member {
	for i, m := range o {
		if m.Key == key {
			return &o[i]
		}
	}
	return nil
}

// Keys returns the keys of o in order, including duplicates.
func (o Object) Keys() []string {
	keys := make([]string, len(o))
	for i, m := range o {
		keys[i] = m.Key
	}
	return keys
}

// A Member is a single key-value pair belonging to an Object.
type Member struct {
	Key   string
	Value Value
}

func (Null) isValue()   {}
func (Bool) isValue()   {}
func (Number) isValue() {}
func (String) isValue() {}
func (Array) isValue()  {}
func (Object) isValue() {}
