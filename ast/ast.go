// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package ast builds a tagged-union syntax tree (the Tree Builder, C7) over
// the core decoder's pull parser. Value is a closed sum type rather than an
// interface hierarchy: a JSON document is always exactly one of null, a
// bool, a number, a string, an array, or an object, and callers inspect it
// by Kind rather than by type-switching over an open set of implementations.
package ast

import "github.com/go-jiter/jiter"

// Kind identifies which alternative of the Value sum type is populated.
type Kind byte

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Value is a decoded JSON value. The zero Value is KindNull.
type Value struct {
	kind Kind
	b    bool
	num  jiter.Number
	str  jiter.Str
	arr  []Value
	obj  []Member
}

// Member is a single key/value pair of an Object, in source order.
type Member struct {
	Key   string
	Value Value
}

// Kind reports which alternative v holds.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is the null literal.
func (v Value) IsNull() bool { return v.kind == KindNull }

// Bool returns v's boolean value. ok is false if v is not KindBool.
func (v Value) Bool() (bool, bool) {
	if v.kind != KindBool {
		return false, false
	}
	return v.b, true
}

// Number returns v's decoded numeric value. ok is false if v is not
// KindNumber.
func (v Value) Number() (jiter.Number, bool) {
	if v.kind != KindNumber {
		return jiter.Number{}, false
	}
	return v.num, true
}

// Str returns v's decoded string content. ok is false if v is not
// KindString.
func (v Value) Str() (string, bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.str.String(), true
}

// Array returns v's elements in source order. ok is false if v is not
// KindArray.
func (v Value) Array() ([]Value, bool) {
	if v.kind != KindArray {
		return nil, false
	}
	return v.arr, true
}

// Object returns v's members in source order. ok is false if v is not
// KindObject.
func (v Value) Object() ([]Member, bool) {
	if v.kind != KindObject {
		return nil, false
	}
	return v.obj, true
}

// Find returns the value of the first member of v with the given key. It
// only examines KindObject values; for anything else ok is always false.
// When CatchDuplicateKeys was not set, later members with the same key are
// never reached by Find, matching the order JSON readers normally apply.
func (v Value) Find(key string) (Value, bool) {
	if v.kind != KindObject {
		return Value{}, false
	}
	for _, m := range v.obj {
		if m.Key == key {
			return m.Value, true
		}
	}
	return Value{}, false
}
