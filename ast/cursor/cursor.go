// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package cursor implements traversal over the value tree produced by the
// ast package.
package cursor

import (
	"fmt"

	"github.com/go-jiter/jiter/ast"
)

// Path traverses a sequential path into the structure of v where path
// elements are as documented for the Cursor.Down method. This is a
// convenience wrapper for creating a cursor, applying path, and retrieving
// its value.
func Path(v ast.Value, path ...any) (ast.Value, error) {
	c := New(v).Down(path...)
	if err := c.Err(); err != nil {
		return ast.Value{}, err
	}
	return c.Value(), nil
}

// A Cursor is a pointer that navigates into the structure of an ast.Value.
type Cursor struct {
	org ast.Value
	stk []ast.Value
	err error
}

// New constructs a new Cursor to traverse the structure of origin.
func New(origin ast.Value) *Cursor { return &Cursor{org: origin} }

// Origin returns the origin value of c.
func (c *Cursor) Origin() ast.Value { return c.org }

// AtOrigin reports whether c is at its origin.
func (c *Cursor) AtOrigin() bool { return len(c.stk) == 0 }

// Value reports the current value under the cursor.
func (c *Cursor) Value() ast.Value {
	if c.AtOrigin() {
		return c.org
	}
	return c.stk[len(c.stk)-1]
}

// Path reports the complete sequence of values from the origin to the
// current location in c.
func (c *Cursor) Path() []ast.Value {
	return append([]ast.Value{c.org}, c.stk...)
}

// Err reports the error from the most recent traversal operation, if any.
func (c *Cursor) Err() error { return c.err }

// Up moves the cursor one position upward in the structure, if possible.
// It returns c to permit chaining.
func (c *Cursor) Up() *Cursor {
	if n := len(c.stk); n > 0 {
		c.stk = c.stk[:n-1]
	}
	return c
}

// Reset resets the cursor to its origin and clears its error.
func (c *Cursor) Reset() { c.stk = c.stk[:0]; c.err = nil }

// Down traverses a sequential path into the structure of c starting from
// the current value, where path elements are either strings (denoting
// object keys), integers (denoting offsets into an array or an object's
// members), functions (see below), or nil.  If the path is valid, the
// element reached becomes the new current value. If the path cannot be
// completely consumed, traversal stops and an error is recorded; use Err to
// recover it.
//
// If a path element is a string, the current value must be an object, and
// the string resolves to the value of the first member with that key.
//
// If a path element is an integer, the current value must be an array or an
// object, and the integer resolves to an index into its elements (for an
// array) or its members' values (for an object). Negative indices count
// backward from the end (-1 is last, -2 second last).
//
// If a path element is a function, the function is executed and its result
// becomes the next value in the sequence. The function must have a
// signature
//
//	func(ast.Value) (ast.Value, error)
//
// If the function reports an error, traversal stops and the error is
// recorded.
func (c *Cursor) Down(path ...any) *Cursor {
	c.err = nil // reset error
	cur := c.Value()
	for _, elt := range path {
		switch t := elt.(type) {
		case string:
			if cur.Kind() != ast.KindObject {
				return c.setErrorf("cannot traverse %s with %q", cur.Kind(), t)
			}
			v, ok := cur.Find(t)
			if !ok {
				return c.setErrorf("key %q not found", t)
			}
			cur = c.push(v)

		case int:
			switch cur.Kind() {
			case ast.KindArray:
				arr, _ := cur.Array()
				i, ok := fixArrayBound(len(arr), t)
				if !ok {
					return c.setErrorf("array index %d out of bounds (n=%d)", t, len(arr))
				}
				cur = c.push(arr[i])
			case ast.KindObject:
				obj, _ := cur.Object()
				i, ok := fixArrayBound(len(obj), t)
				if !ok {
					return c.setErrorf("object index %d out of bounds (n=%d)", t, len(obj))
				}
				cur = c.push(obj[i].Value)
			default:
				return c.setErrorf("cannot traverse %s with %d", cur.Kind(), t)
			}

		case func(ast.Value) (ast.Value, error):
			next, err := t(cur)
			if err != nil {
				c.err = err
				return c
			}
			cur = c.push(next)

		case nil:
			// Do nothing; a caller may pass nil to pad out a path built
			// programmatically without special-casing the last element.

		default:
			return c.setErrorf("invalid path element %T", elt)
		}
	}
	return c
}

func (c *Cursor) push(v ast.Value) ast.Value { c.stk = append(c.stk, v); return v }

func (c *Cursor) setErrorf(msg string, args ...any) *Cursor {
	c.err = fmt.Errorf(msg, args...)
	return c
}

func fixArrayBound(n, i int) (int, bool) {
	if i < 0 {
		i += n
	}
	return i, i >= 0 && i < n
}
