// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package ast

import (
	"fmt"
	"io"

	"github.com/go-jiter/jiter"
)

// Write serializes v back to JSON, writing it to w. It is the counterpart
// to Parse: Write(w, v) after v, err := Parse(data, opts) reproduces data up
// to whitespace and the spelling of string escapes (strings are re-escaped
// through jiter.Quote). KindNumber is written back using its original
// literal text, so every number round-trips byte for byte.
func Write(w io.Writer, v Value) error {
	e := &encoder{w: w}
	e.writeValue(v)
	return e.err
}

// Marshal serializes v to JSON and returns the result.
func Marshal(v Value) ([]byte, error) {
	var buf []byte
	w := &byteWriter{buf: &buf}
	if err := Write(w, v); err != nil {
		return nil, err
	}
	return buf, nil
}

type byteWriter struct{ buf *[]byte }

func (b *byteWriter) Write(p []byte) (int, error) {
	*b.buf = append(*b.buf, p...)
	return len(p), nil
}

type encoder struct {
	w   io.Writer
	err error
}

func (e *encoder) write(p []byte) {
	if e.err != nil {
		return
	}
	_, e.err = e.w.Write(p)
}

func (e *encoder) writeString(s string) { e.write([]byte(s)) }

func (e *encoder) writeValue(v Value) {
	switch v.Kind() {
	case KindNull:
		e.writeString("null")
	case KindBool:
		b, _ := v.Bool()
		if b {
			e.writeString("true")
		} else {
			e.writeString("false")
		}
	case KindNumber:
		n, _ := v.Number()
		e.write(n.Raw)
	case KindString:
		s, _ := v.Str()
		e.writeString(jiter.Quote(s))
	case KindArray:
		arr, _ := v.Array()
		e.writeString("[")
		for i, elt := range arr {
			if i > 0 {
				e.writeString(",")
			}
			e.writeValue(elt)
		}
		e.writeString("]")
	case KindObject:
		obj, _ := v.Object()
		e.writeString("{")
		for i, m := range obj {
			if i > 0 {
				e.writeString(",")
			}
			e.writeString(jiter.Quote(m.Key))
			e.writeString(":")
			e.writeValue(m.Value)
		}
		e.writeString("}")
	default:
		if e.err == nil {
			e.err = fmt.Errorf("ast: unwritable value kind %v", v.Kind())
		}
	}
}
