// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package jiter implements a pull-based JSON decoder: a lexical cursor, a
// leaf decoder for strings and numbers, and an Iterator that walks a JSON
// document one value at a time without ever building an intermediate tree.
//
// # Iterating
//
// Construct an Iterator over a byte slice and call Peek to classify the next
// value, then one of the Next*/Known* methods to consume it:
//
//	it := jiter.NewIterator(data, jiter.DefaultOptions())
//	p, err := it.Peek()
//	if err != nil {
//		log.Fatal(err)
//	}
//	n, err := it.KnownNumber(p)
//
// Arrays and objects are walked with NextArray/ArrayStep, which report the
// Peek of the next element, and NextObject/NextKey, which report the next
// decoded member key; each also returns a boolean that is false once the
// container is closed.
//
// # Errors
//
// Every failure is reported as an *Error carrying one of a sealed set of
// ErrorKind values and the byte offset at which it occurred. Location
// resolves that offset to a line and column only when asked, so a hot loop
// that never hits an error pays nothing for it.
//
// # Driving a Host Bridge
//
// Drive walks a single value from an Iterator and reports it through the
// Builder interface, the abstraction the ast package's tree builder sits
// behind. A host that wants some other in-memory representation can
// implement Builder directly instead of building an ast.Value.
//
// # Tree building
//
// The ast subpackage builds a concrete Value sum type on top of Drive, and
// applies the partial-parse policy selected by Options.AllowPartial when the
// input ends before the outermost value is complete.
package jiter
