// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jiter

// PartialMode selects how end-of-input is handled while parsing (C8).
// The source historically exposed both a boolean and a three-state
// spelling for this setting; the three-state form is authoritative here.
// PartialOff is the zero value so that a zero Options behaves exactly like
// strict parsing.
type PartialMode byte

const (
	// PartialOff rejects any input that ends before a value is complete.
	// Equivalent to the historical bool false.
	PartialOff PartialMode = iota

	// PartialOn silently drops the last, incomplete value (and anything
	// still open above it) and returns the completed prefix.
	// Equivalent to the historical bool true.
	PartialOn

	// PartialTrailingStrings behaves like PartialOn, except that a string
	// literal left open at EOF is still emitted using the content decoded
	// so far.
	PartialTrailingStrings
)

// CacheMode selects the string-interning policy (C4).
type CacheMode byte

const (
	// CacheNone disables interning entirely; every decoded string is fresh.
	CacheNone CacheMode = iota

	// CacheKeys interns only strings observed as object keys.
	CacheKeys

	// CacheAll interns every decoded string, keys and values alike.
	CacheAll
)

// DefaultMaxDepth is the default bound on container nesting (§3 invariants).
const DefaultMaxDepth = 200

// Options configures a parse. The zero value is a strict configuration:
// AllowInfNaN off, no caching, no partial-input tolerance, duplicate keys
// accepted, lossy floats. Callers who want §6's documented defaults
// (AllowInfNaN on) should start from DefaultOptions rather than a bare
// Options{} literal.
type Options struct {
	// AllowInfNaN accepts the bare literals Infinity, -Infinity and NaN in
	// value position. DefaultOptions sets this true; the zero value is
	// false.
	AllowInfNaN bool

	// CacheStrings selects the interning policy for decoded strings.
	CacheStrings CacheMode

	// AllowPartial selects the EOF handling policy.
	AllowPartial PartialMode

	// CatchDuplicateKeys rejects objects with repeated keys when true.
	CatchDuplicateKeys bool

	// LosslessFloats preserves the raw literal bytes of float values
	// instead of parsing them to an IEEE-754 double.
	LosslessFloats bool

	// MaxDepth bounds container nesting. Zero selects DefaultMaxDepth.
	MaxDepth int
}

// DefaultOptions returns the default configuration: AllowInfNaN enabled,
// string caching disabled, strict (non-partial) parsing, duplicate keys
// accepted, and lossy floats.
func DefaultOptions() Options {
	return Options{AllowInfNaN: true}
}

// WithAllowInfNaN returns a copy of o with AllowInfNaN set to ok.
func (o Options) WithAllowInfNaN(ok bool) Options {
	o.AllowInfNaN = ok
	return o
}

func (o Options) maxDepth() int {
	if o.MaxDepth <= 0 {
		return DefaultMaxDepth
	}
	return o.MaxDepth
}

// BoolToPartialMode maps the historical two-state spelling onto the
// three-state form: true maps to PartialOn, false to PartialOff.
func BoolToPartialMode(b bool) PartialMode {
	if b {
		return PartialOn
	}
	return PartialOff
}
