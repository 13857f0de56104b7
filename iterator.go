// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jiter

// frameKind distinguishes the two container shapes the pull parser tracks.
type frameKind byte

const (
	frameArray frameKind = iota
	frameObject
)

// Iterator is the pull-parser state machine (C6). It tracks container
// nesting, key/value alternation, and array-step advancement over an
// in-memory byte slice, without ever building an intermediate tree. All
// operations are synchronous and bounded by the length of the input; none
// of them block or allocate beyond what a leaf decoder needs.
type Iterator struct {
	c     cursor
	opts  Options
	stack []frameKind
	cache *StringCache
}

// NewIterator constructs an Iterator over data configured by opts.
func NewIterator(data []byte, opts Options) *Iterator {
	it := &Iterator{c: newCursor(data), opts: opts}
	if opts.CacheStrings != CacheNone {
		it.cache = globalCache
	}
	return it
}

// Position reports the iterator's current byte offset into the input.
func (it *Iterator) Position() int { return it.c.position() }

// Peek identifies the kind of the next JSON value without consuming it.
func (it *Iterator) Peek() (Peek, error) {
	b, ok := it.c.peek()
	if !ok {
		return 0, newError(it.c.buf, it.c.pos, EOFWhileParsingValue)
	}
	p, ok := classify(b)
	if !ok {
		return 0, newError(it.c.buf, it.c.pos, ExpectedSomeValue)
	}
	return p, nil
}

func (it *Iterator) wrongType(expected string, p Peek) error {
	actual := p.String()
	if p == PeekTrue || p == PeekFalse {
		actual = "bool"
	}
	return wrongTypeError(it.c.buf, it.c.pos, expected, actual)
}

// NextNull assumes the next value is null and consumes it.
func (it *Iterator) NextNull() error {
	p, err := it.Peek()
	if err != nil {
		return err
	}
	return it.KnownNull(p)
}

// KnownNull consumes null given an already-observed Peek, skipping
// re-classification.
func (it *Iterator) KnownNull(p Peek) error {
	if p != PeekNull {
		return it.wrongType("null", p)
	}
	return it.consumeIdent("null")
}

// NextBool assumes the next value is true or false and consumes it.
func (it *Iterator) NextBool() (bool, error) {
	p, err := it.Peek()
	if err != nil {
		return false, err
	}
	return it.KnownBool(p)
}

// KnownBool consumes true/false given an already-observed Peek.
func (it *Iterator) KnownBool(p Peek) (bool, error) {
	switch p {
	case PeekTrue:
		return true, it.consumeIdent("true")
	case PeekFalse:
		return false, it.consumeIdent("false")
	default:
		return false, it.wrongType("bool", p)
	}
}

func (it *Iterator) consumeIdent(want string) error {
	buf := it.c.buf
	for i := 0; i < len(want); i++ {
		if it.c.pos >= len(buf) {
			return newError(buf, it.c.pos, EOFWhileParsingValue)
		}
		if buf[it.c.pos] != want[i] {
			return newError(buf, it.c.pos, ExpectedSomeIdent)
		}
		it.c.advance()
	}
	return nil
}

// NextNumber assumes the next value is a number and decodes it fully.
func (it *Iterator) NextNumber() (Number, error) {
	p, err := it.Peek()
	if err != nil {
		return Number{}, err
	}
	return it.KnownNumber(p)
}

// KnownNumber decodes a number given an already-observed Peek.
func (it *Iterator) KnownNumber(p Peek) (Number, error) {
	if !p.IsNum() {
		return Number{}, it.wrongType("number", p)
	}
	return decodeNumber(&it.c, it.opts)
}

// NextInt assumes the next value is an integer (no fraction/exponent) and
// decodes it. A syntactically valid float is reported as FloatExpectingInt.
func (it *Iterator) NextInt() (Number, error) {
	p, err := it.Peek()
	if err != nil {
		return Number{}, err
	}
	return it.KnownInt(p)
}

// KnownInt decodes an integer given an already-observed Peek.
func (it *Iterator) KnownInt(p Peek) (Number, error) {
	n, err := it.KnownNumber(p)
	if err != nil {
		return Number{}, err
	}
	if n.Kind == KindFloat || n.Kind == KindFloatLossless {
		return Number{}, newError(it.c.buf, it.c.pos, FloatExpectingInt)
	}
	return n, nil
}

// NextFloat assumes the next value is a number and decodes it as a float64
// regardless of whether the literal had a fraction or exponent.
func (it *Iterator) NextFloat() (float64, error) {
	n, err := it.NextNumber()
	if err != nil {
		return 0, err
	}
	return n.Float64(), nil
}

// NextStr assumes the next value is a string and decodes it.
func (it *Iterator) NextStr() (Str, error) {
	p, err := it.Peek()
	if err != nil {
		return Str{}, err
	}
	return it.KnownStr(p)
}

// KnownStr decodes a string value given an already-observed Peek.
func (it *Iterator) KnownStr(p Peek) (Str, error) {
	if p != PeekString {
		return Str{}, it.wrongType("string", p)
	}
	s, err := decodeString(&it.c, it.opts)
	if err != nil {
		return Str{}, err
	}
	if it.cache != nil && it.opts.CacheStrings == CacheAll {
		s.intern(it.cache)
	}
	return s, nil
}

func (it *Iterator) pushFrame(k frameKind) error {
	if len(it.stack) >= it.opts.maxDepth() {
		return newError(it.c.buf, it.c.pos, RecursionLimitExceeded)
	}
	it.stack = append(it.stack, k)
	return nil
}

func (it *Iterator) popFrame() {
	it.stack = it.stack[:len(it.stack)-1]
}

// NextArray assumes the next value is an array and enters it, consuming the
// opening bracket. It returns the Peek of the first element, or ok=false if
// the array is empty (in which case the closing bracket has already been
// consumed and no frame remains open).
func (it *Iterator) NextArray() (Peek, bool, error) {
	p, err := it.Peek()
	if err != nil {
		return 0, false, err
	}
	if p != PeekArray {
		return 0, false, it.wrongType("array", p)
	}
	it.c.advance() // '['
	if err := it.pushFrame(frameArray); err != nil {
		return 0, false, err
	}
	b, ok := it.c.peek()
	if !ok {
		return 0, false, newError(it.c.buf, it.c.pos, EOFWhileParsingList)
	}
	if b == ']' {
		it.c.advance()
		it.popFrame()
		return 0, false, nil
	}
	first, ok := classify(b)
	if !ok {
		return 0, false, newError(it.c.buf, it.c.pos, ExpectedSomeValue)
	}
	return first, true, nil
}

// ArrayStep advances past the just-consumed element and reports the Peek of
// the next one, or ok=false if the array is closed.
func (it *Iterator) ArrayStep() (Peek, bool, error) {
	b, ok := it.c.peek()
	if !ok {
		return 0, false, newError(it.c.buf, it.c.pos, EOFWhileParsingList)
	}
	switch b {
	case ',':
		it.c.advance()
		b, ok := it.c.peek()
		if !ok {
			return 0, false, newError(it.c.buf, it.c.pos, EOFWhileParsingList)
		}
		if b == ']' {
			return 0, false, newError(it.c.buf, it.c.pos, TrailingComma)
		}
		next, ok := classify(b)
		if !ok {
			return 0, false, newError(it.c.buf, it.c.pos, ExpectedSomeValue)
		}
		return next, true, nil
	case ']':
		it.c.advance()
		it.popFrame()
		return 0, false, nil
	default:
		return 0, false, newError(it.c.buf, it.c.pos, ExpectedListCommaOrEnd)
	}
}

// NextObject assumes the next value is an object and enters it, consuming
// the opening brace. It returns the first decoded key, or ok=false if the
// object is empty.
func (it *Iterator) NextObject() (Str, bool, error) {
	p, err := it.Peek()
	if err != nil {
		return Str{}, false, err
	}
	if p != PeekObject {
		return Str{}, false, it.wrongType("object", p)
	}
	it.c.advance() // '{'
	if err := it.pushFrame(frameObject); err != nil {
		return Str{}, false, err
	}
	b, ok := it.c.peek()
	if !ok {
		return Str{}, false, newError(it.c.buf, it.c.pos, EOFWhileParsingObject)
	}
	if b == '}' {
		it.c.advance()
		it.popFrame()
		return Str{}, false, nil
	}
	if b != '"' {
		return Str{}, false, newError(it.c.buf, it.c.pos, KeyMustBeAString)
	}
	key, err := it.decodeKey()
	if err != nil {
		return Str{}, false, err
	}
	if err := it.expectColon(); err != nil {
		return Str{}, false, err
	}
	return key, true, nil
}

// NextKey advances past the just-consumed member value and reports the next
// decoded key, or ok=false if the object is closed.
func (it *Iterator) NextKey() (Str, bool, error) {
	b, ok := it.c.peek()
	if !ok {
		return Str{}, false, newError(it.c.buf, it.c.pos, EOFWhileParsingObject)
	}
	switch b {
	case ',':
		it.c.advance()
		b, ok := it.c.peek()
		if !ok {
			return Str{}, false, newError(it.c.buf, it.c.pos, EOFWhileParsingObject)
		}
		if b == '}' {
			return Str{}, false, newError(it.c.buf, it.c.pos, TrailingComma)
		}
		if b != '"' {
			return Str{}, false, newError(it.c.buf, it.c.pos, KeyMustBeAString)
		}
		key, err := it.decodeKey()
		if err != nil {
			return Str{}, false, err
		}
		if err := it.expectColon(); err != nil {
			return Str{}, false, err
		}
		return key, true, nil
	case '}':
		it.c.advance()
		it.popFrame()
		return Str{}, false, nil
	default:
		return Str{}, false, newError(it.c.buf, it.c.pos, ExpectedObjectCommaOrEnd)
	}
}

func (it *Iterator) decodeKey() (Str, error) {
	key, err := decodeString(&it.c, it.opts)
	if err != nil {
		return Str{}, err
	}
	if it.cache != nil && it.opts.CacheStrings != CacheNone {
		key.intern(it.cache)
	}
	return key, nil
}

func (it *Iterator) expectColon() error {
	b, ok := it.c.peek()
	if !ok {
		return newError(it.c.buf, it.c.pos, EOFWhileParsingObject)
	}
	if b != ':' {
		return newError(it.c.buf, it.c.pos, ExpectedColon)
	}
	it.c.advance()
	return nil
}

// NextSkip advances past the next value of any kind without materializing
// strings or numbers into decoded form; it only tracks quoting and nesting
// depth, and still enforces the configured maximum depth.
func (it *Iterator) NextSkip() error {
	p, err := it.Peek()
	if err != nil {
		return err
	}
	return it.KnownSkip(p)
}

// KnownSkip skips a value given an already-observed Peek.
func (it *Iterator) KnownSkip(p Peek) error {
	switch p {
	case PeekNull:
		return it.consumeIdent("null")
	case PeekTrue:
		return it.consumeIdent("true")
	case PeekFalse:
		return it.consumeIdent("false")
	case PeekString:
		return skipString(&it.c)
	case PeekArray:
		first, ok, err := it.NextArray()
		if err != nil {
			return err
		}
		for ok {
			if err := it.KnownSkip(first); err != nil {
				return err
			}
			first, ok, err = it.ArrayStep()
			if err != nil {
				return err
			}
		}
		return nil
	case PeekObject:
		return it.skipObject()
	default:
		return skipNumber(&it.c, it.opts)
	}
}

// skipObject skips a whole object, key and value alike, without decoding
// any of its member keys or values.
func (it *Iterator) skipObject() error {
	it.c.advance() // '{'
	if err := it.pushFrame(frameObject); err != nil {
		return err
	}
	b, ok := it.c.peek()
	if !ok {
		return newError(it.c.buf, it.c.pos, EOFWhileParsingObject)
	}
	if b == '}' {
		it.c.advance()
		it.popFrame()
		return nil
	}
	if b != '"' {
		return newError(it.c.buf, it.c.pos, KeyMustBeAString)
	}
	for {
		if err := skipString(&it.c); err != nil {
			return err
		}
		if err := it.expectColon(); err != nil {
			return err
		}
		v, err := it.Peek()
		if err != nil {
			return err
		}
		if err := it.KnownSkip(v); err != nil {
			return err
		}
		b, ok = it.c.peek()
		if !ok {
			return newError(it.c.buf, it.c.pos, EOFWhileParsingObject)
		}
		switch b {
		case ',':
			it.c.advance()
			b, ok = it.c.peek()
			if !ok {
				return newError(it.c.buf, it.c.pos, EOFWhileParsingObject)
			}
			if b == '}' {
				return newError(it.c.buf, it.c.pos, TrailingComma)
			}
			if b != '"' {
				return newError(it.c.buf, it.c.pos, KeyMustBeAString)
			}
		case '}':
			it.c.advance()
			it.popFrame()
			return nil
		default:
			return newError(it.c.buf, it.c.pos, ExpectedObjectCommaOrEnd)
		}
	}
}

// Finish asserts that no non-whitespace input remains after the outermost
// value.
func (it *Iterator) Finish() error {
	if !it.c.atEOF() {
		return newError(it.c.buf, it.c.pos, TrailingCharacters)
	}
	return nil
}
