// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jiter

import (
	"math"
	"math/big"
	"strconv"
)

// NumberKind classifies a decoded number (C3).
type NumberKind byte

const (
	// KindInt is an integer literal that fits in a signed 64-bit word.
	KindInt NumberKind = iota
	// KindBigInt is an integer literal too large for int64.
	KindBigInt
	// KindFloat is a literal with a fraction and/or exponent, parsed to a
	// double.
	KindFloat
	// KindFloatLossless is a float literal whose raw bytes were preserved
	// verbatim instead of being parsed, for exact round-tripping.
	KindFloatLossless
)

// Number is the tagged union produced by the number decoder. Kind selects
// which of Int, Big, or Float holds the value; for KindFloatLossless none of
// them is set and the value is carried by Raw alone. Raw is set for every
// kind.
type Number struct {
	Kind  NumberKind
	Int   int64
	Big   *big.Int
	Float float64
	Raw   []byte // the exact literal text; populated for every kind
}

// Float64 coerces n to a float64 regardless of its Kind, e.g. to support a
// host language that only has one numeric type.
func (n Number) Float64() float64 {
	switch n.Kind {
	case KindInt:
		if n.Int == 0 && len(n.Raw) > 0 && n.Raw[0] == '-' {
			return math.Copysign(0, -1)
		}
		return float64(n.Int)
	case KindBigInt:
		f, _ := new(big.Float).SetInt(n.Big).Float64()
		return f
	case KindFloat:
		return n.Float
	default: // KindFloatLossless
		f, err := strconv.ParseFloat(string(n.Raw), 64)
		if err != nil {
			return math.NaN()
		}
		return f
	}
}

// decodeNumber consumes a JSON numeric literal (or, when allowInfNaN is set,
// Infinity/-Infinity/NaN) starting at the cursor's current position and
// classifies it per §4.3. The grammar is read exactly once; no backtracking
// is required because every branch point (fraction, exponent) is resolved by
// the byte immediately following the integer part.
func decodeNumber(c *cursor, opts Options) (Number, error) {
	start := c.pos
	buf := c.buf

	b, ok := c.peekByte()
	if !ok {
		return Number{}, newError(buf, c.pos, EOFWhileParsingValue)
	}

	if opts.AllowInfNaN && (b == 'I' || b == 'N' || (b == '-' && peekIsInfAt(buf, c.pos))) {
		return decodeNonFinite(c, opts)
	}

	neg := false
	if b == '-' {
		neg = true
		c.advance()
		if _, ok := c.peekByte(); !ok {
			return Number{}, newError(buf, c.pos, InvalidNumber)
		}
	}

	digitsStart := c.pos
	for {
		b, ok := c.peekByte()
		if !ok || b < '0' || b > '9' {
			break
		}
		c.advance()
	}
	nIntDigits := c.pos - digitsStart
	if nIntDigits == 0 {
		return Number{}, newError(buf, c.pos, InvalidNumber)
	}
	if buf[digitsStart] == '0' && nIntDigits > 1 {
		return Number{}, newError(buf, digitsStart, InvalidNumber)
	}

	isFloat := false

	if b, ok := c.peekByte(); ok && b == '.' {
		isFloat = true
		c.advance()
		fracStart := c.pos
		for {
			b, ok := c.peekByte()
			if !ok || b < '0' || b > '9' {
				break
			}
			c.advance()
		}
		if c.pos == fracStart {
			return Number{}, newError(buf, c.pos, InvalidNumber)
		}
	}

	if b, ok := c.peekByte(); ok && (b == 'e' || b == 'E') {
		isFloat = true
		c.advance()
		if b, ok := c.peekByte(); ok && (b == '+' || b == '-') {
			c.advance()
		}
		expStart := c.pos
		for {
			b, ok := c.peekByte()
			if !ok || b < '0' || b > '9' {
				break
			}
			c.advance()
		}
		if c.pos == expStart {
			return Number{}, newError(buf, c.pos, InvalidNumber)
		}
	}

	raw := buf[start:c.pos]

	if !isFloat {
		if n, ok := parseExactInt(buf[digitsStart:c.pos], neg); ok {
			return Number{Kind: KindInt, Int: n, Raw: raw}, nil
		}
		bi := new(big.Int)
		bi.SetString(string(buf[digitsStart:c.pos]), 10)
		if neg {
			bi.Neg(bi)
		}
		return Number{Kind: KindBigInt, Big: bi, Raw: raw}, nil
	}

	if opts.LosslessFloats {
		return Number{Kind: KindFloatLossless, Raw: raw}, nil
	}
	f, err := strconv.ParseFloat(string(raw), 64)
	if err != nil {
		if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
			if !opts.AllowInfNaN && math.IsInf(f, 0) {
				return Number{}, newError(buf, start, NumberOutOfRange)
			}
			// Overflow to +/-Inf is accepted as a value when allowed.
		} else {
			return Number{}, newError(buf, start, InvalidNumber)
		}
	}
	return Number{Kind: KindFloat, Float: f, Raw: raw}, nil
}

// parseExactInt parses an unsigned decimal digit run with overflow checking,
// mirroring the accumulate-and-bound-check idiom used for hot-path integer
// parsing: multiply-accumulate one digit at a time, bailing out the moment
// the running total could no longer fit in an int64.
func parseExactInt(digits []byte, neg bool) (int64, bool) {
	var n uint64
	const maxU64 = uint64(math.MaxInt64)
	limit := maxU64
	if neg {
		limit++ // -9223372036854775808 is representable, +9223372036854775808 is not
	}
	for _, d := range digits {
		dv := uint64(d - '0')
		if n > (limit-dv)/10 {
			return 0, false
		}
		n = n*10 + dv
	}
	if neg {
		return -int64(n), true
	}
	if n > maxU64 {
		return 0, false
	}
	return int64(n), true
}

// skipNumber advances c past a numeric literal (or, when allowed, a
// non-finite identifier) without constructing a Number: it validates the
// grammar in §4.3 but performs no integer accumulation or float parsing.
func skipNumber(c *cursor, opts Options) error {
	buf := c.buf
	b, ok := c.peekByte()
	if !ok {
		return newError(buf, c.pos, EOFWhileParsingValue)
	}
	if opts.AllowInfNaN && (b == 'I' || b == 'N' || (b == '-' && peekIsInfAt(buf, c.pos))) {
		_, err := decodeNonFinite(c, opts)
		return err
	}

	if b == '-' {
		c.advance()
		if _, ok := c.peekByte(); !ok {
			return newError(buf, c.pos, InvalidNumber)
		}
	}

	digitsStart := c.pos
	for {
		b, ok := c.peekByte()
		if !ok || b < '0' || b > '9' {
			break
		}
		c.advance()
	}
	if c.pos == digitsStart {
		return newError(buf, c.pos, InvalidNumber)
	}
	if buf[digitsStart] == '0' && c.pos-digitsStart > 1 {
		return newError(buf, digitsStart, InvalidNumber)
	}

	if b, ok := c.peekByte(); ok && b == '.' {
		c.advance()
		fracStart := c.pos
		for {
			b, ok := c.peekByte()
			if !ok || b < '0' || b > '9' {
				break
			}
			c.advance()
		}
		if c.pos == fracStart {
			return newError(buf, c.pos, InvalidNumber)
		}
	}

	if b, ok := c.peekByte(); ok && (b == 'e' || b == 'E') {
		c.advance()
		if b, ok := c.peekByte(); ok && (b == '+' || b == '-') {
			c.advance()
		}
		expStart := c.pos
		for {
			b, ok := c.peekByte()
			if !ok || b < '0' || b > '9' {
				break
			}
			c.advance()
		}
		if c.pos == expStart {
			return newError(buf, c.pos, InvalidNumber)
		}
	}
	return nil
}

func peekIsInfAt(buf []byte, pos int) bool {
	rest := buf[pos:]
	return len(rest) > 1 && rest[1] == 'I'
}

var (
	infinityIdent = []byte("Infinity")
	nanIdent      = []byte("NaN")
)

// decodeNonFinite consumes Infinity, -Infinity, or NaN.
func decodeNonFinite(c *cursor, opts Options) (Number, error) {
	start := c.pos
	neg := false
	if c.eat('-') {
		neg = true
	}
	var ident []byte
	if b, _ := c.peekByte(); b == 'I' {
		ident = infinityIdent
	} else {
		ident = nanIdent
	}
	for _, want := range ident {
		got, ok := c.peekByte()
		if !ok || got != want {
			return Number{}, newError(c.buf, c.pos, ExpectedSomeIdent)
		}
		c.advance()
	}
	raw := c.buf[start:c.pos]
	f := math.Inf(1)
	if string(ident) == "NaN" {
		f = math.NaN()
	} else if neg {
		f = math.Inf(-1)
	}
	if opts.LosslessFloats {
		return Number{Kind: KindFloatLossless, Raw: raw}, nil
	}
	return Number{Kind: KindFloat, Float: f, Raw: raw}, nil
}
