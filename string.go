// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jiter

import "unicode/utf8"

// Str is a decoded JSON string value (C2). It is either Borrowed, a
// zero-copy view into the original input with no escapes, or Owned, a
// freshly allocated buffer holding the result of expanding escape
// sequences. Callers that need the content to outlive the input buffer must
// copy it themselves; Str never does so implicitly.
type Str struct {
	bytes []byte
	owned bool

	// interned holds a cached copy of the decoded content once it has been
	// deduplicated through a StringCache. When set, String returns it
	// directly instead of reallocating from bytes, so the whole point of
	// interning (many equal Str values sharing one Go string) survives past
	// the call that produced it.
	interned string

	// Pos is the byte offset of the opening quote. It exists so a Builder
	// can report a precise location for errors that only make sense once a
	// string has been recognized as a key, such as a duplicate object key.
	Pos int
}

// Bytes returns the decoded content. For a Borrowed string that has not been
// interned this is a sub-slice of the original input and must not outlive
// it; for an interned string it is a fresh copy of the cache's shared string.
func (s Str) Bytes() []byte {
	if s.interned != "" {
		return []byte(s.interned)
	}
	return s.bytes
}

// String returns the decoded content as a string. If the content has been
// interned it returns the shared string directly with no further
// allocation; otherwise it copies from bytes.
func (s Str) String() string {
	if s.interned != "" {
		return s.interned
	}
	return string(s.bytes)
}

// intern replaces s's content with the cache's shared copy, so later calls
// to String reuse that one allocation instead of copying bytes again.
func (s *Str) intern(cache *StringCache) {
	if len(s.bytes) == 0 {
		return
	}
	s.interned = cache.Intern(s.bytes)
}

// Owned reports whether the string required allocation to decode (i.e. it
// contained at least one escape sequence).
func (s Str) Owned() bool { return s.owned }

// decodeString consumes a JSON string literal starting at the opening
// quote. On success the cursor rests one past the closing quote.
func decodeString(c *cursor, opts Options) (Str, error) {
	buf := c.buf
	quoteAt := c.pos
	if !c.eat('"') {
		return Str{}, newError(buf, c.pos, ExpectedSomeValue)
	}
	start := c.pos

	// Fast path: scan for the closing quote, a backslash, or a control
	// byte, validating UTF-8 as we go. If the quote arrives first, the
	// whole span can be returned without copying.
	i := start
	for {
		if i >= len(buf) {
			c.pos = i
			return finishPartialString(c, buf[start:i], quoteAt, opts)
		}
		b := buf[i]
		switch {
		case b == '"':
			c.pos = i + 1
			return Str{bytes: buf[start:i], Pos: quoteAt}, nil
		case b == '\\':
			return decodeEscapedString(c, buf, start, i, quoteAt, opts)
		case b < 0x20:
			c.pos = i
			return Str{}, newError(buf, i, ControlCharacterInString)
		case b < 0x80:
			i++
		default:
			r, n := utf8.DecodeRune(buf[i:])
			if r == utf8.RuneError && n <= 1 {
				c.pos = i
				return Str{}, newError(buf, i, InvalidString)
			}
			i += n
		}
	}
}

// finishPartialString handles EOF reached before a closing quote.
func finishPartialString(c *cursor, decodedSoFar []byte, quoteAt int, opts Options) (Str, error) {
	if opts.AllowPartial == PartialTrailingStrings {
		return Str{bytes: append([]byte(nil), decodedSoFar...), owned: true, Pos: quoteAt}, nil
	}
	return Str{}, newError(c.buf, c.pos, EOFWhileParsingString)
}

// decodeEscapedString switches to an owned buffer at the first backslash
// found by decodeString's fast-path scan and finishes decoding byte by
// byte.
func decodeEscapedString(c *cursor, buf []byte, start, escAt, quoteAt int, opts Options) (Str, error) {
	dec := append([]byte(nil), buf[start:escAt]...)
	i := escAt

	for {
		if i >= len(buf) {
			c.pos = i
			return finishPartialString(c, dec, quoteAt, opts)
		}
		b := buf[i]
		switch {
		case b == '"':
			c.pos = i + 1
			return Str{bytes: dec, owned: true, Pos: quoteAt}, nil
		case b == '\\':
			i++
			if i >= len(buf) {
				c.pos = i
				return finishPartialString(c, dec, quoteAt, opts)
			}
			esc := buf[i]
			switch esc {
			case '"', '\\', '/':
				dec = append(dec, esc)
				i++
			case 'b':
				dec = append(dec, '\b')
				i++
			case 'f':
				dec = append(dec, '\f')
				i++
			case 'n':
				dec = append(dec, '\n')
				i++
			case 'r':
				dec = append(dec, '\r')
				i++
			case 't':
				dec = append(dec, '\t')
				i++
			case 'u':
				i++
				r, ni, err := decodeUnicodeEscape(buf, i)
				if err != nil {
					if ae, ok := err.(*Error); ok && ae.Kind == EOFWhileParsingString {
						c.pos = ni
						return finishPartialString(c, dec, quoteAt, opts)
					}
					c.pos = i
					return Str{}, err
				}
				i = ni
				var tmp [utf8.UTFMax]byte
				n := utf8.EncodeRune(tmp[:], r)
				dec = append(dec, tmp[:n]...)
			default:
				c.pos = i
				return Str{}, newError(buf, i, InvalidEscape)
			}
		case b < 0x20:
			c.pos = i
			return Str{}, newError(buf, i, ControlCharacterInString)
		case b < 0x80:
			dec = append(dec, b)
			i++
		default:
			r, n := utf8.DecodeRune(buf[i:])
			if r == utf8.RuneError && n <= 1 {
				c.pos = i
				return Str{}, newError(buf, i, InvalidString)
			}
			dec = append(dec, buf[i:i+n]...)
			i += n
		}
	}
}

// decodeUnicodeEscape reads a \uXXXX escape (the 'u' has already been
// consumed) starting at i, combining it with a following low surrogate if
// the first hex quad is a high surrogate. It returns the decoded rune and
// the index immediately after the consumed hex digits.
func decodeUnicodeEscape(buf []byte, i int) (rune, int, error) {
	hi, ni, err := readHex4(buf, i)
	if err != nil {
		return 0, ni, err
	}
	if hi < 0xD800 || hi > 0xDFFF {
		return rune(hi), ni, nil
	}
	if hi > 0xDBFF {
		// A low surrogate cannot appear on its own.
		return 0, ni, newError(buf, i, InvalidUnicodeCodePoint)
	}
	// hi is a high surrogate: require an immediately following \uYYYY low
	// surrogate to combine into one scalar value.
	if ni >= len(buf) {
		return 0, ni, newError(buf, ni, EOFWhileParsingString)
	}
	if buf[ni] != '\\' {
		return 0, ni, newError(buf, ni, InvalidUnicodeCodePoint)
	}
	if ni+1 >= len(buf) {
		return 0, len(buf), newError(buf, len(buf), EOFWhileParsingString)
	}
	if buf[ni+1] != 'u' {
		return 0, ni, newError(buf, ni, InvalidUnicodeCodePoint)
	}
	lo, nj, err := readHex4(buf, ni+2)
	if err != nil {
		return 0, nj, err
	}
	if lo < 0xDC00 || lo > 0xDFFF {
		return 0, nj, newError(buf, ni, InvalidUnicodeCodePoint)
	}
	r := rune(0x10000 + (hi-0xD800)*0x400 + (lo - 0xDC00))
	return r, nj, nil
}

// skipString advances c past a string literal without allocating a decoded
// buffer for it. It still validates control characters, escape syntax, and
// UTF-8, since the skip path must reject malformed input exactly as the
// full decoder would.
func skipString(c *cursor) error {
	buf := c.buf
	if !c.eat('"') {
		return newError(buf, c.pos, ExpectedSomeValue)
	}
	for {
		if c.pos >= len(buf) {
			return newError(buf, c.pos, EOFWhileParsingString)
		}
		b := buf[c.pos]
		switch {
		case b == '"':
			c.advance()
			return nil
		case b == '\\':
			c.advance()
			if c.pos >= len(buf) {
				return newError(buf, c.pos, EOFWhileParsingString)
			}
			esc := buf[c.pos]
			switch esc {
			case '"', '\\', '/', 'b', 'f', 'n', 'r', 't':
				c.advance()
			case 'u':
				c.advance()
				if _, next, err := decodeUnicodeEscape(buf, c.pos); err != nil {
					c.pos = next
					return err
				} else {
					c.pos = next
				}
			default:
				return newError(buf, c.pos, InvalidEscape)
			}
		case b < 0x20:
			return newError(buf, c.pos, ControlCharacterInString)
		case b < 0x80:
			c.advance()
		default:
			r, n := utf8.DecodeRune(buf[c.pos:])
			if r == utf8.RuneError && n <= 1 {
				return newError(buf, c.pos, InvalidString)
			}
			c.pos += n
		}
	}
}

func readHex4(buf []byte, i int) (rune, int, error) {
	if i+4 > len(buf) {
		return 0, len(buf), newError(buf, len(buf), EOFWhileParsingString)
	}
	var v rune
	for _, b := range buf[i : i+4] {
		v <<= 4
		switch {
		case b >= '0' && b <= '9':
			v |= rune(b - '0')
		case b >= 'a' && b <= 'f':
			v |= rune(b-'a') + 10
		case b >= 'A' && b <= 'F':
			v |= rune(b-'A') + 10
		default:
			return 0, i, newError(buf, i, InvalidEscape)
		}
	}
	return v, i + 4, nil
}
