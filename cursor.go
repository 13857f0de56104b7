// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jiter

// cursor is a position-tracked view over an in-memory byte slice. It never
// copies the input and never moves backward; every method that advances the
// position does so monotonically. This is the C1 Byte Cursor of the decoder:
// the low-level substrate every other component reads through.
type cursor struct {
	buf []byte
	pos int
}

func newCursor(buf []byte) cursor { return cursor{buf: buf} }

// whitespace is exactly the JSON whitespace set: space, tab, LF, CR.
func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

// skipWS advances past any run of whitespace, leaving the cursor on either
// EOF or a significant byte.
func (c *cursor) skipWS() {
	for c.pos < len(c.buf) && isSpace(c.buf[c.pos]) {
		c.pos++
	}
}

// peek returns the next significant byte after skipping whitespace, and
// whether one was available. It does not advance the cursor.
func (c *cursor) peek() (byte, bool) {
	c.skipWS()
	if c.pos >= len(c.buf) {
		return 0, false
	}
	return c.buf[c.pos], true
}

// peekByte returns the raw byte at the current position without skipping
// whitespace, for use inside literals (strings, numbers) where whitespace is
// significant or irrelevant to the caller.
func (c *cursor) peekByte() (byte, bool) {
	if c.pos >= len(c.buf) {
		return 0, false
	}
	return c.buf[c.pos], true
}

// advance consumes one byte without checking its value.
func (c *cursor) advance() { c.pos++ }

// eat advances past b if it is the current raw byte (no whitespace skip) and
// reports whether it did.
func (c *cursor) eat(b byte) bool {
	if c.pos < len(c.buf) && c.buf[c.pos] == b {
		c.pos++
		return true
	}
	return false
}

// position reports the current byte offset.
func (c *cursor) position() int { return c.pos }

// atEOF reports whether the cursor has consumed the entire input, ignoring
// any trailing whitespace.
func (c *cursor) atEOF() bool {
	c.skipWS()
	return c.pos >= len(c.buf)
}
