/*
File    : rlox/internal/lexer/cursor.go
Package : lexer
*/

// Package lexer turns rlox source text into a stream of Tokens.
package lexer

import "unicode/utf8"

// eofRune is returned by Cursor when the source is exhausted. It is not a
// valid rlox character, so callers can compare against it directly.
const eofRune = rune(0)

// Cursor is a peek-2 reader over source text. It knows nothing about rlox
// syntax, it only knows how to look at, and consume, runes one at a time.
// The lexer builds tokens on top of it.
type Cursor struct {
	src      string
	pos      int // byte offset of the next unread rune
	consumed int // byte offset marking the start of the token in progress
	line     int
	column   int
}

// NewCursor creates a Cursor positioned at the start of src.
func NewCursor(src string) *Cursor {
	return &Cursor{src: src, pos: 0, consumed: 0, line: 1, column: 1}
}

// first returns the current rune without consuming it, or eofRune at EOF.
func (c *Cursor) first() rune {
	r, _ := c.runeAt(c.pos)
	return r
}

// second returns the rune after the current one without consuming either,
// or eofRune if there isn't one.
func (c *Cursor) second() rune {
	_, size := c.runeAt(c.pos)
	r, _ := c.runeAt(c.pos + size)
	return r
}

func (c *Cursor) runeAt(pos int) (rune, int) {
	if pos >= len(c.src) {
		return eofRune, 0
	}
	r, size := utf8.DecodeRuneInString(c.src[pos:])
	return r, size
}

// isEOF reports whether the cursor has consumed the entire source.
func (c *Cursor) isEOF() bool {
	return c.pos >= len(c.src)
}

// bump consumes and returns the current rune, advancing line/column
// bookkeeping. It returns (0, false) at EOF.
func (c *Cursor) bump() (rune, bool) {
	r, size := c.runeAt(c.pos)
	if size == 0 {
		return 0, false
	}
	c.pos += size
	if r == '\n' {
		c.line++
		c.column = 1
	} else {
		c.column++
	}
	return r, true
}

// eatWhile consumes runes while pred holds and the cursor is not at EOF.
func (c *Cursor) eatWhile(pred func(rune) bool) {
	for !c.isEOF() && pred(c.first()) {
		c.bump()
	}
}

// lenConsumed returns the number of bytes consumed since the last reset.
func (c *Cursor) lenConsumed() int {
	return c.pos - c.consumed
}

// resetLenConsumed marks the current position as the start of a new token.
func (c *Cursor) resetLenConsumed() {
	c.consumed = c.pos
}
