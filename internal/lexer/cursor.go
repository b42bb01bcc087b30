package lexer

import (
	"fmt"
	"unicode/utf8"

	"fortio.org/safecast"

	"graft/internal/source"
)

// Cursor is a byte position inside one source file.
type Cursor struct {
	File *source.File
	Off  uint32
}

func NewCursor(f *source.File) Cursor {
	if _, err := safecast.Conv[uint32](len(f.Content)); err != nil {
		panic(fmt.Errorf("file content too large: %w", err))
	}
	return Cursor{File: f, Off: 0}
}

func (c *Cursor) limit() uint32 {
	return uint32(len(c.File.Content))
}

// EOF reports whether the cursor is past the last byte.
func (c *Cursor) EOF() bool {
	return c.Off >= c.limit()
}

// Peek returns the current byte, or 0 at EOF.
func (c *Cursor) Peek() byte {
	if c.EOF() {
		return 0
	}
	return c.File.Content[c.Off]
}

// PeekAt returns the byte n positions ahead, or 0 past EOF.
func (c *Cursor) PeekAt(n uint32) byte {
	if c.Off+n >= c.limit() {
		return 0
	}
	return c.File.Content[c.Off+n]
}

// Peek2 returns the current and next byte.
func (c *Cursor) Peek2() (b0, b1 byte, ok bool) {
	if c.Off+1 >= c.limit() {
		return 0, 0, false
	}
	return c.File.Content[c.Off], c.File.Content[c.Off+1], true
}

// Peek3 returns the current and the two following bytes.
func (c *Cursor) Peek3() (b0, b1, b2 byte, ok bool) {
	if c.Off+2 >= c.limit() {
		return 0, 0, 0, false
	}
	return c.File.Content[c.Off], c.File.Content[c.Off+1], c.File.Content[c.Off+2], true
}

// Bump advances one byte and returns it, or 0 at EOF.
func (c *Cursor) Bump() byte {
	if c.EOF() {
		return 0
	}
	b := c.File.Content[c.Off]
	c.Off++
	return b
}

// Eat consumes the next byte if it equals b.
func (c *Cursor) Eat(b byte) bool {
	if !c.EOF() && c.File.Content[c.Off] == b {
		c.Off++
		return true
	}
	return false
}

// PeekRune decodes the rune at the cursor. Size 0 means EOF.
func (c *Cursor) PeekRune() (r rune, size int) {
	if c.EOF() {
		return 0, 0
	}
	return utf8.DecodeRune(c.File.Content[c.Off:])
}

// BumpRune advances past one rune and returns it.
func (c *Cursor) BumpRune() (r rune, size int) {
	r, size = c.PeekRune()
	c.Off += uint32(size)
	return r, size
}

// Mark is a saved cursor position for span construction and rewinding.
type Mark uint32

func (c *Cursor) Mark() Mark {
	return Mark(c.Off)
}

// SpanFrom builds the span covering [m, current).
func (c *Cursor) SpanFrom(m Mark) source.Span {
	return source.Span{
		File:  c.File.ID,
		Start: uint32(m),
		End:   c.Off,
	}
}

// Reset rewinds the cursor to a previously saved mark.
func (c *Cursor) Reset(m Mark) {
	c.Off = uint32(m)
}
