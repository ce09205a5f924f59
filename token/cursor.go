// Package token provides the input cursor and the scanners shared by the
// parser and the validator. Both walk the same grammar; keeping the
// string and number scanning here is what guarantees they accept the
// same language.
package token

import (
	"github.com/fieldsense/go-json/diag"
)

// MaxNestingDepth bounds how many arrays/objects may be open at once
// during a parse or validation walk.
const MaxNestingDepth = 32

// Cursor tracks a position in an input document along with the current
// container nesting level.
type Cursor struct {
	d     []byte
	off   int
	line  int
	col   int
	depth int
}

func NewCursor(d []byte) *Cursor {
	return &Cursor{d: d, line: 1, col: 1}
}

func (c *Cursor) EOF() bool {
	return c.off >= len(c.d)
}

// Peek returns the byte under the cursor, or 0 at end of input.
func (c *Cursor) Peek() byte {
	if c.off >= len(c.d) {
		return 0
	}
	return c.d[c.off]
}

// Advance moves the cursor n bytes forward, maintaining line/col.
func (c *Cursor) Advance(n int) {
	for i := 0; i < n && c.off < len(c.d); i++ {
		if c.d[c.off] == '\n' {
			c.line++
			c.col = 1
		} else {
			c.col++
		}
		c.off++
	}
}

func (c *Cursor) SkipSpace() {
	for !c.EOF() {
		switch c.d[c.off] {
		case ' ', '\t', '\n', '\r':
			c.Advance(1)
		default:
			return
		}
	}
}

// HasPrefix reports whether the input at the cursor starts with s.
func (c *Cursor) HasPrefix(s string) bool {
	if c.off+len(s) > len(c.d) {
		return false
	}
	return string(c.d[c.off:c.off+len(s)]) == s
}

func (c *Cursor) Pos() Pos {
	return Pos{Off: c.off, Line: c.line, Col: c.col}
}

// Enter records entry into a container, failing once the nesting bound
// is reached. Every Enter must be paired with a Leave on both the
// success and failure paths.
func (c *Cursor) Enter() *diag.Error {
	if c.depth >= MaxNestingDepth {
		return c.Errf(diag.CodeMaxNesting, "maximum nesting depth %d exceeded", MaxNestingDepth)
	}
	c.depth++
	return nil
}

func (c *Cursor) Leave() {
	c.depth--
}

// Errf builds a diagnostic at the cursor's position.
func (c *Cursor) Errf(code diag.Code, format string, args ...any) *diag.Error {
	return c.ErrfAt(c.Pos(), code, format, args...)
}

// ErrfAt builds a diagnostic at a previously captured position.
func (c *Cursor) ErrfAt(p Pos, code diag.Code, format string, args ...any) *diag.Error {
	e := diag.New(code, format, args...)
	e.Line = p.Line
	e.Col = p.Col
	e.Context = Context(c.d, p.Off)
	return e
}
