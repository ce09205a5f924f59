// Package validate checks JSON text without building a tree. It walks
// the same grammar as the parse package on the same token scanners, so
// Validate(d) == nil exactly when parse.Parse(d) succeeds.
package validate

import (
	"github.com/fieldsense/go-json/diag"
	"github.com/fieldsense/go-json/token"
)

// Validate checks a single JSON document, returning nil or the first
// diagnostic encountered.
func Validate(d []byte) error {
	c := token.NewCursor(d)
	c.SkipSpace()
	if c.EOF() {
		return c.Errf(diag.CodeInvalidValue, "empty input")
	}
	if err := checkValue(c); err != nil {
		return err
	}
	c.SkipSpace()
	if !c.EOF() {
		return c.Errf(diag.CodeUnexpectedContent,
			"unexpected content after top-level value")
	}
	return nil
}

// Valid reports whether d is a valid JSON document.
func Valid(d []byte) bool {
	return Validate(d) == nil
}

func checkValue(c *token.Cursor) *diag.Error {
	switch b := c.Peek(); {
	case b == '{':
		return checkObject(c)
	case b == '[':
		return checkArray(c)
	case b == '"':
		_, _, err := token.ScanString(c)
		return err
	case b == '-' || b >= '0' && b <= '9':
		// full conversion, so out-of-range lexemes fail here too
		_, err := token.ReadNumber(c)
		return err
	case b == 't':
		return keyword(c, "true")
	case b == 'f':
		return keyword(c, "false")
	case b == 'n':
		return keyword(c, "null")
	case c.EOF():
		return c.Errf(diag.CodeInvalidValue, "unexpected end of input")
	default:
		return c.Errf(diag.CodeInvalidValue, "unexpected character %q", b)
	}
}

func keyword(c *token.Cursor, kw string) *diag.Error {
	if !c.HasPrefix(kw) {
		return c.Errf(diag.CodeInvalidValue, "expected %q", kw)
	}
	c.Advance(len(kw))
	return nil
}

func checkArray(c *token.Cursor) *diag.Error {
	if err := c.Enter(); err != nil {
		return err
	}
	defer c.Leave()
	c.Advance(1)
	c.SkipSpace()
	if c.Peek() == ']' {
		c.Advance(1)
		return nil
	}
	for {
		c.SkipSpace()
		if err := checkValue(c); err != nil {
			return err
		}
		c.SkipSpace()
		switch {
		case c.Peek() == ',':
			c.Advance(1)
			c.SkipSpace()
			if c.Peek() == ']' {
				return c.Errf(diag.CodeExpectedCommaOrBracket,
					"trailing comma before ']'")
			}
		case c.Peek() == ']':
			c.Advance(1)
			return nil
		case c.EOF():
			return c.Errf(diag.CodeExpectedCommaOrBracket,
				"unexpected end of input in array")
		default:
			return c.Errf(diag.CodeExpectedCommaOrBracket,
				"expected ',' or ']' in array")
		}
	}
}

func checkObject(c *token.Cursor) *diag.Error {
	if err := c.Enter(); err != nil {
		return err
	}
	defer c.Leave()
	c.Advance(1)
	c.SkipSpace()
	if c.Peek() == '}' {
		c.Advance(1)
		return nil
	}
	for {
		c.SkipSpace()
		if c.Peek() != '"' {
			if c.EOF() {
				return c.Errf(diag.CodeExpectedKey,
					"unexpected end of input in object")
			}
			return c.Errf(diag.CodeExpectedKey, "expected object key")
		}
		if _, _, err := token.ScanString(c); err != nil {
			return err
		}
		c.SkipSpace()
		if c.Peek() != ':' {
			return c.Errf(diag.CodeExpectedColon, "expected ':' after object key")
		}
		c.Advance(1)
		c.SkipSpace()
		if err := checkValue(c); err != nil {
			return err
		}
		c.SkipSpace()
		switch {
		case c.Peek() == ',':
			c.Advance(1)
			c.SkipSpace()
			if c.Peek() == '}' {
				return c.Errf(diag.CodeExpectedCommaOrBrace,
					"trailing comma before '}'")
			}
		case c.Peek() == '}':
			c.Advance(1)
			return nil
		case c.EOF():
			return c.Errf(diag.CodeExpectedCommaOrBrace,
				"unexpected end of input in object")
		default:
			return c.Errf(diag.CodeExpectedCommaOrBrace,
				"expected ',' or '}' in object")
		}
	}
}
