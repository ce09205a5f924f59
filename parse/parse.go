// Package parse turns JSON text into ir.Value trees by recursive
// descent. It accepts exactly the language the validate package
// accepts; both are built on the token package's scanners.
package parse

import (
	"github.com/fieldsense/go-json/debug"
	"github.com/fieldsense/go-json/diag"
	"github.com/fieldsense/go-json/ir"
	"github.com/fieldsense/go-json/token"
)

// Parse parses a single JSON document. Only whitespace may follow the
// top-level value. On failure the returned tree is nil; the error is a
// *diag.Error carrying line, column and an input snippet.
func Parse(d []byte) (*ir.Value, error) {
	v, err := parseDoc(d)
	if debug.Parse() {
		if err != nil {
			debug.Logf("parse: %v\n", err)
		} else {
			debug.Logf("parse: %d bytes -> %v\n", len(d), v)
		}
	}
	return v, err
}

func parseDoc(d []byte) (*ir.Value, error) {
	c := token.NewCursor(d)
	c.SkipSpace()
	if c.EOF() {
		return nil, c.Errf(diag.CodeInvalidValue, "empty input")
	}
	v, err := parseValue(c)
	if err != nil {
		return nil, err
	}
	c.SkipSpace()
	if !c.EOF() {
		return nil, c.Errf(diag.CodeUnexpectedContent,
			"unexpected content after top-level value")
	}
	return v, nil
}

func ParseString(s string) (*ir.Value, error) {
	return Parse([]byte(s))
}

func parseValue(c *token.Cursor) (*ir.Value, *diag.Error) {
	switch b := c.Peek(); {
	case b == '{':
		return parseObject(c)
	case b == '[':
		return parseArray(c)
	case b == '"':
		s, err := token.ReadString(c)
		if err != nil {
			return nil, err
		}
		return ir.FromString(s), nil
	case b == '-' || b >= '0' && b <= '9':
		f, err := token.ReadNumber(c)
		if err != nil {
			return nil, err
		}
		return ir.FromFloat(f), nil
	case b == 't':
		if err := keyword(c, "true"); err != nil {
			return nil, err
		}
		return ir.FromBool(true), nil
	case b == 'f':
		if err := keyword(c, "false"); err != nil {
			return nil, err
		}
		return ir.FromBool(false), nil
	case b == 'n':
		if err := keyword(c, "null"); err != nil {
			return nil, err
		}
		return ir.Null(), nil
	case c.EOF():
		return nil, c.Errf(diag.CodeInvalidValue, "unexpected end of input")
	default:
		return nil, c.Errf(diag.CodeInvalidValue, "unexpected character %q", b)
	}
}

func keyword(c *token.Cursor, kw string) *diag.Error {
	if !c.HasPrefix(kw) {
		return c.Errf(diag.CodeInvalidValue, "expected %q", kw)
	}
	c.Advance(len(kw))
	return nil
}

func parseArray(c *token.Cursor) (*ir.Value, *diag.Error) {
	if err := c.Enter(); err != nil {
		return nil, err
	}
	defer c.Leave()
	c.Advance(1)
	arr := ir.NewArray()
	c.SkipSpace()
	if c.Peek() == ']' {
		c.Advance(1)
		return arr, nil
	}
	for {
		c.SkipSpace()
		el, err := parseValue(c)
		if err != nil {
			return nil, err
		}
		arr.Append(el)
		c.SkipSpace()
		switch {
		case c.Peek() == ',':
			c.Advance(1)
			c.SkipSpace()
			if c.Peek() == ']' {
				return nil, c.Errf(diag.CodeExpectedCommaOrBracket,
					"trailing comma before ']'")
			}
		case c.Peek() == ']':
			c.Advance(1)
			return arr, nil
		case c.EOF():
			return nil, c.Errf(diag.CodeExpectedCommaOrBracket,
				"unexpected end of input in array")
		default:
			return nil, c.Errf(diag.CodeExpectedCommaOrBracket,
				"expected ',' or ']' in array")
		}
	}
}

func parseObject(c *token.Cursor) (*ir.Value, *diag.Error) {
	if err := c.Enter(); err != nil {
		return nil, err
	}
	defer c.Leave()
	c.Advance(1)
	obj := ir.NewObject()
	c.SkipSpace()
	if c.Peek() == '}' {
		c.Advance(1)
		return obj, nil
	}
	for {
		c.SkipSpace()
		if c.Peek() != '"' {
			if c.EOF() {
				return nil, c.Errf(diag.CodeExpectedKey,
					"unexpected end of input in object")
			}
			return nil, c.Errf(diag.CodeExpectedKey, "expected object key")
		}
		key, err := token.ReadString(c)
		if err != nil {
			return nil, err
		}
		c.SkipSpace()
		if c.Peek() != ':' {
			return nil, c.Errf(diag.CodeExpectedColon, "expected ':' after object key")
		}
		c.Advance(1)
		c.SkipSpace()
		val, err := parseValue(c)
		if err != nil {
			return nil, err
		}
		// duplicate keys normalize to last write wins
		obj.Set(key, val)
		c.SkipSpace()
		switch {
		case c.Peek() == ',':
			c.Advance(1)
			c.SkipSpace()
			if c.Peek() == '}' {
				return nil, c.Errf(diag.CodeExpectedCommaOrBrace,
					"trailing comma before '}'")
			}
		case c.Peek() == '}':
			c.Advance(1)
			return obj, nil
		case c.EOF():
			return nil, c.Errf(diag.CodeExpectedCommaOrBrace,
				"unexpected end of input in object")
		default:
			return nil, c.Errf(diag.CodeExpectedCommaOrBrace,
				"expected ',' or '}' in object")
		}
	}
}
