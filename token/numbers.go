package token

import (
	"math"
	"strconv"

	"github.com/fieldsense/go-json/diag"
)

// ScanNumber consumes a number at the cursor and returns its lexeme.
// Grammar per RFC 8259: optional '-', a single '0' or a nonzero digit
// run, an optional fraction of one or more digits, an optional exponent
// with one or more digits. Leading zeros are rejected.
func ScanNumber(c *Cursor) ([]byte, *diag.Error) {
	start := c.off
	if c.Peek() == '-' {
		c.Advance(1)
		if !asciiDigit(c.Peek()) {
			return nil, c.Errf(diag.CodeInvalidNumber, "expected digit after minus sign")
		}
	}
	switch {
	case c.Peek() == '0':
		c.Advance(1)
		if asciiDigit(c.Peek()) {
			return nil, c.Errf(diag.CodeInvalidNumber, "leading zeros are not allowed")
		}
	case asciiDigit(c.Peek()):
		for asciiDigit(c.Peek()) {
			c.Advance(1)
		}
	default:
		return nil, c.Errf(diag.CodeInvalidNumber, "expected digit")
	}
	if c.Peek() == '.' {
		c.Advance(1)
		if !asciiDigit(c.Peek()) {
			return nil, c.Errf(diag.CodeInvalidNumber, "expected digit after decimal point")
		}
		for asciiDigit(c.Peek()) {
			c.Advance(1)
		}
	}
	if b := c.Peek(); b == 'e' || b == 'E' {
		c.Advance(1)
		if b := c.Peek(); b == '+' || b == '-' {
			c.Advance(1)
		}
		if !asciiDigit(c.Peek()) {
			return nil, c.Errf(diag.CodeInvalidNumber, "expected digit in exponent")
		}
		for asciiDigit(c.Peek()) {
			c.Advance(1)
		}
	}
	return c.d[start:c.off], nil
}

// ReadNumber scans and converts a number. A lexeme whose conversion
// yields NaN or ±Inf is a hard error: JSON text cannot encode these, so
// an unrepresentable conversion must not slip into the tree silently.
func ReadNumber(c *Cursor) (float64, *diag.Error) {
	pos := c.Pos()
	lex, err := ScanNumber(c)
	if err != nil {
		return 0, err
	}
	f, convErr := strconv.ParseFloat(string(lex), 64)
	if convErr != nil && !math.IsInf(f, 0) {
		// ParseFloat range errors still return ±Inf; anything else
		// is a scanner bug surfacing as a syntax error.
		return 0, c.ErrfAt(pos, diag.CodeInvalidNumber, "cannot convert %q", lex)
	}
	if math.IsNaN(f) {
		return 0, c.ErrfAt(pos, diag.CodeInvalidNumberNaN, "number %q converts to nan", lex)
	}
	if math.IsInf(f, 0) {
		return 0, c.ErrfAt(pos, diag.CodeInvalidNumberInfinity, "number %q overflows to infinity", lex)
	}
	return f, nil
}

func asciiDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
