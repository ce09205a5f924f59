package token

import (
	"bytes"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/fieldsense/go-json/diag"
)

// ScanString consumes a quoted string at the cursor, validating escape
// syntax and rejecting raw control characters. It returns the raw bytes
// between the quotes and a worst-case decoded size (a unicode escape
// expands to at most 4 UTF-8 bytes). Decoding is a separate second pass
// so the validator can stop here.
func ScanString(c *Cursor) ([]byte, int, *diag.Error) {
	if c.Peek() != '"' {
		return nil, 0, c.Errf(diag.CodeUnexpectedChar, "expected '\"' at start of string")
	}
	c.Advance(1)
	start := c.off
	size := 0
	for {
		if c.EOF() {
			return nil, 0, c.Errf(diag.CodeUnterminatedString, "unterminated string")
		}
		b := c.d[c.off]
		switch {
		case b == '"':
			raw := c.d[start:c.off]
			c.Advance(1)
			return raw, size, nil
		case b < 0x20:
			return nil, 0, c.Errf(diag.CodeInvalidStringChar,
				"raw control character 0x%02x in string", b)
		case b == '\\':
			escPos := c.Pos()
			c.Advance(1)
			if c.EOF() {
				return nil, 0, c.Errf(diag.CodeUnterminatedString,
					"unexpected end of input after escape character")
			}
			switch c.d[c.off] {
			case '"', '\\', '/', 'b', 'f', 'n', 'r', 't':
				c.Advance(1)
				size++
			case 'u':
				c.Advance(1)
				hi, ok := hex4(c.d[c.off:])
				if !ok {
					return nil, 0, c.ErrfAt(escPos, diag.CodeInvalidUnicode,
						"expected 4 hex digits in unicode escape")
				}
				c.Advance(4)
				switch {
				case hi >= 0xDC00 && hi <= 0xDFFF:
					return nil, 0, c.ErrfAt(escPos, diag.CodeInvalidUnicode,
						"lone low surrogate \\u%04X", hi)
				case hi >= 0xD800 && hi <= 0xDBFF:
					if !(c.Peek() == '\\' && c.off+1 < len(c.d) && c.d[c.off+1] == 'u') {
						return nil, 0, c.ErrfAt(escPos, diag.CodeInvalidUnicode,
							"high surrogate \\u%04X not followed by low surrogate", hi)
					}
					c.Advance(2)
					lo, ok := hex4(c.d[c.off:])
					if !ok {
						return nil, 0, c.ErrfAt(escPos, diag.CodeInvalidUnicode,
							"expected 4 hex digits in unicode escape")
					}
					if lo < 0xDC00 || lo > 0xDFFF {
						return nil, 0, c.ErrfAt(escPos, diag.CodeInvalidUnicode,
							"high surrogate \\u%04X followed by \\u%04X", hi, lo)
					}
					c.Advance(4)
				}
				size += 4
			default:
				return nil, 0, c.Errf(diag.CodeInvalidEscape,
					"invalid escape character %q", string(rune(c.d[c.off])))
			}
		default:
			c.Advance(1)
			size++
		}
	}
}

// ReadString scans and decodes a quoted string at the cursor.
func ReadString(c *Cursor) (string, *diag.Error) {
	raw, size, err := ScanString(c)
	if err != nil {
		return "", err
	}
	return DecodeString(raw, size), nil
}

// DecodeString decodes raw string content already validated by
// ScanString. size is the worst-case output length from the scan.
func DecodeString(raw []byte, size int) string {
	if bytes.IndexByte(raw, '\\') < 0 {
		return string(raw)
	}
	b := make([]byte, 0, size)
	for i := 0; i < len(raw); {
		ch := raw[i]
		if ch != '\\' {
			b = append(b, ch)
			i++
			continue
		}
		i++
		switch raw[i] {
		case '"':
			b = append(b, '"')
			i++
		case '\\':
			b = append(b, '\\')
			i++
		case '/':
			b = append(b, '/')
			i++
		case 'b':
			b = append(b, '\b')
			i++
		case 'f':
			b = append(b, '\f')
			i++
		case 'n':
			b = append(b, '\n')
			i++
		case 'r':
			b = append(b, '\r')
			i++
		case 't':
			b = append(b, '\t')
			i++
		case 'u':
			hi, _ := hex4(raw[i+1:])
			i += 5
			r := rune(hi)
			if utf16.IsSurrogate(r) {
				// scan guarantees a valid low surrogate follows
				lo, _ := hex4(raw[i+2:])
				i += 6
				r = utf16.DecodeRune(r, rune(lo))
			}
			b = utf8.AppendRune(b, r)
		}
	}
	return string(b)
}

func hex4(d []byte) (int, bool) {
	if len(d) < 4 {
		return 0, false
	}
	v := 0
	for _, c := range d[:4] {
		v <<= 4
		switch {
		case c >= '0' && c <= '9':
			v |= int(c - '0')
		case c >= 'a' && c <= 'f':
			v |= int(c-'a') + 10
		case c >= 'A' && c <= 'F':
			v |= int(c-'A') + 10
		default:
			return 0, false
		}
	}
	return v, true
}
