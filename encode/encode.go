package encode

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/fieldsense/go-json/diag"
	"github.com/fieldsense/go-json/ir"
)

type encState struct {
	w     io.Writer
	cfg   *Config
	depth int
}

// Encode writes v to w in the style described by cfg. A nil cfg means
// Default. A final LineEnd is appended when LineEnd is nonempty.
// Encoding is a pure function of the tree and the config.
func Encode(v *ir.Value, w io.Writer, cfg *Config) error {
	if cfg == nil {
		cfg = Default()
	}
	if err := cfg.check(); err != nil {
		return err
	}
	if v == nil {
		return diag.New(diag.CodeFormatNullInput, "encode of nil value")
	}
	e := &encState{w: w, cfg: cfg}
	if err := e.value(v); err != nil {
		return err
	}
	if cfg.LineEnd != "" {
		return e.write(cfg.LineEnd)
	}
	return nil
}

// String encodes v into a string.
func String(v *ir.Value, cfg *Config) (string, error) {
	var b strings.Builder
	if err := Encode(v, &b, cfg); err != nil {
		return "", err
	}
	return b.String(), nil
}

func (e *encState) value(v *ir.Value) error {
	switch v.Type {
	case ir.NullType:
		return e.write(e.paint(NullColor, "null"))
	case ir.BoolType:
		s := "false"
		if v.Bool {
			s = "true"
		}
		return e.write(e.paint(BoolColor, s))
	case ir.NumberType:
		s, err := formatNumber(v.Number, e.cfg)
		if err != nil {
			return err
		}
		return e.write(e.paint(NumberColor, s))
	case ir.StringType:
		return e.write(e.paint(StringColor, Quote(v.String)))
	case ir.ArrayType:
		return e.array(v)
	case ir.ObjectType:
		return e.object(v)
	}
	return diag.New(diag.CodeInvalidValue, "cannot encode %s value", v.Type)
}

func (e *encState) array(v *ir.Value) error {
	if len(v.Values) == 0 {
		return e.write(e.paint(PunctColor, "[]"))
	}
	if e.cfg.InlineSimpleArrays && simpleArray(v) {
		ok := true
		if e.cfg.MaxInlineLength > 0 {
			s, err := inlineText(v, e.cfg)
			if err != nil {
				return err
			}
			ok = len(s) <= e.cfg.MaxInlineLength
		}
		if ok {
			return e.inlineArray(v)
		}
	}
	if err := e.write(e.paint(PunctColor, "[")); err != nil {
		return err
	}
	e.depth++
	for i, el := range v.Values {
		if i > 0 {
			if err := e.write(e.paint(PunctColor, ",")); err != nil {
				return err
			}
		}
		if err := e.newline(); err != nil {
			return err
		}
		if err := e.value(el); err != nil {
			return err
		}
	}
	e.depth--
	if err := e.newline(); err != nil {
		return err
	}
	return e.write(e.paint(PunctColor, "]"))
}

func (e *encState) inlineArray(v *ir.Value) error {
	if err := e.write(e.paint(PunctColor, "[")); err != nil {
		return err
	}
	sep := strings.Repeat(" ", e.cfg.SpacesAfterComma)
	for i, el := range v.Values {
		if i > 0 {
			if err := e.write(e.paint(PunctColor, ",") + sep); err != nil {
				return err
			}
		}
		if err := e.value(el); err != nil {
			return err
		}
	}
	return e.write(e.paint(PunctColor, "]"))
}

func (e *encState) object(v *ir.Value) error {
	keys := v.Keys()
	if len(keys) == 0 {
		return e.write(e.paint(PunctColor, "{}"))
	}
	if e.cfg.SortKeys {
		slices.Sort(keys)
	}
	if err := e.write(e.paint(PunctColor, "{")); err != nil {
		return err
	}
	e.depth++
	colon := e.paint(PunctColor, ":") + strings.Repeat(" ", e.cfg.SpacesAfterColon)
	for i, k := range keys {
		if i > 0 {
			if err := e.write(e.paint(PunctColor, ",")); err != nil {
				return err
			}
		}
		if err := e.newline(); err != nil {
			return err
		}
		if err := e.write(e.paint(KeyColor, Quote(k)) + colon); err != nil {
			return err
		}
		if err := e.value(v.Get(k)); err != nil {
			return err
		}
	}
	e.depth--
	if err := e.newline(); err != nil {
		return err
	}
	return e.write(e.paint(PunctColor, "}"))
}

func (e *encState) write(s string) error {
	if _, err := io.WriteString(e.w, s); err != nil {
		return diag.Wrap(diag.CodeFileWrite, err, "write output")
	}
	return nil
}

func (e *encState) newline() error {
	return e.write(e.cfg.LineEnd + strings.Repeat(e.cfg.Indent, e.depth))
}

func (e *encState) paint(a ColorAttr, s string) string {
	if e.cfg.Colors == nil {
		return s
	}
	return e.cfg.Colors.Color(a, s)
}

// simpleArray reports whether every element is a leaf.
func simpleArray(v *ir.Value) bool {
	for _, el := range v.Values {
		if !el.Type.IsLeaf() {
			return false
		}
	}
	return true
}

// inlineText renders an inline array without colors, for measuring
// against MaxInlineLength. Color escapes would inflate the count.
func inlineText(v *ir.Value, cfg *Config) (string, error) {
	plain := *cfg
	plain.Colors = nil
	var buf bytes.Buffer
	e := &encState{w: &buf, cfg: &plain}
	if err := e.inlineArray(v); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func formatNumber(f float64, cfg *Config) (string, *diag.Error) {
	if math.IsNaN(f) {
		return "", diag.New(diag.CodeFormatInvalidNumberNaN, "cannot encode nan")
	}
	if math.IsInf(f, 0) {
		return "", diag.New(diag.CodeFormatInvalidNumberInfinity, "cannot encode infinity")
	}
	switch cfg.NumberFormat {
	case NumberShortest:
		return strconv.FormatFloat(f, 'g', -1, 64), nil
	case NumberDecimal:
		return strconv.FormatFloat(f, 'f', cfg.Precision, 64), nil
	case NumberScientific:
		return strconv.FormatFloat(f, 'e', cfg.Precision, 64), nil
	default:
		if math.Abs(f) < 1e-4 || math.Abs(f) > 1e5 {
			return strconv.FormatFloat(f, 'e', cfg.Precision, 64), nil
		}
		return strconv.FormatFloat(f, 'f', cfg.Precision, 64), nil
	}
}

// Quote renders s as a quoted JSON string: the seven named escapes,
// \u00xx for remaining control characters, everything else verbatim.
func Quote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if c < 0x20 {
				fmt.Fprintf(&b, `\u%04x`, c)
			} else {
				b.WriteByte(c)
			}
		}
	}
	b.WriteByte('"')
	return b.String()
}
