package encode

import (
	"fmt"

	"github.com/fieldsense/go-json/diag"
)

// NumberFormat selects how numbers render.
type NumberFormat int

const (
	// NumberAuto uses scientific notation for very small or very large
	// magnitudes and fixed decimal notation otherwise.
	NumberAuto NumberFormat = iota
	NumberDecimal
	NumberScientific
	// NumberShortest renders the shortest text that round-trips the
	// value exactly, ignoring Precision.
	NumberShortest
)

var numberFormatNames = map[NumberFormat]string{
	NumberAuto:       "auto",
	NumberDecimal:    "decimal",
	NumberScientific: "scientific",
	NumberShortest:   "shortest",
}

func (f NumberFormat) String() string {
	s, ok := numberFormatNames[f]
	if !ok {
		return fmt.Sprintf("NumberFormat(%d)", int(f))
	}
	return s
}

// Config controls the textual style of encoded output. The zero value
// is not useful; start from one of the presets.
type Config struct {
	Indent           string
	LineEnd          string
	SpacesAfterColon int
	SpacesAfterComma int
	// MaxInlineLength bounds the rendered length of an inlined simple
	// array; longer arrays fall back to one element per line. Zero
	// means no bound.
	MaxInlineLength    int
	NumberFormat       NumberFormat
	Precision          int
	InlineSimpleArrays bool
	SortKeys           bool

	// Colors, when non-nil, wraps tokens in terminal color escapes.
	// Colored output is for display only and is not valid JSON input.
	Colors *Palette
}

// Default is the general-purpose style: 2-space indent, one space
// after colons and commas, auto numbers at precision 6, simple arrays
// inlined up to 80 columns, keys in insertion order.
func Default() *Config {
	return &Config{
		Indent:             "  ",
		LineEnd:            "\n",
		SpacesAfterColon:   1,
		SpacesAfterComma:   1,
		MaxInlineLength:    80,
		NumberFormat:       NumberAuto,
		Precision:          6,
		InlineSimpleArrays: true,
	}
}

// Compact emits no whitespace at all and shortest-form numbers, which
// makes it the round-trip style: parse(Compact(v)) == v exactly.
func Compact() *Config {
	return &Config{
		NumberFormat:       NumberShortest,
		Precision:          6,
		InlineSimpleArrays: true,
	}
}

// Pretty is the display style: 4-space indent, sorted keys, a shorter
// inline threshold.
func Pretty() *Config {
	return &Config{
		Indent:             "    ",
		LineEnd:            "\n",
		SpacesAfterColon:   1,
		SpacesAfterComma:   1,
		MaxInlineLength:    60,
		NumberFormat:       NumberAuto,
		Precision:          6,
		InlineSimpleArrays: true,
		SortKeys:           true,
	}
}

func (c *Config) check() *diag.Error {
	if c.SpacesAfterColon < 0 || c.SpacesAfterComma < 0 {
		return diag.New(diag.CodeFormatInvalidConfig,
			"negative space count")
	}
	if c.MaxInlineLength < 0 {
		return diag.New(diag.CodeFormatInvalidConfig,
			"negative max inline length")
	}
	if c.Precision < 0 {
		return diag.New(diag.CodeFormatInvalidConfig,
			"negative precision")
	}
	if _, ok := numberFormatNames[c.NumberFormat]; !ok {
		return diag.New(diag.CodeFormatInvalidConfig,
			"unknown number format %d", int(c.NumberFormat))
	}
	return nil
}
