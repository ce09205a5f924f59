// Package json is the convenience surface of the module: parse,
// validate and format in one import. The subpackages carry the full
// APIs; ir for the value model, parse, validate, encode and jsonio.
package json

import (
	"io"

	"github.com/fieldsense/go-json/debug"
	"github.com/fieldsense/go-json/encode"
	"github.com/fieldsense/go-json/ir"
	"github.com/fieldsense/go-json/parse"
	"github.com/fieldsense/go-json/validate"
)

func Parse(d []byte) (*ir.Value, error) {
	return parse.Parse(d)
}

func ParseString(s string) (*ir.Value, error) {
	return parse.ParseString(s)
}

func Validate(d []byte) error {
	return validate.Validate(d)
}

func Valid(d []byte) bool {
	return validate.Valid(d)
}

func Format(v *ir.Value, w io.Writer, cfg *encode.Config) error {
	if debug.Encode() {
		debug.Logf("format: %v\n", v)
	}
	return encode.Encode(v, w, cfg)
}

func FormatString(v *ir.Value, cfg *encode.Config) (string, error) {
	if debug.Encode() {
		debug.Logf("format: %v\n", v)
	}
	return encode.String(v, cfg)
}
