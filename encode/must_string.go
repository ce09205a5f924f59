package encode

import (
	"bytes"
	"strings"

	"github.com/fieldsense/go-json/ir"
)

func MustString(v *ir.Value) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(v, buf, Default()); err != nil {
		panic(err)
	}
	return strings.TrimSpace(buf.String())
}
