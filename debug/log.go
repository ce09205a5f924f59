package debug

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/fieldsense/go-json/encode"
	"github.com/fieldsense/go-json/ir"
)

var out io.Writer = os.Stderr

// SetOutput redirects traces; the default is stderr.
func SetOutput(w io.Writer) {
	out = w
}

// Tree wraps an ir.Value so Logf renders it as compact JSON.
type Tree struct{ *ir.Value }

func (t Tree) String() string {
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(t.Value, buf, encode.Compact()); err != nil {
		return fmt.Sprintf("[raw *ir.Value] %v", t.Value)
	}
	return buf.String()
}

func Logf(msg string, args ...any) {
	for i := range args {
		if x, ok := args[i].(*ir.Value); ok {
			args[i] = Tree{x}
		}
	}
	fmt.Fprintf(out, msg, args...)
}
