package jsonio

import (
	"bufio"
	"io"
	"strings"

	"github.com/fieldsense/go-json/diag"
	"github.com/fieldsense/go-json/ir"
	"github.com/fieldsense/go-json/parse"
)

// Reader iterates over newline-delimited JSON documents. Blank lines
// are skipped. Each call to Next parses one document; io.EOF signals a
// clean end of input.
type Reader struct {
	s    *bufio.Scanner
	line int
}

func NewReader(r io.Reader) *Reader {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	return &Reader{s: s}
}

// Next returns the next document, or io.EOF when the input ends.
func (r *Reader) Next() (*ir.Value, error) {
	for r.s.Scan() {
		r.line++
		text := strings.TrimSpace(r.s.Text())
		if text == "" {
			continue
		}
		v, err := parse.ParseString(text)
		if err != nil {
			return nil, diag.Wrap(diag.CodeFileRead, err,
				"document on line %d", r.line)
		}
		return v, nil
	}
	if err := r.s.Err(); err != nil {
		return nil, diag.Wrap(diag.CodeFileRead, err, "read stream")
	}
	return nil, io.EOF
}

// Line reports the 1-based input line of the last document returned.
func (r *Reader) Line() int {
	return r.line
}
