package token

import (
	"strings"
	"testing"

	"github.com/fieldsense/go-json/diag"
)

func TestCursorLineCol(t *testing.T) {
	c := NewCursor([]byte("ab\ncd"))
	if p := c.Pos(); p.Line != 1 || p.Col != 1 {
		t.Fatalf("start pos = %+v", p)
	}
	c.Advance(3)
	if p := c.Pos(); p.Line != 2 || p.Col != 1 {
		t.Errorf("after newline pos = %+v", p)
	}
	c.Advance(1)
	if p := c.Pos(); p.Line != 2 || p.Col != 2 {
		t.Errorf("pos = %+v", p)
	}
}

func TestCursorEnterLeave(t *testing.T) {
	c := NewCursor(nil)
	for i := 0; i < MaxNestingDepth; i++ {
		if err := c.Enter(); err != nil {
			t.Fatalf("Enter %d: %v", i+1, err)
		}
	}
	err := c.Enter()
	if err == nil {
		t.Fatal("Enter past bound succeeded")
	}
	if err.Code != diag.CodeMaxNesting {
		t.Errorf("code = %v", err.Code)
	}
	c.Leave()
	if err := c.Enter(); err != nil {
		t.Errorf("Enter after Leave: %v", err)
	}
}

func TestContextSnippet(t *testing.T) {
	d := []byte(strings.Repeat("x", 100))
	s := Context(d, 50)
	if !strings.HasPrefix(s, "...") || !strings.HasSuffix(s, "...") {
		t.Errorf("mid-document snippet missing markers: %q", s)
	}
	s = Context(d, 0)
	if strings.HasPrefix(s, "...") {
		t.Errorf("start-of-document snippet has leading marker: %q", s)
	}
	if !strings.HasSuffix(s, "...") {
		t.Errorf("start-of-document snippet missing trailing marker: %q", s)
	}
	s = Context([]byte("tiny"), 2)
	if s != "tiny" {
		t.Errorf("short document snippet = %q", s)
	}
}

func TestScanNumber(t *testing.T) {
	good := []string{"0", "-0", "7", "123", "0.5", "-12.25", "1e3", "1E+3", "2.5e-2"}
	for _, in := range good {
		c := NewCursor([]byte(in))
		lex, err := ScanNumber(c)
		if err != nil {
			t.Errorf("ScanNumber(%q): %v", in, err)
			continue
		}
		if string(lex) != in {
			t.Errorf("ScanNumber(%q) lexeme = %q", in, lex)
		}
	}
	bad := []string{"01", "00", "-", "-.5", ".5", "1.", "1e", "1e+"}
	for _, in := range bad {
		c := NewCursor([]byte(in))
		if _, err := ScanNumber(c); err == nil && c.EOF() {
			t.Errorf("ScanNumber(%q) consumed all input without error", in)
		}
	}
}

func TestReadNumberRange(t *testing.T) {
	c := NewCursor([]byte("1e999"))
	_, err := ReadNumber(c)
	if err == nil {
		t.Fatal("1e999 accepted")
	}
	if err.Code != diag.CodeInvalidNumberInfinity {
		t.Errorf("code = %v", err.Code)
	}
}

func TestReadString(t *testing.T) {
	c := NewCursor([]byte(`"a\tb" tail`))
	s, err := ReadString(c)
	if err != nil {
		t.Fatal(err)
	}
	if s != "a\tb" {
		t.Errorf("got %q", s)
	}
	if c.Peek() != ' ' {
		t.Errorf("cursor not after closing quote: %q", c.Peek())
	}
}

func TestScanStringNoDecode(t *testing.T) {
	c := NewCursor([]byte(`"a\u0041b"`))
	raw, size, err := ScanString(c)
	if err != nil {
		t.Fatal(err)
	}
	if string(raw) != `a\u0041b` {
		t.Errorf("raw = %q", raw)
	}
	if got := DecodeString(raw, size); got != "aAb" {
		t.Errorf("decoded = %q", got)
	}
}
