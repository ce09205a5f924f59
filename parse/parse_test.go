package parse

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/fieldsense/go-json/debug"
	"github.com/fieldsense/go-json/diag"
	"github.com/fieldsense/go-json/ir"
)

func mustParse(t *testing.T, s string) *ir.Value {
	t.Helper()
	v, err := ParseString(s)
	if err != nil {
		t.Fatalf("ParseString(%q): %v", s, err)
	}
	return v
}

func TestParseScalars(t *testing.T) {
	tests := []struct {
		in   string
		want *ir.Value
	}{
		{"null", ir.Null()},
		{"true", ir.FromBool(true)},
		{"false", ir.FromBool(false)},
		{"0", ir.FromFloat(0)},
		{"-0", ir.FromFloat(0)},
		{"0.5", ir.FromFloat(0.5)},
		{"-12.25", ir.FromFloat(-12.25)},
		{"1e3", ir.FromFloat(1000)},
		{"2.5E-2", ir.FromFloat(0.025)},
		{`""`, ir.FromString("")},
		{`"hi"`, ir.FromString("hi")},
		{"  null  ", ir.Null()},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got := mustParse(t, tc.in)
			if !ir.Equal(got, tc.want) {
				t.Errorf("got %v value, want %v", got.Type, tc.want.Type)
			}
		})
	}
}

func TestParseObject(t *testing.T) {
	v := mustParse(t, `{"name": "Alice", "age": 30, "tags": ["a", "b"]}`)
	if v.Type != ir.ObjectType {
		t.Fatalf("type = %v, want object", v.Type)
	}
	keys := v.Keys()
	if len(keys) != 3 || keys[0] != "name" || keys[1] != "age" || keys[2] != "tags" {
		t.Errorf("keys = %v, want [name age tags]", keys)
	}
	if got := v.Get("name").String; got != "Alice" {
		t.Errorf("name = %q", got)
	}
	if got := v.Get("age").Number; got != 30 {
		t.Errorf("age = %v", got)
	}
	if got := v.Get("tags").Len(); got != 2 {
		t.Errorf("len(tags) = %d", got)
	}
}

func TestParseDuplicateKeysLastWins(t *testing.T) {
	v := mustParse(t, `{"a": 1, "a": 2}`)
	if v.Len() != 1 {
		t.Fatalf("len = %d, want 1", v.Len())
	}
	if got := v.Get("a").Number; got != 2 {
		t.Errorf("a = %v, want 2", got)
	}
}

func TestParseStringEscapes(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"named escapes", `"\" \\ \/ \b \f \n \r \t"`, "\" \\ / \b \f \n \r \t"},
		{"unicode ascii", `"\u0041"`, "A"},
		{"unicode latin1", `"\u00e9"`, "é"},
		{"unicode bmp", `"\u2603"`, "☃"},
		{"surrogate pair", `"\uD83D\uDE00"`, "😀"},
		{"surrogate pair lowercase", `"\ud83d\ude00"`, "😀"},
		{"raw multibyte", `"snow☃man"`, "snow☃man"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v := mustParse(t, tc.in)
			if v.String != tc.want {
				t.Errorf("got %q, want %q", v.String, tc.want)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		code diag.Code
	}{
		{"empty", "", diag.CodeInvalidValue},
		{"blank", "   ", diag.CodeInvalidValue},
		{"bare word", "nope", diag.CodeInvalidValue},
		{"truncated keyword", "tru", diag.CodeInvalidValue},
		{"leading zero", "01", diag.CodeInvalidNumber},
		{"leading zero fraction", "01.5", diag.CodeInvalidNumber},
		{"bare minus", "-", diag.CodeInvalidNumber},
		{"bare fraction", "1.", diag.CodeInvalidNumber},
		{"bare exponent", "1e", diag.CodeInvalidNumber},
		{"overflow", "1e999", diag.CodeInvalidNumberInfinity},
		{"unterminated string", `"abc`, diag.CodeUnterminatedString},
		{"raw control char", "\"a\nb\"", diag.CodeInvalidStringChar},
		{"bad escape", `"\x"`, diag.CodeInvalidEscape},
		{"short unicode", `"\u12"`, diag.CodeInvalidUnicode},
		{"lone high surrogate", `"\uD83D"`, diag.CodeInvalidUnicode},
		{"lone low surrogate", `"\uDE00"`, diag.CodeInvalidUnicode},
		{"high then non-low", `"\uD83DA"`, diag.CodeInvalidUnicode},
		{"trailing comma array", "[1, 2,]", diag.CodeExpectedCommaOrBracket},
		{"trailing comma object", `{"a": 1,}`, diag.CodeExpectedCommaOrBrace},
		{"missing comma array", "[1 2]", diag.CodeExpectedCommaOrBracket},
		{"unclosed array", "[1, 2", diag.CodeExpectedCommaOrBracket},
		{"unquoted key", "{a: 1}", diag.CodeExpectedKey},
		{"missing colon", `{"a" 1}`, diag.CodeExpectedColon},
		{"unclosed object", `{"a": 1`, diag.CodeExpectedCommaOrBrace},
		{"trailing content", "null x", diag.CodeUnexpectedContent},
		{"two values", "1 2", diag.CodeUnexpectedContent},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v, err := ParseString(tc.in)
			if err == nil {
				t.Fatalf("ParseString(%q) succeeded", tc.in)
			}
			if v != nil {
				t.Error("failed parse returned a tree")
			}
			if got := diag.CodeOf(err); got != tc.code {
				t.Errorf("code = %v, want %v", got, tc.code)
			}
		})
	}
}

func TestParseErrorPosition(t *testing.T) {
	_, err := ParseString("{\n  \"a\": nope\n}")
	if err == nil {
		t.Fatal("parse succeeded")
	}
	var de *diag.Error
	if !errors.As(err, &de) {
		t.Fatalf("error is %T, want *diag.Error", err)
	}
	if de.Line != 2 {
		t.Errorf("line = %d, want 2", de.Line)
	}
	if de.Col != 8 {
		t.Errorf("col = %d, want 8", de.Col)
	}
	if de.Context == "" {
		t.Error("empty context snippet")
	}
}

func TestParseNestingBound(t *testing.T) {
	ok := strings.Repeat("[", 32) + strings.Repeat("]", 32)
	if _, err := ParseString(ok); err != nil {
		t.Errorf("32 levels rejected: %v", err)
	}
	deep := strings.Repeat("[", 33) + strings.Repeat("]", 33)
	_, err := ParseString(deep)
	if err == nil {
		t.Fatal("33 levels accepted")
	}
	if got := diag.CodeOf(err); got != diag.CodeMaxNesting {
		t.Errorf("code = %v, want %v", got, diag.CodeMaxNesting)
	}
}

func TestParseMixedNestingBound(t *testing.T) {
	in := strings.Repeat(`{"a":[`, 16) + "1" + strings.Repeat("]}", 16)
	if _, err := ParseString(in); err != nil {
		t.Errorf("32 mixed levels rejected: %v", err)
	}
}

func TestParseTraceGate(t *testing.T) {
	t.Setenv("JF_DEBUG_PARSE", "1")
	var buf bytes.Buffer
	debug.SetOutput(&buf)
	defer debug.SetOutput(os.Stderr)

	if _, err := Parse([]byte("[1, nope]")); err == nil {
		t.Fatal("bad document accepted")
	}
	if !strings.Contains(buf.String(), "parse:") {
		t.Errorf("no failure trace: %q", buf.String())
	}

	buf.Reset()
	if _, err := Parse([]byte(`{"a":1}`)); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), `{"a":1}`) {
		t.Errorf("no tree trace: %q", buf.String())
	}
}
