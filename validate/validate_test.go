package validate

import (
	"strings"
	"testing"

	"github.com/fieldsense/go-json/diag"
	"github.com/fieldsense/go-json/parse"
)

func TestValidate(t *testing.T) {
	valid := []string{
		"null",
		"true",
		"false",
		"0",
		"-0",
		"0.5",
		"-12.25e3",
		`""`,
		`"hi"`,
		"[]",
		"[1, 2, 3]",
		"{}",
		`{"a": 1, "b": [true, null]}`,
		"  [ 1 , 2 ]  ",
	}
	for _, in := range valid {
		if err := Validate([]byte(in)); err != nil {
			t.Errorf("Validate(%q) = %v, want nil", in, err)
		}
	}
	invalid := []string{
		"",
		"   ",
		"nope",
		"01",
		"1.",
		"1e",
		"1e999",
		`"abc`,
		`"\x"`,
		"[1, 2,]",
		`{"a": 1,}`,
		"[1 2]",
		"{a: 1}",
		`{"a" 1}`,
		"null x",
	}
	for _, in := range invalid {
		if err := Validate([]byte(in)); err == nil {
			t.Errorf("Validate(%q) = nil, want error", in)
		}
	}
}

// Validate must accept exactly the inputs Parse accepts, with the same
// diagnostic on rejection.
func TestParserAgreement(t *testing.T) {
	inputs := []string{
		"null", "true", "false", "tru", "nope",
		"0", "-0", "0.5", "01", "-", "1.", "1e", "1e3", "1e999",
		`""`, `"hi"`, `"abc`, `"\x"`, "\"a\nb\"",
		"[]", "[1, 2]", "[1, 2,]", "[1 2]", "[1, 2",
		"{}", `{"a": 1}`, `{"a": 1,}`, "{a: 1}", `{"a" 1}`, `{"a": 1`,
		"null x", "1 2", "", "   ",
		strings.Repeat("[", 32) + strings.Repeat("]", 32),
		strings.Repeat("[", 33) + strings.Repeat("]", 33),
	}
	for _, in := range inputs {
		_, pErr := parse.Parse([]byte(in))
		vErr := Validate([]byte(in))
		if (pErr == nil) != (vErr == nil) {
			t.Errorf("disagreement on %q: parse err %v, validate err %v", in, pErr, vErr)
			continue
		}
		if pErr != nil && diag.CodeOf(pErr) != diag.CodeOf(vErr) {
			t.Errorf("different codes on %q: parse %v, validate %v",
				in, diag.CodeOf(pErr), diag.CodeOf(vErr))
		}
	}
}

func TestValidateNestingBound(t *testing.T) {
	ok := strings.Repeat("[", 32) + strings.Repeat("]", 32)
	if err := Validate([]byte(ok)); err != nil {
		t.Errorf("32 levels rejected: %v", err)
	}
	deep := strings.Repeat("[", 33) + strings.Repeat("]", 33)
	err := Validate([]byte(deep))
	if err == nil {
		t.Fatal("33 levels accepted")
	}
	if got := diag.CodeOf(err); got != diag.CodeMaxNesting {
		t.Errorf("code = %v, want %v", got, diag.CodeMaxNesting)
	}
}

func TestValid(t *testing.T) {
	if !Valid([]byte("[1]")) {
		t.Error("Valid([1]) = false")
	}
	if Valid([]byte("[1")) {
		t.Error("Valid([1) = true")
	}
}
