package debug

import (
	"bytes"
	"os"
	"testing"

	"github.com/fieldsense/go-json/ir"
)

func TestGatesFollowEnv(t *testing.T) {
	for name, gate := range map[string]func() bool{
		"JF_DEBUG_PARSE":  Parse,
		"JF_DEBUG_ENCODE": Encode,
		"JF_DEBUG_IO":     IO,
	} {
		t.Setenv(name, "")
		if gate() {
			t.Errorf("%s: gate open with empty env", name)
		}
		t.Setenv(name, "1")
		if !gate() {
			t.Errorf("%s: gate closed with env set", name)
		}
		t.Setenv(name, "0")
		if gate() {
			t.Errorf("%s: gate open with env 0", name)
		}
	}
}

func TestLogfRendersTrees(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)

	obj := ir.NewObject()
	obj.Set("a", ir.FromFloat(1))
	Logf("tree %v\n", obj)
	if got := buf.String(); got != "tree {\"a\":1}\n" {
		t.Errorf("got %q", got)
	}
}
