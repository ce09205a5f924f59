package jsonio

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fieldsense/go-json/diag"
	"github.com/fieldsense/go-json/encode"
	"github.com/fieldsense/go-json/ir"
)

func TestFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.json")

	obj := ir.NewObject()
	obj.Set("name", ir.FromString("Alice"))
	obj.Set("xs", ir.NewArray())
	if err := WriteFile(obj, path, encode.Default()); err != nil {
		t.Fatal(err)
	}
	back, err := ParseFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(obj, back) {
		t.Error("file round trip changed tree")
	}
}

func TestWriteFileAtomic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.json")

	if err := WriteFileAtomic(ir.FromBool(true), path, encode.Compact(), nil); err != nil {
		t.Fatal(err)
	}
	d, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(d) != "true" {
		t.Errorf("content = %q", d)
	}
	// no temp file left behind
	if _, err := os.Stat(path + ".tmp"); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("temp file still present: %v", err)
	}
}

func TestWriteFileAtomicCustomSuffix(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.json")
	wcfg := &WriteConfig{BufferSize: 16, TempSuffix: ".part"}
	if err := WriteFileAtomic(ir.Null(), path, encode.Compact(), wcfg); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(path + ".part"); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("temp file still present: %v", err)
	}
}

func TestWriteFileAtomicEncodeFailureLeavesTarget(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.json")
	if err := WriteFileAtomic(ir.FromFloat(1), path, encode.Compact(), nil); err != nil {
		t.Fatal(err)
	}
	// nil tree fails before the rename, old content survives
	if err := WriteFileAtomic(nil, path, encode.Compact(), nil); err == nil {
		t.Fatal("nil tree accepted")
	}
	d, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(d) != "1" {
		t.Errorf("target clobbered: %q", d)
	}
}

func TestParseFileMissing(t *testing.T) {
	_, err := ParseFile(filepath.Join(t.TempDir(), "absent.json"))
	if err == nil {
		t.Fatal("missing file parsed")
	}
	if got := diag.CodeOf(err); got != diag.CodeFileRead {
		t.Errorf("code = %v, want %v", got, diag.CodeFileRead)
	}
}

func TestParseStream(t *testing.T) {
	v, err := ParseStream(strings.NewReader(`{"a": [1, 2]}`))
	if err != nil {
		t.Fatal(err)
	}
	if v.Get("a").Len() != 2 {
		t.Error("wrong tree")
	}
}

func TestReader(t *testing.T) {
	in := "{\"n\": 1}\n\n{\"n\": 2}\n[3]\n"
	r := NewReader(strings.NewReader(in))
	var got []float64
	for {
		v, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatal(err)
		}
		switch v.Type {
		case ir.ObjectType:
			got = append(got, v.Get("n").Number)
		case ir.ArrayType:
			got = append(got, v.At(0).Number)
		}
	}
	if len(got) != 3 || got[0] != 1 || got[1] != 2 || got[2] != 3 {
		t.Errorf("documents = %v", got)
	}
	if r.Line() != 4 {
		t.Errorf("line = %d, want 4", r.Line())
	}
}

func TestReaderBadDocument(t *testing.T) {
	r := NewReader(strings.NewReader("{\"ok\": true}\n{broken\n"))
	if _, err := r.Next(); err != nil {
		t.Fatal(err)
	}
	_, err := r.Next()
	if err == nil || err == io.EOF {
		t.Fatal("broken document accepted")
	}
	if got := diag.CodeOf(err); got != diag.CodeFileRead {
		t.Errorf("code = %v, want %v", got, diag.CodeFileRead)
	}
}
