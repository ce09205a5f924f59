// Package jsonio reads and writes JSON documents on files and streams.
// It is a thin layer over parse and encode; the only logic of its own
// is buffering, atomic replacement and error wrapping.
package jsonio

import (
	"bufio"
	"io"
	"os"
	"path/filepath"

	"github.com/fieldsense/go-json/debug"
	"github.com/fieldsense/go-json/diag"
	"github.com/fieldsense/go-json/encode"
	"github.com/fieldsense/go-json/ir"
	"github.com/fieldsense/go-json/parse"
)

// WriteConfig controls the mechanics of WriteFileAtomic, independent of
// the textual style.
type WriteConfig struct {
	BufferSize  int
	TempSuffix  string
	SyncOnClose bool
}

func DefaultWriteConfig() *WriteConfig {
	return &WriteConfig{
		BufferSize:  64 * 1024,
		TempSuffix:  ".tmp",
		SyncOnClose: true,
	}
}

// ParseFile reads and parses a whole JSON file.
func ParseFile(path string) (*ir.Value, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, diag.Wrap(diag.CodeFileRead, err, "read %s", path)
	}
	if debug.IO() {
		debug.Logf("jsonio: read %d bytes from %s\n", len(d), path)
	}
	return parse.Parse(d)
}

// ParseStream reads r to EOF and parses the content as one document.
func ParseStream(r io.Reader) (*ir.Value, error) {
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, diag.Wrap(diag.CodeFileRead, err, "read stream")
	}
	return parse.Parse(d)
}

// WriteFile formats v and writes it to path.
func WriteFile(v *ir.Value, path string, cfg *encode.Config) error {
	f, err := os.Create(path)
	if err != nil {
		return diag.Wrap(diag.CodeFileWrite, err, "create %s", path)
	}
	w := bufio.NewWriter(f)
	if err := encode.Encode(v, w, cfg); err != nil {
		f.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return diag.Wrap(diag.CodeFileWrite, err, "write %s", path)
	}
	if err := f.Close(); err != nil {
		return diag.Wrap(diag.CodeFileWrite, err, "close %s", path)
	}
	return nil
}

// WriteFileAtomic formats v into a temp file next to path and renames
// it over path, so readers never observe a partial document. A nil
// wcfg means DefaultWriteConfig.
func WriteFileAtomic(v *ir.Value, path string, cfg *encode.Config, wcfg *WriteConfig) error {
	if wcfg == nil {
		wcfg = DefaultWriteConfig()
	}
	tmp := path + wcfg.TempSuffix
	f, err := os.Create(tmp)
	if err != nil {
		return diag.Wrap(diag.CodeFileWrite, err, "create %s", tmp)
	}
	w := bufio.NewWriterSize(f, wcfg.BufferSize)
	if err := encode.Encode(v, w, cfg); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := w.Flush(); err != nil {
		f.Close()
		os.Remove(tmp)
		return diag.Wrap(diag.CodeFileWrite, err, "write %s", tmp)
	}
	if wcfg.SyncOnClose {
		if err := f.Sync(); err != nil {
			f.Close()
			os.Remove(tmp)
			return diag.Wrap(diag.CodeFileWrite, err, "sync %s", tmp)
		}
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return diag.Wrap(diag.CodeFileWrite, err, "close %s", tmp)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return diag.Wrap(diag.CodeFileWrite, err, "rename %s to %s",
			filepath.Base(tmp), filepath.Base(path))
	}
	if debug.IO() {
		debug.Logf("jsonio: wrote %s atomically via %s\n", path, tmp)
	}
	return nil
}
