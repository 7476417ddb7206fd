// Package output writes whole documents to disk. The content is written to a
// temporary file in the target directory and renamed into place, so a failed
// render never leaves a partial file behind.
package output

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Write renders a document with fn and stores it at fpath. It returns the
// number of bytes written.
func Write(fpath string, fn func(w io.Writer) error) (int, error) {
	var buf bytes.Buffer
	if err := fn(&buf); err != nil {
		return 0, err
	}
	return WriteBytes(fpath, buf.Bytes())
}

// WriteBytes stores b at fpath atomically.
func WriteBytes(fpath string, b []byte) (int, error) {
	dir := filepath.Dir(fpath)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(fpath)+".*.tmp")
	if err != nil {
		return 0, fmt.Errorf("creating temp file for %q: %w", fpath, err)
	}
	// no-op once the rename succeeded
	defer os.Remove(tmp.Name())

	n, err := tmp.Write(b)
	if err != nil {
		tmp.Close()
		return 0, fmt.Errorf("writing %q: %w", fpath, err)
	}
	if err := tmp.Close(); err != nil {
		return 0, fmt.Errorf("closing %q: %w", fpath, err)
	}
	if err := os.Chmod(tmp.Name(), 0666); err != nil {
		return 0, fmt.Errorf("setting mode of %q: %w", fpath, err)
	}
	if err := os.Rename(tmp.Name(), fpath); err != nil {
		return 0, fmt.Errorf("renaming into %q: %w", fpath, err)
	}
	return n, nil
}
