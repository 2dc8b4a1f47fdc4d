// Package filex contains small filesystem helpers for the CLI.
package filex

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// WriteAtomic streams fn's output into path via a temporary file in the same
// directory, renaming into place only after fn and the final flush succeed.
// On failure the temporary file is removed and the destination is untouched.
func WriteAtomic(path string, fn func(w io.Writer) error) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o770); err != nil {
		return fmt.Errorf("mkdir %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".partial-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}

	if err := fn(tmp); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("rename into place: %w", err)
	}
	return nil
}
