// Package fs implements the filesystem collaborators: a low-level
// driver mirroring the operations the editor needs (exists, mkdir,
// read, write, copy), a project document store on top of it, and an
// optional watcher that reports external document modifications.
package fs

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// TempFilePrefix marks the staging files used for atomic writes and
// writability probes. They only appear next to their target while a
// write is in flight.
const TempFilePrefix = "dahu-tmp-"

// Driver exposes low-level filesystem operations. Every operation
// reports success or failure explicitly; there are no silent no-ops.
//
// The driver knows nothing about projects or slides. Higher-level
// semantics live in ProjectStore.
type Driver struct {
	Logger *slog.Logger
}

// Exists reports whether a file or directory exists at path.
func (d *Driver) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// IsDirectory reports whether path names a directory.
func (d *Driver) IsDirectory(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// CreateDirectory creates the directory at path along with any missing
// parents.
func (d *Driver) CreateDirectory(path string) error {
	if err := os.MkdirAll(path, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", path, err)
	}
	return nil
}

// Delete removes the file at path.
func (d *Driver) Delete(path string) error {
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("failed to delete %s: %w", path, err)
	}
	return nil
}

// RemoveDirectory deletes the directory at path. Unless recursive is
// set the directory must be empty.
func (d *Driver) RemoveDirectory(path string, recursive bool) error {
	var err error
	if recursive {
		err = os.RemoveAll(path)
	} else {
		err = os.Remove(path)
	}
	if err != nil {
		return fmt.Errorf("failed to remove directory %s: %w", path, err)
	}
	return nil
}

// ReadText reads the file at path as UTF-8 text.
func (d *Driver) ReadText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), nil
}

// WriteText writes content to path atomically, creating the file if it
// does not exist. The content is staged in a temp file in the same
// directory and renamed into place, so a failed write never truncates
// an existing file.
func (d *Driver) WriteText(path string, content string) error {
	if d.Logger != nil {
		d.Logger.Debug("writing file", "path", path, "bytes", len(content))
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), TempFilePrefix+"*")
	if err != nil {
		return fmt.Errorf("failed to stage write for %s: %w", path, err)
	}
	name := tmp.Name()

	_, err = tmp.WriteString(content)
	if err == nil {
		err = tmp.Sync()
	}
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err == nil {
		err = os.Chmod(name, 0644)
	}
	if err == nil {
		err = os.Rename(name, path)
	}
	if err != nil {
		os.Remove(name)
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// Copy copies the file at src to dst. An existing dst is overwritten.
func (d *Driver) Copy(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", src, err)
	}
	defer in.Close()

	out, err := os.CreateTemp(filepath.Dir(dst), TempFilePrefix+"*")
	if err != nil {
		return fmt.Errorf("failed to create temp file for %s: %w", dst, err)
	}
	defer os.Remove(out.Name())

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("failed to copy %s to %s: %w", src, dst, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(out.Name(), dst); err != nil {
		return fmt.Errorf("failed to rename temp file to %s: %w", dst, err)
	}
	return nil
}

// Separator returns the OS path separator.
func (d *Driver) Separator() string {
	return string(os.PathSeparator)
}
