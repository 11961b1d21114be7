// Package fs implements the filesystem-backed adapters on top of afero.
package fs

import (
	"bytes"
	"errors"
	iofs "io/fs"
	"path/filepath"

	"github.com/spf13/afero"
	"go.trai.ch/rscript/internal/core/domain"
	"go.trai.ch/rscript/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.PackageWriter = (*Writer)(nil)

// Writer writes package files with atomic replace semantics.
type Writer struct {
	fs afero.Fs
}

// NewWriter creates a new Writer on the given filesystem.
func NewWriter(fs afero.Fs) *Writer {
	return &Writer{fs: fs}
}

// EnsureDir creates dir and its parents if needed.
// It reports whether this call created dir.
func (w *Writer) EnsureDir(dir string) (bool, error) {
	info, err := w.fs.Stat(dir)
	switch {
	case err == nil && info.IsDir():
		return false, nil
	case err == nil:
		return false, zerr.With(zerr.Wrap(domain.ErrPackageCreateFailed, ""), "path", dir)
	case !errors.Is(err, iofs.ErrNotExist):
		return false, zerr.With(zerr.Wrap(err, domain.ErrPackageCreateFailed.Error()), "path", dir)
	}

	if err := w.fs.MkdirAll(dir, domain.DirPerm); err != nil {
		return false, zerr.With(zerr.Wrap(err, domain.ErrPackageCreateFailed.Error()), "path", dir)
	}
	return true, nil
}

// WriteIfChanged replaces path with content unless it already holds exactly content.
// An unchanged file is not touched, so its modification time is preserved.
func (w *Writer) WriteIfChanged(path string, content []byte) (domain.WriteResult, error) {
	existing, err := afero.ReadFile(w.fs, path)
	if err == nil && bytes.Equal(existing, content) {
		return domain.Unchanged, nil
	}

	if err := w.Overwrite(path, content); err != nil {
		return domain.Unchanged, err
	}
	return domain.Changed, nil
}

// Overwrite atomically replaces path with content.
// The content goes to a temporary file in the same directory, which is synced,
// closed and renamed over path.
func (w *Writer) Overwrite(path string, content []byte) error {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}

	tmp, err := afero.TempFile(w.fs, dir, "."+base+".tmp-*")
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrPackageWriteFailed.Error()), "path", path)
	}
	tmpName := tmp.Name()

	fail := func(err error) error {
		_ = tmp.Close()
		_ = w.fs.Remove(tmpName)
		return zerr.With(zerr.Wrap(err, domain.ErrPackageWriteFailed.Error()), "path", path)
	}

	if _, err := tmp.Write(content); err != nil {
		return fail(err)
	}
	if err := tmp.Sync(); err != nil {
		return fail(err)
	}
	if err := tmp.Close(); err != nil {
		_ = w.fs.Remove(tmpName)
		return zerr.With(zerr.Wrap(err, domain.ErrPackageWriteFailed.Error()), "path", path)
	}
	if err := w.fs.Chmod(tmpName, domain.FilePerm); err != nil {
		_ = w.fs.Remove(tmpName)
		return zerr.With(zerr.Wrap(err, domain.ErrPackageWriteFailed.Error()), "path", path)
	}
	if err := w.fs.Rename(tmpName, path); err != nil {
		_ = w.fs.Remove(tmpName)
		return zerr.With(zerr.Wrap(err, domain.ErrPackageWriteFailed.Error()), "path", path)
	}
	return nil
}

// RemoveAll deletes dir recursively.
func (w *Writer) RemoveAll(dir string) error {
	if err := w.fs.RemoveAll(dir); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to remove directory"), "path", dir)
	}
	return nil
}
