// Package cas stores per-package build metadata next to the synthesized files.
package cas

import (
	"encoding/json"
	"errors"
	"fmt"
	iofs "io/fs"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"github.com/spf13/afero"
	"go.trai.ch/rscript/internal/core/domain"
	"go.trai.ch/rscript/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.MetadataStore = (*Store)(nil)

// Store implements ports.MetadataStore with a metadata.json file per package.
type Store struct {
	fs afero.Fs
}

// NewStore creates a new Store on the given filesystem.
func NewStore(fs afero.Fs) *Store {
	return &Store{fs: fs}
}

// Get retrieves the metadata of the package in pkgDir.
// Returns nil, nil if there is none.
func (s *Store) Get(pkgDir string) (*domain.PackageMetadata, error) {
	path := filepath.Join(pkgDir, domain.MetadataFileName)

	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "path", path)
	}

	if len(data) == 0 {
		return nil, nil
	}

	var meta domain.PackageMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreUnmarshalFailed.Error()), "path", path)
	}
	return &meta, nil
}

// Put stores the metadata of the package in pkgDir.
func (s *Store) Put(pkgDir string, meta domain.PackageMetadata) error {
	path := filepath.Join(pkgDir, domain.MetadataFileName)

	data, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrStoreMarshalFailed.Error())
	}

	if err := s.fs.MkdirAll(pkgDir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", pkgDir)
	}

	if err := afero.WriteFile(s.fs, path, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", path)
	}

	return nil
}

// Fingerprint returns the xxhash of content as 16 hex digits.
func Fingerprint(content string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(content))
}
