package ports

import "go.trai.ch/rscript/internal/core/domain"

// MetadataStore defines the interface for storing and retrieving package metadata.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type MetadataStore interface {
	// Get retrieves the metadata stored in a package directory.
	// Returns nil, nil if not found.
	Get(pkgDir string) (*domain.PackageMetadata, error)

	// Put stores the metadata in a package directory.
	Put(pkgDir string, meta domain.PackageMetadata) error
}
