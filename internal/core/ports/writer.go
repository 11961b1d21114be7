package ports

import "go.trai.ch/rscript/internal/core/domain"

// PackageWriter defines the interface for writing synthesized packages to disk.
//
//go:generate mockgen -source=writer.go -destination=mocks/mock_writer.go -package=mocks
type PackageWriter interface {
	// EnsureDir creates dir if needed and reports whether this call created it.
	EnsureDir(dir string) (created bool, err error)

	// WriteIfChanged atomically replaces path unless it already holds content.
	WriteIfChanged(path string, content []byte) (domain.WriteResult, error)

	// Overwrite atomically replaces path even when the content is identical.
	Overwrite(path string, content []byte) error

	// RemoveAll deletes dir and everything below it.
	RemoveAll(dir string) error
}
