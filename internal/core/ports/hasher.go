package ports

import "go.trai.ch/rscript/internal/core/domain"

// Hasher defines the interface for computing content digests.
//
//go:generate mockgen -destination=mocks/hasher_mock.go -package=mocks -source=hasher.go
type Hasher interface {
	// Digest returns the full hex digest of data. It must be deterministic.
	Digest(data []byte) domain.Digest
}
