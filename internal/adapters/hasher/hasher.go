// Package hasher derives content digests for package identities.
package hasher

import (
	"crypto/sha1" //nolint:gosec // Identity only, not a security boundary
	"encoding/hex"

	"go.trai.ch/rscript/internal/core/domain"
	"go.trai.ch/rscript/internal/core/ports"
)

var _ ports.Hasher = (*Hasher)(nil)

// Hasher computes SHA-1 digests.
type Hasher struct{}

// New creates a new Hasher.
func New() *Hasher {
	return &Hasher{}
}

// Digest returns the lowercase hex SHA-1 of data.
func (h *Hasher) Digest(data []byte) domain.Digest {
	sum := sha1.Sum(data) //nolint:gosec // Identity only
	return domain.Digest(hex.EncodeToString(sum[:]))
}

// Identity returns the package identity for an input.
func Identity(h ports.Hasher, in domain.Input) domain.PackageIdentity {
	return h.Digest(in.IdentityBytes()).Truncate(domain.IdentityLength)
}
