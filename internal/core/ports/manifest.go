package ports

import "go.trai.ch/rscript/internal/core/domain"

// ManifestExtractor defines the interface for finding an embedded manifest in source text.
//
//go:generate mockgen -source=manifest.go -destination=mocks/mock_manifest.go -package=mocks
type ManifestExtractor interface {
	// Extract strips a shebang and returns the first cargo fence of the leading doc comment.
	Extract(source string) (domain.ScriptParts, error)
}

// ManifestCodec defines the interface for converting manifests to and from text.
type ManifestCodec interface {
	// Decode parses manifest text into a tree.
	Decode(text string) (domain.Table, error)

	// Encode serializes a tree into manifest text.
	Encode(manifest domain.Table) (string, error)
}
