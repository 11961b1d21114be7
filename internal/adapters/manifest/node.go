package manifest

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/rscript/internal/core/ports"
)

const (
	ExtractorNodeID graft.ID = "adapter.manifest.extractor"
	CodecNodeID     graft.ID = "adapter.manifest.codec"
)

func init() {
	graft.Register(graft.Node[ports.ManifestExtractor]{
		ID:        ExtractorNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ManifestExtractor, error) {
			return NewExtractor(), nil
		},
	})

	graft.Register(graft.Node[ports.ManifestCodec]{
		ID:        CodecNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ManifestCodec, error) {
			return NewCodec(), nil
		},
	})
}
