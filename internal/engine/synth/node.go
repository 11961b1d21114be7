package synth

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/rscript/internal/adapters/logger"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/rscript/internal/adapters/manifest"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/rscript/internal/adapters/templates" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/rscript/internal/core/ports"
)

// NodeID is the unique identifier for the synthesizer Graft node.
const NodeID graft.ID = "engine.synth"

func init() {
	graft.Register(graft.Node[*Synthesizer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			manifest.ExtractorNodeID,
			manifest.CodecNodeID,
			templates.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Synthesizer, error) {
			extractor, err := graft.Dep[ports.ManifestExtractor](ctx)
			if err != nil {
				return nil, err
			}

			codec, err := graft.Dep[ports.ManifestCodec](ctx)
			if err != nil {
				return nil, err
			}

			store, err := graft.Dep[ports.TemplateStore](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(extractor, codec, store, log), nil
		},
	})
}
