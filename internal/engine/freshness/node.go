package freshness

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/spf13/afero"
	"go.trai.ch/rscript/internal/adapters/cas"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/rscript/internal/adapters/fs"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/rscript/internal/adapters/logger" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/rscript/internal/adapters/shell"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/rscript/internal/core/ports"
)

// NodeID is the unique identifier for the freshness orchestrator Graft node.
const NodeID graft.ID = "engine.freshness"

func init() {
	graft.Register(graft.Node[*Orchestrator]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fs.NodeID,
			cas.NodeID,
			shell.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Orchestrator, error) {
			fsys, err := graft.Dep[afero.Fs](ctx)
			if err != nil {
				return nil, err
			}

			store, err := graft.Dep[ports.MetadataStore](ctx)
			if err != nil {
				return nil, err
			}

			toolchain, err := graft.Dep[ports.Toolchain](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(fsys, store, toolchain, log), nil
		},
	})
}
