package gc

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/spf13/afero"
	"go.trai.ch/rscript/internal/adapters/config" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/rscript/internal/adapters/fs"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/rscript/internal/adapters/logger" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/rscript/internal/core/ports"
)

// NodeID is the unique identifier for the cache collector Graft node.
const NodeID graft.ID = "engine.gc"

func init() {
	graft.Register(graft.Node[*Collector]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.NodeID, logger.NodeID, config.NodeID},
		Run: func(ctx context.Context) (*Collector, error) {
			fsys, err := graft.Dep[afero.Fs](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}
			cfg, err := loader.Load()
			if err != nil {
				return nil, err
			}

			var opts []Option
			if cfg.MaxCacheAge > 0 {
				opts = append(opts, WithMaxAge(cfg.MaxCacheAge))
			}
			return New(fsys, log, opts...), nil
		},
	})
}
