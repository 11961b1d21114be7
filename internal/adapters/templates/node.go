package templates

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/spf13/afero"
	"go.trai.ch/rscript/internal/adapters/config"
	"go.trai.ch/rscript/internal/adapters/fs"
	"go.trai.ch/rscript/internal/core/domain"
	"go.trai.ch/rscript/internal/core/ports"
)

// NodeID is the unique identifier for the template store Graft node.
const NodeID graft.ID = "adapter.templates"

func init() {
	graft.Register(graft.Node[ports.TemplateStore]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.NodeID, config.NodeID},
		Run: func(ctx context.Context) (ports.TemplateStore, error) {
			fsys, err := graft.Dep[afero.Fs](ctx)
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

			dir := cfg.TemplatesDir
			if dir == "" {
				dir = domain.DefaultTemplatesDir()
			}
			return NewStore(fsys, dir), nil
		},
	})
}
