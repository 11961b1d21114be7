package cas

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/spf13/afero"
	"go.trai.ch/rscript/internal/adapters/fs"
	"go.trai.ch/rscript/internal/core/ports"
)

// NodeID is the unique identifier for the metadata store Graft node.
const NodeID graft.ID = "adapter.metadata_store"

func init() {
	graft.Register(graft.Node[ports.MetadataStore]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.NodeID},
		Run: func(ctx context.Context) (ports.MetadataStore, error) {
			fsys, err := graft.Dep[afero.Fs](ctx)
			if err != nil {
				return nil, err
			}
			return NewStore(fsys), nil
		},
	})
}
