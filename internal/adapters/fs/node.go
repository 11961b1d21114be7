package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/spf13/afero"
	"go.trai.ch/rscript/internal/core/ports"
)

const (
	// NodeID provides the afero filesystem shared by every disk-backed adapter.
	NodeID         graft.ID = "adapter.fs"
	WriterNodeID   graft.ID = "adapter.fs.writer"
	ResolverNodeID graft.ID = "adapter.fs.resolver"
)

func init() {
	graft.Register(graft.Node[afero.Fs]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (afero.Fs, error) {
			return afero.NewOsFs(), nil
		},
	})

	graft.Register(graft.Node[ports.PackageWriter]{
		ID:        WriterNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{NodeID},
		Run: func(ctx context.Context) (ports.PackageWriter, error) {
			fsys, err := graft.Dep[afero.Fs](ctx)
			if err != nil {
				return nil, err
			}
			return NewWriter(fsys), nil
		},
	})

	graft.Register(graft.Node[ports.InputResolver]{
		ID:        ResolverNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{NodeID},
		Run: func(ctx context.Context) (ports.InputResolver, error) {
			fsys, err := graft.Dep[afero.Fs](ctx)
			if err != nil {
				return nil, err
			}
			return NewResolver(fsys), nil
		},
	})
}
