package detector

import (
	"context"

	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the environment detector Graft node.
const NodeID graft.ID = "adapter.detector"

func init() {
	graft.Register(graft.Node[Environment]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (Environment, error) {
			return Detect(), nil
		},
	})
}
