package shell

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/rscript/internal/adapters/detector"
	"go.trai.ch/rscript/internal/adapters/logger"
	"go.trai.ch/rscript/internal/core/ports"
)

// NodeID is the unique identifier for the cargo toolchain Graft node.
const NodeID graft.ID = "adapter.toolchain"

// StrategyNodeID is the unique identifier for the execution strategy Graft node.
const StrategyNodeID graft.ID = "adapter.execution_strategy"

func init() {
	graft.Register(graft.Node[ports.Toolchain]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Toolchain, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewCargo(log), nil
		},
	})

	graft.Register(graft.Node[ports.ExecutionStrategy]{
		ID:        StrategyNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{detector.NodeID},
		Run: func(ctx context.Context) (ports.ExecutionStrategy, error) {
			env, err := graft.Dep[detector.Environment](ctx)
			if err != nil {
				return nil, err
			}
			if env.SupportsExec {
				return NewReplaceProcess(), nil
			}
			return NewSpawnAndForwardExit(os.Stdin, os.Stdout, os.Stderr), nil
		},
	})
}
