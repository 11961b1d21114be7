package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/rscript/internal/adapters/cas"       //nolint:depguard // Wired in app layer
	"go.trai.ch/rscript/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/rscript/internal/adapters/detector"  //nolint:depguard // Wired in app layer
	"go.trai.ch/rscript/internal/adapters/fs"        //nolint:depguard // Wired in app layer
	"go.trai.ch/rscript/internal/adapters/hasher"    //nolint:depguard // Wired in app layer
	"go.trai.ch/rscript/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/rscript/internal/adapters/shell"     //nolint:depguard // Wired in app layer
	"go.trai.ch/rscript/internal/adapters/templates" //nolint:depguard // Wired in app layer
	"go.trai.ch/rscript/internal/core/ports"
	"go.trai.ch/rscript/internal/engine/freshness"
	"go.trai.ch/rscript/internal/engine/gc"
	"go.trai.ch/rscript/internal/engine/synth"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			logger.NodeID,
			hasher.NodeID,
			fs.ResolverNodeID,
			fs.WriterNodeID,
			cas.NodeID,
			templates.NodeID,
			synth.NodeID,
			freshness.NodeID,
			gc.NodeID,
			shell.StrategyNodeID,
			detector.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			a, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: a, Logger: log}, nil
		},
	})
}

//nolint:cyclop // dependency fan-in
func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	h, err := graft.Dep[ports.Hasher](ctx)
	if err != nil {
		return nil, err
	}

	resolver, err := graft.Dep[ports.InputResolver](ctx)
	if err != nil {
		return nil, err
	}

	writer, err := graft.Dep[ports.PackageWriter](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.MetadataStore](ctx)
	if err != nil {
		return nil, err
	}

	tpls, err := graft.Dep[ports.TemplateStore](ctx)
	if err != nil {
		return nil, err
	}

	synthesizer, err := graft.Dep[*synth.Synthesizer](ctx)
	if err != nil {
		return nil, err
	}

	orchestrator, err := graft.Dep[*freshness.Orchestrator](ctx)
	if err != nil {
		return nil, err
	}

	collector, err := graft.Dep[*gc.Collector](ctx)
	if err != nil {
		return nil, err
	}

	strategy, err := graft.Dep[ports.ExecutionStrategy](ctx)
	if err != nil {
		return nil, err
	}

	env, err := graft.Dep[detector.Environment](ctx)
	if err != nil {
		return nil, err
	}

	return New(
		loader,
		log,
		h,
		resolver,
		writer,
		store,
		tpls,
		synthesizer,
		orchestrator,
		collector,
		strategy,
		env,
	), nil
}
