// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/rscript/internal/adapters/cas"
	_ "go.trai.ch/rscript/internal/adapters/config"
	_ "go.trai.ch/rscript/internal/adapters/detector"
	_ "go.trai.ch/rscript/internal/adapters/fs"
	_ "go.trai.ch/rscript/internal/adapters/hasher"
	_ "go.trai.ch/rscript/internal/adapters/logger"
	_ "go.trai.ch/rscript/internal/adapters/manifest"
	_ "go.trai.ch/rscript/internal/adapters/shell"
	_ "go.trai.ch/rscript/internal/adapters/templates"
	// Register app and engine nodes.
	_ "go.trai.ch/rscript/internal/app"
	_ "go.trai.ch/rscript/internal/engine/freshness"
	_ "go.trai.ch/rscript/internal/engine/gc"
	_ "go.trai.ch/rscript/internal/engine/synth"
)
