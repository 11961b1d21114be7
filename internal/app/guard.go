package app

import "go.trai.ch/rscript/internal/core/ports"

// packageGuard removes a package directory this invocation created unless disarmed.
type packageGuard struct {
	writer ports.PackageWriter
	logger ports.Logger
	dir    string
	armed  bool
}

func newPackageGuard(writer ports.PackageWriter, logger ports.Logger, dir string, armed bool) *packageGuard {
	return &packageGuard{writer: writer, logger: logger, dir: dir, armed: armed}
}

func (g *packageGuard) disarm() {
	g.armed = false
}

// release is deferred by the caller. It only removes the directory while armed.
func (g *packageGuard) release() {
	if !g.armed {
		return
	}
	g.armed = false
	g.logger.Debug("cleaning up package directory " + g.dir)
	if err := g.writer.RemoveAll(g.dir); err != nil {
		g.logger.Warn("failed to clean up " + g.dir + ": " + err.Error())
	}
}

// finally runs fn at most once, either explicitly or from a deferred call.
type finally struct {
	fn   func()
	done bool
}

func (f *finally) run() {
	if f.done || f.fn == nil {
		return
	}
	f.done = true
	f.fn()
}
