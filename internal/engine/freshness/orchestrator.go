// Package freshness decides whether a cached binary can be reused and rebuilds it when not.
package freshness

import (
	"context"
	"time"

	"github.com/spf13/afero"
	"go.trai.ch/rscript/internal/core/domain"
	"go.trai.ch/rscript/internal/core/ports"
)

// Orchestrator compares a package against its binary and drives cargo.
type Orchestrator struct {
	fs        afero.Fs
	store     ports.MetadataStore
	toolchain ports.Toolchain
	logger    ports.Logger
}

// New creates a new Orchestrator.
func New(fs afero.Fs, store ports.MetadataStore, toolchain ports.Toolchain, logger ports.Logger) *Orchestrator {
	return &Orchestrator{
		fs:        fs,
		store:     store,
		toolchain: toolchain,
		logger:    logger,
	}
}

// Decide inspects the binary under targetDir and the stored metadata.
// want describes the build the current invocation asks for.
func (o *Orchestrator) Decide(pkg *domain.SynthesizedPackage, targetDir string, want *domain.PackageMetadata, force bool) domain.Verdict {
	if force {
		return rebuild("forced")
	}

	binTime, ok := o.modTime(pkg.BinaryPath(targetDir))
	if !ok {
		return rebuild("binary missing")
	}

	srcTime, ok := o.modTime(pkg.SourcePath())
	if !ok {
		return rebuild("source unreadable")
	}
	maniTime, ok := o.modTime(pkg.ManifestPath())
	if !ok {
		return rebuild("manifest unreadable")
	}
	if binTime.Before(srcTime) || binTime.Before(maniTime) {
		return rebuild("package newer than binary")
	}

	prior, err := o.store.Get(pkg.Dir)
	if err != nil {
		o.logger.Debug("ignoring unreadable package metadata: " + err.Error())
		return rebuild("metadata unreadable")
	}
	if prior == nil {
		return rebuild("metadata missing")
	}
	if !prior.SameBuild(want) {
		return rebuild("build options changed")
	}

	return domain.Verdict{Decision: domain.Fresh, Reason: "binary up to date"}
}

// Ensure decides and, on Rebuild, runs cargo build.
// It returns the path of the binary to execute.
func (o *Orchestrator) Ensure(
	ctx context.Context,
	pkg *domain.SynthesizedPackage,
	inv domain.Invocation,
	want *domain.PackageMetadata,
	force bool,
) (string, domain.Verdict, error) {
	binary := pkg.BinaryPath(inv.TargetDir)

	verdict := o.Decide(pkg, inv.TargetDir, want, force)
	o.logger.Debug("freshness: " + verdict.Decision.String() + " (" + verdict.Reason + ")")
	if verdict.Decision == domain.Fresh {
		return binary, verdict, nil
	}

	inv.Kind = domain.BuildNormal
	if err := o.toolchain.Invoke(ctx, inv); err != nil {
		return "", verdict, err
	}
	return binary, verdict, nil
}

// Run invokes cargo test or bench. These always go through cargo, which
// does its own staleness tracking.
func (o *Orchestrator) Run(ctx context.Context, inv domain.Invocation) error {
	o.logger.Debug("running cargo " + inv.Kind.Subcommand())
	return o.toolchain.Invoke(ctx, inv)
}

func (o *Orchestrator) modTime(path string) (time.Time, bool) {
	info, err := o.fs.Stat(path)
	if err != nil {
		return time.Time{}, false
	}
	return info.ModTime(), true
}

func rebuild(reason string) domain.Verdict {
	return domain.Verdict{Decision: domain.Rebuild, Reason: reason}
}
