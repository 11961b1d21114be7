package app

import (
	"go.trai.ch/rscript/internal/core/domain"
	"go.trai.ch/zerr"
)

// RunOptions configuration for the Run method.
type RunOptions struct {
	// Script is a path, or the expression or closure text when Expr or Loop is set.
	Script string
	Args   []string

	Expr     bool
	Template string

	Loop  bool
	Count bool

	// UnstableFeatures become #![feature] attributes on expression and loop crates.
	UnstableFeatures []string

	PkgPath    string
	GenPkgOnly bool

	ClearCache    bool
	ListTemplates bool

	Force       bool
	Release     bool
	Test        bool
	Bench       bool
	Toolchain   string
	Features    []string
	CargoOutput bool
}

// Kind returns the build kind requested.
func (o RunOptions) Kind() domain.BuildKind {
	switch {
	case o.Test:
		return domain.BuildTest
	case o.Bench:
		return domain.BuildBench
	default:
		return domain.BuildNormal
	}
}

// Profile returns the optimization profile for the requested build.
// Tests build in debug and benchmarks in release whatever --release says.
func (o RunOptions) Profile() domain.Profile {
	switch {
	case o.Test:
		return domain.ProfileDebug
	case o.Bench, o.Release:
		return domain.ProfileRelease
	default:
		return domain.ProfileDebug
	}
}

type conflict struct {
	a, b   string
	active func(RunOptions) bool
}

var conflicts = []conflict{
	{"--expr", "--loop", func(o RunOptions) bool { return o.Expr && o.Loop }},
	{"--test", "--bench", func(o RunOptions) bool { return o.Test && o.Bench }},
	{"--force", "--test", func(o RunOptions) bool { return o.Force && o.Test }},
	{"--force", "--bench", func(o RunOptions) bool { return o.Force && o.Bench }},
	{"--pkg-path", "--clear-cache", func(o RunOptions) bool { return o.PkgPath != "" && o.ClearCache }},
	{"--pkg-path", "--force", func(o RunOptions) bool { return o.PkgPath != "" && o.Force }},
	{"--gen-pkg-only", "--release", func(o RunOptions) bool { return o.GenPkgOnly && o.Release }},
	{"--gen-pkg-only", "--force", func(o RunOptions) bool { return o.GenPkgOnly && o.Force }},
	{"--gen-pkg-only", "--test", func(o RunOptions) bool { return o.GenPkgOnly && o.Test }},
	{"--gen-pkg-only", "--bench", func(o RunOptions) bool { return o.GenPkgOnly && o.Bench }},
	{"--release", "--bench", func(o RunOptions) bool { return o.Release && o.Bench }},
	{"--toolchain-version", "--bench", func(o RunOptions) bool { return o.Toolchain != "" && o.Bench }},
}

// Validate rejects option combinations that cannot be honored together.
func (o RunOptions) Validate() error {
	for _, c := range conflicts {
		if c.active(o) {
			return zerr.With(
				zerr.Wrap(domain.ErrConflictingOptions, c.a+" cannot be used with "+c.b),
				"options", c.a+" "+c.b,
			)
		}
	}

	if o.Template != "" && !o.Expr {
		return zerr.Wrap(domain.ErrConflictingOptions, "--template requires --expr")
	}
	if o.Count && !o.Loop {
		return zerr.Wrap(domain.ErrConflictingOptions, "--count requires --loop")
	}
	if len(o.UnstableFeatures) > 0 && !o.Expr && !o.Loop {
		return zerr.Wrap(domain.ErrConflictingOptions, "--unstable-feature requires --expr or --loop")
	}

	if o.Script == "" {
		requiresScript := o.Expr || o.Loop || o.Force || o.PkgPath != "" || o.GenPkgOnly ||
			o.CargoOutput || o.Test || o.Bench || o.Release
		if requiresScript {
			return domain.ErrNoScriptSpecified
		}
	}
	return nil
}
