package domain

import (
	"path/filepath"
	"runtime"
)

// BuildKind selects what cargo does with the synthesized package.
type BuildKind int

const (
	// BuildNormal compiles the binary and executes it.
	BuildNormal BuildKind = iota
	// BuildTest compiles and runs the package tests.
	BuildTest
	// BuildBench compiles and runs the package benchmarks.
	BuildBench
)

// Subcommand returns the cargo subcommand for the build kind.
func (k BuildKind) Subcommand() string {
	switch k {
	case BuildTest:
		return "test"
	case BuildBench:
		return "bench"
	default:
		return "build"
	}
}

// Profile is the cargo optimization profile.
type Profile string

const (
	// ProfileDebug is the unoptimized profile.
	ProfileDebug Profile = "debug"
	// ProfileRelease is the optimized profile.
	ProfileRelease Profile = "release"
)

// SynthesizedPackage is a Cargo package generated around an input.
type SynthesizedPackage struct {
	Identity PackageIdentity

	// Dir is where the package lives. Owned reports whether the cache manages it.
	Dir   string
	Owned bool

	PackageName string
	BinaryName  string
	SafeName    string

	// Manifest is the serialized Cargo.toml. Source is the synthesized entry-point file.
	Manifest string
	Source   string

	Profile  Profile
	Features []string
}

// ManifestPath returns the path of the package manifest.
func (p *SynthesizedPackage) ManifestPath() string {
	return filepath.Join(p.Dir, ManifestFileName)
}

// SourcePath returns the path of the synthesized source file.
func (p *SynthesizedPackage) SourcePath() string {
	return filepath.Join(p.Dir, p.SafeName+".rs")
}

// BinaryPath returns where cargo places the compiled binary under targetDir.
func (p *SynthesizedPackage) BinaryPath(targetDir string) string {
	name := p.BinaryName
	if runtime.GOOS == "windows" {
		name += ".exe"
	}
	return filepath.Join(targetDir, string(p.Profile), name)
}
