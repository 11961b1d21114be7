package domain

import (
	"os"
	"path/filepath"
	"time"
)

const (
	// ProgramName is the name used for per-user cache, config and data directories.
	ProgramName = "rscript"

	// ProjectsDirName is the cache subdirectory holding one package per identity.
	ProjectsDirName = "projects"

	// BinariesDirName is the cache subdirectory passed to cargo as --target-dir.
	BinariesDirName = "binaries"

	// TemplatesDirName is the data subdirectory holding user templates.
	TemplatesDirName = "templates"

	// ManifestFileName is the name of the synthesized manifest.
	ManifestFileName = "Cargo.toml"

	// MetadataFileName is the name of the per-package metadata file.
	MetadataFileName = "metadata.json"

	// ConfigFileName is the name of the optional user configuration file.
	ConfigFileName = "config.yaml"

	// CacheDirEnvVar overrides the managed cache root.
	CacheDirEnvVar = "RUST_SCRIPT_CACHE_PATH"

	// ConfigPathEnvVar overrides the configuration file location.
	ConfigPathEnvVar = "RSCRIPT_CONFIG"

	// IdentityLength is the number of hex nibbles kept from the identity digest.
	IdentityLength = 24

	// DefaultToolchain is the toolchain selector used when none is given.
	DefaultToolchain = "stable"

	// BenchToolchain is the toolchain selector used for benchmarks when none is given.
	BenchToolchain = "nightly"

	// DefaultMaxCacheAge is the retention window for cached packages.
	DefaultMaxCacheAge = 7 * 24 * time.Hour

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// SearchExtensions are tried in order when a script path has no extension.
var SearchExtensions = []string{"ers", "rs"}

// CacheLayout describes the managed cache root.
type CacheLayout struct {
	Root string
}

// ProjectsDir returns the directory holding synthesized packages.
func (l CacheLayout) ProjectsDir() string {
	return filepath.Join(l.Root, ProjectsDirName)
}

// BinariesDir returns the cargo target directory shared by all packages.
func (l CacheLayout) BinariesDir() string {
	return filepath.Join(l.Root, BinariesDirName)
}

// PackageDir returns the cache slot for the given identity.
func (l CacheLayout) PackageDir(id PackageIdentity) string {
	return filepath.Join(l.ProjectsDir(), id.String())
}

// DefaultCacheRoot returns the cache root, honoring the environment override.
// It returns an empty string when no cache directory can be determined.
func DefaultCacheRoot() string {
	if p := os.Getenv(CacheDirEnvVar); p != "" {
		return p
	}
	dir, err := os.UserCacheDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, ProgramName)
}

// DefaultTemplatesDir returns the directory searched for user templates.
func DefaultTemplatesDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, ProgramName, TemplatesDirName)
}

// DefaultConfigPath returns the location of the optional config file.
func DefaultConfigPath() string {
	if p := os.Getenv(ConfigPathEnvVar); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, ProgramName, ConfigFileName)
}

// ResolvePackageDir returns where the package for id lives and whether the cache owns it.
// An explicit directory is used as given and is never owned.
func (l CacheLayout) ResolvePackageDir(id PackageIdentity, explicit string) (string, bool) {
	if explicit != "" {
		return explicit, false
	}
	return l.PackageDir(id), true
}
