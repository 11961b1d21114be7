package domain

import "go.trai.ch/zerr"

var (
	// ErrScriptNotFound is returned when no script exists at the given path or its extension fallbacks.
	ErrScriptNotFound = zerr.New("could not find script")

	// ErrInvalidEncoding is returned when a script or expression is not valid UTF-8 text.
	ErrInvalidEncoding = zerr.New("input is not valid UTF-8")

	// ErrScriptReadFailed is returned when the script file cannot be read.
	ErrScriptReadFailed = zerr.New("failed to read script")

	// ErrNoScriptSpecified is returned when an action needs a script but none was given.
	ErrNoScriptSpecified = zerr.New("no script specified")

	// ErrManifestParseFailed is returned when the embedded manifest is not valid TOML.
	ErrManifestParseFailed = zerr.New("could not parse embedded manifest")

	// ErrDefaultManifestInvalid is returned when the built-in manifest template fails to parse.
	// This indicates a programming error, not bad user input.
	ErrDefaultManifestInvalid = zerr.New("could not parse default manifest")

	// ErrDocCommentMalformed is returned when the leading doc comment has inconsistent indentation.
	// It is a manifest parse failure.
	ErrDocCommentMalformed = zerr.Wrap(ErrManifestParseFailed, "malformed doc comment")

	// ErrMergeConflict is returned when a manifest fragment declares a table where the default holds a non-table.
	ErrMergeConflict = zerr.New("cannot merge manifests: cannot merge table and non-table values")

	// ErrManifestEncodeFailed is returned when the synthesized manifest cannot be serialized.
	ErrManifestEncodeFailed = zerr.New("failed to encode manifest")

	// ErrTemplateNotFound is returned when a named template does not exist and has no builtin fallback.
	ErrTemplateNotFound = zerr.New("template not found")

	// ErrUnknownSubstitution is returned when a template references an unknown substitution.
	ErrUnknownSubstitution = zerr.New("substitution in template is unknown")

	// ErrTemplatesDirInvalid is returned when the templates directory exists but is not a directory.
	ErrTemplatesDirInvalid = zerr.New("cannot list template directory")

	// ErrPackageCreateFailed is returned when the package directory cannot be created.
	ErrPackageCreateFailed = zerr.New("failed to create package directory")

	// ErrPackageWriteFailed is returned when a package file cannot be written.
	ErrPackageWriteFailed = zerr.New("failed to write package file")

	// ErrCacheDirUnavailable is returned when no cache directory can be determined.
	ErrCacheDirUnavailable = zerr.New("cannot get cache directory")

	// ErrCacheClearFailed is returned when clearing the cache fails.
	ErrCacheClearFailed = zerr.New("failed to clear cache")

	// ErrStoreReadFailed is returned when the package metadata cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read package metadata")

	// ErrStoreUnmarshalFailed is returned when the package metadata cannot be unmarshaled.
	ErrStoreUnmarshalFailed = zerr.New("failed to unmarshal package metadata")

	// ErrStoreMarshalFailed is returned when the package metadata cannot be marshaled.
	ErrStoreMarshalFailed = zerr.New("failed to marshal package metadata")

	// ErrStoreWriteFailed is returned when the package metadata cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write package metadata")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrToolchainFailed is returned when cargo exits with a non-zero status.
	ErrToolchainFailed = zerr.New("toolchain invocation failed")

	// ErrToolchainStartFailed is returned when cargo cannot be started at all.
	ErrToolchainStartFailed = zerr.New("failed to start toolchain")

	// ErrExecFailed is returned when the built binary cannot be executed.
	ErrExecFailed = zerr.New("failed to execute binary")

	// ErrConflictingOptions is returned when mutually exclusive options are combined.
	ErrConflictingOptions = zerr.New("conflicting options")
)
