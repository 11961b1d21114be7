package domain

import (
	"sort"
	"strings"
)

// Environment variables exposed to the cargo build and the script.
const (
	EnvScriptPath    = "RUST_SCRIPT_PATH"
	EnvSafeName      = "RUST_SCRIPT_SAFE_NAME"
	EnvPackageName   = "RUST_SCRIPT_PKG_NAME"
	EnvBasePath      = "RUST_SCRIPT_BASE_PATH"
	EnvRustBacktrace = "RUST_BACKTRACE"
)

// ChildEnv carries the values a script can read about its own location.
type ChildEnv struct {
	ScriptPath  string
	SafeName    string
	PackageName string
	BasePath    string
}

// Vars returns the values as KEY=VALUE pairs.
func (e ChildEnv) Vars() []string {
	return []string{
		EnvScriptPath + "=" + e.ScriptPath,
		EnvSafeName + "=" + e.SafeName,
		EnvPackageName + "=" + e.PackageName,
		EnvBasePath + "=" + e.BasePath,
	}
}

// Merge overlays the script variables on base, a KEY=VALUE list such as os.Environ().
// RUST_BACKTRACE defaults to 1 when base does not set it. The result is sorted.
func (e ChildEnv) Merge(base []string) []string {
	vars := make(map[string]string, len(base)+5)
	for _, entry := range base {
		if k, v, ok := strings.Cut(entry, "="); ok {
			vars[k] = v
		}
	}
	if _, ok := vars[EnvRustBacktrace]; !ok {
		vars[EnvRustBacktrace] = "1"
	}
	for _, entry := range e.Vars() {
		k, v, _ := strings.Cut(entry, "=")
		vars[k] = v
	}

	out := make([]string, 0, len(vars))
	for k, v := range vars {
		out = append(out, k+"="+v)
	}
	sort.Strings(out)
	return out
}

// Invocation is everything the toolchain adapter needs to drive cargo.
type Invocation struct {
	Kind         BuildKind
	Toolchain    string
	ManifestPath string
	TargetDir    string
	Profile      Profile
	Features     []string
	Quiet        bool
	Color        bool
	Args         []string
	Env          ChildEnv
}
