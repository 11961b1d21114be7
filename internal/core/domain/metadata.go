package domain

import "slices"

// PackageMetadata records how a cached package was produced.
// A cached binary is only reused when the stored metadata matches the current invocation.
type PackageMetadata struct {
	Path         string   `json:"path,omitzero"`
	Modified     int64    `json:"modified,omitzero"`
	Template     string   `json:"template,omitzero"`
	Debug        bool     `json:"debug"`
	Prelude      []string `json:"prelude,omitzero"`
	Features     []string `json:"features,omitzero"`
	Toolchain    string   `json:"toolchain,omitzero"`
	ManifestHash string   `json:"manifest_hash"`
	ScriptHash   string   `json:"script_hash"`
}

// SameBuild reports whether both records describe the same build output.
// The script mtime is ignored because the synthesized files already carry it.
func (m *PackageMetadata) SameBuild(other *PackageMetadata) bool {
	if m == nil || other == nil {
		return false
	}
	if m.Debug != other.Debug || m.Toolchain != other.Toolchain || m.Template != other.Template {
		return false
	}
	if m.ManifestHash != other.ManifestHash || m.ScriptHash != other.ScriptHash {
		return false
	}
	return slices.Equal(m.Prelude, other.Prelude) && slices.Equal(m.Features, other.Features)
}
