package cas_test

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rscript/internal/adapters/cas"
	"go.trai.ch/rscript/internal/core/domain"
)

func TestStore_PutGet(t *testing.T) {
	mem := afero.NewMemMapFs()
	store := cas.NewStore(mem)

	meta := domain.PackageMetadata{
		Path:         "/scripts/hello.rs",
		Modified:     1_700_000_000_000,
		Debug:        true,
		Features:     []string{"a", "b"},
		Toolchain:    "stable",
		ManifestHash: cas.Fingerprint("[package]"),
		ScriptHash:   cas.Fingerprint("fn main() {}"),
	}

	require.NoError(t, store.Put("/cache/projects/abc", meta))

	got, err := store.Get("/cache/projects/abc")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, meta, *got)
}

func TestStore_Get_Missing(t *testing.T) {
	got, err := cas.NewStore(afero.NewMemMapFs()).Get("/cache/projects/none")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_Get_Empty(t *testing.T) {
	mem := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(mem, "/pkg/metadata.json", nil, 0o644))

	got, err := cas.NewStore(mem).Get("/pkg")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_Get_Corrupt(t *testing.T) {
	mem := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(mem, "/pkg/metadata.json", []byte("{not json"), 0o644))

	_, err := cas.NewStore(mem).Get("/pkg")
	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to unmarshal package metadata")
}

func TestStore_Put_ReadOnly(t *testing.T) {
	err := cas.NewStore(afero.NewReadOnlyFs(afero.NewMemMapFs())).Put("/pkg", domain.PackageMetadata{})
	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to write package metadata")
}

func TestStore_Put_OmitsZeroFields(t *testing.T) {
	mem := afero.NewMemMapFs()
	require.NoError(t, cas.NewStore(mem).Put("/pkg", domain.PackageMetadata{ScriptHash: "x"}))

	data, err := afero.ReadFile(mem, "/pkg/metadata.json")
	require.NoError(t, err)
	assert.NotContains(t, string(data), "toolchain")
	assert.Contains(t, string(data), `"script_hash": "x"`)
}

func TestFingerprint(t *testing.T) {
	assert.Equal(t, "ef46db3751d8e999", cas.Fingerprint(""))
	assert.Len(t, cas.Fingerprint("fn main() {}"), 16)
	assert.NotEqual(t, cas.Fingerprint("a"), cas.Fingerprint("b"))
}
