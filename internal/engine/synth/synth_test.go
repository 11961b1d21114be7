package synth_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rscript/internal/adapters/manifest"
	"go.trai.ch/rscript/internal/adapters/templates"
	"go.trai.ch/rscript/internal/core/domain"
	"go.trai.ch/rscript/internal/core/ports/mocks"
	"go.trai.ch/rscript/internal/engine/synth"
	"go.uber.org/mock/gomock"
)

const templatesDir = "/config/templates"

func newSynthesizer(t *testing.T, userTemplates map[string]string) *synth.Synthesizer {
	t.Helper()

	fsys := afero.NewMemMapFs()
	for name, body := range userTemplates {
		require.NoError(t, afero.WriteFile(fsys, filepath.Join(templatesDir, name+".rs"), []byte(body), domain.FilePerm))
	}

	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Debug(gomock.Any()).AnyTimes()

	return synth.New(manifest.NewExtractor(), manifest.NewCodec(), templates.NewStore(fsys, templatesDir), mockLogger)
}

func TestSynthesizer_File(t *testing.T) {
	s := newSynthesizer(t, nil)

	content := "//! ```cargo\n//! [dependencies]\n//! time = \"0.1.25\"\n//! ```\nprintln!(\"{}\", time::now().rfc822z());\n"
	pkg, err := s.Synthesize(synth.Request{
		Input:    domain.NewFileInput("/scripts/hello.rs", content, 0),
		Identity: "abc",
		Cwd:      "/work",
		Profile:  domain.ProfileRelease,
		Features: []string{"x"},
	})
	require.NoError(t, err)

	assert.Equal(t, "hello", pkg.PackageName)
	assert.Equal(t, "hello_abc", pkg.BinaryName)
	assert.Equal(t, "hello", pkg.SafeName)
	assert.Equal(t, domain.ProfileRelease, pkg.Profile)
	assert.Equal(t, []string{"x"}, pkg.Features)
	assert.Equal(t, synth.WrapSource(content, false), pkg.Source)

	g := goldie.New(t)
	g.Assert(t, "file_manifest", []byte(pkg.Manifest))
}

func TestSynthesizer_File_RewritesRelativePaths(t *testing.T) {
	s := newSynthesizer(t, nil)

	content := "/*!\n```cargo\n[dependencies]\nlocal = { path = \"lib/local\" }\n```\n*/\nfn main() {}\n"
	pkg, err := s.Synthesize(synth.Request{
		Input:    domain.NewFileInput("/scripts/hello.rs", content, 0),
		Identity: "abc",
		Cwd:      "/work",
	})
	require.NoError(t, err)

	table, err := manifest.NewCodec().Decode(pkg.Manifest)
	require.NoError(t, err)
	path, ok := table.Lookup("dependencies", "local", "path")
	require.True(t, ok)
	assert.Equal(t, domain.String(filepath.Join("/scripts", "lib/local")), path)
	assert.Equal(t, content, pkg.Source)
}

func TestSynthesizer_File_FragmentOverridesPackage(t *testing.T) {
	s := newSynthesizer(t, nil)

	content := "//! ```cargo\n//! [package]\n//! edition = \"2021\"\n//! ```\nfn main() {}\n"
	pkg, err := s.Synthesize(synth.Request{
		Input:    domain.NewFileInput("/scripts/hello.rs", content, 0),
		Identity: "abc",
	})
	require.NoError(t, err)

	table, err := manifest.NewCodec().Decode(pkg.Manifest)
	require.NoError(t, err)
	edition, _ := table.Lookup("package", "edition")
	assert.Equal(t, domain.String("2021"), edition)
	name, _ := table.Lookup("package", "name")
	assert.Equal(t, domain.String("hello"), name)
}

func TestSynthesizer_File_InvalidFragment(t *testing.T) {
	s := newSynthesizer(t, nil)

	content := "//! ```cargo\n//! [dependencies\n//! ```\nfn main() {}\n"
	_, err := s.Synthesize(synth.Request{
		Input:    domain.NewFileInput("/scripts/hello.rs", content, 0),
		Identity: "abc",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrManifestParseFailed)
}

func TestSynthesizer_File_MergeConflict(t *testing.T) {
	s := newSynthesizer(t, nil)

	content := "//! ```cargo\n//! [bin]\n//! name = \"other\"\n//! ```\nfn main() {}\n"
	_, err := s.Synthesize(synth.Request{
		Input:    domain.NewFileInput("/scripts/hello.rs", content, 0),
		Identity: "abc",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMergeConflict)
	assert.ErrorContains(t, err, "cannot merge table and non-table values")
}

func TestSynthesizer_File_QuotedName(t *testing.T) {
	s := newSynthesizer(t, nil)

	pkg, err := s.Synthesize(synth.Request{
		Input:    domain.NewFileInput(`/scripts/we"ird.rs`, "fn main() {}", 0),
		Identity: "abc",
	})
	require.NoError(t, err)

	table, err := manifest.NewCodec().Decode(pkg.Manifest)
	require.NoError(t, err)
	bins, ok := table["bin"].(domain.Array)
	require.True(t, ok)
	require.Len(t, bins, 1)
	path, _ := bins[0].(domain.Table).Lookup("path")
	assert.Equal(t, domain.String(`we"ird.rs`), path)
}

func TestSynthesizer_Expression(t *testing.T) {
	s := newSynthesizer(t, nil)

	pkg, err := s.Synthesize(synth.Request{
		Input:    domain.NewExpressionInput("1 + 2", ""),
		Identity: "abc",
		Cwd:      "/work",
		Profile:  domain.ProfileRelease,
	})
	require.NoError(t, err)

	assert.Equal(t, "expr", pkg.SafeName)
	assert.Contains(t, pkg.Source, "match {1 + 2} {")
	assert.NotContains(t, pkg.Source, "#{script}")

	g := goldie.New(t)
	g.Assert(t, "expr_manifest", []byte(pkg.Manifest))
}

func TestSynthesizer_Expression_UserTemplateWithManifest(t *testing.T) {
	tpl := "//! ```cargo\n//! [dependencies]\n//! regex = \"1\"\n//! ```\nfn main() { println!(\"{}\", #{script}); }\n"
	s := newSynthesizer(t, map[string]string{"re": tpl})

	pkg, err := s.Synthesize(synth.Request{
		Input:    domain.NewExpressionInput(`"x"`, "re"),
		Identity: "abc",
		Cwd:      "/work",
	})
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(pkg.Source, "fn main() { println!(\"{}\", \"x\"); }\n"))

	table, err := manifest.NewCodec().Decode(pkg.Manifest)
	require.NoError(t, err)
	regex, ok := table.Lookup("dependencies", "regex")
	require.True(t, ok)
	assert.Equal(t, domain.String("1"), regex)
}

func TestSynthesizer_Expression_MissingTemplate(t *testing.T) {
	s := newSynthesizer(t, nil)

	_, err := s.Synthesize(synth.Request{
		Input:    domain.NewExpressionInput("1", "nope"),
		Identity: "abc",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTemplateNotFound)
}

func TestSynthesizer_Expression_UnknownSubstitution(t *testing.T) {
	s := newSynthesizer(t, map[string]string{"bad": "fn main() { #{nope} }"})

	_, err := s.Synthesize(synth.Request{
		Input:    domain.NewExpressionInput("1", "bad"),
		Identity: "abc",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnknownSubstitution)
}

func TestSynthesizer_UserFileTemplate(t *testing.T) {
	s := newSynthesizer(t, map[string]string{"file": "// prelude\n#{script}"})

	pkg, err := s.Synthesize(synth.Request{
		Input:    domain.NewFileInput("/scripts/hello.rs", "fn main() {}", 0),
		Identity: "abc",
	})
	require.NoError(t, err)
	assert.Equal(t, "// prelude\nfn main() {}", pkg.Source)
}

func TestSynthesizer_Loop(t *testing.T) {
	s := newSynthesizer(t, nil)

	pkg, err := s.Synthesize(synth.Request{
		Input:    domain.NewLoopInput("|l| l.len()", false),
		Identity: "abc",
		Cwd:      "/work",
	})
	require.NoError(t, err)

	assert.Equal(t, "loop", pkg.SafeName)
	assert.Equal(t, "loop_abc", pkg.BinaryName)
	assert.Contains(t, pkg.Source, "{|l| l.len()}")
	assert.Contains(t, pkg.Source, "FnMut(&str) -> T")
	assert.NotContains(t, pkg.Source, "#{script}")
}

func TestSynthesizer_Loop_Count(t *testing.T) {
	s := newSynthesizer(t, nil)

	pkg, err := s.Synthesize(synth.Request{
		Input:    domain.NewLoopInput("|l, n| (n, l.len())", true),
		Identity: "abc",
	})
	require.NoError(t, err)

	assert.Contains(t, pkg.Source, "{|l, n| (n, l.len())}")
	assert.Contains(t, pkg.Source, "closure(&line_buffer, count);")
}

func TestSynthesizer_Loop_UserTemplate(t *testing.T) {
	s := newSynthesizer(t, map[string]string{"loop": "fn main() { let _f = #{script}; }"})

	pkg, err := s.Synthesize(synth.Request{
		Input:    domain.NewLoopInput("|l| l", false),
		Identity: "abc",
	})
	require.NoError(t, err)
	assert.Equal(t, "fn main() { let _f = |l| l; }", pkg.Source)
}

func TestSynthesizer_Prelude(t *testing.T) {
	s := newSynthesizer(t, nil)

	pkg, err := s.Synthesize(synth.Request{
		Input:    domain.NewExpressionInput("1", ""),
		Identity: "abc",
		Prelude:  domain.PreludeItems([]string{"never_type", "box_patterns"}),
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(pkg.Source, "#![feature(box_patterns)]\n#![feature(never_type)]\n"))
	assert.Contains(t, pkg.Source, "match {1} {")
}
