// Package synth builds the Cargo package that wraps a script or expression.
package synth

import (
	"strings"

	"go.trai.ch/rscript/internal/core/domain"
	"go.trai.ch/rscript/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultManifest is the manifest every package starts from.
const DefaultManifest = `[[bin]]
name = "#{bin_name}"
path = "#{file}.rs"

[package]
authors = ["Anonymous"]
edition = "2018"
name = "#{name}"
version = "0.1.0"
`

const (
	wrapperHeader = "fn main() -> Result<(), Box<dyn std::error::Error+Sync+Send>> { {"
	wrapperFooter = "\n} Ok(()) }"
)

var mainPrefixes = []string{"fn main(", "pub fn main(", "async fn main(", "pub async fn main("}

// Request is one synthesis job.
type Request struct {
	Input    domain.Input
	Identity domain.PackageIdentity

	// Cwd anchors relative manifest paths for expressions.
	Cwd string

	Profile  domain.Profile
	Features []string

	// Prelude holds crate attributes placed ahead of the generated source.
	Prelude []string
}

// Synthesizer turns inputs into package contents.
type Synthesizer struct {
	extractor ports.ManifestExtractor
	codec     ports.ManifestCodec
	templates ports.TemplateStore
	logger    ports.Logger
}

// New creates a new Synthesizer.
func New(
	extractor ports.ManifestExtractor,
	codec ports.ManifestCodec,
	templates ports.TemplateStore,
	logger ports.Logger,
) *Synthesizer {
	return &Synthesizer{
		extractor: extractor,
		codec:     codec,
		templates: templates,
		logger:    logger,
	}
}

// Synthesize produces the manifest and entry-point source for req.
// The returned package has no directory yet.
func (s *Synthesizer) Synthesize(req Request) (*domain.SynthesizedPackage, error) {
	in := req.Input

	fragment, source, err := s.split(in)
	if err != nil {
		return nil, err
	}
	source = withPrelude(req.Prelude, source)

	binName := in.PackageName() + "_" + req.Identity.String()
	defaults, err := s.defaultManifest(in.PackageName(), binName, in.SafeName())
	if err != nil {
		return nil, err
	}

	merged, err := domain.MergeManifest(defaults, fragment)
	if err != nil {
		return nil, err
	}
	merged = domain.FixManifestPaths(merged, in.BasePath(req.Cwd))

	text, err := s.codec.Encode(merged)
	if err != nil {
		return nil, err
	}

	return &domain.SynthesizedPackage{
		Identity:    req.Identity,
		PackageName: in.PackageName(),
		BinaryName:  binName,
		SafeName:    in.SafeName(),
		Manifest:    text,
		Source:      source,
		Profile:     req.Profile,
		Features:    req.Features,
	}, nil
}

// split returns the manifest fragment and the expanded source for an input.
func (s *Synthesizer) split(in domain.Input) (domain.Table, string, error) {
	if in.IsFile() {
		parts, err := s.extractor.Extract(in.Content)
		if err != nil {
			return nil, "", zerr.With(err, "script", in.Path)
		}
		fragment, err := s.decodeFragment(parts)
		if err != nil {
			return nil, "", zerr.With(err, "script", in.Path)
		}

		tpl, err := s.templates.Get(domain.FileTemplateName)
		if err != nil {
			return nil, "", err
		}
		source, err := domain.ExpandTemplate(tpl, map[string]string{
			domain.ScriptSubstitution: WrapSource(parts.Body, parts.Shebang),
		})
		return fragment, source, err
	}

	name := in.TemplateName()
	tpl, err := s.templates.Get(name)
	if err != nil {
		return nil, "", err
	}

	parts, err := s.extractor.Extract(tpl)
	if err != nil {
		return nil, "", zerr.With(err, "template", name)
	}
	fragment, err := s.decodeFragment(parts)
	if err != nil {
		return nil, "", zerr.With(err, "template", name)
	}

	source, err := domain.ExpandTemplate(parts.Body, map[string]string{
		domain.ScriptSubstitution: in.Content,
	})
	return fragment, source, err
}

// withPrelude puts each item on its own line ahead of source.
func withPrelude(items []string, source string) string {
	if len(items) == 0 {
		return source
	}
	return strings.Join(items, "\n") + "\n" + source
}

func (s *Synthesizer) decodeFragment(parts domain.ScriptParts) (domain.Table, error) {
	if !parts.HasFragment {
		return domain.Table{}, nil
	}
	s.logger.Debug("found embedded manifest")
	return s.codec.Decode(parts.Fragment)
}

func (s *Synthesizer) defaultManifest(name, binName, file string) (domain.Table, error) {
	text, err := domain.ExpandTemplate(DefaultManifest, map[string]string{
		"name":     quoteEscape(name),
		"bin_name": quoteEscape(binName),
		"file":     quoteEscape(file),
	})
	if err != nil {
		return nil, err
	}

	table, err := s.codec.Decode(text)
	if err != nil {
		return nil, zerr.Wrap(domain.ErrDefaultManifestInvalid, err.Error())
	}
	return table, nil
}

// quoteEscape makes s safe inside a basic TOML string.
func quoteEscape(s string) string {
	return strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(s)
}

// HasMain reports whether any line declares an entry point.
func HasMain(source string) bool {
	for line := range strings.Lines(source) {
		line = strings.TrimLeft(line, " \t")
		for _, prefix := range mainPrefixes {
			if strings.HasPrefix(line, prefix) {
				return true
			}
		}
	}
	return false
}

// WrapSource makes body a complete program with user line numbers intact.
// shebang reports that a first line was stripped from body's original text.
func WrapSource(body string, shebang bool) string {
	if HasMain(body) {
		if shebang {
			return "\n" + body
		}
		return body
	}

	sep := " "
	if shebang {
		sep = "\n"
	}
	return wrapperHeader + sep + body + wrapperFooter
}
