package fs

import (
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/spf13/afero"
	"go.trai.ch/rscript/internal/core/domain"
	"go.trai.ch/rscript/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.InputResolver = (*Resolver)(nil)

// Resolver turns a command line target into a typed input.
type Resolver struct {
	fs    afero.Fs
	getwd func() (string, error)
}

// NewResolver creates a new Resolver reading scripts from fs.
func NewResolver(fs afero.Fs) *Resolver {
	return &Resolver{fs: fs, getwd: os.Getwd}
}

// WithGetwd replaces the working directory lookup.
func (r *Resolver) WithGetwd(getwd func() (string, error)) *Resolver {
	r.getwd = getwd
	return r
}

// Resolve classifies target as an expression or a script file and loads its content.
// A script path without an extension also matches the search extensions, in order.
func (r *Resolver) Resolve(target string, expression bool, template string) (domain.Input, error) {
	if expression {
		if !utf8.ValidString(target) {
			return domain.Input{}, domain.ErrInvalidEncoding
		}
		return domain.NewExpressionInput(target, template), nil
	}

	if target == "" {
		return domain.Input{}, domain.ErrNoScriptSpecified
	}

	path, info, err := r.find(target)
	if err != nil {
		return domain.Input{}, err
	}

	content, err := afero.ReadFile(r.fs, path)
	if err != nil {
		return domain.Input{}, zerr.With(zerr.Wrap(err, domain.ErrScriptReadFailed.Error()), "path", path)
	}
	if !utf8.Valid(content) {
		return domain.Input{}, zerr.With(zerr.Wrap(domain.ErrInvalidEncoding, ""), "path", path)
	}

	abs := path
	if !filepath.IsAbs(abs) {
		cwd, err := r.getwd()
		if err != nil {
			return domain.Input{}, zerr.Wrap(err, "failed to get working directory")
		}
		abs = filepath.Join(cwd, path)
	}

	return domain.NewFileInput(abs, string(content), info.ModTime().UnixMilli()), nil
}

// ResolveLoop wraps closure as a loop input.
func (r *Resolver) ResolveLoop(closure string, count bool) (domain.Input, error) {
	if closure == "" {
		return domain.Input{}, domain.ErrNoScriptSpecified
	}
	if !utf8.ValidString(closure) {
		return domain.Input{}, domain.ErrInvalidEncoding
	}
	return domain.NewLoopInput(closure, count), nil
}

func (r *Resolver) find(target string) (string, iofs.FileInfo, error) {
	candidates := []string{target}
	if filepath.Ext(target) == "" {
		for _, ext := range domain.SearchExtensions {
			candidates = append(candidates, target+"."+ext)
		}
	}

	for _, candidate := range candidates {
		info, err := r.fs.Stat(candidate)
		if errors.Is(err, iofs.ErrNotExist) {
			continue
		}
		if err != nil {
			return "", nil, zerr.With(zerr.Wrap(err, domain.ErrScriptReadFailed.Error()), "path", candidate)
		}
		if info.IsDir() {
			continue
		}
		return candidate, info, nil
	}

	return "", nil, zerr.With(zerr.Wrap(domain.ErrScriptNotFound, ""), "script", target)
}

