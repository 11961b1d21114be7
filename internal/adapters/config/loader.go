// Package config loads the optional user configuration file.
package config

import (
	"bytes"
	"errors"
	"io"
	iofs "io/fs"
	"strings"

	"github.com/spf13/afero"
	"go.trai.ch/rscript/internal/core/domain"
	"go.trai.ch/rscript/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	fs   afero.Fs
	path string
}

// NewLoader creates a Loader reading the file at path. An empty path disables loading.
func NewLoader(fs afero.Fs, path string) *Loader {
	return &Loader{fs: fs, path: path}
}

// Load reads the configuration. A missing file yields the zero Config.
func (l *Loader) Load() (*domain.Config, error) {
	if l.path == "" {
		return &domain.Config{}, nil
	}

	data, err := afero.ReadFile(l.fs, l.path)
	if errors.Is(err, iofs.ErrNotExist) {
		return &domain.Config{}, nil
	}
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", l.path)
	}

	return Parse(data, l.path)
}

// Parse decodes config file content. Unknown keys are rejected.
func Parse(data []byte, path string) (*domain.Config, error) {
	var file Configfile

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}

	if file.MaxCacheAge < 0 {
		return nil, zerr.With(zerr.With(zerr.Wrap(domain.ErrConfigParseFailed, ""), "path", path), "max_cache_age", file.MaxCacheAge.String())
	}

	return &domain.Config{
		CacheDir:     strings.TrimSpace(file.CacheDir),
		TemplatesDir: strings.TrimSpace(file.TemplatesDir),
		Toolchain:    strings.TrimSpace(file.Toolchain),
		MaxCacheAge:  file.MaxCacheAge,
		CargoOutput:  file.CargoOutput,
	}, nil
}
