// Package gc evicts stale packages from the cache.
package gc

import (
	"errors"
	iofs "io/fs"
	"path/filepath"
	"strconv"
	"time"

	"github.com/spf13/afero"
	"go.trai.ch/rscript/internal/core/domain"
	"go.trai.ch/rscript/internal/core/ports"
	"go.trai.ch/zerr"
)

// NowFunc returns the current time.
type NowFunc func() time.Time

// Collector removes package directories that have not been used within MaxAge.
type Collector struct {
	fs     afero.Fs
	logger ports.Logger
	now    NowFunc
	maxAge time.Duration
}

// Option configures a Collector.
type Option func(*Collector)

// WithNowFunc sets the clock used to compute the cutoff.
func WithNowFunc(now NowFunc) Option {
	return func(c *Collector) {
		c.now = now
	}
}

// WithMaxAge sets the retention window.
func WithMaxAge(maxAge time.Duration) Option {
	return func(c *Collector) {
		c.maxAge = maxAge
	}
}

// New creates a new Collector.
func New(fs afero.Fs, logger ports.Logger, opts ...Option) *Collector {
	c := &Collector{
		fs:     fs,
		logger: logger,
		now:    time.Now,
		maxAge: domain.DefaultMaxCacheAge,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Collect deletes every package under layout's projects directory whose last use is
// at or before now minus the retention window. Failures on single entries are logged
// and skipped. It returns the number of entries removed.
func (c *Collector) Collect(layout domain.CacheLayout) int {
	dir := layout.ProjectsDir()
	entries, err := afero.ReadDir(c.fs, dir)
	if err != nil {
		if !errors.Is(err, iofs.ErrNotExist) {
			c.logger.Warn("cannot read cache directory " + dir + ": " + err.Error())
		}
		return 0
	}

	cutoff := c.now().Add(-c.maxAge)
	removed := 0
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		path := filepath.Join(dir, entry.Name())

		used := c.lastUsed(path, entry)
		if used.After(cutoff) {
			continue
		}

		c.logger.Debug("removing stale package " + path)
		if err := c.fs.RemoveAll(path); err != nil {
			c.logger.Warn("failed to remove " + path + " from cache: " + err.Error())
			continue
		}
		removed++
	}

	if removed > 0 {
		c.logger.Debug("removed " + strconv.Itoa(removed) + " stale package(s)")
	}
	return removed
}

// lastUsed returns when a package was last used. Metadata is rewritten on every
// run, so its mtime is preferred over the directory's.
func (c *Collector) lastUsed(path string, dirInfo iofs.FileInfo) time.Time {
	if info, err := c.fs.Stat(filepath.Join(path, domain.MetadataFileName)); err == nil {
		return info.ModTime()
	}
	return dirInfo.ModTime()
}

// ClearAll removes the shared build output and then every package.
func (c *Collector) ClearAll(layout domain.CacheLayout) error {
	if err := c.fs.RemoveAll(layout.BinariesDir()); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheClearFailed.Error()), "path", layout.BinariesDir())
	}

	dir := layout.ProjectsDir()
	entries, err := afero.ReadDir(c.fs, dir)
	if errors.Is(err, iofs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheClearFailed.Error()), "path", dir)
	}

	var errs error
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		if err := c.fs.RemoveAll(path); err != nil {
			errs = errors.Join(errs, zerr.With(zerr.Wrap(err, domain.ErrCacheClearFailed.Error()), "path", path))
		}
	}
	return errs
}
