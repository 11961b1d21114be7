package domain

import "time"

// Config holds user defaults read from the optional config file.
// Zero values mean "use the built-in default".
type Config struct {
	CacheDir     string        `yaml:"cache_dir"`
	TemplatesDir string        `yaml:"templates_dir"`
	Toolchain    string        `yaml:"toolchain"`
	MaxCacheAge  time.Duration `yaml:"max_cache_age"`
	CargoOutput  bool          `yaml:"cargo_output"`
}
