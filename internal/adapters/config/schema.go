package config

import "time"

// Configfile is the on-disk shape of config.yaml.
type Configfile struct {
	CacheDir     string        `yaml:"cache_dir"`
	TemplatesDir string        `yaml:"templates_dir"`
	Toolchain    string        `yaml:"toolchain"`
	MaxCacheAge  time.Duration `yaml:"max_cache_age"`
	CargoOutput  bool          `yaml:"cargo_output"`
}
