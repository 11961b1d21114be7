package ports

import "go.trai.ch/rscript/internal/core/domain"

// ConfigLoader defines the interface for loading user defaults.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration file. A missing file yields the zero Config.
	Load() (*domain.Config, error)
}
