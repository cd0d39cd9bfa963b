package config

import (
	"github.com/maxviazov/auction-display-service/internal/logger"
)

type Config struct {
	App     AppConfig           `mapstructure:"app"`
	Logger  logger.LoggerConfig `mapstructure:"logger"`
	Display DisplayConfig       `mapstructure:"display"`
}

// AppConfig covers the HTTP process itself.
type AppConfig struct {
	Name    string `mapstructure:"name" validate:"required"`
	Version string `mapstructure:"version"`
	Env     string `mapstructure:"env" validate:"oneof=dev test staging prod"`
	Port    int    `mapstructure:"port" validate:"gte=1,lte=65535"`
	// ShutdownTimeout is in seconds.
	ShutdownTimeout int `mapstructure:"shutdown_timeout" validate:"gte=1"`
	// Timezone decides which calendar day an auction ends on during settlement.
	Timezone string `mapstructure:"timezone" validate:"required,timezone"`
}

// DisplayConfig tunes the calculators.
type DisplayConfig struct {
	// MaxVisiblePages bounds the number of page links shown at once.
	MaxVisiblePages int `mapstructure:"max_visible_pages" validate:"gte=1"`
}
