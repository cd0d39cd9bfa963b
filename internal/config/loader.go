package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/maxviazov/auction-display-service/internal/display"
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "auction-display-service")
	v.SetDefault("app.version", "0.1.0")
	v.SetDefault("app.env", "prod")
	v.SetDefault("app.port", 8080)
	v.SetDefault("app.shutdown_timeout", 10)
	v.SetDefault("app.timezone", "UTC")

	// Logger keys are registered so APP_LOGGER_* env vars are picked up;
	// empty values are filled by logger.New based on env.
	for _, k := range []string{"level", "format", "output_target", "time_field", "time_format", "service_name", "service_version", "env", "stacktrace_min_level"} {
		v.SetDefault("logger."+k, "")
	}
	v.SetDefault("logger.with_caller", false)
	v.SetDefault("logger.stacktrace", false)

	v.SetDefault("display.max_visible_pages", display.DefaultMaxVisiblePages)
}

// Load reads the YAML file at path and applies APP_* environment overrides
// (APP_APP_PORT, APP_DISPLAY_MAX_VISIBLE_PAGES, ...). A missing file is not
// an error: defaults plus environment are enough to run.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.SetEnvPrefix("APP")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// The logger section is validated by logger.New once its env-based defaults are applied.
	val := validator.New()
	if err := val.Struct(config.App); err != nil {
		return nil, fmt.Errorf("app config validation error: %w", err)
	}
	if err := val.Struct(config.Display); err != nil {
		return nil, fmt.Errorf("display config validation error: %w", err)
	}
	return &config, nil
}
