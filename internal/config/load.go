package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// envPrefix is the prefix for environment variables the loader honors,
// e.g. DEPOT_LOGGING_LEVEL and DEPOT_PATHS_GRADES_INPUT.
const envPrefix = "DEPOT"

// configFileEnv names the environment variable pointing at an optional
// config file. The programs take no command-line flags, so this is the only
// way to supply one.
const configFileEnv = "DEPOT_CONFIG"

// Load configuration from environment variables and optionally a config file.
// Environment variables take precedence over values from the config file,
// which in turn takes precedence over the built-in defaults.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	v := viper.New()

	// Defaults reproduce the hardcoded paths the demos have always used.
	v.SetDefault("logging.level", "info")
	v.SetDefault("paths.inventory_snapshot", "inventory_log.json")
	v.SetDefault("paths.grades_input", "grades.txt")
	v.SetDefault("paths.grades_report", "grade_report.txt")

	if path := os.Getenv(configFileEnv); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// validate checks the loaded configuration against the struct's validation
// tags, reporting every failing field.
func validate(cfg *Config) error {
	err := validator.New().Struct(cfg)
	if err == nil {
		return nil
	}

	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return fmt.Errorf("configuration validation setup failed: %w", err)
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, fmt.Sprintf("%s (%s)", fe.Namespace(), fe.Tag()))
		}
		return fmt.Errorf("invalid configuration: %s", strings.Join(fields, ", "))
	}

	return fmt.Errorf("configuration validation failed: %w", err)
}
