// Package config handles configuration loading, parsing, and validation
// from environment variables and an optional config file. It provides
// type-safe access to the few settings the demo programs honor while keeping
// configuration details separate from the demo logic.
package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Logging LoggingConfig `mapstructure:"logging" validate:"required"`
	Paths   PathsConfig   `mapstructure:"paths" validate:"required"`
}

// LoggingConfig contains all logging-related configuration settings.
type LoggingConfig struct {
	Level string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
}

// PathsConfig contains the file locations the demo programs read and write.
// The defaults reproduce the paths the demos have always used; overriding
// them is the only configuration most runs ever need.
type PathsConfig struct {
	InventorySnapshot string `mapstructure:"inventory_snapshot" validate:"required"`
	GradesInput       string `mapstructure:"grades_input" validate:"required"`
	GradesReport      string `mapstructure:"grades_report" validate:"required"`
}
