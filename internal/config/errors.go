package config

import "errors"

// Configuration loading and validation errors
var (
	// ErrInvalidConfigPath is returned when the config file path is empty
	ErrInvalidConfigPath = errors.New("invalid config file path")

	// ErrUnsupportedFormat is returned for config files whose extension is not .toml, .yaml or .yml
	ErrUnsupportedFormat = errors.New("unsupported config file format")

	// ErrInvalidEnvValue is returned when an environment override cannot be parsed
	ErrInvalidEnvValue = errors.New("invalid environment variable value")
)
