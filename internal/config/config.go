// Package config loads the chksum command configuration from a TOML or YAML
// file, applies environment overrides and converts the result into
// chksum.Args.
package config

import (
	"fmt"

	"github.com/isseis/go-chksum"
	"github.com/isseis/go-chksum/algo"
	"github.com/isseis/go-chksum/internal/logging"
)

// Default values for configuration fields
const (
	DefaultAlgorithm = "sha2-256"
	DefaultLogLevel  = "info"
)

// Config is the merged configuration of the chksum command.
// ChunkSize is a pointer so an absent key can be told apart from an explicit value.
type Config struct {
	Algorithm string `toml:"algorithm" yaml:"algorithm"`
	ChunkSize *int   `toml:"chunk_size" yaml:"chunk_size"`
	Uppercase bool   `toml:"uppercase" yaml:"uppercase"`
	LogLevel  string `toml:"log_level" yaml:"log_level"`
	LogDir    string `toml:"log_dir" yaml:"log_dir"`
}

// Default returns a Config with every default applied.
func Default() Config {
	cfg := Config{}
	ApplyDefaults(&cfg)
	return cfg
}

// ApplyDefaults fills the fields left empty by the config file.
func ApplyDefaults(cfg *Config) {
	if cfg.Algorithm == "" {
		cfg.Algorithm = DefaultAlgorithm
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
}

// Validate checks the algorithm name, the chunk size and the log level.
func (c Config) Validate() error {
	if _, err := algo.Lookup(c.Algorithm); err != nil {
		return err
	}
	if c.ChunkSize != nil && *c.ChunkSize <= 0 {
		return fmt.Errorf("%w: %d", chksum.ErrInvalidChunkSize, *c.ChunkSize)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// AlgorithmValue resolves the configured algorithm name.
func (c Config) AlgorithmValue() (chksum.Algorithm, error) {
	return algo.Lookup(c.Algorithm)
}

// Args converts the chunk size setting into chksum.Args.
func (c Config) Args() (chksum.Args, error) {
	b := chksum.NewArgsBuilder()
	if c.ChunkSize != nil {
		b = b.ChunkSize(*c.ChunkSize)
	}
	return b.Build()
}
