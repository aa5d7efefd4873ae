package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/isseis/go-chksum/internal/safefileio"
)

// Environment variables that override config file values.
const (
	EnvAlgorithm = "CHKSUM_ALGORITHM"
	EnvChunkSize = "CHKSUM_CHUNK_SIZE"
	EnvLogLevel  = "CHKSUM_LOG_LEVEL"
)

// Loader reads config files and environment overrides.
type Loader struct {
	readFile  func(string) ([]byte, error)
	lookupEnv func(string) (string, bool)
}

// NewLoader creates a Loader that reads files through safefileio and the
// process environment.
func NewLoader() *Loader {
	return NewLoaderWith(safefileio.SafeReadFile, os.LookupEnv)
}

// NewLoaderWith creates a Loader with custom file and environment sources.
func NewLoaderWith(readFile func(string) ([]byte, error), lookupEnv func(string) (string, bool)) *Loader {
	return &Loader{readFile: readFile, lookupEnv: lookupEnv}
}

// Load builds a Config from the optional file at path, then the environment,
// then the defaults. The result is not validated so callers can still apply
// command line flags on top.
func (l *Loader) Load(path string) (Config, error) {
	var cfg Config
	if path != "" {
		fileCfg, err := l.LoadFile(path)
		if err != nil {
			return Config{}, err
		}
		cfg = fileCfg
	}
	if err := l.ApplyEnv(&cfg); err != nil {
		return Config{}, err
	}
	ApplyDefaults(&cfg)
	return cfg, nil
}

// LoadFile parses a single config file. The format follows the extension:
// .yaml and .yml are YAML, .toml or no extension is TOML.
func (l *Loader) LoadFile(path string) (Config, error) {
	if path == "" {
		return Config{}, ErrInvalidConfigPath
	}
	content, err := l.readFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	var cfg Config
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = decodeYAML(content, &cfg)
	case ".toml", "":
		err = decodeTOML(content, &cfg)
	default:
		return Config{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

func decodeTOML(content []byte, cfg *Config) error {
	dec := toml.NewDecoder(bytes.NewReader(content))
	dec.DisallowUnknownFields()
	return dec.Decode(cfg)
}

func decodeYAML(content []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(content))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// ApplyEnv overwrites cfg fields whose environment variable is set and non-empty.
func (l *Loader) ApplyEnv(cfg *Config) error {
	if v, ok := l.env(EnvAlgorithm); ok {
		cfg.Algorithm = v
	}
	if v, ok := l.env(EnvChunkSize); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalidEnvValue, EnvChunkSize, v)
		}
		cfg.ChunkSize = &n
	}
	if v, ok := l.env(EnvLogLevel); ok {
		cfg.LogLevel = v
	}
	return nil
}

func (l *Loader) env(key string) (string, bool) {
	v, ok := l.lookupEnv(key)
	v = strings.TrimSpace(v)
	return v, ok && v != ""
}
