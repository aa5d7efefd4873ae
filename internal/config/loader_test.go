package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isseis/go-chksum"
	"github.com/isseis/go-chksum/algo"
	"github.com/isseis/go-chksum/internal/logging"
)

func intPtr(n int) *int { return &n }

// memLoader serves files and environment variables from maps.
func memLoader(files map[string]string, env map[string]string) *Loader {
	return NewLoaderWith(
		func(path string) ([]byte, error) {
			content, ok := files[path]
			if !ok {
				return nil, os.ErrNotExist
			}
			return []byte(content), nil
		},
		func(key string) (string, bool) {
			v, ok := env[key]
			return v, ok
		},
	)
}

func TestLoader_LoadFile(t *testing.T) {
	want := Config{
		Algorithm: "blake3",
		ChunkSize: intPtr(4096),
		Uppercase: true,
		LogLevel:  "debug",
		LogDir:    "/var/log/chksum",
	}

	files := map[string]string{
		"chksum.toml": `
algorithm = "blake3"
chunk_size = 4096
uppercase = true
log_level = "debug"
log_dir = "/var/log/chksum"
`,
		"chksum.yaml": `
algorithm: blake3
chunk_size: 4096
uppercase: true
log_level: debug
log_dir: /var/log/chksum
`,
		"chksum": `algorithm = "blake3"
chunk_size = 4096
uppercase = true
log_level = "debug"
log_dir = "/var/log/chksum"
`,
	}
	files["chksum.YML"] = files["chksum.yaml"]

	for _, name := range []string{"chksum.toml", "chksum.yaml", "chksum.YML", "chksum"} {
		t.Run(name, func(t *testing.T) {
			got, err := memLoader(files, nil).LoadFile(name)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestLoader_LoadFile_Errors(t *testing.T) {
	files := map[string]string{
		"unknown.toml": `algorithm = "md5"
colour = "red"
`,
		"unknown.yaml": "algorithm: md5\ncolour: red\n",
		"broken.toml":  "algorithm = ",
		"chksum.json":  `{"algorithm": "md5"}`,
	}

	tests := []struct {
		name    string
		path    string
		wantErr error
	}{
		{name: "empty path", path: "", wantErr: ErrInvalidConfigPath},
		{name: "missing file", path: "missing.toml", wantErr: os.ErrNotExist},
		{name: "unsupported extension", path: "chksum.json", wantErr: ErrUnsupportedFormat},
		{name: "unknown toml key", path: "unknown.toml"},
		{name: "unknown yaml key", path: "unknown.yaml"},
		{name: "malformed toml", path: "broken.toml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := memLoader(files, nil).LoadFile(tt.path)
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestLoader_Load_Precedence(t *testing.T) {
	files := map[string]string{
		"chksum.toml": `algorithm = "md5"
chunk_size = 16
log_level = "warn"
`,
	}

	t.Run("defaults only", func(t *testing.T) {
		cfg, err := memLoader(nil, nil).Load("")
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
		assert.Nil(t, cfg.ChunkSize)
	})

	t.Run("file over defaults", func(t *testing.T) {
		cfg, err := memLoader(files, nil).Load("chksum.toml")
		require.NoError(t, err)
		assert.Equal(t, "md5", cfg.Algorithm)
		assert.Equal(t, intPtr(16), cfg.ChunkSize)
		assert.Equal(t, "warn", cfg.LogLevel)
	})

	t.Run("env over file", func(t *testing.T) {
		env := map[string]string{
			EnvAlgorithm: "sha1",
			EnvChunkSize: " 32 ",
			EnvLogLevel:  "",
		}
		cfg, err := memLoader(files, env).Load("chksum.toml")
		require.NoError(t, err)
		assert.Equal(t, "sha1", cfg.Algorithm)
		assert.Equal(t, intPtr(32), cfg.ChunkSize)
		assert.Equal(t, "warn", cfg.LogLevel, "empty env value is ignored")
	})

	t.Run("bad env chunk size", func(t *testing.T) {
		_, err := memLoader(nil, map[string]string{EnvChunkSize: "8k"}).Load("")
		assert.ErrorIs(t, err, ErrInvalidEnvValue)
	})

	t.Run("file error", func(t *testing.T) {
		_, err := memLoader(nil, nil).Load("missing.toml")
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestNewLoader_ReadsRealFile(t *testing.T) {
	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	path := filepath.Join(dir, "chksum.toml")
	require.NoError(t, os.WriteFile(path, []byte("algorithm = \"sha3-256\"\n"), 0o600))

	cfg, err := NewLoader().LoadFile(path)

	require.NoError(t, err)
	assert.Equal(t, "sha3-256", cfg.Algorithm)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "alias", mutate: func(c *Config) { c.Algorithm = "SHA256" }},
		{name: "unknown algorithm", mutate: func(c *Config) { c.Algorithm = "crc32" }, wantErr: algo.ErrUnknownAlgorithm},
		{name: "zero chunk size", mutate: func(c *Config) { c.ChunkSize = intPtr(0) }, wantErr: chksum.ErrInvalidChunkSize},
		{name: "negative chunk size", mutate: func(c *Config) { c.ChunkSize = intPtr(-8) }, wantErr: chksum.ErrInvalidChunkSize},
		{name: "bad level", mutate: func(c *Config) { c.LogLevel = "loud" }, wantErr: logging.ErrInvalidLogLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestConfig_Args(t *testing.T) {
	args, err := Default().Args()
	require.NoError(t, err)
	assert.True(t, args.Equal(chksum.NewArgs()))

	cfg := Default()
	cfg.ChunkSize = intPtr(3)
	args, err = cfg.Args()
	require.NoError(t, err)
	size, ok := args.ChunkSize()
	assert.True(t, ok)
	assert.Equal(t, 3, size)

	cfg.ChunkSize = intPtr(0)
	_, err = cfg.Args()
	assert.ErrorIs(t, err, chksum.ErrInvalidChunkSize)
}

func TestConfig_AlgorithmValue(t *testing.T) {
	alg, err := Default().AlgorithmValue()
	require.NoError(t, err)
	assert.Equal(t, "sha2-256", alg.Name())
}
