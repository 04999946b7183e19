// Package toml loads pagesum configuration from a TOML file with
// environment variable overrides.
package toml

import (
	"errors"
	"io/fs"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/pelletier/go-toml/v2"

	"pagesum"
)

// DefaultPath is the config file read when no path is given.
const DefaultPath = "config.toml"

// Load reads configuration from the TOML file at path, then applies
// environment variable overrides (GEMINI_API_KEY, GEMINI_MODEL, etc.).
// A missing file is not an error; defaults plus the environment are used
// instead, so env-only operation works without any file on disk.
func Load(path string) (*pagesum.Config, error) {
	if path == "" {
		path = DefaultPath
	}

	cfg := pagesum.DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// env-only operation
	case err != nil:
		return nil, pagesum.Errorf(pagesum.EINVALID, "failed to read config file %q: %v", path, err)
	default:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return nil, pagesum.Errorf(pagesum.EINVALID, "invalid config file %q: %v", path, err)
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return nil, pagesum.Errorf(pagesum.EINVALID, "invalid environment configuration: %v", err)
	}

	return &cfg, nil
}
