package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/permute/pkg/pipeline"
)

// Config holds user defaults read from the config file. Flags always win
// over config values.
type Config struct {
	Order   string `toml:"order"`
	Limit   int    `toml:"limit"`
	NoCache bool   `toml:"no_cache"`
	Serve   Serve  `toml:"serve"`
}

// Serve holds defaults for the serve command.
type Serve struct {
	Addr     string `toml:"addr"`
	RedisURL string `toml:"redis_url"`
	MongoURI string `toml:"mongo_uri"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Order: pipeline.OrderHeap,
		Limit: 0,
		Serve: Serve{
			Addr: ":8080",
		},
	}
}

// DefaultConfigPath returns the config file location using the XDG standard
// (~/.config/permute/config.toml).
func DefaultConfigPath() string {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", appName, "config.toml")
}

// LoadConfig reads the config file at path. A missing file is not an error;
// the defaults are returned.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return DefaultConfig(), fmt.Errorf("parsing %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return cfg, fmt.Errorf("parsing %s: unknown key %q", path, undecoded[0])
	}
	return cfg, nil
}
