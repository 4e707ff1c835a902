// Package config loads the scanner configuration from TOML files.
package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const appName = "clipscan"

type Config struct {
	// ClipsDirectory is the root of the audio clip tree to scan.
	// Empty means there is nothing to do.
	ClipsDirectory string `koanf:"clips_directory"`

	Database DatabaseConfig `koanf:"database"`
}

// DatabaseConfig holds the SQLite settings. An empty path disables the
// write phase entirely; the scan still runs and is reported.
type DatabaseConfig struct {
	Path string `koanf:"path"`
}

// Load reads configuration from the default locations, later files
// overriding earlier ones.
func Load() (*Config, error) {
	return load(getConfigPaths())
}

// LoadFile reads configuration from a single explicit file.
func LoadFile(path string) (*Config, error) {
	return load([]string{path})
}

func load(paths []string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	cfg.ClipsDirectory = expandPath(cfg.ClipsDirectory)
	cfg.Database.Path = expandPath(cfg.Database.Path)

	return cfg, nil
}

func getConfigPaths() []string {
	return []string{
		// 1. XDG config dir (usually ~/.config/clipscan/config.toml)
		filepath.Join(xdg.ConfigHome, appName, "config.toml"),
		// 2. ./config.toml (pwd, highest priority)
		"config.toml",
	}
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// HasDatabase returns true if a database path is configured.
func (c *Config) HasDatabase() bool {
	return c.Database.Path != ""
}
