// Package config loads the optional process-wide configuration file: the
// default navigation-bar item list, breadcrumb formatting, and the user
// attributes evaluated by access rules.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/oakwood-commons/wayfind/pkg/menu"
)

// EnvConfigPath overrides the default config file location.
const EnvConfigPath = "WAYFIND_CONFIG"

// Config is the process-wide configuration. Every field is optional; zero
// values fall back to built-in defaults.
type Config struct {
	// Separator joins breadcrumb keys in banner output.
	Separator string `yaml:"separator" toml:"separator"`

	// NoColor disables styled terminal output.
	NoColor bool `yaml:"no_color" toml:"no_color"`

	// NavBar is the process-wide default navigation bar, used on screens
	// without a per-screen override. Empty means the bar is disabled on
	// such screens.
	NavBar []menu.NavBarItem `yaml:"navbar" toml:"navbar"`

	// User holds the attributes access rules evaluate (name, roles, ...).
	User map[string]any `yaml:"user" toml:"user"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{Separator: " > "}
}

// Load reads a config file, applying defaults for absent fields. Files
// ending in .toml are decoded as TOML, everything else as YAML. With an
// empty path the WAYFIND_CONFIG environment variable and then the standard
// user config location are tried; a missing file at those locations is not
// an error.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = defaultPath()
		if path == "" {
			return cfg, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := unmarshal(path, data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.Separator == "" {
		cfg.Separator = Default().Separator
	}
	return cfg, nil
}

// unmarshal decodes by file extension. YAML is the default; .toml files
// use the TOML decoder.
func unmarshal(path string, data []byte, cfg *Config) error {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return toml.Unmarshal(data, cfg)
	}
	return yaml.Unmarshal(data, cfg)
}

func defaultPath() string {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "wayfind", "config.yaml")
}
