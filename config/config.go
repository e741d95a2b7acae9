// Package config reads the defaults of the compound command line from a TOML file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// EnvStore is the environment variable that overrides the store path of the config file.
const EnvStore = "COMPOUND_STORE"

// Config holds all compound configuration.
type Config struct {
	Store   StoreConfig   `toml:"store"`
	Display DisplayConfig `toml:"display"`
}

// StoreConfig locates the user's data.
type StoreConfig struct {
	Path string `toml:"path,omitempty"`
}

// DisplayConfig holds report preferences.
type DisplayConfig struct {
	Currency     string `toml:"currency"`
	ShowCents    bool   `toml:"show_cents"`
	PayFrequency string `toml:"pay_frequency"`
	Style        string `toml:"style"` // glamour style, "auto" to follow the terminal
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Display: DisplayConfig{
			Currency:     "NZD",
			PayFrequency: "fortnightly",
			Style:        "auto",
		},
	}
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "compound")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "compound")
}

// Path returns the full path to the config file.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// DataDir returns the XDG-compliant directory of the default store.
func DataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "compound")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "compound")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) { return LoadFile(Path()) }

// LoadFile reads the config in name, returning defaults if it doesn't exist.
// Keys missing from the file keep their default value.
func LoadFile(name string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(name)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %q: %w", name, err)
	}
	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	if err := os.MkdirAll(Dir(), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(Path(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(cfg)
}

// StorePath returns the store file: from the environment, the config, or the
// data directory, in that order.
func StorePath(cfg Config) string {
	if p := os.Getenv(EnvStore); p != "" {
		return p
	}
	if cfg.Store.Path != "" {
		return cfg.Store.Path
	}
	return filepath.Join(DataDir(), "store.json")
}
