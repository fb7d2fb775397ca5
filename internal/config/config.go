// Package config loads the replctl configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/replkit/replctl/internal/nrepl"
)

// Config is the resolved client configuration. File values override
// defaults; command-line flags override both.
type Config struct {
	Addr           string
	ConnectTimeout time.Duration
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	StatePath      string
}

type fileConfig struct {
	Addr           string `toml:"addr"`
	ConnectTimeout string `toml:"connect_timeout"`
	ReadTimeout    string `toml:"read_timeout"`
	WriteTimeout   string `toml:"write_timeout"`
	StatePath      string `toml:"state_path"`
}

func Default() Config {
	transport := nrepl.DefaultConfig()
	return Config{
		Addr:           "127.0.0.1:7888",
		ConnectTimeout: transport.ConnectTimeout,
		ReadTimeout:    transport.ReadTimeout,
		WriteTimeout:   transport.WriteTimeout,
	}
}

// Transport returns the timeout set for the protocol client.
func (c Config) Transport() nrepl.Config {
	return nrepl.Config{
		ConnectTimeout: c.ConnectTimeout,
		ReadTimeout:    c.ReadTimeout,
		WriteTimeout:   c.WriteTimeout,
	}
}

// DefaultPath places the config file under the user config directory.
func DefaultPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("config: resolve config dir: %w", err)
	}
	return filepath.Join(base, "replctl", "replctl.toml"), nil
}

// Load reads path over the defaults. Absent keys keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("config: load %s: %w", path, err)
	}

	if meta.IsDefined("addr") {
		if addr := strings.TrimSpace(raw.Addr); addr != "" {
			cfg.Addr = addr
		}
	}
	if meta.IsDefined("connect_timeout") {
		d, err := parseTimeout(raw.ConnectTimeout)
		if err != nil {
			return Config{}, fmt.Errorf("config: connect_timeout: %w", err)
		}
		cfg.ConnectTimeout = d
	}
	if meta.IsDefined("read_timeout") {
		d, err := parseTimeout(raw.ReadTimeout)
		if err != nil {
			return Config{}, fmt.Errorf("config: read_timeout: %w", err)
		}
		cfg.ReadTimeout = d
	}
	if meta.IsDefined("write_timeout") {
		d, err := parseTimeout(raw.WriteTimeout)
		if err != nil {
			return Config{}, fmt.Errorf("config: write_timeout: %w", err)
		}
		cfg.WriteTimeout = d
	}
	if meta.IsDefined("state_path") {
		cfg.StatePath = strings.TrimSpace(raw.StatePath)
	}

	return cfg, nil
}

// LoadIfPresent behaves like Load but treats a missing file as defaults.
func LoadIfPresent(path string) (Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}
	return Load(path)
}

func parseTimeout(raw string) (time.Duration, error) {
	d, err := time.ParseDuration(strings.TrimSpace(raw))
	if err != nil {
		return 0, err
	}
	if d <= 0 {
		return 0, fmt.Errorf("non-positive duration %q", raw)
	}
	return d, nil
}
