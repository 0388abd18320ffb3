package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// Config holds all configuration for the application
type Config struct {
	Prepare    bool          `koanf:"prepare"`
	Collect    bool          `koanf:"collect"`
	Src        string        `koanf:"src"`
	Dst        string        `koanf:"dst"`
	Report     bool          `koanf:"report"`
	Verbose    int           `koanf:"verbose"`
	Window     time.Duration `koanf:"window"`
	Extensions []string      `koanf:"extensions"`
}

// Load loads configuration from defaults, config file, environment variables, and flags.
// Priority: Flags > Env > Config File > Defaults
func Load(f *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	// 1. Defaults
	defaults := map[string]interface{}{
		"prepare":    false,
		"collect":    false,
		"src":        "",
		"dst":        "",
		"report":     false,
		"verbose":    0,
		"window":     "48h",
		"extensions": []string{".c", ".h"},
	}
	if err := k.Load(makeMapProvider(defaults), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Config File (optional) - reduce-tree.toml
	// We ignore errors here as the file might not exist
	_ = k.Load(file.Provider("reduce-tree.toml"), toml.Parser())

	// 3. Environment Variables
	// Prefix: REDUCE_TREE_ (e.g., REDUCE_TREE_WINDOW=24h)
	if err := k.Load(env.Provider("REDUCE_TREE_", ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(
			strings.TrimPrefix(s, "REDUCE_TREE_")), "_", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. Flags
	if f != nil {
		if err := k.Load(posflag.Provider(f, ".", k), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	// Unmarshal into struct
	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// Validate checks the mode and path arguments before any tree walk begins.
// Messages are user-facing and printed verbatim by the top-level handler,
// so they keep their historical capitalized form.
func (c *Config) Validate() error {
	if c.Prepare == c.Collect {
		return errors.New("You must use either --collect or --prepare")
	}
	if c.Prepare && c.Src == "" {
		return errors.New("You must use --src in conjunction with --prepare")
	}
	if c.Collect && (c.Src == "" || c.Dst == "") {
		return errors.New("You must use --src and --dst in conjunction with --collect")
	}
	if _, err := os.Stat(c.Src); err != nil {
		return fmt.Errorf("Directory %s does not exist", c.Src)
	}
	return nil
}

// Helper to use map as a provider
type mapProvider struct {
	m map[string]interface{}
}

func makeMapProvider(m map[string]interface{}) *mapProvider {
	return &mapProvider{m: m}
}

func (p *mapProvider) Read() (map[string]interface{}, error) {
	return p.m, nil
}

func (p *mapProvider) ReadBytes() ([]byte, error) {
	return nil, fmt.Errorf("not implemented")
}
