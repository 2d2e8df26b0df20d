// Package config loads cxxdoc's YAML configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the name of the cxxdoc configuration file.
const FileName = "cxxdoc.yaml"

// ErrInvalidConfig is returned when config validation fails.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the settings that drive a build (§3.4).
type Config struct {
	// Input holds glob patterns, relative to the build root (the command's
	// path argument, or the working directory), selecting translation
	// units ("**" matches any number of
	// path segments). pipeline.Run discovers the whole tree (C8) and keeps
	// only the files discover.MatchAny accepts against these patterns;
	// they are never passed to the filesystem directly.
	Input  []string    `yaml:"input"`
	Output string      `yaml:"output"`
	Groups []string    `yaml:"groups"`
	Cache  string      `yaml:"cache"`
	Serve  ServeConfig `yaml:"serve"`
}

// ServeConfig holds settings for the MCP server (C12).
type ServeConfig struct {
	Address string `yaml:"address"`
}

// DefaultConfig returns the configuration used when no file exists or a
// field is left unset.
func DefaultConfig() *Config {
	return &Config{
		Input:  []string{"**/*.hpp", "**/*.cpp", "**/*.h", "**/*.cc"},
		Output: "docs",
		Groups: nil,
		Cache:  ".cxxdoc-cache.db",
		Serve: ServeConfig{
			Address: "",
		},
	}
}

// Load reads FileName from dir, merging it over DefaultConfig. A missing
// file is not an error: it yields the defaults.
func Load(dir string) (*Config, error) {
	return LoadFromPath(filepath.Join(dir, FileName))
}

// LoadFromPath reads config from a specific file path.
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	loaded := &Config{}
	if err := yaml.Unmarshal(data, loaded); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	merged := merge(loaded, DefaultConfig())
	if err := validate(merged); err != nil {
		return nil, err
	}
	return merged, nil
}

func merge(loaded, defaults *Config) *Config {
	result := &Config{}

	if len(loaded.Input) > 0 {
		result.Input = loaded.Input
	} else {
		result.Input = defaults.Input
	}

	if loaded.Output != "" {
		result.Output = loaded.Output
	} else {
		result.Output = defaults.Output
	}

	if len(loaded.Groups) > 0 {
		result.Groups = loaded.Groups
	} else {
		result.Groups = defaults.Groups
	}

	if loaded.Cache != "" {
		result.Cache = loaded.Cache
	} else {
		result.Cache = defaults.Cache
	}

	if loaded.Serve.Address != "" {
		result.Serve.Address = loaded.Serve.Address
	} else {
		result.Serve.Address = defaults.Serve.Address
	}

	return result
}

func validate(cfg *Config) error {
	if len(cfg.Input) == 0 {
		return fmt.Errorf("%w: input must list at least one path", ErrInvalidConfig)
	}
	if cfg.Output == "" {
		return fmt.Errorf("%w: output must not be empty", ErrInvalidConfig)
	}
	return nil
}

// SaveDefault writes the default configuration to dir/FileName. It
// refuses to overwrite an existing file.
func SaveDefault(dir string) (string, error) {
	path := filepath.Join(dir, FileName)
	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("config file already exists: %s", path)
	}

	data, err := yaml.Marshal(DefaultConfig())
	if err != nil {
		return "", fmt.Errorf("marshaling config: %w", err)
	}
	header := "# cxxdoc configuration\n\n"
	data = append([]byte(header), data...)

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing config file: %w", err)
	}
	return path, nil
}
