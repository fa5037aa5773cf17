package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config holds all configuration options for nomen.
type Config struct {
	// Scan settings control the corpus walk.
	Scan ScanConfig `koanf:"scan"`

	// Report settings control ranking and display.
	Report ReportConfig `koanf:"report"`

	// Output settings control rendering.
	Output OutputConfig `koanf:"output"`
}

// ScanConfig controls the directory scan.
type ScanConfig struct {
	// MaxTrees is the hard cap on accumulated syntax trees.
	MaxTrees int `koanf:"max_trees"`
	// Extensions is the file-extension set to scan.
	Extensions []string `koanf:"extensions"`
}

// ReportConfig controls report shaping.
type ReportConfig struct {
	// TopSize is the ranked-report size used when --top is given
	// without a value.
	TopSize int `koanf:"top_size"`
	// ConsoleLimit caps console output rows.
	ConsoleLimit int `koanf:"console_limit"`
}

// OutputConfig controls rendering.
type OutputConfig struct {
	Color bool `koanf:"color"`
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Scan: ScanConfig{
			MaxTrees:   100,
			Extensions: []string{".py"},
		},
		Report: ReportConfig{
			TopSize:      10,
			ConsoleLimit: 200,
		},
		Output: OutputConfig{
			Color: true,
		},
	}
}

// Load loads configuration from a file, layered over the defaults.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	cfg := DefaultConfig()

	var parser koanf.Parser
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		parser = toml.Parser()
	}

	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadOrDefault tries standard config locations or returns defaults.
func LoadOrDefault() *Config {
	names := []string{
		"nomen.toml",
		"nomen.yaml",
		"nomen.yml",
		"nomen.json",
		".nomen.toml",
		".nomen.yaml",
		".nomen.yml",
		".nomen.json",
	}

	for _, name := range names {
		if _, err := os.Stat(name); err == nil {
			if cfg, err := Load(name); err == nil {
				return cfg
			}
		}
	}
	return DefaultConfig()
}
