// Package config holds the defaults of the command line, optionally
// overridden by a YAML or JSON file.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	IndexFile   = "index.json"
	ArticlesDir = "./articles/"
	WordsFile   = "top_1k_nouns.txt"
	CommonFile  = "redactle-common-words.txt"
)

// Config mirrors the global and play flags. Flags and environment variables
// take precedence over the values read here.
type Config struct {
	Index     string `yaml:"index" json:"index"`
	MaxDepth  int    `yaml:"max_depth" json:"max_depth"`
	Criterion string `yaml:"criterion" json:"criterion"`
	NoColor   bool   `yaml:"no_color" json:"no_color"`
	Plain     bool   `yaml:"plain" json:"plain"`
	LogLevel  string `yaml:"log_level" json:"log_level"`
	LogFormat string `yaml:"log_format" json:"log_format"`
	Parallel  int    `yaml:"parallel" json:"parallel"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Index:     IndexFile,
		Criterion: "entropy",
		LogLevel:  "warn",
		LogFormat: "text",
		Parallel:  8,
	}
}

// LoadFromPath reads a config file and merges it over Default. The format is
// chosen by extension (.yaml/.yml or .json); anything else is parsed as YAML.
func LoadFromPath(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return Load(data, filepath.Ext(path))
}

// Load parses data over Default.
func Load(data []byte, ext string) (Config, error) {
	c := Default()

	switch strings.ToLower(ext) {
	case ".json":
		if err := json.Unmarshal(data, &c); err != nil {
			return Config{}, fmt.Errorf("parse config json: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &c); err != nil {
			return Config{}, fmt.Errorf("parse config yaml: %w", err)
		}
	}

	if c.MaxDepth < 0 {
		return Config{}, fmt.Errorf("parse config: max_depth must not be negative, got %d", c.MaxDepth)
	}

	return c, nil
}
