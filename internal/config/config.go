// Package config loads host configuration: where the database lives and
// how to reach the completion API. The pipeline itself never reads
// configuration; the hosts resolve it here and inject values.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file looked up when --config is not given.
const DefaultPath = "text2sql.yaml"

// EnvAPIKey overrides api.key when set.
const EnvAPIKey = "GROQ_API_KEY"

// Config is the YAML file layout.
type Config struct {
	Database struct {
		// Conn is a connection string: "sqlite:path" or "postgres://...".
		Conn string `yaml:"conn"`
	} `yaml:"database"`
	API struct {
		Key            string `yaml:"key"`
		BaseURL        string `yaml:"base_url"`
		Model          string `yaml:"model"`
		TimeoutSeconds int    `yaml:"timeout_seconds"`
	} `yaml:"api"`
	Query struct {
		ReadOnly       bool `yaml:"read_only"`
		MaxSchemaBytes int  `yaml:"max_schema_bytes"`
	} `yaml:"query"`
}

// Default returns the built-in configuration.
func Default() Config {
	var c Config
	c.API.BaseURL = "https://api.groq.com"
	c.API.Model = "llama-3.1-8b-instant"
	c.API.TimeoutSeconds = 60
	c.Query.MaxSchemaBytes = 64 * 1024
	return c
}

// Load reads the config file at path on top of the defaults and applies the
// API key environment override. An empty path falls back to DefaultPath,
// which may be absent; an explicitly named file must exist.
func Load(path string) (Config, error) {
	c := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &c); err != nil {
			return c, fmt.Errorf("parse %s: %w", path, err)
		}
	case os.IsNotExist(err) && !explicit:
		// No config file is fine; flags and env carry the rest.
	default:
		return c, fmt.Errorf("read config: %w", err)
	}

	if key := os.Getenv(EnvAPIKey); key != "" {
		c.API.Key = key
	}
	return c, nil
}
