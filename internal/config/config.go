// Package config provides configuration management for netmodel.
//
// Configuration covers the graph namespaces, output defaults, the run
// database, shape overrides, and discovery scan settings. Namespaces are
// read once at startup and treated as immutable for the lifetime of the
// process; every graph produced by a run shares them.
//
// Config file locations (priority order):
//  1. $NETMODEL_CONFIG
//  2. ./netmodel.yaml
//  3. ~/.config/netmodel/config.yaml
//  4. /etc/netmodel/config.yaml
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"netmodel/internal/rdf"
)

// Config is the root configuration document
type Config struct {
	Version    int              `yaml:"version"`
	Namespaces NamespacesConfig `yaml:"namespaces"`
	Output     OutputConfig     `yaml:"output"`
	Database   DatabaseConfig   `yaml:"database"`
	Shapes     ShapesConfig     `yaml:"shapes"`
	Scan       ScanConfig       `yaml:"scan"`
}

// NamespacesConfig sets the ontology and instance namespaces used for
// every emitted graph
type NamespacesConfig struct {
	Ontology string `yaml:"ontology"`
	Instance string `yaml:"instance"`
}

// OutputConfig sets the default serialization target
type OutputConfig struct {
	Format string `yaml:"format"`         // turtle, ntriples, or json
	Path   string `yaml:"path,omitempty"` // "-" writes to stdout
}

// DatabaseConfig locates the run history database
type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// ShapesConfig optionally overrides the built-in shape constraints
type ShapesConfig struct {
	Path string `yaml:"path,omitempty"`
}

// ScanConfig controls network discovery
type ScanConfig struct {
	Targets []string      `yaml:"targets,omitempty"`
	Ports   string        `yaml:"ports,omitempty"`
	Timeout time.Duration `yaml:"timeout,omitempty"`
	SSH     SSHConfig     `yaml:"ssh,omitempty"`
}

// SSHConfig controls the hostname probe used during discovery
type SSHConfig struct {
	User    string        `yaml:"user,omitempty"`
	KeyPath string        `yaml:"key_path,omitempty"`
	Timeout time.Duration `yaml:"timeout,omitempty"`
}

// Load finds and loads the config file, or returns defaults if none found
func Load() (*Config, string, error) {
	path := FindConfigPath()

	if path == "" {
		return DefaultConfig(), "", nil
	}

	return LoadFromPath(path)
}

// LoadFromPath loads config from a specific path
func LoadFromPath(path string) (*Config, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, path, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, path, fmt.Errorf("parse config: %w", err)
	}

	cfg.applyDefaults()

	return &cfg, path, nil
}

// Save writes config to the specified path
func (c *Config) Save(path string) error {
	if err := EnsureConfigDir(path); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	return os.WriteFile(path, data, 0644)
}

// DefaultConfig returns sensible defaults for a new installation
func DefaultConfig() *Config {
	cfg := &Config{Version: 1}
	cfg.applyDefaults()
	return cfg
}

// applyDefaults fills in missing values with defaults
func (c *Config) applyDefaults() {
	if c.Version == 0 {
		c.Version = 1
	}
	if c.Namespaces.Ontology == "" {
		c.Namespaces.Ontology = string(rdf.DefaultOntologyNS)
	}
	if c.Namespaces.Instance == "" {
		c.Namespaces.Instance = string(rdf.DefaultInstanceNS)
	}
	if c.Output.Format == "" {
		c.Output.Format = "turtle"
	}
	if c.Output.Path == "" {
		c.Output.Path = "-"
	}
	if c.Database.Path == "" {
		c.Database.Path = "./netmodel.db"
	}
	if c.Scan.Ports == "" {
		c.Scan.Ports = "22,80,443,161,830"
	}
	if c.Scan.Timeout == 0 {
		c.Scan.Timeout = 2 * time.Minute
	}
	if c.Scan.SSH.Timeout == 0 {
		c.Scan.SSH.Timeout = 5 * time.Second
	}
}

// Vocabulary returns the graph namespaces as an immutable vocabulary value
func (c *Config) Vocabulary() rdf.Vocabulary {
	return rdf.Vocabulary{
		OntologyNS: rdf.IRI(c.Namespaces.Ontology),
		InstanceNS: rdf.IRI(c.Namespaces.Instance),
	}
}

// Summary returns a human-readable config summary
func (c *Config) Summary() string {
	return fmt.Sprintf("Namespaces: %s | %s\nOutput: %s (%s)\nDatabase: %s",
		c.Namespaces.Ontology, c.Namespaces.Instance,
		c.Output.Format, c.Output.Path,
		c.Database.Path)
}
