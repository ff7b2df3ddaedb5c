// Package config loads tool and report settings from YAML files for the CLI
// and other embedding callers.
package config

import (
	"fmt"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-binsize/pkg/category"
	"github.com/goliatone/go-binsize/pkg/symbol"
)

const defaultToolTimeout = 30 * time.Second

// Config mirrors the YAML document accepted by Load.
type Config struct {
	// ToolchainDir is probed for dump tools before falling back to PATH.
	ToolchainDir string `yaml:"toolchainDir"`

	// Tool names the symbol dump executable, typically nm or a prefixed
	// cross variant.
	Tool string `yaml:"tool"`

	// ToolArgs replaces the default tool invocation arguments.
	ToolArgs []string `yaml:"toolArgs"`

	// ExecSuffix is appended when probing the toolchain dir, ".exe" style.
	ExecSuffix string `yaml:"execSuffix"`

	// Timeout bounds a tool invocation, parsed with time.ParseDuration.
	Timeout string `yaml:"timeout"`

	// DefaultRenderer selects the renderer when a request names none.
	DefaultRenderer string `yaml:"defaultRenderer"`

	// Categories maps section prefixes to category labels, overriding the
	// built-in table.
	Categories map[string]string `yaml:"categories"`
}

// Load reads and parses a YAML config file.
func Load(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(raw)
}

// LoadFS reads and parses a YAML config file from an fs.FS.
func LoadFS(fsys fs.FS, name string) (Config, error) {
	raw, err := fs.ReadFile(fsys, name)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", name, err)
	}
	return Parse(raw)
}

// Parse decodes a YAML payload into a Config.
func Parse(raw []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse yaml: %w", err)
	}
	if cfg.Timeout != "" {
		if _, err := time.ParseDuration(cfg.Timeout); err != nil {
			return Config{}, fmt.Errorf("config: invalid timeout %q: %w", cfg.Timeout, err)
		}
	}
	return cfg, nil
}

// ToolTimeout returns the parsed timeout, or the 30s default when unset.
func (c Config) ToolTimeout() time.Duration {
	if c.Timeout == "" {
		return defaultToolTimeout
	}
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return defaultToolTimeout
	}
	return d
}

// LoaderOptions translates the config into loader options.
func (c Config) LoaderOptions() symbol.LoaderOptions {
	opts := []symbol.LoaderOption{
		symbol.WithToolTimeout(c.ToolTimeout()),
	}
	if c.ToolchainDir != "" {
		opts = append(opts, symbol.WithToolchainDir(c.ToolchainDir))
	}
	if c.ExecSuffix != "" {
		opts = append(opts, symbol.WithExecSuffix(c.ExecSuffix))
	}
	if len(c.ToolArgs) > 0 {
		opts = append(opts, symbol.WithToolArgs(c.ToolArgs...))
	}
	return symbol.NewLoaderOptions(opts...)
}

// Categorizer builds a section categorizer with the configured overrides
// layered on the defaults.
func (c Config) Categorizer() *category.Categorizer {
	if len(c.Categories) == 0 {
		return category.NewCategorizer(nil)
	}
	overrides := make(map[string]category.Category, len(c.Categories))
	for prefix, label := range c.Categories {
		overrides[prefix] = category.Category(label)
	}
	return category.NewCategorizer(overrides)
}
