// Package config loads the annolint configuration file and turns it into
// effective settings.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/abramin/annolint/internal/annotations"
	"github.com/abramin/annolint/internal/checks"
	"github.com/abramin/annolint/internal/settings"
)

// Config represents the annolint configuration as written in annolint.yaml.
// Selectors stay textual here; validation happens in Settings.
type Config struct {
	Select           []string          `yaml:"select"`
	ExtendSelect     []string          `yaml:"extend-select"`
	Ignore           []string          `yaml:"ignore"`
	ExtendIgnore     []string          `yaml:"extend-ignore"`
	DummyVariableRgx string            `yaml:"dummy-variable-rgx"`
	Fix              bool              `yaml:"fix"`
	Annotations      AnnotationsConfig `yaml:"annotations"`
}

// AnnotationsConfig holds the annotation plugin options.
type AnnotationsConfig struct {
	MypyInitReturn        bool `yaml:"mypy-init-return"`
	SuppressDummyArgs     bool `yaml:"suppress-dummy-args"`
	SuppressNoneReturning bool `yaml:"suppress-none-returning"`
	AllowStarArgAny       bool `yaml:"allow-star-arg-any"`
}

// Default returns a Config with sensible defaults: every category enabled,
// the conventional dummy-variable pattern, no fixes.
func Default() *Config {
	return &Config{
		Select:           []string{"E", "W", "ANN", "U"},
		DummyVariableRgx: settings.DefaultDummyVariableRgx,
	}
}

// Load reads configuration from file, falling back to defaults. If
// configPath is empty, it looks for annolint.yaml in the current directory.
func Load(configPath string) (*Config, error) {
	defaults := Default()

	if configPath == "" {
		configPath = "annolint.yaml"
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			// No config file, use defaults
			return defaults, nil
		}
		return nil, err
	}

	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", configPath, err)
	}

	defaults.Merge(&fileCfg)
	return defaults, nil
}

// LoadFromDir loads configuration from the specified directory.
func LoadFromDir(dir string) (*Config, error) {
	return Load(filepath.Join(dir, "annolint.yaml"))
}

// Merge combines another config into this one, with other taking precedence.
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	if len(other.Select) > 0 {
		c.Select = other.Select
	}
	if len(other.ExtendSelect) > 0 {
		c.ExtendSelect = other.ExtendSelect
	}
	if len(other.Ignore) > 0 {
		c.Ignore = other.Ignore
	}
	if len(other.ExtendIgnore) > 0 {
		c.ExtendIgnore = other.ExtendIgnore
	}
	if other.DummyVariableRgx != "" {
		c.DummyVariableRgx = other.DummyVariableRgx
	}
	if other.Fix {
		c.Fix = true
	}
	c.Annotations.merge(&other.Annotations)
}

func (a *AnnotationsConfig) merge(other *AnnotationsConfig) {
	if other.MypyInitReturn {
		a.MypyInitReturn = true
	}
	if other.SuppressDummyArgs {
		a.SuppressDummyArgs = true
	}
	if other.SuppressNoneReturning {
		a.SuppressNoneReturning = true
	}
	if other.AllowStarArgAny {
		a.AllowStarArgAny = true
	}
}

// Settings validates the configuration and resolves it into effective
// settings. Invalid selectors and an invalid dummy pattern are rejected
// here, before any checker runs.
func (c *Config) Settings() (*settings.Settings, error) {
	sel, err := checks.ParsePrefixes(c.Select)
	if err != nil {
		return nil, fmt.Errorf("select: %w", err)
	}
	extendSel, err := checks.ParsePrefixes(c.ExtendSelect)
	if err != nil {
		return nil, fmt.Errorf("extend-select: %w", err)
	}
	ignore, err := checks.ParsePrefixes(c.Ignore)
	if err != nil {
		return nil, fmt.Errorf("ignore: %w", err)
	}
	extendIgnore, err := checks.ParsePrefixes(c.ExtendIgnore)
	if err != nil {
		return nil, fmt.Errorf("extend-ignore: %w", err)
	}
	return settings.New(c.DummyVariableRgx, sel, extendSel, ignore, extendIgnore, annotations.Settings{
		MypyInitReturn:        c.Annotations.MypyInitReturn,
		SuppressDummyArgs:     c.Annotations.SuppressDummyArgs,
		SuppressNoneReturning: c.Annotations.SuppressNoneReturning,
		AllowStarArgAny:       c.Annotations.AllowStarArgAny,
	})
}
