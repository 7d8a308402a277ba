package config

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"gopkg.in/yaml.v3"

	"github.com/roach88/tuiotime/internal/tuiotime"
)

//go:embed schema.cue
var schemaCUE string

// Clock kinds.
const (
	ClockSystem = "system"
	ClockFixed  = "fixed"
)

// Config is the decoded configuration file.
type Config struct {
	Format   string      `yaml:"format" json:"format,omitempty"`
	Database string      `yaml:"database" json:"database,omitempty"`
	Clock    ClockConfig `yaml:"clock" json:"clock"`
}

// ClockConfig selects the clock source.
type ClockConfig struct {
	Kind         string `yaml:"kind" json:"kind,omitempty"`
	Seconds      int64  `yaml:"seconds" json:"seconds,omitempty"`
	Microseconds int64  `yaml:"microseconds" json:"microseconds,omitempty"`
}

// ConfigError reports an unreadable or invalid configuration file.
type ConfigError struct {
	Path    string
	Message string
	Err     error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("config %s: %s: %v", e.Path, e.Message, e.Err)
	}
	return fmt.Sprintf("config %s: %s", e.Path, e.Message)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Format: "text",
		Clock:  ClockConfig{Kind: ClockSystem},
	}
}

// Load reads and validates the file at path. An empty path returns Default.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ConfigError{Path: path, Message: "read failed", Err: err}
	}
	return Parse(path, data)
}

// Parse decodes and validates YAML data. name is used in error messages.
func Parse(name string, data []byte) (*Config, error) {
	cfg := &Config{}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, &ConfigError{Path: name, Message: "invalid YAML", Err: err}
	}

	if err := validate(cfg); err != nil {
		return nil, &ConfigError{Path: name, Message: "schema violation", Err: err}
	}

	if cfg.Format == "" {
		cfg.Format = "text"
	}
	if cfg.Clock.Kind == "" {
		cfg.Clock.Kind = ClockSystem
	}
	return cfg, nil
}

// validate unifies cfg with the #Config schema.
func validate(cfg *Config) error {
	ctx := cuecontext.New()

	schema := ctx.CompileString(schemaCUE, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	def := schema.LookupPath(cue.ParsePath("#Config"))

	data, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	value := ctx.CompileBytes(data)
	if err := value.Err(); err != nil {
		return fmt.Errorf("build config value: %w", err)
	}

	return def.Unify(value).Validate(cue.Concrete(true))
}

// Source returns the clock source selected by the configuration.
func (c *Config) Source() tuiotime.Source {
	if c.Clock.Kind == ClockFixed {
		return tuiotime.FixedSource{Reading: tuiotime.Reading{
			Sec:  c.Clock.Seconds,
			Usec: c.Clock.Microseconds,
		}}
	}
	return tuiotime.SystemSource{}
}
