// Package config holds engine limits and tree view settings.
//
// Settings come from defaults, then an optional YAML file, then a .env file
// in the working directory and the environment:
//
//	TREEVIEW_MAX_NODES              node ceiling
//	TREEVIEW_MAX_DEPTH              nesting limit
//	TREEVIEW_INDENT                 spaces per serialized level
//	TREEVIEW_FULL_EXPAND_LIMIT      trees up to this size expand fully
//	TREEVIEW_PARTIAL_EXPAND_DEPTH   levels expanded for larger trees
//	TREEVIEW_COLOR                  auto, always or never
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/fabceolin/airgap-json-formatter-sub000/encode"
	"github.com/fabceolin/airgap-json-formatter-sub000/model"
	"github.com/fabceolin/airgap-json-formatter-sub000/parse"

	"github.com/goccy/go-yaml"
	"github.com/joho/godotenv"
)

var ErrInvalid = errors.New("invalid config")

type Color string

const (
	ColorAuto   Color = "auto"
	ColorAlways Color = "always"
	ColorNever  Color = "never"
)

type Config struct {
	MaxNodes           int   `yaml:"maxNodes"`
	MaxDepth           int   `yaml:"maxDepth"`
	Indent             int   `yaml:"indent"`
	FullExpandLimit    int   `yaml:"fullExpandLimit"`
	PartialExpandDepth int   `yaml:"partialExpandDepth"`
	Color              Color `yaml:"color"`
}

func Default() *Config {
	return &Config{
		MaxNodes:           parse.DefaultMaxNodes,
		MaxDepth:           parse.DefaultMaxDepth,
		Indent:             2,
		FullExpandLimit:    1000,
		PartialExpandDepth: 3,
		Color:              ColorAuto,
	}
}

// Load reads the YAML file at path over the defaults, then applies .env and
// environment overrides. An empty path or a missing file keeps the
// defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		d, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, err
		default:
			if err := yaml.Unmarshal(d, cfg); err != nil {
				return nil, fmt.Errorf("error decoding %s: %w", path, err)
			}
		}
	}
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env: %w", err)
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	for _, v := range []struct {
		key string
		dst *int
	}{
		{"TREEVIEW_MAX_NODES", &c.MaxNodes},
		{"TREEVIEW_MAX_DEPTH", &c.MaxDepth},
		{"TREEVIEW_INDENT", &c.Indent},
		{"TREEVIEW_FULL_EXPAND_LIMIT", &c.FullExpandLimit},
		{"TREEVIEW_PARTIAL_EXPAND_DEPTH", &c.PartialExpandDepth},
	} {
		n, err := getEnvInt(v.key, *v.dst)
		if err != nil {
			return err
		}
		*v.dst = n
	}
	c.Color = Color(getEnv("TREEVIEW_COLOR", string(c.Color)))
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q is not an integer", ErrInvalid, key, v)
	}
	return n, nil
}

func (c *Config) Validate() error {
	if c.MaxNodes < 1 {
		return fmt.Errorf("%w: maxNodes must be positive, got %d", ErrInvalid, c.MaxNodes)
	}
	if c.MaxDepth < 1 {
		return fmt.Errorf("%w: maxDepth must be positive, got %d", ErrInvalid, c.MaxDepth)
	}
	if c.Indent < 0 {
		return fmt.Errorf("%w: indent must not be negative, got %d", ErrInvalid, c.Indent)
	}
	if c.FullExpandLimit < 0 || c.PartialExpandDepth < 0 {
		return fmt.Errorf("%w: expand settings must not be negative", ErrInvalid)
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("%w: color must be auto, always or never, got %q", ErrInvalid, c.Color)
	}
	return nil
}

// ExpandDepth picks how many levels a view of a tree with total nodes
// expands initially. -1 means every level.
func (c *Config) ExpandDepth(total int) int {
	if total <= c.FullExpandLimit {
		return -1
	}
	return c.PartialExpandDepth
}

func (c *Config) ParseOptions() []parse.ParseOption {
	return []parse.ParseOption{parse.MaxNodes(c.MaxNodes), parse.MaxDepth(c.MaxDepth)}
}

func (c *Config) EncodeOptions() []encode.EncodeOption {
	return []encode.EncodeOption{encode.Indent(c.Indent)}
}

// ModelOptions carries the limits and indentation into a model.
func (c *Config) ModelOptions() []model.Option {
	return []model.Option{
		model.WithParseOptions(c.ParseOptions()...),
		model.WithEncodeOptions(c.EncodeOptions()...),
	}
}

// UseColor resolves the color setting against whether output is a
// terminal.
func (c *Config) UseColor(isTerminal bool) bool {
	switch c.Color {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return isTerminal
	}
}
