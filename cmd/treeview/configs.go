package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fabceolin/airgap-json-formatter-sub000/config"
	"github.com/fabceolin/airgap-json-formatter-sub000/encode"
	"github.com/fabceolin/airgap-json-formatter-sub000/format"
	"github.com/fabceolin/airgap-json-formatter-sub000/model"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color      bool   `cli:"name=color desc='encode with color'"`
	WireOut    bool   `cli:"name=wire desc='output in compact format'"`
	Indent     int    `cli:"name=indent desc='spaces per nesting level'"`
	MaxNodes   int    `cli:"name=max-nodes desc='maximum number of nodes in a document'"`
	ConfigFile string `cli:"name=config desc='yaml settings file'"`

	InFormat *format.Format

	settings *config.Config

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

// isSet reports whether the main option name was given on the command
// line.
func (cfg *MainConfig) isSet(name string) bool {
	if cfg.Main == nil {
		return false
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name != name {
			continue
		}
		return opt.Value != nil
	}
	return false
}

// Settings returns the config file and environment settings with the
// command line options applied over them.
func (cfg *MainConfig) Settings() (*config.Config, error) {
	if cfg.settings != nil {
		return cfg.settings, nil
	}
	s, err := config.Load(cfg.ConfigFile)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	if cfg.MaxNodes > 0 {
		s.MaxNodes = cfg.MaxNodes
	}
	if cfg.Indent > 0 {
		s.Indent = cfg.Indent
	}
	if cfg.isSet("color") {
		s.Color = config.ColorNever
		if cfg.Color {
			s.Color = config.ColorAlways
		}
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	cfg.settings = s
	return s, nil
}

func (cfg *MainConfig) useColor(w io.Writer) bool {
	s, err := cfg.Settings()
	if err != nil {
		return false
	}
	return s.UseColor(isTerminal(w))
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	s, err := cfg.Settings()
	if err != nil {
		s = config.Default()
	}
	res := append(s.EncodeOptions(), encode.EncodeWire(cfg.WireOut))
	if cfg.useColor(w) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

// modelOpts configures models whose serialized output goes to w.
func (cfg *MainConfig) modelOpts(w io.Writer) ([]model.Option, error) {
	s, err := cfg.Settings()
	if err != nil {
		return nil, err
	}
	return []model.Option{
		model.WithParseOptions(s.ParseOptions()...),
		model.WithEncodeOptions(cfg.encOpts(w)...),
	}, nil
}

type ViewConfig struct {
	*MainConfig

	Depth int  `cli:"name=d desc='levels to expand (default from settings)'"`
	All   bool `cli:"name=all desc='expand every level'"`

	View *cli.Command
}

func (cfg *ViewConfig) expandDepth(total int) int {
	switch {
	case cfg.All:
		return -1
	case cfg.Depth > 0:
		return cfg.Depth
	}
	s, err := cfg.Settings()
	if err != nil {
		s = config.Default()
	}
	return s.ExpandDepth(total)
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type PathConfig struct {
	*MainConfig

	Values bool `cli:"name=v desc='show values next to paths'"`

	Path *cli.Command
}

type CountConfig struct {
	*MainConfig

	Count *cli.Command
}

type FindConfig struct {
	*MainConfig

	Serialize bool `cli:"name=s desc='print matching subtrees instead of paths'"`

	Find *cli.Command
}

type RoundtripConfig struct {
	*MainConfig

	Quiet bool `cli:"name=q desc='only report equality'"`

	Roundtrip *cli.Command
}

type PatchConfig struct {
	*MainConfig

	String bool `cli:"name=s desc='patch arg as string'"`

	Patch *cli.Command
}

type ServeConfig struct {
	*MainConfig

	Debug bool `cli:"name=debug desc='log at debug level'"`

	Serve *cli.Command
}
