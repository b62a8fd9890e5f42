package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/zephyrtronium/calculator"
)

// config is the calculator's configuration file.
type config struct {
	// Lang is a BCP 47 language tag selecting digits and separators.
	Lang string `yaml:"lang" toml:"lang"`
	// Grouping enables grouping separators, e.g. 1,000.
	Grouping bool `yaml:"grouping" toml:"grouping"`
	// FractionDigits is the maximum number of fractional digits displayed.
	// Nil means the default.
	FractionDigits *int `yaml:"fraction_digits" toml:"fraction_digits"`
	// Variables are initial variable bindings.
	Variables map[string]float64 `yaml:"variables" toml:"variables"`
}

// loadConfig reads a YAML or TOML config file, chosen by its extension.
func loadConfig(path string) (*config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return parseConfig(path, data)
}

func parseConfig(path string, data []byte) (*config, error) {
	var cfg config
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err := yaml.Unmarshal(data, &cfg)
		if err != nil {
			return nil, &ConfigError{Path: path, Err: err}
		}
	case ".toml":
		err := toml.Unmarshal(data, &cfg)
		if err != nil {
			return nil, &ConfigError{Path: path, Err: err}
		}
	default:
		return nil, &ConfigError{Path: path, Err: fmt.Errorf("unknown config format %q", ext)}
	}
	if cfg.FractionDigits != nil && *cfg.FractionDigits < 0 {
		return nil, &ConfigError{Path: path, Err: fmt.Errorf("fraction_digits (%d) must not be negative", *cfg.FractionDigits)}
	}
	return &cfg, nil
}

// formatFlags defines the flags that override formatting settings.
func formatFlags(fs *flag.FlagSet) {
	fs.String("lang", "", "language tag for number formatting")
	fs.Bool("group", false, "show grouping separators in numbers")
	fs.Int("digits", calculator.DefaultFractionDigits, "maximum fractional digits displayed")
}

// override replaces settings in cfg with the formatting flags that were set
// in fs.
func (cfg *config) override(fs *flag.FlagSet) {
	fs.Visit(func(f *flag.Flag) {
		g, ok := f.Value.(flag.Getter)
		if !ok {
			return
		}
		switch f.Name {
		case "lang":
			cfg.Lang = g.Get().(string)
		case "group":
			cfg.Grouping = g.Get().(bool)
		case "digits":
			n := g.Get().(int)
			cfg.FractionDigits = &n
		}
	})
}

// options converts the formatting settings to brain options.
func (cfg *config) options() ([]calculator.Option, error) {
	var opts []calculator.Option
	if cfg.Lang != "" {
		tag, err := language.Parse(cfg.Lang)
		if err != nil {
			return nil, fmt.Errorf("language %q: %w", cfg.Lang, err)
		}
		opts = append(opts, calculator.Lang(tag))
	}
	opts = append(opts, calculator.Grouping(cfg.Grouping))
	if cfg.FractionDigits != nil {
		if *cfg.FractionDigits < 0 {
			return nil, fmt.Errorf("fraction digits (%d) must not be negative", *cfg.FractionDigits)
		}
		opts = append(opts, calculator.FractionDigits(*cfg.FractionDigits))
	}
	return opts, nil
}

// ConfigError is an error decoding a config file.
type ConfigError struct {
	// Path is the config file.
	Path string
	// Err is the underlying error.
	Err error
}

func (err *ConfigError) Error() string {
	return "config " + err.Path + ": " + err.Err.Error()
}

func (err *ConfigError) Unwrap() error {
	return err.Err
}
