// Package config holds the settings that shape the command-line front end:
// the interactive prompt, banner and whether diagnostics are coloured.
package config

import (
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// ColorMode selects when diagnostics are coloured.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// Config is the decoded form of a plox configuration file.
type Config struct {
	Prompt string    `yaml:"prompt"`
	Color  ColorMode `yaml:"color"`
	Banner bool      `yaml:"banner"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Prompt: "> ",
		Color:  ColorAuto,
		Banner: true,
	}
}

// Load reads a YAML file over the defaults. Keys not present keep their
// default values; unknown keys are an error.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "open config")
	}
	defer f.Close()

	cfg, err := Decode(f)
	if err != nil {
		return Config{}, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

// Decode parses YAML from r over the defaults.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && err != io.EOF {
		return Config{}, errors.Wrap(err, "decode")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports settings that cannot be honoured.
func (c Config) Validate() error {
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
		return nil
	default:
		return errors.Errorf("invalid color mode %q (want auto, always or never)", c.Color)
	}
}

// ApplyEnv overrides settings from PLOX_PROMPT and PLOX_COLOR.
func (c Config) ApplyEnv(lookup func(string) (string, bool)) (Config, error) {
	if v, ok := lookup("PLOX_PROMPT"); ok {
		c.Prompt = v
	}
	if v, ok := lookup("PLOX_COLOR"); ok {
		c.Color = ColorMode(strings.ToLower(strings.TrimSpace(v)))
	}
	return c, c.Validate()
}

// UseColor resolves the colour mode for a stream.
func (c Config) UseColor(f *os.File) bool {
	switch c.Color {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	if f == nil {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
