// Package config loads the command-line settings from a YAML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// ErrInvalid is returned when a setting holds an unsupported value.
var ErrInvalid = errors.New("config: invalid setting")

// Log formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config holds the settings of the aoc command.
type Config struct {
	// InputDir is where dayNN.txt input files live.
	InputDir string `yaml:"input_dir"`
	// LogLevel is a logrus level name (e.g. "info", "debug").
	LogLevel string `yaml:"log_level"`
	// LogFormat is FormatText or FormatJSON.
	LogFormat string `yaml:"log_format"`
}

// Default returns the settings used when no file is present:
//   - InputDir "inputs"
//   - LogLevel "info"
//   - LogFormat "text"
func Default() Config {
	return Config{
		InputDir:  "inputs",
		LogLevel:  "info",
		LogFormat: FormatText,
	}
}

// Validate checks every setting. LogLevel must be a name logrus.ParseLevel
// accepts.
func (c Config) Validate() error {
	if c.InputDir == "" {
		return fmt.Errorf("%w: input_dir is empty", ErrInvalid)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log_level: %w", ErrInvalid, err)
	}
	if c.LogFormat != FormatText && c.LogFormat != FormatJSON {
		return fmt.Errorf("%w: log_format %q", ErrInvalid, c.LogFormat)
	}
	return nil
}

// Load reads settings from path over the defaults. A missing file is not
// an error and yields Default(); fields absent from the file keep their
// default values.
func Load(path string) (Config, error) {
	cfg := Default()
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("config: reading %s: %w", path, err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
