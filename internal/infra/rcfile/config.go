// Package rcfile loads the novagrep settings file.
package rcfile

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/LowByteFox/novagrep/internal/domain"
	"github.com/LowByteFox/novagrep/internal/ports"
	"gopkg.in/yaml.v3"
)

// EnvVar names the environment variable holding a settings file path.
const EnvVar = "NOVAGREP_CONFIG"

type Loader struct{}

func NewLoader() *Loader { return &Loader{} }

var _ ports.ConfigLoader = (*Loader)(nil)

func (Loader) LoadConfig(path string) (domain.Config, error) {
	return LoadConfig(path)
}

// LoadConfig reads the YAML file at path and applies it on top of defaults.
func LoadConfig(path string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	b, err := os.ReadFile(path)
	if err != nil {
		kind := domain.KindIO
		if errors.Is(err, fs.ErrNotExist) {
			kind = domain.KindNotFound
		}
		return cfg, &domain.OpError{
			Op:   "rcfile.loadconfig",
			Kind: kind,
			Path: path,
			Err:  err,
		}
	}

	var y yamlConfig
	if err := yaml.Unmarshal(b, &y); err != nil {
		return cfg, invalid(path, err)
	}

	d := y.Novagrep.Defaults
	if d.IgnoreCase != nil {
		cfg.Defaults.IgnoreCase = *d.IgnoreCase
	}
	if d.LineNumbers != nil {
		cfg.Defaults.LineNumbers = *d.LineNumbers
	}
	if d.Suppress != nil {
		cfg.Defaults.Suppress = *d.Suppress
	}
	if d.Color != "" {
		mode, err := domain.ParseColorMode(d.Color)
		if err != nil {
			return cfg, invalid(path, err)
		}
		cfg.Defaults.Color = mode
	}
	if d.Format != "" {
		format, err := domain.ParseOutputFormat(d.Format)
		if err != nil {
			return cfg, invalid(path, err)
		}
		cfg.Defaults.Format = format
	}

	if y.Novagrep.Log.File != "" {
		cfg.Log.File = y.Novagrep.Log.File
	}
	if y.Novagrep.Log.Debug != nil {
		cfg.Log.Debug = *y.Novagrep.Log.Debug
	}

	return cfg, nil
}

// Resolve picks the settings file to read. explicit is the --config value.
// The returned bool reports whether the user named the file, in which case
// it must exist.
func Resolve(explicit string, getenv func(string) string) (string, bool) {
	if explicit != "" {
		return explicit, true
	}
	if getenv != nil {
		if p := getenv(EnvVar); p != "" {
			return p, true
		}
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", false
	}
	return filepath.Join(dir, "novagrep", "config.yaml"), false
}

func invalid(path string, err error) error {
	return &domain.OpError{
		Op:   "rcfile.loadconfig",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  err,
	}
}

type yamlConfig struct {
	Novagrep struct {
		Defaults struct {
			IgnoreCase  *bool  `yaml:"ignore_case"`
			LineNumbers *bool  `yaml:"line_numbers"`
			Suppress    *bool  `yaml:"suppress"`
			Color       string `yaml:"color"`
			Format      string `yaml:"format"`
		} `yaml:"defaults"`

		Log struct {
			File  string `yaml:"file"`
			Debug *bool  `yaml:"debug"`
		} `yaml:"log"`
	} `yaml:"novagrep"`
}
