package domain

import "fmt"

// ColorMode selects when output is colored.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// OutputFormat selects the encoding of reported results.
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// Config represents user settings loaded from the novagrep settings file.
type Config struct {
	Defaults DefaultsConfig
	Log      LogConfig
}

// DefaultsConfig holds values applied when the matching flag was not given.
type DefaultsConfig struct {
	IgnoreCase  bool
	LineNumbers bool
	Suppress    bool
	Color       ColorMode
	Format      OutputFormat
}

type LogConfig struct {
	File  string
	Debug bool
}

// DefaultConfig provides sane defaults if the settings file is partially missing.
func DefaultConfig() Config {
	return Config{
		Defaults: DefaultsConfig{
			Color:  ColorAuto,
			Format: FormatText,
		},
	}
}

func ParseColorMode(s string) (ColorMode, error) {
	switch m := ColorMode(s); m {
	case ColorAuto, ColorAlways, ColorNever:
		return m, nil
	default:
		return "", fmt.Errorf("unsupported color mode %q (expected auto|always|never): %w", s, ErrInvalidConfig)
	}
}

func ParseOutputFormat(s string) (OutputFormat, error) {
	switch f := OutputFormat(s); f {
	case FormatText, FormatJSON:
		return f, nil
	case "":
		return FormatText, nil
	default:
		return "", fmt.Errorf("unsupported format %q (expected text|json): %w", s, ErrInvalidConfig)
	}
}
