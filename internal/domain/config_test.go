package domain

import (
	"errors"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Defaults.Color != ColorAuto {
		t.Fatalf("expected color=auto, got %s", cfg.Defaults.Color)
	}
	if cfg.Defaults.Format != FormatText {
		t.Fatalf("expected format=text, got %s", cfg.Defaults.Format)
	}
	if cfg.Defaults.IgnoreCase || cfg.Log.Debug {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestParseColorMode(t *testing.T) {
	for _, in := range []string{"auto", "always", "never"} {
		if _, err := ParseColorMode(in); err != nil {
			t.Errorf("ParseColorMode(%q): %v", in, err)
		}
	}
	_, err := ParseColorMode("rainbow")
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestParseOutputFormat(t *testing.T) {
	if f, err := ParseOutputFormat(""); err != nil || f != FormatText {
		t.Fatalf("empty format should be text, got %q %v", f, err)
	}
	if f, err := ParseOutputFormat("json"); err != nil || f != FormatJSON {
		t.Fatalf("expected json, got %q %v", f, err)
	}
	if _, err := ParseOutputFormat("xml"); err == nil {
		t.Fatal("expected error for xml")
	}
}
