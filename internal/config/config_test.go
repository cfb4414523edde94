package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/rollrec/internal/export"
	"github.com/san-kum/rollrec/internal/game"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Threshold != game.DefaultThreshold {
		t.Errorf("expected threshold %d, got %d", game.DefaultThreshold, cfg.Threshold)
	}
	if cfg.Output != DefaultOutput {
		t.Errorf("expected output %s, got %s", DefaultOutput, cfg.Output)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.yaml")
	data := []byte("threshold: 5\nseed: 42\nplayers:\n  a: Ann\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Threshold != 5 || cfg.Seed != 42 {
		t.Errorf("unexpected values: %+v", cfg)
	}
	if cfg.Players.A != "Ann" || cfg.Players.B != DefaultPlayerB {
		t.Errorf("unexpected players: %+v", cfg.Players)
	}
	if cfg.Output != DefaultOutput {
		t.Errorf("expected default output kept, got %s", cfg.Output)
	}
}

func TestLoad_Errors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("threshold: [nope"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed yaml")
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")
	cfg := DefaultConfig()
	cfg.Threshold = 9
	cfg.Format = export.FormatSVG

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if *got != *cfg {
		t.Errorf("round trip mismatch: %+v vs %+v", got, cfg)
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("ROLLREC_THRESHOLD", "3")
	t.Setenv("ROLLREC_PLAYER_B", "Zed")

	cfg := DefaultConfig()
	if err := cfg.ApplyEnv(); err != nil {
		t.Fatalf("apply env failed: %v", err)
	}
	if cfg.Threshold != 3 {
		t.Errorf("expected threshold 3, got %d", cfg.Threshold)
	}
	if cfg.Players.B != "Zed" {
		t.Errorf("expected player B Zed, got %s", cfg.Players.B)
	}
	if cfg.Players.A != DefaultPlayerA || cfg.Output != DefaultOutput {
		t.Error("unset variables should keep existing values")
	}
}

func TestApplyEnv_Invalid(t *testing.T) {
	t.Setenv("ROLLREC_SEED", "not-a-number")
	if err := DefaultConfig().ApplyEnv(); err == nil {
		t.Error("expected error for malformed seed")
	}
}

func TestImageFormat(t *testing.T) {
	tests := []struct {
		output string
		format string
		want   string
	}{
		{"result.png", "", export.FormatPNG},
		{"result.SVG", "", export.FormatSVG},
		{"result", "", export.FormatPNG},
		{"result.png", "SVG", export.FormatSVG},
	}

	for _, tt := range tests {
		cfg := DefaultConfig()
		cfg.Output = tt.output
		cfg.Format = tt.format
		if got := cfg.ImageFormat(); got != tt.want {
			t.Errorf("ImageFormat(%q, %q) = %s, want %s", tt.output, tt.format, got, tt.want)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero threshold", func(c *Config) { c.Threshold = 0 }},
		{"negative threshold", func(c *Config) { c.Threshold = -1 }},
		{"empty name", func(c *Config) { c.Players.A = " " }},
		{"same names", func(c *Config) { c.Players.B = c.Players.A }},
		{"bad format", func(c *Config) { c.Format = "gif" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("expected ErrInvalid, got %v", err)
			}
		})
	}
}
