package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/rollrec/internal/export"
	"github.com/san-kum/rollrec/internal/game"
)

const (
	DefaultOutput  = "awesome_dice_game_result.png"
	DefaultPlayerA = "George"
	DefaultPlayerB = "Pete"
)

var ErrInvalid = errors.New("invalid config")

type Config struct {
	Threshold int           `yaml:"threshold" env:"ROLLREC_THRESHOLD"`
	Seed      int64         `yaml:"seed"      env:"ROLLREC_SEED"`
	Output    string        `yaml:"output"    env:"ROLLREC_OUTPUT"`
	Format    string        `yaml:"format"    env:"ROLLREC_FORMAT"`
	Theme     string        `yaml:"theme"     env:"ROLLREC_THEME"`
	Players   PlayersConfig `yaml:"players"`
}

type PlayersConfig struct {
	A string `yaml:"a" env:"ROLLREC_PLAYER_A"`
	B string `yaml:"b" env:"ROLLREC_PLAYER_B"`
}

func DefaultConfig() *Config {
	return &Config{
		Threshold: game.DefaultThreshold,
		Output:    DefaultOutput,
		Theme:     "classic",
		Players: PlayersConfig{
			A: DefaultPlayerA,
			B: DefaultPlayerB,
		},
	}
}

// Load reads a yaml file over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ApplyEnv overlays ROLLREC_* variables; unset variables leave fields untouched.
func (c *Config) ApplyEnv() error {
	if err := env.Parse(c); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// ImageFormat resolves the export format, falling back to the output extension.
func (c *Config) ImageFormat() string {
	if c.Format != "" {
		return strings.ToLower(c.Format)
	}
	switch strings.ToLower(filepath.Ext(c.Output)) {
	case ".svg":
		return export.FormatSVG
	default:
		return export.FormatPNG
	}
}

func (c *Config) Validate() error {
	if c.Threshold < 1 {
		return fmt.Errorf("%w: threshold must be at least 1, got %d", ErrInvalid, c.Threshold)
	}
	if strings.TrimSpace(c.Players.A) == "" || strings.TrimSpace(c.Players.B) == "" {
		return fmt.Errorf("%w: player names must not be empty", ErrInvalid)
	}
	if c.Players.A == c.Players.B {
		return fmt.Errorf("%w: player names must differ, both are %q", ErrInvalid, c.Players.A)
	}
	switch f := c.ImageFormat(); f {
	case export.FormatPNG, export.FormatSVG:
	default:
		return fmt.Errorf("%w: unknown image format %q", ErrInvalid, f)
	}
	return nil
}

func (c *Config) GameOptions() []game.Option {
	return []game.Option{
		game.WithThreshold(c.Threshold),
		game.WithNames(c.Players.A, c.Players.B),
	}
}
