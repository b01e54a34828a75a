// Package config loads the optional settings file. Every field has a
// playable default, so the game runs without any file present.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/blockfall/core"
	"github.com/lixenwraith/blockfall/engine"
	"github.com/lixenwraith/blockfall/parameter"
)

// Config holds host-side settings. Board dimensions and the fall
// interval feed engine construction; the rest stays in the host.
type Config struct {
	BoardWidth     int   `yaml:"boardWidth"`
	BoardHeight    int   `yaml:"boardHeight"`
	FallIntervalMs int   `yaml:"fallIntervalMs"`
	Muted          bool  `yaml:"muted"`
	Seed           int64 `yaml:"seed"` // 0 means time-seeded

	// Colors overrides piece colors by single-letter variant name,
	// hex strings like "#FF8800"; unnamed variants keep defaults
	Colors map[string]string `yaml:"colors"`
}

// Default returns the built-in settings
func Default() *Config {
	return &Config{
		BoardWidth:     parameter.DefaultBoardWidth,
		BoardHeight:    parameter.DefaultBoardHeight,
		FallIntervalMs: int(parameter.DefaultFallInterval / time.Millisecond),
	}
}

// Load reads a YAML settings file. A missing file is not an error:
// defaults are returned so a bare install just works. Fields absent
// from the file keep their defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects settings the engine would refuse at construction
func (c *Config) Validate() error {
	if c.BoardWidth <= 0 || c.BoardHeight <= 0 {
		return fmt.Errorf("board size %dx%d, both dimensions must be positive", c.BoardWidth, c.BoardHeight)
	}
	if c.FallIntervalMs <= 0 {
		return fmt.Errorf("fall interval %dms must be positive", c.FallIntervalMs)
	}
	for name, hex := range c.Colors {
		if _, ok := engine.ParseKind(name); !ok {
			return fmt.Errorf("unknown piece %q in colors", name)
		}
		if _, err := core.ParseHexRGB(hex); err != nil {
			return fmt.Errorf("piece %s color: %w", name, err)
		}
	}
	return nil
}

// PieceColors returns the parsed overrides. Call after Validate;
// entries that fail to parse are skipped.
func (c *Config) PieceColors() map[engine.Kind]core.RGB {
	colors := make(map[engine.Kind]core.RGB, len(c.Colors))
	for name, hex := range c.Colors {
		kind, ok := engine.ParseKind(name)
		if !ok {
			continue
		}
		rgb, err := core.ParseHexRGB(hex)
		if err != nil {
			continue
		}
		colors[kind] = rgb
	}
	return colors
}

// FallInterval returns the descent period as a duration
func (c *Config) FallInterval() time.Duration {
	return time.Duration(c.FallIntervalMs) * time.Millisecond
}
