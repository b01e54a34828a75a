package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/lixenwraith/blockfall/core"
	"github.com/lixenwraith/blockfall/engine"
)

func writeTempConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "blockfall.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("Failed to write temp config: %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.BoardWidth != 40 || cfg.BoardHeight != 9 {
		t.Errorf("Default board = %dx%d, want 40x9", cfg.BoardWidth, cfg.BoardHeight)
	}
	if cfg.FallInterval() != 500*time.Millisecond {
		t.Errorf("Default fall interval = %v, want 500ms", cfg.FallInterval())
	}
	if cfg.Muted {
		t.Error("Default should not be muted")
	}
	if cfg.Seed != 0 {
		t.Errorf("Default seed = %d, want 0", cfg.Seed)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default config failed validation: %v", err)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load of missing file failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("Missing file config = %+v, want defaults", cfg)
	}
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name     string
		contents string
		wantErr  bool
		verify   func(t *testing.T, cfg *Config)
	}{
		{
			name: "Full file",
			contents: `boardWidth: 10
boardHeight: 20
fallIntervalMs: 250
muted: true
seed: 42
`,
			verify: func(t *testing.T, cfg *Config) {
				if cfg.BoardWidth != 10 || cfg.BoardHeight != 20 {
					t.Errorf("Board = %dx%d, want 10x20", cfg.BoardWidth, cfg.BoardHeight)
				}
				if cfg.FallInterval() != 250*time.Millisecond {
					t.Errorf("Fall interval = %v, want 250ms", cfg.FallInterval())
				}
				if !cfg.Muted {
					t.Error("Expected muted")
				}
				if cfg.Seed != 42 {
					t.Errorf("Seed = %d, want 42", cfg.Seed)
				}
			},
		},
		{
			name:     "Partial file keeps defaults",
			contents: "fallIntervalMs: 100\n",
			verify: func(t *testing.T, cfg *Config) {
				if cfg.FallInterval() != 100*time.Millisecond {
					t.Errorf("Fall interval = %v, want 100ms", cfg.FallInterval())
				}
				if cfg.BoardWidth != 40 || cfg.BoardHeight != 9 {
					t.Errorf("Board = %dx%d, want default 40x9", cfg.BoardWidth, cfg.BoardHeight)
				}
			},
		},
		{
			name:     "Zero width rejected",
			contents: "boardWidth: 0\n",
			wantErr:  true,
		},
		{
			name:     "Negative height rejected",
			contents: "boardHeight: -3\n",
			wantErr:  true,
		},
		{
			name:     "Zero interval rejected",
			contents: "fallIntervalMs: 0\n",
			wantErr:  true,
		},
		{
			name: "Color overrides parsed",
			contents: `colors:
  I: "#FF8800"
  Z: "112233"
`,
			verify: func(t *testing.T, cfg *Config) {
				colors := cfg.PieceColors()
				if len(colors) != 2 {
					t.Fatalf("PieceColors has %d entries, want 2", len(colors))
				}
				if got := colors[engine.KindI]; got != core.HexRGB(0xFF8800) {
					t.Errorf("I color = %+v, want FF8800", got)
				}
				if got := colors[engine.KindZ]; got != core.HexRGB(0x112233) {
					t.Errorf("Z color = %+v, want 112233", got)
				}
			},
		},
		{
			name:     "Unknown piece name rejected",
			contents: "colors:\n  X: \"#FFFFFF\"\n",
			wantErr:  true,
		},
		{
			name:     "Bad color string rejected",
			contents: "colors:\n  I: \"reddish\"\n",
			wantErr:  true,
		},
		{
			name:     "Malformed YAML rejected",
			contents: "boardWidth: [not a number\n",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(writeTempConfig(t, tt.contents))
			if (err != nil) != tt.wantErr {
				t.Fatalf("Load error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.verify != nil {
				tt.verify(t, cfg)
			}
		})
	}
}
