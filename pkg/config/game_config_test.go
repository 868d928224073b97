package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultGameConfig_IsValid(t *testing.T) {
	cfg := DefaultGameConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}

	// 原版数值
	if cfg.BaseSpeed != 500 {
		t.Errorf("expected baseSpeed = 500, got %f", cfg.BaseSpeed)
	}
	if cfg.Player.RespawnDelay != 2 {
		t.Errorf("expected respawnDelay = 2, got %f", cfg.Player.RespawnDelay)
	}
	if cfg.Explosion.FrameCount != 16 {
		t.Errorf("expected explosion frameCount = 16, got %d", cfg.Explosion.FrameCount)
	}
	if got := cfg.PlayerLaserXOffset(); got != 31 {
		t.Errorf("expected laser x offset = 144/2*0.5-5 = 31, got %f", got)
	}
	halfW, halfH := cfg.GetViewportBounds()
	if halfW != 299 || halfH != 338 {
		t.Errorf("expected viewport half extents (299, 338), got (%f, %f)", halfW, halfH)
	}
}

func TestParseGameConfig(t *testing.T) {
	tests := []struct {
		name        string
		yamlContent string
		wantErr     bool
		errContains string
		validate    func(*testing.T, *GameConfig)
	}{
		{
			name: "partial override keeps defaults",
			yamlContent: `
baseSpeed: 250
enemy:
  max: 5
`,
			validate: func(t *testing.T, cfg *GameConfig) {
				if cfg.BaseSpeed != 250 {
					t.Errorf("expected baseSpeed = 250, got %f", cfg.BaseSpeed)
				}
				if cfg.Enemy.Max != 5 {
					t.Errorf("expected enemy.max = 5, got %d", cfg.Enemy.Max)
				}
				// 未覆盖的字段保持默认
				if cfg.Enemy.FormationMembersMax != 2 {
					t.Errorf("expected formationMembersMax default 2, got %d", cfg.Enemy.FormationMembersMax)
				}
				if cfg.Window.Width != 598 {
					t.Errorf("expected window width default 598, got %f", cfg.Window.Width)
				}
			},
		},
		{
			name: "negative speed rejected",
			yamlContent: `
baseSpeed: -1
`,
			wantErr:     true,
			errContains: "baseSpeed",
		},
		{
			name: "zero explosion frames rejected",
			yamlContent: `
explosion:
  frameCount: 0
`,
			wantErr:     true,
			errContains: "frameCount",
		},
		{
			name:        "malformed yaml",
			yamlContent: "window: [1, 2",
			wantErr:     true,
			errContains: "failed to parse",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseGameConfig([]byte(tt.yamlContent))
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if tt.errContains != "" && !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("expected error containing %q, got %q", tt.errContains, err.Error())
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.validate != nil {
				tt.validate(t, cfg)
			}
		})
	}
}

func TestValidate_WrapsSentinel(t *testing.T) {
	cfg := DefaultGameConfig()
	cfg.Enemy.Max = -1
	err := cfg.Validate()
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestLoadGameConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "game.yaml")
	if err := os.WriteFile(path, []byte("player:\n  respawnDelay: 3.5\n"), 0o644); err != nil {
		t.Fatalf("write temp config: %v", err)
	}

	cfg, err := LoadGameConfig(path)
	if err != nil {
		t.Fatalf("LoadGameConfig failed: %v", err)
	}
	if cfg.Player.RespawnDelay != 3.5 {
		t.Errorf("expected respawnDelay = 3.5, got %f", cfg.Player.RespawnDelay)
	}

	if _, err := LoadGameConfig(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
