package config

import (
	"path/filepath"
	"testing"

	"github.com/san-kum/lissa/internal/figure"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.LeftFrequency != DefaultLeftFreq {
		t.Errorf("expected left frequency %.0f, got %.0f", DefaultLeftFreq, cfg.LeftFrequency)
	}
	if cfg.PhaseDegrees != 90 {
		t.Errorf("expected phase 90, got %.0f", cfg.PhaseDegrees)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config must validate: %v", err)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("circle")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.PhaseDegrees != 90 {
		t.Errorf("expected phase 90, got %f", cfg.PhaseDegrees)
	}

	cfg = GetPreset("octave")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.RightFrequency != 2*cfg.LeftFrequency {
		t.Error("octave preset must double the right frequency")
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets()
	if len(presets) == 0 {
		t.Fatal("expected presets")
	}
	for i := 1; i < len(presets); i++ {
		if presets[i-1] > presets[i] {
			t.Error("expected sorted preset names")
		}
	}
}

func TestPresetsValidate(t *testing.T) {
	for name, cfg := range Presets {
		if err := cfg.Validate(); err != nil {
			t.Errorf("preset %s: %v", name, err)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"low left frequency", func(c *Config) { c.LeftFrequency = 50 }},
		{"high right frequency", func(c *Config) { c.RightFrequency = 9000 }},
		{"negative phase", func(c *Config) { c.PhaseDegrees = -5 }},
		{"phase past full turn", func(c *Config) { c.PhaseDegrees = 400 }},
		{"slow speed", func(c *Config) { c.Speed = 0.1 }},
		{"short trail", func(c *Config) { c.TrailLength = 10 }},
		{"long trail", func(c *Config) { c.TrailLength = 50000 }},
		{"hot gain", func(c *Config) { c.Audio.Gain = 1.5 }},
		{"unknown backend", func(c *Config) { c.Audio.Backend = "pulseaudio" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestParams(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LeftFrequency = 1500
	cfg.ShowGrid = false

	p := cfg.Params()
	if p.LeftFreq != 1500 {
		t.Errorf("expected left freq 1500, got %f", p.LeftFreq)
	}
	if p.ShowGrid {
		t.Error("expected grid off")
	}
	if p.Trail != DefaultTrail {
		t.Errorf("expected trail %d, got %d", DefaultTrail, p.Trail)
	}
}

func TestParamsClamped(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TrailLength = 999999

	if got := cfg.Params().Trail; got != figure.MaxTrail {
		t.Errorf("expected clamped trail %d, got %d", figure.MaxTrail, got)
	}
}

func TestLoadSaveRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lissa.yaml")

	cfg := DefaultConfig()
	cfg.RightFrequency = 2000
	cfg.Audio.Enabled = true
	cfg.Audio.Backend = "beep"

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if loaded.RightFrequency != 2000 {
		t.Errorf("expected right frequency 2000, got %f", loaded.RightFrequency)
	}
	if !loaded.Audio.Enabled || loaded.Audio.Backend != "beep" {
		t.Errorf("audio config did not survive the roundtrip: %+v", loaded.Audio)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for a missing file")
	}
}
