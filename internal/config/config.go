package config

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/lissa/internal/figure"
)

const (
	DefaultLeftFreq  = 1000.0
	DefaultRightFreq = 1000.0
	DefaultPhase     = 90.0
	DefaultSpeed     = 1.0
	DefaultTrail     = 8000
	DefaultTheme     = "cyberpunk"
	DefaultGain      = 0.2
)

type Config struct {
	LeftFrequency  float64     `yaml:"left_frequency"`
	RightFrequency float64     `yaml:"right_frequency"`
	PhaseDegrees   float64     `yaml:"phase_degrees"`
	Speed          float64     `yaml:"speed"`
	TrailLength    int         `yaml:"trail_length"`
	ShowGrid       bool        `yaml:"show_grid"`
	ShowAxes       bool        `yaml:"show_axes"`
	Theme          string      `yaml:"theme"`
	Audio          AudioConfig `yaml:"audio"`
}

type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Backend string  `yaml:"backend"`
	Gain    float64 `yaml:"gain"`
}

func DefaultConfig() *Config {
	return &Config{
		LeftFrequency:  DefaultLeftFreq,
		RightFrequency: DefaultRightFreq,
		PhaseDegrees:   DefaultPhase,
		Speed:          DefaultSpeed,
		TrailLength:    DefaultTrail,
		ShowGrid:       true,
		ShowAxes:       true,
		Theme:          DefaultTheme,
		Audio: AudioConfig{
			Enabled: false,
			Backend: "auto",
			Gain:    DefaultGain,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
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

// Validate rejects values outside the ranges the UI controls cover.
func (c *Config) Validate() error {
	if c.LeftFrequency < figure.MinFreq || c.LeftFrequency > figure.MaxFreq {
		return fmt.Errorf("left_frequency %.1f out of range [%.0f, %.0f]", c.LeftFrequency, figure.MinFreq, figure.MaxFreq)
	}
	if c.RightFrequency < figure.MinFreq || c.RightFrequency > figure.MaxFreq {
		return fmt.Errorf("right_frequency %.1f out of range [%.0f, %.0f]", c.RightFrequency, figure.MinFreq, figure.MaxFreq)
	}
	if c.PhaseDegrees < figure.MinPhase || c.PhaseDegrees > figure.MaxPhase {
		return fmt.Errorf("phase_degrees %.1f out of range [%.0f, %.0f]", c.PhaseDegrees, figure.MinPhase, figure.MaxPhase)
	}
	if c.Speed < figure.MinSpeed || c.Speed > figure.MaxSpeed {
		return fmt.Errorf("speed %.2f out of range [%.1f, %.1f]", c.Speed, figure.MinSpeed, figure.MaxSpeed)
	}
	if c.TrailLength < figure.MinTrail || c.TrailLength > figure.MaxTrail {
		return fmt.Errorf("trail_length %d out of range [%d, %d]", c.TrailLength, figure.MinTrail, figure.MaxTrail)
	}
	if math.IsNaN(c.LeftFrequency) || math.IsNaN(c.RightFrequency) || math.IsNaN(c.PhaseDegrees) || math.IsNaN(c.Speed) {
		return fmt.Errorf("non-finite parameter value")
	}
	if c.Audio.Gain < 0 || c.Audio.Gain > 1 {
		return fmt.Errorf("audio gain %.2f out of range [0, 1]", c.Audio.Gain)
	}
	switch c.Audio.Backend {
	case "", "auto", "portaudio", "beep", "off":
	default:
		return fmt.Errorf("unknown audio backend %q", c.Audio.Backend)
	}
	return nil
}

// Params converts the config into the figure parameter set.
func (c *Config) Params() figure.Params {
	return figure.Params{
		LeftFreq:  c.LeftFrequency,
		RightFreq: c.RightFrequency,
		PhaseDeg:  c.PhaseDegrees,
		Speed:     c.Speed,
		Trail:     c.TrailLength,
		ShowGrid:  c.ShowGrid,
		ShowAxes:  c.ShowAxes,
	}.Clamp()
}
