package config

import "sort"

// Presets are named musical intervals: the frequency ratio determines
// both the audible interval and the shape of the traced figure.
var Presets = map[string]*Config{
	"circle": {
		LeftFrequency: 1000, RightFrequency: 1000, PhaseDegrees: 90,
		Speed: 1.0, TrailLength: 8000, ShowGrid: true, ShowAxes: true,
		Theme: DefaultTheme, Audio: AudioConfig{Backend: "auto", Gain: DefaultGain},
	},
	"line": {
		LeftFrequency: 1000, RightFrequency: 1000, PhaseDegrees: 0,
		Speed: 1.0, TrailLength: 8000, ShowGrid: true, ShowAxes: true,
		Theme: DefaultTheme, Audio: AudioConfig{Backend: "auto", Gain: DefaultGain},
	},
	"octave": {
		LeftFrequency: 1000, RightFrequency: 2000, PhaseDegrees: 0,
		Speed: 1.0, TrailLength: 10000, ShowGrid: true, ShowAxes: true,
		Theme: DefaultTheme, Audio: AudioConfig{Backend: "auto", Gain: DefaultGain},
	},
	"fifth": {
		LeftFrequency: 1000, RightFrequency: 1500, PhaseDegrees: 90,
		Speed: 1.0, TrailLength: 12000, ShowGrid: true, ShowAxes: true,
		Theme: DefaultTheme, Audio: AudioConfig{Backend: "auto", Gain: DefaultGain},
	},
	"fourth": {
		LeftFrequency: 1500, RightFrequency: 2000, PhaseDegrees: 0,
		Speed: 1.0, TrailLength: 12000, ShowGrid: true, ShowAxes: true,
		Theme: DefaultTheme, Audio: AudioConfig{Backend: "auto", Gain: DefaultGain},
	},
	"third": {
		LeftFrequency: 2000, RightFrequency: 2500, PhaseDegrees: 90,
		Speed: 0.8, TrailLength: 16384, ShowGrid: true, ShowAxes: true,
		Theme: DefaultTheme, Audio: AudioConfig{Backend: "auto", Gain: DefaultGain},
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
