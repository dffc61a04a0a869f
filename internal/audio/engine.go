package audio

import (
	"errors"
	"fmt"
)

// ErrNoBackend indicates no output backend could open a device.
var ErrNoBackend = errors.New("audio: no output backend available")

// Backend names accepted by Open.
const (
	BackendAuto      = "auto"
	BackendPortAudio = "portaudio"
	BackendBeep      = "beep"
	BackendOff       = "off"
)

// Engine is the stereo tone pair a session drives. All methods are
// safe to call from the UI goroutine while the device callback runs.
// A failed engine is replaced by [Disabled]; the render loop never
// deals with audio errors beyond reporting them.
type Engine interface {
	Name() string
	// SetTones retunes both oscillators; phaseRad is the left tone's
	// phase lead in radians.
	SetTones(leftHz, rightHz, phaseRad float64)
	// SetGains sets per-channel gain targets in [0, 1].
	SetGains(left, right float64)
	// SetMuted silences output without tearing the tones down.
	SetMuted(muted bool)
	Close() error
}

// Open starts an output backend. "auto" tries portaudio first and
// falls back to the beep speaker; "off" returns the disabled engine.
// On failure the returned engine is always usable (disabled), with
// the error explaining what was tried.
func Open(backend string) (Engine, error) {
	switch backend {
	case BackendOff, "":
		return Disabled{}, nil
	case BackendPortAudio:
		return openPortAudio()
	case BackendBeep:
		return openBeep()
	case BackendAuto:
		pa, paErr := openPortAudio()
		if paErr == nil {
			return pa, nil
		}
		be, beepErr := openBeep()
		if beepErr == nil {
			return be, nil
		}
		return Disabled{}, fmt.Errorf("%w (portaudio: %v, beep: %v)", ErrNoBackend, paErr, beepErr)
	default:
		return Disabled{}, fmt.Errorf("audio: unknown backend %q", backend)
	}
}

// Disabled is the engine used when audio is off or unavailable. Every
// method is a no-op.
type Disabled struct{}

func (Disabled) Name() string             { return "off" }
func (Disabled) SetTones(_, _, _ float64) {}
func (Disabled) SetGains(_, _ float64)    {}
func (Disabled) SetMuted(_ bool)          {}
func (Disabled) Close() error             { return nil }
