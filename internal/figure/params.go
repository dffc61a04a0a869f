package figure

import "sync"

// Valid parameter ranges. Enforced by [Params.Clamp] at the edges
// (config load, key handling); the sampler itself accepts any values.
const (
	MinFreq  = 100.0
	MaxFreq  = 5000.0
	MinPhase = 0.0
	MaxPhase = 360.0
	MinSpeed = 0.5
	MaxSpeed = 3.0
	MinTrail = 1000
	MaxTrail = 16384
)

// Params describes one Lissajous figure and how it is animated.
// Frequencies are in oscillations per 1000 time units, which doubles
// as the tone frequency in Hz when the figure is sonified.
type Params struct {
	LeftFreq  float64 // vertical oscillator
	RightFreq float64 // horizontal oscillator
	PhaseDeg  float64 // phase lead of the left oscillator, degrees
	Speed     float64 // simulated-time multiplier
	Trail     int     // points sampled per frame
	ShowGrid  bool
	ShowAxes  bool
}

// Defaults returns the unison circle shown on startup.
func Defaults() Params {
	return Params{
		LeftFreq:  1000,
		RightFreq: 1000,
		PhaseDeg:  90,
		Speed:     1.0,
		Trail:     8000,
		ShowGrid:  true,
		ShowAxes:  true,
	}
}

// Clamp forces every field into its valid range and returns the result.
func (p Params) Clamp() Params {
	p.LeftFreq = clampFloat(p.LeftFreq, MinFreq, MaxFreq)
	p.RightFreq = clampFloat(p.RightFreq, MinFreq, MaxFreq)
	p.PhaseDeg = clampFloat(p.PhaseDeg, MinPhase, MaxPhase)
	p.Speed = clampFloat(p.Speed, MinSpeed, MaxSpeed)
	p.Trail = clampInt(p.Trail, MinTrail, MaxTrail)
	return p
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Store holds the parameters for one session. The UI mutates them at
// arbitrary times while the frame loop reads them; both sides only
// ever see whole snapshots, so a frame never observes a half-applied
// change.
type Store struct {
	mu sync.Mutex
	p  Params
}

// NewStore creates a store with the given parameters, clamped.
func NewStore(p Params) *Store {
	return &Store{p: p.Clamp()}
}

// Snapshot returns a copy of the current parameters.
func (s *Store) Snapshot() Params {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.p
}

// Update applies fn to the parameters under the lock, clamps the
// result, and returns the new snapshot.
func (s *Store) Update(fn func(*Params)) Params {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.p)
	s.p = s.p.Clamp()
	return s.p
}
