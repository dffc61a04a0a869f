package anim

import (
	"math"
	"time"

	"github.com/san-kum/lissa/internal/figure"
	"github.com/san-kum/lissa/internal/render"
)

// reportEvery is the wall-clock window over which the frame-rate
// estimate is accumulated before publishing.
const reportEvery = time.Second

// Scheduler drives the sample-render loop for one session. The host
// invokes Tick once per display refresh; both hosts deliver that
// callback on a single goroutine and ticks never overlap, so the
// scheduler carries no locking of its own.
type Scheduler struct {
	store    *figure.Store
	renderer *render.Renderer
	surface  render.Surface

	running    bool
	origin     time.Time
	frames     int
	lastReport time.Time
	rate       int

	buf []figure.Point
}

func New(store *figure.Store, renderer *render.Renderer, surface render.Surface) *Scheduler {
	return &Scheduler{store: store, renderer: renderer, surface: surface}
}

// Start moves the scheduler from idle to running: the animation origin
// becomes now and the frame-rate estimate restarts from zero. Starting
// a running scheduler does nothing.
func (s *Scheduler) Start(now time.Time) {
	if s.running {
		return
	}
	s.running = true
	s.origin = now
	s.frames = 0
	s.lastReport = now
	s.rate = 0
}

// Stop returns the scheduler to idle and discards the frame-rate
// estimate. Ticks delivered after Stop are dropped, which is what
// cancels a refresh callback already in flight. Safe to call in any
// state, any number of times.
func (s *Scheduler) Stop() {
	s.running = false
	s.rate = 0
}

func (s *Scheduler) Running() bool {
	return s.running
}

// Rate returns the most recently published frames-per-second estimate,
// zero until the first window completes.
func (s *Scheduler) Rate() int {
	return s.rate
}

// Tick runs one frame at the given instant: it snapshots the
// parameters, samples the trail, renders it, and accounts the frame.
// Once per report window it publishes a fresh rate estimate and
// reports it with published=true. Ticks are dropped while idle or
// when no surface is attached; a dropped tick renders nothing and
// counts nothing, and the next refresh retries.
func (s *Scheduler) Tick(now time.Time) (rate int, published bool) {
	if !s.running || s.surface == nil {
		return s.rate, false
	}

	p := s.store.Snapshot()
	s.buf = figure.SampleInto(s.buf, p, s.origin, now, p.Trail)
	s.renderer.Render(s.surface, s.buf, p)
	s.frames++

	if elapsed := now.Sub(s.lastReport); elapsed > reportEvery {
		s.rate = int(math.Round(float64(s.frames) * 1000 / float64(elapsed.Milliseconds())))
		s.frames = 0
		s.lastReport = now
		return s.rate, true
	}
	return s.rate, false
}

// Redraw renders the frame for the given instant without counting it
// toward the frame-rate estimate. Hosts that must repaint every frame
// (the raylib window) use it to keep the figure on screen while idle.
func (s *Scheduler) Redraw(now time.Time) {
	if s.surface == nil {
		return
	}
	p := s.store.Snapshot()
	s.buf = figure.SampleInto(s.buf, p, s.origin, now, p.Trail)
	s.renderer.Render(s.surface, s.buf, p)
}
