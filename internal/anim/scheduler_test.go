package anim

import (
	"testing"
	"time"

	"github.com/san-kum/lissa/internal/figure"
	"github.com/san-kum/lissa/internal/render"
)

type countingSurface struct {
	clears  int
	pathLen int
	markers int
}

func (c *countingSurface) Size() (float64, float64)                        { return render.RefSize, render.RefSize }
func (c *countingSurface) Clear()                                          { c.clears++ }
func (c *countingSurface) Line(_, _ render.Vec2, _ render.LineKind)        {}
func (c *countingSurface) StrokePath(pts []render.Vec2, _ render.Gradient) { c.pathLen = len(pts) }
func (c *countingSurface) Marker(_ render.Vec2, _ float64)                 { c.markers++ }

func newTestScheduler() (*Scheduler, *countingSurface) {
	surf := &countingSurface{}
	store := figure.NewStore(figure.Defaults())
	return New(store, render.NewRenderer(), surf), surf
}

func TestTickRendersTrail(t *testing.T) {
	s, surf := newTestScheduler()
	t0 := time.Unix(1700000000, 0)

	s.Start(t0)
	s.Tick(t0.Add(16 * time.Millisecond))

	if surf.clears != 1 {
		t.Errorf("expected 1 frame rendered, got %d clears", surf.clears)
	}
	if want := figure.Defaults().Trail; surf.pathLen != want {
		t.Errorf("expected %d trail points, got %d", want, surf.pathLen)
	}
	if surf.markers != 1 {
		t.Errorf("expected 1 marker, got %d", surf.markers)
	}
}

func TestTickObservesParameterUpdates(t *testing.T) {
	surf := &countingSurface{}
	store := figure.NewStore(figure.Defaults())
	s := New(store, render.NewRenderer(), surf)
	t0 := time.Unix(1700000000, 0)

	s.Start(t0)
	store.Update(func(p *figure.Params) { p.Trail = 2000 })
	s.Tick(t0.Add(16 * time.Millisecond))

	if surf.pathLen != 2000 {
		t.Errorf("expected the new trail length on the next tick, got %d", surf.pathLen)
	}
}

func TestTickDroppedWhenIdle(t *testing.T) {
	s, surf := newTestScheduler()
	t0 := time.Unix(1700000000, 0)

	s.Tick(t0)
	if surf.clears != 0 {
		t.Error("tick before start must render nothing")
	}

	s.Start(t0)
	s.Stop()
	s.Tick(t0.Add(16 * time.Millisecond))
	if surf.clears != 0 {
		t.Error("tick after stop must render nothing")
	}
}

func TestStopIdempotent(t *testing.T) {
	s, _ := newTestScheduler()

	s.Stop() // never started
	s.Stop()
	if s.Running() {
		t.Error("expected idle after stop")
	}

	s.Start(time.Unix(1700000000, 0))
	s.Stop()
	s.Stop()
	if s.Running() {
		t.Error("expected idle after double stop")
	}
	if s.Rate() != 0 {
		t.Error("expected rate discarded on stop")
	}
}

func TestRateCadence(t *testing.T) {
	s, _ := newTestScheduler()
	t0 := time.Unix(1700000000, 0)
	s.Start(t0)

	const tickInterval = 50 * time.Millisecond
	published := 0
	for i := 1; i <= 42; i++ {
		now := t0.Add(time.Duration(i) * tickInterval)
		rate, ok := s.Tick(now)
		if !ok {
			continue
		}
		published++
		// 21 ticks per 1050ms window: round(21*1000/1050) = 20
		if rate != 20 {
			t.Errorf("publish %d: expected rate 20, got %d", published, rate)
		}
		if i != 21 && i != 42 {
			t.Errorf("expected publishes at ticks 21 and 42, got one at %d", i)
		}
	}
	if published != 2 {
		t.Errorf("expected 2 publishes over 42 ticks, got %d", published)
	}
	if s.Rate() != 20 {
		t.Errorf("expected last published rate 20, got %d", s.Rate())
	}
}

func TestRedrawDoesNotCountFrames(t *testing.T) {
	s, surf := newTestScheduler()
	t0 := time.Unix(1700000000, 0)
	s.Start(t0)

	for i := 0; i < 5; i++ {
		s.Redraw(t0.Add(time.Duration(i) * time.Millisecond))
	}
	rate, ok := s.Tick(t0.Add(1100 * time.Millisecond))
	if !ok {
		t.Fatal("expected a rate publish after the report window")
	}
	// one counted frame over 1100ms
	if rate != 1 {
		t.Errorf("expected rate 1, got %d", rate)
	}
	if surf.clears != 6 {
		t.Errorf("expected 6 rendered frames (5 redraws + 1 tick), got %d", surf.clears)
	}
}

func TestNilSurfaceSkipsFrame(t *testing.T) {
	store := figure.NewStore(figure.Defaults())
	s := New(store, render.NewRenderer(), nil)
	t0 := time.Unix(1700000000, 0)

	s.Start(t0)
	if _, ok := s.Tick(t0.Add(16 * time.Millisecond)); ok {
		t.Error("expected no publish without a surface")
	}
	s.Redraw(t0) // must not panic
}
