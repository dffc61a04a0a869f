package render

import (
	"github.com/san-kum/lissa/internal/figure"
)

// Scale maps a normalized curve coordinate of 1.0 to this many device
// units from the surface center.
const Scale = 200.0

const (
	gridSpacing   = Scale / 2
	gridHalfLines = 2 // lines per side of center, 5 per direction total
	markerRadius  = 6.0
	trailMinAlpha = 0.1
	trailMaxAlpha = 1.0
)

// Renderer draws one frame per call. It keeps only a scratch buffer
// for screen-space points, so a single instance serves a whole
// session.
type Renderer struct {
	screen []Vec2
}

func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render executes the pass order against s: clear, grid, axes, trail,
// marker. Every pass degrades to a no-op on missing input; an absent
// surface skips the frame entirely.
func (r *Renderer) Render(s Surface, pts []figure.Point, p figure.Params) {
	if s == nil {
		return
	}
	w, h := s.Size()
	cx, cy := w/2, h/2

	s.Clear()
	if p.ShowGrid {
		drawGrid(s, w, h, cx, cy)
	}
	if p.ShowAxes {
		s.Line(Vec2{X: 0, Y: cy}, Vec2{X: w, Y: cy}, LineAxis)
		s.Line(Vec2{X: cx, Y: 0}, Vec2{X: cx, Y: h}, LineAxis)
	}
	if len(pts) == 0 {
		return
	}

	if cap(r.screen) < len(pts) {
		r.screen = make([]Vec2, len(pts))
	}
	r.screen = r.screen[:len(pts)]
	for i, pt := range pts {
		// Y flips: curve coordinates grow upward, surface downward.
		r.screen[i] = Vec2{X: cx + pt.X*Scale, Y: cy - pt.Y*Scale}
	}

	if len(r.screen) >= 2 {
		s.StrokePath(r.screen, trailGradient(r.screen))
	}
	s.Marker(r.screen[len(r.screen)-1], markerRadius)
}

func drawGrid(s Surface, w, h, cx, cy float64) {
	for k := -gridHalfLines; k <= gridHalfLines; k++ {
		x := cx + float64(k)*gridSpacing
		y := cy + float64(k)*gridSpacing
		s.Line(Vec2{X: x, Y: 0}, Vec2{X: x, Y: h}, LineGrid)
		s.Line(Vec2{X: 0, Y: y}, Vec2{X: w, Y: y}, LineGrid)
	}
}

// trailGradient ramps opacity along the diagonal of the trail's
// bounding box, faint at the minimum corner and solid at the maximum.
func trailGradient(pts []Vec2) Gradient {
	minX, minY := pts[0].X, pts[0].Y
	maxX, maxY := minX, minY
	for _, pt := range pts[1:] {
		if pt.X < minX {
			minX = pt.X
		}
		if pt.X > maxX {
			maxX = pt.X
		}
		if pt.Y < minY {
			minY = pt.Y
		}
		if pt.Y > maxY {
			maxY = pt.Y
		}
	}
	return Gradient{
		From:      Vec2{X: minX, Y: minY},
		To:        Vec2{X: maxX, Y: maxY},
		FromAlpha: trailMinAlpha,
		ToAlpha:   trailMaxAlpha,
	}
}
