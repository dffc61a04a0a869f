package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/lissa/internal/render"
)

// canvasSurface draws render passes straight into the open raylib
// frame. Every call lands between BeginDrawing and EndDrawing; the
// window matches the 500x500 reference frame so no rescaling happens
// here.
type canvasSurface struct{}

func (canvasSurface) Size() (float64, float64) { return winSize, winSize }

func (canvasSurface) Clear() { rl.ClearBackground(colBg) }

func (canvasSurface) Line(a, b render.Vec2, kind render.LineKind) {
	col := colGrid
	if kind == render.LineAxis {
		col = colAxis
	}
	rl.DrawLineV(vec(a), vec(b), col)
}

// StrokePath fades each segment by where its midpoint sits along the
// gradient diagonal, faint at the From corner, solid at To.
func (canvasSurface) StrokePath(pts []render.Vec2, grad render.Gradient) {
	dx := grad.To.X - grad.From.X
	dy := grad.To.Y - grad.From.Y
	lenSq := dx*dx + dy*dy
	for i := 1; i < len(pts); i++ {
		mx := (pts[i-1].X + pts[i].X) / 2
		my := (pts[i-1].Y + pts[i].Y) / 2
		t := 0.0
		if lenSq > 0 {
			t = ((mx-grad.From.X)*dx + (my-grad.From.Y)*dy) / lenSq
			if t < 0 {
				t = 0
			} else if t > 1 {
				t = 1
			}
		}
		alpha := grad.FromAlpha + t*(grad.ToAlpha-grad.FromAlpha)
		rl.DrawLineV(vec(pts[i-1]), vec(pts[i]), rl.Fade(colTrail, float32(alpha)))
	}
}

func (canvasSurface) Marker(center render.Vec2, radius float64) {
	rl.DrawCircleGradient(int32(center.X), int32(center.Y), float32(radius)*2.5, rl.Fade(colTrail, 0.6), rl.Fade(colTrail, 0))
	rl.DrawCircleV(vec(center), float32(radius), colTrail)
}

func vec(v render.Vec2) rl.Vector2 {
	return rl.NewVector2(float32(v.X), float32(v.Y))
}
