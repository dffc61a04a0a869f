package render

// RefSize is the side length of the square reference frame all drawing
// coordinates are expressed in, in device units.
const RefSize = 500.0

// Vec2 is a position in reference-frame coordinates. Y grows downward.
type Vec2 struct {
	X, Y float64
}

// LineKind selects the stroke class a surface applies to a line pass.
type LineKind int

const (
	LineGrid LineKind = iota
	LineAxis
)

// Gradient describes the linear opacity ramp applied along a stroked
// path, from FromAlpha at From to ToAlpha at To. Surfaces without
// per-segment opacity may flatten it to a plain stroke.
type Gradient struct {
	From, To  Vec2
	FromAlpha float64
	ToAlpha   float64
}

// Surface is the drawing sink the renderer targets.
type Surface interface {
	// Size reports the surface extent in reference-frame units.
	Size() (w, h float64)
	// Clear wipes the whole surface.
	Clear()
	// Line strokes one straight line of the given kind.
	Line(a, b Vec2, kind LineKind)
	// StrokePath strokes pts as one continuous path with the gradient.
	StrokePath(pts []Vec2, grad Gradient)
	// Marker draws the glowing leading glyph.
	Marker(center Vec2, radius float64)
}

// Discard is a Surface that draws nothing. Benchmarks run the frame
// loop against it to measure sampling and pass overhead alone.
var Discard Surface = discard{}

type discard struct{}

func (discard) Size() (float64, float64)        { return RefSize, RefSize }
func (discard) Clear()                          {}
func (discard) Line(_, _ Vec2, _ LineKind)      {}
func (discard) StrokePath(_ []Vec2, _ Gradient) {}
func (discard) Marker(_ Vec2, _ float64)        {}
