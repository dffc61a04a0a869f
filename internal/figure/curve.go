package figure

import (
	"math"
	"time"
)

// Point is one sample of the curve in normalized coordinates, each
// component in [-1, 1].
type Point struct {
	X, Y float64
}

// Sample computes count points of the figure described by p as seen at
// wall-clock time now, for an animation whose origin is origin. The
// result depends only on the arguments: calling it again with the same
// inputs yields the same points.
func Sample(p Params, origin, now time.Time, count int) []Point {
	return SampleInto(nil, p, origin, now, count)
}

// SampleInto is Sample reusing dst's backing array when it is large
// enough. The frame loop calls it once per tick with trail-length
// counts, so the buffer is worth keeping.
//
// Point i sits i timesteps ahead of the elapsed instant, which draws a
// short window of the curve's path without retaining any state between
// frames. A count below 2 is not an error; the renderer treats such a
// trail as nothing to draw.
func SampleInto(dst []Point, p Params, origin, now time.Time, count int) []Point {
	if count < 0 {
		count = 0
	}
	if cap(dst) < count {
		dst = make([]Point, count)
	}
	dst = dst[:count]

	elapsed := now.Sub(origin).Seconds() * p.Speed
	step := 0.001 * p.Speed
	phase := p.PhaseDeg * math.Pi / 180

	for i := range dst {
		t := elapsed + float64(i)*step
		dst[i].X = math.Sin(2 * math.Pi * p.RightFreq * t / 1000)
		dst[i].Y = math.Sin(2*math.Pi*p.LeftFreq*t/1000 + phase)
	}
	return dst
}
