package render

import (
	"strings"
)

// Braille patterns: 2x4 dots per cell
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

// gridDotStep spaces out grid-line dots so the grid reads as faint
// next to the solid trail.
const gridDotStep = 3

// Canvas is a braille-cell Surface for terminal output. A canvas of
// W x H cells addresses (W*2) x (H*4) dots; reference-frame
// coordinates scale onto that dot grid.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800 // empty braille char
		}
	}
	return c
}

// Set marks the dot at (x, y) in dot coordinates.
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}

	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}

	subX := x % 2
	subY := y % 4

	c.Grid[row][col] |= rune(pixelMap[subY][subX])
}

// Clear resets every cell to the empty braille char.
func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800
		}
	}
}

// DrawLine draws a line in dot coordinates using Bresenham's algorithm.
func (c *Canvas) DrawLine(x0, y0, x1, y1 int) {
	c.drawLineEvery(x0, y0, x1, y1, 1)
}

// drawLineEvery plots every step-th dot of the Bresenham walk.
func (c *Canvas) drawLineEvery(x0, y0, x1, y1, step int) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	n := 0
	for {
		if n%step == 0 {
			c.Set(x0, y0)
		}
		n++
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

// Size reports the reference frame; the canvas rescales internally.
func (c *Canvas) Size() (float64, float64) {
	return RefSize, RefSize
}

// Line strokes grid lines dotted and axes solid.
func (c *Canvas) Line(a, b Vec2, kind LineKind) {
	x0, y0 := c.toDots(a)
	x1, y1 := c.toDots(b)
	step := 1
	if kind == LineGrid {
		step = gridDotStep
	}
	c.drawLineEvery(x0, y0, x1, y1, step)
}

// StrokePath draws the trail as connected segments. Braille cells are
// monochrome, so the gradient flattens to a plain stroke.
func (c *Canvas) StrokePath(pts []Vec2, _ Gradient) {
	for i := 1; i < len(pts); i++ {
		x0, y0 := c.toDots(pts[i-1])
		x1, y1 := c.toDots(pts[i])
		c.drawLineEvery(x0, y0, x1, y1, 1)
	}
}

// Marker draws the leading glyph as a filled block of dots.
func (c *Canvas) Marker(center Vec2, _ float64) {
	x, y := c.toDots(center)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			c.Set(x+dx, y+dy)
		}
	}
}

func (c *Canvas) toDots(v Vec2) (int, int) {
	x := int(v.X * float64(c.Width*2) / RefSize)
	y := int(v.Y * float64(c.Height*4) / RefSize)
	// the bottom/right reference edge lands on the last dot
	if x >= c.Width*2 {
		x = c.Width*2 - 1
	}
	if y >= c.Height*4 {
		y = c.Height*4 - 1
	}
	return x, y
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
