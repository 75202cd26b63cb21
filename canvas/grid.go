package canvas

import "math"

// Grid is a rectangular lattice in world units with D spacing between lines.
type Grid struct {
	X, Y float64
	W, H float64
	D    float64
}

// DefaultGrid is the 300x200 lattice the demo shows at startup.
var DefaultGrid = Grid{X: 100, Y: 100, W: 300, H: 200, D: 10}

// Segment is a straight line between two points.
type Segment struct {
	A, B Vec2
}

func (s Segment) Transformed(t Transform) Segment {
	return Segment{A: t.WorldToScreen(s.A), B: t.WorldToScreen(s.B)}
}

// Segments returns the horizontal lines followed by the vertical lines of the
// grid, in world coordinates.
func (g Grid) Segments() []Segment {
	if g.D <= 0 {
		return nil
	}
	rows := int(math.Floor(g.H/g.D)) + 1
	cols := int(math.Floor(g.W/g.D)) + 1
	segs := make([]Segment, 0, rows+cols)
	for i := 0; i < rows; i++ {
		y := g.Y + float64(i)*g.D
		segs = append(segs, Segment{A: Vec2{g.X, y}, B: Vec2{g.X + g.W, y}})
	}
	for i := 0; i < cols; i++ {
		x := g.X + float64(i)*g.D
		segs = append(segs, Segment{A: Vec2{x, g.Y}, B: Vec2{x, g.Y + g.H}})
	}
	return segs
}

// Corner is the filled D x D square marking the grid's top-left cell.
func (g Grid) Corner() (lo, hi Vec2) {
	return Vec2{g.X, g.Y}, Vec2{g.X + g.D, g.Y + g.D}
}

// Circle is a stroked circle in screen coordinates.
type Circle struct {
	C Vec2
	R float64
}

// Marker is the screen-space overlay drawn at the cursor: two axes and a dot
// on their diagonal, scaled with the view.
type Marker struct {
	Axes []Segment
	Dot  Circle
}

const markerLength = 20.0

func CursorMarker(cursor Vec2, scale float64) Marker {
	l := markerLength * scale
	return Marker{
		Axes: []Segment{
			{A: cursor, B: cursor.Add(Vec2{l, 0})},
			{A: cursor, B: cursor.Add(Vec2{0, l})},
		},
		Dot: Circle{C: cursor.Add(Vec2{l, l}), R: 2 * scale},
	}
}

// ReferenceCircle never moves; it shows how far the grid has drifted.
var ReferenceCircle = Circle{C: Vec2{100, 100}, R: 10}

// Viewport is the drawable area in screen pixels.
type Viewport struct {
	Width, Height int
}

// Center is where zoom buttons anchor their zoom.
func (v Viewport) Center() Vec2 {
	return Vec2{float64(v.Width) / 2, float64(v.Height) / 2}
}

// Visible reports whether the segment's bounding box touches the viewport.
func (v Viewport) Visible(s Segment) bool {
	minX, maxX := math.Min(s.A.X, s.B.X), math.Max(s.A.X, s.B.X)
	minY, maxY := math.Min(s.A.Y, s.B.Y), math.Max(s.A.Y, s.B.Y)
	return maxX >= 0 && maxY >= 0 && minX <= float64(v.Width) && minY <= float64(v.Height)
}
