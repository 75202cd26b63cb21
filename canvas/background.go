package canvas

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Style holds the colors and stroke widths of the grid scene.
type Style struct {
	Background  color.Color
	GridLine    color.Color
	GridWidth   float64 // world units, scaled with the view
	GridCorner  color.Color
	Marker      color.Color
	MarkerWidth float64
	Reference   color.Color
}

var DefaultStyle = Style{
	Background:  color.RGBA{77, 77, 82, 255},
	GridLine:    color.RGBA{255, 255, 255, 255},
	GridWidth:   0.5,
	GridCorner:  color.RGBA{0, 0, 0, 255},
	Marker:      color.RGBA{255, 255, 255, 255},
	MarkerWidth: 2,
	Reference:   color.RGBA{220, 0, 0, 255},
}

// Renderer draws the grid scene for a given transform. It never changes the
// transform it is handed.
type Renderer struct {
	Grid  Grid
	Style Style
}

func NewRenderer(grid Grid, style Style) *Renderer {
	return &Renderer{Grid: grid, Style: style}
}

// Draw renders one frame of the scene onto screen.
func (r *Renderer) Draw(screen *ebiten.Image, tr Transform, vp Viewport, cursor Vec2) {
	screen.Fill(r.Style.Background)

	width := float32(r.Style.GridWidth * tr.Scale)
	for _, seg := range r.Grid.Segments() {
		s := seg.Transformed(tr)
		if !vp.Visible(s) {
			continue
		}
		vector.StrokeLine(screen, float32(s.A.X), float32(s.A.Y), float32(s.B.X), float32(s.B.Y), width, r.Style.GridLine, true)
	}

	lo, hi := r.Grid.Corner()
	smin, smax := tr.WorldToScreen(lo), tr.WorldToScreen(hi)
	vector.DrawFilledRect(screen, float32(smin.X), float32(smin.Y), float32(smax.X-smin.X), float32(smax.Y-smin.Y), r.Style.GridCorner, false)

	ref := ReferenceCircle
	vector.StrokeCircle(screen, float32(ref.C.X), float32(ref.C.Y), float32(ref.R), float32(r.Style.MarkerWidth), r.Style.Reference, true)

	m := CursorMarker(cursor, tr.Scale)
	for _, a := range m.Axes {
		vector.StrokeLine(screen, float32(a.A.X), float32(a.A.Y), float32(a.B.X), float32(a.B.Y), float32(r.Style.MarkerWidth), r.Style.Marker, true)
	}
	vector.StrokeCircle(screen, float32(m.Dot.C.X), float32(m.Dot.C.Y), float32(m.Dot.R), float32(r.Style.MarkerWidth), r.Style.Marker, true)
}
