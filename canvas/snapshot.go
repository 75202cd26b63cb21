package canvas

import (
	"fmt"

	"github.com/gogpu/gg"
)

// Snapshot renders the scene off-screen with the software rasterizer. The
// caller owns the returned context.
func (r *Renderer) Snapshot(tr Transform, vp Viewport, cursor Vec2) (*gg.Context, error) {
	if vp.Width <= 0 || vp.Height <= 0 {
		return nil, fmt.Errorf("snapshot: invalid viewport %dx%d", vp.Width, vp.Height)
	}
	dc := gg.NewContext(vp.Width, vp.Height)
	dc.ClearWithColor(gg.FromColor(r.Style.Background))

	// The grid is drawn in world space under the view transform, the way the
	// window renderer maps it point by point.
	dc.Push()
	dc.Translate(tr.Origin.X, tr.Origin.Y)
	dc.Scale(tr.Scale, tr.Scale)
	for _, seg := range r.Grid.Segments() {
		dc.MoveTo(seg.A.X, seg.A.Y)
		dc.LineTo(seg.B.X, seg.B.Y)
	}
	dc.SetColor(r.Style.GridLine)
	dc.SetLineWidth(r.Style.GridWidth)
	if err := dc.Stroke(); err != nil {
		dc.Pop()
		return nil, fmt.Errorf("snapshot: grid: %w", err)
	}

	lo, hi := r.Grid.Corner()
	dc.DrawRectangle(lo.X, lo.Y, hi.X-lo.X, hi.Y-lo.Y)
	dc.SetColor(r.Style.GridCorner)
	if err := dc.Fill(); err != nil {
		dc.Pop()
		return nil, fmt.Errorf("snapshot: corner: %w", err)
	}
	dc.Pop()

	dc.SetLineWidth(r.Style.MarkerWidth)
	dc.DrawCircle(ReferenceCircle.C.X, ReferenceCircle.C.Y, ReferenceCircle.R)
	dc.SetColor(r.Style.Reference)
	if err := dc.Stroke(); err != nil {
		return nil, fmt.Errorf("snapshot: reference: %w", err)
	}

	m := CursorMarker(cursor, tr.Scale)
	for _, a := range m.Axes {
		dc.MoveTo(a.A.X, a.A.Y)
		dc.LineTo(a.B.X, a.B.Y)
	}
	dc.DrawCircle(m.Dot.C.X, m.Dot.C.Y, m.Dot.R)
	dc.SetColor(r.Style.Marker)
	if err := dc.Stroke(); err != nil {
		return nil, fmt.Errorf("snapshot: marker: %w", err)
	}
	return dc, nil
}

// SavePNG renders a snapshot and writes it to path.
func (r *Renderer) SavePNG(path string, tr Transform, vp Viewport, cursor Vec2) (err error) {
	dc, err := r.Snapshot(tr, vp, cursor)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := dc.Close(); err == nil {
			err = cerr
		}
	}()
	return dc.SavePNG(path)
}
