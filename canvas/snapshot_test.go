package canvas

import (
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func requireColorNear(t *testing.T, expected color.Color, img image.Image, x, y int) {
	t.Helper()
	er, eg, eb, _ := expected.RGBA()
	r, g, b, _ := img.At(x, y).RGBA()
	const tol = 3 << 8
	require.InDelta(t, float64(er), float64(r), tol, "red at (%d, %d)", x, y)
	require.InDelta(t, float64(eg), float64(g), tol, "green at (%d, %d)", x, y)
	require.InDelta(t, float64(eb), float64(b), tol, "blue at (%d, %d)", x, y)
}

func TestRenderer_Snapshot(t *testing.T) {
	r := NewRenderer(DefaultGrid, DefaultStyle)
	dc, err := r.Snapshot(Identity(), Viewport{Width: 500, Height: 400}, Vec2{450, 350})
	require.NoError(t, err)
	defer dc.Close()

	img := dc.Image()
	require.Equal(t, image.Rect(0, 0, 500, 400), img.Bounds())
	requireColorNear(t, DefaultStyle.Background, img, 20, 20)
	requireColorNear(t, DefaultStyle.GridCorner, img, 105, 105)
}

func TestRenderer_SnapshotFollowsTransform(t *testing.T) {
	zc := NewZoomController(DefaultZoomLimits)
	zc.OnZoomEvent(Vec2{100, 100}, 2)

	r := NewRenderer(DefaultGrid, DefaultStyle)
	dc, err := r.Snapshot(zc.Transform(), Viewport{Width: 500, Height: 400}, Vec2{450, 350})
	require.NoError(t, err)
	defer dc.Close()

	// the corner square now spans (100,100)-(120,120) on screen
	requireColorNear(t, DefaultStyle.GridCorner, dc.Image(), 115, 115)
}

func TestRenderer_SnapshotRejectsEmptyViewport(t *testing.T) {
	r := NewRenderer(DefaultGrid, DefaultStyle)
	_, err := r.Snapshot(Identity(), Viewport{}, Vec2{})
	require.Error(t, err)
}

func TestRenderer_SavePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grid.png")
	r := NewRenderer(DefaultGrid, DefaultStyle)
	require.NoError(t, r.SavePNG(path, Identity(), Viewport{Width: 64, Height: 64}, Vec2{32, 32}))
	require.FileExists(t, path)
}
