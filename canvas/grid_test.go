package canvas

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGrid_Segments(t *testing.T) {
	segs := DefaultGrid.Segments()
	require.Len(t, segs, 21+31)

	require.Equal(t, Segment{A: Vec2{100, 100}, B: Vec2{400, 100}}, segs[0])
	require.Equal(t, Segment{A: Vec2{100, 300}, B: Vec2{400, 300}}, segs[20])
	require.Equal(t, Segment{A: Vec2{100, 100}, B: Vec2{100, 300}}, segs[21])
	require.Equal(t, Segment{A: Vec2{400, 100}, B: Vec2{400, 300}}, segs[len(segs)-1])
}

func TestGrid_NoSpacingNoLines(t *testing.T) {
	require.Empty(t, Grid{W: 10, H: 10}.Segments())
}

func TestCursorMarker_ScalesWithView(t *testing.T) {
	m := CursorMarker(Vec2{50, 60}, 2)
	require.Equal(t, Vec2{90, 60}, m.Axes[0].B)
	require.Equal(t, Vec2{50, 100}, m.Axes[1].B)
	require.Equal(t, Circle{C: Vec2{90, 100}, R: 4}, m.Dot)
}

func TestViewport_Visible(t *testing.T) {
	vp := Viewport{Width: 200, Height: 100}
	require.True(t, vp.Visible(Segment{A: Vec2{-10, 50}, B: Vec2{10, 50}}))
	require.False(t, vp.Visible(Segment{A: Vec2{-10, 50}, B: Vec2{-1, 50}}))
	require.False(t, vp.Visible(Segment{A: Vec2{0, 101}, B: Vec2{200, 101}}))
	require.Equal(t, Vec2{100, 50}, vp.Center())
}
