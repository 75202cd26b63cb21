package canvas

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTransform_WorldToScreen(t *testing.T) {
	tr := Transform{Origin: Vec2{-100, -100}, Scale: 2}
	require.Equal(t, Vec2{100, 100}, tr.WorldToScreen(Vec2{100, 100}))
	require.Equal(t, Vec2{-100, -100}, tr.WorldToScreen(Vec2{}))
}

func TestTransform_ScreenToWorldInverts(t *testing.T) {
	tr := Transform{Origin: Vec2{33, -7}, Scale: 1.75}
	for _, p := range []Vec2{{0, 0}, {100, 100}, {-3.5, 812}} {
		back := tr.ScreenToWorld(tr.WorldToScreen(p))
		require.InDelta(t, p.X, back.X, eps)
		require.InDelta(t, p.Y, back.Y, eps)
	}
}

func TestTransform_Zoomed(t *testing.T) {
	tr := Identity().Zoomed(Vec2{100, 100}, 2)
	require.Equal(t, Transform{Origin: Vec2{-100, -100}, Scale: 2}, tr)
}
