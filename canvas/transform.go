package canvas

// Transform maps world coordinates to the screen: screen = Origin + Scale*world.
type Transform struct {
	Origin Vec2
	Scale  float64
}

// Identity is the transform the view starts with.
func Identity() Transform {
	return Transform{Scale: 1}
}

func (t Transform) WorldToScreen(p Vec2) Vec2 {
	return t.Origin.Add(p.Mul(t.Scale))
}

func (t Transform) ScreenToWorld(s Vec2) Vec2 {
	return s.Sub(t.Origin).Mul(1 / t.Scale)
}

// Zoomed returns the transform with the given scale that keeps the world
// point under cursor in place. t.Scale must be positive.
func (t Transform) Zoomed(cursor Vec2, scale float64) Transform {
	z := scale / t.Scale
	return Transform{
		Origin: cursor.Add(t.Origin.Sub(cursor).Mul(z)),
		Scale:  scale,
	}
}
