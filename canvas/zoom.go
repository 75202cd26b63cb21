package canvas

import (
	"fmt"
	"log"
	"math"
)

// ZoomEvent is one zoom step requested at a screen position.
type ZoomEvent struct {
	Cursor Vec2
	Delta  float64
}

// ZoomLimits bounds the scale of a ZoomController.
type ZoomLimits struct {
	Min, Max float64
}

// DefaultZoomLimits bound the scale to [0.5, 5].
var DefaultZoomLimits = ZoomLimits{Min: 0.5, Max: 5.0}

// Valid reports whether Min is positive and at most a finite Max.
func (l ZoomLimits) Valid() bool {
	return l.Min > 0 && l.Min <= l.Max && !math.IsInf(l.Max, 0)
}

func (l ZoomLimits) clamp(s float64) float64 {
	return math.Max(l.Min, math.Min(l.Max, s))
}

// ZoomController owns the world-to-screen transform of the grid view. It is
// mutated only through zoom events and is read once per frame by the renderer.
type ZoomController struct {
	current Transform
	limits  ZoomLimits

	// LogEvents prints every zoom step.
	LogEvents bool

	violations    int
	lastViolation string
}

// NewZoomController starts at the identity transform. Invalid limits are
// replaced by DefaultZoomLimits.
func NewZoomController(limits ZoomLimits) *ZoomController {
	if !limits.Valid() {
		log.Printf("[zoom] invalid limits [%v, %v], using %v", limits.Min, limits.Max, DefaultZoomLimits)
		limits = DefaultZoomLimits
	}
	return &ZoomController{
		current: Identity(),
		limits:  limits,
	}
}

// OnZoomEvent changes the scale by wheelDelta/2 and moves the origin so that
// the point under cursor stays where it is on screen.
func (zc *ZoomController) OnZoomEvent(cursor Vec2, wheelDelta float64) {
	if math.IsNaN(wheelDelta) || math.IsInf(wheelDelta, 0) {
		log.Printf("[zoom] ignoring non-finite delta %v at %v", wheelDelta, cursor)
		return
	}

	prev := zc.current
	if !(prev.Scale > 0) {
		zc.violation(fmt.Sprintf("scale %v before zoom at %v, using 1", prev.Scale, cursor))
		prev.Scale = 1
	}

	scale := zc.limits.clamp(prev.Scale + wheelDelta/2)
	next := prev
	next.Scale = scale
	if scale != prev.Scale {
		next = prev.Zoomed(cursor, scale)
	}
	zc.current = next

	if zc.LogEvents {
		log.Printf("[zoom] delta %.2f at %v: scale %.3f -> %.3f, origin %v", wheelDelta, cursor, prev.Scale, next.Scale, next.Origin)
	}
}

// Apply is OnZoomEvent for a ZoomEvent value.
func (zc *ZoomController) Apply(ev ZoomEvent) {
	zc.OnZoomEvent(ev.Cursor, ev.Delta)
}

// CurrentTransform returns the last committed origin and scale.
func (zc *ZoomController) CurrentTransform() (Vec2, float64) {
	return zc.current.Origin, zc.current.Scale
}

// Transform returns the last committed transform as a value.
func (zc *ZoomController) Transform() Transform {
	return zc.current
}

// Limits returns the scale bounds in use.
func (zc *ZoomController) Limits() ZoomLimits {
	return zc.limits
}

// Violations reports how many degenerate states were repaired and the most
// recent description.
func (zc *ZoomController) Violations() (int, string) {
	return zc.violations, zc.lastViolation
}

func (zc *ZoomController) violation(msg string) {
	zc.violations++
	zc.lastViolation = msg
	log.Printf("[zoom] invariant violated: %s", msg)
}
