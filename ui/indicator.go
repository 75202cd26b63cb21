package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"golang.org/x/image/font"
)

// IndicatorFade is how long the zoom label stays visible after a change.
const IndicatorFade = 1.5

// ZoomIndicator shows the current scale for a moment after it changes.
type ZoomIndicator struct {
	scale float64
	alpha float32
	fade  *gween.Tween
}

func NewZoomIndicator(scale float64) *ZoomIndicator {
	return &ZoomIndicator{scale: scale}
}

// Update advances the fade by dt seconds and restarts it when scale differs
// from the one shown.
func (z *ZoomIndicator) Update(scale, dt float64) {
	if scale != z.scale {
		z.scale = scale
		z.fade = gween.New(1, 0, IndicatorFade, ease.InQuad)
		z.alpha = 1
		return
	}
	if z.fade == nil {
		return
	}
	a, done := z.fade.Update(float32(dt))
	z.alpha = a
	if done {
		z.alpha = 0
		z.fade = nil
	}
}

func (z *ZoomIndicator) Alpha() float32 {
	return z.alpha
}

func (z *ZoomIndicator) Label() string {
	return fmt.Sprintf("zoom: %.2fx", z.scale)
}

func (z *ZoomIndicator) Draw(screen *ebiten.Image, w, h int, face font.Face, drawText TextDrawer) {
	if z.alpha <= 0 || face == nil || drawText == nil {
		return
	}
	a := uint8(255 * z.alpha)
	drawText(screen, face, z.Label(), w/2-40, h-40, color.NRGBA{255, 255, 255, a})
}
