package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// DebugPanel shows the last repaired invariant violation in the bottom-right
// corner until cleared.
type DebugPanel struct {
	Error string
	count int
}

// Report records a violation. Repeated reports of the same count are ignored.
func (d *DebugPanel) Report(count int, msg string) {
	if count == d.count {
		return
	}
	d.count = count
	d.Error = msg
}

func (d *DebugPanel) Clear() {
	d.Error = ""
}

func (d *DebugPanel) Draw(screen *ebiten.Image, w, h int, face font.Face, drawText TextDrawer) {
	if d == nil || d.Error == "" {
		return
	}
	pw, ph := 300, 80
	x := w - pw - 10
	y := h - ph - 10
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(pw), float32(ph), color.RGBA{40, 40, 40, 220}, false)
	if face != nil && drawText != nil {
		drawText(screen, face, d.Error, x+8, y+8, color.RGBA{255, 200, 50, 255})
	}
}
