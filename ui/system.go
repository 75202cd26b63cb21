package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
)

type System struct {
	buttons   []*Button
	face      font.Face
	drawText  TextDrawer
	screenW   int
	screenH   int
	Indicator *ZoomIndicator
	Debug     *DebugPanel
}

func NewSystem(face font.Face, drawText TextDrawer, onZoomIn, onZoomOut func()) *System {
	ui := &System{
		face:      face,
		drawText:  drawText,
		Indicator: NewZoomIndicator(1),
		Debug:     &DebugPanel{},
	}
	ui.buttons = []*Button{
		{Label: "+", W: 30, H: 30, OnClick: onZoomIn},
		{Label: "-", W: 30, H: 30, OnClick: onZoomOut},
	}
	return ui
}

// Layout places the buttons along the top-right edge of a w x h screen.
func (ui *System) Layout(w, h int) {
	ui.screenW, ui.screenH = w, h
	for i, b := range ui.buttons {
		b.X = float32(w) - float32(i+1)*(b.W+10)
		b.Y = 10
	}
}

// HandleClick runs the button under (x, y), if any, and reports whether the
// click was consumed.
func (ui *System) HandleClick(x, y float64) bool {
	for _, b := range ui.buttons {
		if b.Contains(x, y) {
			if b.OnClick != nil {
				b.OnClick()
			}
			return true
		}
	}
	return false
}

func (ui *System) Draw(screen *ebiten.Image) {
	for _, b := range ui.buttons {
		b.Draw(screen, ui.face, ui.drawText)
	}
	ui.Indicator.Draw(screen, ui.screenW, ui.screenH, ui.face, ui.drawText)
	ui.Debug.Draw(screen, ui.screenW, ui.screenH, ui.face, ui.drawText)
}
