package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// TextDrawer draws s with its top-left corner at (x, y).
type TextDrawer func(screen *ebiten.Image, face font.Face, s string, x, y int, clr color.Color)

type Button struct {
	Label   string
	X, Y    float32
	W, H    float32
	OnClick func()
}

func (b *Button) Contains(x, y float64) bool {
	return float32(x) >= b.X && float32(x) <= b.X+b.W &&
		float32(y) >= b.Y && float32(y) <= b.Y+b.H
}

var buttonColor = color.RGBA{60, 60, 70, 200}

func (b *Button) Draw(screen *ebiten.Image, face font.Face, drawText TextDrawer) {
	vector.DrawFilledRect(screen, b.X, b.Y, b.W, b.H, buttonColor, false)
	if face == nil || drawText == nil {
		return
	}
	drawText(screen, face, b.Label, int(b.X)+10, int(b.Y)+8, color.White)
}
