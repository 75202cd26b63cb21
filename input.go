package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"zoom-grid/canvas"
	"zoom-grid/input"
)

// InputSystem applies one frame's events to the game, in order.
type InputSystem struct {
	game   *Game
	cursor canvas.Vec2
}

func NewInputSystem(g *Game) *InputSystem {
	return &InputSystem{game: g}
}

// Cursor is the last known pointer position.
func (is *InputSystem) Cursor() canvas.Vec2 {
	return is.cursor
}

func (is *InputSystem) Handle(events []input.Event) {
	for _, ev := range events {
		switch ev := ev.(type) {
		case input.CursorMoved:
			is.cursor = canvas.Vec2{X: ev.X, Y: ev.Y}
		case input.Scroll:
			is.handleScroll(ev)
		case input.Key:
			if ev.Pressed {
				is.handleKey(ev.Code)
			}
		case input.Click:
			is.cursor = canvas.Vec2{X: ev.X, Y: ev.Y}
			is.game.ui.HandleClick(ev.X, ev.Y)
		}
	}
}

func (is *InputSystem) handleScroll(ev input.Scroll) {
	g := is.game
	if g.cfg.LogEvents {
		log.Printf("[input] scroll: [%.2f, %.2f]", ev.DX, ev.DY)
	}
	if ev.DY == 0 {
		return
	}
	g.zoom.OnZoomEvent(is.cursor, ev.DY)
}

func (is *InputSystem) handleKey(k ebiten.Key) {
	g := is.game
	switch k {
	case ebiten.KeyEscape, ebiten.KeyQ:
		g.closeRequested = true
	case ebiten.KeyC:
		g.ui.Debug.Clear()
	case ebiten.KeyS, ebiten.KeyF12:
		g.screenshotRequested = true
	case ebiten.KeyEqual, ebiten.KeyKPAdd:
		g.zoom.OnZoomEvent(is.cursor, g.cfg.Zoom.KeyStep)
	case ebiten.KeyMinus, ebiten.KeyKPSubtract:
		g.zoom.OnZoomEvent(is.cursor, -g.cfg.Zoom.KeyStep)
	}
}
