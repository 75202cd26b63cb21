package main

import (
	"fmt"
	"image/png"
	"log"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"golang.org/x/image/font"

	"zoom-grid/canvas"
	"zoom-grid/input"
	"zoom-grid/ui"
)

// Game runs the frame loop: poll input, apply it to the zoom transform, then
// draw with the committed transform.
type Game struct {
	cfg      Config
	zoom     *canvas.ZoomController
	renderer *canvas.Renderer
	face     font.Face

	// Sub-systems
	poller *input.Poller
	input  *InputSystem
	ui     *ui.System

	screenWidth  int
	screenHeight int

	closeRequested      bool
	screenshotRequested bool
	screenshots         int
}

func NewGame(cfg Config, src input.Source) *Game {
	g := &Game{
		cfg:          cfg,
		zoom:         canvas.NewZoomController(cfg.ZoomLimits()),
		renderer:     canvas.NewRenderer(cfg.CanvasGrid(), canvas.DefaultStyle),
		face:         LoadUIFont(cfg.Font),
		poller:       input.NewPoller(src),
		screenWidth:  cfg.Window.Width,
		screenHeight: cfg.Window.Height,
	}
	g.zoom.LogEvents = cfg.LogEvents

	g.input = NewInputSystem(g)
	g.ui = ui.NewSystem(g.face, DrawTextLines, g.zoomAtCenter(cfg.Zoom.KeyStep), g.zoomAtCenter(-cfg.Zoom.KeyStep))
	g.ui.Layout(g.screenWidth, g.screenHeight)
	return g
}

func (g *Game) zoomAtCenter(delta float64) func() {
	return func() {
		g.zoom.Apply(canvas.ZoomEvent{Cursor: g.viewport().Center(), Delta: delta})
	}
}

func (g *Game) viewport() canvas.Viewport {
	return canvas.Viewport{Width: g.screenWidth, Height: g.screenHeight}
}

func (g *Game) Update() error {
	return g.Step(g.poller.Poll(), 1/float64(ebiten.TPS()))
}

// Step applies one frame of input. It returns ebiten.Termination once a close
// was requested.
func (g *Game) Step(events []input.Event, dt float64) error {
	g.input.Handle(events)

	_, scale := g.zoom.CurrentTransform()
	g.ui.Indicator.Update(scale, dt)
	g.ui.Debug.Report(g.zoom.Violations())

	if g.closeRequested {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	tr := g.zoom.Transform()
	cursor := g.input.Cursor()
	g.renderer.Draw(screen, tr, g.viewport(), cursor)

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf(
		"Origin: %v Scale: %.2f\n"+
			"Cursor: %v World: %v\n"+
			"Zoom: wheel or +/-, Screenshot: S, Clear error: C, Quit: Esc/Q\n"+
			"TPS: %.0f",
		tr.Origin, tr.Scale,
		cursor, tr.ScreenToWorld(cursor),
		ebiten.ActualTPS(),
	), 10, 10)

	g.ui.Draw(screen)

	if g.screenshotRequested {
		g.screenshotRequested = false
		g.saveScreenshot(screen)
	}
}

func (g *Game) nextScreenshotPath() string {
	g.screenshots++
	return filepath.Join(g.cfg.ScreenshotDir, fmt.Sprintf("screenshot-%03d.png", g.screenshots))
}

func (g *Game) saveScreenshot(screen *ebiten.Image) {
	path := g.nextScreenshotPath()
	f, err := os.Create(path)
	if err != nil {
		log.Println("screenshot error:", err)
		return
	}
	defer f.Close()
	if err := png.Encode(f, screen); err != nil {
		log.Println("screenshot error:", err)
		return
	}
	log.Println("Screenshot saved as", path)
}

// saveSnapshot renders the current frame off-screen, for runs without a window.
func (g *Game) saveSnapshot(path string) error {
	return g.renderer.SavePNG(path, g.zoom.Transform(), g.viewport(), g.input.Cursor())
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.screenWidth = outsideWidth
	g.screenHeight = outsideHeight
	g.ui.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}
