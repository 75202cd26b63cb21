package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tdewolff/argp"

	"zoom-grid/engine"
	"zoom-grid/input"
)

// replayTPS is the frame rate replays assume for time-based UI state.
const replayTPS = 60

// Replay feeds a scripted input sequence through the frame loop and renders
// the final frame with the software rasterizer.
type Replay struct {
	Config string `short:"c" default:"zoomgrid.yaml" desc:"Config file"`
	Output string `short:"o" default:"replay.png" desc:"Output PNG"`
	Script string `index:"0" desc:"Starlark replay script"`
}

func (cmd *Replay) Run() error {
	if cmd.Script == "" {
		return argp.ShowUsage
	}
	cfg, err := LoadConfig(cmd.Config)
	if err != nil {
		return err
	}
	src, err := os.ReadFile(cmd.Script)
	if err != nil {
		return err
	}
	frames, err := engine.Run(cmd.Script, string(src))
	if err != nil {
		return err
	}

	g := NewGame(cfg, input.EbitenSource{})
	n, err := g.Replay(frames)
	if err != nil {
		return err
	}
	if err := g.saveSnapshot(cmd.Output); err != nil {
		return fmt.Errorf("replay: %w", err)
	}

	tr := g.zoom.Transform()
	log.Printf("[replay] %d of %d frames, origin %v scale %.3f, wrote %s", n, len(frames), tr.Origin, tr.Scale, cmd.Output)
	return nil
}

// Replay steps through frames until they run out or a close is requested and
// returns how many frames ran. Screenshot keys write off-screen snapshots.
func (g *Game) Replay(frames []engine.Frame) (int, error) {
	for i, events := range frames {
		err := g.Step(events, 1.0/replayTPS)
		if g.screenshotRequested {
			g.screenshotRequested = false
			if err := g.saveSnapshot(g.nextScreenshotPath()); err != nil {
				log.Println("screenshot error:", err)
			}
		}
		if errors.Is(err, ebiten.Termination) {
			return i + 1, nil
		} else if err != nil {
			return i + 1, err
		}
	}
	return len(frames), nil
}

// InitConfig writes the default configuration.
type InitConfig struct {
	Output string `short:"o" default:"zoomgrid.yaml" desc:"Config file to write"`
}

func (cmd *InitConfig) Run() error {
	if _, err := os.Stat(cmd.Output); err == nil {
		return fmt.Errorf("%s already exists", cmd.Output)
	}
	return DefaultConfig().Save(cmd.Output)
}
