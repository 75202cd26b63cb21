package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/profile"
	"github.com/tdewolff/argp"

	"zoom-grid/input"
)

// View opens the interactive window.
type View struct {
	Config     string `short:"c" default:"zoomgrid.yaml" desc:"Config file"`
	CPUProfile bool   `desc:"Write a CPU profile to the working directory"`
}

func (cmd *View) Run() error {
	if cmd.CPUProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	cfg, err := LoadConfig(cmd.Config)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	return ebiten.RunGame(NewGame(cfg, input.EbitenSource{}))
}

func main() {
	root := argp.NewCmd(&View{}, "Grid viewer with cursor-anchored zoom")
	root.AddCmd(&Replay{}, "replay", "Replay a Starlark input script without a window and render the final frame")
	root.AddCmd(&InitConfig{}, "init", "Write the default config file")
	root.Parse()
	root.PrintHelp()
}
