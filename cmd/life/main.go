//go:build ebiten

package main

import (
	"errors"
	"flag"
	"os"

	"mad-life/internal/app"
	"mad-life/internal/config"
	"mad-life/internal/logging"
	"mad-life/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	panel := flag.Int("panel", 0, "width of the parameter panel in pixels (0 hides it)")
	flags := config.Bind(flag.CommandLine)
	flag.Parse()

	run, err := flags.Resolve(os.Getenv)
	if err != nil {
		logging.New(os.Stderr, "info", "life").Fatal("resolve settings", "err", err)
	}
	logger := logging.New(os.Stderr, run.LogLevel, "life")

	if run.ConfigPath == "" && flag.NArg() > 0 {
		run.ConfigPath = flag.Arg(0)
	}
	game, err := config.Prepare(run, os.Stdin, os.Stdout)
	if err != nil {
		logger.Fatal("load configuration", "err", err)
	}
	session, err := config.Start(run, game, logger)
	if err != nil {
		logger.Fatal("start session", "err", err)
	}

	g := app.New(session, render.DefaultStyle, *panel)
	w, h := g.WindowSize()
	ebiten.SetWindowTitle("Game of Life")
	ebiten.SetWindowSize(w, h)

	logger.Info("starting game")
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Fatal("run", "err", err)
	}
}
