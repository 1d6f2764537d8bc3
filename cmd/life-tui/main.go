package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"mad-life/internal/config"
	"mad-life/internal/logging"
	"mad-life/internal/render"
	"mad-life/internal/tui"
)

func main() {
	logFile := flag.String("log-file", "", "write logs to this file (the terminal is taken by the board)")
	flags := config.Bind(flag.CommandLine)
	flag.Parse()

	logOut := os.Stderr
	if *logFile != "" {
		f, err := os.Create(*logFile)
		if err != nil {
			logging.New(os.Stderr, "info", "life-tui").Fatal("open log file", "err", err)
		}
		defer f.Close()
		logOut = f
	}

	run, err := flags.Resolve(os.Getenv)
	if err != nil {
		logging.New(logOut, "info", "life-tui").Fatal("resolve settings", "err", err)
	}
	logger := logging.New(logOut, run.LogLevel, "life-tui")

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

	screen, err := tcell.NewScreen()
	if err != nil {
		logger.Fatal("open terminal", "err", err)
	}
	if err := screen.Init(); err != nil {
		logger.Fatal("init terminal", "err", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = tui.New(screen, session, render.DefaultStyle, logger).Run(ctx)
	stop()
	screen.Fini()
	if err != nil {
		logger.Fatal("run", "err", err)
	}
}
