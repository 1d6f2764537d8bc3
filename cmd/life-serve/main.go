package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"mad-life/internal/config"
	"mad-life/internal/logging"
	"mad-life/internal/stream"
)

func main() {
	play := flag.Bool("play", false, "start playing immediately")
	flags := config.Bind(flag.CommandLine)
	flag.Parse()

	run, err := flags.Resolve(os.Getenv)
	if err != nil {
		logging.New(os.Stderr, "info", "life-serve").Fatal("resolve settings", "err", err)
	}
	logger := logging.New(os.Stderr, run.LogLevel, "life-serve")

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
	if *play {
		session.Toggle()
	}

	hub := stream.NewHub(logger)
	defer hub.Close()
	srv := stream.NewServer(session, hub, logger)
	httpServer := &http.Server{
		Addr:              run.Addr,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		logger.Info("listening", "addr", run.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	eg.Go(func() error {
		return srv.Run(ctx, 5*time.Millisecond)
	})
	eg.Go(func() error {
		<-ctx.Done()
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})
	if err := eg.Wait(); err != nil {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}
