//go:build ebiten

package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/errors"

	"sonolife/internal/app"
	"sonolife/internal/audio"
	"sonolife/internal/sched"
	"sonolife/internal/ui"
)

func main() {
	var flags app.Flags
	flags.Bind(flag.CommandLine)
	flag.Parse()

	level := slog.LevelInfo
	if flags.Debug {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	cfg, err := flags.Resolve()
	if err != nil {
		log.Error("configuration", "err", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	out := audio.New(log)
	frames := &app.FrameBuffer{}
	s, err := sched.New(sched.Options{Config: cfg, Renderer: frames, Audio: out, Logger: log})
	if err != nil {
		log.Error("creating scheduler", "err", err)
		os.Exit(1)
	}
	s.Refresh()

	game := app.New(ctx, s, frames, cfg, ui.NewMessages(3*time.Second, 4), log)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("sonolife")
	ebiten.SetTPS(flags.TPS)
	ebiten.SetWindowSize(w, h)

	log.Info("starting", "width", cfg.Width, "height", cfg.Height, "scale", cfg.Scale, "seed", cfg.Seed)
	err = ebiten.RunGame(game)
	s.Close()
	out.Wait()
	if err != nil && !errors.Is(err, ebiten.Termination) {
		log.Error("run", "err", err)
		os.Exit(1)
	}
}
