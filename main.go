//go:build !js

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/gogpu/gg"

	"wirecube/host"
	"wirecube/internal/logger"
)

type options struct {
	setup
	backend string
	verbose bool
	keys    string
	host    host.Options
}

func main() {
	opts := options{setup: defaultSetup()}
	cfg := &opts.scene
	flag.StringVar(&opts.backend, "backend", defaultBackend, "Host: "+defaultBackend+" or headless.")
	flag.StringVar(&opts.shape, "shape", opts.shape, "Drawables: cube, triangle or both.")
	flag.Float64Var(&opts.size, "size", opts.size, "Half edge length of the cube.")
	flag.IntVar(&cfg.Frame.Width, "width", cfg.Frame.Width, "Frame width in pixels.")
	flag.IntVar(&cfg.Frame.Height, "height", cfg.Frame.Height, "Frame height in pixels.")
	flag.Float64Var(&cfg.Distance, "distance", cfg.Distance, "Projection distance.")
	flag.Float64Var(&cfg.SpinX, "spin-x", cfg.SpinX, "Rotation around X per frame, radians.")
	flag.Float64Var(&cfg.SpinY, "spin-y", cfg.SpinY, "Rotation around Y per frame, radians.")
	flag.BoolVar(&opts.run, "run", false, "Start with the rotation loop running.")
	flag.Float64Var(&opts.host.Scale, "scale", 0.5, "Window size (or PNG size) relative to the frame.")
	flag.BoolVar(&opts.host.HUD, "hud", true, "Show loop state in the ebiten window.")
	flag.BoolVar(&opts.host.VSync, "vsync", true, "Sync the gl window to the display.")
	flag.IntVar(&opts.host.Headless.Hz, "hz", 60, "Frame rate in headless mode.")
	flag.Uint64Var(&opts.host.Headless.Frames, "frames", 0, "Stop after N frames in headless mode (0 = run until interrupted).")
	flag.StringVar(&opts.host.Headless.Out, "out", "", "PNG output in headless mode; a %d verb writes every frame.")
	flag.BoolVar(&opts.host.Headless.Raster, "raster", false, "Use the aliased rasterizer in headless mode.")
	flag.StringVar(&opts.keys, "keys", "", "Scripted key presses in headless mode, e.g. 0:Enter,300:Escape.")
	flag.BoolVar(&opts.verbose, "v", false, "Debug logging.")
	flag.Parse()

	level := slog.LevelInfo
	if opts.verbose {
		level = slog.LevelDebug
	}
	l := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	logger.Set(l)
	gg.SetLogger(l)

	if err := run(opts); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(opts options) error {
	b, err := host.Lookup(opts.backend)
	if err != nil {
		return err
	}
	sc, _, err := opts.build()
	if err != nil {
		return err
	}
	if opts.host.Headless.Keys, err = host.ParseKeyScript(opts.keys); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := b(ctx, sc, opts.host); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
