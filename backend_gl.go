//go:build !js && !ebiten

package main

import (
	"context"

	"wirecube/host"
	"wirecube/host/glwindow"
	"wirecube/scene"
)

// The GLFW copies inside go-gl/glfw and ebiten define the same C symbols,
// so a binary links exactly one window backend. Build with -tags ebiten
// for the Ebiten window.
const defaultBackend = "gl"

func init() {
	host.Register("gl", func(_ context.Context, sc *scene.Scene, opts host.Options) error {
		return glwindow.Run(sc, glwindow.Options{Scale: opts.Scale, VSync: opts.VSync})
	})
}
