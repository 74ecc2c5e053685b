//go:build !js && ebiten

package main

import (
	"context"

	"wirecube/host"
	"wirecube/host/ebitenwindow"
	"wirecube/scene"
)

const defaultBackend = "ebiten"

func init() {
	host.Register("ebiten", func(_ context.Context, sc *scene.Scene, opts host.Options) error {
		return ebitenwindow.Run(sc, ebitenwindow.Options{Scale: opts.Scale, HUD: opts.HUD})
	})
}
