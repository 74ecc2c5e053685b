package main

import (
	"fmt"

	"wirecube/geom"
	"wirecube/scene"
)

// setup describes the initial scene.
type setup struct {
	scene scene.Config
	shape string
	size  float64
	run   bool
}

func defaultSetup() setup {
	return setup{scene: scene.DefaultConfig(), shape: "cube", size: 250}
}

// build creates the scene and, when it holds a cube, a slider bank bound to
// that cube and attached to the scene's key handling.
func (s setup) build() (*scene.Scene, *scene.Sliders, error) {
	sc, err := scene.New(s.scene)
	if err != nil {
		return nil, nil, err
	}

	var cube *geom.Cube
	switch s.shape {
	case "cube":
		cube = geom.NewCubeSized(s.size)
		sc.Add(cube)
	case "triangle":
		sc.Add(geom.DefaultTriangle())
	case "both":
		cube = geom.NewCubeSized(s.size)
		sc.Add(cube, geom.DefaultTriangle())
	default:
		return nil, nil, fmt.Errorf("unknown shape %q", s.shape)
	}

	var sliders *scene.Sliders
	if cube != nil {
		sliders = scene.NewSliders(cube, s.scene.Frame)
		sc.AttachSliders(sliders)
	}
	if s.run {
		sc.Start()
	}
	return sc, sliders, nil
}
