//go:build js && wasm

package main

import (
	"fmt"
	"log/slog"
	"os"

	"wirecube/host/browser"
	"wirecube/internal/logger"
)

func main() {
	logger.Set(slog.New(slog.NewTextHandler(os.Stdout, nil)))

	s := defaultSetup()
	sc, sliders, err := s.build()
	if err != nil {
		fmt.Println(err)
		return
	}
	if err := browser.Run(sc, sliders, browser.Options{CanvasID: "screen", DisplayScale: 0.5}); err != nil {
		fmt.Println(err)
	}
}
