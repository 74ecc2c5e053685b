// Package host runs a scene without a window: a ticker schedules frames, a
// key script stands in for the keyboard and frames are written as PNG.
//
// Windowed hosts live in sub-packages so this package stays free of cgo:
//
//	host/glwindow      GLFW window, OpenGL 4.1 core line rendering
//	host/ebitenwindow  Ebiten window
//	host/browser       HTML canvas via syscall/js (GOOS=js GOARCH=wasm)
//
// The command registers at most one window backend next to "headless";
// see Register and Lookup.
//
// Every host drives the scene from a single goroutine.
package host
