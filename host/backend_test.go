package host

import (
	"context"
	"errors"
	"testing"

	"wirecube/scene"
)

func TestLookup(t *testing.T) {
	if _, err := Lookup("headless"); err != nil {
		t.Fatalf("Lookup(headless) error = %v", err)
	}
	if _, err := Lookup("vulkan"); !errors.Is(err, ErrUnknownBackend) {
		t.Errorf("Lookup(vulkan) error = %v, want ErrUnknownBackend", err)
	}
}

func TestRegister(t *testing.T) {
	called := false
	Register("test-backend", func(context.Context, *scene.Scene, Options) error {
		called = true
		return nil
	})
	defer delete(backends, "test-backend")

	b, err := Lookup("test-backend")
	if err != nil {
		t.Fatalf("Lookup() error = %v", err)
	}
	if err := b(context.Background(), nil, Options{}); err != nil || !called {
		t.Errorf("backend call = %v, called %v; want nil, true", err, called)
	}

	found := false
	for _, n := range Backends() {
		if n == "test-backend" {
			found = true
		}
	}
	if !found {
		t.Errorf("Backends() = %v, missing test-backend", Backends())
	}

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register did not panic")
		}
	}()
	Register("test-backend", nil)
}

func TestHeadlessBackend(t *testing.T) {
	sc, _ := smallScene(t)
	b, err := Lookup("headless")
	if err != nil {
		t.Fatal(err)
	}
	opts := Options{Headless: HeadlessConfig{Hz: 1000, Frames: 2}}
	if err := b(context.Background(), sc, opts); err != nil {
		t.Fatalf("headless backend error = %v", err)
	}
	if sc.Frames() != 2 {
		t.Errorf("Frames() = %d, want 2", sc.Frames())
	}
}
