package host

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"wirecube/scene"
)

// ErrUnknownBackend is returned by Lookup for a name nothing registered.
var ErrUnknownBackend = errors.New("unknown backend")

// Options carries the settings every backend may read.
type Options struct {
	// Scale sizes the window (or PNG output) relative to the frame.
	Scale    float64
	VSync    bool
	HUD      bool
	Headless HeadlessConfig
}

// Backend runs a scene until its window closes or ctx is done.
type Backend func(ctx context.Context, sc *scene.Scene, opts Options) error

var backends = map[string]Backend{}

// Register makes a backend selectable by name. Window backends register
// from build-tagged files in the command, since their C libraries cannot
// share one binary. Registering a name twice panics.
func Register(name string, b Backend) {
	if _, dup := backends[name]; dup {
		panic(fmt.Sprintf("host: backend %q registered twice", name))
	}
	backends[name] = b
}

// Lookup returns the backend registered under name.
func Lookup(name string) (Backend, error) {
	b, ok := backends[name]
	if !ok {
		return nil, fmt.Errorf("%w %q (available: %v)", ErrUnknownBackend, name, Backends())
	}
	return b, nil
}

// Backends lists the registered names in sorted order.
func Backends() []string {
	names := make([]string, 0, len(backends))
	for n := range backends {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func init() {
	Register("headless", func(ctx context.Context, sc *scene.Scene, opts Options) error {
		cfg := opts.Headless
		cfg.Scale = opts.Scale
		return RunHeadless(ctx, sc, cfg)
	})
}
