package host

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"strconv"
	"strings"
	"time"

	"wirecube/canvas"
	"wirecube/internal/logger"
	"wirecube/scene"
)

// HeadlessConfig controls the no-window host.
type HeadlessConfig struct {
	Hz     int
	Frames uint64 // stop after N frames (0 = until ctx is done)
	// Out is the PNG destination. A path containing a printf verb is
	// formatted with the frame number and written every frame; otherwise only
	// the last frame is written. Empty disables output.
	Out   string
	Scale float64
	// Keys are pressed before the frame with the given (zero-based) number.
	Keys map[uint64]scene.Key
	// Raster selects the aliased stdlib rasterizer instead of gg.
	Raster bool
}

type imageSurface interface {
	canvas.Surface
	Image() image.Image
}

type rasterSurface struct{ *canvas.Raster }

func (r rasterSurface) Image() image.Image { return r.Raster.Image() }

// RunHeadless renders frames on a ticker until the frame budget is spent or
// ctx is done.
func RunHeadless(ctx context.Context, sc *scene.Scene, cfg HeadlessConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}

	f := sc.Config().Frame
	var surf imageSurface
	if cfg.Raster {
		r := canvas.NewRaster(f.Width, f.Height)
		if bg := sc.Config().Background; bg != nil {
			r.Background = color.RGBAModel.Convert(bg).(color.RGBA)
			_ = r.Clear(0, 0, float64(f.Width), float64(f.Height))
		}
		surf = rasterSurface{r}
	} else {
		p := canvas.NewPainter(f.Width, f.Height)
		defer p.Close()
		if bg := sc.Config().Background; bg != nil {
			p.Background = bg
		}
		surf = p
	}
	perFrame := strings.Contains(cfg.Out, "%")

	t := time.NewTicker(d)
	defer t.Stop()

	logger.L().Info("headless host started", "hz", cfg.Hz, "frames", cfg.Frames, "out", cfg.Out)
	var frame uint64
	for {
		select {
		case <-ctx.Done():
			return writeLast(surf, cfg, perFrame, ctx.Err())
		case <-t.C:
			if k, ok := cfg.Keys[frame]; ok {
				sc.HandleKey(k)
			}
			if err := sc.Frame(surf); err != nil {
				return fmt.Errorf("frame %d: %w", frame, err)
			}
			if perFrame {
				if err := canvas.SavePNG(fmt.Sprintf(cfg.Out, frame), surf.Image(), cfg.Scale); err != nil {
					return err
				}
			}
			frame++
			if cfg.Frames > 0 && frame >= cfg.Frames {
				return writeLast(surf, cfg, perFrame, nil)
			}
		}
	}
}

func writeLast(surf imageSurface, cfg HeadlessConfig, perFrame bool, err error) error {
	if cfg.Out == "" || perFrame {
		return err
	}
	if werr := canvas.SavePNG(cfg.Out, surf.Image(), cfg.Scale); werr != nil {
		return werr
	}
	logger.L().Info("wrote frame", "path", cfg.Out)
	return err
}

// ParseKeyScript parses "frame:key" pairs separated by commas, for example
// "0:Enter,120:Escape".
func ParseKeyScript(s string) (map[uint64]scene.Key, error) {
	keys := make(map[uint64]scene.Key)
	if strings.TrimSpace(s) == "" {
		return keys, nil
	}
	for _, item := range strings.Split(s, ",") {
		n, k, ok := strings.Cut(strings.TrimSpace(item), ":")
		if !ok || k == "" {
			return nil, fmt.Errorf("key script %q: want frame:key", item)
		}
		frame, err := strconv.ParseUint(n, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("key script %q: %w", item, err)
		}
		if k == "Space" {
			k = string(scene.KeySpace)
		}
		keys[frame] = scene.Key(k)
	}
	return keys, nil
}
