package canvas

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"math"
	"os"

	xdraw "golang.org/x/image/draw"
)

// WritePNG encodes img as PNG. A scale other than 0 or 1 resamples the image
// first, e.g. 0.5 to present a 1920x1080 frame at 960x540.
func WritePNG(w io.Writer, img image.Image, scale float64) error {
	if scale > 0 && scale != 1 {
		img = Rescale(img, scale)
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// SavePNG writes img to path, see WritePNG.
func SavePNG(path string, img image.Image, scale float64) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WritePNG(f, img, scale); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Rescale resamples img by scale with a Catmull-Rom filter. Each output
// dimension is at least one pixel.
func Rescale(img image.Image, scale float64) *image.RGBA {
	b := img.Bounds()
	w := max(1, int(math.Round(float64(b.Dx())*scale)))
	h := max(1, int(math.Round(float64(b.Dy())*scale)))
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
	return dst
}
