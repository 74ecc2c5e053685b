package canvas

import (
	"bytes"
	"image"
	"image/png"
	"testing"
)

func TestWritePNG(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 40, 20))

	tests := []struct {
		name  string
		scale float64
		w, h  int
	}{
		{"unscaled", 0, 40, 20},
		{"identity", 1, 40, 20},
		{"half", 0.5, 20, 10},
		{"tiny", 0.001, 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := WritePNG(&buf, src, tt.scale); err != nil {
				t.Fatalf("WritePNG() error = %v", err)
			}
			img, err := png.Decode(&buf)
			if err != nil {
				t.Fatalf("png.Decode() error = %v", err)
			}
			if b := img.Bounds(); b.Dx() != tt.w || b.Dy() != tt.h {
				t.Errorf("size = %dx%d, want %dx%d", b.Dx(), b.Dy(), tt.w, tt.h)
			}
		})
	}
}
