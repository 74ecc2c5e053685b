//go:build !js

package glwindow

import (
	"image/color"

	"github.com/go-gl/gl/v4.1-core/gl"

	"wirecube/canvas"
	"wirecube/scene"
)

// floats per vertex: x, y, r, g, b
const stride = 5

// lineBatch is a canvas.Surface that collects stroked segments for a frame
// and submits them as one GL_LINES draw.
type lineBatch struct {
	frame canvas.Frame
	bg    [3]float32

	vao, vbo uint32
	verts    []float32
	path     canvas.Polyline

	fbw, fbh int
}

var _ canvas.Surface = (*lineBatch)(nil)

func newLineBatch(program uint32, cfg scene.Config) *lineBatch {
	b := &lineBatch{frame: cfg.Frame, bg: [3]float32{1, 1, 1}}
	if cfg.Background != nil {
		b.bg = rgb(cfg.Background)
	}

	gl.GenVertexArrays(1, &b.vao)
	gl.BindVertexArray(b.vao)

	gl.GenBuffers(1, &b.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)

	posAttrib := uint32(gl.GetAttribLocation(program, gl.Str("vp\x00")))
	gl.EnableVertexAttribArray(posAttrib)
	gl.VertexAttribPointer(posAttrib, 2, gl.FLOAT, false, stride*4, gl.PtrOffset(0))

	colAttrib := uint32(gl.GetAttribLocation(program, gl.Str("vc\x00")))
	gl.EnableVertexAttribArray(colAttrib)
	gl.VertexAttribPointer(colAttrib, 3, gl.FLOAT, false, stride*4, gl.PtrOffset(2*4))

	return b
}

func (b *lineBatch) resize(fbw, fbh int) {
	if fbw == b.fbw && fbh == b.fbh {
		return
	}
	b.fbw, b.fbh = fbw, fbh
	gl.Viewport(0, 0, int32(fbw), int32(fbh))
}

func (b *lineBatch) Clear(x, y, w, h float64) error {
	gl.ClearColor(b.bg[0], b.bg[1], b.bg[2], 1)
	full := x <= 0 && y <= 0 && x+w >= float64(b.frame.Width) && y+h >= float64(b.frame.Height)
	if full || b.fbw == 0 {
		gl.Clear(gl.COLOR_BUFFER_BIT)
		return nil
	}
	// Scissor works in framebuffer pixels with a bottom-left origin.
	sx := float64(b.fbw) / float64(b.frame.Width)
	sy := float64(b.fbh) / float64(b.frame.Height)
	gl.Enable(gl.SCISSOR_TEST)
	gl.Scissor(int32(x*sx), int32(float64(b.fbh)-(y+h)*sy), int32(w*sx), int32(h*sy))
	gl.Clear(gl.COLOR_BUFFER_BIT)
	gl.Disable(gl.SCISSOR_TEST)
	return nil
}

func (b *lineBatch) BeginPath()          { b.path.Begin() }
func (b *lineBatch) MoveTo(x, y float64) { b.path.MoveTo(x, y) }
func (b *lineBatch) LineTo(x, y float64) { b.path.LineTo(x, y) }
func (b *lineBatch) ClosePath()          { b.path.Close() }

func (b *lineBatch) Stroke(c color.Color) error {
	col := rgb(c)
	b.path.Segments(func(p, q canvas.Vertex) {
		b.verts = append(b.verts,
			float32(p.X), float32(p.Y), col[0], col[1], col[2],
			float32(q.X), float32(q.Y), col[0], col[1], col[2],
		)
	})
	b.path.Begin()
	return nil
}

// flush draws the segments collected since the last flush.
func (b *lineBatch) flush() {
	if len(b.verts) == 0 {
		return
	}
	gl.BindVertexArray(b.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(b.verts)*4, gl.Ptr(b.verts), gl.DYNAMIC_DRAW)
	gl.DrawArrays(gl.LINES, 0, int32(len(b.verts)/stride))
	b.verts = b.verts[:0]
}

func (b *lineBatch) release() {
	gl.DeleteBuffers(1, &b.vbo)
	gl.DeleteVertexArrays(1, &b.vao)
}

func rgb(c color.Color) [3]float32 {
	r, g, bl, _ := c.RGBA()
	return [3]float32{float32(r) / 0xFFFF, float32(g) / 0xFFFF, float32(bl) / 0xFFFF}
}
