//go:build !js

// Package glwindow hosts a scene in a GLFW window and draws its strokes as
// OpenGL line lists.
package glwindow

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"wirecube/internal/logger"
	"wirecube/scene"
)

const title = "wirecube (OpenGL)"

var (
	vertexShaderSource = `
		#version 410
		in vec2 vp;
		in vec3 vc;
		uniform mat4 projection;
		out vec3 colour;
		void main() {
			colour = vc;
			gl_Position = projection * vec4(vp, 0.0, 1.0);
		}
	` + "\x00"

	fragmentShaderSource = `
		#version 410
		in vec3 colour;
		out vec4 frag_colour;
		void main() {
			frag_colour = vec4(colour, 1.0);
		}
	` + "\x00"
)

func init() {
	// GLFW and GL calls must stay on the main thread.
	runtime.LockOSThread()
}

// Options configures the window.
type Options struct {
	// Scale sizes the window relative to the scene frame.
	Scale float64
	// VSync caps the frame rate at the display refresh rate.
	VSync bool
}

// Run opens a window and renders sc until the window is closed. It must be
// called from the main goroutine.
func Run(sc *scene.Scene, opts Options) error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("failed to initialize glfw: %w", err)
	}
	defer glfw.Terminate()

	frame := sc.Config().Frame
	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}

	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(int(float64(frame.Width)*scale), int(float64(frame.Height)*scale), title, nil, nil)
	if err != nil {
		panic(err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("failed to initialize gl: %w", err)
	}
	logger.L().Info("opengl ready", "version", gl.GoStr(gl.GetString(gl.VERSION)))

	if opts.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	program, err := newProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return err
	}
	gl.UseProgram(program)

	projection := mgl32.Ortho2D(0, float32(frame.Width), float32(frame.Height), 0)
	projectionUniform := gl.GetUniformLocation(program, gl.Str("projection\x00"))
	gl.UniformMatrix4fv(projectionUniform, 1, false, &projection[0])

	batch := newLineBatch(program, sc.Config())
	defer batch.release()

	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if action == glfw.Release {
			return
		}
		if key == glfw.KeyQ {
			w.SetShouldClose(true)
			return
		}
		k, ok := keyName(key)
		if !ok {
			return
		}
		// Only slider nudges auto-repeat.
		if action == glfw.Repeat && !isArrow(k) {
			return
		}
		sc.HandleKey(k)
	})

	lastFpsTime := glfw.GetTime()
	frameCount := 0

	for !window.ShouldClose() {
		// FPS Counter Update (every 1 second)
		currentTime := glfw.GetTime()
		frameCount++
		if currentTime-lastFpsTime >= 1.0 {
			state := "stopped"
			if sc.Running() {
				state = "running"
			}
			window.SetTitle(fmt.Sprintf("%s | FPS: %d | %s", title, frameCount, state))
			frameCount = 0
			lastFpsTime = currentTime
		}

		fbw, fbh := window.GetFramebufferSize()
		batch.resize(fbw, fbh)

		if err := sc.Frame(batch); err != nil {
			return err
		}
		batch.flush()

		window.SwapBuffers()
		glfw.PollEvents()
	}
	return nil
}

func keyName(key glfw.Key) (scene.Key, bool) {
	switch key {
	case glfw.KeyEnter, glfw.KeyKPEnter:
		return scene.KeyEnter, true
	case glfw.KeyEscape:
		return scene.KeyEscape, true
	case glfw.KeySpace:
		return scene.KeySpace, true
	case glfw.KeyR:
		return scene.KeyReset, true
	case glfw.KeyX:
		return "x", true
	case glfw.KeyY:
		return "y", true
	case glfw.KeyZ:
		return "z", true
	case glfw.KeyUp:
		return scene.KeyArrowUp, true
	case glfw.KeyDown:
		return scene.KeyArrowDown, true
	case glfw.KeyLeft:
		return scene.KeyArrowLeft, true
	case glfw.KeyRight:
		return scene.KeyArrowRight, true
	}
	if key >= glfw.Key1 && key <= glfw.Key8 {
		return scene.Key(rune('1' + key - glfw.Key1)), true
	}
	return "", false
}

func isArrow(k scene.Key) bool {
	switch k {
	case scene.KeyArrowUp, scene.KeyArrowDown, scene.KeyArrowLeft, scene.KeyArrowRight:
		return true
	}
	return false
}

func newProgram(vertexShaderSource, fragmentShaderSource string) (uint32, error) {
	vertexShader, err := compileShader(vertexShaderSource, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}

	fragmentShader, err := compileShader(fragmentShaderSource, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, err
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))

		return 0, fmt.Errorf("failed to link program: %v", log)
	}

	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)

	return program, nil
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)

	csources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))

		return 0, fmt.Errorf("failed to compile %v: %v", source, log)
	}

	return shader, nil
}
