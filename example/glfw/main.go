// Example runs the menu demo in a GLFW window with the OpenGL renderer.
//
//	go run ./example/glfw/
//	go run ./example/glfw/ -atlas assets/BasicFont.png -verbose
//
// The atlas must be a 16x8 grid of ASCII glyphs; without -atlas the
// built-in 7x13 bitmap font is used.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/geomagika/gui"
	"github.com/geomagika/gui/backend/atlas"
	"github.com/geomagika/gui/backend/opengl"
	"github.com/geomagika/gui/example/menu"
)

const (
	windowWidth  = 800
	windowHeight = 600
	windowTitle  = "Geomagika"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	atlasPath := flag.String("atlas", "", "path to a 16x8 ASCII atlas image")
	verbose := flag.Bool("verbose", false, "log interaction transitions")
	flag.Parse()

	gui.SetVerbose(*verbose)

	if err := run(*atlasPath); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(atlasPath string) error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	window, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.SetSizeLimits(600, 600, glfw.DontCare, glfw.DontCare)
	window.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	var opts []opengl.RendererOption
	if atlasPath != "" {
		img, err := atlas.Load(atlasPath)
		if err != nil {
			return err
		}
		opts = append(opts, opengl.WithAtlas(img))
	}

	fbw, fbh := window.GetFramebufferSize()
	renderer, err := opengl.NewRenderer(fbw, fbh, opts...)
	if err != nil {
		return fmt.Errorf("gui renderer: %w", err)
	}
	defer renderer.Delete()

	input := opengl.NewGLFWInputAdapter(window)
	ui := gui.New(renderer)

	m := menu.New()
	windowed := [4]int{}
	m.OnFullscreen = func(fullscreen bool) {
		setFullscreen(window, fullscreen, &windowed)
	}

	window.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		ui.Resize(width, height)
	})

	for !window.ShouldClose() {
		glfw.PollEvents()

		w, h := window.GetFramebufferSize()
		gl.Viewport(0, 0, int32(w), int32(h))
		gl.ClearColor(0, 0, 0, 1)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		ctx := ui.Begin(input.Pointer())
		page := m.Frame(ctx)
		ctx.AddGlyph(menu.PointerMarker(ctx))

		if err := ui.End(); err != nil {
			return fmt.Errorf("gui render: %w", err)
		}
		input.Refresh()

		if page == menu.PageExit {
			window.SetShouldClose(true)
		}
		window.SwapBuffers()
	}

	return nil
}

// setFullscreen switches between a borderless fullscreen window on the
// primary monitor and the windowed placement saved in windowed.
func setFullscreen(window *glfw.Window, fullscreen bool, windowed *[4]int) {
	if !fullscreen {
		window.SetMonitor(nil, windowed[0], windowed[1], windowed[2], windowed[3], glfw.DontCare)
		return
	}

	monitor := glfw.GetPrimaryMonitor()
	if monitor == nil {
		gui.Logger().Warn("no primary monitor, staying windowed")
		return
	}
	windowed[0], windowed[1] = window.GetPos()
	windowed[2], windowed[3] = window.GetSize()

	mode := monitor.GetVideoMode()
	window.SetMonitor(monitor, 0, 0, mode.Width, mode.Height, mode.RefreshRate)
}
