// Command gen renders every menu page with the OpenGL renderer, captures
// framebuffer pixels, and saves JPEG screenshots to doc/imgs/.
//
// Usage:
//
//	go run ./doc/gen/
//	go run ./doc/gen/ -atlas assets/BasicFont.png
package main

import (
	"flag"
	"fmt"
	"image"
	"image/jpeg"
	"os"
	"path/filepath"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/geomagika/gui"
	"github.com/geomagika/gui/backend/atlas"
	"github.com/geomagika/gui/backend/opengl"
	"github.com/geomagika/gui/example/menu"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	atlasPath := flag.String("atlas", "", "path to a 16x8 ASCII atlas image")
	flag.Parse()

	if err := run(*atlasPath); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// screenshot defines a single page screenshot to capture.
type screenshot struct {
	name    string    // filename without extension
	width   int       // viewport width
	height  int       // viewport height
	page    menu.Page // page to draw
	pointer *gui.Vec2 // pointer position in NDC, nil keeps it off-screen
	frames  int       // frames to render (0 = default 2)
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
	glfw.WindowHint(glfw.Visible, glfw.False)

	window, err := glfw.CreateWindow(800, 600, "screenshot-gen", nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()

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

	renderer, err := opengl.NewRenderer(800, 600, opts...)
	if err != nil {
		return fmt.Errorf("gui renderer: %w", err)
	}
	defer renderer.Delete()

	outDir := filepath.Join("doc", "imgs")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	shots := buildScreenshots()

	for _, s := range shots {
		if err := capture(renderer, s, outDir); err != nil {
			return fmt.Errorf("capture %s: %w", s.name, err)
		}
		fmt.Printf("  %s.jpg (%dx%d)\n", s.name, s.width, s.height)
	}

	fmt.Printf("\nGenerated %d screenshots in %s/\n", len(shots), outDir)
	return nil
}

func capture(renderer *opengl.Renderer, s screenshot, outDir string) error {
	// Only update the renderer; the hidden window stays at 800x600, which is
	// at least as large as every screenshot.
	renderer.Resize(s.width, s.height)

	// Fresh GUI and menu per screenshot to avoid state leaking between captures.
	ui := gui.New(renderer)
	m := menu.New()
	m.Page = s.page

	var pointer gui.PointerState
	pointer.SetPosition(gui.Vec2{X: 2, Y: 2})
	if s.pointer != nil {
		pointer.SetPosition(*s.pointer)
	}

	frames := 2
	if s.frames > 0 {
		frames = s.frames
	}

	for i := 0; i < frames; i++ {
		gl.Viewport(0, 0, int32(s.width), int32(s.height))
		gl.ClearColor(0, 0, 0, 1)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		ctx := ui.Begin(pointer)
		m.Frame(ctx)
		if s.pointer != nil {
			ctx.AddGlyph(menu.PointerMarker(ctx))
		}
		if err := ui.End(); err != nil {
			return err
		}
		pointer.Refresh()
	}

	// Read pixels
	pixels := make([]byte, s.width*s.height*4)
	gl.ReadPixels(0, 0, int32(s.width), int32(s.height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))

	// Flip vertically (OpenGL origin is bottom-left)
	rowLen := s.width * 4
	tmp := make([]byte, rowLen)
	for y := 0; y < s.height/2; y++ {
		top := y * rowLen
		bot := (s.height - 1 - y) * rowLen
		copy(tmp, pixels[top:top+rowLen])
		copy(pixels[top:top+rowLen], pixels[bot:bot+rowLen])
		copy(pixels[bot:bot+rowLen], tmp)
	}

	img := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	copy(img.Pix, pixels)

	path := filepath.Join(outDir, s.name+".jpg")
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return jpeg.Encode(f, img, &jpeg.Options{Quality: 90})
}

// buildScreenshots returns the list of all page screenshots to generate.
func buildScreenshots() []screenshot {
	// Over "New Game" with the built-in 7x13 atlas at 800x600.
	overNewGame := gui.Vec2{X: -0.2, Y: 0.03}

	return []screenshot{
		{name: "main_menu", width: 800, height: 600, page: menu.PageMainMenu},
		{name: "main_menu_hover", width: 800, height: 600, page: menu.PageMainMenu, pointer: &overNewGame},
		{name: "settings", width: 800, height: 600, page: menu.PageSettings},
		{name: "editor", width: 800, height: 600, page: menu.PageEditor},
		{name: "game", width: 800, height: 600, page: menu.PageGame},
		{name: "main_menu_small", width: 600, height: 600, page: menu.PageMainMenu, frames: 3},
	}
}
