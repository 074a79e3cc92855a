// Package opengl provides an OpenGL 4.1 backend for the GUI package.
package opengl

import (
	"fmt"
	"image"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/geomagika/gui"
	"github.com/geomagika/gui/backend/atlas"
)

// DefaultMaxGlyphs is the glyph buffer capacity per frame.
const DefaultMaxGlyphs = 1024

// Renderer draws gui glyphs as instanced quads sampled from a 16x8 ASCII atlas.
type Renderer struct {
	shader   uint32
	vao, vbo uint32
	atlasTex uint32
	atlasLoc int32

	atlasW, atlasH int
	width, height  int

	maxGlyphs  int
	overflowed bool
}

// RendererOption configures a Renderer.
type RendererOption func(*rendererConfig)

type rendererConfig struct {
	atlas     image.Image
	maxGlyphs int
}

// WithAtlas uses img instead of the built-in atlas. img must use the 16x8 grid.
func WithAtlas(img image.Image) RendererOption {
	return func(c *rendererConfig) { c.atlas = img }
}

// WithMaxGlyphs sets the glyph buffer capacity. Glyphs beyond it are dropped.
func WithMaxGlyphs(n int) RendererOption {
	return func(c *rendererConfig) {
		if n > 0 {
			c.maxGlyphs = n
		}
	}
}

// Vertex shader source.
// Each instance is one glyph; the six vertices of its quad come from gl_VertexID.
const vertexShaderSource = `
#version 410 core
layout (location = 0) in vec3 aPos;
layout (location = 1) in uint aCodepoint;
layout (location = 2) in vec2 aScale;
layout (location = 3) in vec4 aColor;

out vec2 TexCoord;
out vec4 Color;

const vec2 corners[6] = vec2[6](
    vec2(0.0, 0.0), vec2(1.0, 0.0), vec2(1.0, 1.0),
    vec2(0.0, 0.0), vec2(1.0, 1.0), vec2(0.0, 1.0)
);

void main() {
    vec2 corner = corners[gl_VertexID];
    // Glyphs hang down from their top-left corner.
    vec2 pos = aPos.xy + vec2(corner.x * aScale.x, -corner.y * aScale.y);
    gl_Position = vec4(pos, aPos.z, 1.0);

    vec2 cell = vec2(float(aCodepoint % 16u), float(aCodepoint / 16u));
    TexCoord = (cell + corner) / vec2(16.0, 8.0);
    Color = aColor;
}
` + "\x00"

// Fragment shader source.
// Atlas texels are tinted by the glyph color.
const fragmentShaderSource = `
#version 410 core
in vec2 TexCoord;
in vec4 Color;

out vec4 FragColor;

uniform sampler2D atlasTexture;

void main() {
    FragColor = texture(atlasTexture, TexCoord) * Color;
}
` + "\x00"

// NewRenderer creates a new OpenGL glyph renderer for a viewport of the given size.
// A GL context must be current.
func NewRenderer(width, height int, opts ...RendererOption) (*Renderer, error) {
	cfg := rendererConfig{maxGlyphs: DefaultMaxGlyphs}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.atlas == nil {
		cfg.atlas = atlas.Builtin()
	}

	r := &Renderer{
		width:     width,
		height:    height,
		maxGlyphs: cfg.maxGlyphs,
	}

	var err error
	r.shader, err = createShaderProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader: %w", err)
	}
	r.atlasLoc = gl.GetUniformLocation(r.shader, gl.Str("atlasTexture\x00"))

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	stride := int32(unsafe.Sizeof(gui.Glyph{}))
	gl.BufferData(gl.ARRAY_BUFFER, r.maxGlyphs*int(stride), nil, gl.DYNAMIC_DRAW)

	// Glyph layout: Pos (3 floats) + Codepoint (uint32) + Scale (2 floats) + Color (4 floats)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, unsafe.Offsetof(gui.Glyph{}.Pos))
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribDivisor(0, 1)

	gl.VertexAttribIPointerWithOffset(1, 1, gl.UNSIGNED_INT, stride, unsafe.Offsetof(gui.Glyph{}.Codepoint))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribDivisor(1, 1)

	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, stride, unsafe.Offsetof(gui.Glyph{}.Scale))
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribDivisor(2, 1)

	gl.VertexAttribPointerWithOffset(3, 4, gl.FLOAT, false, stride, unsafe.Offsetof(gui.Glyph{}.Color))
	gl.EnableVertexAttribArray(3)
	gl.VertexAttribDivisor(3, 1)

	gl.BindVertexArray(0)

	r.atlasTex, r.atlasW, r.atlasH = createAtlasTexture(cfg.atlas)

	return r, nil
}

// GlyphUnit returns the NDC cell size at font size 1 for the current viewport.
func (r *Renderer) GlyphUnit() gui.Vec2 {
	return gui.GlyphUnit(r.atlasW, r.atlasH, r.width, r.height)
}

// Resize updates the viewport size.
func (r *Renderer) Resize(width, height int) {
	r.width = width
	r.height = height
}

// Render draws the glyphs in order.
func (r *Renderer) Render(glyphs []gui.Glyph) error {
	if len(glyphs) > r.maxGlyphs {
		// Warn once per overflow episode rather than every frame.
		if !r.overflowed {
			gui.Logger().Warn("glyph overflow, dropping glyphs", "glyphs", len(glyphs), "max", r.maxGlyphs)
			r.overflowed = true
		}
		glyphs = glyphs[:r.maxGlyphs]
	} else {
		r.overflowed = false
	}
	if len(glyphs) == 0 {
		return nil
	}

	// Save GL state
	var lastProgram int32
	var lastBlendSrc, lastBlendDst int32
	gl.GetIntegerv(gl.CURRENT_PROGRAM, &lastProgram)
	gl.GetIntegerv(gl.BLEND_SRC_ALPHA, &lastBlendSrc)
	gl.GetIntegerv(gl.BLEND_DST_ALPHA, &lastBlendDst)
	blendEnabled := gl.IsEnabled(gl.BLEND)
	depthEnabled := gl.IsEnabled(gl.DEPTH_TEST)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.DEPTH_TEST)

	gl.UseProgram(r.shader)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, r.atlasTex)
	gl.Uniform1i(r.atlasLoc, 0)

	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(glyphs)*int(unsafe.Sizeof(gui.Glyph{})), gl.Ptr(glyphs))

	gl.DrawArraysInstanced(gl.TRIANGLES, 0, 6, int32(len(glyphs)))

	// Restore GL state
	gl.BindVertexArray(0)
	gl.UseProgram(uint32(lastProgram))
	gl.BlendFunc(uint32(lastBlendSrc), uint32(lastBlendDst))
	if !blendEnabled {
		gl.Disable(gl.BLEND)
	}
	if depthEnabled {
		gl.Enable(gl.DEPTH_TEST)
	}

	if err := gl.GetError(); err != gl.NO_ERROR {
		return fmt.Errorf("glyph draw: gl error 0x%x", err)
	}
	return nil
}

// Delete releases OpenGL resources.
func (r *Renderer) Delete() {
	if r.atlasTex != 0 {
		gl.DeleteTextures(1, &r.atlasTex)
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.shader != 0 {
		gl.DeleteProgram(r.shader)
	}
}

// createAtlasTexture uploads the atlas as an RGBA texture with nearest filtering.
func createAtlasTexture(img image.Image) (tex uint32, width, height int) {
	rgba := atlas.ToRGBA(img)
	width, height = rgba.Rect.Dx(), rgba.Rect.Dy()

	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(width), int32(height), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(rgba.Pix))
	gl.BindTexture(gl.TEXTURE_2D, 0)

	return tex, width, height
}

// createShaderProgram compiles and links a shader program.
func createShaderProgram(vertexSource, fragmentSource string) (uint32, error) {
	vertexShader, err := compileShader(gl.VERTEX_SHADER, vertexSource)
	if err != nil {
		return 0, fmt.Errorf("vertex shader compilation failed: %w", err)
	}
	fragmentShader, err := compileShader(gl.FRAGMENT_SHADER, fragmentSource)
	if err != nil {
		gl.DeleteShader(vertexShader)
		return 0, fmt.Errorf("fragment shader compilation failed: %w", err)
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
		log := make([]byte, logLength+1)
		gl.GetProgramInfoLog(program, logLength, nil, &log[0])
		return 0, fmt.Errorf("shader program linking failed: %s", string(log))
	}

	// Cleanup shaders (they're linked into the program now)
	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)

	return program, nil
}

func compileShader(kind uint32, source string) (uint32, error) {
	shader := gl.CreateShader(kind)
	csource, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetShaderInfoLog(shader, logLength, nil, &log[0])
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("%s", string(log))
	}
	return shader, nil
}
