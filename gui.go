package gui

// Renderer draws the glyphs of one frame.
type Renderer interface {
	// Render draws the frame's glyphs in order. The slice is only valid during the call.
	Render(glyphs []Glyph) error
	// GlyphUnit returns the NDC size of one glyph cell at font size 1.
	GlyphUnit() Vec2
	Resize(width, height int)
}

// GUI drives a Context and hands its glyphs to a Renderer every frame.
type GUI struct {
	renderer Renderer
	ctx      *Context
	fontSize float32
}

// GUIOption configures a GUI instance.
type GUIOption func(*GUI)

// WithFontSize sets the font size every frame starts with.
func WithFontSize(size float32) GUIOption {
	return func(g *GUI) { g.fontSize = size }
}

// WithGlyphCapacity preallocates room for n glyphs per frame.
func WithGlyphCapacity(n int) GUIOption {
	return func(g *GUI) {
		if n > cap(g.ctx.Glyphs) {
			g.ctx.Glyphs = make([]Glyph, 0, n)
		}
	}
}

// New creates a new GUI instance.
func New(renderer Renderer, opts ...GUIOption) *GUI {
	g := &GUI{
		renderer: renderer,
		ctx:      NewContext(),
		fontSize: 1,
	}

	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Begin starts a new frame and returns the GUI context.
// pointer is the input snapshot for this tick; refresh the live pointer state
// after End, not before Begin, or this tick's edges are lost.
func (g *GUI) Begin(pointer PointerState) *Context {
	ctx := g.ctx

	ctx.Reset()
	ctx.Pointer = pointer
	ctx.SetGlyphUnit(g.renderer.GlyphUnit())
	ctx.SetFontSize(g.fontSize)

	return ctx
}

// End finishes the frame and renders the glyphs.
func (g *GUI) End() error {
	return g.renderer.Render(g.ctx.Glyphs)
}

// Context returns the GUI context.
// Only meaningful between Begin() and End() calls.
func (g *GUI) Context() *Context {
	return g.ctx
}

// Resize notifies the renderer of a display size change.
func (g *GUI) Resize(width, height int) {
	g.renderer.Resize(width, height)
}
