package gui

// defaultGlyphCapacity is the number of glyphs preallocated per frame.
const defaultGlyphCapacity = 1024

// Context holds all state for one frame of UI.
// This is NOT context.Context - it's a dedicated GUI context type.
//
// Call order is layout: every widget call draws at Anchor and then moves
// Anchor one line below its last line, so consecutive calls stack vertically.
type Context struct {
	// Drawing output, rebuilt every frame.
	Glyphs []Glyph

	// Pointer snapshot for this frame (read-only during the frame).
	Pointer PointerState

	// Anchor is the top-left corner of the next widget.
	Anchor Vec2

	// GlyphUnit is the cell size at font size 1; GlyphSize is the current cell size.
	GlyphUnit Vec2
	GlyphSize Vec2

	fontSize float32
	regs     Registers
}

// NewContext creates a new GUI context at font size 1.
func NewContext() *Context {
	return &Context{
		Glyphs:   make([]Glyph, 0, defaultGlyphCapacity),
		fontSize: 1,
	}
}

// Reset prepares the context for a new frame: the glyph list and anchor are
// cleared, the hot and active registers carry over.
func (ctx *Context) Reset() {
	ctx.Glyphs = ctx.Glyphs[:0]
	ctx.Anchor = Vec2{}
	ctx.regs.beginFrame()
}

// SetGlyphUnit sets the cell size at font size 1 and rescales the current cell.
func (ctx *Context) SetGlyphUnit(unit Vec2) {
	ctx.GlyphUnit = unit
	ctx.GlyphSize = unit.Mul(ctx.fontSize)
}

// SetFontSize scales the glyph cell to size times the glyph unit.
func (ctx *Context) SetFontSize(size float32) {
	ctx.fontSize = size
	ctx.GlyphSize = ctx.GlyphUnit.Mul(size)
}

// FontSize returns the current font size.
func (ctx *Context) FontSize() float32 {
	return ctx.fontSize
}

// SetAnchor moves the anchor for the next widget.
func (ctx *Context) SetAnchor(x, y float32) {
	ctx.Anchor = Vec2{X: x, Y: y}
}

// Hot returns the widget currently under the pointer, or NoID.
func (ctx *Context) Hot() ID {
	return ctx.regs.Hot()
}

// Active returns the widget currently holding a press, or NoID.
func (ctx *Context) Active() ID {
	return ctx.regs.Active()
}

// Label draws non-interactive text and advances the anchor.
// WithID is accepted for symmetry with Button and has no effect.
func (ctx *Context) Label(text string, opts ...Option) {
	o := applyOptions(opts)
	ctx.paint(NewText(text, o.id), ColorText)
}

// Button draws interactive text and returns the interaction result.
func (ctx *Context) Button(text string, opts ...Option) Response {
	o := applyOptions(opts)
	block := NewText(text, o.id)

	rect := RectSized(ctx.Anchor, block.Size(ctx.GlyphSize))
	resp := ctx.regs.Interact(block.ID(), rect, ctx.Pointer)

	ctx.paint(block, resp.Color())
	return resp
}

// paint emits the block at the anchor and moves the anchor below it.
func (ctx *Context) paint(block Text, color Vec4) {
	var end Vec2
	ctx.Glyphs, end = block.Paint(ctx.Glyphs, ctx.Anchor, ctx.GlyphSize, color)
	ctx.Anchor.Y = end.Y - ctx.GlyphSize.Y
}

// AddGlyph appends a free-standing glyph, e.g. a pointer marker drawn over the widgets.
func (ctx *Context) AddGlyph(g Glyph) {
	ctx.Glyphs = append(ctx.Glyphs, g)
}
