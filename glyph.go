package gui

// Atlas grid assumed by the built-in layout: 16 columns by 8 rows covering ASCII 0-127.
const (
	AtlasColumns = 16
	AtlasRows    = 8
)

// Glyph is one positioned character handed to the renderer.
// The layout matches the per-instance vertex attributes of the OpenGL backend.
type Glyph struct {
	Pos       Vec3   // Top-left corner in NDC, z always 0
	Codepoint uint32 // Byte value of the character
	Scale     Vec2   // Cell size in NDC
	Color     Vec4   // RGBA, 0-1 per channel
}

// GlyphUnit returns the NDC size of one atlas cell drawn at one pixel per texel
// on a screen of the given size. This is the cell size at font size 1.
func GlyphUnit(atlasWidth, atlasHeight, screenWidth, screenHeight int) Vec2 {
	if screenWidth <= 0 || screenHeight <= 0 {
		return Vec2{}
	}
	px := 1 / float32(screenWidth)
	py := 1 / float32(screenHeight)
	return Vec2{
		X: px * float32(atlasWidth) / AtlasColumns,
		Y: py * float32(atlasHeight) / AtlasRows,
	}
}
