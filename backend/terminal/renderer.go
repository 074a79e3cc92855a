// Package terminal provides a tcell backend for the GUI package.
// Each glyph occupies one terminal cell; at font size 1 the GUI's glyph cell
// is exactly one terminal cell.
package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/geomagika/gui"
)

// Renderer draws gui glyphs onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
}

// NewRenderer creates a renderer for an initialised screen.
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// GlyphUnit returns the NDC size of one terminal cell.
func (r *Renderer) GlyphUnit() gui.Vec2 {
	w, h := r.screen.Size()
	if w <= 0 || h <= 0 {
		return gui.Vec2{}
	}
	return gui.Vec2{X: 2 / float32(w), Y: 2 / float32(h)}
}

// Resize resynchronises the screen; tcell tracks the size itself.
func (r *Renderer) Resize(width, height int) {
	r.screen.Sync()
}

// Render clears the screen, draws the glyphs in order and shows the result.
// Later glyphs overwrite earlier ones in the same cell.
func (r *Renderer) Render(glyphs []gui.Glyph) error {
	r.screen.Clear()
	w, h := r.screen.Size()

	for _, g := range glyphs {
		col, row := Cell(g.Pos, w, h)
		if col < 0 || row < 0 || col >= w || row >= h {
			continue
		}
		r.screen.SetContent(col, row, glyphRune(g.Codepoint), nil, Style(g.Color))
	}

	r.screen.Show()
	return nil
}

// Cell returns the terminal cell whose top-left corner is nearest to pos.
func Cell(pos gui.Vec3, width, height int) (col, row int) {
	px, py := gui.NDCToPixel(gui.Vec2{X: pos.X, Y: pos.Y}, float32(width), float32(height))
	return roundToInt(px), roundToInt(py)
}

// Style returns the tcell style for a glyph color.
func Style(c gui.Vec4) tcell.Style {
	r, g, b, _ := c.RGBA8()
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(r), int32(g), int32(b)))
}

// glyphRune maps a codepoint to a printable rune. Control bytes become '?'.
func glyphRune(cp uint32) rune {
	if cp < 0x20 || cp == 0x7f {
		return '?'
	}
	return rune(cp)
}

func roundToInt(v float32) int {
	if v < 0 {
		return -int(-v + 0.5)
	}
	return int(v + 0.5)
}
