// Package atlas builds and loads 16x8 ASCII glyph atlases for the GUI backends.
package atlas

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/png" // PNG atlases
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/geomagika/gui"
)

// Cell size of the built-in atlas, taken from the 7x13 bitmap face.
const (
	CellWidth  = 7
	CellHeight = 13
)

// Builtin rasterises printable ASCII (32-126) into a 16x8 grid of white
// glyphs on a transparent background. Codepoint c sits in column c%16, row c/16.
func Builtin() *image.RGBA {
	face := basicfont.Face7x13
	dst := image.NewRGBA(image.Rect(0, 0, gui.AtlasColumns*CellWidth, gui.AtlasRows*CellHeight))
	draw.Draw(dst, dst.Bounds(), &image.Uniform{color.RGBA{0, 0, 0, 0}}, image.Point{}, draw.Src)

	drawer := &font.Drawer{
		Dst:  dst,
		Src:  image.White,
		Face: face,
	}
	ascent := face.Metrics().Ascent.Ceil()

	for c := 32; c < 127; c++ {
		col := c % gui.AtlasColumns
		row := c / gui.AtlasColumns
		// Dot is the baseline origin of the cell.
		drawer.Dot = fixed.P(col*CellWidth, row*CellHeight+ascent)
		drawer.DrawString(string(rune(c)))
	}

	return dst
}

// Load reads an atlas image from disk. The image must use the 16x8 grid.
func Load(path string) (*image.RGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open atlas: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode atlas %s: %w", path, err)
	}

	b := img.Bounds()
	if b.Dx()%gui.AtlasColumns != 0 || b.Dy()%gui.AtlasRows != 0 {
		gui.Logger().Warn("atlas size is not a multiple of the glyph grid",
			"path", path, "width", b.Dx(), "height", b.Dy())
	}

	return ToRGBA(img), nil
}

// ToRGBA returns img as tightly packed RGBA with its origin at (0, 0).
func ToRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Rect.Min == (image.Point{}) && rgba.Stride == 4*rgba.Rect.Dx() {
		return rgba
	}
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}

// GlyphUnit returns the cell size at font size 1 for img on a screen of the given size.
func GlyphUnit(img image.Image, screenWidth, screenHeight int) gui.Vec2 {
	b := img.Bounds()
	return gui.GlyphUnit(b.Dx(), b.Dy(), screenWidth, screenHeight)
}
