// Package menu is the page flow shared by the example programs:
// a main menu leading to settings, an editor stub and a game stub.
package menu

import (
	"math"

	"github.com/geomagika/gui"
)

// Page identifies the page shown by the menu.
type Page int

const (
	PageMainMenu Page = iota
	PageSettings
	PageEditor
	PageGame
	PageExit
)

func (p Page) String() string {
	switch p {
	case PageMainMenu:
		return "main menu"
	case PageSettings:
		return "settings"
	case PageEditor:
		return "editor"
	case PageGame:
		return "game"
	case PageExit:
		return "exit"
	default:
		return "unknown"
	}
}

// Menu holds the application state the pages edit.
type Menu struct {
	Page       Page
	Fullscreen bool

	// FontScale multiplies every font size the pages ask for; sizes never go
	// below MinFontSize. The terminal demo uses them to fit its cell grid.
	FontScale   float32
	MinFontSize float32
	// WholeCells rounds scaled font sizes to whole glyph units. A fractional
	// size on a cell grid rounds each glyph to its own cell, so letter
	// spacing drifts from the button's hit rectangle by up to half a cell.
	WholeCells bool

	// OnFullscreen is called when the fullscreen setting flips.
	OnFullscreen func(fullscreen bool)
	// OnClick is called for every clicked button, e.g. to play a sound.
	OnClick func(label string)
}

// New returns a menu on the main page.
func New() *Menu {
	return &Menu{Page: PageMainMenu, FontScale: 1}
}

// Frame draws the current page and returns the page for the next frame.
func (m *Menu) Frame(ctx *gui.Context) Page {
	m.Page = m.draw(ctx)
	return m.Page
}

func (m *Menu) draw(ctx *gui.Context) Page {
	fx := ctx.GlyphUnit.X
	fy := ctx.GlyphUnit.Y

	switch m.Page {
	case PageMainMenu:
		left := min(1, 52*fx)
		top := min(1, 16*fy)
		ctx.SetAnchor(-left, top)
		m.setFontSize(ctx, 12)
		ctx.Label("Geomagika")

		ctx.Anchor.X += 10 * fx
		m.setFontSize(ctx, 5)
		if m.button(ctx, "New Game") {
			return PageGame
		}
		if m.button(ctx, "Settings") {
			return PageSettings
		}
		if m.button(ctx, "Editor") {
			return PageEditor
		}
		if m.button(ctx, "Exit") {
			return PageExit
		}

	case PageEditor:
		ctx.SetAnchor(0, 0)
		m.setFontSize(ctx, 6)
		ctx.Label("Editor")

		ctx.SetAnchor(0, 4*fy-1)
		m.setFontSize(ctx, 4)
		if m.button(ctx, "Back") {
			return PageMainMenu
		}

	case PageGame:
		ctx.SetAnchor(0, 0)
		ctx.Label("Game")

		next := PageGame
		if m.button(ctx, "Back", gui.WithID("settings")) {
			next = PageSettings
		}
		if m.button(ctx, "Back", gui.WithID("editor")) {
			next = PageEditor
		}
		return next

	case PageSettings:
		ctx.SetAnchor(0, 0)
		m.setFontSize(ctx, 5)

		if m.button(ctx, "Fullscreen") {
			m.Fullscreen = !m.Fullscreen
			if m.OnFullscreen != nil {
				m.OnFullscreen(m.Fullscreen)
			}
		}
		if m.button(ctx, "Back") {
			return PageMainMenu
		}
	}

	return m.Page
}

func (m *Menu) setFontSize(ctx *gui.Context, size float32) {
	size *= m.FontScale
	if m.WholeCells {
		size = float32(math.Round(float64(size)))
	}
	ctx.SetFontSize(max(m.MinFontSize, size))
}

func (m *Menu) button(ctx *gui.Context, label string, opts ...gui.Option) bool {
	if !ctx.Button(label, opts...).Clicked {
		return false
	}
	if m.OnClick != nil {
		m.OnClick(label)
	}
	return true
}

// PointerMarker returns a red caret glyph at the pointer position.
func PointerMarker(ctx *gui.Context) gui.Glyph {
	return gui.Glyph{
		Pos:       gui.Vec3{X: ctx.Pointer.Pos.X, Y: ctx.Pointer.Pos.Y},
		Codepoint: '^',
		Scale:     ctx.GlyphSize,
		Color:     gui.Vec4{X: 1, W: 1},
	}
}
