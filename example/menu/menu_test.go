package menu_test

import (
	"testing"

	"github.com/geomagika/gui"
	"github.com/geomagika/gui/example/menu"
)

var unit = gui.Vec2{X: 0.01, Y: 0.02}

// driver runs menu frames against a bare context, the way a GUI loop would.
type driver struct {
	ctx     *gui.Context
	pointer gui.PointerState
	m       *menu.Menu
}

func newDriver() *driver {
	return &driver{ctx: gui.NewContext(), m: menu.New()}
}

func (d *driver) frame() menu.Page {
	d.ctx.Reset()
	d.ctx.Pointer = d.pointer
	d.ctx.SetGlyphUnit(unit)
	d.ctx.SetFontSize(1)
	page := d.m.Frame(d.ctx)
	d.pointer.Refresh()
	return page
}

// click presses and releases the primary button at (x, y) over two frames.
func (d *driver) click(x, y float32) menu.Page {
	d.pointer.SetPosition(gui.Vec2{X: x, Y: y})
	d.pointer.SetButton(gui.MouseButtonLeft, true)
	d.frame()
	d.pointer.SetButton(gui.MouseButtonLeft, false)
	return d.frame()
}

func TestMainMenuToSettings(t *testing.T) {
	d := newDriver()

	var clicked []string
	d.m.OnClick = func(label string) { clicked = append(clicked, label) }

	if page := d.frame(); page != menu.PageMainMenu {
		t.Fatalf("first page = %v, want main menu", page)
	}

	// "Settings" is the second button, one line below "New Game".
	if page := d.click(-0.2, -0.07); page != menu.PageSettings {
		t.Fatalf("page = %v, want settings", page)
	}
	if len(clicked) != 1 || clicked[0] != "Settings" {
		t.Errorf("OnClick calls = %v, want [Settings]", clicked)
	}
}

func TestSettingsFullscreenToggle(t *testing.T) {
	d := newDriver()
	d.m.Page = menu.PageSettings

	var calls []bool
	d.m.OnFullscreen = func(fs bool) { calls = append(calls, fs) }

	d.click(0.25, -0.05)
	d.click(0.25, -0.05)

	if len(calls) != 2 || !calls[0] || calls[1] {
		t.Errorf("OnFullscreen calls = %v, want [true false]", calls)
	}
	if d.m.Fullscreen {
		t.Error("fullscreen should be off after two toggles")
	}
	if d.m.Page != menu.PageSettings {
		t.Errorf("page = %v, want settings", d.m.Page)
	}
}

func TestGameBackButtonsAreDistinct(t *testing.T) {
	d := newDriver()
	d.m.Page = menu.PageGame

	// Second "Back" button, the one leading to the editor.
	if page := d.click(0.02, -0.05); page != menu.PageEditor {
		t.Errorf("page = %v, want editor", page)
	}

	d = newDriver()
	d.m.Page = menu.PageGame
	if page := d.click(0.02, -0.03); page != menu.PageSettings {
		t.Errorf("page = %v, want settings", page)
	}
}

func TestPointerMarker(t *testing.T) {
	ctx := gui.NewContext()
	ctx.SetGlyphUnit(unit)
	ctx.Pointer.SetPosition(gui.Vec2{X: 0.5, Y: -0.25})

	g := menu.PointerMarker(ctx)
	if g.Codepoint != '^' || g.Pos.X != 0.5 || g.Pos.Y != -0.25 || g.Scale != ctx.GlyphSize {
		t.Errorf("marker = %+v", g)
	}
}

func TestWholeCellFontSizes(t *testing.T) {
	d := newDriver()
	d.m.FontScale = 0.2
	d.m.MinFontSize = 1
	d.m.WholeCells = true
	d.frame()

	// Title 12 * 0.2 = 2.4 rounds to 2; buttons 5 * 0.2 = 1.
	title := d.ctx.Glyphs[0].Scale
	if title != unit.Mul(2) {
		t.Errorf("title cell = %+v, want %+v", title, unit.Mul(2))
	}
	last := d.ctx.Glyphs[len(d.ctx.Glyphs)-1].Scale
	if last != unit {
		t.Errorf("button cell = %+v, want %+v", last, unit)
	}
	if d.ctx.FontSize() != 1 {
		t.Errorf("font size = %v, want 1", d.ctx.FontSize())
	}
}

func TestPageString(t *testing.T) {
	if menu.PageExit.String() != "exit" || menu.Page(42).String() != "unknown" {
		t.Error("unexpected page names")
	}
}
