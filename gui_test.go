package gui_test

import (
	"errors"
	"testing"

	"github.com/geomagika/gui"
)

// mockRenderer records the glyphs of the last frame.
type mockRenderer struct {
	renderCalls int
	glyphs      []gui.Glyph
	unit        gui.Vec2
	err         error
	width       int
	height      int
}

func (m *mockRenderer) Render(glyphs []gui.Glyph) error {
	m.renderCalls++
	m.glyphs = append(m.glyphs[:0], glyphs...)
	return m.err
}

func (m *mockRenderer) GlyphUnit() gui.Vec2 {
	return m.unit
}

func (m *mockRenderer) Resize(width, height int) {
	m.width, m.height = width, height
}

func newMock() *mockRenderer {
	return &mockRenderer{unit: gui.Vec2{X: 0.25, Y: 0.5}}
}

func TestGUIBasicUsage(t *testing.T) {
	renderer := newMock()
	ui := gui.New(renderer)

	ctx := ui.Begin(gui.PointerState{})
	if ctx == nil {
		t.Fatal("expected non-nil context")
	}
	if ctx.GlyphSize != renderer.unit {
		t.Errorf("GlyphSize = %+v, want renderer unit %+v", ctx.GlyphSize, renderer.unit)
	}

	ctx.Label("Hi")
	ctx.Button("OK")

	if err := ui.End(); err != nil {
		t.Fatalf("End() returned error: %v", err)
	}
	if renderer.renderCalls != 1 {
		t.Errorf("expected 1 render call, got %d", renderer.renderCalls)
	}
	if len(renderer.glyphs) != 4 {
		t.Errorf("expected 4 glyphs, got %d", len(renderer.glyphs))
	}
}

func TestEndReturnsRendererError(t *testing.T) {
	renderer := newMock()
	renderer.err = errors.New("device lost")
	ui := gui.New(renderer)

	ui.Begin(gui.PointerState{})
	if err := ui.End(); !errors.Is(err, renderer.err) {
		t.Errorf("End() = %v, want %v", err, renderer.err)
	}
}

func TestLabelAdvancesAnchor(t *testing.T) {
	ui := gui.New(newMock())
	ctx := ui.Begin(gui.PointerState{})

	ctx.SetAnchor(-1, 1)
	ctx.Label("one")
	// The next widget starts one line below the last line drawn.
	if ctx.Anchor != (gui.Vec2{X: -1, Y: 0.5}) {
		t.Errorf("after single line: anchor = %+v, want (-1, 0.5)", ctx.Anchor)
	}

	ctx.Label("a\nb")
	if ctx.Anchor != (gui.Vec2{X: -1, Y: -0.5}) {
		t.Errorf("after two lines: anchor = %+v, want (-1, -0.5)", ctx.Anchor)
	}

	if got := ctx.Glyphs[3].Pos; got != (gui.Vec3{X: -1, Y: 0.5}) {
		t.Errorf("second label starts at %+v, want (-1, 0.5)", got)
	}
}

func TestLabelColor(t *testing.T) {
	ui := gui.New(newMock())
	ctx := ui.Begin(gui.PointerState{})
	ctx.Label("x")

	if ctx.Glyphs[0].Color != gui.ColorText {
		t.Errorf("label color = %+v, want text color", ctx.Glyphs[0].Color)
	}
}

func TestBeginResetsFrame(t *testing.T) {
	ui := gui.New(newMock())

	ctx := ui.Begin(gui.PointerState{})
	ctx.SetAnchor(0.5, 0.5)
	ctx.SetFontSize(3)
	ctx.Label("abc")
	if err := ui.End(); err != nil {
		t.Fatalf("End() returned error: %v", err)
	}

	ctx = ui.Begin(gui.PointerState{})
	if len(ctx.Glyphs) != 0 {
		t.Errorf("glyphs carried over: %d", len(ctx.Glyphs))
	}
	if ctx.Anchor != (gui.Vec2{}) {
		t.Errorf("anchor carried over: %+v", ctx.Anchor)
	}
	if ctx.FontSize() != 1 {
		t.Errorf("font size carried over: %v", ctx.FontSize())
	}
}

func TestFontSize(t *testing.T) {
	ui := gui.New(newMock(), gui.WithFontSize(2))
	ctx := ui.Begin(gui.PointerState{})

	if ctx.GlyphSize != (gui.Vec2{X: 0.5, Y: 1}) {
		t.Errorf("GlyphSize = %+v, want (0.5, 1)", ctx.GlyphSize)
	}

	ctx.SetFontSize(4)
	ctx.Label("a")
	if ctx.Glyphs[0].Scale != (gui.Vec2{X: 1, Y: 2}) {
		t.Errorf("glyph scale = %+v, want (1, 2)", ctx.Glyphs[0].Scale)
	}
}

func TestWithGlyphCapacity(t *testing.T) {
	ui := gui.New(newMock(), gui.WithGlyphCapacity(4096))
	if c := cap(ui.Context().Glyphs); c < 4096 {
		t.Errorf("glyph capacity = %d, want at least 4096", c)
	}
}

func TestResize(t *testing.T) {
	renderer := newMock()
	ui := gui.New(renderer)
	ui.Resize(640, 480)

	if renderer.width != 640 || renderer.height != 480 {
		t.Errorf("renderer size = %dx%d, want 640x480", renderer.width, renderer.height)
	}
}

// frame runs one tick with a single "OK" button at the origin.
func frame(t *testing.T, ui *gui.GUI, pointer *gui.PointerState, opts ...gui.Option) gui.Response {
	t.Helper()
	ctx := ui.Begin(*pointer)
	resp := ctx.Button("OK", opts...)
	if err := ui.End(); err != nil {
		t.Fatalf("End() returned error: %v", err)
	}
	pointer.Refresh()
	return resp
}

func TestButtonWithClick(t *testing.T) {
	renderer := newMock()
	ui := gui.New(renderer)

	// "OK" covers x in [0, 0.5] and y in [-0.5, 0].
	var pointer gui.PointerState
	pointer.SetPosition(gui.Vec2{X: 0.25, Y: -0.25})

	if resp := frame(t, ui, &pointer); !resp.Hover || resp.Active {
		t.Fatalf("hover frame: got %+v", resp)
	}
	if renderer.glyphs[0].Color != gui.ColorHover {
		t.Errorf("hovered button color = %+v, want hover color", renderer.glyphs[0].Color)
	}

	pointer.SetButton(gui.MouseButtonLeft, true)
	if resp := frame(t, ui, &pointer); !resp.Active || resp.Clicked {
		t.Fatalf("press frame: got %+v", resp)
	}
	if ui.Context().Active() != gui.MakeID("OK", "") {
		t.Errorf("active = %v, want OK", ui.Context().Active())
	}

	pointer.SetButton(gui.MouseButtonLeft, false)
	if resp := frame(t, ui, &pointer); !resp.Clicked {
		t.Fatalf("release frame: got %+v, want clicked", resp)
	}
	if !ui.Context().Active().IsNone() {
		t.Errorf("active = %v after release, want none", ui.Context().Active())
	}
}

func TestButtonWithoutInput(t *testing.T) {
	renderer := newMock()
	ui := gui.New(renderer)

	var pointer gui.PointerState
	pointer.SetPosition(gui.Vec2{X: 0.9, Y: 0.9})
	if resp := frame(t, ui, &pointer); resp != (gui.Response{}) {
		t.Errorf("got %+v, want no interaction", resp)
	}
	if renderer.glyphs[0].Color != gui.ColorText {
		t.Errorf("idle button color = %+v, want text color", renderer.glyphs[0].Color)
	}
}

func TestWithIDSeparatesButtons(t *testing.T) {
	ui := gui.New(newMock())

	var pointer gui.PointerState
	pointer.SetPosition(gui.Vec2{X: 0.25, Y: -0.25})
	pointer.SetButton(gui.MouseButtonLeft, true)

	ctx := ui.Begin(pointer)
	ctx.Button("Back", gui.WithID("settings"))
	ctx.SetAnchor(0, 0)
	ctx.Button("Back", gui.WithID("editor"))
	if err := ui.End(); err != nil {
		t.Fatalf("End() returned error: %v", err)
	}
	pointer.Refresh()

	if ctx.Active() != gui.MakeID("Back", "editor") {
		t.Fatalf("active = %v, want Back#editor", ctx.Active())
	}

	pointer.SetButton(gui.MouseButtonLeft, false)
	ctx = ui.Begin(pointer)
	settings := ctx.Button("Back", gui.WithID("settings"))
	ctx.SetAnchor(0, 0)
	editor := ctx.Button("Back", gui.WithID("editor"))
	if err := ui.End(); err != nil {
		t.Fatalf("End() returned error: %v", err)
	}

	if settings.Clicked || !editor.Clicked {
		t.Errorf("settings=%+v editor=%+v, want only editor clicked", settings, editor)
	}
}

func TestStaleHotCleared(t *testing.T) {
	ui := gui.New(newMock())

	var pointer gui.PointerState
	pointer.SetPosition(gui.Vec2{X: 0.25, Y: -0.25})
	frame(t, ui, &pointer)
	if ui.Context().Hot().IsNone() {
		t.Fatal("expected OK to be hot")
	}

	// A frame without the button, then one more to notice it went missing.
	ui.Begin(pointer)
	if err := ui.End(); err != nil {
		t.Fatalf("End() returned error: %v", err)
	}
	ctx := ui.Begin(pointer)
	if !ctx.Hot().IsNone() {
		t.Errorf("hot = %v, want none once the widget stops being drawn", ctx.Hot())
	}
	if err := ui.End(); err != nil {
		t.Fatalf("End() returned error: %v", err)
	}
}

func TestStaleActiveCleared(t *testing.T) {
	ui := gui.New(newMock())

	var pointer gui.PointerState
	pointer.SetPosition(gui.Vec2{X: 0.25, Y: -0.25})
	pointer.SetButton(gui.MouseButtonLeft, true)
	frame(t, ui, &pointer)
	if ui.Context().Active().IsNone() {
		t.Fatal("expected OK to be active")
	}

	// The page changes while the button is held; the release lands on
	// nothing, so the next time OK shows up it must not click.
	ui.Begin(pointer)
	if err := ui.End(); err != nil {
		t.Fatalf("End() returned error: %v", err)
	}
	pointer.Refresh()

	pointer.SetButton(gui.MouseButtonLeft, false)
	ui.Begin(pointer)
	if err := ui.End(); err != nil {
		t.Fatalf("End() returned error: %v", err)
	}
	pointer.Refresh()

	if resp := frame(t, ui, &pointer); resp.Clicked || resp.Active {
		t.Errorf("got %+v, want no stale click", resp)
	}
}

func TestAddGlyph(t *testing.T) {
	renderer := newMock()
	ui := gui.New(renderer)
	ctx := ui.Begin(gui.PointerState{})

	marker := gui.Glyph{Codepoint: '^', Scale: ctx.GlyphSize, Color: gui.Vec4{X: 1, W: 1}}
	ctx.Label("a")
	ctx.AddGlyph(marker)
	if err := ui.End(); err != nil {
		t.Fatalf("End() returned error: %v", err)
	}

	if len(renderer.glyphs) != 2 || renderer.glyphs[1] != marker {
		t.Errorf("marker not appended last: %+v", renderer.glyphs)
	}
}

func BenchmarkFullFrame(b *testing.B) {
	ui := gui.New(newMock())
	var pointer gui.PointerState
	pointer.SetPosition(gui.Vec2{X: 0.1, Y: -0.1})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ctx := ui.Begin(pointer)
		ctx.Label("Geomagika")
		for _, label := range []string{"New Game", "Settings", "Editor", "Exit"} {
			ctx.Button(label)
		}
		if err := ui.End(); err != nil {
			b.Fatalf("End() returned error: %v", err)
		}
		pointer.Refresh()
	}
}
