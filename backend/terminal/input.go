package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/geomagika/gui"
)

// buttonMap pairs tcell button bits with GUI buttons.
var buttonMap = [...]struct {
	mask   tcell.ButtonMask
	button gui.MouseButton
}{
	{tcell.ButtonPrimary, gui.MouseButtonLeft},
	{tcell.ButtonSecondary, gui.MouseButtonRight},
	{tcell.ButtonMiddle, gui.MouseButtonMiddle},
}

// InputAdapter feeds tcell mouse events into a gui.PointerState.
// tcell reports the full button mask with every mouse event, so the adapter
// turns mask changes into button events.
type InputAdapter struct {
	screen  tcell.Screen
	pointer gui.PointerState
	buttons tcell.ButtonMask
}

// NewInputAdapter creates an adapter for screen and enables mouse reporting.
func NewInputAdapter(screen tcell.Screen) *InputAdapter {
	screen.EnableMouse()
	return &InputAdapter{screen: screen}
}

// HandleEvent records a mouse event. It returns false for other events.
func (a *InputAdapter) HandleEvent(ev tcell.Event) bool {
	mev, ok := ev.(*tcell.EventMouse)
	if !ok {
		return false
	}

	w, h := a.screen.Size()
	x, y := mev.Position()
	// Point at the centre of the cell so it falls inside glyph rectangles.
	a.pointer.SetPosition(gui.PixelToNDC(float32(x)+0.5, float32(y)+0.5, float32(w), float32(h)))

	buttons := mev.Buttons()
	for _, m := range buttonMap {
		down := buttons&m.mask != 0
		if down != (a.buttons&m.mask != 0) {
			a.pointer.SetButton(m.button, down)
		}
	}
	a.buttons = buttons

	return true
}

// Pointer returns a snapshot of the pointer state for this tick.
func (a *InputAdapter) Pointer() gui.PointerState {
	return a.pointer
}

// Refresh decays this tick's button edges.
// Call it once per tick after the frame has been built.
func (a *InputAdapter) Refresh() {
	a.pointer.Refresh()
}
