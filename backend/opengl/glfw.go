package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/geomagika/gui"
)

// GLFWInputAdapter feeds GLFW pointer events into a gui.PointerState.
type GLFWInputAdapter struct {
	window  *glfw.Window
	pointer gui.PointerState
}

// NewGLFWInputAdapter creates a new GLFW input adapter and installs its callbacks.
func NewGLFWInputAdapter(window *glfw.Window) *GLFWInputAdapter {
	adapter := &GLFWInputAdapter{window: window}

	window.SetMouseButtonCallback(adapter.mouseButtonCallback)
	window.SetCursorPosCallback(adapter.cursorPosCallback)

	return adapter
}

// Pointer returns a snapshot of the pointer state for this tick.
// Call it after glfw.PollEvents.
func (a *GLFWInputAdapter) Pointer() gui.PointerState {
	return a.pointer
}

// Refresh decays this tick's button edges.
// Call it once per tick after the frame has been built.
func (a *GLFWInputAdapter) Refresh() {
	a.pointer.Refresh()
}

func (a *GLFWInputAdapter) mouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	guiButton := glfwMouseButtonToGUI(button)
	if guiButton < 0 {
		return
	}

	switch action {
	case glfw.Press:
		a.pointer.SetButton(guiButton, true)
	case glfw.Release:
		a.pointer.SetButton(guiButton, false)
	}
}

func (a *GLFWInputAdapter) cursorPosCallback(w *glfw.Window, xpos, ypos float64) {
	// Cursor positions are in screen coordinates, same as the window size.
	width, height := w.GetSize()
	a.pointer.SetPosition(gui.PixelToNDC(float32(xpos), float32(ypos), float32(width), float32(height)))
}

// glfwMouseButtonToGUI maps GLFW mouse buttons to GUI mouse buttons.
func glfwMouseButtonToGUI(button glfw.MouseButton) gui.MouseButton {
	switch button {
	case glfw.MouseButtonLeft:
		return gui.MouseButtonLeft
	case glfw.MouseButtonRight:
		return gui.MouseButtonRight
	case glfw.MouseButtonMiddle:
		return gui.MouseButtonMiddle
	default:
		return -1
	}
}
