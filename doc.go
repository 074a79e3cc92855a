/*
Package gui provides an immediate-mode text GUI for monospace bitmap fonts.

# Overview

The UI is rebuilt every frame. There are no widget objects: a widget is a
function call, and its identity is derived from its text plus an optional
disambiguator. Each frame produces an ordered list of Glyph records for a
renderer, and each Button call returns a Response the application uses to
drive its own state.

# Quick Start

	renderer, _ := opengl.NewRenderer(800, 600)
	input := opengl.NewGLFWInputAdapter(window)
	ui := gui.New(renderer, gui.WithFontSize(4))

	for !window.ShouldClose() {
	    glfw.PollEvents()

	    ctx := ui.Begin(input.Pointer())
	    ctx.SetAnchor(-0.5, 0.5)
	    ctx.Label("Hello")
	    if ctx.Button("Quit").Clicked {
	        break
	    }
	    ui.End()

	    input.Refresh()
	    window.SwapBuffers()
	}

# Coordinates

All positions and sizes are normalized device coordinates: x in [-1, 1]
grows right, y in [-1, 1] grows up. Text grows down from the anchor, so
text heights are negative. PixelToNDC converts window pixels.

# Layout

The context keeps an anchor. Every Label and Button draws its first glyph
at the anchor and moves the anchor to the line below its last line. Call
order is therefore the vertical stacking order. Move the anchor with
SetAnchor or by editing ctx.Anchor between calls.

# Interaction

The context keeps two registers across frames: hot (the widget under the
pointer) and active (the widget holding a press). A button becomes active
when a press edge arrives while it is hot, and reports Clicked on the
release edge only if it is still hot at that moment. A release anywhere
clears the active register. When rectangles overlap, the widget issued
last wins the hot register.

Widgets with the same text and no WithID share an identity and therefore
share state within a frame:

	ctx.Button("Back", gui.WithID("settings"))
	ctx.Button("Back", gui.WithID("editor"))

# Input

PointerState.SetPosition and SetButton record events; Pressed and Released
are edges that last a single tick. Call Refresh once per tick after the
frame has been built so edges decay when no new event arrives.

# Text

Text is treated as ASCII, one glyph per byte, laid out on a fixed cell
grid. '\n' starts a new line. Non-ASCII text is drawn byte by byte with a
logged warning.
*/
package gui
