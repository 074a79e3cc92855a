package gui

// Interaction colors. There is no theme system; these are the only three.
var (
	ColorText   = Vec4{X: 1.0, Y: 1.0, Z: 1.0, W: 1.0} // Labels and idle buttons
	ColorHover  = Vec4{X: 0.2, Y: 0.4, Z: 0.8, W: 1.0} // Button under the pointer
	ColorActive = Vec4{X: 0.9, Y: 0.2, Z: 0.3, W: 1.0} // Pressed button, pointer dragged off
)
