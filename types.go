// Package gui provides an immediate-mode text GUI for a monospace bitmap font.
// It uses a dedicated Context type (not context.Context) that is rebuilt every frame.
package gui

// Vec2 represents a 2D vector for positions and sizes.
// Positions are in normalized device coordinates: x grows right, y grows up, both in [-1, 1].
type Vec2 struct {
	X, Y float32
}

// Add returns the sum of two vectors.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns the difference of two vectors.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{X: v.X - other.X, Y: v.Y - other.Y}
}

// Mul returns the vector scaled by a scalar.
func (v Vec2) Mul(s float32) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Vec3 represents a 3D position. The GUI always emits z = 0.
type Vec3 struct {
	X, Y, Z float32
}

// Vec4 represents an RGBA color with components in [0, 1].
type Vec4 struct {
	X, Y, Z, W float32
}

// RGBA8 returns the color as 8-bit channels, clamping out-of-range components.
func (v Vec4) RGBA8() (r, g, b, a uint8) {
	return uint8(clampf(v.X, 0, 1) * 255),
		uint8(clampf(v.Y, 0, 1) * 255),
		uint8(clampf(v.Z, 0, 1) * 255),
		uint8(clampf(v.W, 0, 1) * 255)
}

// Rect is an axis-aligned rectangle spanned by two corners.
// Either corner may be the minimum on either axis.
type Rect struct {
	A, B Vec2
}

// RectSized returns the rectangle spanning origin and origin+size.
// Negative size components are allowed; text blocks grow downwards and have a negative height.
func RectSized(origin, size Vec2) Rect {
	return Rect{A: origin, B: origin.Add(size)}
}

// Contains returns true if the point is inside the rectangle, boundary included.
func (r Rect) Contains(p Vec2) bool {
	return between(p.X, r.A.X, r.B.X) && between(p.Y, r.A.Y, r.B.Y)
}

// between reports whether value lies in the closed interval spanned by a and b, in either order.
func between(value, a, b float32) bool {
	return (a <= value && value <= b) || (b <= value && value <= a)
}

// PixelToNDC converts a window pixel position (origin top-left, y down) to
// normalized device coordinates for a window of the given size.
func PixelToNDC(px, py, width, height float32) Vec2 {
	if width <= 0 || height <= 0 {
		return Vec2{}
	}
	return Vec2{
		X: 2*px/width - 1,
		Y: 1 - 2*py/height,
	}
}

// NDCToPixel is the inverse of PixelToNDC.
func NDCToPixel(p Vec2, width, height float32) (px, py float32) {
	return (p.X + 1) * width / 2, (1 - p.Y) * height / 2
}

// clampf clamps a float32 value to a range.
func clampf(v, minVal, maxVal float32) float32 {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}

// maxf returns the maximum of two float32 values.
func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
