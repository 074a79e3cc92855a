package gui

// Text is a block of ASCII text laid out on a fixed monospace cell grid.
//
// Each byte is one glyph; '\n' starts a new line below the previous one at
// the block's starting x. Non-ASCII input is accepted with a warning and laid
// out byte by byte, without any multi-byte decoding.
type Text struct {
	raw string
	key string
}

// NewText returns a text block with an optional disambiguator key.
// Non-ASCII text logs a warning on every call, i.e. once per widget per frame.
func NewText(value, key string) Text {
	if !isASCII(value) {
		logger.Warn("non-ascii text not supported, drawing bytes", "text", value)
	}
	return Text{raw: value, key: key}
}

// String returns the raw text.
func (t Text) String() string {
	return t.raw
}

// ID returns the widget identity of the block.
func (t Text) ID() ID {
	return MakeID(t.raw, t.key)
}

// Size returns the extent of the block for the given cell size.
// Width is the longest line; height is negative (lines grow downwards) and
// always charges at least one line, so empty text measures (0, -cell.Y).
func (t Text) Size(cell Vec2) Vec2 {
	var maxWidth, width float32
	height := -cell.Y

	for i := 0; i < len(t.raw); i++ {
		if t.raw[i] == '\n' {
			maxWidth = maxf(maxWidth, width)
			width = 0
			height -= cell.Y
		} else {
			width += cell.X
		}
	}

	return Vec2{X: maxf(maxWidth, width), Y: height}
}

// Paint appends one glyph per non-newline byte to dst, starting at origin,
// and returns the extended slice with the position following the last glyph.
func (t Text) Paint(dst []Glyph, origin, cell Vec2, color Vec4) ([]Glyph, Vec2) {
	pos := origin

	for i := 0; i < len(t.raw); i++ {
		c := t.raw[i]
		if c == '\n' {
			pos.X = origin.X
			pos.Y -= cell.Y
			continue
		}
		dst = append(dst, Glyph{
			Pos:       Vec3{X: pos.X, Y: pos.Y},
			Codepoint: uint32(c),
			Scale:     cell,
			Color:     color,
		})
		pos.X += cell.X
	}

	return dst, pos
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}
