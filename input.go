package gui

// MouseButton represents a pointer button.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
	MouseButtonCount
)

// ButtonState tracks one logical button across ticks and derives its edges.
//
// Set is called when an input event arrives; Refresh is called once per tick
// after all events, so a one-tick edge decays when no new event arrives.
type ButtonState struct {
	curr bool
	prev bool
}

// Set records a new raw state, shifting the old current state into previous.
func (b *ButtonState) Set(pressed bool) {
	b.prev = b.curr
	b.curr = pressed
}

// Refresh shifts current into previous without changing current.
func (b *ButtonState) Refresh() {
	b.prev = b.curr
}

// Down returns true while the button is held.
func (b ButtonState) Down() bool {
	return b.curr
}

// Pressed returns true only on the tick the button went down.
func (b ButtonState) Pressed() bool {
	return b.curr && !b.prev
}

// Released returns true only on the tick the button went up.
func (b ButtonState) Released() bool {
	return !b.curr && b.prev
}

// PointerState holds the pointer position and its three buttons.
// It is owned by the input layer; the frame context receives a copy every tick.
type PointerState struct {
	// Pos is the pointer position in normalized device coordinates.
	Pos Vec2
	// Delta is Pos minus the position before the last SetPosition.
	Delta Vec2

	Left   ButtonState
	Right  ButtonState
	Middle ButtonState
}

// SetPosition stores a new pointer position and updates Delta.
func (p *PointerState) SetPosition(pos Vec2) {
	p.Delta = pos.Sub(p.Pos)
	p.Pos = pos
}

// SetButton records a button event. Unknown buttons are ignored.
func (p *PointerState) SetButton(button MouseButton, pressed bool) {
	if b := p.button(button); b != nil {
		b.Set(pressed)
	}
}

// Button returns the state of one button. Unknown buttons report a zero state.
func (p *PointerState) Button(button MouseButton) ButtonState {
	if b := p.button(button); b != nil {
		return *b
	}
	return ButtonState{}
}

func (p *PointerState) button(button MouseButton) *ButtonState {
	switch button {
	case MouseButtonLeft:
		return &p.Left
	case MouseButtonRight:
		return &p.Right
	case MouseButtonMiddle:
		return &p.Middle
	default:
		return nil
	}
}

// Refresh decays the edges of all buttons.
// Call it once per tick, after the frame has consumed the snapshot.
func (p *PointerState) Refresh() {
	p.Left.Refresh()
	p.Right.Refresh()
	p.Middle.Refresh()
}

// Pressed returns true if any button went down this tick.
func (p PointerState) Pressed() bool {
	return p.Left.Pressed() || p.Right.Pressed() || p.Middle.Pressed()
}

// Released returns true if any button went up this tick.
func (p PointerState) Released() bool {
	return p.Left.Released() || p.Right.Released() || p.Middle.Released()
}
