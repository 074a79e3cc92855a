package gui

// Response describes the outcome of one button call.
type Response struct {
	Hover   bool // Pointer is over the widget this frame
	Active  bool // Widget holds the press
	Clicked bool // Press and release both happened over the widget; true on the release tick only
}

// Color returns the color the widget is drawn with.
// Hover wins over active-but-not-hovered; anything else uses the text color.
func (r Response) Color() Vec4 {
	switch {
	case r.Hover:
		return ColorHover
	case r.Active:
		return ColorActive
	default:
		return ColorText
	}
}

// Registers is the only interaction state that survives between frames:
// the hot widget (under the pointer) and the active widget (holding a press).
// An empty register holds NoID.
type Registers struct {
	hot    ID
	active ID

	// Set when the widget owning a register is issued during the frame.
	hotSeen    bool
	activeSeen bool
}

// Hot returns the widget currently under the pointer.
func (r *Registers) Hot() ID { return r.hot }

// Active returns the widget currently holding a press.
func (r *Registers) Active() ID { return r.active }

// Interact runs the hot/active state machine for one button-style widget.
//
// Hover is resolved first: a widget containing the pointer takes the hot
// register (the last such widget in call order wins), and a hot widget the
// pointer has left gives it up. Then:
//
//   - the active widget reports Active; on a release edge it reports Clicked
//     if it is still hot, and the active register is cleared either way.
//   - otherwise a hot widget that sees a press edge becomes active.
func (r *Registers) Interact(id ID, rect Rect, pointer PointerState) Response {
	var resp Response

	if id == r.hot {
		r.hotSeen = true
	}
	if id == r.active {
		r.activeSeen = true
	}

	if rect.Contains(pointer.Pos) {
		resp.Hover = true
		r.hot = id
		r.hotSeen = true
	} else if r.hot == id {
		r.hot = NoID
	}

	if r.active == id {
		resp.Active = true

		if pointer.Released() {
			if r.hot == id {
				resp.Clicked = true
				if verbose() {
					logger.Debug("click", "id", id, "pos", pointer.Pos)
				}
			} else if verbose() {
				logger.Debug("release outside, click dropped", "id", id, "pos", pointer.Pos)
			}
			r.active = NoID
		}
	} else if r.hot == id && pointer.Pressed() {
		resp.Active = true
		if verbose() && !r.active.IsNone() {
			logger.Debug("active replaced", "from", r.active, "to", id)
		}
		r.active = id
		r.activeSeen = true
	}

	return resp
}

// beginFrame drops registers whose widget was not issued during the previous
// frame and starts tracking the new one.
func (r *Registers) beginFrame() {
	if !r.hotSeen && !r.hot.IsNone() {
		if verbose() {
			logger.Debug("stale hot cleared", "id", r.hot)
		}
		r.hot = NoID
	}
	if !r.activeSeen && !r.active.IsNone() {
		if verbose() {
			logger.Debug("stale active cleared", "id", r.active)
		}
		r.active = NoID
	}
	r.hotSeen = false
	r.activeSeen = false
}
