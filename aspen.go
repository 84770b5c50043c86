package aspen

// Point is a position in the host surface's local coordinate space: origin at
// the top-left, X increasing right, Y increasing downward. Points have no
// identity beyond value equality.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle in local coordinates.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// MouseButton identifies a mouse button on mouse-sourced pointer events.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)

// PointerPhase identifies which pointer primitive a PointerEvent carries.
type PointerPhase uint8

const (
	PhaseDown   PointerPhase = iota // button pressed / touch began
	PhaseMove                       // pointer moved
	PhaseUp                         // button released / touch ended
	PhaseCancel                     // gesture aborted by the platform (touch cancel)
)

// PointerSource distinguishes mouse-sourced from touch-sourced primitives.
// Touch events have no button concept; Button is only meaningful when the
// source is SourceMouse.
type PointerSource uint8

const (
	SourceMouse PointerSource = iota
	SourceTouch
)

// PointerEvent is the normalized input primitive delivered by a Host. It
// abstracts over mouse and touch so the gesture state machine never branches
// on the source except for the mouse button filter.
type PointerEvent struct {
	Phase  PointerPhase
	Point  Point
	Source PointerSource
	Button MouseButton // valid for PhaseDown/PhaseUp when Source == SourceMouse
}

// EventType identifies a drag gesture phase.
type EventType uint8

const (
	EventDragStart EventType = iota // fires when a qualifying press begins a gesture
	EventDrag                       // fires on every move while a gesture is active
	EventDragEnd                    // fires when the gesture completes normally
)

// String returns the phase name, for debug logging.
func (e EventType) String() string {
	switch e {
	case EventDragStart:
		return "dragstart"
	case EventDrag:
		return "drag"
	case EventDragEnd:
		return "dragend"
	default:
		return "unknown"
	}
}

// clamp restricts v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
