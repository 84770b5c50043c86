package aspen

import (
	"github.com/hajimehoshi/ebiten/v2"
)

type pointerSub struct {
	id uint32
	fn func(PointerEvent)
}

// Surface is an Ebitengine-backed Host. It owns the interactive region's
// extent and polls mouse and touch state once per tick, synthesizing
// normalized pointer primitives for subscribers.
//
// Only a single pointer is tracked: the mouse, or the first touch. A second
// concurrent touch emits PhaseCancel and suppresses the gesture until all
// fingers lift; the tracked touch's eventual release still produces the
// terminating PhaseUp, which DragInteraction swallows after a cancel.
type Surface struct {
	width, height float64

	subs   []pointerSub
	nextID uint32

	// Mouse state. The button is captured at press time so the release
	// reports the button that started the interaction.
	mousePolled bool // first poll seeds the position without a move
	mouseDown   bool
	mouseButton MouseButton
	mouseX      float64
	mouseY      float64

	// Touch state.
	touchActive   bool
	touchID       ebiten.TouchID
	touchX        float64
	touchY        float64
	touchCanceled bool // multi-finger seen; suppress until all fingers lift

	touchIDBuf []ebiten.TouchID
	touchBuf   []touchSample
}

// NewSurface creates a Surface with the given extent.
func NewSurface(width, height float64) *Surface {
	return &Surface{width: width, height: height}
}

// Size returns the surface's current extent.
func (s *Surface) Size() (width, height float64) {
	return s.width, s.height
}

// Resize updates the surface's extent. Takes effect immediately, including
// for the constraint clamping of a gesture already in flight.
func (s *Surface) Resize(width, height float64) {
	s.width = width
	s.height = height
}

// SubscribePointer registers fn to receive pointer primitives. The returned
// cancel func unsubscribes; calling it more than once is a no-op.
func (s *Surface) SubscribePointer(fn func(PointerEvent)) (cancel func()) {
	s.nextID++
	id := s.nextID
	s.subs = append(s.subs, pointerSub{id: id, fn: fn})
	return func() {
		for i := range s.subs {
			if s.subs[i].id == id {
				copy(s.subs[i:], s.subs[i+1:])
				s.subs[len(s.subs)-1] = pointerSub{}
				s.subs = s.subs[:len(s.subs)-1]
				return
			}
		}
	}
}

func (s *Surface) emit(ev PointerEvent) {
	for _, sub := range s.subs {
		sub.fn(ev)
	}
}

// pollSample is one tick's worth of raw input state, separated from the
// synthesis logic so it can be tested without a display.
type pollSample struct {
	mouseX, mouseY float64
	mousePressed   bool
	mouseButton    MouseButton
	touches        []touchSample
}

type touchSample struct {
	id   ebiten.TouchID
	x, y float64
}

// Update polls Ebitengine input once and synthesizes pointer primitives for
// subscribers. Call it once per tick from your game's Update.
func (s *Surface) Update() {
	var sample pollSample

	mx, my := ebiten.CursorPosition()
	sample.mouseX, sample.mouseY = float64(mx), float64(my)

	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	right := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	middle := ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle)
	if left || right || middle {
		sample.mousePressed = true
		switch {
		case left:
			sample.mouseButton = MouseButtonLeft
		case right:
			sample.mouseButton = MouseButtonRight
		default:
			sample.mouseButton = MouseButtonMiddle
		}
	}

	s.touchIDBuf = ebiten.AppendTouchIDs(s.touchIDBuf[:0])
	s.touchBuf = s.touchBuf[:0]
	for _, tid := range s.touchIDBuf {
		tx, ty := ebiten.TouchPosition(tid)
		s.touchBuf = append(s.touchBuf, touchSample{id: tid, x: float64(tx), y: float64(ty)})
	}
	sample.touches = s.touchBuf

	s.step(sample)
}

// step advances the synthesis state machine by one polled sample.
func (s *Surface) step(sample pollSample) {
	s.stepMouse(sample)
	s.stepTouch(sample.touches)
}

func (s *Surface) stepMouse(sample pollSample) {
	p := Point{X: sample.mouseX, Y: sample.mouseY}
	moved := s.mousePolled && (p.X != s.mouseX || p.Y != s.mouseY)
	s.mousePolled = true
	s.mouseX = p.X
	s.mouseY = p.Y

	if moved {
		s.emit(PointerEvent{Phase: PhaseMove, Point: p, Source: SourceMouse})
	}

	switch {
	case sample.mousePressed && !s.mouseDown:
		s.mouseDown = true
		s.mouseButton = sample.mouseButton
		s.emit(PointerEvent{Phase: PhaseDown, Point: p, Source: SourceMouse, Button: s.mouseButton})
	case !sample.mousePressed && s.mouseDown:
		s.mouseDown = false
		s.emit(PointerEvent{Phase: PhaseUp, Point: p, Source: SourceMouse, Button: s.mouseButton})
	}
}

func (s *Surface) stepTouch(touches []touchSample) {
	if !s.touchActive {
		if len(touches) == 0 {
			s.touchCanceled = false
			return
		}
		if s.touchCanceled || len(touches) > 1 {
			// Leftover or multi-finger contact; wait for all fingers to lift.
			s.touchCanceled = true
			return
		}
		t := touches[0]
		s.touchActive = true
		s.touchID = t.id
		s.touchX, s.touchY = t.x, t.y
		s.emit(PointerEvent{Phase: PhaseDown, Point: Point{X: t.x, Y: t.y}, Source: SourceTouch})
		return
	}

	for i := range touches {
		if touches[i].id != s.touchID {
			continue
		}
		t := touches[i]
		if t.x != s.touchX || t.y != s.touchY {
			s.touchX, s.touchY = t.x, t.y
			s.emit(PointerEvent{Phase: PhaseMove, Point: Point{X: t.x, Y: t.y}, Source: SourceTouch})
		}
		if len(touches) > 1 && !s.touchCanceled {
			// Single-pointer model: a second finger abandons the gesture.
			// The genuine move above is reported first so the last point
			// stays accurate.
			s.touchCanceled = true
			s.emit(PointerEvent{Phase: PhaseCancel, Point: Point{X: s.touchX, Y: s.touchY}, Source: SourceTouch})
		}
		return
	}

	// Tracked touch lifted: terminating release at its last position.
	s.touchActive = false
	s.emit(PointerEvent{Phase: PhaseUp, Point: Point{X: s.touchX, Y: s.touchY}, Source: SourceTouch})
	if len(touches) == 0 {
		s.touchCanceled = false
	}
}
