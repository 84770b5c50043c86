package aspen

// Host is the bounded interactive region a DragInteraction attaches to. It
// reports its current extent and delivers normalized pointer primitives to
// subscribers. Surface is the Ebitengine-backed implementation; tests and
// other front ends supply their own.
type Host interface {
	// Size returns the region's current width and height in local units.
	// The gesture layer reads it fresh at every point computation, so a
	// host may resize mid-gesture.
	Size() (width, height float64)

	// SubscribePointer registers fn to receive pointer primitives. The
	// returned cancel func unsubscribes; calling it more than once is a
	// no-op.
	SubscribePointer(fn func(PointerEvent)) (cancel func())
}

// GestureRecorder is the interface for optional external instrumentation.
// When set on a DragInteraction, every emitted gesture phase is forwarded
// after its callbacks have run.
type GestureRecorder interface {
	RecordGesture(event GestureEvent)
}

// GestureEvent carries one emitted gesture phase for a GestureRecorder.
type GestureEvent struct {
	Type   EventType
	Start  Point
	End    Point
	Source PointerSource
	Button MouseButton
}

// --- Handler registry ---

type dragHandler struct {
	id uint32
	fn func(start, end Point)
}

type dragRegistry struct {
	dragStart []dragHandler
	drag      []dragHandler
	dragEnd   []dragHandler
	scratch   []dragHandler // reusable dispatch snapshot buffer
	nextID    uint32
}

// DragHandle allows removing a registered drag callback.
type DragHandle struct {
	id    uint32
	reg   *dragRegistry
	event EventType
}

// Remove unregisters this callback so it no longer fires. Removing an
// already-removed handle is a no-op.
func (h DragHandle) Remove() {
	if h.reg == nil {
		return
	}
	switch h.event {
	case EventDragStart:
		h.reg.dragStart = removeDragHandler(h.reg.dragStart, h.id)
	case EventDrag:
		h.reg.drag = removeDragHandler(h.reg.drag, h.id)
	case EventDragEnd:
		h.reg.dragEnd = removeDragHandler(h.reg.dragEnd, h.id)
	}
}

func removeDragHandler(s []dragHandler, id uint32) []dragHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = dragHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}

// --- Gesture session ---

// gestureSession tracks one in-flight drag. At most one exists at a time.
type gestureSession struct {
	active   bool
	canceled bool // platform cancel seen; the terminating release is swallowed
	origin   Point
	last     Point
}

// --- DragInteraction ---

// DragInteraction recognizes a single-pointer drag gesture on a Host and
// delivers start/move/end callbacks. Mouse and touch input are unified: a
// primary-button press or a touch inside the host's bounds starts a gesture,
// movement continues it, and a matching release ends it.
//
// All delivery is synchronous on the caller's goroutine; a DragInteraction
// must not be shared across goroutines.
type DragInteraction struct {
	host        Host
	unsubscribe func()

	constrained bool
	sess        gestureSession
	handlers    dragRegistry

	recorder GestureRecorder
	onPanic  func(event EventType, recovered any)
	debug    bool
}

// NewDragInteraction creates a detached DragInteraction. Reported points are
// constrained to the host's extent by default.
func NewDragInteraction() *DragInteraction {
	return &DragInteraction{constrained: true}
}

// Attach subscribes the interaction to host's pointer primitives and resets
// the gesture state. If the interaction is already attached it detaches from
// the previous host first.
func (d *DragInteraction) Attach(host Host) *DragInteraction {
	d.Detach()
	d.host = host
	d.unsubscribe = host.SubscribePointer(d.handlePointer)
	return d
}

// Detach synchronously unsubscribes from the current host and drops any
// in-flight gesture without emitting an end event. No-op when detached.
func (d *DragInteraction) Detach() *DragInteraction {
	if d.unsubscribe != nil {
		d.unsubscribe()
		d.unsubscribe = nil
	}
	d.host = nil
	d.sess = gestureSession{}
	return d
}

// Dragging reports whether a gesture is currently in flight.
func (d *DragInteraction) Dragging() bool {
	return d.sess.active
}

// Constrained reports whether reported points are clamped to the host's
// extent.
func (d *DragInteraction) Constrained() bool {
	return d.constrained
}

// SetConstrained controls clamping of reported points to the host's extent.
// The flag is read at the moment each point is reported, so toggling it
// mid-gesture affects subsequent reports only. Returns the interaction for
// chained configuration.
func (d *DragInteraction) SetConstrained(v bool) *DragInteraction {
	d.constrained = v
	return d
}

// SetRecorder sets the optional instrumentation bridge. Pass nil to disable.
func (d *DragInteraction) SetRecorder(r GestureRecorder) {
	d.recorder = r
}

// SetPanicHandler sets the hook invoked when a callback panics during
// dispatch. The default logs to stderr. Delivery to the remaining callbacks
// continues either way.
func (d *DragInteraction) SetPanicHandler(fn func(event EventType, recovered any)) {
	d.onPanic = fn
}

// --- Event registration ---

// OnDragStart registers a callback for the gesture start phase. Callbacks
// fire in registration order; for the start phase both points equal the
// gesture origin. The same function may be registered more than once; each
// registration is independent.
func (d *DragInteraction) OnDragStart(fn func(start, end Point)) DragHandle {
	d.handlers.nextID++
	id := d.handlers.nextID
	d.handlers.dragStart = append(d.handlers.dragStart, dragHandler{id: id, fn: fn})
	return DragHandle{id: id, reg: &d.handlers, event: EventDragStart}
}

// OnDrag registers a callback fired on every move while a gesture is active,
// with the gesture origin and the current (possibly constrained) point.
func (d *DragInteraction) OnDrag(fn func(start, end Point)) DragHandle {
	d.handlers.nextID++
	id := d.handlers.nextID
	d.handlers.drag = append(d.handlers.drag, dragHandler{id: id, fn: fn})
	return DragHandle{id: id, reg: &d.handlers, event: EventDrag}
}

// OnDragEnd registers a callback fired when a gesture completes normally,
// with the gesture origin and the final (possibly constrained) point. A
// platform cancellation does not fire it.
func (d *DragInteraction) OnDragEnd(fn func(start, end Point)) DragHandle {
	d.handlers.nextID++
	id := d.handlers.nextID
	d.handlers.dragEnd = append(d.handlers.dragEnd, dragHandler{id: id, fn: fn})
	return DragHandle{id: id, reg: &d.handlers, event: EventDragEnd}
}

// --- State machine ---

// handlePointer is the single entry point for host primitives.
func (d *DragInteraction) handlePointer(ev PointerEvent) {
	if d.host == nil {
		return
	}
	switch ev.Phase {
	case PhaseDown:
		d.pointerDown(ev)
	case PhaseMove:
		d.pointerMove(ev)
	case PhaseUp:
		d.pointerUp(ev)
	case PhaseCancel:
		d.pointerCancel()
	}
}

func (d *DragInteraction) pointerDown(ev PointerEvent) {
	// Touch primitives have no button concept and are never filtered here.
	if ev.Source == SourceMouse && ev.Button != MouseButtonLeft {
		d.debugLog("press rejected: non-primary button %d at (%g,%g)", ev.Button, ev.Point.X, ev.Point.Y)
		return
	}
	w, h := d.host.Size()
	if !(Rect{Width: w, Height: h}).Contains(ev.Point.X, ev.Point.Y) {
		d.debugLog("press rejected: (%g,%g) outside %gx%g", ev.Point.X, ev.Point.Y, w, h)
		return
	}

	// A qualifying press while a gesture is active supersedes it: the old
	// session is discarded without a DragEnd.
	d.sess = gestureSession{active: true, origin: ev.Point, last: ev.Point}
	d.fire(EventDragStart, ev.Point, ev.Point, ev.Source, ev.Button)
}

func (d *DragInteraction) pointerMove(ev PointerEvent) {
	if !d.sess.active {
		return
	}
	p := d.reportPoint(ev.Point)
	d.sess.last = p
	d.fire(EventDrag, d.sess.origin, p, ev.Source, ev.Button)
}

func (d *DragInteraction) pointerUp(ev PointerEvent) {
	if !d.sess.active {
		return
	}
	if d.sess.canceled {
		// Stray release after a platform cancel. Swallowing it avoids a
		// spurious DragEnd at the release coordinates; lastPoint stays
		// pinned to the last genuine move.
		d.debugLog("release swallowed after cancel at (%g,%g)", ev.Point.X, ev.Point.Y)
		return
	}
	if ev.Source == SourceMouse && ev.Button != MouseButtonLeft {
		return
	}
	p := d.reportPoint(ev.Point)
	origin := d.sess.origin
	d.sess = gestureSession{}
	d.fire(EventDragEnd, origin, p, ev.Source, ev.Button)
}

func (d *DragInteraction) pointerCancel() {
	if !d.sess.active {
		return
	}
	d.sess.canceled = true
	d.debugLog("gesture canceled; last point (%g,%g)", d.sess.last.X, d.sess.last.Y)
}

// reportPoint applies the constraint policy to a raw point. The flag and the
// host extent are both read at call time, not cached per gesture.
func (d *DragInteraction) reportPoint(p Point) Point {
	if !d.constrained {
		return p
	}
	w, h := d.host.Size()
	return Point{X: clamp(p.X, 0, w), Y: clamp(p.Y, 0, h)}
}

// --- Dispatch ---

// fire delivers one gesture phase to its registered callbacks, in
// registration order, over a stable snapshot: registering or removing a
// callback from inside a callback does not affect the in-flight delivery.
func (d *DragInteraction) fire(event EventType, start, end Point, src PointerSource, btn MouseButton) {
	var list []dragHandler
	switch event {
	case EventDragStart:
		list = d.handlers.dragStart
	case EventDrag:
		list = d.handlers.drag
	case EventDragEnd:
		list = d.handlers.dragEnd
	}

	d.debugLog("%s start=(%g,%g) end=(%g,%g)", event, start.X, start.Y, end.X, end.Y)

	snap := d.handlers.scratch[:0]
	d.handlers.scratch = nil // reentrant dispatch allocates its own buffer
	snap = append(snap, list...)
	for _, h := range snap {
		d.invoke(event, h.fn, start, end)
	}
	d.handlers.scratch = snap[:0]

	if d.recorder != nil {
		d.recorder.RecordGesture(GestureEvent{
			Type:   event,
			Start:  start,
			End:    end,
			Source: src,
			Button: btn,
		})
	}
}

// invoke runs a single callback, isolating panics so one broken observer
// cannot suppress delivery to the others.
func (d *DragInteraction) invoke(event EventType, fn func(start, end Point), start, end Point) {
	defer func() {
		if r := recover(); r != nil {
			if d.onPanic != nil {
				d.onPanic(event, r)
			} else {
				defaultPanicLog(event, r)
			}
		}
	}()
	fn(start, end)
}
