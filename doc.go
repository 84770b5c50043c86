// Package aspen provides device-independent pointer gesture recognition for
// interactive charts built on [Ebitengine].
//
// Aspen converts raw mouse and touch input into a uniform drag gesture with
// three phases — start, move, end — delivered to registered observers. It is
// the input layer of a charting stack: rendering, axis layout, and hit
// regions live elsewhere and consume aspen's callbacks.
//
// # Quick start
//
// Attach a [DragInteraction] to a [Surface] (or any [Host]) and register
// callbacks for the phases you care about:
//
//	surface := aspen.NewSurface(400, 400)
//	drag := aspen.NewDragInteraction()
//	drag.Attach(surface)
//
//	drag.OnDrag(func(start, end aspen.Point) {
//		// pan the chart by end-start
//	})
//
// Call [Surface.Update] once per Ebitengine tick to poll input. Reported
// points are clamped to the surface's extent by default; disable with
// [DragInteraction.SetConstrained]:
//
//	drag.SetConstrained(false)
//
// # Gesture model
//
// A single pointer is tracked at a time. A primary-button press (or touch)
// inside the host's bounds starts a gesture; presses outside the bounds or
// with a secondary mouse button are ignored. A platform touch cancellation
// abandons the gesture mid-flight: no end event fires, and the stray release
// that some touch sequences emit afterwards is swallowed.
//
// # Viewport
//
// [Viewport] is an optional consumer that maps chart data space to surface
// space and pans itself from drag callbacks, with eased programmatic
// scrolling (via [gween]):
//
//	vp := aspen.NewViewport()
//	vp.BindDrag(drag)
//	vp.ScrollTo(120, 0, 0.4, ease.OutQuad)
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package aspen
