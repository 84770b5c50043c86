package aspen

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// scrollAnim holds active scroll-to tweens for viewport X and Y.
type scrollAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
}

// Viewport maps chart data space to surface space. X and Y are the
// data-space position visible at the surface's top-left corner; Zoom is the
// surface-pixels-per-data-unit scale factor.
//
// A Viewport is a consumer of drag gestures: bind one to a DragInteraction
// with BindDrag and dragging pans the visible data window.
type Viewport struct {
	X, Y float64
	Zoom float64

	// ViewWidth and ViewHeight are the surface extent in pixels, used for
	// bounds clamping.
	ViewWidth, ViewHeight float64

	// BoundsEnabled clamps the viewport so the visible data window stays
	// within Bounds.
	BoundsEnabled bool
	// Bounds is the data-space rectangle the visible window is clamped to
	// when BoundsEnabled is true.
	Bounds Rect

	scrollTween *scrollAnim

	panning              bool
	panStartX, panStartY float64
}

// NewViewport creates a Viewport at the data origin with the given surface
// extent and a zoom of 1.
func NewViewport(viewWidth, viewHeight float64) *Viewport {
	return &Viewport{
		Zoom:       1.0,
		ViewWidth:  viewWidth,
		ViewHeight: viewHeight,
	}
}

// DataToSurface converts a data-space position to surface coordinates.
func (v *Viewport) DataToSurface(dx, dy float64) (sx, sy float64) {
	return (dx - v.X) * v.Zoom, (dy - v.Y) * v.Zoom
}

// SurfaceToData converts a surface position to data-space coordinates.
func (v *Viewport) SurfaceToData(sx, sy float64) (dx, dy float64) {
	return v.X + sx/v.Zoom, v.Y + sy/v.Zoom
}

// BindDrag registers start/move/end callbacks on d so that dragging pans the
// viewport: the data under the pointer follows the pointer. The returned
// func removes all three callbacks.
func (v *Viewport) BindDrag(d *DragInteraction) (remove func()) {
	hStart := d.OnDragStart(func(start, end Point) {
		v.panning = true
		v.panStartX = v.X
		v.panStartY = v.Y
		v.scrollTween = nil // a gesture overrides programmatic scrolling
	})
	hDrag := d.OnDrag(func(start, end Point) {
		v.panBy(end.X-start.X, end.Y-start.Y)
	})
	hEnd := d.OnDragEnd(func(start, end Point) {
		v.panBy(end.X-start.X, end.Y-start.Y)
		v.panning = false
	})
	return func() {
		hStart.Remove()
		hDrag.Remove()
		hEnd.Remove()
	}
}

// panBy offsets the viewport from the pan anchor by a surface-space delta.
func (v *Viewport) panBy(dx, dy float64) {
	if !v.panning {
		return
	}
	v.X = v.panStartX - dx/v.Zoom
	v.Y = v.panStartY - dy/v.Zoom
	if v.BoundsEnabled {
		v.clampToBounds()
	}
}

// ScrollTo animates the viewport origin to the given data position over
// duration seconds.
func (v *Viewport) ScrollTo(x, y float64, duration float32, easeFn ease.TweenFunc) {
	v.scrollTween = &scrollAnim{
		tweenX: gween.New(float32(v.X), float32(x), duration, easeFn),
		tweenY: gween.New(float32(v.Y), float32(y), duration, easeFn),
	}
}

// SetBounds enables viewport bounds clamping.
func (v *Viewport) SetBounds(bounds Rect) {
	v.BoundsEnabled = true
	v.Bounds = bounds
}

// ClearBounds disables viewport bounds clamping.
func (v *Viewport) ClearBounds() {
	v.BoundsEnabled = false
}

// Update advances the scroll animation and applies bounds clamping. Call it
// once per tick with the tick duration in seconds.
func (v *Viewport) Update(dt float32) {
	if v.scrollTween != nil {
		if !v.scrollTween.doneX {
			val, done := v.scrollTween.tweenX.Update(dt)
			v.X = float64(val)
			v.scrollTween.doneX = done
		}
		if !v.scrollTween.doneY {
			val, done := v.scrollTween.tweenY.Update(dt)
			v.Y = float64(val)
			v.scrollTween.doneY = done
		}
		if v.scrollTween.doneX && v.scrollTween.doneY {
			v.scrollTween = nil
		}
	}

	if v.BoundsEnabled {
		v.clampToBounds()
	}
}

// clampToBounds restricts the viewport so the visible data window stays
// within Bounds. If the bounds are smaller than the visible window on an
// axis, the window is centered on that axis.
func (v *Viewport) clampToBounds() {
	visW := v.ViewWidth / v.Zoom
	visH := v.ViewHeight / v.Zoom

	maxX := v.Bounds.X + v.Bounds.Width - visW
	maxY := v.Bounds.Y + v.Bounds.Height - visH

	if maxX < v.Bounds.X {
		v.X = v.Bounds.X + (v.Bounds.Width-visW)/2
	} else {
		v.X = clamp(v.X, v.Bounds.X, maxX)
	}
	if maxY < v.Bounds.Y {
		v.Y = v.Bounds.Y + (v.Bounds.Height-visH)/2
	} else {
		v.Y = clamp(v.Y, v.Bounds.Y, maxY)
	}
}
