package aspen

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

const epsilon = 1e-6

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

func TestViewportDefaults(t *testing.T) {
	vp := NewViewport(800, 600)
	if vp.Zoom != 1.0 {
		t.Errorf("Zoom = %f, want 1.0", vp.Zoom)
	}
	if vp.X != 0 || vp.Y != 0 {
		t.Errorf("origin = (%f,%f), want (0,0)", vp.X, vp.Y)
	}
	if vp.BoundsEnabled {
		t.Error("BoundsEnabled = true, want false")
	}
}

func TestDataSurfaceRoundtrip(t *testing.T) {
	vp := NewViewport(800, 600)
	vp.X = 42
	vp.Y = -17
	vp.Zoom = 1.5

	origDX, origDY := 123.0, -456.0
	sx, sy := vp.DataToSurface(origDX, origDY)
	dx, dy := vp.SurfaceToData(sx, sy)

	if !approxEqual(dx, origDX, epsilon) || !approxEqual(dy, origDY, epsilon) {
		t.Errorf("roundtrip: got (%f,%f), want (%f,%f)", dx, dy, origDX, origDY)
	}
}

func TestDataToSurfaceZoom(t *testing.T) {
	vp := NewViewport(800, 600)
	vp.Zoom = 2.0

	// At zoom 2, one data unit spans two surface pixels.
	sx1, _ := vp.DataToSurface(1, 0)
	sx0, _ := vp.DataToSurface(0, 0)
	if !approxEqual(sx1-sx0, 2.0, epsilon) {
		t.Errorf("zoom 2x: 1 data unit = %f surface pixels, want 2.0", sx1-sx0)
	}
}

// --- Drag-driven panning ---

func TestBindDragPans(t *testing.T) {
	host := newFakeHost(400, 400)
	d := NewDragInteraction()
	d.Attach(host)

	vp := NewViewport(400, 400)
	vp.BindDrag(d)

	host.mouseDown(100, 100, MouseButtonLeft)
	host.mouseMove(150, 130)

	// Dragging right/down by (50,30) moves the data window left/up.
	if !approxEqual(vp.X, -50, epsilon) || !approxEqual(vp.Y, -30, epsilon) {
		t.Errorf("pan = (%f,%f), want (-50,-30)", vp.X, vp.Y)
	}

	host.mouseUp(200, 200, MouseButtonLeft)
	if !approxEqual(vp.X, -100, epsilon) || !approxEqual(vp.Y, -100, epsilon) {
		t.Errorf("final pan = (%f,%f), want (-100,-100)", vp.X, vp.Y)
	}
}

func TestBindDragPanScalesWithZoom(t *testing.T) {
	host := newFakeHost(400, 400)
	d := NewDragInteraction()
	d.Attach(host)

	vp := NewViewport(400, 400)
	vp.Zoom = 2.0
	vp.BindDrag(d)

	host.mouseDown(100, 100, MouseButtonLeft)
	host.mouseMove(150, 100)

	// 50 surface pixels at zoom 2 is 25 data units.
	if !approxEqual(vp.X, -25, epsilon) {
		t.Errorf("pan X = %f, want -25", vp.X)
	}
}

func TestBindDragAccumulatesAcrossGestures(t *testing.T) {
	host := newFakeHost(400, 400)
	d := NewDragInteraction()
	d.Attach(host)

	vp := NewViewport(400, 400)
	vp.BindDrag(d)

	host.mouseDown(100, 100, MouseButtonLeft)
	host.mouseUp(150, 100, MouseButtonLeft)
	host.mouseDown(100, 100, MouseButtonLeft)
	host.mouseUp(150, 100, MouseButtonLeft)

	if !approxEqual(vp.X, -100, epsilon) {
		t.Errorf("two 50px pans = %f, want -100", vp.X)
	}
}

func TestBindDragRemove(t *testing.T) {
	host := newFakeHost(400, 400)
	d := NewDragInteraction()
	d.Attach(host)

	vp := NewViewport(400, 400)
	remove := vp.BindDrag(d)
	remove()

	host.mouseDown(100, 100, MouseButtonLeft)
	host.mouseMove(200, 200)
	host.mouseUp(200, 200, MouseButtonLeft)

	if vp.X != 0 || vp.Y != 0 {
		t.Errorf("unbound viewport moved to (%f,%f)", vp.X, vp.Y)
	}
}

// --- Programmatic scrolling ---

func TestScrollToLinear(t *testing.T) {
	vp := NewViewport(400, 400)
	vp.ScrollTo(100, -40, 1.0, ease.Linear)

	vp.Update(0.5)
	if !approxEqual(vp.X, 50, 1e-3) || !approxEqual(vp.Y, -20, 1e-3) {
		t.Errorf("halfway = (%f,%f), want (50,-20)", vp.X, vp.Y)
	}

	vp.Update(0.6) // overshoot clamps at the target
	if !approxEqual(vp.X, 100, 1e-3) || !approxEqual(vp.Y, -40, 1e-3) {
		t.Errorf("final = (%f,%f), want (100,-40)", vp.X, vp.Y)
	}
	if vp.scrollTween != nil {
		t.Error("finished tween should be cleared")
	}
}

func TestDragCancelsScroll(t *testing.T) {
	host := newFakeHost(400, 400)
	d := NewDragInteraction()
	d.Attach(host)

	vp := NewViewport(400, 400)
	vp.BindDrag(d)
	vp.ScrollTo(500, 500, 2.0, ease.OutQuad)

	host.mouseDown(100, 100, MouseButtonLeft)
	if vp.scrollTween != nil {
		t.Error("starting a gesture should cancel programmatic scrolling")
	}
}

// --- Bounds ---

func TestViewportBoundsClamping(t *testing.T) {
	vp := NewViewport(400, 400)
	vp.SetBounds(Rect{X: 0, Y: 0, Width: 1000, Height: 1000})

	vp.X = -50
	vp.Y = 900
	vp.Update(0)

	if vp.X != 0 {
		t.Errorf("X = %f, want clamped to 0", vp.X)
	}
	// Visible window is 400 tall, so the origin may reach at most 600.
	if vp.Y != 600 {
		t.Errorf("Y = %f, want clamped to 600", vp.Y)
	}
}

func TestViewportBoundsSmallerThanWindowCenters(t *testing.T) {
	vp := NewViewport(400, 400)
	vp.SetBounds(Rect{X: 0, Y: 0, Width: 200, Height: 200})

	vp.X = 500
	vp.Update(0)

	// Bounds narrower than the visible window: center on that axis.
	if !approxEqual(vp.X, -100, epsilon) {
		t.Errorf("X = %f, want centered at -100", vp.X)
	}
}

func TestViewportClearBounds(t *testing.T) {
	vp := NewViewport(400, 400)
	vp.SetBounds(Rect{Width: 100, Height: 100})
	vp.ClearBounds()

	vp.X = 5000
	vp.Update(0)
	if vp.X != 5000 {
		t.Errorf("X = %f, clamping should be disabled", vp.X)
	}
}

func TestBindDragRespectsBounds(t *testing.T) {
	host := newFakeHost(400, 400)
	d := NewDragInteraction()
	d.Attach(host)

	vp := NewViewport(400, 400)
	vp.SetBounds(Rect{X: 0, Y: 0, Width: 1000, Height: 1000})
	vp.BindDrag(d)

	host.mouseDown(300, 300, MouseButtonLeft)
	host.mouseMove(400, 400) // pans toward negative origin

	if vp.X != 0 || vp.Y != 0 {
		t.Errorf("bounded pan = (%f,%f), want (0,0)", vp.X, vp.Y)
	}
}
