package drift

import (
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	tapDeadZone     = 4.0 // pixels of movement before a press stops counting as a tap
	doubleTapWindow = 300 * time.Millisecond
	wheelZoomStep   = 0.1 // relative zoom per wheel notch
)

// Recognizer polls Ebitengine input each tick and drives a [Camera] with
// gesture events: single-finger or mouse drags pan, two-finger gestures
// pan, pinch, and rotate simultaneously, the mouse wheel pinches about the
// cursor, and a quick double tap (or double click) resets the camera.
//
// The recognizer emits per-event deltas only, matching what the camera's
// handlers expect. Hosts that do their own gesture recognition can skip it
// and call the Handle methods directly.
type Recognizer struct {
	cam *Camera

	touchIDs  []ebiten.TouchID
	prevTouch map[ebiten.TouchID]Vec2

	// single-pointer drag state, shared by mouse and one-finger touch
	dragging   bool
	lastX      float64
	lastY      float64
	pressX     float64
	pressY     float64
	moved      bool
	velX, velY float64

	mouseDown bool

	// two-finger state
	twoFinger bool
	prevCX    float64
	prevCY    float64
	prevDist  float64
	prevAngle float64
	scaleVel  float64
	rotVel    float64

	lastTap time.Time

	clock func() time.Time
}

// NewRecognizer creates a Recognizer driving cam.
func NewRecognizer(cam *Camera) *Recognizer {
	return &Recognizer{
		cam:       cam,
		prevTouch: make(map[ebiten.TouchID]Vec2),
		clock:     time.Now,
	}
}

// Update polls input and feeds gesture events to the camera. Call once per
// tick, before [Camera.Update].
func (r *Recognizer) Update() {
	r.touchIDs = ebiten.AppendTouchIDs(r.touchIDs[:0])
	if len(r.touchIDs) > 0 {
		r.updateTouch()
	} else {
		r.endTouchGestures()
		r.updateMouse()
	}
	r.pruneTouches()
}

// --- Mouse ---

func (r *Recognizer) updateMouse() {
	mx, my := ebiten.CursorPosition()
	x, y := float64(mx), float64(my)
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)

	switch {
	case pressed && !r.mouseDown:
		r.mouseDown = true
		r.beginDrag(x, y)
	case pressed && r.mouseDown:
		r.moveDrag(x, y)
	case !pressed && r.mouseDown:
		r.mouseDown = false
		r.endDrag(x, y)
	}

	if _, wy := ebiten.Wheel(); wy != 0 {
		// Scroll up zooms in: spreading factor above 1, like a pinch-out.
		factor := 1 + wy*wheelZoomStep
		if factor > 0 {
			pivot := Vec2{X: x, Y: y}
			r.cam.HandlePinch(PinchEvent{Phase: GestureBegan, Pivot: pivot})
			r.cam.HandlePinch(PinchEvent{Phase: GestureChanged, Pivot: pivot, ScaleFactor: factor})
			r.cam.HandlePinch(PinchEvent{Phase: GestureEnded})
		}
	}
}

// --- Touch ---

func (r *Recognizer) updateTouch() {
	if len(r.touchIDs) >= 2 {
		r.updateTwoFinger()
		return
	}
	r.endTwoFinger()

	id := r.touchIDs[0]
	tx, ty := ebiten.TouchPosition(id)
	x, y := float64(tx), float64(ty)

	if _, known := r.prevTouch[id]; !known || !r.dragging {
		r.beginDrag(x, y)
	} else {
		r.moveDrag(x, y)
	}
	r.prevTouch[id] = Vec2{X: x, Y: y}
}

func (r *Recognizer) updateTwoFinger() {
	r.endSingleDrag()

	id0, id1 := r.touchIDs[0], r.touchIDs[1]
	x0, y0 := ebiten.TouchPosition(id0)
	x1, y1 := ebiten.TouchPosition(id1)
	p0 := Vec2{X: float64(x0), Y: float64(y0)}
	p1 := Vec2{X: float64(x1), Y: float64(y1)}
	r.prevTouch[id0] = p0
	r.prevTouch[id1] = p1

	cx := (p0.X + p1.X) / 2
	cy := (p0.Y + p1.Y) / 2
	dist := math.Hypot(p1.X-p0.X, p1.Y-p0.Y)
	angle := math.Atan2(p1.Y-p0.Y, p1.X-p0.X)
	pivot := Vec2{X: cx, Y: cy}

	if !r.twoFinger {
		r.twoFinger = true
		r.cam.InputBegan()
		r.cam.HandlePan(PanEvent{Phase: GestureBegan})
		r.cam.HandlePinch(PinchEvent{Phase: GestureBegan, Pivot: pivot})
		r.cam.HandleRotate(RotateEvent{Phase: GestureBegan, Pivot: pivot})
		r.velX, r.velY = 0, 0
		r.scaleVel, r.rotVel = 0, 0
	} else {
		tps := float64(ebiten.TPS())

		if dx, dy := cx-r.prevCX, cy-r.prevCY; dx != 0 || dy != 0 {
			r.cam.HandlePan(PanEvent{Phase: GestureChanged, Delta: Vec2{X: dx, Y: dy}})
			r.velX, r.velY = dx*tps, dy*tps
		}

		if factor := pinchFactor(r.prevDist, dist); factor != 1 {
			r.cam.HandlePinch(PinchEvent{Phase: GestureChanged, Pivot: pivot, ScaleFactor: factor})
			r.scaleVel = (factor - 1) * tps
		}

		if delta := angleDelta(r.prevAngle, angle); delta != 0 {
			r.cam.HandleRotate(RotateEvent{Phase: GestureChanged, Pivot: pivot, Delta: delta})
			r.rotVel = delta * tps
		}
	}

	r.prevCX, r.prevCY = cx, cy
	r.prevDist, r.prevAngle = dist, angle
}

func (r *Recognizer) endTwoFinger() {
	if !r.twoFinger {
		return
	}
	r.twoFinger = false
	r.cam.HandlePan(PanEvent{Phase: GestureEnded, Velocity: Vec2{X: r.velX, Y: r.velY}})
	r.cam.HandlePinch(PinchEvent{Phase: GestureEnded, Velocity: r.scaleVel})
	r.cam.HandleRotate(RotateEvent{Phase: GestureEnded, Velocity: r.rotVel})
}

func (r *Recognizer) endTouchGestures() {
	r.endTwoFinger()
	if r.dragging && !r.mouseDown {
		r.endDrag(r.lastX, r.lastY)
	}
}

// pruneTouches drops cached positions for touches that have lifted.
func (r *Recognizer) pruneTouches() {
	for id := range r.prevTouch {
		live := false
		for _, active := range r.touchIDs {
			if id == active {
				live = true
				break
			}
		}
		if !live {
			delete(r.prevTouch, id)
		}
	}
}

// endSingleDrag hands an in-progress one-pointer drag over to a two-finger
// session. No tap bookkeeping: a second finger joining is never a tap.
func (r *Recognizer) endSingleDrag() {
	if !r.dragging {
		return
	}
	r.dragging = false
	r.cam.HandlePan(PanEvent{Phase: GestureEnded, Velocity: Vec2{X: r.velX, Y: r.velY}})
}

// --- Shared single-pointer drag ---

func (r *Recognizer) beginDrag(x, y float64) {
	r.dragging = true
	r.moved = false
	r.pressX, r.pressY = x, y
	r.lastX, r.lastY = x, y
	r.velX, r.velY = 0, 0
	r.cam.InputBegan()
	r.cam.HandlePan(PanEvent{Phase: GestureBegan})
}

func (r *Recognizer) moveDrag(x, y float64) {
	dx, dy := x-r.lastX, y-r.lastY
	if dx != 0 || dy != 0 {
		r.cam.HandlePan(PanEvent{Phase: GestureChanged, Delta: Vec2{X: dx, Y: dy}})
		tps := float64(ebiten.TPS())
		r.velX, r.velY = dx*tps, dy*tps
		if math.Hypot(x-r.pressX, y-r.pressY) > tapDeadZone {
			r.moved = true
		}
	}
	r.lastX, r.lastY = x, y
}

func (r *Recognizer) endDrag(x, y float64) {
	if !r.dragging {
		return
	}
	r.dragging = false
	r.cam.HandlePan(PanEvent{Phase: GestureEnded, Velocity: Vec2{X: r.velX, Y: r.velY}})

	if !r.moved {
		now := r.clock()
		if now.Sub(r.lastTap) < doubleTapWindow {
			r.lastTap = time.Time{}
			r.cam.HandleDoubleTap()
		} else {
			r.lastTap = now
		}
	}
	r.lastX, r.lastY = x, y
}

// --- Pure gesture math ---

// pinchFactor returns the relative scale factor between two finger
// distances. Returns 1 when the previous distance is degenerate.
func pinchFactor(prevDist, dist float64) float64 {
	if prevDist <= 0 {
		return 1
	}
	return dist / prevDist
}

// angleDelta returns the signed difference between two angles, normalized
// into (-π, π] so a finger crossing the ±π seam doesn't spin the camera a
// full turn.
func angleDelta(prev, cur float64) float64 {
	d := math.Mod(cur-prev, 2*math.Pi)
	if d > math.Pi {
		d -= 2 * math.Pi
	} else if d <= -math.Pi {
		d += 2 * math.Pi
	}
	return d
}
