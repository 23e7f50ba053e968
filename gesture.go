package drift

import (
	"math"
	"time"
)

// panSession is the ephemeral state of an active pan gesture: a snapshot for
// cancel rollback and the time of the last movement, which decides whether
// release grants momentum.
type panSession struct {
	active   bool
	snapshot Transform
	last     time.Time
}

// pinchSession is the ephemeral state of an active pinch gesture.
type pinchSession struct {
	active   bool
	snapshot Transform
	last     time.Time
}

// rotateSession is the ephemeral state of an active rotation gesture. The
// pivot is captured in world space once at gesture start.
type rotateSession struct {
	active         bool
	snapshot       Transform
	pivotX, pivotY float64
	last           time.Time
}

// momentumEligible reports whether a gesture released at the current clock
// time was still moving recently enough to carry momentum. A slow release
// (finger held still, then lifted) must not inherit stale velocity.
func (c *Camera) momentumEligible(last time.Time) bool {
	return c.clock().Sub(last) < c.MomentumWindow
}

// HandlePan feeds one pan gesture event to the camera.
//
// Each changed event moves the camera opposite to the screen-space drag,
// rotated into the camera's local frame and scaled by the current zoom so
// the content tracks the finger exactly. Deltas are per-event increments,
// never cumulative totals: concurrent rotate or pinch events may have moved
// the camera since the previous pan event, and the handler always works
// from the last-known transform rather than a stale gesture-start value.
func (c *Camera) HandlePan(e PanEvent) {
	if c.Lock || c.LockPan {
		return
	}
	switch e.Phase {
	case GestureBegan:
		c.pan = panSession{active: true, snapshot: c.transform, last: c.clock()}
	case GestureChanged:
		if !c.pan.active {
			return
		}
		t := c.transform
		dxl, dyl := localToWorld(e.Delta.X, e.Delta.Y, t.Rotation)
		t.X -= dxl * t.ScaleX
		t.Y += dyl * t.ScaleY
		c.Apply(t)
		c.pan.last = c.clock()
	case GestureEnded:
		if !c.pan.active {
			return
		}
		c.pan.active = false
		if c.EnablePanInertia && c.momentumEligible(c.pan.last) {
			t := c.transform
			c.posVelX = e.Velocity.X * t.ScaleX / c.PanVelocityDivisor
			c.posVelY = e.Velocity.Y * t.ScaleY / c.PanVelocityDivisor
		} else {
			c.posVelX, c.posVelY = 0, 0
		}
	case GestureCancelled:
		if !c.pan.active {
			return
		}
		c.pan.active = false
		c.Apply(c.pan.snapshot)
	}
}

// HandlePinch feeds one pinch gesture event to the camera.
//
// Scale moves inversely to the finger-distance ratio (spreading fingers
// zooms in, which means a smaller scale), clamps per axis, and the camera
// position is recomputed so the world point under the pinch midpoint stays
// visually fixed. The pivot is converted from screen to world space on
// every event since the transform shifts underneath the gesture.
func (c *Camera) HandlePinch(e PinchEvent) {
	if c.Lock || c.LockScale {
		return
	}
	switch e.Phase {
	case GestureBegan:
		c.pinch = pinchSession{active: true, snapshot: c.transform, last: c.clock()}
	case GestureChanged:
		if !c.pinch.active {
			return
		}
		px, py := c.toWorld(e.Pivot.X, e.Pivot.Y)
		old := c.transform
		t := old
		t.ScaleX = clamp(old.ScaleX/e.ScaleFactor, c.MinScale, c.MaxScale)
		t.ScaleY = clamp(old.ScaleY/e.ScaleFactor, c.MinScale, c.MaxScale)
		if old.ScaleX != 0 {
			t.X = px + (old.X-px)*(t.ScaleX/old.ScaleX)
		}
		if old.ScaleY != 0 {
			t.Y = py + (old.Y-py)*(t.ScaleY/old.ScaleY)
		}
		c.Apply(t)
		c.pinch.last = c.clock()
	case GestureEnded:
		if !c.pinch.active {
			return
		}
		c.pinch.active = false
		if c.EnableScaleInertia && c.momentumEligible(c.pinch.last) {
			v := e.Velocity / c.PinchVelocityDivisor
			c.scaleVelX, c.scaleVelY = v, v
		} else {
			c.scaleVelX, c.scaleVelY = 0, 0
		}
	case GestureCancelled:
		if !c.pinch.active {
			return
		}
		c.pinch.active = false
		c.Apply(c.pinch.snapshot)
	}
}

// HandleRotate feeds one rotation gesture event to the camera.
//
// The pivot is captured in world space once at gesture start; each changed
// event adds the per-event angle delta and swings the camera position
// around the pivot by the same delta so the pivot stays visually fixed.
// Per-event deltas keep this composable with simultaneous pan and pinch:
// tracking a cumulative angle since gesture start would fight their
// position updates and jitter visibly.
func (c *Camera) HandleRotate(e RotateEvent) {
	if c.Lock || c.LockRotation {
		return
	}
	switch e.Phase {
	case GestureBegan:
		px, py := c.toWorld(e.Pivot.X, e.Pivot.Y)
		c.rotate = rotateSession{
			active:   true,
			snapshot: c.transform,
			pivotX:   px,
			pivotY:   py,
			last:     c.clock(),
		}
	case GestureChanged:
		if !c.rotate.active {
			return
		}
		t := c.transform
		t.Rotation += e.Delta
		sin, cos := math.Sincos(e.Delta)
		dx := t.X - c.rotate.pivotX
		dy := t.Y - c.rotate.pivotY
		t.X = c.rotate.pivotX + dx*cos - dy*sin
		t.Y = c.rotate.pivotY + dx*sin + dy*cos
		c.Apply(t)
		c.rotate.last = c.clock()
	case GestureEnded:
		if !c.rotate.active {
			return
		}
		c.rotate.active = false
		if c.EnableRotationInertia && c.momentumEligible(c.rotate.last) {
			c.rotVel = e.Velocity / c.RotationVelocityDivisor
		} else {
			c.rotVel = 0
		}
	case GestureCancelled:
		if !c.rotate.active {
			return
		}
		c.rotate.active = false
		c.Apply(c.rotate.snapshot)
	}
}

// HandleDoubleTap animates the camera back to its home transform. Honors
// the master lock only; the per-gesture locks do not block a reset.
func (c *Camera) HandleDoubleTap() {
	if c.Lock {
		return
	}
	c.Reset()
}
