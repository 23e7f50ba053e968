package drift

import "math"

// Update advances the camera by one frame: an in-flight transition if one
// is running, otherwise the momentum integrator. Call once per tick with
// the frame delta in seconds.
//
// Momentum is expressed in units per frame, so friction and integration are
// applied once per call regardless of dt; dt only times transition legs.
func (c *Camera) Update(dt float64) {
	if c.trans != nil {
		c.advanceTransition(dt)
		return
	}
	c.stepMomentum()
}

// stepMomentum applies one frame of friction and integration to the three
// momentum channels. Each channel decays by its inertia factor, snaps to
// exactly zero below its epsilon so a drift ends instead of oscillating
// forever at sub-visible magnitudes, and then integrates into the
// transform. Scale clamps into [MinScale, MaxScale] every step; rotation
// accumulates unclamped.
func (c *Camera) stepMomentum() {
	t := c.transform
	changed := false

	if c.EnablePanInertia && (c.posVelX != 0 || c.posVelY != 0) {
		c.posVelX *= c.PositionInertia
		c.posVelY *= c.PositionInertia
		if math.Abs(c.posVelX) < positionVelocityEpsilon {
			c.posVelX = 0
		}
		if math.Abs(c.posVelY) < positionVelocityEpsilon {
			c.posVelY = 0
		}
		if c.posVelX != 0 || c.posVelY != 0 {
			// Momentum was captured in the camera's local frame at release
			// time, so integrate through the same rotation as a live pan.
			dxl, dyl := localToWorld(c.posVelX, c.posVelY, t.Rotation)
			t.X -= dxl
			t.Y += dyl
			changed = true
		}
	}

	if c.EnableScaleInertia && (c.scaleVelX != 0 || c.scaleVelY != 0) {
		c.scaleVelX *= c.ScaleInertia
		c.scaleVelY *= c.ScaleInertia
		if math.Abs(c.scaleVelX) < scaleVelocityEpsilon {
			c.scaleVelX = 0
		}
		if math.Abs(c.scaleVelY) < scaleVelocityEpsilon {
			c.scaleVelY = 0
		}
		if c.scaleVelX != 0 || c.scaleVelY != 0 {
			t.ScaleX = clamp(t.ScaleX-c.scaleVelX, c.MinScale, c.MaxScale)
			t.ScaleY = clamp(t.ScaleY-c.scaleVelY, c.MinScale, c.MaxScale)
			changed = true
		}
	}

	if c.EnableRotationInertia && c.rotVel != 0 {
		c.rotVel *= c.RotationInertia
		if math.Abs(c.rotVel) < rotationVelocityEpsilon {
			c.rotVel = 0
		}
		if c.rotVel != 0 {
			t.Rotation += c.rotVel
			changed = true
		}
	}

	if changed {
		c.Apply(t)
	}
}
