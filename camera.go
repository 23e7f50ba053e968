package drift

import (
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Camera is an inertial 2D viewport camera. It owns a [Transform] plus three
// momentum channels (position, scale, rotation), consumes gesture events via
// [Camera.HandlePan], [Camera.HandlePinch], and [Camera.HandleRotate], and
// advances momentum and animated transitions once per frame in
// [Camera.Update].
//
// All methods must be called from the same goroutine as the game loop; the
// camera performs no locking.
type Camera struct {
	// PositionInertia, ScaleInertia, and RotationInertia are the per-frame
	// decay factors for the three momentum channels. 1 means perpetual
	// motion, values in (0,1) decay exponentially (smaller = more friction).
	// Values above 1 grow without bound and negative values oscillate; the
	// camera does not validate against either.
	PositionInertia float64
	ScaleInertia    float64
	RotationInertia float64

	// MinScale and MaxScale bound ScaleX and ScaleY at every mutation site:
	// gestures, momentum, and transitions all clamp into this range.
	MinScale float64
	MaxScale float64

	// LockPan, LockScale, and LockRotation disable the corresponding gesture
	// handler without touching stored momentum. Lock disables all of them.
	LockPan      bool
	LockScale    bool
	LockRotation bool
	Lock         bool

	// EnablePanInertia, EnableScaleInertia, and EnableRotationInertia gate
	// whether momentum is granted at gesture release and integrated per frame.
	EnablePanInertia      bool
	EnableScaleInertia    bool
	EnableRotationInertia bool

	// PanVelocityDivisor, PinchVelocityDivisor, and RotationVelocityDivisor
	// scale gesture release velocity down to per-frame momentum.
	PanVelocityDivisor      float64
	PinchVelocityDivisor    float64
	RotationVelocityDivisor float64

	// MomentumWindow is the maximum time between the last gesture movement
	// and its release for momentum to be granted. A pause-then-release
	// longer than this leaves the camera still.
	MomentumWindow time.Duration

	// Viewport is the screen-space rectangle this camera renders into.
	Viewport Rect

	transform Transform
	home      Transform

	posVelX, posVelY     float64
	scaleVelX, scaleVelY float64
	rotVel               float64

	pan    panSession
	pinch  pinchSession
	rotate rotateSession

	trans *transition

	observers []Observer

	// toWorld converts a screen point to world space for pinch/rotate
	// pivots. Defaults to the camera's own ScreenToWorld.
	toWorld func(x, y float64) (float64, float64)

	viewMatrix    [6]float64
	invViewMatrix [6]float64
	dirty         bool

	clock func() time.Time
}

// NewCamera creates a Camera with default configuration, an identity
// transform, and the given screen viewport.
func NewCamera(viewport Rect) *Camera {
	c := &Camera{
		PositionInertia:         DefaultPositionInertia,
		ScaleInertia:            DefaultScaleInertia,
		RotationInertia:         DefaultRotationInertia,
		MinScale:                DefaultMinScale,
		MaxScale:                DefaultMaxScale,
		EnablePanInertia:        true,
		EnableScaleInertia:      true,
		EnableRotationInertia:   true,
		PanVelocityDivisor:      DefaultPanVelocityDivisor,
		PinchVelocityDivisor:    DefaultPinchVelocityDivisor,
		RotationVelocityDivisor: DefaultRotationVelocityDivisor,
		MomentumWindow:          50 * time.Millisecond,
		Viewport:                viewport,
		transform:               IdentityTransform,
		home:                    IdentityTransform,
		dirty:                   true,
		clock:                   time.Now,
	}
	c.toWorld = c.ScreenToWorld
	return c
}

// Transform returns the current camera transform.
func (c *Camera) Transform() Transform {
	return c.transform
}

// Apply clamps the transform's scale into [MinScale, MaxScale], makes it the
// current camera transform, and notifies attached observers. It returns
// which components actually changed.
//
// Apply is the single mutation path: gestures, momentum, and transitions
// all funnel through it, so the scale invariant and observer ordering hold
// everywhere.
func (c *Camera) Apply(t Transform) ChangeSet {
	t.ScaleX = clamp(t.ScaleX, c.MinScale, c.MaxScale)
	t.ScaleY = clamp(t.ScaleY, c.MinScale, c.MaxScale)

	cur := c.transform
	cs := ChangeSet{
		Moved:   t.X != cur.X || t.Y != cur.Y,
		Scaled:  t.ScaleX != cur.ScaleX || t.ScaleY != cur.ScaleY,
		Rotated: t.Rotation != cur.Rotation,
	}
	if !cs.Any() {
		return cs
	}

	if cs.Scaled {
		c.notifyWillScale(t.ScaleX, t.ScaleY)
	}
	c.transform = t
	c.dirty = true
	if cs.Scaled {
		c.notifyDidScale(t.ScaleX, t.ScaleY)
	}
	if cs.Moved {
		c.notifyDidMove(t.X, t.Y)
	}
	if cs.Rotated {
		c.notifyDidRotate(t.Rotation)
	}
	return cs
}

// SetHome sets the transform that [Camera.Reset] and a double tap return
// to. The default home is the identity transform.
func (c *Camera) SetHome(t Transform) {
	c.home = t
}

// Home returns the reset target transform.
func (c *Camera) Home() Transform {
	return c.home
}

// SetCoordinateConverter overrides how pinch and rotation pivots are mapped
// from screen space to world space. Passing nil restores the default, the
// camera's own [Camera.ScreenToWorld].
func (c *Camera) SetCoordinateConverter(fn func(x, y float64) (float64, float64)) {
	if fn == nil {
		fn = c.ScreenToWorld
	}
	c.toWorld = fn
}

// --- Momentum accessors ---

// PositionVelocity returns the pan momentum in world units per frame,
// expressed in the camera's local frame at release time.
func (c *Camera) PositionVelocity() (x, y float64) {
	return c.posVelX, c.posVelY
}

// SetPositionVelocity injects pan momentum directly. Any in-flight
// transition is cancelled so the two mechanisms never fight.
func (c *Camera) SetPositionVelocity(x, y float64) {
	c.trans = nil
	c.posVelX, c.posVelY = x, y
}

// ScaleVelocity returns the zoom momentum in scale units per frame.
func (c *Camera) ScaleVelocity() (x, y float64) {
	return c.scaleVelX, c.scaleVelY
}

// SetScaleVelocity injects zoom momentum directly, cancelling any
// in-flight transition.
func (c *Camera) SetScaleVelocity(x, y float64) {
	c.trans = nil
	c.scaleVelX, c.scaleVelY = x, y
}

// RotationVelocity returns the rotation momentum in radians per frame.
func (c *Camera) RotationVelocity() float64 {
	return c.rotVel
}

// SetRotationVelocity injects rotation momentum directly, cancelling any
// in-flight transition.
func (c *Camera) SetRotationVelocity(v float64) {
	c.trans = nil
	c.rotVel = v
}

// Stop cancels any in-flight transition and zeroes all three momentum
// channels. The current transform is left untouched.
func (c *Camera) Stop() {
	c.trans = nil
	c.posVelX, c.posVelY = 0, 0
	c.scaleVelX, c.scaleVelY = 0, 0
	c.rotVel = 0
}

// InputBegan halts any ongoing drift or transition the instant the user
// touches the surface again. Hosts call this on every touch-down or
// mouse-down before routing the gesture itself.
func (c *Camera) InputBegan() {
	c.Stop()
}

// --- View matrix ---

// computeViewMatrix recomputes the cached view matrix if dirty.
//
// viewMatrix = Translate(cx, cy) * Scale(1/sx, -1/sy) * Rotate(-rotation) *
// Translate(-X, -Y), where cx, cy = viewport center. Scale is inverse to
// zoom, and the Y axis flips between world (up) and screen (down).
func (c *Camera) computeViewMatrix() [6]float64 {
	if !c.dirty {
		return c.viewMatrix
	}
	c.dirty = false

	cx := c.Viewport.X + c.Viewport.Width/2
	cy := c.Viewport.Y + c.Viewport.Height/2

	t := c.transform
	zx, zy := 1.0, -1.0
	if t.ScaleX != 0 {
		zx = 1.0 / t.ScaleX
	}
	if t.ScaleY != 0 {
		zy = -1.0 / t.ScaleY
	}
	sin, cos := math.Sincos(-t.Rotation)

	m := multiplyAffine(
		[6]float64{1, 0, 0, 1, cx, cy},
		multiplyAffine(
			[6]float64{zx, 0, 0, zy, 0, 0},
			multiplyAffine(
				[6]float64{cos, sin, -sin, cos, 0, 0},
				[6]float64{1, 0, 0, 1, -t.X, -t.Y},
			),
		),
	)

	c.viewMatrix = m
	c.invViewMatrix = invertAffine(m)
	return c.viewMatrix
}

// WorldToScreen converts world coordinates to screen coordinates.
func (c *Camera) WorldToScreen(wx, wy float64) (sx, sy float64) {
	c.computeViewMatrix()
	sx, sy = transformPoint(c.viewMatrix, wx, wy)
	return
}

// ScreenToWorld converts screen coordinates to world coordinates.
func (c *Camera) ScreenToWorld(sx, sy float64) (wx, wy float64) {
	c.computeViewMatrix()
	wx, wy = transformPoint(c.invViewMatrix, sx, sy)
	return
}

// VisibleBounds returns the axis-aligned bounding rect of the camera's
// visible area in world space.
func (c *Camera) VisibleBounds() Rect {
	c.computeViewMatrix()
	inv := c.invViewMatrix

	vx := c.Viewport.X
	vy := c.Viewport.Y
	vr := vx + c.Viewport.Width
	vb := vy + c.Viewport.Height

	// Transform the four viewport corners to world space.
	x0, y0 := transformPoint(inv, vx, vy)
	x1, y1 := transformPoint(inv, vr, vy)
	x2, y2 := transformPoint(inv, vr, vb)
	x3, y3 := transformPoint(inv, vx, vb)

	minX := math.Min(math.Min(x0, x1), math.Min(x2, x3))
	minY := math.Min(math.Min(y0, y1), math.Min(y2, y3))
	maxX := math.Max(math.Max(x0, x1), math.Max(x2, x3))
	maxY := math.Max(math.Max(y0, y1), math.Max(y2, y3))

	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// ViewGeoM returns the current view matrix as an [ebiten.GeoM], ready to
// assign to DrawImageOptions when rendering world content.
func (c *Camera) ViewGeoM() ebiten.GeoM {
	m := c.computeViewMatrix()
	var g ebiten.GeoM
	g.SetElement(0, 0, m[0])
	g.SetElement(0, 1, m[2])
	g.SetElement(0, 2, m[4])
	g.SetElement(1, 0, m[1])
	g.SetElement(1, 1, m[3])
	g.SetElement(1, 2, m[5])
	return g
}
