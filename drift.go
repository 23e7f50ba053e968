package drift

// Vec2 is a 2D vector used for positions, deltas, pivots, and velocities
// throughout the API.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// GesturePhase is the lifecycle state reported with every gesture event.
type GesturePhase uint8

const (
	GestureBegan     GesturePhase = iota // first event of a gesture
	GestureChanged                       // fires for each movement while active
	GestureEnded                         // normal release
	GestureCancelled                     // interrupted (e.g. by the OS); roll back
)

// PanEvent is a single pan (drag) gesture event.
//
// Delta is the screen-space translation since the previous event, not a
// cumulative total since the gesture began. Velocity is the screen-space
// release velocity in units per second, meaningful only on GestureEnded.
type PanEvent struct {
	Phase    GesturePhase
	Delta    Vec2
	Velocity Vec2
}

// PinchEvent is a single pinch (two-finger scale) gesture event.
//
// ScaleFactor is the finger-distance ratio since the previous event
// (>1 = fingers spreading), not a cumulative ratio since the gesture began.
// Pivot is the screen-space midpoint between the fingers. Velocity is the
// release scale speed, meaningful only on GestureEnded.
type PinchEvent struct {
	Phase       GesturePhase
	Pivot       Vec2
	ScaleFactor float64
	Velocity    float64
}

// RotateEvent is a single two-finger rotation gesture event.
//
// Delta is the angle change in radians since the previous event, not a
// cumulative angle since the gesture began. Pivot is the screen-space
// midpoint between the fingers. Velocity is the release angular speed in
// radians per second, meaningful only on GestureEnded.
type RotateEvent struct {
	Phase    GesturePhase
	Pivot    Vec2
	Delta    float64
	Velocity float64
}

// Default configuration values applied by NewCamera.
const (
	DefaultPositionInertia = 0.95 // per-frame decay of pan momentum
	DefaultScaleInertia    = 0.75 // per-frame decay of zoom momentum
	DefaultRotationInertia = 0.85 // per-frame decay of rotation momentum

	DefaultMinScale = 0.25 // zoom-in limit (scale is inverse to zoom)
	DefaultMaxScale = 10.0 // zoom-out limit

	// Empirical divisors mapping gesture release velocity to per-frame
	// momentum. Tunable; there is no derivation behind the defaults.
	DefaultPanVelocityDivisor      = 80.0
	DefaultPinchVelocityDivisor    = 100.0
	DefaultRotationVelocityDivisor = 100.0
)

// Velocity magnitudes below these thresholds snap to exactly zero during
// integration, preventing infinite micro-oscillation at the tail of a drift.
const (
	positionVelocityEpsilon = 0.01
	scaleVelocityEpsilon    = 0.001
	rotationVelocityEpsilon = 0.001
)
