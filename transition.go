package drift

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Transition tuning. Leg durations are proportional to how far each
// component travels, clamped into [minTransitionDuration,
// maxTransitionDuration].
const (
	minTransitionDuration = 0.2
	maxTransitionDuration = 3.0

	transitionTranslationSpeed = 10000.0     // world units per second
	transitionScaleSpeed       = 50.0        // relative zoom change per second
	transitionAngularSpeed     = 4 * math.Pi // radians per second

	transitionEpsilon = 1e-9
)

type legKind uint8

const (
	legTranslate legKind = iota
	legRotate
	legScale
)

// transitionLeg animates one transform component pair with gween tweens.
// The exact float64 end values are kept beside the float32 tweens so each
// leg lands precisely on its target.
type transitionLeg struct {
	kind       legKind
	a, b       *gween.Tween
	endA, endB float64
}

// advance steps the leg's tweens by dt and writes the values into t.
// Returns true when the leg has finished, at which point t holds the exact
// end values.
func (l *transitionLeg) advance(dt float32, t *Transform) bool {
	switch l.kind {
	case legTranslate:
		xv, xdone := l.a.Update(dt)
		yv, ydone := l.b.Update(dt)
		t.X, t.Y = float64(xv), float64(yv)
		if xdone && ydone {
			t.X, t.Y = l.endA, l.endB
			return true
		}
	case legRotate:
		v, done := l.a.Update(dt)
		t.Rotation = float64(v)
		if done {
			t.Rotation = l.endA
			return true
		}
	case legScale:
		xv, xdone := l.a.Update(dt)
		yv, ydone := l.b.Update(dt)
		t.ScaleX, t.ScaleY = float64(xv), float64(yv)
		if xdone && ydone {
			t.ScaleX, t.ScaleY = l.endA, l.endB
			return true
		}
	}
	return false
}

// transition is an in-flight animated move to a target transform: an
// ordered list of legs consumed one at a time by Update.
type transition struct {
	legs   []*transitionLeg
	index  int
	target Transform
}

// TargetOption selects one component of an AnimateTo target. Components
// without an option keep their current value.
type TargetOption func(*Transform)

// ToPosition targets a world-space camera position.
func ToPosition(x, y float64) TargetOption {
	return func(t *Transform) {
		t.X, t.Y = x, y
	}
}

// ToScale targets per-axis camera scale. The values are clamped into
// [MinScale, MaxScale] when the transition is planned, so the whole
// animation runs against the reachable target.
func ToScale(sx, sy float64) TargetOption {
	return func(t *Transform) {
		t.ScaleX, t.ScaleY = sx, sy
	}
}

// ToRotation targets a camera rotation in radians.
func ToRotation(r float64) TargetOption {
	return func(t *Transform) {
		t.Rotation = r
	}
}

// AnimateTo schedules an eased transition from the current transform to the
// target described by opts, cancelling any drift or earlier transition
// first. Each leg's duration scales with the distance it covers:
// translation by world distance, scale by the relative zoom change,
// rotation by the angular delta.
//
// Leg order depends on zoom direction: when the view is zooming out or
// staying level the camera translates at the current, wider field of view
// first (translate → rotate → scale); when zooming in it scales and orients
// before the translation would become disorienting at high zoom
// (scale → rotate → translate). Legs with nothing to do are skipped.
//
// The transition advances inside [Camera.Update]; on completion the
// transform lands exactly on the clamped target and observers are notified
// with the final values.
func (c *Camera) AnimateTo(opts ...TargetOption) {
	c.Stop()

	target := c.transform
	for _, opt := range opts {
		opt(&target)
	}
	target.ScaleX = clamp(target.ScaleX, c.MinScale, c.MaxScale)
	target.ScaleY = clamp(target.ScaleY, c.MinScale, c.MaxScale)

	cur := c.transform
	var translate, rotate, scale *transitionLeg

	if dist := math.Hypot(target.X-cur.X, target.Y-cur.Y); dist > transitionEpsilon {
		d := legDuration(dist / transitionTranslationSpeed)
		translate = &transitionLeg{
			kind: legTranslate,
			a:    gween.New(float32(cur.X), float32(target.X), d, ease.InOutQuad),
			b:    gween.New(float32(cur.Y), float32(target.Y), d, ease.InOutQuad),
			endA: target.X,
			endB: target.Y,
		}
	}

	if delta := math.Abs(target.Rotation - cur.Rotation); delta > transitionEpsilon {
		d := legDuration(delta / transitionAngularSpeed)
		rotate = &transitionLeg{
			kind: legRotate,
			a:    gween.New(float32(cur.Rotation), float32(target.Rotation), d, ease.InOutQuad),
			endA: target.Rotation,
		}
	}

	if math.Abs(target.ScaleX-cur.ScaleX) > transitionEpsilon ||
		math.Abs(target.ScaleY-cur.ScaleY) > transitionEpsilon {
		d := legDuration(zoomRatio(cur, target) / transitionScaleSpeed)
		scale = &transitionLeg{
			kind: legScale,
			a:    gween.New(float32(cur.ScaleX), float32(target.ScaleX), d, ease.InOutQuad),
			b:    gween.New(float32(cur.ScaleY), float32(target.ScaleY), d, ease.InOutQuad),
			endA: target.ScaleX,
			endB: target.ScaleY,
		}
	}

	var order []*transitionLeg
	if cur.ScaleX >= target.ScaleX || cur.ScaleY >= target.ScaleY {
		order = []*transitionLeg{translate, rotate, scale}
	} else {
		order = []*transitionLeg{scale, rotate, translate}
	}

	tr := &transition{target: target}
	for _, leg := range order {
		if leg != nil {
			tr.legs = append(tr.legs, leg)
		}
	}
	if len(tr.legs) == 0 {
		c.Apply(target)
		return
	}
	c.trans = tr
}

// Reset animates the camera back to its home transform.
func (c *Camera) Reset() {
	home := c.home
	c.AnimateTo(
		ToPosition(home.X, home.Y),
		ToScale(home.ScaleX, home.ScaleY),
		ToRotation(home.Rotation),
	)
}

// Animating reports whether a transition is in flight.
func (c *Camera) Animating() bool {
	return c.trans != nil
}

// advanceTransition steps the current leg by dt, applying and notifying the
// intermediate transform. When the last leg finishes, the camera snaps
// exactly to the planned target and observers see the final values even if
// the last tween frame already matched them.
func (c *Camera) advanceTransition(dt float64) {
	tr := c.trans
	leg := tr.legs[tr.index]

	t := c.transform
	done := leg.advance(float32(dt), &t)
	c.Apply(t)
	if !done {
		return
	}

	tr.index++
	if tr.index < len(tr.legs) {
		return
	}
	c.trans = nil
	if !c.Apply(tr.target).Any() {
		c.ReassertChanges()
	}
}

// legDuration clamps a raw leg duration into the allowed range.
func legDuration(seconds float64) float32 {
	return float32(clamp(seconds, minTransitionDuration, maxTransitionDuration))
}

// zoomRatio measures the magnitude of relative zoom change between two
// transforms: the larger-to-smaller ratio of their dominant scales. A pure
// translation yields 1.
func zoomRatio(a, b Transform) float64 {
	sa := math.Max(a.ScaleX, a.ScaleY)
	sb := math.Max(b.ScaleX, b.ScaleY)
	if sa <= 0 || sb <= 0 {
		return 1
	}
	if sa > sb {
		return sa / sb
	}
	return sb / sa
}
