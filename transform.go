package drift

import "math"

// Transform is the full camera state: world-space position, per-axis scale,
// and rotation in radians.
//
// Scale is inverse to zoom level: a larger scale shows a wider view. ScaleX
// and ScaleY are independent, though every built-in gesture and transition
// drives them together.
type Transform struct {
	X, Y           float64
	ScaleX, ScaleY float64
	Rotation       float64
}

// IdentityTransform is the default camera state: origin, scale 1, no rotation.
var IdentityTransform = Transform{ScaleX: 1, ScaleY: 1}

// ChangeSet reports which transform components an Apply call actually
// changed. Callers can use it to decide whether further work (redraw,
// culling refresh) is needed.
type ChangeSet struct {
	Moved   bool
	Scaled  bool
	Rotated bool
}

// Any reports whether at least one component changed.
func (cs ChangeSet) Any() bool {
	return cs.Moved || cs.Scaled || cs.Rotated
}

// clamp restricts v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}

// localToWorld rotates a screen-local delta (dx, dy) into the camera's
// world frame at rotation theta. The screen Y axis is inverted relative to
// world Y; callers account for that when applying dyl.
func localToWorld(dx, dy, theta float64) (dxl, dyl float64) {
	sin, cos := math.Sincos(theta)
	dxl = dx*cos - dy*sin
	dyl = dx*sin + dy*cos
	return
}

// identityAffine is the identity affine matrix.
var identityAffine = [6]float64{1, 0, 0, 1, 0, 0}

// multiplyAffine multiplies two 2D affine matrices: result = parent * child.
//
//	Matrix layout: [a, b, c, d, tx, ty]
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
func multiplyAffine(p, c [6]float64) [6]float64 {
	return [6]float64{
		p[0]*c[0] + p[2]*c[1],
		p[1]*c[0] + p[3]*c[1],
		p[0]*c[2] + p[2]*c[3],
		p[1]*c[2] + p[3]*c[3],
		p[0]*c[4] + p[2]*c[5] + p[4],
		p[1]*c[4] + p[3]*c[5] + p[5],
	}
}

// invertAffine computes the inverse of a 2D affine matrix.
// Returns the identity matrix if the matrix is singular (determinant ≈ 0).
func invertAffine(m [6]float64) [6]float64 {
	det := m[0]*m[3] - m[2]*m[1]
	if det > -1e-12 && det < 1e-12 {
		return identityAffine
	}
	invDet := 1.0 / det
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return [6]float64{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}
}

// transformPoint applies an affine matrix to a point.
func transformPoint(m [6]float64, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}
