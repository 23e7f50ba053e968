// Package drift is an inertial 2D camera controller for [Ebitengine].
//
// Drift converts multi-touch gesture deltas (pan, pinch, rotate) into a
// camera transform with position, per-axis scale, and rotation, carries
// momentum after release with per-channel friction, and animates
// programmatic transitions to target transforms. It is the navigation core
// for apps and games that let users roam an arbitrarily large 2D canvas.
//
// # Quick start
//
// Create a [Camera] for your screen viewport, feed it gesture events (or
// let a [Recognizer] poll Ebitengine input for you), and advance it once
// per tick:
//
//	cam := drift.NewCamera(drift.Rect{Width: 640, Height: 480})
//	rec := drift.NewRecognizer(cam)
//
//	func (g *Game) Update() error {
//		rec.Update()
//		cam.Update(1.0 / float64(ebiten.TPS()))
//		return nil
//	}
//
//	func (g *Game) Draw(screen *ebiten.Image) {
//		op := &ebiten.DrawImageOptions{}
//		op.GeoM = cam.ViewGeoM()
//		screen.DrawImage(world, op)
//	}
//
// # Gestures and momentum
//
// Gesture events carry per-event deltas, never cumulative totals, so pan,
// pinch, and rotate handlers compose when fingers drive all three at once.
// On release, a velocity proportional to the gesture's release speed keeps
// the camera drifting; each channel decays geometrically per frame under
// its own inertia setting ([Camera.PositionInertia], [Camera.ScaleInertia],
// [Camera.RotationInertia]).
//
// # Transitions
//
// [Camera.AnimateTo] schedules an eased multi-leg transition to any subset
// of position, scale, and rotation. Legs run translate→rotate→scale when
// zooming out and scale→rotate→translate when zooming in, with durations
// derived from how far each component has to travel. Tweening uses [gween].
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package drift
