package drift

import "testing"

// recordingObserver counts hook invocations and remembers the last values.
type recordingObserver struct {
	willScale, didScale, didMove, didRotate int

	lastWillScaleX, lastWillScaleY float64
	lastScaleX, lastScaleY         float64
	lastMoveX, lastMoveY           float64
	lastRotation                   float64
}

func (r *recordingObserver) CameraWillScale(sx, sy float64) {
	r.willScale++
	r.lastWillScaleX, r.lastWillScaleY = sx, sy
}

func (r *recordingObserver) CameraDidScale(sx, sy float64) {
	r.didScale++
	r.lastScaleX, r.lastScaleY = sx, sy
}

func (r *recordingObserver) CameraDidMove(x, y float64) {
	r.didMove++
	r.lastMoveX, r.lastMoveY = x, y
}

func (r *recordingObserver) CameraDidRotate(rot float64) {
	r.didRotate++
	r.lastRotation = rot
}

func TestObserverHooksFireOnApply(t *testing.T) {
	cam := testCamera()
	rec := &recordingObserver{}
	cam.AttachObserver(rec)

	cam.Apply(Transform{X: 5, Y: 6, ScaleX: 2, ScaleY: 3, Rotation: 0.4})

	if rec.willScale != 1 || rec.didScale != 1 || rec.didMove != 1 || rec.didRotate != 1 {
		t.Errorf("hook counts = will %d, didScale %d, didMove %d, didRotate %d, want 1 each",
			rec.willScale, rec.didScale, rec.didMove, rec.didRotate)
	}
	if rec.lastScaleX != 2 || rec.lastScaleY != 3 {
		t.Errorf("did-scale = (%f,%f), want (2,3)", rec.lastScaleX, rec.lastScaleY)
	}
	if rec.lastMoveX != 5 || rec.lastMoveY != 6 {
		t.Errorf("did-move = (%f,%f), want (5,6)", rec.lastMoveX, rec.lastMoveY)
	}
	if rec.lastRotation != 0.4 {
		t.Errorf("did-rotate = %f, want 0.4", rec.lastRotation)
	}
}

func TestObserverUnchangedComponentsStaySilent(t *testing.T) {
	cam := testCamera()
	rec := &recordingObserver{}
	cam.AttachObserver(rec)

	cam.Apply(Transform{X: 5, Y: 0, ScaleX: 1, ScaleY: 1})

	if rec.didMove != 1 {
		t.Errorf("didMove = %d, want 1", rec.didMove)
	}
	if rec.willScale != 0 || rec.didScale != 0 || rec.didRotate != 0 {
		t.Error("hooks fired for components that did not change")
	}
}

// orderObserver verifies will-scale fires before the scale lands and
// did-scale after, by reading the camera transform inside the hooks.
type orderObserver struct {
	cam         *Camera
	scaleAtWill float64
	scaleAtDid  float64
}

func (o *orderObserver) CameraWillScale(sx, sy float64) { o.scaleAtWill = o.cam.Transform().ScaleX }
func (o *orderObserver) CameraDidScale(sx, sy float64)  { o.scaleAtDid = o.cam.Transform().ScaleX }
func (o *orderObserver) CameraDidMove(x, y float64)     {}
func (o *orderObserver) CameraDidRotate(rot float64)    {}

func TestObserverWillScaleFiresBeforeChange(t *testing.T) {
	cam := testCamera()
	ord := &orderObserver{cam: cam}
	cam.AttachObserver(ord)

	cam.Apply(Transform{ScaleX: 4, ScaleY: 4})

	if ord.scaleAtWill != 1 {
		t.Errorf("transform scale during will-scale = %f, want pre-change 1", ord.scaleAtWill)
	}
	if ord.scaleAtDid != 4 {
		t.Errorf("transform scale during did-scale = %f, want post-change 4", ord.scaleAtDid)
	}
}

func TestAttachObserverDeduplicates(t *testing.T) {
	cam := testCamera()
	rec := &recordingObserver{}
	cam.AttachObserver(rec)
	cam.AttachObserver(rec)

	cam.Apply(Transform{X: 1, ScaleX: 1, ScaleY: 1})
	if rec.didMove != 1 {
		t.Errorf("didMove = %d, want 1 (observer attached twice)", rec.didMove)
	}
}

func TestDetachObserver(t *testing.T) {
	cam := testCamera()
	a := &recordingObserver{}
	b := &recordingObserver{}
	cam.AttachObserver(a)
	cam.AttachObserver(b)
	cam.DetachObserver(a)

	cam.Apply(Transform{X: 1, ScaleX: 1, ScaleY: 1})
	if a.didMove != 0 {
		t.Error("detached observer still notified")
	}
	if b.didMove != 1 {
		t.Error("remaining observer missed a notification")
	}
}

func TestObserverFiresDuringMomentum(t *testing.T) {
	cam := testCamera()
	rec := &recordingObserver{}
	cam.AttachObserver(rec)
	cam.SetPositionVelocity(5, 0)

	cam.Update(frame)
	if rec.didMove != 1 {
		t.Errorf("didMove = %d, want 1 from a momentum frame", rec.didMove)
	}
}

func TestReassertChangesRefiresCurrentValues(t *testing.T) {
	cam := testCamera()
	cam.Apply(Transform{X: 9, Y: 8, ScaleX: 2, ScaleY: 2, Rotation: 0.1})

	rec := &recordingObserver{}
	cam.AttachObserver(rec)
	cam.ReassertChanges()

	if rec.willScale != 1 || rec.didScale != 1 || rec.didMove != 1 || rec.didRotate != 1 {
		t.Error("ReassertChanges did not fire all four hooks")
	}
	if rec.lastMoveX != 9 || rec.lastMoveY != 8 {
		t.Errorf("did-move = (%f,%f), want current (9,8)", rec.lastMoveX, rec.lastMoveY)
	}
	if rec.lastScaleX != 2 || rec.lastScaleY != 2 {
		t.Errorf("did-scale = (%f,%f), want current (2,2)", rec.lastScaleX, rec.lastScaleY)
	}
	if rec.lastRotation != 0.1 {
		t.Errorf("did-rotate = %f, want current 0.1", rec.lastRotation)
	}
}
