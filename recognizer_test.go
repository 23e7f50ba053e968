package drift

import (
	"math"
	"testing"
	"time"
)

func TestPinchFactor(t *testing.T) {
	if got := pinchFactor(100, 150); !approxEqual(got, 1.5, epsilon) {
		t.Errorf("pinchFactor(100,150) = %f, want 1.5", got)
	}
	if got := pinchFactor(100, 50); !approxEqual(got, 0.5, epsilon) {
		t.Errorf("pinchFactor(100,50) = %f, want 0.5", got)
	}
}

func TestPinchFactorDegenerateDistance(t *testing.T) {
	if got := pinchFactor(0, 120); got != 1 {
		t.Errorf("pinchFactor(0,120) = %f, want 1", got)
	}
	if got := pinchFactor(-3, 120); got != 1 {
		t.Errorf("pinchFactor(-3,120) = %f, want 1", got)
	}
}

func TestAngleDeltaSimple(t *testing.T) {
	if got := angleDelta(0.1, 0.4); !approxEqual(got, 0.3, epsilon) {
		t.Errorf("angleDelta(0.1,0.4) = %f, want 0.3", got)
	}
	if got := angleDelta(0.4, 0.1); !approxEqual(got, -0.3, epsilon) {
		t.Errorf("angleDelta(0.4,0.1) = %f, want -0.3", got)
	}
}

func TestAngleDeltaWrapsSeam(t *testing.T) {
	// Crossing the ±π seam must give the short way around, not a full turn.
	prev := math.Pi - 0.1
	cur := -math.Pi + 0.1
	if got := angleDelta(prev, cur); !approxEqual(got, 0.2, 1e-9) {
		t.Errorf("angleDelta across seam = %f, want 0.2", got)
	}
	if got := angleDelta(cur, prev); !approxEqual(got, -0.2, 1e-9) {
		t.Errorf("angleDelta across seam reversed = %f, want -0.2", got)
	}
}

func TestAngleDeltaBounded(t *testing.T) {
	angles := []float64{-3, -1.5, 0, 0.5, 2, 3.1, -3.1}
	for _, a := range angles {
		for _, b := range angles {
			d := angleDelta(a, b)
			if d <= -math.Pi || d > math.Pi {
				t.Errorf("angleDelta(%f,%f) = %f, outside (-π,π]", a, b, d)
			}
		}
	}
}

func TestNewRecognizerWiring(t *testing.T) {
	cam := testCamera()
	rec := NewRecognizer(cam)
	if rec.cam != cam {
		t.Error("recognizer not bound to camera")
	}
	if rec.prevTouch == nil {
		t.Error("touch cache not initialized")
	}
}

func TestRecognizerDragStateMachine(t *testing.T) {
	cam := testCamera()
	clk := newFakeClock()
	cam.clock = clk.Now
	rec := NewRecognizer(cam)
	rec.clock = clk.Now

	rec.beginDrag(100, 100)
	rec.moveDrag(150, 100)
	if got := cam.Transform().X; !approxEqual(got, -50, epsilon) {
		t.Errorf("X = %f, want -50 after a 50px drag", got)
	}
	if !rec.moved {
		t.Error("drag beyond the dead zone not flagged as movement")
	}
	rec.endDrag(150, 100)
	if rec.dragging {
		t.Error("drag state survived endDrag")
	}
}

func TestRecognizerDoubleTapResets(t *testing.T) {
	cam := testCamera()
	clk := newFakeClock()
	cam.clock = clk.Now
	cam.Apply(Transform{X: 40, Y: 40, ScaleX: 2, ScaleY: 2})
	rec := NewRecognizer(cam)
	rec.clock = clk.Now

	// Two stationary taps inside the double-tap window.
	rec.beginDrag(200, 200)
	rec.endDrag(200, 200)
	clk.Advance(100 * time.Millisecond)
	rec.beginDrag(200, 200)
	rec.endDrag(200, 200)

	if !cam.Animating() {
		t.Error("double tap did not start the reset transition")
	}
}

func TestRecognizerSlowSecondTapDoesNotReset(t *testing.T) {
	cam := testCamera()
	clk := newFakeClock()
	cam.clock = clk.Now
	cam.Apply(Transform{X: 40, Y: 40, ScaleX: 2, ScaleY: 2})
	rec := NewRecognizer(cam)
	rec.clock = clk.Now

	rec.beginDrag(200, 200)
	rec.endDrag(200, 200)
	clk.Advance(doubleTapWindow + time.Millisecond)
	rec.beginDrag(200, 200)
	rec.endDrag(200, 200)

	if cam.Animating() {
		t.Error("slow second tap triggered a reset")
	}
}
