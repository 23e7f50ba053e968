package drift

import "testing"

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 100, Height: 50}
	if !r.Contains(10, 20) {
		t.Error("top-left corner not contained")
	}
	if !r.Contains(110, 70) {
		t.Error("bottom-right corner not contained")
	}
	if !r.Contains(50, 40) {
		t.Error("interior point not contained")
	}
	if r.Contains(9.999, 40) || r.Contains(50, 70.001) {
		t.Error("exterior point contained")
	}
}

func TestRectIntersects(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 10, Height: 10}
	b := Rect{X: 5, Y: 5, Width: 10, Height: 10}
	c := Rect{X: 20, Y: 20, Width: 5, Height: 5}
	if !a.Intersects(b) || !b.Intersects(a) {
		t.Error("overlapping rects not intersecting")
	}
	if a.Intersects(c) {
		t.Error("disjoint rects intersecting")
	}
	// Adjacent rects sharing only an edge count as intersecting.
	d := Rect{X: 10, Y: 0, Width: 10, Height: 10}
	if !a.Intersects(d) {
		t.Error("edge-adjacent rects not intersecting")
	}
}

func TestGesturePhaseValues(t *testing.T) {
	phases := []GesturePhase{GestureBegan, GestureChanged, GestureEnded, GestureCancelled}
	seen := map[GesturePhase]bool{}
	for _, p := range phases {
		if seen[p] {
			t.Fatalf("duplicate phase value %d", p)
		}
		seen[p] = true
	}
}
