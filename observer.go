package drift

// Observer receives camera change notifications. Implementers register via
// [Camera.AttachObserver]; the camera calls these hooks on every mutation,
// whether it came from a live gesture, momentum, or a transition frame.
//
// CameraWillScale fires before a scale change lands, with the incoming
// values; the other three fire after their component changed, with the new
// values.
type Observer interface {
	CameraWillScale(scaleX, scaleY float64)
	CameraDidScale(scaleX, scaleY float64)
	CameraDidMove(x, y float64)
	CameraDidRotate(rotation float64)
}

// AttachObserver registers an observer. Attaching the same observer twice
// is a no-op.
func (c *Camera) AttachObserver(o Observer) {
	for _, existing := range c.observers {
		if existing == o {
			return
		}
	}
	c.observers = append(c.observers, o)
}

// DetachObserver removes a previously attached observer.
func (c *Camera) DetachObserver(o Observer) {
	for i, existing := range c.observers {
		if existing == o {
			copy(c.observers[i:], c.observers[i+1:])
			c.observers[len(c.observers)-1] = nil
			c.observers = c.observers[:len(c.observers)-1]
			return
		}
	}
}

// ReassertChanges re-fires the did-hooks (and the will/did scale pair) with
// the current transform. Hosts that mutate the camera transform through an
// external animation facility call this once per frame after those
// mutations so observers stay consistent; the built-in transition scheduler
// also uses it to guarantee a final-values notification on completion.
func (c *Camera) ReassertChanges() {
	t := c.transform
	c.notifyWillScale(t.ScaleX, t.ScaleY)
	c.notifyDidScale(t.ScaleX, t.ScaleY)
	c.notifyDidMove(t.X, t.Y)
	c.notifyDidRotate(t.Rotation)
	c.dirty = true
}

func (c *Camera) notifyWillScale(sx, sy float64) {
	for _, o := range c.observers {
		o.CameraWillScale(sx, sy)
	}
}

func (c *Camera) notifyDidScale(sx, sy float64) {
	for _, o := range c.observers {
		o.CameraDidScale(sx, sy)
	}
}

func (c *Camera) notifyDidMove(x, y float64) {
	for _, o := range c.observers {
		o.CameraDidMove(x, y)
	}
}

func (c *Camera) notifyDidRotate(r float64) {
	for _, o := range c.observers {
		o.CameraDidRotate(r)
	}
}
