package view

// pointerTracker mirrors the last pointer position, unthrottled.
type pointerTracker struct {
	pos      Point
	sub      Subscription
	stopped  bool
	onChange func()
}

func startPointerTracker(src PointerSource, onChange func()) *pointerTracker {
	t := &pointerTracker{onChange: onChange}
	if src != nil {
		t.sub = src.Subscribe(t.moved)
	}
	return t
}

func (t *pointerTracker) moved(p Point) {
	if t.stopped {
		return
	}
	t.pos = p
	t.onChange()
}

func (t *pointerTracker) stop() {
	t.stopped = true
	if t.sub != nil {
		t.sub.Unsubscribe()
	}
}
