package view

import (
	"slices"
	"sync"
)

// Signals is an in-memory ColorScheme, PointerSource and IntersectionSource.
// Whoever receives the platform events (an HTTP handler, a test) feeds them
// in through SetPreference, MovePointer and Intersect. Listeners run on the
// caller's goroutine after the internal lock is released.
type Signals struct {
	mu        sync.Mutex
	dark      bool
	known     bool
	nextID    int
	scheme    map[int]func(bool)
	pointer   map[int]func(Point)
	observers map[int]*observer
}

type observer struct {
	ids map[string]struct{}
	fn  func([]Entry)
}

// NewSignals returns signals with no detectable color-scheme preference.
func NewSignals() *Signals {
	return &Signals{
		scheme:    make(map[int]func(bool)),
		pointer:   make(map[int]func(Point)),
		observers: make(map[int]*observer),
	}
}

// NewSignalsWithPreference returns signals whose initial preference is known.
func NewSignalsWithPreference(dark bool) *Signals {
	s := NewSignals()
	s.dark, s.known = dark, true
	return s
}

func (s *Signals) Preference() (bool, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dark, s.known
}

func (s *Signals) Subscribe(fn func(dark bool)) Subscription {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	s.scheme[id] = fn
	return once(func() {
		s.mu.Lock()
		delete(s.scheme, id)
		s.mu.Unlock()
	})
}

// SetPreference records a color-scheme change and notifies listeners. Every
// call is delivered as a change event, even if the value is unchanged.
func (s *Signals) SetPreference(dark bool) {
	s.mu.Lock()
	s.dark, s.known = dark, true
	fns := collect(s.scheme)
	s.mu.Unlock()

	for _, fn := range fns {
		fn(dark)
	}
}

// ClearPreference marks the preference as undetectable without notifying.
func (s *Signals) ClearPreference() {
	s.mu.Lock()
	s.known = false
	s.mu.Unlock()
}

// Pointer returns the PointerSource view of s.
func (s *Signals) Pointer() PointerSource { return pointerSignals{s} }

// MovePointer delivers one pointer move.
func (s *Signals) MovePointer(p Point) {
	s.mu.Lock()
	fns := collect(s.pointer)
	s.mu.Unlock()

	for _, fn := range fns {
		fn(p)
	}
}

// Observe registers fn for the given section ids. Signals forwards every
// entry; applying the threshold is left to the observer.
func (s *Signals) Observe(ids []string, _ float64, fn func([]Entry)) Subscription {
	o := &observer{ids: make(map[string]struct{}, len(ids)), fn: fn}
	for _, id := range ids {
		o.ids[id] = struct{}{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	s.observers[id] = o
	return once(func() {
		s.mu.Lock()
		delete(s.observers, id)
		s.mu.Unlock()
	})
}

// Intersect delivers one intersection callback. Each observer receives only
// the entries for sections it observes; observers with no matching entry are
// not called.
func (s *Signals) Intersect(entries ...Entry) {
	s.mu.Lock()
	obs := collect(s.observers)
	s.mu.Unlock()

	for _, o := range obs {
		matched := slices.DeleteFunc(slices.Clone(entries), func(e Entry) bool {
			_, ok := o.ids[e.ID]
			return !ok
		})
		if len(matched) > 0 {
			o.fn(matched)
		}
	}
}

// Listeners returns the number of live registrations across all sources.
func (s *Signals) Listeners() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.scheme) + len(s.pointer) + len(s.observers)
}

type pointerSignals struct{ s *Signals }

func (p pointerSignals) Subscribe(fn func(Point)) Subscription {
	s := p.s
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	s.pointer[id] = fn
	return once(func() {
		s.mu.Lock()
		delete(s.pointer, id)
		s.mu.Unlock()
	})
}

// collect returns map values in registration order.
func collect[T any](m map[int]T) []T {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	out := make([]T, 0, len(keys))
	for _, k := range keys {
		out = append(out, m[k])
	}
	return out
}
