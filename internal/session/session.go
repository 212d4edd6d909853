// Package session keeps the live views of the pages currently open in
// browsers. Nothing is persisted: a reload mounts a fresh view.
package session

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/ishaan1911/portfolio/internal/view"
)

// ErrNotFound is returned for unknown or already unmounted views.
var ErrNotFound = errors.New("view not found")

// Preference is the color scheme a browser reported at load.
type Preference int

const (
	PreferenceUnknown Preference = iota
	PreferenceLight
	PreferenceDark
)

// ParsePreference reads a color-scheme token such as the value of the
// Sec-CH-Prefers-Color-Scheme client hint ("dark", with or without quotes).
func ParsePreference(s string) Preference {
	switch strings.ToLower(strings.Trim(strings.TrimSpace(s), `"`)) {
	case "dark":
		return PreferenceDark
	case "light":
		return PreferenceLight
	default:
		return PreferenceUnknown
	}
}

func (p Preference) signals() *view.Signals {
	switch p {
	case PreferenceDark:
		return view.NewSignalsWithPreference(true)
	case PreferenceLight:
		return view.NewSignalsWithPreference(false)
	default:
		return view.NewSignals()
	}
}

// Session is one mounted view. All events for the view, including its timer
// callback, run one at a time under the session lock.
type Session struct {
	ID string

	mu       sync.Mutex
	view     *view.View
	signals  *view.Signals
	watch    view.Subscription
	subs     map[chan view.Snapshot]struct{}
	lastSeen time.Time
	closed   bool
	done     chan struct{}
	now      func() time.Time
}

func newSession(id string, pref Preference, sections []string, clock view.Clock, now func() time.Time) *Session {
	s := &Session{
		ID:       id,
		signals:  pref.signals(),
		subs:     make(map[chan view.Snapshot]struct{}),
		lastSeen: now(),
		done:     make(chan struct{}),
		now:      now,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.view = view.Mount(view.Platform{
		Scheme:        s.signals,
		Pointer:       s.signals.Pointer(),
		Intersections: s.signals,
		Clock:         lockedClock{base: clock, mu: &s.mu},
	}, sections)
	s.watch = s.view.Watch(s.broadcast)
	return s
}

// Do runs one event handler against the view and returns the resulting state.
func (s *Session) Do(fn func(v *view.View, sig *view.Signals)) (view.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return view.Snapshot{}, ErrNotFound
	}
	s.lastSeen = s.now()
	fn(s.view, s.signals)
	return s.view.Snapshot(), nil
}

// Snapshot returns the current state without touching the idle clock.
func (s *Session) Snapshot() (view.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return view.Snapshot{}, ErrNotFound
	}
	return s.view.Snapshot(), nil
}

// Subscribe streams a snapshot after every state change until ctx is done or
// the view is unmounted; the channel is then closed. Slow consumers miss
// intermediate snapshots rather than block the view, but the last one they
// receive is always the current state.
func (s *Session) Subscribe(ctx context.Context, buffer int) (<-chan view.Snapshot, error) {
	if buffer <= 0 {
		buffer = 16
	}
	ch := make(chan view.Snapshot, buffer)

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil, ErrNotFound
	}
	s.subs[ch] = struct{}{}
	s.lastSeen = s.now()
	s.mu.Unlock()

	go func() {
		select {
		case <-ctx.Done():
		case <-s.done:
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		if _, ok := s.subs[ch]; ok {
			delete(s.subs, ch)
			close(ch)
			s.lastSeen = s.now()
		}
	}()

	return ch, nil
}

// idleSince reports when the view was last used, and false while a stream
// is attached.
func (s *Session) idleSince() (time.Time, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen, len(s.subs) == 0
}

func (s *Session) unmount() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return false
	}
	s.closed = true
	s.watch.Unsubscribe()
	s.view.Unmount()
	for ch := range s.subs {
		delete(s.subs, ch)
		close(ch)
	}
	close(s.done)
	return true
}

// broadcast runs under s.mu. A full buffer loses its oldest snapshot so the
// newest one always reaches the consumer.
func (s *Session) broadcast(snap view.Snapshot) {
	for ch := range s.subs {
		select {
		case ch <- snap:
			continue
		default:
		}
		// Only broadcast sends, and it holds s.mu, so one receive frees a slot.
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- snap:
		default:
		}
	}
}

// lockedClock runs timer callbacks under the session lock so they are
// serialised with every other event.
type lockedClock struct {
	base view.Clock
	mu   *sync.Mutex
}

func (c lockedClock) AfterFunc(d time.Duration, fn func()) view.Timer {
	return c.base.AfterFunc(d, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		fn()
	})
}
