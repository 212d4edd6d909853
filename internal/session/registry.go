package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ishaan1911/portfolio/internal/view"
)

const (
	DefaultIdleTTL       = 30 * time.Minute
	DefaultSweepInterval = time.Minute
	DefaultMaxLive       = 1000
)

// Options configures a Registry. Zero values take defaults.
type Options struct {
	Sections      []string
	IdleTTL       time.Duration
	SweepInterval time.Duration
	// MaxLive caps the number of live views. Mounting past the cap evicts
	// the view idle the longest, preferring views without a stream.
	MaxLive       int
	Clock         view.Clock
	Now           func() time.Time
}

// Registry indexes live sessions by id.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	opts     Options
}

// NewRegistry returns an empty registry.
func NewRegistry(opts Options) *Registry {
	if opts.IdleTTL <= 0 {
		opts.IdleTTL = DefaultIdleTTL
	}
	if opts.SweepInterval <= 0 {
		opts.SweepInterval = DefaultSweepInterval
	}
	if opts.MaxLive <= 0 {
		opts.MaxLive = DefaultMaxLive
	}
	if opts.Clock == nil {
		opts.Clock = view.SystemClock{}
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Registry{sessions: make(map[string]*Session), opts: opts}
}

// Mount creates and registers a new view.
func (r *Registry) Mount(pref Preference) *Session {
	s := newSession(uuid.NewString(), pref, r.opts.Sections, r.opts.Clock, r.opts.Now)

	r.mu.Lock()
	var evicted *Session
	if len(r.sessions) >= r.opts.MaxLive {
		evicted = r.evictLocked()
	}
	r.sessions[s.ID] = s
	n := len(r.sessions)
	r.mu.Unlock()

	if evicted != nil {
		evicted.unmount()
		slog.Info("evicted idle view", "view", evicted.ID, "max_live", r.opts.MaxLive)
	}
	slog.Debug("view mounted", "view", s.ID, "live", n)
	return s
}

// evictLocked removes the longest idle session, skipping streaming ones
// unless every session is streaming. r.mu must be held.
func (r *Registry) evictLocked() *Session {
	var victim, streaming *Session
	var victimSeen, streamingSeen time.Time
	for _, s := range r.sessions {
		last, idle := s.idleSince()
		if idle {
			if victim == nil || last.Before(victimSeen) {
				victim, victimSeen = s, last
			}
		} else if streaming == nil || last.Before(streamingSeen) {
			streaming, streamingSeen = s, last
		}
	}
	if victim == nil {
		victim = streaming
	}
	if victim != nil {
		delete(r.sessions, victim.ID)
	}
	return victim
}

// Get looks up a live session.
func (r *Registry) Get(id string) (*Session, error) {
	r.mu.RLock()
	s, ok := r.sessions[id]
	r.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}
	return s, nil
}

// Unmount tears down and forgets a session.
func (r *Registry) Unmount(id string) error {
	r.mu.Lock()
	s, ok := r.sessions[id]
	delete(r.sessions, id)
	r.mu.Unlock()
	if !ok {
		return ErrNotFound
	}

	s.unmount()
	slog.Debug("view unmounted", "view", id)
	return nil
}

// Len returns the number of live sessions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// Sweep unmounts sessions idle for longer than the TTL and without an
// attached stream. It returns how many were removed.
func (r *Registry) Sweep() int {
	cutoff := r.opts.Now().Add(-r.opts.IdleTTL)

	r.mu.Lock()
	var stale []*Session
	for id, s := range r.sessions {
		last, idle := s.idleSince()
		if idle && last.Before(cutoff) {
			stale = append(stale, s)
			delete(r.sessions, id)
		}
	}
	r.mu.Unlock()

	for _, s := range stale {
		s.unmount()
	}
	if len(stale) > 0 {
		slog.Info("swept idle views", "count", len(stale))
	}
	return len(stale)
}

// Run sweeps periodically until ctx is done, then unmounts everything.
func (r *Registry) Run(ctx context.Context) error {
	ticker := time.NewTicker(r.opts.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.Close()
			return nil
		case <-ticker.C:
			r.Sweep()
		}
	}
}

// Close unmounts every session.
func (r *Registry) Close() {
	r.mu.Lock()
	all := r.sessions
	r.sessions = make(map[string]*Session)
	r.mu.Unlock()

	for _, s := range all {
		s.unmount()
	}
}
