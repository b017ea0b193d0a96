// Package session keeps one mounted lookup widget per browser session.
// A widget is unmounted once its session has been idle for longer than the TTL.
package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/wordlookup/internal/config"
	"github.com/heartmarshall/wordlookup/internal/lookup"
)

// WidgetFactory mounts a fresh widget for a new session.
type WidgetFactory func() *lookup.Widget

// Store is an in-memory session registry with background cleanup.
// Call Stop() on shutdown.
type Store struct {
	ttl       time.Duration
	newWidget WidgetFactory
	log       *slog.Logger
	now       func() time.Time

	mu       sync.Mutex
	sessions map[uuid.UUID]*entry

	stop     chan struct{}
	stopOnce sync.Once
}

type entry struct {
	widget   *lookup.Widget
	lastSeen time.Time
}

// NewStore creates a Store and starts its cleanup loop.
func NewStore(cfg config.SessionConfig, newWidget WidgetFactory, logger *slog.Logger) *Store {
	s := &Store{
		ttl:       cfg.TTL,
		newWidget: newWidget,
		log:       logger.With("component", "session"),
		now:       time.Now,
		sessions:  make(map[uuid.UUID]*entry),
		stop:      make(chan struct{}),
	}
	go s.cleanup(cfg.CleanupInterval)
	return s
}

// Stop terminates the background cleanup goroutine. Safe to call twice.
func (s *Store) Stop() {
	s.stopOnce.Do(func() { close(s.stop) })
}

// Mount creates a new session with an Idle widget.
func (s *Store) Mount() (uuid.UUID, *lookup.Widget) {
	id := uuid.New()
	w := s.newWidget()

	s.mu.Lock()
	s.sessions[id] = &entry{widget: w, lastSeen: s.now()}
	s.mu.Unlock()

	return id, w
}

// Get returns the widget for id and marks the session as active.
func (s *Store) Get(id uuid.UUID) (*lookup.Widget, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.sessions[id]
	if !ok {
		return nil, false
	}
	e.lastSeen = s.now()
	return e.widget, true
}

// Unmount drops the session immediately.
func (s *Store) Unmount(id uuid.UUID) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}

// Len returns the number of mounted widgets.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// sweep unmounts sessions idle longer than ttl and reports how many were removed.
func (s *Store) sweep() int {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, e := range s.sessions {
		if now.Sub(e.lastSeen) > s.ttl {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

func (s *Store) cleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			if n := s.sweep(); n > 0 {
				s.log.Debug("sessions expired", slog.Int("removed", n), slog.Int("active", s.Len()))
			}
		}
	}
}

type ctxKey struct{}

// NewContext returns a copy of ctx carrying the session's widget.
func NewContext(ctx context.Context, w *lookup.Widget) context.Context {
	return context.WithValue(ctx, ctxKey{}, w)
}

// FromContext returns the widget stored by NewContext.
func FromContext(ctx context.Context) (*lookup.Widget, bool) {
	w, ok := ctx.Value(ctxKey{}).(*lookup.Widget)
	return w, ok && w != nil
}
