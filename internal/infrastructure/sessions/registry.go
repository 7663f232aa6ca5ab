package sessions

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"techmanaus/internal/domain/entities"
	"techmanaus/internal/usecase"
)

// Session couples one session controller with the notification buffer the view
// layer drains. Everything lives in memory and dies with the session.
type Session struct {
	ID string
	UC usecase.ISessionUseCase

	mu       sync.Mutex
	pending  []entities.Notification
	lastSeen time.Time
}

// Push queues a notification emitted by a controller operation.
func (s *Session) Push(n entities.Notification) {
	s.mu.Lock()
	s.pending = append(s.pending, n)
	s.mu.Unlock()
}

// Drain returns the queued notifications and forgets them. Displaying is the
// caller's problem; nothing tracks delivery.
func (s *Session) Drain() []entities.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.pending
	s.pending = nil
	return out
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

func (s *Session) idleSince(now time.Time) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.Sub(s.lastSeen)
}

// ControllerFactory builds the session controller for a new session, wired to
// the session's notification sink. Injected so tests can substitute doubles.
type ControllerFactory func(notify func(entities.Notification)) usecase.ISessionUseCase

// Registry owns every live session, keyed by an opaque id handed to the
// client. Sessions idle longer than the TTL are swept by a janitor goroutine.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*Session
	factory  ControllerFactory
	ttl      time.Duration
}

// NewRegistry creates a registry. A nil factory yields the real session
// controller; a non-positive TTL falls back to 30 minutes.
func NewRegistry(factory ControllerFactory, ttl time.Duration) *Registry {
	if factory == nil {
		factory = func(notify func(entities.Notification)) usecase.ISessionUseCase {
			return usecase.NewSessionUseCase(notify, nil, nil)
		}
	}
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &Registry{
		sessions: make(map[string]*Session),
		factory:  factory,
		ttl:      ttl,
	}
}

// Open creates a session with a fresh controller at the welcome screen.
func (r *Registry) Open() *Session {
	s := &Session{ID: uuid.NewString(), lastSeen: time.Now()}
	s.UC = r.factory(s.Push)

	r.mu.Lock()
	r.sessions[s.ID] = s
	r.mu.Unlock()
	return s
}

// Get returns the live session for id, refreshing its idle timer.
func (r *Registry) Get(id string) (*Session, bool) {
	r.mu.Lock()
	s, ok := r.sessions[id]
	r.mu.Unlock()
	if ok {
		s.touch(time.Now())
	}
	return s, ok
}

// Close discards the session. Closing an unknown id is a no-op.
func (r *Registry) Close(id string) {
	r.mu.Lock()
	delete(r.sessions, id)
	r.mu.Unlock()
}

// Len reports the number of live sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// Prune drops sessions idle longer than the TTL and returns how many went.
func (r *Registry) Prune(now time.Time) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	removed := 0
	for id, s := range r.sessions {
		if s.idleSince(now) > r.ttl {
			delete(r.sessions, id)
			removed++
		}
	}
	return removed
}

// StartJanitor sweeps idle sessions until stop is closed.
func (r *Registry) StartJanitor(stop <-chan struct{}) {
	go func() {
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case now := <-ticker.C:
				r.Prune(now)
			}
		}
	}()
}
