package screens

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"churchconnect/internal/models"
)

var (
	ErrSessionNotFound = errors.New("screen session not found")
	ErrRegistryClosed  = errors.New("session registry is shut down")
)

// Session is one mounted screen.
type Session struct {
	ID         uuid.UUID
	Screen     string
	Controller Controller
	MountedAt  time.Time
	lastSeen   time.Time
}

// Registry owns the mounted screen sessions and unmounts idle ones.
type Registry struct {
	deps      Dependencies
	factories map[string]Factory
	theme     func() models.Theme

	mu       sync.Mutex
	sessions map[uuid.UUID]*Session
	closed   bool
}

// NewRegistry creates a registry. theme is read at mount time.
func NewRegistry(deps Dependencies, theme func() models.Theme, factories map[string]Factory) *Registry {
	if factories == nil {
		factories = DefaultFactories()
	}
	if theme == nil {
		theme = models.DefaultSettings().ThemeDescriptor
	}
	return &Registry{
		deps:      deps,
		factories: factories,
		theme:     theme,
		sessions:  make(map[uuid.UUID]*Session),
	}
}

func (r *Registry) Screens() []string {
	return slices.Sorted(maps.Keys(r.factories))
}

// Mount creates a session for screen and starts its initial fetch.
func (r *Registry) Mount(ctx context.Context, screen string) (*Session, error) {
	factory, ok := r.factories[screen]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScreen, screen)
	}

	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return nil, ErrRegistryClosed
	}
	now := r.deps.now()
	session := &Session{
		ID:         uuid.New(),
		Screen:     screen,
		Controller: factory(ctx, r.deps, r.theme()),
		MountedAt:  now,
		lastSeen:   now,
	}
	r.sessions[session.ID] = session
	active := len(r.sessions)
	r.mu.Unlock()

	session.Controller.Mount()

	if r.deps.Logger != nil {
		r.deps.Logger.LogSessionMounted(ctx, session.ID, screen)
	}
	if r.deps.Metrics != nil {
		r.deps.Metrics.IncrementCounter("session_mounted", map[string]string{"screen": screen})
		r.deps.Metrics.RecordGauge("sessions_active", float64(active), nil)
	}
	return session, nil
}

// Get returns the controller of a session and marks it as used.
func (r *Registry) Get(id uuid.UUID) (Controller, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	session.lastSeen = r.deps.now()
	return session.Controller, nil
}

// Unmount disposes one session.
func (r *Registry) Unmount(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	session, ok := r.sessions[id]
	if ok {
		delete(r.sessions, id)
	}
	active := len(r.sessions)
	r.mu.Unlock()

	if !ok {
		return ErrSessionNotFound
	}
	r.dispose(ctx, session, "client", active)
	return nil
}

func (r *Registry) dispose(ctx context.Context, session *Session, reason string, active int) {
	session.Controller.Unmount()
	if r.deps.Logger != nil {
		r.deps.Logger.LogSessionUnmounted(ctx, session.ID, session.Screen, reason)
	}
	if r.deps.Metrics != nil {
		r.deps.Metrics.RecordGauge("sessions_active", float64(active), nil)
	}
}

// Sweep unmounts sessions idle for longer than the configured timeout and
// returns how many were removed.
func (r *Registry) Sweep(ctx context.Context) int {
	idle := r.deps.Config.IdleTimeout
	if idle <= 0 {
		return 0
	}
	cutoff := r.deps.now().Add(-idle)

	r.mu.Lock()
	var expired []*Session
	for id, session := range r.sessions {
		if session.lastSeen.Before(cutoff) {
			expired = append(expired, session)
			delete(r.sessions, id)
		}
	}
	active := len(r.sessions)
	r.mu.Unlock()

	for _, session := range expired {
		r.dispose(ctx, session, "idle", active)
	}
	return len(expired)
}

// Run sweeps on every interval tick until ctx is done.
func (r *Registry) Run(ctx context.Context) {
	interval := r.deps.Config.SweepInterval
	if interval <= 0 {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := r.Sweep(ctx); n > 0 {
				r.deps.logger().InfoContext(ctx, "idle screen sessions unmounted", "count", n)
			}
		}
	}
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// Shutdown unmounts every session and refuses new mounts.
func (r *Registry) Shutdown(ctx context.Context) {
	r.mu.Lock()
	r.closed = true
	sessions := slices.Collect(maps.Values(r.sessions))
	r.sessions = make(map[uuid.UUID]*Session)
	r.mu.Unlock()

	for _, session := range sessions {
		r.dispose(ctx, session, "shutdown", 0)
	}
}
