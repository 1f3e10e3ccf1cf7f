package engine

import (
	"fmt"
	"sync"
	"time"

	"territory/game"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type SessionHandle = uuid.UUID

// Registry hands out sessions by handle for presentation layers that should
// not hold a *Session. Each session is still driven by one caller at a time.
type Registry struct {
	mu       sync.RWMutex
	sessions map[SessionHandle]*Session
	options  []Option
}

// NewRegistry returns a registry whose sessions are all created with options.
func NewRegistry(options ...Option) *Registry {
	return &Registry{
		sessions: make(map[SessionHandle]*Session),
		options:  options,
	}
}

func (r *Registry) StartSession(size int, interval time.Duration) (SessionHandle, error) {
	s, err := StartSession(size, interval, r.options...)
	if err != nil {
		return uuid.Nil, err
	}

	handle := uuid.New()
	r.mu.Lock()
	r.sessions[handle] = s
	r.mu.Unlock()

	log.Info().Str("session", handle.String()).Msg("registered session")
	return handle, nil
}

func (r *Registry) Tick(handle SessionHandle, dt time.Duration) (TickResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, err := r.lookup(handle)
	if err != nil {
		return TickResult{}, err
	}
	return s.Tick(dt), nil
}

func (r *Registry) ResetSession(handle SessionHandle) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, err := r.lookup(handle)
	if err != nil {
		return err
	}
	return s.Reset()
}

func (r *Registry) StopSession(handle SessionHandle) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, err := r.lookup(handle)
	if err != nil {
		return err
	}
	s.Stop()
	return nil
}

// CloseSession forgets the session. Its handle becomes unknown.
func (r *Registry) CloseSession(handle SessionHandle) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, err := r.lookup(handle); err != nil {
		return err
	}
	delete(r.sessions, handle)
	return nil
}

func (r *Registry) OwnerOf(handle SessionHandle, c game.Coordinate) (game.PlayerType, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, err := r.lookup(handle)
	if err != nil {
		return game.Available, err
	}
	if !c.Within(s.Size()) {
		return game.Available, fmt.Errorf("%w: %v", ErrOutOfBounds, c)
	}
	return s.OwnerOf(c), nil
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

func (r *Registry) lookup(handle SessionHandle) (*Session, error) {
	s, ok := r.sessions[handle]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSession, handle)
	}
	return s, nil
}
