package service

import (
	"fmt"
	"sync"

	"github.com/jaeyoonkim/gisu/internal/domain"
)

// Session tracks the signed-in user and where the data load stands.
// Transitions follow domain.SessionState: unauthenticated → loading →
// ready, with reload and sign-out edges. A load that ends degraded still
// reaches ready; stale data beats no data.
type Session struct {
	mu       sync.Mutex
	state    domain.SessionState
	uid      string
	degraded bool
}

func NewSession() *Session {
	return &Session{state: domain.StateUnauthenticated}
}

func (s *Session) State() domain.SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Session) UID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.uid
}

func (s *Session) Degraded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.degraded
}

// Begin enters loading for uid. Valid from unauthenticated (sign-in) and
// from ready (reload).
func (s *Session) Begin(uid string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.transition(domain.StateLoading); err != nil {
		return err
	}
	s.uid = uid
	return nil
}

// Complete resolves the in-flight load. degraded records that the remote
// tier was unreachable and the session is running on cached data.
func (s *Session) Complete(degraded bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.transition(domain.StateReady); err != nil {
		return err
	}
	s.degraded = degraded
	return nil
}

// SignOut returns to unauthenticated and clears the user. Signing out
// while already signed out is a no-op.
func (s *Session) SignOut() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == domain.StateUnauthenticated {
		return nil
	}
	if err := s.transition(domain.StateUnauthenticated); err != nil {
		return err
	}
	s.uid = ""
	s.degraded = false
	return nil
}

func (s *Session) transition(next domain.SessionState) error {
	if !s.state.CanTransition(next) {
		return fmt.Errorf("invalid session transition %s -> %s", s.state, next)
	}
	s.state = next
	return nil
}
