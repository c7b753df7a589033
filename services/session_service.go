package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"whisperchat_server/models"

	"github.com/google/uuid"
)

// SessionService simulates the login screen: it waits a fixed delay and hands
// out a token. Credentials are not checked against anything.
type SessionService struct {
	Delay time.Duration
	Now   func() time.Time

	mu       sync.Mutex
	sessions map[string]models.Session
}

func NewSessionService(delay time.Duration) *SessionService {
	return &SessionService{
		Delay:    delay,
		Now:      time.Now,
		sessions: make(map[string]models.Session),
	}
}

// Login issues a session after the simulated delay, or returns ctx.Err() if
// the request is cancelled first
func (s *SessionService) Login(ctx context.Context, email, password string) (models.Session, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return models.Session{}, fmt.Errorf("%w: email and password are required", ErrInvalidInput)
	}

	log.Printf("🔐 Simulating login for %s (%s)", email, s.Delay)
	if s.Delay > 0 {
		timer := time.NewTimer(s.Delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			log.Printf("❌ Login for %s cancelled: %v", email, ctx.Err())
			return models.Session{}, ctx.Err()
		case <-timer.C:
		}
	}

	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	session := models.Session{
		Token:     uuid.New().String(),
		Email:     email,
		CreatedAt: now(),
	}

	s.mu.Lock()
	if s.sessions == nil {
		s.sessions = make(map[string]models.Session)
	}
	s.sessions[session.Token] = session
	s.mu.Unlock()

	log.Printf("✅ Logged in %s", email)
	return session, nil
}

// Logout drops a session
func (s *SessionService) Logout(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[token]; !ok {
		return fmt.Errorf("session: %w", ErrNotFound)
	}
	delete(s.sessions, token)
	log.Println("👋 Session closed")
	return nil
}

// Lookup returns the session for token
func (s *SessionService) Lookup(ctx context.Context, token string) (models.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[token]
	return session, ok
}
