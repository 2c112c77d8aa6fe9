package client

import (
	"sync"

	"teamchat/domain"
)

// Session is the client side context: the token held since login and the
// identity and position adopted from the server.
type Session struct {
	mu        sync.RWMutex
	token     string
	email     string
	username  string
	lastState domain.LastState
}

func NewSession(token string) *Session {
	return &Session{token: token}
}

func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *Session) Identity() (email, username string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.email, s.username
}

func (s *Session) LastState() domain.LastState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastState
}

// Adopt stores the identity and position confirmed by the server.
func (s *Session) Adopt(email, username string, state domain.LastState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.email, s.username, s.lastState = email, username, state
}

func (s *Session) SetToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
}

func (s *Session) SetLastState(state domain.LastState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastState = state
}

// Logout tears the whole session down.
func (s *Session) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token, s.email, s.username = "", "", ""
	s.lastState = domain.LastState{}
}
