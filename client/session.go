package client

import "sync"

// Session holds the token pair for one signed-in user. It is injected into
// the Client instead of being read from ambient storage, so concurrent
// requests share one synchronized view of the tokens.
type Session struct {
	mu         sync.Mutex
	access     string
	refresh    string
	generation uint64
}

func NewSession(access, refresh string) *Session {
	return &Session{
		access:  access,
		refresh: refresh,
	}
}

// Snapshot returns the current access token together with the refresh
// generation it belongs to. A 401 carrying a stale generation means another
// request already refreshed and the caller should just retry.
func (s *Session) Snapshot() (access string, generation uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.access, s.generation
}

func (s *Session) RefreshToken() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.refresh
}

// Advance installs a new access token and bumps the generation. Called only
// by the client's refresh path.
func (s *Session) Advance(access string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.access = access
	s.generation++
}

// SetTokens installs a fresh token pair after login.
func (s *Session) SetTokens(access, refresh string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.access = access
	s.refresh = refresh
	s.generation++
}

// Clear drops both tokens. The session is unusable afterwards.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.access = ""
	s.refresh = ""
	s.generation++
}

func (s *Session) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.access != ""
}
