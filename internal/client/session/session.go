// Package session holds the in-memory state of the signed-in user: the
// bearer token, the user id it belongs to, and the last fetched profile.
//
// A Session is created once by the application and handed to the API client;
// there is no package-level instance. Persisting the token across runs is
// the job of the auth service, not of this package.
package session

import (
	"sync"

	"github.com/dmitrijs2005/ufood/internal/client/models"
)

type Session struct {
	mu       sync.RWMutex
	token    string
	userID   string
	profile  *models.User
	loggedIn bool
}

func New() *Session {
	return &Session{}
}

// SetToken replaces the token and the user id it was issued for.
func (s *Session) SetToken(token, userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.userID = userID
}

// SetSession stores profile and marks the session logged in. A nil profile
// marks it logged out but leaves the token alone.
func (s *Session) SetSession(profile *models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile = profile
	s.loggedIn = profile != nil
	if profile != nil && s.userID == "" {
		s.userID = profile.ID
	}
}

// ClearSession forgets the profile, the token and the user id.
func (s *Session) ClearSession() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile = nil
	s.loggedIn = false
	s.token = ""
	s.userID = ""
}

// IsAuthenticated is true iff a non-empty token is held.
func (s *Session) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != ""
}

func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *Session) UserID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.userID
}

// Profile returns a copy of the cached profile, or nil.
func (s *Session) Profile() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.profile == nil {
		return nil
	}
	p := *s.profile
	return &p
}

// LoggedIn reports whether a profile has been stored with SetSession.
func (s *Session) LoggedIn() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loggedIn
}
