// Package session holds per-browser UI state: the authenticated user, the
// auth dialog state machine, pending notifications and per-region request
// tokens. Nothing here is persisted; a session lives only as long as the
// store's TTL.
package session

import (
	"sync"
	"time"

	"movie-discovery-web-ui/internal/models"
	"movie-discovery-web-ui/internal/notify"
)

// AuthMode is the auth dialog state: closed, or open in login/signup mode.
type AuthMode string

const (
	AuthClosed AuthMode = "closed"
	AuthLogin  AuthMode = "login"
	AuthSignup AuthMode = "signup"
)

// Session is one browser session's UI state. All methods are safe for
// concurrent use.
type Session struct {
	id string

	// Notifications is the session's pending toast queue.
	Notifications *notify.Queue

	mu          sync.Mutex
	user        *models.User
	authMode    AuthMode
	backendAuth string
	regions     map[string]uint64
	lastSeen    time.Time
}

func newSession(id string, now time.Time) *Session {
	return &Session{
		id:            id,
		Notifications: notify.NewQueue(),
		authMode:      AuthClosed,
		regions:       make(map[string]uint64),
		lastSeen:      now,
	}
}

// ID returns the session identifier used in the session cookie.
func (s *Session) ID() string { return s.id }

// Login stores the authenticated user and the backend session cookie,
// overwriting any previous user, and closes the auth dialog.
func (s *Session) Login(user models.User, backendAuth string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := user
	s.user = &u
	s.backendAuth = backendAuth
	s.authMode = AuthClosed
}

// Logout clears the user and the backend session cookie.
func (s *Session) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
	s.backendAuth = ""
}

// CurrentUser returns a copy of the logged-in user, if any.
func (s *Session) CurrentUser() (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return models.User{}, false
	}
	return *s.user, true
}

// BackendAuth returns the backend session cookie for authenticated calls.
func (s *Session) BackendAuth() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.backendAuth
}

// AuthMode returns the auth dialog state.
func (s *Session) AuthMode() AuthMode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.authMode
}

// ShowAuth opens the auth dialog in the given mode.
func (s *Session) ShowAuth(mode AuthMode) {
	if mode != AuthLogin && mode != AuthSignup {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.authMode = mode
}

// ToggleAuthMode flips between login and signup while the dialog is open.
func (s *Session) ToggleAuthMode() {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch s.authMode {
	case AuthLogin:
		s.authMode = AuthSignup
	case AuthSignup:
		s.authMode = AuthLogin
	}
}

// CloseAuth closes the auth dialog.
func (s *Session) CloseAuth() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.authMode = AuthClosed
}

// View reports session state to the page shell.
func (s *Session) View() *models.SessionView {
	s.mu.Lock()
	defer s.mu.Unlock()
	v := &models.SessionView{AuthMode: string(s.authMode)}
	if s.user != nil {
		u := *s.user
		v.User = &u
		v.LoggedIn = true
	}
	return v
}

// Begin issues a new request token for a region. The most recently issued
// token is the authoritative one for that region.
func (s *Session) Begin(region string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.regions[region]++
	return s.regions[region]
}

// Commit reports whether token is still the latest for the region. A false
// return means the response was superseded and must be discarded.
func (s *Session) Commit(region string, token uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.regions[region] == token
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSeen = now
}

func (s *Session) expired(now time.Time, ttl time.Duration) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.Sub(s.lastSeen) > ttl
}
