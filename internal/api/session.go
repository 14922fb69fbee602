package api

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Session holds the persisted bearer token and the unauthorized hook.
// The hook fires exactly once per authenticated session even when several
// concurrent calls fail with 401 together; a successful SetToken re-arms
// it for the next session.
type Session struct {
	mu             sync.Mutex
	path           string
	token          string
	armed          bool
	onUnauthorized func()
}

// NewSession creates a session persisted at path, loading any existing
// token from disk. A read failure is treated as "not logged in".
func NewSession(path string) *Session {
	s := &Session{path: path}
	if data, err := os.ReadFile(path); err == nil {
		s.token = strings.TrimSpace(string(data))
		s.armed = s.token != ""
	}
	return s
}

// OnUnauthorized registers the hook invoked when the server rejects the
// session. Supplied by the hosting shell (TUI switches to the login view,
// CLI prints a login hint) so the transport never owns navigation.
func (s *Session) OnUnauthorized(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onUnauthorized = fn
}

// Token returns the current bearer token, empty when logged out.
func (s *Session) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// SetToken stores and persists a fresh token, re-arming the unauthorized
// hook. The token file is created with owner-only permissions.
func (s *Session) SetToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.armed = true
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(s.path, []byte(token), 0o600)
}

// Clear drops the token in memory and on disk.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clearLocked()
}

func (s *Session) clearLocked() {
	s.token = ""
	_ = os.Remove(s.path)
}

// invalidate clears the token and fires the unauthorized hook if this is
// the first 401 of the session.
func (s *Session) invalidate() {
	s.mu.Lock()
	fire := s.armed
	s.armed = false
	s.clearLocked()
	fn := s.onUnauthorized
	s.mu.Unlock()

	if fire && fn != nil {
		fn()
	}
}
