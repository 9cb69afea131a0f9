// Package auth holds the bearer credential for the storefront client. The
// session is the single owner of the token; the gateway reads it on every
// request and reports credential rejections back through Unauthorized, which
// runs the process-wide logout policy.
package auth

import (
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"
)

type Session struct {
	logger *zap.Logger

	mu       sync.RWMutex
	token    string
	onLogout []func()
}

func NewSession(logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{logger: logger}
}

func (s *Session) SetToken(token string) {
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()
}

// Token implements gateway.TokenSource.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *Session) Authenticated() bool {
	return s.Token() != ""
}

// OnLogout registers a hook fired whenever the session logs out, including
// the 401-triggered path. Hooks run synchronously in registration order.
func (s *Session) OnLogout(hook func()) {
	s.mu.Lock()
	s.onLogout = append(s.onLogout, hook)
	s.mu.Unlock()
}

// Logout clears the credential and fires the registered hooks.
func (s *Session) Logout() {
	s.mu.Lock()
	s.token = ""
	hooks := make([]func(), len(s.onLogout))
	copy(hooks, s.onLogout)
	s.mu.Unlock()

	for _, hook := range hooks {
		hook()
	}
}

// Unauthorized implements gateway.TokenSource: the backend rejected the
// credential, so the session logs out process-wide.
func (s *Session) Unauthorized() {
	s.logger.Warn("session credential rejected, logging out")
	s.Logout()
}

// Expired reports whether the stored token carries an exp claim in the past.
// The claim is read without signature verification; the client only uses
// this to skip calls that would bounce anyway. Tokens without a parsable exp
// claim are left for the server to judge.
func (s *Session) Expired() bool {
	token := s.Token()
	if token == "" {
		return true
	}

	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	if claims.ExpiresAt == nil {
		return false
	}
	return claims.ExpiresAt.Before(time.Now())
}
