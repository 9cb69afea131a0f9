package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, expiresAt *time.Time) string {
	t.Helper()
	claims := jwt.RegisteredClaims{Subject: "U1"}
	if expiresAt != nil {
		claims.ExpiresAt = jwt.NewNumericDate(*expiresAt)
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func TestSession_TokenRoundTrip(t *testing.T) {
	s := NewSession(nil)

	assert.False(t, s.Authenticated())

	s.SetToken("tok-123")
	assert.True(t, s.Authenticated())
	assert.Equal(t, "tok-123", s.Token())
}

func TestSession_LogoutFiresHooksInOrder(t *testing.T) {
	s := NewSession(nil)
	s.SetToken("tok")

	var fired []string
	s.OnLogout(func() { fired = append(fired, "first") })
	s.OnLogout(func() { fired = append(fired, "second") })

	s.Logout()

	assert.Empty(t, s.Token())
	assert.Equal(t, []string{"first", "second"}, fired)
}

func TestSession_UnauthorizedLogsOut(t *testing.T) {
	s := NewSession(nil)
	s.SetToken("stale")

	fired := 0
	s.OnLogout(func() { fired++ })

	s.Unauthorized()

	assert.False(t, s.Authenticated())
	assert.Equal(t, 1, fired)
}

func TestSession_HookMayReadSession(t *testing.T) {
	s := NewSession(nil)
	s.SetToken("tok")

	var seen string
	s.OnLogout(func() { seen = s.Token() })

	s.Logout()

	assert.Empty(t, seen, "hooks observe the cleared session")
}

func TestSession_Expired(t *testing.T) {
	past := time.Now().Add(-time.Hour)
	future := time.Now().Add(time.Hour)

	tests := []struct {
		name  string
		token string
		want  bool
	}{
		{"no token", "", true},
		{"expired token", "", true},
		{"valid token", "", false},
		{"no exp claim", "", false},
		{"garbage token", "not.a.jwt", false},
	}
	// Tokens that need signing are built here to keep the table readable.
	tests[1].token = signedToken(t, &past)
	tests[2].token = signedToken(t, &future)
	tests[3].token = signedToken(t, nil)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSession(nil)
			s.SetToken(tt.token)

			assert.Equal(t, tt.want, s.Expired())
		})
	}
}
