package auth

import (
	"testing"
	"time"

	"bloomsnursery/apperr"
	"bloomsnursery/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueParseRoundTrip(t *testing.T) {
	mgr := NewManager("test-secret", time.Hour)
	admin := &models.Admin{ID: 7, Username: "root", Role: "admin"}

	token, err := mgr.Issue(admin)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := mgr.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.AdminID)
	assert.Equal(t, "root", claims.Username)
	assert.Equal(t, "admin", claims.Role)

	ttl := claims.ExpiresAt.Sub(claims.IssuedAt.Time)
	assert.Equal(t, time.Hour, ttl)
}

func TestParseExpiredToken(t *testing.T) {
	mgr := NewManager("test-secret", -time.Minute)
	admin := &models.Admin{ID: 1, Username: "root", Role: "admin"}

	token, err := mgr.Issue(admin)
	require.NoError(t, err)

	_, err = mgr.Parse(token)
	require.Error(t, err)
	assert.True(t, apperr.IsAuth(err))
	assert.Contains(t, err.Error(), "expired")
}

func TestParseWrongSecret(t *testing.T) {
	issuer := NewManager("secret-a", time.Hour)
	verifier := NewManager("secret-b", time.Hour)
	admin := &models.Admin{ID: 1, Username: "root", Role: "admin"}

	token, err := issuer.Issue(admin)
	require.NoError(t, err)

	_, err = verifier.Parse(token)
	require.Error(t, err)
	assert.True(t, apperr.IsAuth(err))
}

func TestParseGarbage(t *testing.T) {
	mgr := NewManager("test-secret", time.Hour)

	for _, tok := range []string{"", "not-a-token", "a.b.c"} {
		_, err := mgr.Parse(tok)
		assert.True(t, apperr.IsAuth(err), "token %q", tok)
	}
}
