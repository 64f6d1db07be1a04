package auth

import (
	"testing"
	"time"

	"github.com/krishkalaria12/vitalplan-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(secret string, ttl time.Duration) *Service {
	return NewService(Options{
		Secret:         secret,
		TokenDuration:  ttl,
		CookieDuration: ttl,
		URL:            "http://localhost:8000",
	})
}

func TestIssueAndParse(t *testing.T) {
	svc := newTestService("test-secret", time.Hour)

	user := &models.User{Record: models.Record{ID: 42}, Email: "a@b.co", Name: "Ann"}
	tok, err := svc.Issue(user)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	id, err := svc.Parse(tok)
	require.NoError(t, err)
	assert.Equal(t, uint(42), id)
}

func TestParseRejects(t *testing.T) {
	svc := newTestService("test-secret", time.Hour)
	user := &models.User{Record: models.Record{ID: 7}}

	other := newTestService("other-secret", time.Hour)
	foreign, err := other.Issue(user)
	require.NoError(t, err)

	expiredSvc := newTestService("test-secret", time.Hour)
	expiredSvc.now = func() time.Time { return time.Now().Add(-3 * time.Hour) }
	expired, err := expiredSvc.Issue(user)
	require.NoError(t, err)

	for name, tok := range map[string]string{
		"garbage":      "not-a-token",
		"empty":        "",
		"wrong secret": foreign,
		"expired":      expired,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Parse(tok)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestPasswordHash(t *testing.T) {
	hash, err := HashPassword("hunter22")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter22", hash)
	assert.True(t, CheckPasswordHash("hunter22", hash))
	assert.False(t, CheckPasswordHash("hunter23", hash))
}
