package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTer(ttl time.Duration) *JWTer {
	return &JWTer{Secret: []byte("test-secret"), Issuer: "ads-board-test", TTL: ttl}
}

func TestIssueAndParse(t *testing.T) {
	j := newTestJWTer(time.Hour)

	tok, err := j.Issue("user-1", "user")
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := j.Parse(tok)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UID)
	assert.Equal(t, "user", claims.Role)
	assert.Equal(t, "ads-board-test", claims.Issuer)
}

func TestParse_Expired(t *testing.T) {
	// 过期超过 60s leeway
	j := newTestJWTer(-2 * time.Minute)

	tok, err := j.Issue("user-1", "user")
	require.NoError(t, err)

	_, err = j.Parse(tok)
	assert.Error(t, err)
}

func TestParse_WrongSecret(t *testing.T) {
	j := newTestJWTer(time.Hour)
	tok, err := j.Issue("user-1", "user")
	require.NoError(t, err)

	other := &JWTer{Secret: []byte("other-secret"), Issuer: "ads-board-test", TTL: time.Hour}
	_, err = other.Parse(tok)
	assert.Error(t, err)
}

func TestParse_WrongIssuer(t *testing.T) {
	j := newTestJWTer(time.Hour)
	tok, err := j.Issue("user-1", "user")
	require.NoError(t, err)

	other := &JWTer{Secret: []byte("test-secret"), Issuer: "someone-else", TTL: time.Hour}
	_, err = other.Parse(tok)
	assert.Error(t, err)
}

func TestParse_Garbage(t *testing.T) {
	j := newTestJWTer(time.Hour)
	for _, tok := range []string{"", "garbage", "a.b.c", "42"} {
		_, err := j.Parse(tok)
		assert.Error(t, err, "token %q", tok)
	}
}
