package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-ads-board/internal/core/auth"
	"go-ads-board/internal/domain"
	"go-ads-board/internal/repo"
)

func newAuthService() *AuthService {
	jwter := &auth.JWTer{Secret: []byte("test-secret"), Issuer: "ads-board-test", TTL: time.Hour}
	return NewAuthService(repo.NewMemUserRepo(), jwter)
}

func TestRegister(t *testing.T) {
	s := newAuthService()
	ctx := context.Background()

	u, err := s.Register(ctx, "a@x.com", "pw")
	require.NoError(t, err)
	assert.NotEmpty(t, u.ID)
	assert.Equal(t, "a@x.com", u.Email)
	assert.Equal(t, "user", u.Role)
	assert.NotEqual(t, "pw", u.PasswordHash)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	s := newAuthService()
	ctx := context.Background()

	_, err := s.Register(ctx, "a@x.com", "pw")
	require.NoError(t, err)

	_, err = s.Register(ctx, "a@x.com", "other")
	assert.ErrorIs(t, err, domain.ErrEmailTaken)
}

func TestLogin(t *testing.T) {
	s := newAuthService()
	ctx := context.Background()

	u, err := s.Register(ctx, "a@x.com", "pw")
	require.NoError(t, err)

	tok, err := s.Login(ctx, "a@x.com", "pw")
	require.NoError(t, err)

	claims, err := s.jwter.Parse(tok)
	require.NoError(t, err)
	assert.Equal(t, u.ID, claims.UID)
}

func TestLogin_BadCredentials(t *testing.T) {
	s := newAuthService()
	ctx := context.Background()

	_, err := s.Register(ctx, "a@x.com", "pw")
	require.NoError(t, err)

	// 密码错误和邮箱不存在返回同一个错误
	_, err = s.Login(ctx, "a@x.com", "wrong")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = s.Login(ctx, "nobody@x.com", "pw")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}
