package router

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"go-ads-board/internal/core/auth"
	"go-ads-board/internal/domain"
	"go-ads-board/internal/repo"
	"go-ads-board/internal/service"
	"go-ads-board/internal/transport/http/handler"
	"go-ads-board/pkg/utils"
)

type adminFixture struct {
	engine *gin.Engine
	jwter  *auth.JWTer
	users  *repo.MemUserRepo
	ads    *repo.MemAdRepo
}

func newTestAdmin(t *testing.T) *adminFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	f := &adminFixture{
		jwter: &auth.JWTer{Secret: []byte("test-secret"), Issuer: "ads-board-test", TTL: time.Hour},
		users: repo.NewMemUserRepo(),
		ads:   repo.NewMemAdRepo(),
	}
	adminSvc := service.NewAdminService(f.users, f.ads)
	f.engine = NewAdminEngine(zap.NewNop(), handler.NewAdminHandler(adminSvc), f.jwter)
	return f
}

func (f *adminFixture) seedUser(t *testing.T, email, role string) *domain.User {
	t.Helper()
	u := &domain.User{
		ID:           utils.NewID(),
		Email:        email,
		PasswordHash: utils.HashPassword("pw"),
		Role:         role,
		CreatedAt:    time.Now(),
	}
	require.NoError(t, f.users.Create(context.Background(), u))
	return u
}

func (f *adminFixture) token(t *testing.T, u *domain.User) string {
	t.Helper()
	tok, err := f.jwter.Issue(u.ID, u.Role)
	require.NoError(t, err)
	return "Bearer " + tok
}

func TestAdmin_RequiresAdminRole(t *testing.T) {
	f := newTestAdmin(t)
	regular := f.seedUser(t, "user@x.com", "user")

	w, _ := do(t, f.engine, http.MethodGet, "/admin/v1/users", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, _ = do(t, f.engine, http.MethodGet, "/admin/v1/users", f.token(t, regular), nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAdmin_ListAndBanUsers(t *testing.T) {
	f := newTestAdmin(t)
	admin := f.seedUser(t, "admin@x.com", "admin")
	victim := f.seedUser(t, "spammer@x.com", "user")

	w, env := do(t, f.engine, http.MethodGet, "/admin/v1/users?q=spammer", f.token(t, admin), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var out struct {
		Total int64 `json:"total"`
		Items []struct {
			ID    string `json:"id"`
			Email string `json:"email"`
		} `json:"items"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &out))
	require.Equal(t, int64(1), out.Total)
	assert.Equal(t, victim.ID, out.Items[0].ID)

	w, _ = do(t, f.engine, http.MethodPost, "/admin/v1/users/"+victim.ID+"/ban", f.token(t, admin), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = do(t, f.engine, http.MethodPost, "/admin/v1/users/"+victim.ID+"/ban", f.token(t, admin), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAdmin_RemoveAd(t *testing.T) {
	f := newTestAdmin(t)
	admin := f.seedUser(t, "admin@x.com", "admin")
	owner := f.seedUser(t, "owner@x.com", "user")

	a := &domain.Ad{ID: utils.NewID(), Title: "T1", Description: "D1", CreatedAt: time.Now(), OwnerID: owner.ID}
	require.NoError(t, f.ads.Create(context.Background(), a))

	// 运营下架不要求 owner
	w, _ := do(t, f.engine, http.MethodDelete, "/admin/v1/ads/"+a.ID, f.token(t, admin), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = do(t, f.engine, http.MethodDelete, "/admin/v1/ads/"+a.ID, f.token(t, admin), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
