package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-ads-board/internal/domain"
	"go-ads-board/internal/repo"
)

func strPtr(s string) *string { return &s }

func TestAdCreateAndGet(t *testing.T) {
	s := NewAdService(repo.NewMemAdRepo(), nil)
	ctx := context.Background()
	start := time.Now()

	a, err := s.Create(ctx, "owner-1", "Produm kota", "Kot uchenyi")
	require.NoError(t, err)
	assert.NotEmpty(t, a.ID)
	assert.Equal(t, "owner-1", a.OwnerID)
	assert.False(t, a.CreatedAt.Before(start))

	got, err := s.Get(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "Produm kota", got.Title)
	assert.Equal(t, "Kot uchenyi", got.Description)
	assert.Equal(t, "owner-1", got.OwnerID)
}

func TestAdGet_NotFound(t *testing.T) {
	s := NewAdService(repo.NewMemAdRepo(), nil)
	_, err := s.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAdList(t *testing.T) {
	s := NewAdService(repo.NewMemAdRepo(), nil)
	ctx := context.Background()

	_, err := s.Create(ctx, "owner-1", "T1", "D1")
	require.NoError(t, err)
	_, err = s.Create(ctx, "owner-2", "T2", "D2")
	require.NoError(t, err)

	ads, err := s.List(ctx)
	require.NoError(t, err)
	assert.Len(t, ads, 2)
}

func TestAdUpdate_Partial(t *testing.T) {
	s := NewAdService(repo.NewMemAdRepo(), nil)
	ctx := context.Background()

	a, err := s.Create(ctx, "owner-1", "T1", "D1")
	require.NoError(t, err)

	// 只改 title，description 不动
	upd, err := s.Update(ctx, "owner-1", a.ID, domain.AdPatch{Title: strPtr("T2")})
	require.NoError(t, err)
	assert.Equal(t, "T2", upd.Title)
	assert.Equal(t, "D1", upd.Description)
	assert.Equal(t, a.CreatedAt.Unix(), upd.CreatedAt.Unix())
	assert.Equal(t, "owner-1", upd.OwnerID)
}

func TestAdUpdate_Forbidden(t *testing.T) {
	s := NewAdService(repo.NewMemAdRepo(), nil)
	ctx := context.Background()

	a, err := s.Create(ctx, "owner-1", "T1", "D1")
	require.NoError(t, err)

	_, err = s.Update(ctx, "intruder", a.ID, domain.AdPatch{Title: strPtr("hacked")})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	got, err := s.Get(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "T1", got.Title)
}

func TestAdUpdate_NotFound(t *testing.T) {
	s := NewAdService(repo.NewMemAdRepo(), nil)
	_, err := s.Update(context.Background(), "owner-1", "missing", domain.AdPatch{Title: strPtr("T")})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAdDelete(t *testing.T) {
	s := NewAdService(repo.NewMemAdRepo(), nil)
	ctx := context.Background()

	a, err := s.Create(ctx, "owner-1", "T1", "D1")
	require.NoError(t, err)

	// 非 owner 删除被拒
	err = s.Delete(ctx, "intruder", a.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	require.NoError(t, s.Delete(ctx, "owner-1", a.ID))

	_, err = s.Get(ctx, a.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = s.Delete(ctx, "owner-1", a.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAdminRemoveAd(t *testing.T) {
	ads := repo.NewMemAdRepo()
	adSvc := NewAdService(ads, nil)
	adminSvc := NewAdminService(repo.NewMemUserRepo(), ads)
	ctx := context.Background()

	a, err := adSvc.Create(ctx, "owner-1", "T1", "D1")
	require.NoError(t, err)

	require.NoError(t, adminSvc.RemoveAd(ctx, a.ID))
	assert.ErrorIs(t, adminSvc.RemoveAd(ctx, a.ID), domain.ErrNotFound)
}
