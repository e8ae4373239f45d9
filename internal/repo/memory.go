package repo

import (
	"context"
	"sort"
	"strings"
	"sync"

	"go-ads-board/internal/domain"
)

// 内存实现：单测和本地调试用，语义与 gorm 实现保持一致

type MemUserRepo struct {
	mu    sync.RWMutex
	users map[string]domain.User
}

func NewMemUserRepo() *MemUserRepo {
	return &MemUserRepo{users: make(map[string]domain.User)}
}

func (r *MemUserRepo) Create(_ context.Context, u *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, v := range r.users {
		if v.Email == u.Email {
			return domain.ErrEmailTaken
		}
	}
	r.users[u.ID] = *u
	return nil
}

func (r *MemUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if u, ok := r.users[id]; ok {
		cp := u
		return &cp, nil
	}
	return nil, nil
}

func (r *MemUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.Email == email {
			cp := u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *MemUserRepo) List(_ context.Context, q string, offset, limit int) ([]domain.User, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var all []domain.User
	for _, u := range r.users {
		if q == "" || strings.Contains(u.Email, q) {
			all = append(all, u)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })
	total := int64(len(all))
	if offset >= len(all) {
		return nil, total, nil
	}
	end := offset + limit
	if limit <= 0 || end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

func (r *MemUserRepo) Delete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return false, nil
	}
	delete(r.users, id)
	return true, nil
}

type MemAdRepo struct {
	mu  sync.RWMutex
	ads map[string]domain.Ad
}

func NewMemAdRepo() *MemAdRepo {
	return &MemAdRepo{ads: make(map[string]domain.Ad)}
}

func (r *MemAdRepo) Create(_ context.Context, a *domain.Ad) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ads[a.ID] = *a
	return nil
}

func (r *MemAdRepo) FindByID(_ context.Context, id string) (*domain.Ad, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if a, ok := r.ads[id]; ok {
		cp := a
		return &cp, nil
	}
	return nil, nil
}

func (r *MemAdRepo) List(_ context.Context) ([]domain.Ad, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Ad, 0, len(r.ads))
	for _, a := range r.ads {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *MemAdRepo) Update(_ context.Context, a *domain.Ad) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ads[a.ID] = *a
	return nil
}

func (r *MemAdRepo) Delete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.ads[id]; !ok {
		return false, nil
	}
	delete(r.ads, id)
	return true, nil
}
