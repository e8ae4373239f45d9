package service

import (
	"context"
	"time"

	"go-ads-board/internal/core/cache"
	"go-ads-board/internal/domain"
	"go-ads-board/pkg/utils"
)

const adCacheTTL = 5 * time.Minute

type AdService struct {
	ads   domain.AdRepository
	cache *cache.Cache // 可为 nil（测试/未配置 redis 时直接回源）
}

func NewAdService(ads domain.AdRepository, c *cache.Cache) *AdService {
	return &AdService{ads: ads, cache: c}
}

// Create 所有权永远取自调用者身份，忽略请求体里的任何 owner 字段
func (s *AdService) Create(ctx context.Context, ownerID, title, description string) (*domain.Ad, error) {
	a := &domain.Ad{
		ID:          utils.NewID(),
		Title:       title,
		Description: description,
		CreatedAt:   time.Now(),
		OwnerID:     ownerID,
	}
	if err := s.ads.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *AdService) Get(ctx context.Context, id string) (*domain.Ad, error) {
	if s.cache != nil {
		a, err := cache.GetOrLoadJSON[domain.Ad](s.cache, ctx, adCacheKey(id), adCacheTTL,
			func(ctx context.Context) (*domain.Ad, error) {
				return s.ads.FindByID(ctx, id)
			})
		if err == nil {
			if a == nil {
				return nil, domain.ErrNotFound
			}
			return a, nil
		}
		// 缓存故障不影响读路径，回源
	}
	a, err := s.ads.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, domain.ErrNotFound
	}
	return a, nil
}

func (s *AdService) List(ctx context.Context) ([]domain.Ad, error) {
	return s.ads.List(ctx)
}

// Update 部分更新：只有提供的字段会变；先查存在性，再校验归属
func (s *AdService) Update(ctx context.Context, callerID, id string, patch domain.AdPatch) (*domain.Ad, error) {
	a, err := s.ads.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, domain.ErrNotFound
	}
	if a.OwnerID != callerID {
		return nil, domain.ErrForbidden
	}

	if patch.Title != nil {
		a.Title = *patch.Title
	}
	if patch.Description != nil {
		a.Description = *patch.Description
	}
	if err := s.ads.Update(ctx, a); err != nil {
		return nil, err
	}
	s.invalidate(ctx, id)
	return a, nil
}

func (s *AdService) Delete(ctx context.Context, callerID, id string) error {
	a, err := s.ads.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if a == nil {
		return domain.ErrNotFound
	}
	if a.OwnerID != callerID {
		return domain.ErrForbidden
	}
	if _, err := s.ads.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, id)
	return nil
}

func (s *AdService) invalidate(ctx context.Context, id string) {
	if s.cache != nil {
		_ = s.cache.Invalidate(ctx, adCacheKey(id))
	}
}

func adCacheKey(id string) string { return "ad:" + id }
