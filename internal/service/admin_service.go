package service

import (
	"context"

	"go-ads-board/internal/domain"
)

// AdminService 后台运营：用户列表、封禁、下架违规广告
type AdminService struct {
	users domain.UserRepository
	ads   domain.AdRepository
}

func NewAdminService(users domain.UserRepository, ads domain.AdRepository) *AdminService {
	return &AdminService{users: users, ads: ads}
}

func (s *AdminService) ListUsers(ctx context.Context, q string, offset, limit int) ([]domain.User, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.users.List(ctx, q, offset, limit)
}

func (s *AdminService) BanUser(ctx context.Context, id string) error {
	ok, err := s.users.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}

// RemoveAd 运营下架，不走 owner 校验
func (s *AdminService) RemoveAd(ctx context.Context, id string) error {
	ok, err := s.ads.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}
