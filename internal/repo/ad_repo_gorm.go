package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"go-ads-board/internal/domain"
)

type AdRepo struct{ db *gorm.DB }

func NewAdRepo(db *gorm.DB) *AdRepo { return &AdRepo{db: db} }

func (r *AdRepo) Create(ctx context.Context, a *domain.Ad) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *AdRepo) FindByID(ctx context.Context, id string) (*domain.Ad, error) {
	var a domain.Ad
	err := r.db.WithContext(ctx).First(&a, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &a, err
}

func (r *AdRepo) List(ctx context.Context) ([]domain.Ad, error) {
	var ads []domain.Ad
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&ads).Error
	return ads, err
}

func (r *AdRepo) Update(ctx context.Context, a *domain.Ad) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *AdRepo) Delete(ctx context.Context, id string) (bool, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Ad{})
	return res.RowsAffected > 0, res.Error
}
