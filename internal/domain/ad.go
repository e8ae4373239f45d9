package domain

import (
	"context"
	"time"
)

type Ad struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	Title       string    `gorm:"size:100;not null" json:"title"`
	Description string    `gorm:"size:1000;not null" json:"description"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	OwnerID     string    `gorm:"size:36;not null;index" json:"owner_id"`

	Owner *User `gorm:"foreignKey:OwnerID" json:"-"`
}

func (Ad) TableName() string { return "ads" }

// AdPatch 部分更新：nil 表示该字段不动
type AdPatch struct {
	Title       *string
	Description *string
}

type AdRepository interface {
	Create(ctx context.Context, a *Ad) error
	FindByID(ctx context.Context, id string) (*Ad, error)
	List(ctx context.Context) ([]Ad, error)
	Update(ctx context.Context, a *Ad) error
	Delete(ctx context.Context, id string) (bool, error)
}
