package repositories

import (
	"context"
	"errors"

	"entlead/internal/models/db_models"

	"gorm.io/gorm"
)

type ShortLinkRepository interface {
	Create(ctx context.Context, link *db_models.ShortLink) error
	GetByCode(ctx context.Context, code string) (*db_models.ShortLink, error)
	IncrementHits(ctx context.Context, code string) error
}

type shortLinkRepository struct {
	db *gorm.DB
}

func NewShortLinkRepository(db *gorm.DB) ShortLinkRepository {
	return &shortLinkRepository{db: db}
}

func (r *shortLinkRepository) Create(ctx context.Context, link *db_models.ShortLink) error {
	return r.db.WithContext(ctx).Create(link).Error
}

func (r *shortLinkRepository) GetByCode(ctx context.Context, code string) (*db_models.ShortLink, error) {
	var link db_models.ShortLink
	err := r.db.WithContext(ctx).First(&link, "code = ?", code).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &link, nil
}

func (r *shortLinkRepository) IncrementHits(ctx context.Context, code string) error {
	return r.db.WithContext(ctx).
		Model(&db_models.ShortLink{}).
		Where("code = ?", code).
		UpdateColumn("hits", gorm.Expr("hits + 1")).Error
}
