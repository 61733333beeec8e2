package repositories

import (
	"context"

	"entlead/internal/models/db_models"

	"gorm.io/gorm"
)

type PartialSubmissionRepository interface {
	Create(ctx context.Context, partial *db_models.PartialSubmission) error
	CountByDoctor(ctx context.Context, doctorID string) (int64, error)
}

type partialSubmissionRepository struct {
	db *gorm.DB
}

func NewPartialSubmissionRepository(db *gorm.DB) PartialSubmissionRepository {
	return &partialSubmissionRepository{db: db}
}

func (r *partialSubmissionRepository) Create(ctx context.Context, partial *db_models.PartialSubmission) error {
	return r.db.WithContext(ctx).Create(partial).Error
}

func (r *partialSubmissionRepository) CountByDoctor(ctx context.Context, doctorID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db_models.PartialSubmission{}).
		Where("doctor_id = ?", doctorID).
		Count(&count).Error
	return count, err
}
