package repositories

import (
	"context"
	"errors"

	"entlead/internal/models/db_models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LeadRepository interface {
	Create(ctx context.Context, lead *db_models.Lead) (uuid.UUID, error)
	GetByID(ctx context.Context, id string) (*db_models.Lead, error)
	ListByDoctor(ctx context.Context, doctorID string, page, pageSize int) ([]db_models.Lead, error)
	CountByDoctor(ctx context.Context, doctorID string) (int64, error)
	CountByColumn(ctx context.Context, doctorID, column string) (map[string]int64, error)
}

type leadRepository struct {
	db *gorm.DB
}

func NewLeadRepository(db *gorm.DB) LeadRepository {
	return &leadRepository{db: db}
}

func (r *leadRepository) Create(ctx context.Context, lead *db_models.Lead) (uuid.UUID, error) {
	if err := r.db.WithContext(ctx).Create(lead).Error; err != nil {
		return uuid.Nil, err
	}
	return lead.ID, nil
}

func (r *leadRepository) GetByID(ctx context.Context, id string) (*db_models.Lead, error) {
	var lead db_models.Lead
	err := r.db.WithContext(ctx).First(&lead, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &lead, nil
}

func (r *leadRepository) ListByDoctor(ctx context.Context, doctorID string, page, pageSize int) ([]db_models.Lead, error) {
	var leads []db_models.Lead
	offset := (page - 1) * pageSize

	err := r.db.WithContext(ctx).
		Where("doctor_id = ?", doctorID).
		Order("created_at DESC").
		Offset(offset).
		Limit(pageSize).
		Find(&leads).Error
	if err != nil {
		return nil, err
	}
	return leads, nil
}

func (r *leadRepository) CountByDoctor(ctx context.Context, doctorID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db_models.Lead{}).
		Where("doctor_id = ?", doctorID).
		Count(&count).Error
	return count, err
}

// CountByColumn groups the doctor's leads by the named column
// ("quiz_type" or "severity").
func (r *leadRepository) CountByColumn(ctx context.Context, doctorID, column string) (map[string]int64, error) {
	type row struct {
		Key   string
		Count int64
	}
	var rows []row

	err := r.db.WithContext(ctx).
		Model(&db_models.Lead{}).
		Select(column+" AS key, COUNT(*) AS count").
		Where("doctor_id = ?", doctorID).
		Group(column).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, r := range rows {
		counts[r.Key] = r.Count
	}
	return counts, nil
}
