package repositories

import (
	"context"
	"errors"

	"entlead/internal/models/db_models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CustomQuizRepository interface {
	Create(ctx context.Context, quiz *db_models.CustomQuiz) (uuid.UUID, error)
	GetByID(ctx context.Context, id string) (*db_models.CustomQuiz, error)
	ListByDoctor(ctx context.Context, doctorID string) ([]db_models.CustomQuiz, error)
	Delete(ctx context.Context, id uuid.UUID, doctorID uuid.UUID) error
}

type customQuizRepository struct {
	db *gorm.DB
}

func NewCustomQuizRepository(db *gorm.DB) CustomQuizRepository {
	return &customQuizRepository{db: db}
}

func (r *customQuizRepository) Create(ctx context.Context, quiz *db_models.CustomQuiz) (uuid.UUID, error) {
	if err := r.db.WithContext(ctx).Create(quiz).Error; err != nil {
		return uuid.Nil, err
	}
	return quiz.ID, nil
}

func (r *customQuizRepository) GetByID(ctx context.Context, id string) (*db_models.CustomQuiz, error) {
	var quiz db_models.CustomQuiz
	err := r.db.WithContext(ctx).
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Preload("Questions.Options", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		First(&quiz, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &quiz, nil
}

func (r *customQuizRepository) ListByDoctor(ctx context.Context, doctorID string) ([]db_models.CustomQuiz, error) {
	var quizzes []db_models.CustomQuiz
	err := r.db.WithContext(ctx).
		Where("doctor_id = ?", doctorID).
		Order("created_at DESC").
		Find(&quizzes).Error
	if err != nil {
		return nil, err
	}
	return quizzes, nil
}

func (r *customQuizRepository) Delete(ctx context.Context, id uuid.UUID, doctorID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND doctor_id = ?", id, doctorID).
		Delete(&db_models.CustomQuiz{}).Error
}
