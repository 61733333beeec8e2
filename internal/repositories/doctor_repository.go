package repositories

import (
	"context"
	"errors"

	"entlead/internal/models/db_models"

	"gorm.io/gorm"
)

type DoctorRepository interface {
	Insert(ctx context.Context, doctor *db_models.Doctor) error
	FindByEmail(ctx context.Context, email string) (*db_models.Doctor, error)
	FindByID(ctx context.Context, id string) (*db_models.Doctor, error)
}

type doctorRepository struct {
	db *gorm.DB
}

func NewDoctorRepository(db *gorm.DB) DoctorRepository {
	return &doctorRepository{db: db}
}

func (r *doctorRepository) Insert(ctx context.Context, doctor *db_models.Doctor) error {
	return r.db.WithContext(ctx).Create(doctor).Error
}

func (r *doctorRepository) FindByEmail(ctx context.Context, email string) (*db_models.Doctor, error) {
	var doctor db_models.Doctor
	err := r.db.WithContext(ctx).First(&doctor, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &doctor, nil
}

func (r *doctorRepository) FindByID(ctx context.Context, id string) (*db_models.Doctor, error) {
	var doctor db_models.Doctor
	err := r.db.WithContext(ctx).First(&doctor, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &doctor, nil
}
