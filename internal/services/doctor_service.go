package services

import (
	"context"
	"log"

	"entlead/internal/models/db_models"
	"entlead/internal/models/request_models"
	"entlead/internal/repositories"
	"entlead/pkg/utils"
)

type DoctorServiceInterface interface {
	Login(ctx context.Context, request request_models.LoginRequest) (string, error)
	CreateAccount(ctx context.Context, request request_models.SignUpRequest) error
}

type DoctorService struct {
	doctorRepo repositories.DoctorRepository
}

func NewDoctorService(doctorRepo repositories.DoctorRepository) DoctorServiceInterface {
	return &DoctorService{
		doctorRepo: doctorRepo,
	}
}

func (d *DoctorService) Login(ctx context.Context, request request_models.LoginRequest) (string, error) {
	doctor, err := d.doctorRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		log.Printf("Error looking up doctor: %v", err)
		return "", utils.ErrDatabaseError
	}

	if doctor == nil {
		return "", utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(doctor.PasswordHash, request.Password); err != nil {
		return "", utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(doctor.ID, doctor.Role)
	if err != nil {
		return "", utils.ErrInvalidCredentials
	}

	return token, nil
}

func (d *DoctorService) CreateAccount(ctx context.Context, request request_models.SignUpRequest) error {
	existing, err := d.doctorRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if existing != nil {
		return utils.ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return utils.ErrDatabaseError
	}

	doctor := &db_models.Doctor{
		Name:         request.Name,
		Email:        request.Email,
		PasswordHash: hashedPassword,
		PracticeName: request.PracticeName,
		Role:         "doctor", // default role
	}

	if err := d.doctorRepo.Insert(ctx, doctor); err != nil {
		return utils.ErrDatabaseError
	}

	return nil
}
