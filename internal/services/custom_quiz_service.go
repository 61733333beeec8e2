package services

import (
	"context"
	"log"

	"entlead/internal/models/db_models"
	"entlead/internal/models/request_models"
	"entlead/internal/quizbank"
	"entlead/internal/repositories"
	"entlead/pkg/utils"

	"github.com/google/uuid"
)

type CustomQuizServiceInterface interface {
	Create(ctx context.Context, doctorID uuid.UUID, req request_models.CreateCustomQuizRequest) (string, error)
	Get(ctx context.Context, id string) (*quizbank.QuizDefinition, error)
	ListByDoctor(ctx context.Context, doctorID string) ([]db_models.CustomQuiz, error)
	Delete(ctx context.Context, id string, doctorID uuid.UUID) error
}

type CustomQuizService struct {
	repo repositories.CustomQuizRepository
}

func NewCustomQuizService(repo repositories.CustomQuizRepository) CustomQuizServiceInterface {
	return &CustomQuizService{repo: repo}
}

func (s *CustomQuizService) Create(ctx context.Context, doctorID uuid.UUID, req request_models.CreateCustomQuizRequest) (string, error) {
	quiz := &db_models.CustomQuiz{
		DoctorID:    doctorID,
		Title:       req.Title,
		Description: req.Description,
	}

	for qi, question := range req.Questions {
		q := db_models.CustomQuestion{
			Prompt:   question.Prompt,
			Position: qi,
		}
		for oi, option := range question.Options {
			q.Options = append(q.Options, db_models.CustomOption{
				Label:    option.Label,
				Points:   option.Points,
				Position: oi,
			})
		}
		quiz.Questions = append(quiz.Questions, q)
	}

	id, err := s.repo.Create(ctx, quiz)
	if err != nil {
		log.Printf("Error creating custom quiz: %v", err)
		return "", utils.ErrDatabaseError
	}

	return quizbank.CustomQuizPrefix + id.String(), nil
}

func (s *CustomQuizService) Get(ctx context.Context, id string) (*quizbank.QuizDefinition, error) {
	quiz, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.Printf("Error fetching custom quiz: %v", err)
		return nil, utils.ErrDatabaseError
	}
	if quiz == nil {
		return nil, utils.ErrQuizNotFound
	}
	return quizbank.FromCustom(quiz), nil
}

func (s *CustomQuizService) ListByDoctor(ctx context.Context, doctorID string) ([]db_models.CustomQuiz, error) {
	quizzes, err := s.repo.ListByDoctor(ctx, doctorID)
	if err != nil {
		log.Printf("Error listing custom quizzes: %v", err)
		return nil, utils.ErrDatabaseError
	}
	return quizzes, nil
}

func (s *CustomQuizService) Delete(ctx context.Context, id string, doctorID uuid.UUID) error {
	quizID, err := uuid.Parse(id)
	if err != nil {
		return utils.ErrInvalidInput
	}

	if err := s.repo.Delete(ctx, quizID, doctorID); err != nil {
		log.Printf("Error deleting custom quiz: %v", err)
		return utils.ErrDatabaseError
	}
	return nil
}
