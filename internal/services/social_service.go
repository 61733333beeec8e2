package services

import (
	"context"
	"encoding/json"
	"log"

	"entlead/internal/models/request_models"
	"entlead/internal/models/response_models"
	"entlead/internal/quizbank"
	"entlead/pkg/utils"
)

type SocialServiceInterface interface {
	GeneratePosts(ctx context.Context, req request_models.SocialGenerateRequest) (response_models.SocialContentResponse, error)
}

type SocialService struct {
	bank     *quizbank.Bank
	primary  utils.ContentClientInterface
	fallback utils.ContentClientInterface
}

// NewSocialService takes a primary provider and an optional fallback
// tried when the primary fails.
func NewSocialService(bank *quizbank.Bank, primary, fallback utils.ContentClientInterface) SocialServiceInterface {
	return &SocialService{
		bank:     bank,
		primary:  primary,
		fallback: fallback,
	}
}

func (s *SocialService) GeneratePosts(ctx context.Context, req request_models.SocialGenerateRequest) (response_models.SocialContentResponse, error) {
	def, err := s.bank.Get(req.QuizType)
	if err != nil {
		return response_models.SocialContentResponse{}, err
	}

	raw, err := s.primary.GenerateSocialJSON(ctx, req.PracticeName, def.Title, req.Topic, req.Platforms)
	if err != nil && s.fallback != nil {
		log.Printf("Primary content provider failed, trying fallback: %v", err)
		raw, err = s.fallback.GenerateSocialJSON(ctx, req.PracticeName, def.Title, req.Topic, req.Platforms)
	}
	if err != nil {
		log.Printf("Error generating social content: %v", err)
		return response_models.SocialContentResponse{}, utils.ErrUpstreamFailure
	}

	var content response_models.SocialContentResponse
	if err := json.Unmarshal([]byte(raw), &content); err != nil {
		log.Printf("Error parsing social content JSON: %v", err)
		return response_models.SocialContentResponse{}, utils.ErrUpstreamFailure
	}

	return content, nil
}
