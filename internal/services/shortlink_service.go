package services

import (
	"context"
	"log"
	"strings"
	"time"

	"entlead/internal/models/db_models"
	"entlead/internal/models/response_models"
	"entlead/internal/repositories"
	"entlead/pkg/utils"
)

const shortCodeLength = 8

type ShortLinkServiceInterface interface {
	Create(ctx context.Context, targetURL, doctorID string) (response_models.ShortLinkView, error)
	Resolve(ctx context.Context, code string) (string, error)
}

type ShortLinkService struct {
	repo    repositories.ShortLinkRepository
	baseURL string
}

func NewShortLinkService(repo repositories.ShortLinkRepository, baseURL string) ShortLinkServiceInterface {
	return &ShortLinkService{
		repo:    repo,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// Create allocates a random code and writes the mapping, retrying up to
// three times on collision or write failure.
func (s *ShortLinkService) Create(ctx context.Context, targetURL, doctorID string) (response_models.ShortLinkView, error) {
	var link db_models.ShortLink

	err := utils.Retry(ctx, 3, 200*time.Millisecond, func() error {
		code, err := utils.GenerateShortCode(shortCodeLength)
		if err != nil {
			return err
		}
		link = db_models.ShortLink{
			Code:      code,
			TargetURL: targetURL,
			DoctorID:  doctorID,
		}
		return s.repo.Create(ctx, &link)
	})
	if err != nil {
		log.Printf("Error creating short link: %v", err)
		return response_models.ShortLinkView{}, utils.ErrShortLinkExhausted
	}

	return response_models.ShortLinkView{
		Code:      link.Code,
		ShortURL:  s.baseURL + "/l/" + link.Code,
		TargetURL: link.TargetURL,
	}, nil
}

func (s *ShortLinkService) Resolve(ctx context.Context, code string) (string, error) {
	link, err := s.repo.GetByCode(ctx, code)
	if err != nil {
		log.Printf("Error resolving short link %s: %v", code, err)
		return "", utils.ErrDatabaseError
	}
	if link == nil {
		return "", utils.ErrShortLinkNotFound
	}

	if err := s.repo.IncrementHits(ctx, code); err != nil {
		log.Printf("Error incrementing hits for %s: %v", code, err)
	}

	return link.TargetURL, nil
}
