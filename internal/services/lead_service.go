package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"entlead/internal/models/db_models"
	"entlead/internal/models/response_models"
	"entlead/internal/repositories"
	"entlead/pkg/utils"
)

type LeadServiceInterface interface {
	// SubmitLead persists the lead, retrying the insert up to three
	// times. Webhook and email notifications are best-effort side
	// effects and never fail the submission.
	SubmitLead(ctx context.Context, lead *db_models.Lead) error

	// RecordPartial is fire-and-forget: errors are logged, never returned.
	RecordPartial(partial *db_models.PartialSubmission)

	ListLeads(ctx context.Context, doctorID string, page, pageSize int) ([]response_models.LeadView, error)
	Stats(ctx context.Context, doctorID string) (response_models.DashboardStats, error)
}

type LeadService struct {
	leadRepo    repositories.LeadRepository
	partialRepo repositories.PartialSubmissionRepository
	doctorRepo  repositories.DoctorRepository
	mailService IMailService
	webhookURL  string
	httpClient  *http.Client
}

func NewLeadService(
	leadRepo repositories.LeadRepository,
	partialRepo repositories.PartialSubmissionRepository,
	doctorRepo repositories.DoctorRepository,
	mailService IMailService,
	webhookURL string,
) LeadServiceInterface {
	return &LeadService{
		leadRepo:    leadRepo,
		partialRepo: partialRepo,
		doctorRepo:  doctorRepo,
		mailService: mailService,
		webhookURL:  webhookURL,
		httpClient:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (l *LeadService) SubmitLead(ctx context.Context, lead *db_models.Lead) error {
	if lead.SubmittedAt.IsZero() {
		lead.SubmittedAt = time.Now()
	}

	err := utils.Retry(ctx, 3, 500*time.Millisecond, func() error {
		_, insertErr := l.leadRepo.Create(ctx, lead)
		return insertErr
	})
	if err != nil {
		log.Printf("Error submitting lead after retries: %v", err)
		return utils.ErrSubmissionFailed
	}

	go l.notifyWebhook(lead)
	go l.notifyDoctor(lead)

	return nil
}

func (l *LeadService) notifyWebhook(lead *db_models.Lead) {
	if l.webhookURL == "" {
		return
	}

	payload, err := json.Marshal(map[string]interface{}{
		"name":         lead.Name,
		"email":        lead.Email,
		"phone":        lead.Phone,
		"quiz_type":    lead.QuizType,
		"score":        lead.Score,
		"severity":     lead.Severity,
		"answers":      []string(lead.Answers),
		"doctor_id":    lead.DoctorID,
		"physician_id": lead.PhysicianID,
		"lead_source":  lead.LeadSource,
		"submitted_at": lead.SubmittedAt.Format(time.RFC3339),
	})
	if err != nil {
		log.Printf("Error encoding webhook payload: %v", err)
		return
	}

	err = utils.Retry(context.Background(), 3, time.Second, func() error {
		resp, postErr := l.httpClient.Post(l.webhookURL, "application/json", bytes.NewReader(payload))
		if postErr != nil {
			return postErr
		}
		defer resp.Body.Close()
		if resp.StatusCode >= 300 {
			return fmt.Errorf("webhook returned status %d", resp.StatusCode)
		}
		return nil
	})
	if err != nil {
		log.Printf("Error notifying CRM webhook: %v", err)
	}
}

func (l *LeadService) notifyDoctor(lead *db_models.Lead) {
	if lead.DoctorID == "" || l.mailService == nil {
		return
	}

	doctor, err := l.doctorRepo.FindByID(context.Background(), lead.DoctorID)
	if err != nil || doctor == nil {
		return
	}

	err = l.mailService.SendLeadNotification(
		doctor.Email, doctor.Name, lead.Name, lead.QuizType, lead.Score, lead.Severity)
	if err != nil {
		log.Printf("Error sending lead notification email: %v", err)
	}
}

func (l *LeadService) RecordPartial(partial *db_models.PartialSubmission) {
	if err := l.partialRepo.Create(context.Background(), partial); err != nil {
		log.Printf("Error recording partial submission: %v", err)
	}
}

func (l *LeadService) ListLeads(ctx context.Context, doctorID string, page, pageSize int) ([]response_models.LeadView, error) {
	leads, err := l.leadRepo.ListByDoctor(ctx, doctorID, page, pageSize)
	if err != nil {
		log.Printf("Error listing leads: %v", err)
		return nil, utils.ErrDatabaseError
	}

	views := make([]response_models.LeadView, 0, len(leads))
	for _, lead := range leads {
		views = append(views, response_models.LeadView{
			ID:          lead.ID.String(),
			Name:        lead.Name,
			Email:       lead.Email,
			Phone:       lead.Phone,
			QuizType:    lead.QuizType,
			Score:       lead.Score,
			Severity:    lead.Severity,
			Answers:     []string(lead.Answers),
			LeadSource:  lead.LeadSource,
			SubmittedAt: lead.SubmittedAt.Format(time.RFC3339),
		})
	}
	return views, nil
}

func (l *LeadService) Stats(ctx context.Context, doctorID string) (response_models.DashboardStats, error) {
	total, err := l.leadRepo.CountByDoctor(ctx, doctorID)
	if err != nil {
		return response_models.DashboardStats{}, utils.ErrDatabaseError
	}

	partials, err := l.partialRepo.CountByDoctor(ctx, doctorID)
	if err != nil {
		return response_models.DashboardStats{}, utils.ErrDatabaseError
	}

	byQuiz, err := l.leadRepo.CountByColumn(ctx, doctorID, "quiz_type")
	if err != nil {
		return response_models.DashboardStats{}, utils.ErrDatabaseError
	}

	bySeverity, err := l.leadRepo.CountByColumn(ctx, doctorID, "severity")
	if err != nil {
		return response_models.DashboardStats{}, utils.ErrDatabaseError
	}

	return response_models.DashboardStats{
		TotalLeads:         total,
		PartialSubmissions: partials,
		LeadsByQuizType:    byQuiz,
		LeadsBySeverity:    bySeverity,
	}, nil
}
