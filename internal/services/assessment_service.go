package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"entlead/internal/models/db_models"
	"entlead/internal/models/request_models"
	"entlead/internal/models/response_models"
	"entlead/internal/quizbank"
	"entlead/internal/repositories"
	"entlead/pkg/utils"

	mem "entlead/pkg/memcache"

	"github.com/google/uuid"
)

const sessionTTL = 2 * time.Hour

const (
	promptAskName  = "May I have your name?"
	promptAskEmail = "What's the best email address to reach you?"
	promptAskPhone = "And the best phone number to reach you? (e.g. 555-123-4567)"
	promptDone     = "Thank you! Your results have been sent to the practice. Someone will reach out to you shortly."

	retryName  = "Please enter your full name (at least 2 characters)."
	retryEmail = "That doesn't look like a valid email address. Please try again (e.g. name@example.com)."
	retryPhone = "That doesn't look like a valid phone number. Please use 10 digits, e.g. 555-123-4567."
)

type AssessmentServiceInterface interface {
	Start(ctx context.Context, quizType string, routing request_models.RoutingContext) (*response_models.AssessmentStateResponse, error)
	SelectTriage(ctx context.Context, sessionID string, optionIndex int) (*response_models.AssessmentStateResponse, error)
	SubmitAnswer(ctx context.Context, sessionID string, req request_models.AnswerRequest) (*response_models.AssessmentStateResponse, error)
	SubmitContact(ctx context.Context, sessionID string, value string) (*response_models.AssessmentStateResponse, error)
	Retake(ctx context.Context, sessionID string) (*response_models.AssessmentStateResponse, error)
	GetState(ctx context.Context, sessionID string) (*response_models.AssessmentStateResponse, error)
}

type AssessmentService struct {
	bank        *quizbank.Bank
	customRepo  repositories.CustomQuizRepository
	sessions    mem.SessionStore
	leadService LeadServiceInterface
}

func NewAssessmentService(
	bank *quizbank.Bank,
	customRepo repositories.CustomQuizRepository,
	sessions mem.SessionStore,
	leadService LeadServiceInterface,
) AssessmentServiceInterface {
	return &AssessmentService{
		bank:        bank,
		customRepo:  customRepo,
		sessions:    sessions,
		leadService: leadService,
	}
}

// Start creates a fresh session. An empty quizType begins with the triage
// branch question; otherwise the named instrument (built-in or
// "CUSTOM:<id>") is loaded directly.
func (a *AssessmentService) Start(ctx context.Context, quizType string, routing request_models.RoutingContext) (*response_models.AssessmentStateResponse, error) {
	session := &mem.AssessmentSession{
		ID:           uuid.New().String(),
		DoctorID:     routing.DoctorID,
		PhysicianID:  routing.PhysicianID,
		LeadSource:   routing.LeadSource,
		UTMSource:    routing.UTMSource,
		UTMMedium:    routing.UTMMedium,
		UTMCampaign:  routing.UTMCampaign,
		PracticeName: routing.PracticeName,
	}

	if quizType == "" {
		session.Phase = mem.PhaseTriage
		session.StartedWithTriage = true
	} else {
		if _, err := a.resolveQuizType(ctx, session, quizType); err != nil {
			return nil, err
		}
		session.Phase = mem.PhaseInProgress
	}

	a.sessions.Put(session, sessionTTL)
	return a.stateResponse(ctx, session)
}

// resolveQuizType validates quizType and records it on the session.
func (a *AssessmentService) resolveQuizType(ctx context.Context, session *mem.AssessmentSession, quizType string) (*quizbank.QuizDefinition, error) {
	if strings.HasPrefix(quizType, quizbank.CustomQuizPrefix) {
		id := strings.TrimPrefix(quizType, quizbank.CustomQuizPrefix)
		custom, err := a.customRepo.GetByID(ctx, id)
		if err != nil {
			log.Printf("Error loading custom quiz %s: %v", id, err)
			return nil, utils.ErrDatabaseError
		}
		if custom == nil {
			return nil, utils.ErrQuizNotFound
		}
		session.QuizType = quizType
		session.CustomQuizID = id
		return quizbank.FromCustom(custom), nil
	}

	def, err := a.bank.Get(quizType)
	if err != nil {
		return nil, err
	}
	session.QuizType = quizType
	return def, nil
}

func (a *AssessmentService) definitionFor(ctx context.Context, session *mem.AssessmentSession) (*quizbank.QuizDefinition, error) {
	if session.CustomQuizID != "" {
		custom, err := a.customRepo.GetByID(ctx, session.CustomQuizID)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if custom == nil {
			return nil, utils.ErrQuizNotFound
		}
		return quizbank.FromCustom(custom), nil
	}
	return a.bank.Get(session.QuizType)
}

func (a *AssessmentService) SelectTriage(ctx context.Context, sessionID string, optionIndex int) (*response_models.AssessmentStateResponse, error) {
	var resp *response_models.AssessmentStateResponse

	busy, err := a.sessions.Update(sessionID, func(session *mem.AssessmentSession) error {
		if session.Phase != mem.PhaseTriage {
			return utils.ErrWrongPhase
		}

		triage := a.bank.Triage()
		if optionIndex < 0 || optionIndex >= len(triage.Options) {
			return utils.ErrInvalidAnswer
		}

		if _, err := a.resolveQuizType(ctx, session, triage.Options[optionIndex].Quiz); err != nil {
			return err
		}
		session.Phase = mem.PhaseInProgress
		session.CurrentQuestionIndex = 0

		var buildErr error
		resp, buildErr = a.stateResponse(ctx, session)
		return buildErr
	})
	if busy {
		return nil, utils.ErrAnswerInFlight
	}
	if err != nil {
		return nil, translateSessionErr(err)
	}
	return resp, nil
}

// SubmitAnswer applies one answer to the session. The answer must target
// the session's current question; stale or duplicate submissions (double
// clicks, slow networks echoing an old render) are rejected without
// mutating the session.
func (a *AssessmentService) SubmitAnswer(ctx context.Context, sessionID string, req request_models.AnswerRequest) (*response_models.AssessmentStateResponse, error) {
	var resp *response_models.AssessmentStateResponse

	busy, err := a.sessions.Update(sessionID, func(session *mem.AssessmentSession) error {
		if session.Phase != mem.PhaseInProgress {
			return utils.ErrWrongPhase
		}
		if req.QuestionIndex != session.CurrentQuestionIndex {
			return utils.ErrOutOfOrderAnswer
		}

		def, err := a.definitionFor(ctx, session)
		if err != nil {
			return err
		}

		question := def.Questions[session.CurrentQuestionIndex]
		if req.AnswerIndex < 0 || req.AnswerIndex >= len(question.Options) {
			return utils.ErrInvalidAnswer
		}

		session.Answers = append(session.Answers, mem.AnswerRecord{
			QuestionIndex: req.QuestionIndex,
			AnswerIndex:   req.AnswerIndex,
			Answer:        question.Options[req.AnswerIndex].Text,
		})

		if !session.PartialSent {
			session.PartialSent = true
			go a.leadService.RecordPartial(&db_models.PartialSubmission{
				QuizType:    session.QuizType,
				DoctorID:    session.DoctorID,
				PhysicianID: session.PhysicianID,
				LeadSource:  session.LeadSource,
				IsPartial:   true,
			})
		}

		session.CurrentQuestionIndex++
		if session.CurrentQuestionIndex == len(def.Questions) {
			result, err := ScoreAssessment(def, session.Answers, session.PracticeName)
			if err != nil {
				return err
			}
			session.Score = result.Score
			session.MaxScore = result.MaxScore
			session.Severity = string(result.Severity)
			session.Interpretation = result.Interpretation

			// completed -> collecting_contact(name) is automatic.
			session.Phase = mem.PhaseCollectingContact
			session.ContactStep = mem.StepName
		}

		var buildErr error
		resp, buildErr = a.stateResponse(ctx, session)
		return buildErr
	})
	if busy {
		return nil, utils.ErrAnswerInFlight
	}
	if err != nil {
		return nil, translateSessionErr(err)
	}
	return resp, nil
}

// SubmitContact handles one contact-capture step. A validation failure
// re-prompts the same step via Prompt and does not advance; it is not an
// error. The final valid phone number triggers the lead submission.
func (a *AssessmentService) SubmitContact(ctx context.Context, sessionID string, value string) (*response_models.AssessmentStateResponse, error) {
	var resp *response_models.AssessmentStateResponse

	busy, err := a.sessions.Update(sessionID, func(session *mem.AssessmentSession) error {
		if session.Phase != mem.PhaseCollectingContact {
			return utils.ErrWrongPhase
		}

		value = strings.TrimSpace(value)
		var retryPrompt string

		switch session.ContactStep {
		case mem.StepName:
			if !utils.ValidateName(value) {
				retryPrompt = retryName
				break
			}
			session.Name = value
			session.ContactStep = mem.StepEmail

		case mem.StepEmail:
			if !utils.ValidateEmail(value) {
				retryPrompt = retryEmail
				break
			}
			session.Email = value
			session.ContactStep = mem.StepPhone

		case mem.StepPhone:
			if !utils.ValidatePhone(value) {
				retryPrompt = retryPhone
				break
			}
			session.Phone = value

			if err := a.leadService.SubmitLead(ctx, buildLead(session)); err != nil {
				// Session state is kept so the user can retry the
				// submission without re-answering anything.
				return err
			}
			session.Phase = mem.PhaseSubmitted
		}

		var buildErr error
		resp, buildErr = a.stateResponse(ctx, session)
		if buildErr != nil {
			return buildErr
		}
		if retryPrompt != "" {
			resp.Prompt = retryPrompt
		}
		return nil
	})
	if busy {
		return nil, utils.ErrAnswerInFlight
	}
	if err != nil {
		return nil, translateSessionErr(err)
	}
	return resp, nil
}

func buildLead(session *mem.AssessmentSession) *db_models.Lead {
	answers := make([]string, 0, len(session.Answers))
	for _, answer := range session.Answers {
		answers = append(answers, fmt.Sprintf("Q%d: %s", answer.QuestionIndex+1, answer.Answer))
	}

	return &db_models.Lead{
		Name:        session.Name,
		Email:       session.Email,
		Phone:       session.Phone,
		QuizType:    session.QuizType,
		Score:       session.Score,
		Severity:    session.Severity,
		Answers:     answers,
		DoctorID:    session.DoctorID,
		PhysicianID: session.PhysicianID,
		LeadSource:  session.LeadSource,
		UTMSource:   session.UTMSource,
		UTMMedium:   session.UTMMedium,
		UTMCampaign: session.UTMCampaign,
		SubmittedAt: time.Now(),
	}
}

// Retake discards the old session and starts a brand-new one against the
// same instrument (or back at triage when the run began with a branch
// question).
func (a *AssessmentService) Retake(ctx context.Context, sessionID string) (*response_models.AssessmentStateResponse, error) {
	old := a.sessions.Get(sessionID)
	if old == nil {
		return nil, utils.ErrSessionNotFound
	}

	routing := request_models.RoutingContext{
		DoctorID:     old.DoctorID,
		PhysicianID:  old.PhysicianID,
		LeadSource:   old.LeadSource,
		UTMSource:    old.UTMSource,
		UTMMedium:    old.UTMMedium,
		UTMCampaign:  old.UTMCampaign,
		PracticeName: old.PracticeName,
	}

	quizType := old.QuizType
	if old.StartedWithTriage {
		quizType = ""
	}

	resp, err := a.Start(ctx, quizType, routing)
	if err != nil {
		return nil, err
	}

	a.sessions.Delete(sessionID)
	return resp, nil
}

func (a *AssessmentService) GetState(ctx context.Context, sessionID string) (*response_models.AssessmentStateResponse, error) {
	session := a.sessions.Get(sessionID)
	if session == nil {
		return nil, utils.ErrSessionNotFound
	}
	return a.stateResponse(ctx, session)
}

func (a *AssessmentService) stateResponse(ctx context.Context, session *mem.AssessmentSession) (*response_models.AssessmentStateResponse, error) {
	resp := &response_models.AssessmentStateResponse{
		SessionID: session.ID,
		QuizType:  session.QuizType,
		Phase:     string(session.Phase),
	}

	switch session.Phase {
	case mem.PhaseTriage:
		triage := a.bank.Triage()
		view := &response_models.TriageView{Text: triage.Text}
		for _, opt := range triage.Options {
			view.Options = append(view.Options, opt.Text)
		}
		resp.Triage = view

	case mem.PhaseInProgress:
		def, err := a.definitionFor(ctx, session)
		if err != nil {
			return nil, err
		}
		question := def.Questions[session.CurrentQuestionIndex]
		view := &response_models.QuestionView{
			Index:          session.CurrentQuestionIndex,
			Text:           question.Text,
			TotalQuestions: len(def.Questions),
		}
		for _, opt := range question.Options {
			view.Options = append(view.Options, opt.Text)
		}
		resp.Question = view

	case mem.PhaseCollectingContact:
		resp.ContactStep = string(session.ContactStep)
		resp.Result = resultView(session)
		switch session.ContactStep {
		case mem.StepName:
			resp.Prompt = promptAskName
		case mem.StepEmail:
			resp.Prompt = promptAskEmail
		case mem.StepPhone:
			resp.Prompt = promptAskPhone
		}

	case mem.PhaseSubmitted:
		resp.Result = resultView(session)
		resp.Prompt = promptDone
	}

	return resp, nil
}

func resultView(session *mem.AssessmentSession) *response_models.ResultView {
	return &response_models.ResultView{
		Score:          session.Score,
		MaxScore:       session.MaxScore,
		Severity:       session.Severity,
		Interpretation: session.Interpretation,
	}
}

func translateSessionErr(err error) error {
	if err == mem.ErrNoSession {
		return utils.ErrSessionNotFound
	}
	return err
}
