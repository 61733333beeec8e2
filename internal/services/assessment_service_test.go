package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"entlead/internal/models/db_models"
	"entlead/internal/models/request_models"
	"entlead/internal/models/response_models"
	"entlead/internal/quizbank"
	"entlead/pkg/utils"

	mem "entlead/pkg/memcache"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type fakeLeadService struct {
	mu        sync.Mutex
	submitErr error
	leads     []*db_models.Lead
	partials  []*db_models.PartialSubmission
}

func (f *fakeLeadService) SubmitLead(_ context.Context, lead *db_models.Lead) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.submitErr != nil {
		return f.submitErr
	}
	f.leads = append(f.leads, lead)
	return nil
}

func (f *fakeLeadService) RecordPartial(partial *db_models.PartialSubmission) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.partials = append(f.partials, partial)
}

func (f *fakeLeadService) ListLeads(context.Context, string, int, int) ([]response_models.LeadView, error) {
	return nil, nil
}

func (f *fakeLeadService) Stats(context.Context, string) (response_models.DashboardStats, error) {
	return response_models.DashboardStats{}, nil
}

func (f *fakeLeadService) setSubmitErr(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.submitErr = err
}

func (f *fakeLeadService) partialCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.partials)
}

func (f *fakeLeadService) lastLead() *db_models.Lead {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.leads) == 0 {
		return nil
	}
	return f.leads[len(f.leads)-1]
}

type fakeCustomQuizRepo struct {
	mu      sync.Mutex
	quizzes map[string]*db_models.CustomQuiz

	// When gate is set, GetByID signals entered and then blocks until the
	// gate closes. Used to hold a session update open mid-flight.
	gate    chan struct{}
	entered chan struct{}
}

func (f *fakeCustomQuizRepo) Create(context.Context, *db_models.CustomQuiz) (uuid.UUID, error) {
	return uuid.Nil, nil
}

func (f *fakeCustomQuizRepo) GetByID(_ context.Context, id string) (*db_models.CustomQuiz, error) {
	f.mu.Lock()
	gate, entered := f.gate, f.entered
	quiz := f.quizzes[id]
	f.mu.Unlock()

	if gate != nil {
		entered <- struct{}{}
		<-gate
	}
	return quiz, nil
}

func (f *fakeCustomQuizRepo) setGate(gate, entered chan struct{}) {
	f.mu.Lock()
	f.gate = gate
	f.entered = entered
	f.mu.Unlock()
}

func (f *fakeCustomQuizRepo) ListByDoctor(context.Context, string) ([]db_models.CustomQuiz, error) {
	return nil, nil
}

func (f *fakeCustomQuizRepo) Delete(context.Context, uuid.UUID, uuid.UUID) error {
	return nil
}

func newTestService(t *testing.T) (AssessmentServiceInterface, *fakeLeadService, *fakeCustomQuizRepo) {
	t.Helper()
	bank, err := quizbank.NewBank()
	require.NoError(t, err)

	leads := &fakeLeadService{}
	customs := &fakeCustomQuizRepo{quizzes: map[string]*db_models.CustomQuiz{}}
	svc := NewAssessmentService(bank, customs, mem.NewSessions(), leads)
	return svc, leads, customs
}

func answerAll(t *testing.T, svc AssessmentServiceInterface, sessionID string, count int) *response_models.AssessmentStateResponse {
	t.Helper()
	var resp *response_models.AssessmentStateResponse
	var err error
	for i := 0; i < count; i++ {
		resp, err = svc.SubmitAnswer(context.Background(), sessionID, request_models.AnswerRequest{
			QuestionIndex: i,
			AnswerIndex:   0,
		})
		require.NoError(t, err)
	}
	return resp
}

func TestStartWithTriageBranch(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	resp, err := svc.Start(ctx, "", request_models.RoutingContext{})
	require.NoError(t, err)
	require.Equal(t, "triage", resp.Phase)
	require.NotNil(t, resp.Triage)
	require.Len(t, resp.Triage.Options, 2)
	require.Nil(t, resp.Question)

	resp, err = svc.SelectTriage(ctx, resp.SessionID, 0)
	require.NoError(t, err)
	require.Equal(t, "in_progress", resp.Phase)
	require.Equal(t, "NOSE", resp.QuizType)
	require.NotNil(t, resp.Question)
	require.Equal(t, 0, resp.Question.Index)
	require.Equal(t, 5, resp.Question.TotalQuestions)
}

func TestStartUnknownQuiz(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.Start(context.Background(), "NOPE", request_models.RoutingContext{})
	require.ErrorIs(t, err, utils.ErrQuizNotFound)
}

func TestFullFlowSubmitsLead(t *testing.T) {
	svc, leads, _ := newTestService(t)
	ctx := context.Background()

	routing := request_models.RoutingContext{
		DoctorID:     "dr-smith",
		LeadSource:   "facebook-ad",
		UTMCampaign:  "spring-sinus",
		PracticeName: "Lakeside ENT",
	}

	start, err := svc.Start(ctx, "TNSS", routing)
	require.NoError(t, err)

	resp := answerAll(t, svc, start.SessionID, 4)
	require.Equal(t, "collecting_contact", resp.Phase)
	require.Equal(t, "name", resp.ContactStep)
	require.Equal(t, promptAskName, resp.Prompt)
	require.NotNil(t, resp.Result)

	resp, err = svc.SubmitContact(ctx, start.SessionID, "Ann Smith")
	require.NoError(t, err)
	require.Equal(t, "email", resp.ContactStep)
	require.Equal(t, promptAskEmail, resp.Prompt)

	// Invalid email re-prompts the same step without advancing.
	resp, err = svc.SubmitContact(ctx, start.SessionID, "not-an-email")
	require.NoError(t, err)
	require.Equal(t, "email", resp.ContactStep)
	require.Equal(t, retryEmail, resp.Prompt)

	resp, err = svc.SubmitContact(ctx, start.SessionID, "ann@example.com")
	require.NoError(t, err)
	require.Equal(t, "phone", resp.ContactStep)

	resp, err = svc.SubmitContact(ctx, start.SessionID, "12345")
	require.NoError(t, err)
	require.Equal(t, "phone", resp.ContactStep)
	require.Equal(t, retryPhone, resp.Prompt)

	resp, err = svc.SubmitContact(ctx, start.SessionID, "555-123-4567")
	require.NoError(t, err)
	require.Equal(t, "submitted", resp.Phase)
	require.Equal(t, promptDone, resp.Prompt)

	lead := leads.lastLead()
	require.NotNil(t, lead)
	require.Equal(t, "Ann Smith", lead.Name)
	require.Equal(t, "ann@example.com", lead.Email)
	require.Equal(t, "555-123-4567", lead.Phone)
	require.Equal(t, "TNSS", lead.QuizType)
	require.Equal(t, "dr-smith", lead.DoctorID)
	require.Equal(t, "facebook-ad", lead.LeadSource)
	require.Equal(t, "spring-sinus", lead.UTMCampaign)
	require.Len(t, lead.Answers, 4)
	require.Contains(t, lead.Answers[0], "Q1: ")
}

func TestSubmitAnswerOutOfOrder(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	start, err := svc.Start(ctx, "NOSE", request_models.RoutingContext{})
	require.NoError(t, err)

	_, err = svc.SubmitAnswer(ctx, start.SessionID, request_models.AnswerRequest{QuestionIndex: 0, AnswerIndex: 1})
	require.NoError(t, err)

	// A repeated submission for the already-answered question is a stale
	// duplicate and must not mutate the session.
	_, err = svc.SubmitAnswer(ctx, start.SessionID, request_models.AnswerRequest{QuestionIndex: 0, AnswerIndex: 3})
	require.ErrorIs(t, err, utils.ErrOutOfOrderAnswer)

	state, err := svc.GetState(ctx, start.SessionID)
	require.NoError(t, err)
	require.Equal(t, 1, state.Question.Index)
}

func TestSubmitAnswerInvalidOption(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	start, err := svc.Start(ctx, "NOSE", request_models.RoutingContext{})
	require.NoError(t, err)

	_, err = svc.SubmitAnswer(ctx, start.SessionID, request_models.AnswerRequest{QuestionIndex: 0, AnswerIndex: 99})
	require.ErrorIs(t, err, utils.ErrInvalidAnswer)
}

func TestWrongPhaseGuards(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	start, err := svc.Start(ctx, "NOSE", request_models.RoutingContext{})
	require.NoError(t, err)

	_, err = svc.SelectTriage(ctx, start.SessionID, 0)
	require.ErrorIs(t, err, utils.ErrWrongPhase)

	_, err = svc.SubmitContact(ctx, start.SessionID, "Ann Smith")
	require.ErrorIs(t, err, utils.ErrWrongPhase)

	_, err = svc.GetState(ctx, "missing-session")
	require.ErrorIs(t, err, utils.ErrSessionNotFound)
}

func TestPartialFiresOnce(t *testing.T) {
	svc, leads, _ := newTestService(t)
	ctx := context.Background()

	start, err := svc.Start(ctx, "NOSE", request_models.RoutingContext{DoctorID: "dr-smith"})
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err = svc.SubmitAnswer(ctx, start.SessionID, request_models.AnswerRequest{QuestionIndex: i, AnswerIndex: 0})
		require.NoError(t, err)
	}

	require.Eventually(t, func() bool {
		return leads.partialCount() == 1
	}, time.Second, 10*time.Millisecond)

	require.Equal(t, "NOSE", leads.partials[0].QuizType)
	require.Equal(t, "dr-smith", leads.partials[0].DoctorID)
	require.True(t, leads.partials[0].IsPartial)
}

func TestSubmitFailureKeepsStateForRetry(t *testing.T) {
	svc, leads, _ := newTestService(t)
	ctx := context.Background()

	start, err := svc.Start(ctx, "TNSS", request_models.RoutingContext{})
	require.NoError(t, err)
	answerAll(t, svc, start.SessionID, 4)

	_, err = svc.SubmitContact(ctx, start.SessionID, "Ann Smith")
	require.NoError(t, err)
	_, err = svc.SubmitContact(ctx, start.SessionID, "ann@example.com")
	require.NoError(t, err)

	leads.setSubmitErr(utils.ErrSubmissionFailed)
	_, err = svc.SubmitContact(ctx, start.SessionID, "555-123-4567")
	require.ErrorIs(t, err, utils.ErrSubmissionFailed)

	// Answers and contact info survive a failed submission.
	state, err := svc.GetState(ctx, start.SessionID)
	require.NoError(t, err)
	require.Equal(t, "collecting_contact", state.Phase)
	require.Equal(t, "phone", state.ContactStep)

	leads.setSubmitErr(nil)
	resp, err := svc.SubmitContact(ctx, start.SessionID, "555-123-4567")
	require.NoError(t, err)
	require.Equal(t, "submitted", resp.Phase)
	require.NotNil(t, leads.lastLead())
}

func TestRetake(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	start, err := svc.Start(ctx, "NOSE", request_models.RoutingContext{DoctorID: "dr-smith"})
	require.NoError(t, err)
	_, err = svc.SubmitAnswer(ctx, start.SessionID, request_models.AnswerRequest{QuestionIndex: 0, AnswerIndex: 2})
	require.NoError(t, err)

	fresh, err := svc.Retake(ctx, start.SessionID)
	require.NoError(t, err)
	require.NotEqual(t, start.SessionID, fresh.SessionID)
	require.Equal(t, "in_progress", fresh.Phase)
	require.Equal(t, "NOSE", fresh.QuizType)
	require.Equal(t, 0, fresh.Question.Index)

	_, err = svc.GetState(ctx, start.SessionID)
	require.ErrorIs(t, err, utils.ErrSessionNotFound)
}

func TestRetakeReturnsToTriage(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	start, err := svc.Start(ctx, "", request_models.RoutingContext{})
	require.NoError(t, err)
	inProgress, err := svc.SelectTriage(ctx, start.SessionID, 1)
	require.NoError(t, err)
	require.Equal(t, "SNOT12", inProgress.QuizType)

	fresh, err := svc.Retake(ctx, start.SessionID)
	require.NoError(t, err)
	require.Equal(t, "triage", fresh.Phase)
	require.Empty(t, fresh.QuizType)
}

func TestConcurrentAnswerSingleFlight(t *testing.T) {
	svc, _, customs := newTestService(t)
	ctx := context.Background()

	quizID := uuid.New()
	customs.quizzes[quizID.String()] = &db_models.CustomQuiz{
		BaseModel: db_models.BaseModel{ID: quizID},
		Title:     "Snoring check",
		Questions: []db_models.CustomQuestion{
			{Prompt: "How often do you snore?", Options: []db_models.CustomOption{
				{Label: "Never", Points: 0}, {Label: "Nightly", Points: 5},
			}},
			{Prompt: "Daytime sleepiness?", Options: []db_models.CustomOption{
				{Label: "No", Points: 0}, {Label: "Yes", Points: 5},
			}},
		},
	}

	start, err := svc.Start(ctx, quizbank.CustomQuizPrefix+quizID.String(), request_models.RoutingContext{})
	require.NoError(t, err)

	// Hold the first update open inside the definition lookup, then race a
	// second answer against it.
	gate := make(chan struct{})
	entered := make(chan struct{}, 1)
	customs.setGate(gate, entered)

	firstDone := make(chan error, 1)
	go func() {
		_, err := svc.SubmitAnswer(ctx, start.SessionID, request_models.AnswerRequest{QuestionIndex: 0, AnswerIndex: 1})
		firstDone <- err
	}()
	<-entered

	_, err = svc.SubmitAnswer(ctx, start.SessionID, request_models.AnswerRequest{QuestionIndex: 0, AnswerIndex: 1})
	require.ErrorIs(t, err, utils.ErrAnswerInFlight)

	close(gate)
	customs.setGate(nil, nil)
	require.NoError(t, <-firstDone)

	state, err := svc.GetState(ctx, start.SessionID)
	require.NoError(t, err)
	require.Equal(t, 1, state.Question.Index)
}
