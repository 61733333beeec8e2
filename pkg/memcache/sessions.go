// pkg/memcache/sessions.go
package mem

import (
	"errors"
	"sync"
	"time"
)

var ErrNoSession = errors.New("session missing or expired")

type Phase string

const (
	PhaseTriage            Phase = "triage"
	PhaseInProgress        Phase = "in_progress"
	PhaseCompleted         Phase = "completed"
	PhaseCollectingContact Phase = "collecting_contact"
	PhaseSubmitted         Phase = "submitted"
)

type ContactStep string

const (
	StepName  ContactStep = "name"
	StepEmail ContactStep = "email"
	StepPhone ContactStep = "phone"
)

type AnswerRecord struct {
	QuestionIndex int
	AnswerIndex   int
	Answer        string
}

// AssessmentSession is one visitor's live run. It exists only in memory
// for the duration of the run; leads and partial submissions are the only
// persisted artifacts.
type AssessmentSession struct {
	ID                   string
	QuizType             string
	CustomQuizID         string
	Phase                Phase
	CurrentQuestionIndex int
	Answers              []AnswerRecord
	ContactStep          ContactStep

	Name  string
	Email string
	Phone string

	// Attribution captured at session start from URL query parameters.
	DoctorID     string
	PhysicianID  string
	LeadSource   string
	UTMSource    string
	UTMMedium    string
	UTMCampaign  string
	PracticeName string

	StartedWithTriage bool
	PartialSent       bool

	Score          int
	MaxScore       int
	Severity       string
	Interpretation string

	mu        sync.Mutex
	expiresAt time.Time
}

type SessionStore interface {
	Put(s *AssessmentSession, ttl time.Duration)

	// Get returns a snapshot copy, or nil if missing/expired.
	Get(id string) *AssessmentSession

	// Update runs fn on the live session while holding its lock. When
	// another Update is already running on the same session, fn is not
	// run and busy is true (single-flight per session).
	Update(id string, fn func(s *AssessmentSession) error) (busy bool, err error)

	Delete(id string)
}

type Sessions struct {
	mu   sync.RWMutex
	data map[string]*AssessmentSession
}

func NewSessions() *Sessions {
	return &Sessions{
		data: make(map[string]*AssessmentSession),
	}
}

func (s *Sessions) Put(session *AssessmentSession, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session.expiresAt = time.Now().Add(ttl)
	s.data[session.ID] = session
}

func (s *Sessions) lookup(id string) *AssessmentSession {
	s.mu.RLock()
	session, ok := s.data[id]
	s.mu.RUnlock()

	if !ok {
		return nil
	}
	if time.Now().After(session.expiresAt) {
		s.Delete(id)
		return nil
	}
	return session
}

func (s *Sessions) Get(id string) *AssessmentSession {
	session := s.lookup(id)
	if session == nil {
		return nil
	}

	session.mu.Lock()
	defer session.mu.Unlock()

	cp := AssessmentSession{
		ID:                   session.ID,
		QuizType:             session.QuizType,
		CustomQuizID:         session.CustomQuizID,
		Phase:                session.Phase,
		CurrentQuestionIndex: session.CurrentQuestionIndex,
		Answers:              append([]AnswerRecord(nil), session.Answers...),
		ContactStep:          session.ContactStep,
		Name:                 session.Name,
		Email:                session.Email,
		Phone:                session.Phone,
		DoctorID:             session.DoctorID,
		PhysicianID:          session.PhysicianID,
		LeadSource:           session.LeadSource,
		UTMSource:            session.UTMSource,
		UTMMedium:            session.UTMMedium,
		UTMCampaign:          session.UTMCampaign,
		PracticeName:         session.PracticeName,
		StartedWithTriage:    session.StartedWithTriage,
		PartialSent:          session.PartialSent,
		Score:                session.Score,
		MaxScore:             session.MaxScore,
		Severity:             session.Severity,
		Interpretation:       session.Interpretation,
		expiresAt:            session.expiresAt,
	}
	return &cp
}

func (s *Sessions) Update(id string, fn func(session *AssessmentSession) error) (bool, error) {
	session := s.lookup(id)
	if session == nil {
		return false, ErrNoSession
	}

	if !session.mu.TryLock() {
		return true, nil
	}
	defer session.mu.Unlock()

	return false, fn(session)
}

func (s *Sessions) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, id)
}
