package utils

import "errors"

var (
	ErrQuizNotFound       = errors.New("quiz not found")
	ErrSessionNotFound    = errors.New("session not found")
	ErrOutOfOrderAnswer   = errors.New("answer does not target the current question")
	ErrAnswerInFlight     = errors.New("another answer is being processed")
	ErrInvalidAnswer      = errors.New("invalid answer option")
	ErrWrongPhase         = errors.New("operation not allowed in current phase")
	ErrIncompleteAnswers  = errors.New("answer set does not cover every question")
	ErrInvalidContact     = errors.New("invalid contact value")
	ErrShortLinkNotFound  = errors.New("short link not found")
	ErrShortLinkExhausted = errors.New("could not allocate a short code")
	ErrInvalidPage        = errors.New("invalid page parameter")
	ErrInvalidPageSize    = errors.New("invalid page size parameter")
	ErrDoctorNotFound     = errors.New("doctor not found")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUpstreamFailure    = errors.New("upstream service failure")
	ErrSubmissionFailed   = errors.New("lead submission failed")
	ErrInvalidInput       = errors.New("invalid input")
	ErrDatabaseError      = errors.New("database error")
)
