package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	traceID, _ := c.Get("trace_id")
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceID.(string),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	traceID, _ := c.Get("trace_id")
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID.(string),
	})
}

func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrQuizNotFound):
		RespondError(c, http.StatusNotFound, "Assessment not found")
	case errors.Is(err, ErrSessionNotFound):
		RespondError(c, http.StatusNotFound, "Assessment session not found or expired")
	case errors.Is(err, ErrShortLinkNotFound):
		RespondError(c, http.StatusNotFound, "Short link not found")
	case errors.Is(err, ErrDoctorNotFound):
		RespondError(c, http.StatusNotFound, "Doctor not found")
	case errors.Is(err, ErrOutOfOrderAnswer), errors.Is(err, ErrAnswerInFlight):
		RespondError(c, http.StatusConflict, "Answer ignored: not the current question")
	case errors.Is(err, ErrWrongPhase):
		RespondError(c, http.StatusConflict, "Action not allowed in the current phase")
	case errors.Is(err, ErrInvalidAnswer), errors.Is(err, ErrInvalidInput):
		RespondError(c, http.StatusBadRequest, "Invalid request")
	case errors.Is(err, ErrInvalidContact):
		RespondError(c, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, ErrInvalidPage):
		RespondError(c, http.StatusBadRequest, "Page must be greater than 0")
	case errors.Is(err, ErrInvalidPageSize):
		RespondError(c, http.StatusBadRequest, "Page size must be between 1 and 100")
	case errors.Is(err, ErrEmailAlreadyExists):
		RespondError(c, http.StatusConflict, "Email already registered")
	case errors.Is(err, ErrInvalidCredentials):
		RespondError(c, http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, ErrShortLinkExhausted):
		RespondError(c, http.StatusServiceUnavailable, "Could not create short link, please try again")
	case errors.Is(err, ErrSubmissionFailed):
		RespondError(c, http.StatusBadGateway, "Submission failed, your answers are saved - please retry")
	case errors.Is(err, ErrUpstreamFailure):
		RespondError(c, http.StatusBadGateway, "Upstream service failure")
	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
