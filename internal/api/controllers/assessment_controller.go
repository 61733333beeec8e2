package controllers

import (
	"net/http"

	"entlead/internal/models/request_models"
	"entlead/internal/services"
	"entlead/pkg/utils"

	"github.com/gin-gonic/gin"
)

type AssessmentController struct {
	assessmentService services.AssessmentServiceInterface
}

func NewAssessmentController(assessmentService services.AssessmentServiceInterface) *AssessmentController {
	return &AssessmentController{
		assessmentService: assessmentService,
	}
}

// Start godoc
// @Summary Start an assessment session
// @Description Creates a session for the named quiz, or a triage session when no quiz is given. Attribution query parameters are stamped onto the eventual lead.
// @Tags Assessments
// @Produce json
// @Param quiz query string false "Quiz type (NOSE, SNOT12, SNOT22, TNSS, EPWORTH, CUSTOM:<id>)"
// @Param doctor_id query string false "Doctor routing key"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /assessments/start [post]
func (a *AssessmentController) Start(c *gin.Context) {
	routing := request_models.RoutingContext{
		DoctorID:     c.Query("doctor_id"),
		PhysicianID:  c.Query("physician_id"),
		LeadSource:   c.DefaultQuery("source", "organic"),
		UTMSource:    c.Query("utm_source"),
		UTMMedium:    c.Query("utm_medium"),
		UTMCampaign:  c.Query("utm_campaign"),
		PracticeName: c.Query("practice_name"),
	}

	state, err := a.assessmentService.Start(c.Request.Context(), c.Query("quiz"), routing)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, state, "Assessment session started")
}

func (a *AssessmentController) SelectTriage(c *gin.Context) {
	sessionID := c.Param("sessionId")
	if sessionID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Session ID is required")
		return
	}

	var req request_models.TriageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	state, err := a.assessmentService.SelectTriage(c.Request.Context(), sessionID, req.OptionIndex)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, state, "Triage branch selected")
}

func (a *AssessmentController) SubmitAnswer(c *gin.Context) {
	sessionID := c.Param("sessionId")
	if sessionID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Session ID is required")
		return
	}

	var req request_models.AnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	state, err := a.assessmentService.SubmitAnswer(c.Request.Context(), sessionID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, state, "Answer recorded")
}

func (a *AssessmentController) SubmitContact(c *gin.Context) {
	sessionID := c.Param("sessionId")
	if sessionID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Session ID is required")
		return
	}

	var req request_models.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	state, err := a.assessmentService.SubmitContact(c.Request.Context(), sessionID, req.Value)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, state, "Contact step processed")
}

func (a *AssessmentController) Retake(c *gin.Context) {
	sessionID := c.Param("sessionId")
	if sessionID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Session ID is required")
		return
	}

	state, err := a.assessmentService.Retake(c.Request.Context(), sessionID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, state, "Assessment restarted")
}

func (a *AssessmentController) GetState(c *gin.Context) {
	sessionID := c.Param("sessionId")
	if sessionID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Session ID is required")
		return
	}

	state, err := a.assessmentService.GetState(c.Request.Context(), sessionID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, state, "Session state fetched")
}
