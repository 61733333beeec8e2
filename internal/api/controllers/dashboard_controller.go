package controllers

import (
	"net/http"
	"strconv"

	"entlead/internal/models/request_models"
	"entlead/internal/services"
	"entlead/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type DashboardController struct {
	leadService       services.LeadServiceInterface
	customQuizService services.CustomQuizServiceInterface
}

func NewDashboardController(
	leadService services.LeadServiceInterface,
	customQuizService services.CustomQuizServiceInterface,
) *DashboardController {
	return &DashboardController{
		leadService:       leadService,
		customQuizService: customQuizService,
	}
}

// doctorID reads the authenticated doctor from the JWT middleware.
func doctorID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.GetString("doctor_id"))
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid token subject")
		return uuid.Nil, false
	}
	return id, true
}

func (d *DashboardController) ListLeads(c *gin.Context) {
	id, ok := doctorID(c)
	if !ok {
		return
	}

	pageStr := c.DefaultQuery("page", "1")
	pageSizeStr := c.DefaultQuery("pageSize", "20")

	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page number")
		return
	}

	pageSize, err := strconv.Atoi(pageSizeStr)
	if err != nil || pageSize < 1 || pageSize > 100 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page size (must be 1-100)")
		return
	}

	leads, err := d.leadService.ListLeads(c.Request.Context(), id.String(), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, leads, "Leads fetched successfully")
}

func (d *DashboardController) Stats(c *gin.Context) {
	id, ok := doctorID(c)
	if !ok {
		return
	}

	stats, err := d.leadService.Stats(c.Request.Context(), id.String())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, stats, "Stats fetched successfully")
}

func (d *DashboardController) CreateQuiz(c *gin.Context) {
	id, ok := doctorID(c)
	if !ok {
		return
	}

	var req request_models.CreateCustomQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	quizType, err := d.customQuizService.Create(c.Request.Context(), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"quiz_type": quizType}, "Custom quiz created")
}

func (d *DashboardController) ListQuizzes(c *gin.Context) {
	id, ok := doctorID(c)
	if !ok {
		return
	}

	quizzes, err := d.customQuizService.ListByDoctor(c.Request.Context(), id.String())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, quizzes, "Custom quizzes fetched successfully")
}

func (d *DashboardController) DeleteQuiz(c *gin.Context) {
	id, ok := doctorID(c)
	if !ok {
		return
	}

	quizID := c.Param("id")
	if quizID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Quiz ID is required")
		return
	}

	if err := d.customQuizService.Delete(c.Request.Context(), quizID, id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Custom quiz deleted")
}
