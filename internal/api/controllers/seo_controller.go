package controllers

import (
	"net/http"

	"entlead/internal/models/request_models"
	"entlead/internal/services"
	"entlead/pkg/utils"

	"github.com/gin-gonic/gin"
)

type SEOController struct {
	seoService services.SEOServiceInterface
}

func NewSEOController(seoService services.SEOServiceInterface) *SEOController {
	return &SEOController{seoService: seoService}
}

func (s *SEOController) Analyze(c *gin.Context) {
	var req request_models.SEOAnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	verdict, err := s.seoService.Analyze(c.Request.Context(), req.URL)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, verdict, "SEO analysis complete")
}
