package controllers

import (
	"net/http"

	"entlead/internal/models/request_models"
	"entlead/internal/services"
	"entlead/pkg/utils"

	"github.com/gin-gonic/gin"
)

type SocialController struct {
	socialService services.SocialServiceInterface
}

func NewSocialController(socialService services.SocialServiceInterface) *SocialController {
	return &SocialController{socialService: socialService}
}

func (s *SocialController) Generate(c *gin.Context) {
	var req request_models.SocialGenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	content, err := s.socialService.GeneratePosts(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, content, "Social content generated")
}
