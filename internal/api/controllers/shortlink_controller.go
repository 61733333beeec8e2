package controllers

import (
	"net/http"

	"entlead/internal/models/request_models"
	"entlead/internal/services"
	"entlead/pkg/utils"

	"github.com/gin-gonic/gin"
)

type ShortLinkController struct {
	shortLinkService services.ShortLinkServiceInterface
}

func NewShortLinkController(shortLinkService services.ShortLinkServiceInterface) *ShortLinkController {
	return &ShortLinkController{
		shortLinkService: shortLinkService,
	}
}

func (s *ShortLinkController) Create(c *gin.Context) {
	var req request_models.CreateShortLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	link, err := s.shortLinkService.Create(c.Request.Context(), req.TargetURL, req.DoctorID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, link, "Short link created")
}

// Resolve redirects to the stored target, outside the JSON envelope.
func (s *ShortLinkController) Resolve(c *gin.Context) {
	code := c.Param("code")
	if code == "" {
		utils.RespondError(c, http.StatusBadRequest, "Code is required")
		return
	}

	target, err := s.shortLinkService.Resolve(c.Request.Context(), code)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.Redirect(http.StatusFound, target)
}
