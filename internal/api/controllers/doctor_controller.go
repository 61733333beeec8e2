package controllers

import (
	"net/http"

	"entlead/internal/models/request_models"
	"entlead/internal/services"
	"entlead/pkg/utils"

	"github.com/gin-gonic/gin"
)

type DoctorController struct {
	doctorService services.DoctorServiceInterface
}

func NewDoctorController(doctorService services.DoctorServiceInterface) *DoctorController {
	return &DoctorController{
		doctorService: doctorService,
	}
}

// Register godoc
// @Summary Register a doctor account
// @Description Create a dashboard account for a practice
// @Tags Doctors
// @Accept json
// @Produce json
// @Param request body request_models.SignUpRequest true "Registration payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /doctors/register [post]
func (d *DoctorController) Register(c *gin.Context) {
	var req request_models.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := d.doctorService.CreateAccount(c.Request.Context(), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Account created successfully")
}

// Login godoc
// @Summary Login to a doctor account
// @Description Authenticate and return a bearer token
// @Tags Doctors
// @Accept json
// @Produce json
// @Param request body request_models.LoginRequest true "Login payload"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /doctors/login [post]
func (d *DoctorController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	token, err := d.doctorService.Login(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"token": token}, "Login successful")
}
