package controllers

import (
	"net/http"

	"entlead/internal/quizbank"
	"entlead/pkg/utils"

	"github.com/gin-gonic/gin"
)

type QuizController struct {
	bank *quizbank.Bank
}

func NewQuizController(bank *quizbank.Bank) *QuizController {
	return &QuizController{bank: bank}
}

func (q *QuizController) List(c *gin.Context) {
	utils.RespondSuccess(c, q.bank.IDs(), "Quizzes fetched successfully")
}

func (q *QuizController) Get(c *gin.Context) {
	quizType := c.Param("quizType")
	if quizType == "" {
		utils.RespondError(c, http.StatusBadRequest, "Quiz type is required")
		return
	}

	def, err := q.bank.Get(quizType)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, def, "Quiz fetched successfully")
}
