package handlers

import (
	"net/http"

	"assessment-portal-backend/internal/survey"

	"github.com/gin-gonic/gin"
)

// SurveyHandler serves the fixed question catalog
type SurveyHandler struct {
	questions []survey.Question
}

// NewSurveyHandler creates a new survey handler
func NewSurveyHandler(questions []survey.Question) *SurveyHandler {
	return &SurveyHandler{questions: questions}
}

// ListQuestions handles GET /api/questions
// @Summary List the survey questions
// @Tags survey
// @Produce json
// @Success 200 {array} survey.Question "Questions"
// @Router /questions [get]
func (h *SurveyHandler) ListQuestions(c *gin.Context) {
	c.JSON(http.StatusOK, h.questions)
}
