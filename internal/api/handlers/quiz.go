package handlers

import (
	"net/http"

	"impact-explorer-backend/internal/database/models"
	"impact-explorer-backend/internal/filter"
	"impact-explorer-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// QuizHandler turns quiz answers into filtered results
type QuizHandler struct {
	service service.OrganizationServiceInterface
}

// NewQuizHandler creates a new quiz handler
func NewQuizHandler(service service.OrganizationServiceInterface) *QuizHandler {
	return &QuizHandler{service: service}
}

// QuizRequest is the ordered list of answered quiz questions
type QuizRequest struct {
	Answers []filter.QuizAnswer `json:"answers" binding:"required"`
}

// QuizResponse pairs the composed criteria with the matching organizations
type QuizResponse struct {
	Criteria      filter.Criteria           `json:"criteria"`
	Organizations []models.FlatOrganization `json:"organizations"`
}

// GetQuizResults handles POST /api/v1/quiz/results
// @Summary Resolve quiz answers into organizations
// @Description Fold answers into filter criteria (answering a key again overwrites its earlier values) and return the matching organizations
// @Tags quiz
// @Accept json
// @Produce json
// @Param answers body QuizRequest true "Answered quiz questions in order"
// @Success 200 {object} QuizResponse "Composed criteria and matching organizations"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /quiz/results [post]
func (h *QuizHandler) GetQuizResults(c *gin.Context) {
	var req QuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	orgs, err := h.service.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve quiz results", "details": err.Error()})
		return
	}

	criteria := filter.Compose(req.Answers)
	c.JSON(http.StatusOK, QuizResponse{
		Criteria:      criteria,
		Organizations: filter.Filter(orgs, criteria),
	})
}
