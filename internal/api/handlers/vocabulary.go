package handlers

import (
	"net/http"

	"impact-explorer-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// VocabularyHandler handles HTTP requests for lookup vocabularies
type VocabularyHandler struct {
	service service.VocabularyServiceInterface
}

// NewVocabularyHandler creates a new vocabulary handler
func NewVocabularyHandler(service service.VocabularyServiceInterface) *VocabularyHandler {
	return &VocabularyHandler{service: service}
}

// GetLookups handles GET /api/v1/lookups
// @Summary Get lookup vocabularies
// @Description Get all vocabulary names the filter bar and admin form offer, fetched per table
// @Tags lookups
// @Accept json
// @Produce json
// @Success 200 {object} service.LookupsResponse "Successfully retrieved lookups"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /lookups [get]
func (h *VocabularyHandler) GetLookups(c *gin.Context) {
	lookups, err := h.service.Lookups()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get lookups", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, lookups)
}
