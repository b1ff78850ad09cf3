package handlers

import (
	"errors"
	"net/http"

	apperrors "impact-explorer-backend/internal/errors"
	"impact-explorer-backend/internal/filter"
	"impact-explorer-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// OrganizationHandler handles HTTP requests for organizations
type OrganizationHandler struct {
	service service.OrganizationServiceInterface
}

// NewOrganizationHandler creates a new organization handler
func NewOrganizationHandler(service service.OrganizationServiceInterface) *OrganizationHandler {
	return &OrganizationHandler{service: service}
}

// ListOrganizations handles GET /api/v1/organizations
// @Summary List all organizations
// @Description Get all organizations flattened, newest first, capped at 200 rows
// @Tags organizations
// @Accept json
// @Produce json
// @Success 200 {array} models.FlatOrganization "Successfully retrieved organizations"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /organizations [get]
func (h *OrganizationHandler) ListOrganizations(c *gin.Context) {
	orgs, err := h.service.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list organizations", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, orgs)
}

// GetOrganization handles GET /api/v1/organizations/:id
// @Summary Get organization by ID
// @Description Get a single flattened organization by its UUID
// @Tags organizations
// @Accept json
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Success 200 {object} models.FlatOrganization "Successfully retrieved organization"
// @Failure 400 {object} map[string]interface{} "Invalid organization ID"
// @Failure 404 {object} map[string]interface{} "Organization not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /organizations/{id} [get]
func (h *OrganizationHandler) GetOrganization(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid organization ID: invalid UUID format"})
		return
	}

	org, err := h.service.Get(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrOrganizationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get organization", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, org)
}

// CreateOrganization handles POST /api/v1/organizations
// @Summary Create a new organization
// @Description Create an organization from the flat admin form; unknown vocabulary names are dropped, not rejected
// @Tags organizations
// @Accept json
// @Produce json
// @Param organization body service.OrganizationForm true "Organization form"
// @Success 201 {object} service.WriteResult "Base row created; per-category association outcomes included"
// @Failure 400 {object} map[string]interface{} "Invalid request body or validation failure"
// @Failure 500 {object} map[string]interface{} "Base-row write failed"
// @Security BearerAuth
// @Router /organizations [post]
func (h *OrganizationHandler) CreateOrganization(c *gin.Context) {
	var form service.OrganizationForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	result, err := h.service.Create(&form)
	if err != nil {
		// The base row survives a partial write; only report it as a server
		// failure when nothing was created.
		if apperrors.IsPartialWrite(err) {
			c.JSON(http.StatusCreated, result)
			return
		}
		if result == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to create organization", "details": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create organization", "details": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, result)
}

// UpdateOrganization handles PUT /api/v1/organizations/:id
// @Summary Update an organization
// @Description Full replace-by-form update: every base column is overwritten and all four category associations are replaced
// @Tags organizations
// @Accept json
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param organization body service.OrganizationForm true "Organization form"
// @Success 200 {object} service.WriteResult "Base row updated; per-category association outcomes included"
// @Failure 400 {object} map[string]interface{} "Invalid request body or validation failure"
// @Failure 500 {object} map[string]interface{} "Base-row write failed"
// @Security BearerAuth
// @Router /organizations/{id} [put]
func (h *OrganizationHandler) UpdateOrganization(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid organization ID: invalid UUID format"})
		return
	}

	var form service.OrganizationForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	result, err := h.service.Update(id, &form)
	if err != nil {
		if apperrors.IsPartialWrite(err) {
			c.JSON(http.StatusOK, result)
			return
		}
		if result == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to update organization", "details": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update organization", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

// DeleteOrganization handles DELETE /api/v1/organizations/:id
// @Summary Delete an organization
// @Description Delete an organization and all of its category associations
// @Tags organizations
// @Accept json
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Success 204 "Organization deleted"
// @Failure 400 {object} map[string]interface{} "Invalid organization ID"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /organizations/{id} [delete]
func (h *OrganizationHandler) DeleteOrganization(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid organization ID: invalid UUID format"})
		return
	}

	if err := h.service.Delete(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete organization", "details": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// FilterOrganizations handles POST /api/v1/organizations/filter
// @Summary Filter organizations
// @Description Apply search and per-category criteria to the catalog; categories combine with AND, values within a category with OR
// @Tags organizations
// @Accept json
// @Produce json
// @Param criteria body filter.Criteria true "Filter criteria"
// @Success 200 {array} models.FlatOrganization "Matching organizations, newest first"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /organizations/filter [post]
func (h *OrganizationHandler) FilterOrganizations(c *gin.Context) {
	var criteria filter.Criteria
	if err := c.ShouldBindJSON(&criteria); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	orgs, err := h.service.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to filter organizations", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, filter.Filter(orgs, criteria))
}

// ExportRequest carries the bookmarked organization ids to export
type ExportRequest struct {
	IDs []uuid.UUID `json:"ids"`
}

// ExportOrganizations handles POST /api/v1/organizations/export
// @Summary Export bookmarked organizations as CSV
// @Description Render the organizations matching the submitted bookmark ids as a CSV table
// @Tags organizations
// @Accept json
// @Produce text/csv
// @Param export body ExportRequest true "Bookmarked organization ids"
// @Success 200 {string} string "CSV document"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /organizations/export [post]
func (h *OrganizationHandler) ExportOrganizations(c *gin.Context) {
	var req ExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	csv, err := h.service.ExportCSV(req.IDs)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export organizations", "details": err.Error()})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="saved_orgs.csv"`)
	c.Data(http.StatusOK, "text/csv", []byte(csv))
}
