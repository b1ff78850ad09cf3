package handlers

import (
	"net/http"

	"impact-explorer-backend/internal/database/models"
	"impact-explorer-backend/internal/filter"
	"impact-explorer-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the catalog aggregation view
type DashboardHandler struct {
	service service.OrganizationServiceInterface
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(service service.OrganizationServiceInterface) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// DashboardResponse is the per-category tag breakdown of the catalog
type DashboardResponse struct {
	TotalOrganizations int               `json:"total_organizations"`
	CurrentlyHiring    int               `json:"currently_hiring"`
	OrgTypes           []filter.TagCount `json:"org_types"`
	CauseAreas         []filter.TagCount `json:"cause_areas"`
	RoleTypes          []filter.TagCount `json:"role_types"`
	Regions            []filter.TagCount `json:"regions"`
	TargetPopulations  []filter.TagCount `json:"target_populations"`
}

// GetDashboard handles GET /api/v1/dashboard
// @Summary Get catalog aggregations
// @Description Count organizations per distinct tag of each category, sorted by descending count
// @Tags dashboard
// @Accept json
// @Produce json
// @Success 200 {object} DashboardResponse "Successfully computed aggregations"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /dashboard [get]
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	orgs, err := h.service.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute dashboard", "details": err.Error()})
		return
	}

	hiring := 0
	for i := range orgs {
		if orgs[i].HiringStatus == "Actively Hiring" {
			hiring++
		}
	}

	c.JSON(http.StatusOK, DashboardResponse{
		TotalOrganizations: len(orgs),
		CurrentlyHiring:    hiring,
		OrgTypes:           filter.CountBy(orgs, models.KeyOrgType),
		CauseAreas:         filter.CountBy(orgs, models.KeyCauseAreas),
		RoleTypes:          filter.CountBy(orgs, models.KeyRoleTypes),
		Regions:            filter.CountBy(orgs, models.KeyRegions),
		TargetPopulations:  filter.CountBy(orgs, models.KeyTargetPopulations),
	})
}
