package repository

import (
	"impact-explorer-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListLimit caps the list query. The catalog is small; there is no paging.
const ListLimit = 200

// organizationFormColumns are the base-row columns overwritten by every
// create/update form. Updates are full replace-by-form: omitted optional
// fields become empty, they are never left at their stored value.
var organizationFormColumns = []string{
	"name", "description", "website", "hiring_status", "size", "hq",
	"year_established", "notes", "notable_alumni",
	"org_type_id", "employee_range_id",
}

// OrganizationRepository handles database operations for organizations
type OrganizationRepository struct {
	db *gorm.DB
}

// NewOrganizationRepository creates a new organization repository
func NewOrganizationRepository(db *gorm.DB) *OrganizationRepository {
	return &OrganizationRepository{db: db}
}

func (r *OrganizationRepository) withRelations() *gorm.DB {
	return r.db.
		Preload("OrgType").
		Preload("EmployeeRange").
		Preload("CauseAreas").
		Preload("RoleTypes").
		Preload("Regions").
		Preload("TargetPopulations")
}

// List retrieves all organizations with their lookup and junction rows
// joined, newest first, capped at ListLimit.
func (r *OrganizationRepository) List() ([]models.Organization, error) {
	var orgs []models.Organization
	err := r.withRelations().
		Order("created_at DESC").
		Limit(ListLimit).
		Find(&orgs).Error
	return orgs, err
}

// GetByID retrieves an organization with all its relations
func (r *OrganizationRepository) GetByID(id uuid.UUID) (*models.Organization, error) {
	var org models.Organization
	err := r.withRelations().First(&org, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &org, nil
}

// Create inserts the base row. Association rows are written separately by
// the association repository; a failed insert here means nothing was created.
func (r *OrganizationRepository) Create(org *models.Organization) error {
	return r.db.Create(org).Error
}

// Update issues a full-column update of the base row: every form column is
// overwritten, including zero values for fields the caller left empty.
func (r *OrganizationRepository) Update(org *models.Organization) error {
	return r.db.Model(&models.Organization{}).
		Where("id = ?", org.ID).
		Select(organizationFormColumns).
		Updates(org).Error
}

// Delete removes the base row after explicitly deleting the dependent
// junction rows, so the cascade contract holds regardless of whether the
// database schema enforces it.
func (r *OrganizationRepository) Delete(id uuid.UUID) error {
	junctions := []interface{}{
		&models.OrganizationCauseArea{},
		&models.OrganizationRoleType{},
		&models.OrganizationRegion{},
		&models.OrganizationTargetPopulation{},
	}
	for _, junction := range junctions {
		if err := r.db.Where("organization_id = ?", id).Delete(junction).Error; err != nil {
			return err
		}
	}
	return r.db.Delete(&models.Organization{}, "id = ?", id).Error
}
