package repository

import (
	"impact-explorer-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AssociationRepository owns the four category junction tables. Replacement
// is idempotent set-replace: delete every existing row for the organization,
// then insert one row per resolved id. The delete runs unconditionally, so a
// failed insert afterwards leaves the category empty rather than stale.
type AssociationRepository struct {
	db *gorm.DB
}

// NewAssociationRepository creates a new association repository
func NewAssociationRepository(db *gorm.DB) *AssociationRepository {
	return &AssociationRepository{db: db}
}

// ReplaceCauseAreas replaces the organization's cause-area associations.
func (r *AssociationRepository) ReplaceCauseAreas(orgID uuid.UUID, ids []uuid.UUID) error {
	if err := r.deleteFor(orgID, &models.OrganizationCauseArea{}); err != nil {
		return err
	}
	if len(ids) == 0 {
		return nil
	}
	rows := make([]models.OrganizationCauseArea, 0, len(ids))
	for _, id := range ids {
		rows = append(rows, models.OrganizationCauseArea{OrganizationID: orgID, CauseAreaID: id})
	}
	return r.db.Create(&rows).Error
}

// ReplaceRoleTypes replaces the organization's role-type associations.
func (r *AssociationRepository) ReplaceRoleTypes(orgID uuid.UUID, ids []uuid.UUID) error {
	if err := r.deleteFor(orgID, &models.OrganizationRoleType{}); err != nil {
		return err
	}
	if len(ids) == 0 {
		return nil
	}
	rows := make([]models.OrganizationRoleType, 0, len(ids))
	for _, id := range ids {
		rows = append(rows, models.OrganizationRoleType{OrganizationID: orgID, RoleTypeID: id})
	}
	return r.db.Create(&rows).Error
}

// ReplaceRegions replaces the organization's region associations.
func (r *AssociationRepository) ReplaceRegions(orgID uuid.UUID, ids []uuid.UUID) error {
	if err := r.deleteFor(orgID, &models.OrganizationRegion{}); err != nil {
		return err
	}
	if len(ids) == 0 {
		return nil
	}
	rows := make([]models.OrganizationRegion, 0, len(ids))
	for _, id := range ids {
		rows = append(rows, models.OrganizationRegion{OrganizationID: orgID, RegionID: id})
	}
	return r.db.Create(&rows).Error
}

// ReplaceTargetPopulations replaces the organization's target-population associations.
func (r *AssociationRepository) ReplaceTargetPopulations(orgID uuid.UUID, ids []uuid.UUID) error {
	if err := r.deleteFor(orgID, &models.OrganizationTargetPopulation{}); err != nil {
		return err
	}
	if len(ids) == 0 {
		return nil
	}
	rows := make([]models.OrganizationTargetPopulation, 0, len(ids))
	for _, id := range ids {
		rows = append(rows, models.OrganizationTargetPopulation{OrganizationID: orgID, TargetPopulationID: id})
	}
	return r.db.Create(&rows).Error
}

// CountForOrganization reports how many association rows reference the
// organization across all four junction tables.
func (r *AssociationRepository) CountForOrganization(orgID uuid.UUID) (int64, error) {
	var total int64
	junctions := []interface{}{
		&models.OrganizationCauseArea{},
		&models.OrganizationRoleType{},
		&models.OrganizationRegion{},
		&models.OrganizationTargetPopulation{},
	}
	for _, junction := range junctions {
		var count int64
		if err := r.db.Model(junction).Where("organization_id = ?", orgID).Count(&count).Error; err != nil {
			return 0, err
		}
		total += count
	}
	return total, nil
}

func (r *AssociationRepository) deleteFor(orgID uuid.UUID, junction interface{}) error {
	return r.db.Where("organization_id = ?", orgID).Delete(junction).Error
}
