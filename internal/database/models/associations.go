package models

import (
	"github.com/google/uuid"
)

// The junction models below are registered as gorm join tables (see
// database.Initialize) so reads can Preload the category slices on
// Organization while writes go through the repository's delete-then-insert
// replacement. An association has no identity beyond its (organization, term)
// pair.

// OrganizationCauseArea links an organization to a cause area.
type OrganizationCauseArea struct {
	OrganizationID uuid.UUID `json:"organization_id" gorm:"type:uuid;primaryKey"`
	CauseAreaID    uuid.UUID `json:"cause_area_id" gorm:"type:uuid;primaryKey"`
}

// TableName returns the table name for OrganizationCauseArea
func (OrganizationCauseArea) TableName() string {
	return "organization_cause_areas"
}

// OrganizationRoleType links an organization to a role type.
type OrganizationRoleType struct {
	OrganizationID uuid.UUID `json:"organization_id" gorm:"type:uuid;primaryKey"`
	RoleTypeID     uuid.UUID `json:"role_type_id" gorm:"type:uuid;primaryKey"`
}

// TableName returns the table name for OrganizationRoleType
func (OrganizationRoleType) TableName() string {
	return "organization_role_types"
}

// OrganizationRegion links an organization to a region.
type OrganizationRegion struct {
	OrganizationID uuid.UUID `json:"organization_id" gorm:"type:uuid;primaryKey"`
	RegionID       uuid.UUID `json:"region_id" gorm:"type:uuid;primaryKey"`
}

// TableName returns the table name for OrganizationRegion
func (OrganizationRegion) TableName() string {
	return "organization_regions"
}

// OrganizationTargetPopulation links an organization to a target population.
type OrganizationTargetPopulation struct {
	OrganizationID     uuid.UUID `json:"organization_id" gorm:"type:uuid;primaryKey"`
	TargetPopulationID uuid.UUID `json:"target_population_id" gorm:"type:uuid;primaryKey"`
}

// TableName returns the table name for OrganizationTargetPopulation
func (OrganizationTargetPopulation) TableName() string {
	return "organization_target_populations"
}
