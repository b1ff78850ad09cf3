package repository

import (
	"impact-explorer-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// OrganizationRepositoryInterface defines the interface for organization repository operations
type OrganizationRepositoryInterface interface {
	List() ([]models.Organization, error)
	GetByID(id uuid.UUID) (*models.Organization, error)
	Create(org *models.Organization) error
	Update(org *models.Organization) error
	Delete(id uuid.UUID) error
}

// VocabularyRepositoryInterface defines the interface for vocabulary resolution and listing
type VocabularyRepositoryInterface interface {
	ResolveOrgTypeID(name string) (*uuid.UUID, error)
	ResolveEmployeeRangeID(label string) (*uuid.UUID, error)
	ResolveCauseAreaIDs(names []string) ([]uuid.UUID, error)
	ResolveRoleTypeIDs(names []string) ([]uuid.UUID, error)
	ResolveRegionIDs(names []string) ([]uuid.UUID, error)
	ResolveTargetPopulationIDs(names []string) ([]uuid.UUID, error)
	OrgTypeNames() ([]string, error)
	CauseAreaNames() ([]string, error)
	RoleTypeNames() ([]string, error)
	RegionNames() ([]string, error)
	TargetPopulationNames() ([]string, error)
	EmployeeRangeLabels() ([]string, error)
}

// AssociationRepositoryInterface defines the interface for junction-table replacement
type AssociationRepositoryInterface interface {
	ReplaceCauseAreas(orgID uuid.UUID, ids []uuid.UUID) error
	ReplaceRoleTypes(orgID uuid.UUID, ids []uuid.UUID) error
	ReplaceRegions(orgID uuid.UUID, ids []uuid.UUID) error
	ReplaceTargetPopulations(orgID uuid.UUID, ids []uuid.UUID) error
	CountForOrganization(orgID uuid.UUID) (int64, error)
}
