package service

import (
	"impact-explorer-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// OrganizationServiceInterface defines the interface for organization service operations
type OrganizationServiceInterface interface {
	List() ([]models.FlatOrganization, error)
	Get(id uuid.UUID) (*models.FlatOrganization, error)
	Create(form *OrganizationForm) (*WriteResult, error)
	Update(id uuid.UUID, form *OrganizationForm) (*WriteResult, error)
	Delete(id uuid.UUID) error
	ExportCSV(ids []uuid.UUID) (string, error)
}

// VocabularyServiceInterface defines the interface for vocabulary service operations
type VocabularyServiceInterface interface {
	Lookups() (*LookupsResponse, error)
}
