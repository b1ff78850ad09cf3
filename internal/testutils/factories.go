package testutils

import (
	"time"

	"impact-explorer-backend/internal/database/models"

	"github.com/google/uuid"
)

// FactorySet bundles all factories for convenience in suites
type FactorySet struct {
	Organization *OrganizationFactory
	Vocabulary   *VocabularyFactory
	Flat         *FlatOrganizationFactory
}

// NewFactorySet creates a new FactorySet
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Organization: NewOrganizationFactory(),
		Vocabulary:   NewVocabularyFactory(),
		Flat:         NewFlatOrganizationFactory(),
	}
}

// OrganizationFactory provides methods to create test Organization data
type OrganizationFactory struct{}

// NewOrganizationFactory creates a new OrganizationFactory
func NewOrganizationFactory() *OrganizationFactory {
	return &OrganizationFactory{}
}

// Create creates a test Organization with default values
func (f *OrganizationFactory) Create() *models.Organization {
	return &models.Organization{
		ID:              uuid.New(),
		Name:            "Test Organization",
		Description:     "A test organization for testing purposes",
		Website:         "https://test.org",
		HiringStatus:    "Actively Hiring",
		Size:            "Medium",
		HQ:              "Boston, MA",
		YearEstablished: "2015",
		CreatedAt:       time.Now(),
	}
}

// WithName sets a custom name for the organization
func (f *OrganizationFactory) WithName(name string) *models.Organization {
	org := f.Create()
	org.Name = name
	return org
}

// WithCreatedAt sets a custom creation timestamp, useful for ordering tests
func (f *OrganizationFactory) WithCreatedAt(createdAt time.Time) *models.Organization {
	org := f.Create()
	org.CreatedAt = createdAt
	return org
}

// VocabularyFactory provides methods to create vocabulary terms
type VocabularyFactory struct{}

// NewVocabularyFactory creates a new VocabularyFactory
func NewVocabularyFactory() *VocabularyFactory {
	return &VocabularyFactory{}
}

// OrgType creates an org-type term
func (f *VocabularyFactory) OrgType(name string) *models.OrgType {
	return &models.OrgType{VocabularyModel: models.VocabularyModel{ID: uuid.New(), Name: name}}
}

// CauseArea creates a cause-area term
func (f *VocabularyFactory) CauseArea(name string) *models.CauseArea {
	return &models.CauseArea{VocabularyModel: models.VocabularyModel{ID: uuid.New(), Name: name}}
}

// RoleType creates a role-type term
func (f *VocabularyFactory) RoleType(name string) *models.RoleType {
	return &models.RoleType{VocabularyModel: models.VocabularyModel{ID: uuid.New(), Name: name}}
}

// Region creates a region term
func (f *VocabularyFactory) Region(name string) *models.Region {
	return &models.Region{VocabularyModel: models.VocabularyModel{ID: uuid.New(), Name: name}}
}

// TargetPopulation creates a target-population term
func (f *VocabularyFactory) TargetPopulation(name string) *models.TargetPopulation {
	return &models.TargetPopulation{VocabularyModel: models.VocabularyModel{ID: uuid.New(), Name: name}}
}

// EmployeeRange creates an employee-range term with an explicit sort key
func (f *VocabularyFactory) EmployeeRange(label string, sortOrder int) *models.EmployeeRange {
	return &models.EmployeeRange{ID: uuid.New(), Label: label, SortOrder: sortOrder}
}

// FlatOrganizationFactory builds flattened rows for filter and handler tests
type FlatOrganizationFactory struct{}

// NewFlatOrganizationFactory creates a new FlatOrganizationFactory
func NewFlatOrganizationFactory() *FlatOrganizationFactory {
	return &FlatOrganizationFactory{}
}

// Create creates a flat organization with default values
func (f *FlatOrganizationFactory) Create() models.FlatOrganization {
	return models.FlatOrganization{
		ID:                uuid.New(),
		Name:              "Test Organization",
		Description:       "A test organization for testing purposes",
		OrgType:           "Nonprofit",
		HiringStatus:      "Actively Hiring",
		CauseAreas:        []string{"Education"},
		RoleTypes:         []string{"Operator"},
		Regions:           []string{"Global"},
		TargetPopulations: []string{},
		CreatedAt:         time.Now(),
	}
}
