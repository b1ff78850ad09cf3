package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VocabularyModel provides the shared (id, display-name) shape of the
// controlled-vocabulary lookup tables. The display name is the stable join
// key: form input and filter criteria address terms by name, never by id.
type VocabularyModel struct {
	ID   uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name string    `json:"name" gorm:"uniqueIndex;not null;size:100" validate:"required,min=1,max=100"`
}

// BeforeCreate sets the UUID if not already set
func (base *VocabularyModel) BeforeCreate(tx *gorm.DB) error {
	if base.ID == uuid.Nil {
		base.ID = uuid.New()
	}
	return nil
}

// OrgType is the single-valued organization-type vocabulary (e.g. "Nonprofit",
// "Impact Investing / Foundation").
type OrgType struct {
	VocabularyModel
}

// TableName returns the table name for OrgType
func (OrgType) TableName() string {
	return "org_types"
}

// CauseArea is the multi-valued cause-area vocabulary (e.g. "Education").
type CauseArea struct {
	VocabularyModel
}

// TableName returns the table name for CauseArea
func (CauseArea) TableName() string {
	return "cause_areas"
}

// RoleType is the multi-valued role-type vocabulary (e.g. "Operator", "Funder").
type RoleType struct {
	VocabularyModel
}

// TableName returns the table name for RoleType
func (RoleType) TableName() string {
	return "role_types"
}

// Region is the multi-valued region vocabulary (e.g. "Global", "Africa").
type Region struct {
	VocabularyModel
}

// TableName returns the table name for Region
func (Region) TableName() string {
	return "regions"
}

// TargetPopulation is the multi-valued target-population vocabulary
// (e.g. "Women & Girls").
type TargetPopulation struct {
	VocabularyModel
}

// TableName returns the table name for TargetPopulation
func (TargetPopulation) TableName() string {
	return "target_populations"
}

// EmployeeRange is the single-valued employee-count vocabulary. Unlike the
// other vocabularies it carries an explicit sort key ("1-10" sorts before
// "500+" regardless of alphabetical order) and labels its display string
// "label" rather than "name".
type EmployeeRange struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Label     string    `json:"label" gorm:"uniqueIndex;not null;size:100" validate:"required,min=1,max=100"`
	SortOrder int       `json:"sort_order" gorm:"default:0"`
}

// BeforeCreate sets the UUID if not already set
func (e *EmployeeRange) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for EmployeeRange
func (EmployeeRange) TableName() string {
	return "employee_ranges"
}
