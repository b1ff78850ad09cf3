package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Organization is the central entity of the catalog. Single-valued category
// references are nullable foreign keys into the vocabulary tables; the four
// multi-valued categories live in junction tables owned wholesale by the
// organization (replaced on every write, removed on delete).
type Organization struct {
	ID              uuid.UUID  `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name            string     `json:"name" gorm:"not null;size:200" validate:"required,min=1,max=200"`
	Description     string     `json:"description" gorm:"type:text"`
	Website         string     `json:"website" gorm:"size:500"`
	HiringStatus    string     `json:"hiring_status" gorm:"size:100"`
	Size            string     `json:"size" gorm:"size:100"`
	HQ              string     `json:"hq" gorm:"column:hq;size:200"`
	YearEstablished string     `json:"year_established" gorm:"size:20"`
	Notes           string     `json:"notes" gorm:"type:text"`
	NotableAlumni   string     `json:"notable_alumni" gorm:"type:text"`
	OrgTypeID       *uuid.UUID `json:"org_type_id" gorm:"type:uuid"`
	EmployeeRangeID *uuid.UUID `json:"employee_range_id" gorm:"type:uuid"`
	CreatedAt       time.Time  `json:"created_at"`

	// Relationships
	OrgType           *OrgType           `json:"org_type,omitempty" gorm:"foreignKey:OrgTypeID"`
	EmployeeRange     *EmployeeRange     `json:"employee_range,omitempty" gorm:"foreignKey:EmployeeRangeID"`
	CauseAreas        []CauseArea        `json:"cause_areas,omitempty" gorm:"many2many:organization_cause_areas"`
	RoleTypes         []RoleType         `json:"role_types,omitempty" gorm:"many2many:organization_role_types"`
	Regions           []Region           `json:"regions,omitempty" gorm:"many2many:organization_regions"`
	TargetPopulations []TargetPopulation `json:"target_populations,omitempty" gorm:"many2many:organization_target_populations"`
}

// BeforeCreate sets the UUID if not already set
func (o *Organization) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for Organization
func (Organization) TableName() string {
	return "organizations"
}
