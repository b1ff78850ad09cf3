package models

import (
	"time"

	"github.com/google/uuid"
)

// Category keys of the flattened organization shape. Filter criteria, quiz
// answers and the WriteResult association map are all addressed by these.
const (
	KeyCauseAreas        = "cause_areas"
	KeyRoleTypes         = "role_types"
	KeyRegions           = "regions"
	KeyTargetPopulations = "target_populations"
	KeyOrgType           = "org_type"
	KeyHiringStatus      = "hiring_status"
	KeySize              = "size"
)

// MultiValuedKeys lists the four junction-backed category keys in write order.
var MultiValuedKeys = []string{KeyCauseAreas, KeyRoleTypes, KeyRegions, KeyTargetPopulations}

// FlatOrganization is the denormalized, API-facing view of an organization:
// single-valued lookups resolved to display names (ids kept alongside),
// junction rows collapsed to display-name arrays. Category arrays are always
// present, never nil. Only the repository layer constructs this from the
// joined Organization row.
type FlatOrganization struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	Website         string    `json:"website"`
	HiringStatus    string    `json:"hiring_status"`
	Size            string    `json:"size"`
	HQ              string    `json:"hq"`
	YearEstablished string    `json:"year_established"`
	Notes           string    `json:"notes"`
	NotableAlumni   string    `json:"notable_alumni"`
	CreatedAt       time.Time `json:"created_at"`

	OrgType         string     `json:"org_type"`
	OrgTypeID       *uuid.UUID `json:"org_type_id"`
	Employees       string     `json:"employees"`
	EmployeeRangeID *uuid.UUID `json:"employee_range_id"`

	CauseAreas        []string `json:"cause_areas"`
	RoleTypes         []string `json:"role_types"`
	Regions           []string `json:"regions"`
	TargetPopulations []string `json:"target_populations"`
}
