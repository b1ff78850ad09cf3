package repository

import (
	"impact-explorer-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VocabularyRepository resolves display names against the six controlled
// vocabularies and lists their ordered display names. Resolution is lenient
// by design: the application never fails a write over a vocabulary miss.
type VocabularyRepository struct {
	db *gorm.DB
}

// NewVocabularyRepository creates a new vocabulary repository
func NewVocabularyRepository(db *gorm.DB) *VocabularyRepository {
	return &VocabularyRepository{db: db}
}

// resolveOrNull is the single-valued lookup policy: empty input or an
// unknown display name yields a nil id, never an error. The stored
// organization simply ends up with an unset reference.
func (r *VocabularyRepository) resolveOrNull(model interface{}, column, value string) (*uuid.UUID, error) {
	if value == "" {
		return nil, nil
	}
	var ids []uuid.UUID
	err := r.db.Model(model).Where(column+" = ?", value).Limit(1).Pluck("id", &ids).Error
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, nil
	}
	return &ids[0], nil
}

// resolveDroppingUnknown is the multi-valued lookup policy: names with no
// exact vocabulary match are silently dropped from the resolved id list.
func (r *VocabularyRepository) resolveDroppingUnknown(model interface{}, names []string) ([]uuid.UUID, error) {
	if len(names) == 0 {
		return nil, nil
	}
	var ids []uuid.UUID
	err := r.db.Model(model).Where("name IN ?", names).Pluck("id", &ids).Error
	return ids, err
}

func (r *VocabularyRepository) listNames(model interface{}) ([]string, error) {
	names := []string{}
	err := r.db.Model(model).Order("name ASC").Pluck("name", &names).Error
	return names, err
}

// ResolveOrgTypeID resolves an org-type display name, nil on miss.
func (r *VocabularyRepository) ResolveOrgTypeID(name string) (*uuid.UUID, error) {
	return r.resolveOrNull(&models.OrgType{}, "name", name)
}

// ResolveEmployeeRangeID resolves an employee-range label, nil on miss.
func (r *VocabularyRepository) ResolveEmployeeRangeID(label string) (*uuid.UUID, error) {
	return r.resolveOrNull(&models.EmployeeRange{}, "label", label)
}

// ResolveCauseAreaIDs resolves cause-area names, dropping unknowns.
func (r *VocabularyRepository) ResolveCauseAreaIDs(names []string) ([]uuid.UUID, error) {
	return r.resolveDroppingUnknown(&models.CauseArea{}, names)
}

// ResolveRoleTypeIDs resolves role-type names, dropping unknowns.
func (r *VocabularyRepository) ResolveRoleTypeIDs(names []string) ([]uuid.UUID, error) {
	return r.resolveDroppingUnknown(&models.RoleType{}, names)
}

// ResolveRegionIDs resolves region names, dropping unknowns.
func (r *VocabularyRepository) ResolveRegionIDs(names []string) ([]uuid.UUID, error) {
	return r.resolveDroppingUnknown(&models.Region{}, names)
}

// ResolveTargetPopulationIDs resolves target-population names, dropping unknowns.
func (r *VocabularyRepository) ResolveTargetPopulationIDs(names []string) ([]uuid.UUID, error) {
	return r.resolveDroppingUnknown(&models.TargetPopulation{}, names)
}

// OrgTypeNames lists org-type display names alphabetically.
func (r *VocabularyRepository) OrgTypeNames() ([]string, error) {
	return r.listNames(&models.OrgType{})
}

// CauseAreaNames lists cause-area display names alphabetically.
func (r *VocabularyRepository) CauseAreaNames() ([]string, error) {
	return r.listNames(&models.CauseArea{})
}

// RoleTypeNames lists role-type display names alphabetically.
func (r *VocabularyRepository) RoleTypeNames() ([]string, error) {
	return r.listNames(&models.RoleType{})
}

// RegionNames lists region display names alphabetically.
func (r *VocabularyRepository) RegionNames() ([]string, error) {
	return r.listNames(&models.Region{})
}

// TargetPopulationNames lists target-population display names alphabetically.
func (r *VocabularyRepository) TargetPopulationNames() ([]string, error) {
	return r.listNames(&models.TargetPopulation{})
}

// EmployeeRangeLabels lists employee-range labels by their explicit sort key.
func (r *VocabularyRepository) EmployeeRangeLabels() ([]string, error) {
	labels := []string{}
	err := r.db.Model(&models.EmployeeRange{}).Order("sort_order ASC").Pluck("label", &labels).Error
	return labels, err
}
