package service

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"impact-explorer-backend/internal/database/models"
	apperrors "impact-explorer-backend/internal/errors"
	"impact-explorer-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrganizationService translates between the flat admin-form view of an
// organization and its normalized storage representation.
type OrganizationService struct {
	orgs      repository.OrganizationRepositoryInterface
	vocab     repository.VocabularyRepositoryInterface
	assoc     repository.AssociationRepositoryInterface
	validator *validator.Validate
}

// NewOrganizationService creates a new organization service
func NewOrganizationService(
	orgs repository.OrganizationRepositoryInterface,
	vocab repository.VocabularyRepositoryInterface,
	assoc repository.AssociationRepositoryInterface,
	validator *validator.Validate,
) *OrganizationService {
	return &OrganizationService{
		orgs:      orgs,
		vocab:     vocab,
		assoc:     assoc,
		validator: validator,
	}
}

// OrganizationForm is the flat create/update payload. Name is the only
// required field; single-valued categories are display strings resolved
// leniently, multi-valued categories are display-name lists whose unknown
// entries are dropped.
type OrganizationForm struct {
	Name            string `json:"name" validate:"required,min=1,max=200"`
	Description     string `json:"description,omitempty"`
	Website         string `json:"website,omitempty"`
	OrgType         string `json:"org_type,omitempty"`
	Employees       string `json:"employees,omitempty"`
	HiringStatus    string `json:"hiring_status,omitempty"`
	Size            string `json:"size,omitempty"`
	HQ              string `json:"hq,omitempty"`
	YearEstablished string `json:"year_established,omitempty"`
	Notes           string `json:"notes,omitempty"`
	NotableAlumni   string `json:"notable_alumni,omitempty"`

	CauseAreas        []string `json:"cause_areas,omitempty"`
	RoleTypes         []string `json:"role_types,omitempty"`
	Regions           []string `json:"regions,omitempty"`
	TargetPopulations []string `json:"target_populations,omitempty"`
}

// AssociationOutcome is the per-category result of the junction replacement.
type AssociationOutcome struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

// WriteResult is the structured outcome of the multi-phase create/update:
// the base-row write and the four category-association replacements report
// discretely. There is no transaction across the phases; a base write is
// never rolled back because an association write failed.
type WriteResult struct {
	ID           uuid.UUID                     `json:"id"`
	BaseWriteOK  bool                          `json:"base_write_ok"`
	Associations map[string]AssociationOutcome `json:"associations"`
}

// FailedCategories lists category keys whose association write failed, sorted.
func (w *WriteResult) FailedCategories() []string {
	failed := []string{}
	for key, outcome := range w.Associations {
		if !outcome.OK {
			failed = append(failed, key)
		}
	}
	sort.Strings(failed)
	return failed
}

// List retrieves all organizations flattened, newest first, capped at the
// repository's fixed row limit.
func (s *OrganizationService) List() ([]models.FlatOrganization, error) {
	orgs, err := s.orgs.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list organizations: %w", err)
	}

	flat := make([]models.FlatOrganization, 0, len(orgs))
	for i := range orgs {
		flat = append(flat, flatten(&orgs[i]))
	}
	return flat, nil
}

// Get retrieves a single flattened organization
func (s *OrganizationService) Get(id uuid.UUID) (*models.FlatOrganization, error) {
	org, err := s.orgs.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}
	flat := flatten(org)
	return &flat, nil
}

// Create decomposes the flat form into normalized writes: lenient resolution
// of the single-valued lookups, base-row insert with a server-assigned
// creation timestamp, then the four category replacements. Only a base-row
// failure aborts the operation; association failures surface in the result
// after the base row already exists.
func (s *OrganizationService) Create(form *OrganizationForm) (*WriteResult, error) {
	if err := s.validator.Struct(form); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	org, err := s.baseRow(form)
	if err != nil {
		return nil, err
	}

	if err := s.orgs.Create(org); err != nil {
		return &WriteResult{BaseWriteOK: false}, fmt.Errorf("failed to create organization: %w", err)
	}

	result := &WriteResult{
		ID:           org.ID,
		BaseWriteOK:  true,
		Associations: s.replaceAssociations(org.ID, form),
	}
	if failed := result.FailedCategories(); len(failed) > 0 {
		return result, &apperrors.PartialWriteError{Categories: failed}
	}
	return result, nil
}

// Update performs the same decomposition as Create against an existing row:
// a full-column base update (omitted fields overwrite with empty), then an
// unconditional replacement of all four category associations.
func (s *OrganizationService) Update(id uuid.UUID, form *OrganizationForm) (*WriteResult, error) {
	if err := s.validator.Struct(form); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	org, err := s.baseRow(form)
	if err != nil {
		return nil, err
	}
	org.ID = id

	if err := s.orgs.Update(org); err != nil {
		return &WriteResult{ID: id, BaseWriteOK: false}, fmt.Errorf("failed to update organization: %w", err)
	}

	result := &WriteResult{
		ID:           id,
		BaseWriteOK:  true,
		Associations: s.replaceAssociations(id, form),
	}
	if failed := result.FailedCategories(); len(failed) > 0 {
		return result, &apperrors.PartialWriteError{Categories: failed}
	}
	return result, nil
}

// Delete removes the organization and all of its association rows.
func (s *OrganizationService) Delete(id uuid.UUID) error {
	if err := s.orgs.Delete(id); err != nil {
		return fmt.Errorf("failed to delete organization: %w", err)
	}
	return nil
}

// baseRow builds the normalized base row from the form, resolving the two
// single-valued lookups to ids (nil on empty input or vocabulary miss).
func (s *OrganizationService) baseRow(form *OrganizationForm) (*models.Organization, error) {
	orgTypeID, err := s.vocab.ResolveOrgTypeID(form.OrgType)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve org type: %w", err)
	}
	employeeRangeID, err := s.vocab.ResolveEmployeeRangeID(form.Employees)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve employee range: %w", err)
	}

	return &models.Organization{
		Name:            form.Name,
		Description:     form.Description,
		Website:         form.Website,
		HiringStatus:    form.HiringStatus,
		Size:            form.Size,
		HQ:              form.HQ,
		YearEstablished: form.YearEstablished,
		Notes:           form.Notes,
		NotableAlumni:   form.NotableAlumni,
		OrgTypeID:       orgTypeID,
		EmployeeRangeID: employeeRangeID,
	}, nil
}

// replaceAssociations runs the four category replacements concurrently and
// waits for all of them. Each category resolves its display names (unknowns
// dropped) and replaces its junction rows delete-then-insert; outcomes are
// reported per category, never merged into a single pass/fail.
func (s *OrganizationService) replaceAssociations(orgID uuid.UUID, form *OrganizationForm) map[string]AssociationOutcome {
	type category struct {
		key     string
		names   []string
		resolve func([]string) ([]uuid.UUID, error)
		replace func(uuid.UUID, []uuid.UUID) error
	}
	categories := []category{
		{models.KeyCauseAreas, form.CauseAreas, s.vocab.ResolveCauseAreaIDs, s.assoc.ReplaceCauseAreas},
		{models.KeyRoleTypes, form.RoleTypes, s.vocab.ResolveRoleTypeIDs, s.assoc.ReplaceRoleTypes},
		{models.KeyRegions, form.Regions, s.vocab.ResolveRegionIDs, s.assoc.ReplaceRegions},
		{models.KeyTargetPopulations, form.TargetPopulations, s.vocab.ResolveTargetPopulationIDs, s.assoc.ReplaceTargetPopulations},
	}

	outcomes := make([]AssociationOutcome, len(categories))
	var wg sync.WaitGroup
	for i, cat := range categories {
		wg.Add(1)
		go func(i int, cat category) {
			defer wg.Done()
			ids, err := cat.resolve(cat.names)
			if err == nil {
				err = cat.replace(orgID, ids)
			}
			if err != nil {
				outcomes[i] = AssociationOutcome{Error: err.Error()}
				return
			}
			outcomes[i] = AssociationOutcome{OK: true}
		}(i, cat)
	}
	wg.Wait()

	result := make(map[string]AssociationOutcome, len(categories))
	for i, cat := range categories {
		result[cat.key] = outcomes[i]
	}
	return result
}

// flatten collapses a joined organization row into the flat view: junction
// rows become display-name arrays (empty, never nil), single-valued lookups
// become a display name plus its id.
func flatten(org *models.Organization) models.FlatOrganization {
	flat := models.FlatOrganization{
		ID:              org.ID,
		Name:            org.Name,
		Description:     org.Description,
		Website:         org.Website,
		HiringStatus:    org.HiringStatus,
		Size:            org.Size,
		HQ:              org.HQ,
		YearEstablished: org.YearEstablished,
		Notes:           org.Notes,
		NotableAlumni:   org.NotableAlumni,
		CreatedAt:       org.CreatedAt,
		OrgTypeID:       org.OrgTypeID,
		EmployeeRangeID: org.EmployeeRangeID,

		CauseAreas:        []string{},
		RoleTypes:         []string{},
		Regions:           []string{},
		TargetPopulations: []string{},
	}

	if org.OrgType != nil {
		flat.OrgType = org.OrgType.Name
	}
	if org.EmployeeRange != nil {
		flat.Employees = org.EmployeeRange.Label
	}
	for _, term := range org.CauseAreas {
		flat.CauseAreas = append(flat.CauseAreas, term.Name)
	}
	for _, term := range org.RoleTypes {
		flat.RoleTypes = append(flat.RoleTypes, term.Name)
	}
	for _, term := range org.Regions {
		flat.Regions = append(flat.Regions, term.Name)
	}
	for _, term := range org.TargetPopulations {
		flat.TargetPopulations = append(flat.TargetPopulations, term.Name)
	}
	return flat
}
