package service

import (
	"fmt"
	"sync"

	"impact-explorer-backend/internal/repository"
)

// VocabularyService exposes the six controlled vocabularies as ordered
// display-name lists for selection UIs and form resolution.
type VocabularyService struct {
	vocab repository.VocabularyRepositoryInterface
}

// NewVocabularyService creates a new vocabulary service
func NewVocabularyService(vocab repository.VocabularyRepositoryInterface) *VocabularyService {
	return &VocabularyService{vocab: vocab}
}

// LookupsResponse carries the ordered display names of every vocabulary:
// employee ranges by their explicit sort key, all others alphabetical.
type LookupsResponse struct {
	OrgTypes          []string `json:"org_types"`
	CauseAreas        []string `json:"cause_areas"`
	RoleTypes         []string `json:"role_types"`
	Regions           []string `json:"regions"`
	TargetPopulations []string `json:"target_populations"`
	EmployeeRanges    []string `json:"employee_ranges"`
}

// Lookups fetches all six vocabulary lists. The fetches are independent
// round trips and run concurrently; the first failure fails the whole call.
func (s *VocabularyService) Lookups() (*LookupsResponse, error) {
	response := &LookupsResponse{}
	fetches := []struct {
		dest  *[]string
		fetch func() ([]string, error)
	}{
		{&response.OrgTypes, s.vocab.OrgTypeNames},
		{&response.CauseAreas, s.vocab.CauseAreaNames},
		{&response.RoleTypes, s.vocab.RoleTypeNames},
		{&response.Regions, s.vocab.RegionNames},
		{&response.TargetPopulations, s.vocab.TargetPopulationNames},
		{&response.EmployeeRanges, s.vocab.EmployeeRangeLabels},
	}

	errs := make([]error, len(fetches))
	var wg sync.WaitGroup
	for i, f := range fetches {
		wg.Add(1)
		go func(i int, dest *[]string, fetch func() ([]string, error)) {
			defer wg.Done()
			names, err := fetch()
			if err != nil {
				errs[i] = err
				return
			}
			*dest = names
		}(i, f.dest, f.fetch)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("failed to fetch lookups: %w", err)
		}
	}
	return response, nil
}
