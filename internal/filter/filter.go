package filter

import (
	"sort"
	"strings"

	"impact-explorer-backend/internal/database/models"
)

// Criteria is the selection driving the match predicate: an optional
// free-text search plus selected values per category key. The same shape is
// produced by filter chips, table search and the quiz flow.
type Criteria struct {
	Search     string              `json:"search,omitempty"`
	Categories map[string][]string `json:"categories,omitempty"`
}

// The org-type vocabulary historically merged these two categories into one
// combined label; selecting either half must still match it.
const combinedOrgTypeLabel = "Impact Investing / Foundation"

// SplitTags normalizes category values into a flat tag list: each value may
// itself be a semicolon-delimited string ("Education; Health"), entries are
// trimmed and empties dropped. A single string and an equivalent array
// normalize identically.
func SplitTags(values ...string) []string {
	tags := []string{}
	for _, v := range values {
		for _, part := range strings.Split(v, ";") {
			if tag := strings.TrimSpace(part); tag != "" {
				tags = append(tags, tag)
			}
		}
	}
	return tags
}

// Matches reports whether an organization satisfies the criteria: search is a
// case-insensitive substring match over name or description, single-valued
// keys match by equality (with the combined org-type special case),
// multi-valued keys match when at least one selected value appears in the
// organization's normalized tag set. Categories combine with AND, values
// within a category with OR. Empty criteria match everything.
func Matches(org *models.FlatOrganization, c Criteria) bool {
	if c.Search != "" {
		needle := strings.ToLower(c.Search)
		if !strings.Contains(strings.ToLower(org.Name), needle) &&
			!strings.Contains(strings.ToLower(org.Description), needle) {
			return false
		}
	}

	for key, selected := range c.Categories {
		if len(selected) == 0 {
			continue
		}
		switch key {
		case models.KeyOrgType, models.KeyHiringStatus, models.KeySize:
			if !matchesSingle(singleValue(org, key), selected) {
				return false
			}
		default:
			if !intersects(tagsFor(org, key), selected) {
				return false
			}
		}
	}
	return true
}

// Filter applies Matches across a list, preserving order.
func Filter(orgs []models.FlatOrganization, c Criteria) []models.FlatOrganization {
	matched := []models.FlatOrganization{}
	for i := range orgs {
		if Matches(&orgs[i], c) {
			matched = append(matched, orgs[i])
		}
	}
	return matched
}

// TagCount is one aggregation bucket of CountBy.
type TagCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// CountBy aggregates organizations per distinct normalized tag of the given
// key, sorted by descending count; ties keep first-encountered order.
func CountBy(orgs []models.FlatOrganization, key string) []TagCount {
	counts := map[string]int{}
	order := []string{}
	for i := range orgs {
		for _, tag := range tagsFor(&orgs[i], key) {
			if _, seen := counts[tag]; !seen {
				order = append(order, tag)
			}
			counts[tag]++
		}
	}

	result := make([]TagCount, 0, len(order))
	for _, name := range order {
		result = append(result, TagCount{Name: name, Count: counts[name]})
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Count > result[j].Count
	})
	return result
}

func matchesSingle(orgVal string, selected []string) bool {
	for _, v := range selected {
		if orgVal == v {
			return true
		}
		if orgVal == combinedOrgTypeLabel && (v == "Impact Investing" || v == "Foundation") {
			return true
		}
	}
	return false
}

func singleValue(org *models.FlatOrganization, key string) string {
	switch key {
	case models.KeyOrgType:
		return org.OrgType
	case models.KeyHiringStatus:
		return org.HiringStatus
	case models.KeySize:
		return org.Size
	}
	return ""
}

// tagsFor returns the normalized tag set of any key, treating single-valued
// fields as one-element lists so CountBy can aggregate over them too.
func tagsFor(org *models.FlatOrganization, key string) []string {
	switch key {
	case models.KeyCauseAreas:
		return SplitTags(org.CauseAreas...)
	case models.KeyRoleTypes:
		return SplitTags(org.RoleTypes...)
	case models.KeyRegions:
		return SplitTags(org.Regions...)
	case models.KeyTargetPopulations:
		return SplitTags(org.TargetPopulations...)
	case models.KeyOrgType, models.KeyHiringStatus, models.KeySize:
		return SplitTags(singleValue(org, key))
	}
	return nil
}

func intersects(orgTags, selected []string) bool {
	for _, want := range selected {
		for _, have := range orgTags {
			if have == want {
				return true
			}
		}
	}
	return false
}
