package service

import (
	"strings"

	"github.com/google/uuid"
)

var exportHeader = []string{"Name", "Type", "Cause Areas", "Hiring Status", "Website"}

// ExportCSV renders the organizations matching the given bookmark ids as a
// CSV table, preserving catalog order. Every field is double-quote-wrapped
// with internal quotes doubled, matching the download format the explorer
// has always produced (encoding/csv quotes only when required, so the rows
// are written by hand).
func (s *OrganizationService) ExportCSV(ids []uuid.UUID) (string, error) {
	orgs, err := s.List()
	if err != nil {
		return "", err
	}

	saved := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		saved[id] = true
	}

	rows := []string{csvRow(exportHeader)}
	for i := range orgs {
		if !saved[orgs[i].ID] {
			continue
		}
		rows = append(rows, csvRow([]string{
			orgs[i].Name,
			orgs[i].OrgType,
			strings.Join(orgs[i].CauseAreas, "; "),
			orgs[i].HiringStatus,
			orgs[i].Website,
		}))
	}
	return strings.Join(rows, "\n"), nil
}

func csvRow(fields []string) string {
	quoted := make([]string, len(fields))
	for i, field := range fields {
		quoted[i] = `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
	}
	return strings.Join(quoted, ",")
}
