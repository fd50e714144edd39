package models

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// ExportColumn identifies a canonical field that can be exported.
type ExportColumn string

const (
	ColumnJobTitle          ExportColumn = "job_title"
	ColumnRoleCategory      ExportColumn = "role_category"
	ColumnCanonicalLocation ExportColumn = "canonical_location"
	ColumnExperienceBand    ExportColumn = "experience_band"
	ColumnSkillsText        ExportColumn = "skills_text"
)

type columnLabel struct {
	label  string
	column ExportColumn
}

// exportLabels maps display labels to field identifiers in presentation order.
var exportLabels = []columnLabel{
	{"Job Title", ColumnJobTitle},
	{"Role Category", ColumnRoleCategory},
	{"Location", ColumnCanonicalLocation},
	{"Experience", ColumnExperienceBand},
	{"Skills", ColumnSkillsText},
}

// AllExportColumns is every exportable field in canonical CSV order.
var AllExportColumns = []ExportColumn{
	ColumnJobTitle,
	ColumnRoleCategory,
	ColumnCanonicalLocation,
	ColumnExperienceBand,
	ColumnSkillsText,
}

// DefaultExportColumns is used when a consumer selects nothing.
var DefaultExportColumns = []ExportColumn{
	ColumnJobTitle,
	ColumnRoleCategory,
	ColumnCanonicalLocation,
	ColumnExperienceBand,
}

// ExportLabels returns the accepted display labels in presentation order.
func ExportLabels() []string {
	labels := make([]string, 0, len(exportLabels))
	for _, l := range exportLabels {
		labels = append(labels, l.label)
	}
	return labels
}

// ParseExportColumns maps display labels to columns, rejecting unknown labels.
// An empty selection yields DefaultExportColumns. Duplicates are collapsed.
func ParseExportColumns(labels []string) ([]ExportColumn, error) {
	if len(labels) == 0 {
		return append([]ExportColumn(nil), DefaultExportColumns...), nil
	}

	seen := make(map[ExportColumn]struct{}, len(labels))
	columns := make([]ExportColumn, 0, len(labels))
	for _, raw := range labels {
		label := strings.TrimSpace(raw)
		col, ok := lookupLabel(label)
		if !ok {
			return nil, errors.Newf("unknown export column %q (accepted: %s)",
				raw, strings.Join(ExportLabels(), ", "))
		}
		if _, dup := seen[col]; dup {
			continue
		}
		seen[col] = struct{}{}
		columns = append(columns, col)
	}
	return columns, nil
}

func lookupLabel(label string) (ExportColumn, bool) {
	for _, l := range exportLabels {
		if l.label == label {
			return l.column, true
		}
	}
	return "", false
}

// Value extracts the column's field from a canonical listing.
func (c ExportColumn) Value(l CanonicalListing) string {
	switch c {
	case ColumnJobTitle:
		return l.JobTitle
	case ColumnRoleCategory:
		return string(l.RoleCategory)
	case ColumnCanonicalLocation:
		return l.CanonicalLocation
	case ColumnExperienceBand:
		return string(l.ExperienceBand)
	case ColumnSkillsText:
		return l.SkillsText
	default:
		return ""
	}
}
