package models

// RawListing is one record as ingested from any source export.
// Empty or whitespace-only fields stand for absent values.
type RawListing struct {
	JobTitle      string
	Location      string
	Experience    string
	SkillsText    string
	SourceDataset string
}

// CanonicalListing is a RawListing augmented with the derived classification fields.
// It is built once per pipeline run and never mutated afterwards.
type CanonicalListing struct {
	RawListing

	RoleCategory RoleCategory
	// CanonicalLocation is empty when the raw location was absent.
	CanonicalLocation string
	ExperienceBand    ExperienceBand
}

// HasLocation reports whether the listing carries a canonical location.
func (l CanonicalListing) HasLocation() bool {
	return l.CanonicalLocation != ""
}
