package models

// SkillCount pairs a display skill label with its occurrence count.
type SkillCount struct {
	Skill string
	Count int
}

// RoleCount is a ranked role frequency.
type RoleCount struct {
	Role  RoleCategory
	Count int
}

// LocationCount is a ranked location frequency.
type LocationCount struct {
	Location string
	Count    int
}

// BandCount is the number of listings in a single experience band.
type BandCount struct {
	Band  ExperienceBand
	Count int
}

// MarketStatus is the tiered label derived from the demand ratio.
type MarketStatus string

const (
	MarketStrong   MarketStatus = "Strong"
	MarketModerate MarketStatus = "Moderate"
	MarketNiche    MarketStatus = "Niche"
)

// Headline returns the operator-facing wording of the status.
func (s MarketStatus) Headline() string {
	switch s {
	case MarketStrong:
		return "Strong Hiring Market"
	case MarketModerate:
		return "Moderate Competition"
	default:
		return "Competitive / Niche Segment"
	}
}

// MarketInsight holds the aggregates computed over one scope of the canonical dataset.
type MarketInsight struct {
	TotalInScope int
	TotalOverall int
	DemandRatio  float64
	MarketStatus MarketStatus

	TopRoles          []RoleCount
	TopLocations      []LocationCount
	TopExperienceBand ExperienceBand
	TopExperiencePct  int

	UniqueRoles            int
	ActiveLocations        int
	ExperienceDistribution []BandCount
}

// Empty reports whether the insight was computed over zero in-scope rows.
func (m MarketInsight) Empty() bool {
	return m.TotalInScope == 0
}
