package services

import (
	"careeriq/models"
	"careeriq/utils"
)

// Cleaner turns raw listings into the canonical dataset.
type Cleaner struct {
	logger *utils.Logger
}

// NewCleaner creates a Cleaner with the given logger.
func NewCleaner(logger *utils.Logger) *Cleaner {
	return &Cleaner{logger: logger}
}

// Clean classifies every raw listing and drops rows whose experience is not a known band.
// The output is a new slice in input order; raw rows are left untouched.
func (c *Cleaner) Clean(raw []models.RawListing) []models.CanonicalListing {
	result := make([]models.CanonicalListing, 0, len(raw))

	var sources []string
	dropped := make(map[string]int)

	for _, r := range raw {
		band, ok := ValidateExperience(r.Experience)
		if !ok {
			if _, seen := dropped[r.SourceDataset]; !seen {
				sources = append(sources, r.SourceDataset)
			}
			dropped[r.SourceDataset]++
			continue
		}

		result = append(result, models.CanonicalListing{
			RawListing:        r,
			RoleCategory:      ClassifyRole(r.JobTitle),
			CanonicalLocation: NormalizeLocation(r.Location),
			ExperienceBand:    band,
		})
	}

	for _, src := range sources {
		name := src
		if name == "" {
			name = "unknown"
		}
		c.logger.Debug("[cleaner] %s: %d rows with unrecognised experience", name, dropped[src])
	}

	c.logger.Info("[cleaner] Canonicalized %d → %d listings (dropped %d)",
		len(raw), len(result), len(raw)-len(result))
	return result
}
