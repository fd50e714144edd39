package services

import (
	"strings"

	"careeriq/models"
)

// ValidateExperience accepts the trimmed value only if it is exactly one of the fixed bands.
func ValidateExperience(exp string) (models.ExperienceBand, bool) {
	band, err := models.ParseExperienceBand(strings.TrimSpace(exp))
	if err != nil {
		return "", false
	}
	return band, true
}
