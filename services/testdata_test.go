package services

import (
	"careeriq/models"
	"careeriq/utils"
)

func newTestLogger() *utils.Logger { return utils.NewNopLogger() }

func raw(title, location, experience, skills string) models.RawListing {
	return models.RawListing{
		JobTitle:      title,
		Location:      location,
		Experience:    experience,
		SkillsText:    skills,
		SourceDataset: "Naukri",
	}
}

func canonical(role models.RoleCategory, location string, band models.ExperienceBand, skills string) models.CanonicalListing {
	return models.CanonicalListing{
		RawListing:        models.RawListing{JobTitle: string(role), SkillsText: skills},
		RoleCategory:      role,
		CanonicalLocation: location,
		ExperienceBand:    band,
	}
}

// scenarioRows is the three-row end-to-end fixture: the last row has an invalid band.
func scenarioRows() []models.RawListing {
	return []models.RawListing{
		raw("Data Engineer, Cloud", "Pune", "2-5", "AWS, SQL"),
		raw("ML Engineer", "Bengaluru, Karnataka", "0-1", "Python"),
		raw("Intern", "Remote", "weird", ""),
	}
}
