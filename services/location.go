package services

import (
	"strings"

	"careeriq/models"
)

var locationRules = []rule[string]{
	{triggers: []string{"pune"}, label: models.CityPune},
	{triggers: []string{"bangalore", "bengaluru"}, label: models.CityBengaluru},
	{triggers: []string{"mumbai"}, label: models.CityMumbai},
	{triggers: []string{"hyderabad"}, label: models.CityHyderabad},
	{triggers: []string{"chennai"}, label: models.CityChennai},
	{triggers: []string{"delhi", "ncr", "gurgaon"}, label: models.CityDelhiNCR},
}

// NormalizeLocation maps free-text locations to a canonical city.
// Blank input yields "" (no location); unknown places are title-cased and kept.
func NormalizeLocation(loc string) string {
	if strings.TrimSpace(loc) == "" {
		return ""
	}
	if city, ok := firstMatch(strings.ToLower(loc), locationRules); ok {
		return city
	}
	return titleCase(loc)
}
