package services

import (
	"strings"

	"careeriq/models"
)

// roleRules are evaluated top to bottom; earlier triggers win.
// "Cloud Software Engineer" therefore resolves to Cloud Engineer.
var roleRules = []rule[models.RoleCategory]{
	{triggers: []string{"data scientist"}, label: models.RoleDataScientist},
	{triggers: []string{"data analyst"}, label: models.RoleDataAnalyst},
	{triggers: []string{"machine learning", "ml engineer"}, label: models.RoleMLEngineer},
	{triggers: []string{"ai engineer"}, label: models.RoleAIEngineer},
	{triggers: []string{"data engineer"}, label: models.RoleDataEngineer},
	{triggers: []string{"cloud"}, label: models.RoleCloudEngineer},
	{triggers: []string{"business analyst"}, label: models.RoleBusinessAnalyst},
	{triggers: []string{"software", "developer"}, label: models.RoleSoftwareEngineer},
}

// ClassifyRole maps a job title to its role category. It never fails.
func ClassifyRole(title string) models.RoleCategory {
	if role, ok := firstMatch(strings.ToLower(title), roleRules); ok {
		return role
	}
	return models.RoleOther
}
