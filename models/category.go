package models

import "github.com/cockroachdb/errors"

// RoleCategory is the canonical role a job title is classified into.
type RoleCategory string

const (
	RoleDataScientist    RoleCategory = "Data Scientist"
	RoleDataAnalyst      RoleCategory = "Data Analyst"
	RoleMLEngineer       RoleCategory = "ML Engineer"
	RoleAIEngineer       RoleCategory = "AI Engineer"
	RoleDataEngineer     RoleCategory = "Data Engineer"
	RoleCloudEngineer    RoleCategory = "Cloud Engineer"
	RoleBusinessAnalyst  RoleCategory = "Business Analyst"
	RoleSoftwareEngineer RoleCategory = "Software Engineer"
	RoleOther            RoleCategory = "Other Roles"
)

// RoleCategories lists every role category in classification order.
var RoleCategories = []RoleCategory{
	RoleDataScientist,
	RoleDataAnalyst,
	RoleMLEngineer,
	RoleAIEngineer,
	RoleDataEngineer,
	RoleCloudEngineer,
	RoleBusinessAnalyst,
	RoleSoftwareEngineer,
	RoleOther,
}

// ParseRoleCategory resolves a display label such as "Data Engineer".
func ParseRoleCategory(label string) (RoleCategory, error) {
	for _, r := range RoleCategories {
		if string(r) == label {
			return r, nil
		}
	}
	return "", errors.Newf("unknown role category %q", label)
}

// Known canonical cities. Locations outside this set keep a title-cased form.
const (
	CityPune      = "Pune"
	CityBengaluru = "Bengaluru"
	CityMumbai    = "Mumbai"
	CityHyderabad = "Hyderabad"
	CityChennai   = "Chennai"
	CityDelhiNCR  = "Delhi NCR"
)

// ExperienceBand is one of the five fixed experience categories.
type ExperienceBand string

const (
	Band0To1  ExperienceBand = "0-1"
	Band1To2  ExperienceBand = "1-2"
	Band2To5  ExperienceBand = "2-5"
	Band5To10 ExperienceBand = "5-10"
	Band10Up  ExperienceBand = "10+"
)

// ExperienceBands is the fixed band ordering. Tie-breaks follow this order.
var ExperienceBands = []ExperienceBand{Band0To1, Band1To2, Band2To5, Band5To10, Band10Up}

// ParseExperienceBand resolves an exact band label.
func ParseExperienceBand(label string) (ExperienceBand, error) {
	for _, b := range ExperienceBands {
		if string(b) == label {
			return b, nil
		}
	}
	return "", errors.Newf("unknown experience band %q", label)
}
