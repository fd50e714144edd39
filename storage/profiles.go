package storage

import (
	"sort"
	"strings"

	"github.com/cockroachdb/errors"
)

// SourceProfile maps the header names of one export format onto RawListing fields.
type SourceProfile struct {
	Name string
	// Dataset tags every row; when empty the SourceColumn value is used instead.
	Dataset      string
	JobTitle     string
	Location     string
	Experience   string
	Skills       string
	SourceColumn string
}

const DefaultProfile = "master"

var profiles = map[string]SourceProfile{
	"naukri": {
		Name:       "naukri",
		Dataset:    "Naukri",
		JobTitle:   "Job_Role",
		Location:   "Location",
		Experience: "Job Experience",
		Skills:     "Skills/Description",
	},
	"ds_salary": {
		Name:       "ds_salary",
		Dataset:    "DS_Salary_Dataset",
		JobTitle:   "job_title",
		Location:   "company_location",
		Experience: "experience_level",
		Skills:     "job_category",
	},
	"master": {
		Name:         "master",
		JobTitle:     "job_title",
		Location:     "location",
		Experience:   "experience",
		Skills:       "skills_extracted",
		SourceColumn: "source_dataset",
	},
	"canonical": {
		Name:       "canonical",
		Dataset:    "canonical",
		JobTitle:   "job_title",
		Location:   "canonical_location",
		Experience: "experience_band",
		Skills:     "skills_text",
	},
}

// LookupProfile returns the named profile.
func LookupProfile(name string) (SourceProfile, error) {
	p, ok := profiles[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return SourceProfile{}, errors.Newf("unknown source profile %q (known: %s)",
			name, strings.Join(ProfileNames(), ", "))
	}
	return p, nil
}

// ProfileNames lists the known profiles alphabetically.
func ProfileNames() []string {
	names := make([]string, 0, len(profiles))
	for n := range profiles {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Source is one raw export file and the profile used to read it.
type Source struct {
	Path    string `mapstructure:"path"`
	Profile string `mapstructure:"profile"`
}

// ParseSource reads "path[:profile]". A suffix is only taken as a profile when it names one.
func ParseSource(spec string) Source {
	spec = strings.TrimSpace(spec)
	if i := strings.LastIndex(spec, ":"); i > 0 {
		if _, ok := profiles[strings.ToLower(spec[i+1:])]; ok {
			return Source{Path: spec[:i], Profile: strings.ToLower(spec[i+1:])}
		}
	}
	return Source{Path: spec, Profile: DefaultProfile}
}
