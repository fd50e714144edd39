package services

import (
	"slices"
	"sort"
	"strings"

	"careeriq/models"
)

// Scope is a consumer filter over the canonical dataset. Empty dimensions match everything.
type Scope struct {
	Roles     []models.RoleCategory
	Locations []string
	Bands     []models.ExperienceBand
}

// Matches reports whether a listing falls inside the scope.
func (s Scope) Matches(l models.CanonicalListing) bool {
	if len(s.Roles) > 0 && !slices.Contains(s.Roles, l.RoleCategory) {
		return false
	}
	if len(s.Locations) > 0 && (!l.HasLocation() || !slices.Contains(s.Locations, l.CanonicalLocation)) {
		return false
	}
	if len(s.Bands) > 0 && !slices.Contains(s.Bands, l.ExperienceBand) {
		return false
	}
	return true
}

// Apply returns the in-scope listings as a new slice, preserving order.
func (s Scope) Apply(listings []models.CanonicalListing) []models.CanonicalListing {
	out := make([]models.CanonicalListing, 0, len(listings))
	for _, l := range listings {
		if s.Matches(l) {
			out = append(out, l)
		}
	}
	return out
}

// Summary describes the scope for operators.
func (s Scope) Summary() string {
	roles := "All Roles"
	if len(s.Roles) > 0 {
		names := make([]string, 0, len(s.Roles))
		for _, r := range s.Roles {
			names = append(names, string(r))
		}
		roles = strings.Join(names, ", ")
	}
	locations := "All Locations"
	if len(s.Locations) > 0 {
		locations = strings.Join(s.Locations, ", ")
	}
	return "Showing results for " + roles + " in " + locations
}

// ScopeOptions lists the values a consumer can filter by.
type ScopeOptions struct {
	Roles     []models.RoleCategory
	Locations []string
}

// Options returns the sorted distinct roles and non-null locations in the dataset.
func Options(listings []models.CanonicalListing) ScopeOptions {
	roleSet := make(map[models.RoleCategory]struct{})
	locSet := make(map[string]struct{})
	for _, l := range listings {
		roleSet[l.RoleCategory] = struct{}{}
		if l.HasLocation() {
			locSet[l.CanonicalLocation] = struct{}{}
		}
	}

	opts := ScopeOptions{}
	for r := range roleSet {
		opts.Roles = append(opts.Roles, r)
	}
	for loc := range locSet {
		opts.Locations = append(opts.Locations, loc)
	}
	sort.Slice(opts.Roles, func(i, j int) bool { return opts.Roles[i] < opts.Roles[j] })
	sort.Strings(opts.Locations)
	return opts
}
