package services

import (
	"strings"

	"careeriq/models"
)

const (
	// DefaultTopSkills is the size of the general skill ranking.
	DefaultTopSkills = 10
	// DefaultAdviceSkills is the size of the role-focused ranking.
	DefaultAdviceSkills = 3
)

// splitSkills tokenizes a comma-delimited skills field into case-folded, trimmed, non-empty tokens.
func splitSkills(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	parts := strings.Split(strings.ToLower(text), ",")
	tokens := make([]string, 0, len(parts))
	for _, p := range parts {
		if tok := strings.TrimSpace(p); tok != "" {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}

// AggregateSkills ranks skill mentions across listings. topN <= 0 uses DefaultTopSkills.
func AggregateSkills(listings []models.CanonicalListing, topN int) []models.SkillCount {
	if topN <= 0 {
		topN = DefaultTopSkills
	}

	c := newCounter[string]()
	for _, l := range listings {
		for _, tok := range splitSkills(l.SkillsText) {
			c.add(tok)
		}
	}

	top := c.top(topN)
	out := make([]models.SkillCount, 0, len(top))
	for _, e := range top {
		out = append(out, models.SkillCount{Skill: titleCase(e.key), Count: e.count})
	}
	return out
}

// SkillAdvice is the role-focused skill recommendation.
type SkillAdvice struct {
	Role   models.RoleCategory
	Skills []models.SkillCount
}

// Sentence renders the advice, or "" when the role has no skill data.
func (a SkillAdvice) Sentence() string {
	if len(a.Skills) == 0 {
		return ""
	}
	names := make([]string, 0, len(a.Skills))
	for _, s := range a.Skills {
		names = append(names, s.Skill)
	}
	return "For " + string(a.Role) + ", focus on: " + strings.Join(names, ", ")
}

// RoleSkillAdvice ranks the skills of one role. topN <= 0 uses DefaultAdviceSkills.
func RoleSkillAdvice(listings []models.CanonicalListing, role models.RoleCategory, topN int) SkillAdvice {
	if topN <= 0 {
		topN = DefaultAdviceSkills
	}
	var scoped []models.CanonicalListing
	for _, l := range listings {
		if l.RoleCategory == role {
			scoped = append(scoped, l)
		}
	}
	return SkillAdvice{Role: role, Skills: AggregateSkills(scoped, topN)}
}

// Coverage counts the roles that carry any skill data.
type Coverage struct {
	RolesWithSkills int
	TotalRoles      int
}

// SkillCoverage reports how many distinct roles have at least one listing with skills text.
func SkillCoverage(listings []models.CanonicalListing) Coverage {
	all := make(map[models.RoleCategory]struct{})
	withSkills := make(map[models.RoleCategory]struct{})
	for _, l := range listings {
		all[l.RoleCategory] = struct{}{}
		if strings.TrimSpace(l.SkillsText) != "" {
			withSkills[l.RoleCategory] = struct{}{}
		}
	}
	return Coverage{RolesWithSkills: len(withSkills), TotalRoles: len(all)}
}
