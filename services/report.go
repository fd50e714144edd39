package services

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"

	"careeriq/models"
)

// Report bundles everything the operator view shows for one scope.
type Report struct {
	Scope     Scope
	RawCount  int
	Insight   models.MarketInsight
	TopSkills []models.SkillCount
	Advice    *SkillAdvice
	Coverage  Coverage
}

// BuildReport runs the insight and skill aggregations for a scoped subset.
func (s *InsightService) BuildReport(rawCount int, full []models.CanonicalListing, scope Scope, topSkills, adviceSkills int) Report {
	subset := scope.Apply(full)
	r := Report{
		Scope:     scope,
		RawCount:  rawCount,
		Insight:   s.Generate(full, subset),
		TopSkills: AggregateSkills(subset, topSkills),
		Coverage:  SkillCoverage(full),
	}
	if len(scope.Roles) > 0 && len(subset) > 0 {
		advice := RoleSkillAdvice(subset, scope.Roles[0], adviceSkills)
		r.Advice = &advice
	}
	return r
}

// Print renders the report to the terminal.
func (s *InsightService) Print(r Report) {
	m := r.Insight

	pterm.DefaultHeader.WithFullWidth().Println("CareerIQ – Job Market Intelligence")
	pterm.Info.Println(r.Scope.Summary())

	pterm.DefaultSection.Println("Overview")
	pterm.Printf("  Total jobs        : %s\n", pterm.Bold.Sprint(m.TotalInScope))
	pterm.Printf("  Unique roles      : %s\n", pterm.Bold.Sprint(m.UniqueRoles))
	pterm.Printf("  Active locations  : %s\n", pterm.Bold.Sprint(m.ActiveLocations))
	pterm.Printf("  Demand ratio      : %.2f\n", m.DemandRatio)
	printStatus(m.MarketStatus)

	if m.Empty() {
		pterm.Warning.Println("No data available for selected filters.")
		s.printDatasetInfo(r)
		return
	}

	pterm.DefaultSection.Println("Top Hiring Roles")
	for i, role := range m.TopRoles {
		pterm.Printf("  %d. %-22s %s\n", i+1, role.Role, pterm.LightGreen(role.Count))
	}

	pterm.DefaultSection.Println("Top Hiring Cities")
	if len(m.TopLocations) == 0 {
		pterm.Println("  No location data")
	}
	for i, loc := range m.TopLocations {
		pterm.Printf("  %d. %-22s %s\n", i+1, loc.Location, pterm.LightGreen(loc.Count))
	}

	pterm.DefaultSection.Println("Experience Demand Overview")
	bars := make(pterm.Bars, 0, len(m.ExperienceDistribution))
	for _, b := range m.ExperienceDistribution {
		bars = append(bars, pterm.Bar{Label: string(b.Band), Value: b.Count})
	}
	if err := pterm.DefaultBarChart.WithHorizontal().WithShowValue().WithBars(bars).Render(); err != nil {
		s.logger.Warn("[insights] render experience chart: %v", err)
	}

	pterm.DefaultSection.Println("Top Skills in Demand")
	if len(r.TopSkills) == 0 {
		pterm.Println("  No skill data available for selected filter.")
	}
	for _, sk := range r.TopSkills {
		pterm.Printf("  %-28s %s (%d)\n", truncate(sk.Skill, 26), strings.Repeat("█", min(sk.Count, 40)), sk.Count)
	}
	if r.Advice != nil {
		if sentence := r.Advice.Sentence(); sentence != "" {
			pterm.Success.Println(sentence)
		} else {
			pterm.Info.Println("Not enough skill data for recommendation.")
		}
	}
	pterm.Printf("  Roles with skill mapping: %d / %d\n", r.Coverage.RolesWithSkills, r.Coverage.TotalRoles)

	pterm.DefaultSection.Println("Career Insight")
	pterm.Printf("  Most in-demand role   : %s\n", m.TopRoles[0].Role)
	if len(m.TopLocations) > 0 {
		pterm.Printf("  Top hiring city       : %s\n", m.TopLocations[0].Location)
	}
	pterm.Printf("  Experience sweet spot : %s years (%d%%)\n", m.TopExperienceBand, m.TopExperiencePct)

	s.printDatasetInfo(r)
}

func (s *InsightService) printDatasetInfo(r Report) {
	pterm.DefaultSection.Println("Dataset Info")
	pterm.Printf("  Raw records       : %d\n", r.RawCount)
	pterm.Printf("  Canonical records : %d\n", r.Insight.TotalOverall)
	pterm.Printf("  Filtered records  : %d\n", r.Insight.TotalInScope)
}

func printStatus(status models.MarketStatus) {
	text := fmt.Sprintf("Market Status: %s", status.Headline())
	switch status {
	case models.MarketStrong:
		pterm.Success.Println(text)
	case models.MarketModerate:
		pterm.Warning.Println(text)
	default:
		pterm.Error.Println(text)
	}
}

func truncate(s string, max int) string {
	if len([]rune(s)) <= max {
		return s
	}
	return string([]rune(s)[:max-3]) + "..."
}
