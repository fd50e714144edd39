package services

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"

	"careeriq/models"
)

var (
	// ErrEmptyScope is returned when a message is requested for zero in-scope listings.
	ErrEmptyScope = errors.New("no listings in scope")
	// ErrIncompleteInsight is returned when the insight lacks a top role or top city.
	ErrIncompleteInsight = errors.New("insight has no top role or top city")
)

// FormatInsightMessage renders the shareable market-intelligence summary.
func FormatInsightMessage(m models.MarketInsight) (string, error) {
	if m.Empty() {
		return "", ErrEmptyScope
	}
	if len(m.TopRoles) == 0 || len(m.TopLocations) == 0 {
		return "", errors.Wrapf(ErrIncompleteInsight, "%d roles, %d cities", len(m.TopRoles), len(m.TopLocations))
	}

	var b strings.Builder
	b.WriteString("📊 CareerIQ – Market Intelligence\n\n")
	fmt.Fprintf(&b, "🔹 Total Jobs Analyzed: %d\n\n", m.TotalInScope)

	b.WriteString("🔥 Top Hiring Roles:\n")
	for i, r := range m.TopRoles {
		fmt.Fprintf(&b, "%d. %s – %d jobs\n", i+1, r.Role, r.Count)
	}

	b.WriteString("\n🌍 Top Hiring Cities:\n")
	for i, c := range m.TopLocations {
		fmt.Fprintf(&b, "%d. %s – %d openings\n", i+1, c.Location, c.Count)
	}

	b.WriteString("\n🎯 Experience Sweet Spot:\n")
	fmt.Fprintf(&b, "%s years (%d%% of roles)\n\n", m.TopExperienceBand, m.TopExperiencePct)

	b.WriteString("💡 Action Tip:\n")
	fmt.Fprintf(&b, "Target %s roles in %s\nif you fall in the %s experience range.\n\n",
		m.TopRoles[0].Role, m.TopLocations[0].Location, m.TopExperienceBand)

	b.WriteString("Stay skilled. Stay relevant.\n")
	return b.String(), nil
}
