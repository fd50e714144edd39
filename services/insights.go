package services

import (
	"math"

	"careeriq/models"
	"careeriq/utils"
)

const topRanked = 2

// Demand ratio thresholds: above strongRatio is Strong, above moderateRatio is Moderate.
const (
	strongRatio   = 0.4
	moderateRatio = 0.2
)

type InsightService struct {
	logger *utils.Logger
}

func NewInsightService(logger *utils.Logger) *InsightService {
	return &InsightService{logger: logger}
}

// DemandRatio is inScope/overall, or 0 when overall is 0.
func DemandRatio(inScope, overall int) float64 {
	if overall == 0 {
		return 0
	}
	return float64(inScope) / float64(overall)
}

// ClassifyMarket derives the market status from a demand ratio.
func ClassifyMarket(ratio float64) models.MarketStatus {
	switch {
	case ratio > strongRatio:
		return models.MarketStrong
	case ratio > moderateRatio:
		return models.MarketModerate
	default:
		return models.MarketNiche
	}
}

// Generate computes the market insight of subset relative to the full canonical dataset.
// An empty subset yields zero counts and Niche.
func (s *InsightService) Generate(full, subset []models.CanonicalListing) models.MarketInsight {
	report := models.MarketInsight{
		TotalInScope: len(subset),
		TotalOverall: len(full),
		DemandRatio:  DemandRatio(len(subset), len(full)),
	}
	report.MarketStatus = ClassifyMarket(report.DemandRatio)

	roles := newCounter[models.RoleCategory]()
	locations := newCounter[string]()
	bands := make(map[models.ExperienceBand]int, len(models.ExperienceBands))

	for _, l := range subset {
		roles.add(l.RoleCategory)
		if l.HasLocation() {
			locations.add(l.CanonicalLocation)
		}
		bands[l.ExperienceBand]++
	}

	for _, e := range roles.top(topRanked) {
		report.TopRoles = append(report.TopRoles, models.RoleCount{Role: e.key, Count: e.count})
	}
	for _, e := range locations.top(topRanked) {
		report.TopLocations = append(report.TopLocations, models.LocationCount{Location: e.key, Count: e.count})
	}
	report.UniqueRoles = roles.distinct()
	report.ActiveLocations = locations.distinct()

	best := 0
	for _, b := range models.ExperienceBands {
		n := bands[b]
		report.ExperienceDistribution = append(report.ExperienceDistribution, models.BandCount{Band: b, Count: n})
		if n > best {
			best = n
			report.TopExperienceBand = b
		}
	}
	if len(subset) > 0 {
		report.TopExperiencePct = int(math.RoundToEven(100 * float64(best) / float64(len(subset))))
	}

	s.logger.Debug("[insights] %d of %d listings in scope (ratio %.2f, %s)",
		report.TotalInScope, report.TotalOverall, report.DemandRatio, report.MarketStatus)
	return report
}
