package services

import (
	"reflect"
	"testing"

	"careeriq/models"
)

func sampleListings() []models.CanonicalListing {
	return []models.CanonicalListing{
		canonical(models.RoleDataScientist, models.CityPune, models.Band2To5, "python"),
		canonical(models.RoleDataEngineer, models.CityBengaluru, models.Band2To5, "spark"),
		canonical(models.RoleDataScientist, models.CityBengaluru, models.Band0To1, "python, sql"),
		canonical(models.RoleDataEngineer, "", models.Band5To10, "aws"),
		canonical(models.RoleCloudEngineer, models.CityMumbai, models.Band2To5, "aws"),
	}
}

func TestClassifyMarketBoundaries(t *testing.T) {
	tests := []struct {
		ratio float64
		want  models.MarketStatus
	}{
		{1.0, models.MarketStrong},
		{0.40001, models.MarketStrong},
		{0.4, models.MarketModerate},
		{0.20001, models.MarketModerate},
		{0.2, models.MarketNiche},
		{0, models.MarketNiche},
	}

	for _, tt := range tests {
		if got := ClassifyMarket(tt.ratio); got != tt.want {
			t.Errorf("ClassifyMarket(%v) = %q; want %q", tt.ratio, got, tt.want)
		}
	}
}

func TestInsightRatioBoundariesFromCounts(t *testing.T) {
	svc := NewInsightService(newTestLogger())
	full := sampleListings()

	if r := svc.Generate(full, full[:2]); r.MarketStatus != models.MarketModerate || r.DemandRatio != 0.4 {
		t.Errorf("2 of 5: got %q (%.5f), want Moderate (0.4)", r.MarketStatus, r.DemandRatio)
	}
	if r := svc.Generate(full, full[:1]); r.MarketStatus != models.MarketNiche || r.DemandRatio != 0.2 {
		t.Errorf("1 of 5: got %q (%.5f), want Niche (0.2)", r.MarketStatus, r.DemandRatio)
	}
	if r := svc.Generate(full, full[:3]); r.MarketStatus != models.MarketStrong {
		t.Errorf("3 of 5: got %q, want Strong", r.MarketStatus)
	}
}

func TestInsightTopRolesAndLocations(t *testing.T) {
	svc := NewInsightService(newTestLogger())
	full := sampleListings()
	r := svc.Generate(full, full)

	wantRoles := []models.RoleCount{
		{Role: models.RoleDataScientist, Count: 2},
		{Role: models.RoleDataEngineer, Count: 2},
	}
	if !reflect.DeepEqual(r.TopRoles, wantRoles) {
		t.Errorf("TopRoles = %+v; want %+v", r.TopRoles, wantRoles)
	}

	wantLocs := []models.LocationCount{
		{Location: models.CityBengaluru, Count: 2},
		{Location: models.CityPune, Count: 1},
	}
	if !reflect.DeepEqual(r.TopLocations, wantLocs) {
		t.Errorf("TopLocations = %+v; want %+v", r.TopLocations, wantLocs)
	}

	if r.UniqueRoles != 3 {
		t.Errorf("UniqueRoles: got %d, want 3", r.UniqueRoles)
	}
	if r.ActiveLocations != 3 {
		t.Errorf("ActiveLocations: got %d, want 3", r.ActiveLocations)
	}
}

func TestInsightExperienceSweetSpot(t *testing.T) {
	svc := NewInsightService(newTestLogger())
	full := sampleListings()
	r := svc.Generate(full, full)

	if r.TopExperienceBand != models.Band2To5 {
		t.Errorf("TopExperienceBand: got %q, want %q", r.TopExperienceBand, models.Band2To5)
	}
	if r.TopExperiencePct != 60 {
		t.Errorf("TopExperiencePct: got %d, want 60", r.TopExperiencePct)
	}

	wantDist := []models.BandCount{
		{Band: models.Band0To1, Count: 1},
		{Band: models.Band1To2, Count: 0},
		{Band: models.Band2To5, Count: 3},
		{Band: models.Band5To10, Count: 1},
		{Band: models.Band10Up, Count: 0},
	}
	if !reflect.DeepEqual(r.ExperienceDistribution, wantDist) {
		t.Errorf("ExperienceDistribution = %+v; want %+v", r.ExperienceDistribution, wantDist)
	}
}

func TestInsightExperienceTieUsesBandOrder(t *testing.T) {
	svc := NewInsightService(newTestLogger())
	subset := []models.CanonicalListing{
		canonical(models.RoleOther, models.CityPune, models.Band10Up, ""),
		canonical(models.RoleOther, models.CityPune, models.Band1To2, ""),
		canonical(models.RoleOther, models.CityPune, models.Band5To10, ""),
	}

	r := svc.Generate(subset, subset)
	if r.TopExperienceBand != models.Band1To2 {
		t.Errorf("TopExperienceBand: got %q, want %q", r.TopExperienceBand, models.Band1To2)
	}
	if r.TopExperiencePct != 33 {
		t.Errorf("TopExperiencePct: got %d, want 33", r.TopExperiencePct)
	}
}

func TestInsightPercentRoundsToNearest(t *testing.T) {
	svc := NewInsightService(newTestLogger())

	subset := func(bands ...models.ExperienceBand) []models.CanonicalListing {
		out := make([]models.CanonicalListing, 0, len(bands))
		for _, b := range bands {
			out = append(out, canonical(models.RoleOther, models.CityPune, b, ""))
		}
		return out
	}
	repeat := func(b models.ExperienceBand, n int) []models.ExperienceBand {
		out := make([]models.ExperienceBand, n)
		for i := range out {
			out[i] = b
		}
		return out
	}

	tests := []struct {
		name  string
		bands []models.ExperienceBand
		want  int
	}{
		{"two of three", []models.ExperienceBand{models.Band0To1, models.Band0To1, models.Band2To5}, 67},
		{"five of eight halves to even", append(repeat(models.Band0To1, 5), repeat(models.Band1To2, 3)...), 62},
		{"three of eight halves to even", append(repeat(models.Band0To1, 3), append(repeat(models.Band1To2, 2), repeat(models.Band2To5, 3)...)...), 38},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := subset(tt.bands...)
			if r := svc.Generate(rows, rows); r.TopExperiencePct != tt.want {
				t.Errorf("TopExperiencePct: got %d, want %d", r.TopExperiencePct, tt.want)
			}
		})
	}
}

func TestInsightEmptySubset(t *testing.T) {
	svc := NewInsightService(newTestLogger())
	r := svc.Generate(sampleListings(), nil)

	if r.TotalInScope != 0 || r.TotalOverall != 5 {
		t.Errorf("totals: got %d/%d, want 0/5", r.TotalInScope, r.TotalOverall)
	}
	if r.MarketStatus != models.MarketNiche {
		t.Errorf("MarketStatus: got %q, want Niche", r.MarketStatus)
	}
	if len(r.TopRoles) != 0 || len(r.TopLocations) != 0 {
		t.Errorf("expected no top roles or locations, got %+v %+v", r.TopRoles, r.TopLocations)
	}
	if r.TopExperienceBand != "" || r.TopExperiencePct != 0 {
		t.Errorf("expected no sweet spot, got %q %d", r.TopExperienceBand, r.TopExperiencePct)
	}
}

func TestInsightEmptyDataset(t *testing.T) {
	svc := NewInsightService(newTestLogger())
	r := svc.Generate(nil, nil)
	if r.DemandRatio != 0 || r.MarketStatus != models.MarketNiche {
		t.Errorf("expected ratio 0 and Niche, got %.2f %q", r.DemandRatio, r.MarketStatus)
	}
}

func TestBuildReportAddsRoleAdvice(t *testing.T) {
	svc := NewInsightService(newTestLogger())
	scope := Scope{Roles: []models.RoleCategory{models.RoleDataScientist}}

	r := svc.BuildReport(7, sampleListings(), scope, 0, 0)
	if r.Insight.TotalInScope != 2 {
		t.Fatalf("TotalInScope: got %d, want 2", r.Insight.TotalInScope)
	}
	if r.Advice == nil || r.Advice.Sentence() != "For Data Scientist, focus on: Python, Sql" {
		t.Errorf("unexpected advice: %+v", r.Advice)
	}
	if r.RawCount != 7 {
		t.Errorf("RawCount: got %d, want 7", r.RawCount)
	}
}
