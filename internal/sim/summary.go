package sim

import (
	"github.com/soundfield/festsim/internal/festival"
	"github.com/soundfield/festsim/internal/scoring"
)

// FestivalSummary is the cross-cutting festival overview, fanning out to the
// scoring, economic, and risk components.
type FestivalSummary struct {
	Festival struct {
		ID              int64   `json:"id"`
		Name            string  `json:"name"`
		DaysRemaining   int     `json:"days_remaining"`
		Budget          float64 `json:"budget"`
		Reputation      int     `json:"reputation"`
		VenueCapacity   int     `json:"venue_capacity"`
		MarketingBudget float64 `json:"marketing_budget"`
	} `json:"festival"`

	Artists struct {
		Count         int                     `json:"count"`
		TotalCost     float64                 `json:"total_cost"`
		AvgPopularity float64                 `json:"average_popularity"`
		Synergies     []scoring.ActiveSynergy `json:"synergies"`
	} `json:"artists"`

	Vendors struct {
		Count         int                      `json:"count"`
		TotalCost     float64                  `json:"total_cost"`
		AvgQuality    float64                  `json:"average_quality"`
		Relationships []scoring.VendorRelation `json:"relationships"`
	} `json:"vendors"`

	Financial festival.FinancialSummary `json:"financial"`
	Marketing MarketingAnalytics        `json:"marketing"`
	Risk      festival.RiskAssessment   `json:"risk"`
}

// Summary assembles the full overview for one festival.
func (c *Coordinator) Summary(f *festival.Festival) FestivalSummary {
	var s FestivalSummary

	s.Festival.ID = f.ID
	s.Festival.Name = f.Name
	s.Festival.DaysRemaining = f.DaysRemaining
	s.Festival.Budget = f.Budget
	s.Festival.Reputation = f.Reputation
	s.Festival.VenueCapacity = f.VenueCapacity
	s.Festival.MarketingBudget = f.MarketingBudget

	s.Artists.Count = len(f.Artists)
	for _, a := range f.Artists {
		s.Artists.TotalCost += a.Fee
	}
	if len(f.Artists) > 0 {
		s.Artists.AvgPopularity = f.AvgArtistPopularity()
	}
	s.Artists.Synergies = scoring.GenreSynergies(c.tables, f.Artists)

	s.Vendors.Count = len(f.Vendors)
	for _, v := range f.Vendors {
		s.Vendors.TotalCost += v.Cost
	}
	if len(f.Vendors) > 0 {
		s.Vendors.AvgQuality = f.AvgVendorQuality()
	}
	s.Vendors.Relationships = scoring.VendorRelationships(c.tables, f.Vendors)

	s.Financial = c.Finances(f)
	s.Marketing = c.Analytics(f)
	s.Risk = c.events.RiskAssessment(f)

	return s
}
