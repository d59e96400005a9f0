package sim

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/soundfield/festsim/internal/economy"
	"github.com/soundfield/festsim/internal/festival"
	"github.com/soundfield/festsim/internal/scoring"
)

// RunCampaign executes a marketing campaign: validates the campaign type,
// audience, and budget, then spends the budget, grows the cumulative
// marketing spend, and boosts reputation by the campaign's computed gain.
func (c *Coordinator) RunCampaign(f *festival.Festival, campaignType, audience string, budget float64) (festival.CampaignResult, error) {
	if f.Ended() {
		return festival.CampaignResult{}, fmt.Errorf("festival %d: %w", f.ID, festival.ErrFestivalEnded)
	}

	ct, ok := c.tables.Campaign(campaignType)
	if !ok {
		return festival.CampaignResult{}, fmt.Errorf("campaign type %q: %w", campaignType, festival.ErrInvalidArgument)
	}
	aud, ok := c.tables.Audience(audience)
	if !ok {
		return festival.CampaignResult{}, fmt.Errorf("target audience %q: %w", audience, festival.ErrInvalidArgument)
	}
	if budget < ct.BaseCost {
		return festival.CampaignResult{}, fmt.Errorf("campaign %q needs at least %.0f: %w", campaignType, ct.BaseCost, festival.ErrInsufficientBudget)
	}
	if f.Budget < budget {
		return festival.CampaignResult{}, fmt.Errorf("campaign spend %.0f exceeds budget %.0f: %w", budget, f.Budget, festival.ErrInsufficientBudget)
	}

	effectiveness := scoring.CampaignEffectiveness(ct, aud, f.Reputation, c.rng)
	reach := scoring.CampaignReach(ct, aud, budget, effectiveness)
	boost := scoring.ReputationGain(ct, effectiveness, f.Reputation)

	f.Budget -= budget
	f.MarketingBudget += budget
	f.ApplyReputation(boost)

	slog.Info("campaign run",
		"festival", f.Name,
		"type", campaignType,
		"audience", audience,
		"spend", budget,
		"effectiveness", fmt.Sprintf("%.2f", effectiveness),
		"reach", reach,
		"reputation", f.Reputation,
	)

	return festival.CampaignResult{
		CampaignType:    campaignType,
		TargetAudience:  audience,
		BudgetSpent:     budget,
		Effectiveness:   effectiveness,
		Reach:           reach,
		ReputationBoost: boost,
		NewReputation:   f.Reputation,
		RemainingBudget: f.Budget,
	}, nil
}

// MarketingAnalytics summarizes a festival's marketing position.
type MarketingAnalytics struct {
	MarketingBudget    float64 `json:"marketing_budget"`
	Reputation         int     `json:"reputation"`
	Efficiency         float64 `json:"marketing_efficiency"`
	ReachPerDollar     float64 `json:"reach_per_dollar"`
	ReputationGrowth   int     `json:"reputation_growth"`
	ExpectedAttendance int     `json:"expected_attendance"`
	ROI                float64 `json:"marketing_roi"`
}

// Analytics computes rough marketing performance figures for display.
func (c *Coordinator) Analytics(f *festival.Festival) MarketingAnalytics {
	attendance := economy.ExpectedAttendance(f)
	ticketRevenue := float64(attendance) * 75 // Average ticket assumption

	spend := math.Max(f.MarketingBudget, 1)
	return MarketingAnalytics{
		MarketingBudget:    f.MarketingBudget,
		Reputation:         f.Reputation,
		Efficiency:         f.MarketingBudget / math.Max(float64(f.Reputation), 1),
		ReachPerDollar:     (f.MarketingBudget * 2) / spend,
		ReputationGrowth:   f.Reputation - 50,
		ExpectedAttendance: attendance,
		ROI:                (ticketRevenue - f.MarketingBudget) / spend,
	}
}

// CampaignRecommendation suggests a campaign for the festival's situation.
type CampaignRecommendation struct {
	CampaignType   string  `json:"campaign_type"`
	TargetAudience string  `json:"target_audience"`
	Reason         string  `json:"reason"`
	EstimatedCost  float64 `json:"estimated_cost"`
}

// RecommendedCampaigns proposes campaigns keyed on budget and reputation.
func (c *Coordinator) RecommendedCampaigns(f *festival.Festival) []CampaignRecommendation {
	var recs []CampaignRecommendation

	if f.Reputation < 40 {
		recs = append(recs, CampaignRecommendation{
			CampaignType:   "TV Commercials",
			TargetAudience: "Adults (26-40)",
			Reason:         "High-impact campaign to build brand awareness",
			EstimatedCost:  15000,
		})
	}
	if f.Budget < 10000 {
		recs = append(recs, CampaignRecommendation{
			CampaignType:   "Social Media",
			TargetAudience: "Young Adults (18-25)",
			Reason:         "Cost-effective way to reach target audience",
			EstimatedCost:  2000,
		})
	}
	if f.Budget > 50000 {
		recs = append(recs, CampaignRecommendation{
			CampaignType:   "Influencer Marketing",
			TargetAudience: "Music Enthusiasts",
			Reason:         "Premium campaign for maximum engagement",
			EstimatedCost:  8000,
		})
	}
	if f.Reputation < 60 {
		recs = append(recs, CampaignRecommendation{
			CampaignType:   "Event Marketing",
			TargetAudience: "Music Enthusiasts",
			Reason:         "Direct engagement to build reputation",
			EstimatedCost:  6000,
		})
	}

	return recs
}
