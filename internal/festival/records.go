package festival

import "github.com/soundfield/festsim/internal/catalog"

// DynamicEvent is an ephemeral disruption (or windfall) generated for one
// simulated day. The engine never persists these; ownership passes to the
// caller along with the day summary.
type DynamicEvent struct {
	ID          string                `json:"id"` // Instance id, unique per generation
	Type        string                `json:"type"`
	Severity    catalog.Severity      `json:"severity"`
	Description string                `json:"description"`
	Effects     catalog.EventEffects  `json:"effects"`
	Solutions   []string              `json:"solutions"`
	Options     []catalog.EventOption `json:"interactive_options"`
	Day         int                   `json:"day"` // Days remaining when the event fired
	Applied     bool                  `json:"applied"`
	Resolved    bool                  `json:"resolved"`
}

// ResponseOutcome reports the result of resolving an event, either through a
// type-specific option or a generic crisis tier.
type ResponseOutcome struct {
	EventID       string               `json:"event_id"`
	OptionID      string               `json:"option_id,omitempty"`
	Tier          catalog.CrisisTier   `json:"tier,omitempty"`
	Cost          float64              `json:"cost"`
	Effectiveness float64              `json:"effectiveness"`
	Applied       catalog.EventEffects `json:"effects_applied"`
	NewBudget     float64              `json:"new_budget"`
	NewReputation int                  `json:"new_reputation"`
}

// DaySummary is what one AdvanceDay call hands back to the caller.
type DaySummary struct {
	DaysRemaining int             `json:"days_remaining"`
	Events        []*DynamicEvent `json:"events"`
	Weather       string          `json:"weather"`
	Budget        float64         `json:"budget"`
	Reputation    int             `json:"reputation"`
}

// CampaignResult reports a completed marketing campaign.
type CampaignResult struct {
	CampaignType    string  `json:"campaign_type"`
	TargetAudience  string  `json:"target_audience"`
	BudgetSpent     float64 `json:"budget_spent"`
	Effectiveness   float64 `json:"effectiveness"`
	Reach           int     `json:"reach"`
	ReputationBoost float64 `json:"reputation_boost"`
	NewReputation   int     `json:"new_reputation"`
	RemainingBudget float64 `json:"remaining_budget"`
}

// TicketRevenue breaks ticket income down by tier.
type TicketRevenue struct {
	Total            float64 `json:"total_revenue"`
	GeneralRevenue   float64 `json:"ga_revenue"`
	VIPRevenue       float64 `json:"vip_revenue"`
	PremiumRevenue   float64 `json:"premium_revenue"`
	GeneralAttendees int     `json:"ga_attendees"`
	VIPAttendees     int     `json:"vip_attendees"`
	PremiumAttendees int     `json:"premium_attendees"`
	TotalAttendees   int     `json:"total_attendees"`
}

// VendorRevenue holds aggregate vendor income and the festival's cut.
type VendorRevenue struct {
	TotalVendorRevenue float64 `json:"total_vendor_revenue"`
	Commission         float64 `json:"festival_commission"`
}

// CostBreakdown itemizes projected festival costs.
type CostBreakdown struct {
	Total          float64 `json:"total_costs"`
	ArtistFees     float64 `json:"artist_costs"`
	VendorCosts    float64 `json:"vendor_costs"`
	Staffing       float64 `json:"staffing_costs"`
	Security       float64 `json:"security_costs"`
	Infrastructure float64 `json:"infrastructure_costs"`
	Marketing      float64 `json:"marketing_costs"`
	Insurance      float64 `json:"insurance_costs"`
	Permits        float64 `json:"permit_costs"`
}

// FinancialSummary is the full economic projection for a festival.
type FinancialSummary struct {
	ExpectedAttendance int           `json:"expected_attendance"`
	TicketPrice        float64       `json:"ticket_price"`
	Tickets            TicketRevenue `json:"ticket_revenue"`
	Vendors            VendorRevenue `json:"vendor_revenue"`
	TotalRevenue       float64       `json:"total_revenue"`
	Costs              CostBreakdown `json:"cost_breakdown"`
	ProfitMargin       float64       `json:"profit_margin"`
	NetProfit          float64       `json:"net_profit"`
}

// RiskCategory is one assessed risk dimension.
type RiskCategory struct {
	Type        string  `json:"type"`
	Probability float64 `json:"probability"`
	Severity    string  `json:"severity"`
	Mitigation  string  `json:"mitigation"`
}

// RiskAssessment is the overall festival risk picture.
type RiskAssessment struct {
	OverallRisk     float64        `json:"overall_risk"`
	Level           string         `json:"risk_level"`
	Categories      []RiskCategory `json:"categories"`
	Recommendations []string       `json:"recommendations"`
}
