package catalog

// CampaignType defines a purchasable marketing campaign.
type CampaignType struct {
	Name            string
	BaseCost        float64
	ReachMultiplier float64
	ReputationBoost float64
	DurationDays    int
	Effectiveness   float64
	Description     string
}

// CampaignTypes is the marketing campaign table.
var CampaignTypes = []CampaignType{
	{Name: "Social Media", BaseCost: 2000, ReachMultiplier: 1.2, ReputationBoost: 5, DurationDays: 7, Effectiveness: 0.8, Description: "Social media advertising and influencer partnerships"},
	{Name: "Print Media", BaseCost: 3000, ReachMultiplier: 1.1, ReputationBoost: 3, DurationDays: 14, Effectiveness: 0.6, Description: "Newspaper ads, magazines, and flyers"},
	{Name: "Radio", BaseCost: 4000, ReachMultiplier: 1.3, ReputationBoost: 4, DurationDays: 10, Effectiveness: 0.7, Description: "Radio commercials and interviews"},
	{Name: "TV Commercials", BaseCost: 15000, ReachMultiplier: 1.8, ReputationBoost: 8, DurationDays: 21, Effectiveness: 0.9, Description: "Television advertising"},
	{Name: "Billboards", BaseCost: 5000, ReachMultiplier: 1.15, ReputationBoost: 2, DurationDays: 30, Effectiveness: 0.5, Description: "Outdoor billboard advertising"},
	{Name: "Influencer Marketing", BaseCost: 8000, ReachMultiplier: 1.4, ReputationBoost: 6, DurationDays: 14, Effectiveness: 0.85, Description: "Social media influencer partnerships"},
	{Name: "Event Marketing", BaseCost: 6000, ReachMultiplier: 1.25, ReputationBoost: 7, DurationDays: 5, Effectiveness: 0.75, Description: "Pop-up events and street marketing"},
	{Name: "Email Marketing", BaseCost: 1000, ReachMultiplier: 1.05, ReputationBoost: 1, DurationDays: 3, Effectiveness: 0.4, Description: "Email campaigns to existing database"},
}

// TargetAudience is a demographic a campaign can be aimed at.
type TargetAudience struct {
	Name              string
	PreferredChannels []string
	ReachMultiplier   float64
	Description       string
}

// TargetAudiences is the audience table.
var TargetAudiences = []TargetAudience{
	{Name: "Young Adults (18-25)", PreferredChannels: []string{"Social Media", "Influencer Marketing"}, ReachMultiplier: 1.3, Description: "Tech-savvy, social media active"},
	{Name: "Adults (26-40)", PreferredChannels: []string{"Social Media", "Radio", "TV Commercials"}, ReachMultiplier: 1.1, Description: "Balanced media consumption"},
	{Name: "Older Adults (41+)", PreferredChannels: []string{"Print Media", "Radio", "TV Commercials"}, ReachMultiplier: 0.9, Description: "Traditional media preference"},
	{Name: "Families", PreferredChannels: []string{"TV Commercials", "Radio", "Billboards"}, ReachMultiplier: 1.2, Description: "Family-oriented marketing"},
	{Name: "Music Enthusiasts", PreferredChannels: []string{"Social Media", "Influencer Marketing", "Event Marketing"}, ReachMultiplier: 1.4, Description: "Highly engaged music community"},
}

// EmergencyProtocol is a preventive measure that can be purchased at any time.
type EmergencyProtocol struct {
	Type          string  `json:"type"`
	Description   string  `json:"description"`
	Cost          float64 `json:"cost"`
	Effectiveness float64 `json:"effectiveness"`
	MinCapacity   int     `json:"-"` // Only offered at or above this venue capacity
}

// EmergencyProtocols lists the protocol templates. The security enhancement
// is only offered to venues above 15k capacity.
var EmergencyProtocols = []EmergencyProtocol{
	{Type: "Weather Emergency", Description: "Monitor weather conditions and have shelter plans ready", Cost: 2000, Effectiveness: 0.8},
	{Type: "Security Enhancement", Description: "Additional security personnel and monitoring systems", Cost: 5000, Effectiveness: 0.9, MinCapacity: 15001},
	{Type: "Medical Support", Description: "On-site medical staff and first aid stations", Cost: 3000, Effectiveness: 0.85},
	{Type: "Technical Backup", Description: "Backup sound and lighting systems", Cost: 4000, Effectiveness: 0.75},
}
