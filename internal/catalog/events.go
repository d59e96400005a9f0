package catalog

// EventEffects holds the raw effect deltas an event applies to a festival.
// Attendance is a fraction of expected attendance; budget is in dollars.
type EventEffects struct {
	Reputation float64 `json:"reputation"`
	Attendance float64 `json:"attendance"`
	Budget     float64 `json:"budget"`
}

// EventOption is one type-specific interactive response to an event.
type EventOption struct {
	ID            string       `json:"id"`
	Label         string       `json:"label"`
	Description   string       `json:"description"`
	Cost          float64      `json:"cost"`
	Effectiveness float64      `json:"effectiveness"`
	Effects       EventEffects `json:"effects"`
}

// EventType defines a dynamic event that can fire during a simulated day.
type EventType struct {
	Name        string
	Probability float64 // Base daily probability before state adjustments
	Severity    Severity
	Description string
	Effects     EventEffects
	Solutions   []string
	Options     []EventOption
	Involves    string // "artist", "vendor", or "" when no participant is named
}

// EventTypes is the full dynamic event table. Order is fixed so that a
// seeded run draws events deterministically.
var EventTypes = []EventType{
	{
		Name:        "Artist Cancellation",
		Probability: 0.08,
		Severity:    SeverityHigh,
		Description: "A scheduled artist has cancelled their performance",
		Effects:     EventEffects{Reputation: -10, Attendance: -0.15, Budget: -5000},
		Solutions:   []string{"Find replacement artist", "Offer refunds", "Adjust schedule"},
		Involves:    "artist",
		Options: []EventOption{
			{ID: "find_replacement", Label: "Find replacement artist", Description: "Book a last-minute replacement act", Cost: 8000, Effectiveness: 0.85, Effects: EventEffects{Reputation: 7}},
			{ID: "offer_refunds", Label: "Offer refunds", Description: "Refund affected ticket holders", Cost: 5000, Effectiveness: 0.6, Effects: EventEffects{Reputation: 5}},
			{ID: "adjust_schedule", Label: "Adjust schedule", Description: "Shuffle the lineup to cover the gap", Cost: 1500, Effectiveness: 0.4, Effects: EventEffects{Reputation: 3}},
		},
	},
	{
		Name:        "Weather Emergency",
		Probability: 0.12,
		Severity:    SeverityHigh,
		Description: "Severe weather conditions affecting the festival",
		Effects:     EventEffects{Reputation: -15, Attendance: -0.25, Budget: -10000},
		Solutions:   []string{"Implement safety protocols", "Provide shelter", "Reschedule if possible"},
		Options: []EventOption{
			{ID: "activate_protocols", Label: "Activate emergency protocols", Description: "Full safety response with staff coordination", Cost: 7000, Effectiveness: 0.9, Effects: EventEffects{Reputation: 10}},
			{ID: "provide_shelter", Label: "Provide shelter", Description: "Set up covered areas for attendees", Cost: 4000, Effectiveness: 0.65, Effects: EventEffects{Reputation: 6}},
			{ID: "monitor_weather", Label: "Monitor conditions", Description: "Keep watch and warn attendees", Cost: 1000, Effectiveness: 0.35, Effects: EventEffects{Reputation: 2}},
		},
	},
	{
		Name:        "Technical Issues",
		Probability: 0.18,
		Severity:    SeverityMedium,
		Description: "Sound system or lighting failures",
		Effects:     EventEffects{Reputation: -5, Attendance: -0.05, Budget: -2000},
		Solutions:   []string{"Call backup technicians", "Use backup equipment", "Adjust programming"},
		Options: []EventOption{
			{ID: "call_backup", Label: "Call backup technicians", Description: "Emergency crew on site within the hour", Cost: 3000, Effectiveness: 0.85, Effects: EventEffects{Reputation: 4}},
			{ID: "use_backup_equipment", Label: "Use backup equipment", Description: "Swap in the spare rig", Cost: 1500, Effectiveness: 0.7, Effects: EventEffects{Reputation: 3}},
			{ID: "adjust_programming", Label: "Adjust programming", Description: "Move acts to working stages", Cost: 500, Effectiveness: 0.4, Effects: EventEffects{Reputation: 1}},
		},
	},
	{
		Name:        "Security Incident",
		Probability: 0.05,
		Severity:    SeverityHigh,
		Description: "Security breach or safety concern",
		Effects:     EventEffects{Reputation: -20, Attendance: -0.30, Budget: -15000},
		Solutions:   []string{"Increase security presence", "Implement emergency protocols", "Coordinate with authorities"},
		Options: []EventOption{
			{ID: "increase_security", Label: "Increase security presence", Description: "Bring in additional trained personnel", Cost: 10000, Effectiveness: 0.9, Effects: EventEffects{Reputation: 12}},
			{ID: "implement_protocols", Label: "Implement security protocols", Description: "Lock down entrances and sweep the grounds", Cost: 6000, Effectiveness: 0.7, Effects: EventEffects{Reputation: 8}},
			{ID: "coordinate_authorities", Label: "Coordinate with authorities", Description: "Hand the incident to local police", Cost: 2000, Effectiveness: 0.5, Effects: EventEffects{Reputation: 4}},
		},
	},
	{
		Name:        "Vendor Problems",
		Probability: 0.15,
		Severity:    SeverityLow,
		Description: "Food vendors experiencing issues",
		Effects:     EventEffects{Reputation: -3, Attendance: -0.02, Budget: -1000},
		Solutions:   []string{"Find backup vendors", "Provide alternative food options", "Compensate affected attendees"},
		Involves:    "vendor",
		Options: []EventOption{
			{ID: "find_backup_vendors", Label: "Find backup vendors", Description: "Call in standby vendors", Cost: 2000, Effectiveness: 0.8, Effects: EventEffects{Reputation: 3}},
			{ID: "provide_alternatives", Label: "Provide alternatives", Description: "Open extra food stations", Cost: 1200, Effectiveness: 0.6, Effects: EventEffects{Reputation: 2}},
			{ID: "compensate_attendees", Label: "Compensate attendees", Description: "Vouchers for those affected", Cost: 800, Effectiveness: 0.45, Effects: EventEffects{Reputation: 2}},
		},
	},
	{
		Name:        "Transportation Issues",
		Probability: 0.10,
		Severity:    SeverityMedium,
		Description: "Problems with attendee transportation",
		Effects:     EventEffects{Reputation: -8, Attendance: -0.10, Budget: -3000},
		Solutions:   []string{"Arrange alternative transportation", "Extend shuttle services", "Provide parking alternatives"},
		Options: []EventOption{
			{ID: "arrange_alternatives", Label: "Arrange alternative transport", Description: "Charter extra buses", Cost: 4000, Effectiveness: 0.85, Effects: EventEffects{Reputation: 6}},
			{ID: "extend_shuttles", Label: "Extend shuttle services", Description: "Run shuttles later into the night", Cost: 2500, Effectiveness: 0.65, Effects: EventEffects{Reputation: 4}},
			{ID: "provide_parking", Label: "Provide parking alternatives", Description: "Open the overflow lot", Cost: 1000, Effectiveness: 0.4, Effects: EventEffects{Reputation: 2}},
		},
	},
	{
		Name:        "Positive Surprise",
		Probability: 0.10,
		Severity:    SeverityPositive,
		Description: "Unexpected positive event or celebrity appearance",
		Effects:     EventEffects{Reputation: 8, Attendance: 0.10, Budget: 2000},
		Solutions:   []string{"Capitalize on the moment", "Share on social media", "Extend the experience"},
		Options: []EventOption{
			{ID: "capitalize_moment", Label: "Capitalize on the moment", Description: "Spotlight the surprise on the main stage", Cost: 2000, Effectiveness: 0.9, Effects: EventEffects{Reputation: 5}},
			{ID: "social_media", Label: "Share on social media", Description: "Push clips to every channel", Cost: 500, Effectiveness: 0.7, Effects: EventEffects{Reputation: 3}},
			{ID: "extend_experience", Label: "Extend the experience", Description: "Add an encore set", Cost: 3000, Effectiveness: 0.8, Effects: EventEffects{Reputation: 4}},
		},
	},
	{
		Name:        "Sponsor Bonus",
		Probability: 0.06,
		Severity:    SeverityPositive,
		Description: "Additional sponsor funding or support",
		Effects:     EventEffects{Reputation: 5, Attendance: 0.05, Budget: 8000},
		Solutions:   []string{"Thank sponsors publicly", "Enhance sponsor visibility", "Plan future partnerships"},
		Options: []EventOption{
			{ID: "thank_sponsors", Label: "Thank sponsors publicly", Description: "Stage shout-out and banner placement", Cost: 500, Effectiveness: 0.8, Effects: EventEffects{Reputation: 3}},
			{ID: "enhance_visibility", Label: "Enhance sponsor visibility", Description: "Premium booth placement", Cost: 1500, Effectiveness: 0.85, Effects: EventEffects{Reputation: 2, Budget: 2000}},
			{ID: "plan_partnerships", Label: "Plan future partnerships", Description: "Lock in next year's deal", Cost: 1000, Effectiveness: 0.75, Effects: EventEffects{Reputation: 2}},
		},
	},
}
