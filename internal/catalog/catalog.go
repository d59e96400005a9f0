// Package catalog holds the static configuration tables the simulation runs
// on: event types, weather distribution, genre synergies, vendor specialties,
// placement locations, and marketing campaigns. Pure data, immutable after
// process start; components receive it by reference rather than reaching for
// package globals at call sites.
package catalog

// Severity is the qualitative impact tier of a dynamic event.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityPositive Severity = "positive"
)

// CrisisTier is a generic paid response level for events without a matching
// type-specific option.
type CrisisTier string

const (
	TierMinimal   CrisisTier = "minimal"
	TierImmediate CrisisTier = "immediate"
	TierThorough  CrisisTier = "thorough"
)

// CrisisResponse defines the cost and mitigation strength of a crisis tier.
type CrisisResponse struct {
	Cost          float64
	Effectiveness float64
	Description   string
}

// CrisisResponses maps each tier to its cost and effectiveness.
var CrisisResponses = map[CrisisTier]CrisisResponse{
	TierMinimal: {
		Cost:          1000,
		Effectiveness: 0.4,
		Description:   "Basic response to address immediate concerns",
	},
	TierImmediate: {
		Cost:          5000,
		Effectiveness: 0.8,
		Description:   "Immediate response to minimize damage",
	},
	TierThorough: {
		Cost:          10000,
		Effectiveness: 0.95,
		Description:   "Comprehensive response with full investigation",
	},
}

// Tables bundles every catalog table behind one reference so components can
// be handed configuration explicitly instead of importing globals.
type Tables struct {
	EventTypes          []EventType
	WeatherConditions   []WeatherCondition
	CrisisResponses     map[CrisisTier]CrisisResponse
	Genres              []string
	GenreSynergies      []GenreSynergy
	PerformanceSlots    map[string]PerformanceSlot
	VendorSpecialties   []VendorSpecialty
	PlacementLocations  []PlacementLocation
	AdvancedSpecialties map[string]float64
	AllergyTiers        map[string]float64
	CampaignTypes       []CampaignType
	TargetAudiences     []TargetAudience
	EmergencyProtocols  []EmergencyProtocol
}

// Default returns the built-in catalog.
func Default() *Tables {
	return &Tables{
		EventTypes:          EventTypes,
		WeatherConditions:   WeatherConditions,
		CrisisResponses:     CrisisResponses,
		Genres:              Genres,
		GenreSynergies:      GenreSynergies,
		PerformanceSlots:    PerformanceSlots,
		VendorSpecialties:   VendorSpecialties,
		PlacementLocations:  PlacementLocations,
		AdvancedSpecialties: AdvancedSpecialties,
		AllergyTiers:        AllergyTiers,
		CampaignTypes:       CampaignTypes,
		TargetAudiences:     TargetAudiences,
		EmergencyProtocols:  EmergencyProtocols,
	}
}

// EventType looks up an event type definition by name.
func (t *Tables) EventType(name string) (EventType, bool) {
	for _, et := range t.EventTypes {
		if et.Name == name {
			return et, true
		}
	}
	return EventType{}, false
}

// Specialty looks up a vendor specialty by name.
func (t *Tables) Specialty(name string) (VendorSpecialty, bool) {
	for _, sp := range t.VendorSpecialties {
		if sp.Name == name {
			return sp, true
		}
	}
	return VendorSpecialty{}, false
}

// Placement looks up a placement location by name.
func (t *Tables) Placement(name string) (PlacementLocation, bool) {
	for _, pl := range t.PlacementLocations {
		if pl.Name == name {
			return pl, true
		}
	}
	return PlacementLocation{}, false
}

// Campaign looks up a campaign type by name.
func (t *Tables) Campaign(name string) (CampaignType, bool) {
	for _, ct := range t.CampaignTypes {
		if ct.Name == name {
			return ct, true
		}
	}
	return CampaignType{}, false
}

// Audience looks up a target audience by name.
func (t *Tables) Audience(name string) (TargetAudience, bool) {
	for _, ta := range t.TargetAudiences {
		if ta.Name == name {
			return ta, true
		}
	}
	return TargetAudience{}, false
}
