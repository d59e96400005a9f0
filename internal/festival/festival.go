// Package festival provides the festival aggregate and its owned entities.
// The engine receives these as working values it is permitted to mutate in
// place; durable storage belongs to the caller.
package festival

import "math"

// Festival is the mutable aggregate a simulation operates on.
type Festival struct {
	ID       int64  `json:"id" db:"id"`
	Name     string `json:"name" db:"name"`
	Location string `json:"location" db:"location"`

	Budget          float64 `json:"budget" db:"budget"`
	Reputation      int     `json:"reputation" db:"reputation"`             // Always in [0,100]
	DaysRemaining   int     `json:"days_remaining" db:"days_remaining"`     // 0 is terminal
	VenueCapacity   int     `json:"venue_capacity" db:"venue_capacity"`     // Immutable after creation
	MarketingBudget float64 `json:"marketing_budget" db:"marketing_budget"` // Cumulative spend, never decreases

	Artists []*Artist `json:"artists" db:"-"`
	Vendors []*Vendor `json:"vendors" db:"-"`
}

// Ended reports whether the festival has reached its terminal state.
func (f *Festival) Ended() bool {
	return f.DaysRemaining <= 0
}

// ApplyReputation adds a (possibly fractional) reputation delta and re-clamps
// to [0,100]. Fractions round to nearest.
func (f *Festival) ApplyReputation(delta float64) {
	f.Reputation = ClampReputation(f.Reputation + int(math.Round(delta)))
}

// ClampReputation constrains a reputation value to [0,100].
func ClampReputation(rep int) int {
	if rep < 0 {
		return 0
	}
	if rep > 100 {
		return 100
	}
	return rep
}

// AvgArtistPopularity returns the mean popularity of hired artists,
// or 50 when none are hired.
func (f *Festival) AvgArtistPopularity() float64 {
	if len(f.Artists) == 0 {
		return 50
	}
	total := 0
	for _, a := range f.Artists {
		total += a.Popularity
	}
	return float64(total) / float64(len(f.Artists))
}

// AvgVendorQuality returns the mean quality of hired vendors,
// or 50 when none are hired.
func (f *Festival) AvgVendorQuality() float64 {
	if len(f.Vendors) == 0 {
		return 50
	}
	total := 0
	for _, v := range f.Vendors {
		total += v.Quality
	}
	return float64(total) / float64(len(f.Vendors))
}

// ArtistByID finds a hired artist.
func (f *Festival) ArtistByID(id int64) *Artist {
	for _, a := range f.Artists {
		if a.ID == id {
			return a
		}
	}
	return nil
}

// VendorByID finds a hired vendor.
func (f *Festival) VendorByID(id int64) *Vendor {
	for _, v := range f.Vendors {
		if v.ID == id {
			return v
		}
	}
	return nil
}

// Artist is a performer hired by a festival. Created on hire, never mutated
// afterwards except for slot assignment.
type Artist struct {
	ID                  int64    `json:"id" db:"id"`
	FestivalID          int64    `json:"festival_id" db:"festival_id"`
	Name                string   `json:"name" db:"name"`
	Genre               string   `json:"genre" db:"genre"`
	Popularity          int      `json:"popularity" db:"popularity"` // 1-100
	Fee                 float64  `json:"fee" db:"fee"`
	PerformanceDuration int      `json:"performance_duration" db:"performance_duration"` // Minutes
	StageRequirements   string   `json:"stage_requirements" db:"stage_requirements"`
	SpecialRequests     []string `json:"special_requests" db:"-"`
	PerformanceSlot     string   `json:"performance_slot" db:"performance_slot"` // Empty until assigned

	// Symmetric relationship sets, kept consistent by the caller.
	FriendsWith   []int64 `json:"friends_with" db:"-"`
	ConflictsWith []int64 `json:"conflicts_with" db:"-"`
}

// AllergySupport describes a vendor's dietary accommodation level.
type AllergySupport struct {
	Level     string   `json:"level"` // basic, comprehensive, dedicated
	Allergens []string `json:"allergens"`
}

// MenuItem is one offering on a vendor's menu.
type MenuItem struct {
	Name      string   `json:"name"`
	Category  string   `json:"category"`
	Price     float64  `json:"price"`
	Allergens []string `json:"allergens"`
}

// Vendor is a food or beverage operator hired by a festival.
type Vendor struct {
	ID         int64   `json:"id" db:"id"`
	FestivalID int64   `json:"festival_id" db:"festival_id"`
	Name       string  `json:"name" db:"name"`
	Specialty  string  `json:"specialty" db:"specialty"`
	Quality    int     `json:"quality" db:"quality"` // 1-100
	Cost       float64 `json:"cost" db:"cost"`
	Revenue    float64 `json:"revenue" db:"revenue"` // Baseline per-1000-attendee revenue, not a ledger

	MenuItems            []MenuItem     `json:"menu_items" db:"-"`
	PlacementLocation    string         `json:"placement_location" db:"placement_location"` // Empty falls back to the food court area
	AdvancedSpecialties  []string       `json:"vendor_specialties" db:"-"`
	AllergySupport       AllergySupport `json:"food_allergy_support" db:"-"`
	AlcoholLicense       bool           `json:"alcohol_license" db:"alcohol_license"`
	LocalSourcing        bool           `json:"local_sourcing" db:"local_sourcing"`
	SustainabilityRating int            `json:"sustainability_rating" db:"sustainability_rating"` // 1-100

	// Explicit pairwise relations, symmetric by construction.
	Relationships []int64 `json:"vendor_relationships" db:"-"`
	Conflicts     []int64 `json:"vendor_conflicts" db:"-"`
}
