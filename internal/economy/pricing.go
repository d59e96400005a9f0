// Package economy implements the festival's financial projection model:
// ticket pricing, attendance, revenue streams, cost aggregation, and profit
// margin.
package economy

import (
	"math/rand"

	"github.com/soundfield/festsim/internal/festival"
)

// Ticket price bounds in dollars.
const (
	MinTicketPrice = 25
	MaxTicketPrice = 500
)

// Attendance projection bounds.
const (
	MinAttendance = 1000
	MaxAttendance = 50000
)

const baseTicketPrice = 75

// TicketPrice computes the projected general-admission price from artist
// popularity, vendor quality, reputation, and a random demand factor.
// Always within [MinTicketPrice, MaxTicketPrice].
func TicketPrice(f *festival.Festival, rng *rand.Rand) float64 {
	popularityAdj := (f.AvgArtistPopularity() - 50) * 0.5
	qualityAdj := (f.AvgVendorQuality() - 50) * 0.3
	reputationAdj := (float64(f.Reputation) - 50) * 0.4

	demandFactor := 0.8 + rng.Float64()*0.4

	price := baseTicketPrice * (1 + popularityAdj/100 + qualityAdj/100 + reputationAdj/100) * demandFactor

	if price < MinTicketPrice {
		return MinTicketPrice
	}
	if price > MaxTicketPrice {
		return MaxTicketPrice
	}
	return float64(int(price))
}

const baseAttendance = 5000

// Competition discount for overlapping festivals in the region.
const competitionFactor = 0.9

// ExpectedAttendance projects turnout from artist popularity, marketing
// spend, and reputation. Always within [MinAttendance, MaxAttendance].
func ExpectedAttendance(f *festival.Festival) int {
	artistFactor := 1 + (f.AvgArtistPopularity()-50)/100
	marketingFactor := 1 + (f.MarketingBudget/10000)*0.5
	reputationFactor := 1 + (float64(f.Reputation)-50)/100

	attendance := baseAttendance * artistFactor * marketingFactor * reputationFactor * competitionFactor

	n := int(attendance)
	if n < MinAttendance {
		return MinAttendance
	}
	if n > MaxAttendance {
		return MaxAttendance
	}
	return n
}
