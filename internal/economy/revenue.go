package economy

import (
	"math"

	"github.com/soundfield/festsim/internal/festival"
)

// Attendance split across ticket tiers.
const (
	generalShare = 0.70
	vipShare     = 0.25
	// Premium takes the integer remainder of the other two tiers.
)

// Tier price multipliers relative to general admission.
const (
	vipMultiplier     = 2
	premiumMultiplier = 4
)

// Commission taken on vendor sales.
const vendorCommissionRate = 0.15

// TicketRevenue splits attendance across the fixed ticket tiers and totals
// the income. Attendance is capped at venue capacity first.
func TicketRevenue(f *festival.Festival, price float64, attendance int) festival.TicketRevenue {
	actual := attendance
	if actual > f.VenueCapacity {
		actual = f.VenueCapacity
	}

	ga := int(float64(actual) * generalShare)
	vip := int(float64(actual) * vipShare)
	premium := actual - ga - vip

	rev := festival.TicketRevenue{
		GeneralAttendees: ga,
		VIPAttendees:     vip,
		PremiumAttendees: premium,
		TotalAttendees:   actual,
		GeneralRevenue:   float64(ga) * price,
		VIPRevenue:       float64(vip) * price * vipMultiplier,
		PremiumRevenue:   float64(premium) * price * premiumMultiplier,
	}
	rev.Total = rev.GeneralRevenue + rev.VIPRevenue + rev.PremiumRevenue
	return rev
}

// VendorRevenue projects total vendor sales for the day and the festival's
// commission. Per vendor: baseline revenue per thousand attendees, scaled by
// quality and a crowd factor capped at 2x.
func VendorRevenue(vendors []*festival.Vendor, attendance int) festival.VendorRevenue {
	var total float64
	for _, v := range vendors {
		perAttendee := v.Revenue / 1000
		qualityMult := float64(v.Quality) / 50
		crowdFactor := math.Min(float64(attendance)/5000, 2.0)
		total += perAttendee * float64(attendance) * qualityMult * crowdFactor
	}

	return festival.VendorRevenue{
		TotalVendorRevenue: total,
		Commission:         total * vendorCommissionRate,
	}
}
