package economy

import (
	"math/rand"

	"github.com/soundfield/festsim/internal/festival"
)

// Per-attendee and fixed cost rates in dollars.
const (
	staffingPerHead       = 2.0
	securityPerHead       = 1.5
	infrastructureFixed   = 10000.0
	infrastructurePerHead = 0.5
	insuranceCost         = 5000.0
	permitCost            = 3000.0
)

// TotalCosts aggregates every projected cost for the festival. Attendance-
// scaled items use the given expected attendance.
func TotalCosts(f *festival.Festival, attendance int) festival.CostBreakdown {
	var artistFees float64
	for _, a := range f.Artists {
		artistFees += a.Fee
	}
	var vendorCosts float64
	for _, v := range f.Vendors {
		vendorCosts += v.Cost
	}

	heads := float64(attendance)
	cb := festival.CostBreakdown{
		ArtistFees:     artistFees,
		VendorCosts:    vendorCosts,
		Staffing:       heads * staffingPerHead,
		Security:       heads * securityPerHead,
		Infrastructure: infrastructureFixed + heads*infrastructurePerHead,
		Marketing:      f.MarketingBudget,
		Insurance:      insuranceCost,
		Permits:        permitCost,
	}
	cb.Total = cb.ArtistFees + cb.VendorCosts + cb.Staffing + cb.Security +
		cb.Infrastructure + cb.Marketing + cb.Insurance + cb.Permits
	return cb
}

// ProfitMargin returns the margin percentage. Zero revenue yields 0; costs
// of zero with nonzero revenue yield 100 (pure profit).
func ProfitMargin(revenue, costs float64) float64 {
	if costs == 0 {
		return 100
	}
	if revenue == 0 {
		return 0
	}
	return (revenue - costs) / revenue * 100
}

// Summary runs the full projection: attendance, pricing, revenue streams,
// costs, and margin.
func Summary(f *festival.Festival, rng *rand.Rand) festival.FinancialSummary {
	attendance := ExpectedAttendance(f)
	price := TicketPrice(f, rng)

	tickets := TicketRevenue(f, price, attendance)
	vendors := VendorRevenue(f.Vendors, attendance)
	totalRevenue := tickets.Total + vendors.Commission

	costs := TotalCosts(f, attendance)

	return festival.FinancialSummary{
		ExpectedAttendance: attendance,
		TicketPrice:        price,
		Tickets:            tickets,
		Vendors:            vendors,
		TotalRevenue:       totalRevenue,
		Costs:              costs,
		ProfitMargin:       ProfitMargin(totalRevenue, costs.Total),
		NetProfit:          totalRevenue - costs.Total,
	}
}
