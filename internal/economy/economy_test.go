package economy

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/soundfield/festsim/internal/festival"
)

func baseFestival() *festival.Festival {
	return &festival.Festival{
		Name:          "Testfield",
		Budget:        100000,
		VenueCapacity: 20000,
		Reputation:    50,
		DaysRemaining: 60,
	}
}

func TestExpectedAttendanceBaseline(t *testing.T) {
	// No lineup, average reputation: base 5000 discounted by competition.
	assert.Equal(t, 4500, ExpectedAttendance(baseFestival()))
}

func TestExpectedAttendanceClamped(t *testing.T) {
	f := baseFestival()
	f.MarketingBudget = 1_000_000
	assert.Equal(t, MaxAttendance, ExpectedAttendance(f))

	f = baseFestival()
	f.Reputation = 0
	f.Artists = []*festival.Artist{{ID: 1, Popularity: 30}}
	got := ExpectedAttendance(f)
	assert.GreaterOrEqual(t, got, MinAttendance)
	assert.Less(t, got, 4500)
}

func TestTicketPriceWithinBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	low := baseFestival()
	low.Reputation = 0
	low.Artists = []*festival.Artist{{ID: 1, Popularity: 0}}
	low.Vendors = []*festival.Vendor{{ID: 1, Quality: 0}}

	high := baseFestival()
	high.Reputation = 100
	high.Artists = []*festival.Artist{{ID: 1, Popularity: 100}}
	high.Vendors = []*festival.Vendor{{ID: 1, Quality: 100}}

	for i := 0; i < 200; i++ {
		for _, f := range []*festival.Festival{low, high} {
			price := TicketPrice(f, rng)
			assert.GreaterOrEqual(t, price, float64(MinTicketPrice))
			assert.LessOrEqual(t, price, float64(MaxTicketPrice))
		}
	}
}

func TestTicketRevenueSplit(t *testing.T) {
	f := baseFestival()
	rev := TicketRevenue(f, 100, 10000)

	assert.Equal(t, 7000, rev.GeneralAttendees)
	assert.Equal(t, 2500, rev.VIPAttendees)
	assert.Equal(t, 500, rev.PremiumAttendees)
	assert.Equal(t, 10000, rev.TotalAttendees)

	assert.InDelta(t, 700000, rev.GeneralRevenue, 1e-9)
	assert.InDelta(t, 500000, rev.VIPRevenue, 1e-9)
	assert.InDelta(t, 200000, rev.PremiumRevenue, 1e-9)
	assert.InDelta(t, 1400000, rev.Total, 1e-9)
}

func TestTicketRevenueCappedAtCapacity(t *testing.T) {
	f := baseFestival()
	f.VenueCapacity = 8000

	rev := TicketRevenue(f, 100, 10000)
	assert.Equal(t, 8000, rev.TotalAttendees)
	assert.Equal(t, 8000, rev.GeneralAttendees+rev.VIPAttendees+rev.PremiumAttendees)
}

func TestVendorRevenue(t *testing.T) {
	vendors := []*festival.Vendor{{ID: 1, Revenue: 2000, Quality: 50}}

	rev := VendorRevenue(vendors, 5000)
	assert.InDelta(t, 10000, rev.TotalVendorRevenue, 1e-9)
	assert.InDelta(t, 1500, rev.Commission, 1e-9)

	// Crowd factor caps at 2x past 10k attendance.
	rev = VendorRevenue(vendors, 20000)
	assert.InDelta(t, 80000, rev.TotalVendorRevenue, 1e-9)
}

func TestTotalCosts(t *testing.T) {
	f := baseFestival()
	cb := TotalCosts(f, 1000)

	assert.InDelta(t, 2000, cb.Staffing, 1e-9)
	assert.InDelta(t, 1500, cb.Security, 1e-9)
	assert.InDelta(t, 10500, cb.Infrastructure, 1e-9)
	assert.InDelta(t, 5000, cb.Insurance, 1e-9)
	assert.InDelta(t, 3000, cb.Permits, 1e-9)
	assert.InDelta(t, 22000, cb.Total, 1e-9)

	f.Artists = []*festival.Artist{{ID: 1, Fee: 40000}}
	f.Vendors = []*festival.Vendor{{ID: 1, Cost: 2500}}
	f.MarketingBudget = 5000
	cb = TotalCosts(f, 1000)
	assert.InDelta(t, 69500, cb.Total, 1e-9)
}

func TestProfitMargin(t *testing.T) {
	assert.Equal(t, 100.0, ProfitMargin(100, 0))
	assert.Equal(t, 100.0, ProfitMargin(0, 0))
	assert.Equal(t, 0.0, ProfitMargin(0, 100))
	assert.InDelta(t, 50.0, ProfitMargin(200, 100), 1e-9)
}

func TestSummaryConsistency(t *testing.T) {
	f := baseFestival()
	f.Artists = []*festival.Artist{{ID: 1, Popularity: 80, Fee: 45000}}
	f.Vendors = []*festival.Vendor{{ID: 1, Quality: 75, Cost: 3000, Revenue: 2400}}

	sum := Summary(f, rand.New(rand.NewSource(9)))

	assert.Equal(t, ExpectedAttendance(f), sum.ExpectedAttendance)
	assert.InDelta(t, sum.Tickets.Total+sum.Vendors.Commission, sum.TotalRevenue, 1e-9)
	assert.InDelta(t, sum.TotalRevenue-sum.Costs.Total, sum.NetProfit, 1e-9)
	assert.InDelta(t, ProfitMargin(sum.TotalRevenue, sum.Costs.Total), sum.ProfitMargin, 1e-9)
}
