package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soundfield/festsim/internal/catalog"
	"github.com/soundfield/festsim/internal/festival"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "festsim.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func sampleFestival() *festival.Festival {
	return &festival.Festival{
		ID:              1,
		Name:            "Soundfield",
		Location:        "Riverside Park",
		Budget:          84250.5,
		Reputation:      62,
		DaysRemaining:   41,
		VenueCapacity:   20000,
		MarketingBudget: 7500,
		Artists: []*festival.Artist{
			{
				ID: 10, FestivalID: 1, Name: "Neon Cascade", Genre: "Electronic",
				Popularity: 82, Fee: 46500, PerformanceDuration: 90,
				StageRequirements: "Main stage only, LED screens, Fog machines",
				PerformanceSlot:   catalog.SlotHeadliner,
				SpecialRequests:   []string{"Green room with catering", "Specific lighting setup"},
				FriendsWith:       []int64{11},
			},
			{
				ID: 11, FestivalID: 1, Name: "The Wild Roses", Genre: "Indie",
				Popularity: 55, Fee: 33000, PerformanceDuration: 60,
				StageRequirements: "Standard stage",
				FriendsWith:       []int64{10},
			},
		},
		Vendors: []*festival.Vendor{
			{
				ID: 20, FestivalID: 1, Name: "Vintage Wines", Specialty: "Wine Bar",
				Quality: 88, Cost: 4200, Revenue: 1920,
				MenuItems: []festival.MenuItem{
					{Name: "Wine", Category: "Beverages", Price: 8},
				},
				PlacementLocation:   "VIP Area",
				AdvancedSpecialties: []string{"organic", "local"},
				AllergySupport: festival.AllergySupport{
					Level:     catalog.AllergyComprehensive,
					Allergens: []string{"nuts", "dairy", "gluten"},
				},
				AlcoholLicense:       true,
				LocalSourcing:        true,
				SustainabilityRating: 74,
			},
		},
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	db := openTestDB(t)
	want := sampleFestival()

	require.NoError(t, db.SaveFestival(want))
	got, err := db.LoadFestival(1)
	require.NoError(t, err)

	assert.Equal(t, want.Name, got.Name)
	assert.Equal(t, want.Location, got.Location)
	assert.Equal(t, want.Budget, got.Budget)
	assert.Equal(t, want.Reputation, got.Reputation)
	assert.Equal(t, want.DaysRemaining, got.DaysRemaining)
	assert.Equal(t, want.MarketingBudget, got.MarketingBudget)

	require.Len(t, got.Artists, 2)
	assert.Equal(t, want.Artists[0].Name, got.Artists[0].Name)
	assert.Equal(t, want.Artists[0].PerformanceSlot, got.Artists[0].PerformanceSlot)
	assert.Equal(t, want.Artists[0].SpecialRequests, got.Artists[0].SpecialRequests)
	assert.Equal(t, want.Artists[0].FriendsWith, got.Artists[0].FriendsWith)
	assert.Equal(t, want.Artists[1].StageRequirements, got.Artists[1].StageRequirements)

	require.Len(t, got.Vendors, 1)
	v := got.Vendors[0]
	assert.Equal(t, want.Vendors[0].Specialty, v.Specialty)
	assert.Equal(t, want.Vendors[0].MenuItems, v.MenuItems)
	assert.Equal(t, want.Vendors[0].AdvancedSpecialties, v.AdvancedSpecialties)
	assert.Equal(t, want.Vendors[0].AllergySupport, v.AllergySupport)
	assert.True(t, v.AlcoholLicense)
	assert.True(t, v.LocalSourcing)
	assert.Equal(t, 74, v.SustainabilityRating)
}

func TestSaveFestivalReplaces(t *testing.T) {
	db := openTestDB(t)
	f := sampleFestival()
	require.NoError(t, db.SaveFestival(f))

	f.Budget = 50000
	f.Artists = f.Artists[:1]
	require.NoError(t, db.SaveFestival(f))

	got, err := db.LoadFestival(1)
	require.NoError(t, err)
	assert.Equal(t, 50000.0, got.Budget)
	assert.Len(t, got.Artists, 1)
}

func TestLoadFestivalNotFound(t *testing.T) {
	db := openTestDB(t)
	_, err := db.LoadFestival(99)
	assert.ErrorIs(t, err, festival.ErrNotFound)
}

func TestDayLog(t *testing.T) {
	db := openTestDB(t)

	for i := 0; i < 3; i++ {
		day := festival.DaySummary{
			DaysRemaining: 60 - i,
			Weather:       "Sunny",
			Budget:        100000 - float64(i)*1000,
			Reputation:    50,
			Events: []*festival.DynamicEvent{
				{ID: "ev", Type: "Technical Issues", Severity: catalog.SeverityMedium},
			},
		}
		require.NoError(t, db.AppendDayLog(1, day))
	}

	days, err := db.RecentDays(1, 2)
	require.NoError(t, err)
	require.Len(t, days, 2)

	// Most recent first.
	assert.Equal(t, 58, days[0].DaysRemaining)
	assert.Equal(t, 59, days[1].DaysRemaining)
	require.Len(t, days[0].Events, 1)
	assert.Equal(t, "Technical Issues", days[0].Events[0].Type)

	none, err := db.RecentDays(7, 10)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestMeta(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, db.SaveMeta("last_festival_id", "1"))
	require.NoError(t, db.SaveMeta("last_festival_id", "2"))

	v, err := db.GetMeta("last_festival_id")
	require.NoError(t, err)
	assert.Equal(t, "2", v)

	_, err = db.GetMeta("missing")
	assert.Error(t, err)
}

func TestSaveSnapshot(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, db.SaveSnapshot(sampleFestival()))

	v, err := db.GetMeta("last_festival_id")
	require.NoError(t, err)
	assert.Equal(t, "1", v)
}
