package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soundfield/festsim/internal/catalog"
	"github.com/soundfield/festsim/internal/festival"
)

func TestAnalyzeRelationshipComplementary(t *testing.T) {
	tables := catalog.Default()
	truck := &festival.Vendor{ID: 1, Name: "Fresh Eats", Specialty: "Food Truck", PlacementLocation: "Main Stage"}
	stand := &festival.Vendor{ID: 2, Name: "Tasty Refreshments", Specialty: "Beverage Stand", PlacementLocation: "Entrance Plaza"}

	rel := AnalyzeRelationship(tables, truck, stand)
	assert.Equal(t, RelationComplementary, rel.Type)
	assert.Equal(t, 0.15, rel.RevenueEffect)
}

func TestAnalyzeRelationshipCompetitiveSpecialties(t *testing.T) {
	tables := catalog.Default()
	truck := &festival.Vendor{ID: 1, Specialty: "Food Truck", PlacementLocation: "Main Stage"}
	tent := &festival.Vendor{ID: 2, Specialty: "Restaurant Tent", PlacementLocation: "Food Court Area"}

	rel := AnalyzeRelationship(tables, truck, tent)
	assert.Equal(t, RelationCompetitive, rel.Type)
	assert.Equal(t, -0.10, rel.RevenueEffect)
}

func TestAnalyzeRelationshipExplicitRecordsDominate(t *testing.T) {
	tables := catalog.Default()

	// An established partnership overrides the competitive specialty table.
	truck := &festival.Vendor{ID: 1, Specialty: "Food Truck", Relationships: []int64{2}}
	tent := &festival.Vendor{ID: 2, Specialty: "Restaurant Tent"}
	assert.Equal(t, RelationSynergistic, AnalyzeRelationship(tables, truck, tent).Type)

	// A recorded conflict overrides everything, including the partnership.
	tent.Conflicts = []int64{1}
	assert.Equal(t, RelationCompetitive, AnalyzeRelationship(tables, truck, tent).Type)
}

func TestAnalyzeRelationshipSharedZoneCompetes(t *testing.T) {
	tables := catalog.Default()

	// Wine Bar and Vegan Station are unrelated in the specialty table but
	// split the same crowd when placed together.
	wine := &festival.Vendor{ID: 1, Specialty: "Wine Bar", PlacementLocation: "VIP Area"}
	vegan := &festival.Vendor{ID: 2, Specialty: "Vegan Station", PlacementLocation: "VIP Area"}
	assert.Equal(t, RelationCompetitive, AnalyzeRelationship(tables, wine, vegan).Type)

	vegan.PlacementLocation = "Chill Zone"
	assert.Equal(t, RelationNeutral, AnalyzeRelationship(tables, wine, vegan).Type)
}

func TestAnalyzeRelationshipSymmetric(t *testing.T) {
	tables := catalog.Default()
	a := &festival.Vendor{ID: 1, Specialty: "Dessert Cart", PlacementLocation: "Entrance Plaza"}
	b := &festival.Vendor{ID: 2, Specialty: "Coffee Shop", PlacementLocation: "Chill Zone"}

	assert.Equal(t, AnalyzeRelationship(tables, a, b).Type, AnalyzeRelationship(tables, b, a).Type)
}

func TestVendorRelationshipsFiltersNeutral(t *testing.T) {
	tables := catalog.Default()
	vendors := []*festival.Vendor{
		{ID: 1, Specialty: "Wine Bar", PlacementLocation: "VIP Area"},
		{ID: 2, Specialty: "Vegan Station", PlacementLocation: "Chill Zone"},
		{ID: 3, Specialty: "Cheese Platter", PlacementLocation: "VIP Area"},
	}

	rels := VendorRelationships(tables, vendors)
	// Wine Bar + Cheese Platter are complementary; the Vegan Station pairs
	// with nothing here. Vendor 2 vs 3 compete on nothing and share no zone.
	require.Len(t, rels, 1)
	assert.Equal(t, RelationComplementary, rels[0].Type)

	assert.Nil(t, VendorRelationships(tables, vendors[:1]))
}

func TestEffectivePlacementFallback(t *testing.T) {
	assert.Equal(t, catalog.FallbackPlacement, EffectivePlacement(&festival.Vendor{}))
	assert.Equal(t, "VIP Area", EffectivePlacement(&festival.Vendor{PlacementLocation: "VIP Area"}))
}

func TestVendorQualityScore(t *testing.T) {
	tables := catalog.Default()

	v := &festival.Vendor{
		Specialty:            "Wine Bar",
		Quality:              70,
		PlacementLocation:    "VIP Area",
		AdvancedSpecialties:  []string{"organic"},
		AllergySupport:       festival.AllergySupport{Level: catalog.AllergyComprehensive},
		LocalSourcing:        true,
		SustainabilityRating: 60,
	}

	// 70 + organic 3 + allergy 3 + local 2 + sustainability 3 + placement 6.
	assert.InDelta(t, 87.0, VendorQualityScore(tables, v), 1e-9)
}

func TestVendorQualityScoreCapsAtHundred(t *testing.T) {
	tables := catalog.Default()

	v := &festival.Vendor{
		Specialty:            "Wine Bar",
		Quality:              95,
		PlacementLocation:    "VIP Area",
		AdvancedSpecialties:  []string{"vegan", "organic", "fusion"},
		AllergySupport:       festival.AllergySupport{Level: catalog.AllergyDedicated},
		LocalSourcing:        true,
		SustainabilityRating: 100,
	}
	assert.Equal(t, 100.0, VendorQualityScore(tables, v))
}

func TestVendorSatisfaction(t *testing.T) {
	v := &festival.Vendor{Quality: 70}

	// 50 base + 21 quality + 20 performance + 5 attendance.
	assert.InDelta(t, 96.0, VendorSatisfaction(v, 5000), 1e-9)

	// Attendance bonus caps at 10; total caps at 100.
	assert.Equal(t, 100.0, VendorSatisfaction(&festival.Vendor{Quality: 100}, 50000))
}
