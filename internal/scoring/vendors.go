package scoring

import (
	"math"

	"github.com/soundfield/festsim/internal/catalog"
	"github.com/soundfield/festsim/internal/festival"
)

// Relationship classifications for a vendor pair.
const (
	RelationNeutral       = "neutral"
	RelationSynergistic   = "synergistic"
	RelationComplementary = "complementary"
	RelationCompetitive   = "competitive"
)

// VendorRelation is the classified relationship between two vendors and its
// projected revenue and satisfaction effects (fractions, e.g. 0.15 = +15%).
type VendorRelation struct {
	Type               string  `json:"type"`
	VendorA            string  `json:"vendor1"`
	VendorB            string  `json:"vendor2"`
	RevenueEffect      float64 `json:"revenue_effect"`
	SatisfactionEffect float64 `json:"satisfaction_effect"`
	Effect             string  `json:"effect"`
}

// AnalyzeRelationship classifies one unordered vendor pair. Explicit conflict
// records dominate, then explicit relationship records, then the specialty
// compatibility table, then placement rules. The result is symmetric in its
// arguments.
func AnalyzeRelationship(tables *catalog.Tables, a, b *festival.Vendor) VendorRelation {
	rel := VendorRelation{Type: RelationNeutral, VendorA: a.Name, VendorB: b.Name, Effect: "No special relationship"}

	if containsID(a.Conflicts, b.ID) || containsID(b.Conflicts, a.ID) {
		rel.Type = RelationCompetitive
		rel.RevenueEffect = -0.10
		rel.SatisfactionEffect = -0.05
		rel.Effect = "Known conflict, revenue -10% for both vendors"
		return rel
	}
	if containsID(a.Relationships, b.ID) || containsID(b.Relationships, a.ID) {
		rel.Type = RelationSynergistic
		rel.RevenueEffect = 0.20
		rel.SatisfactionEffect = 0.12
		rel.Effect = "Established partnership, revenue +20% for both vendors"
		return rel
	}

	specA, okA := tables.Specialty(a.Specialty)
	specB, okB := tables.Specialty(b.Specialty)
	if okA && okB {
		if containsString(specA.Complementary, b.Specialty) || containsString(specB.Complementary, a.Specialty) {
			rel.Type = RelationComplementary
			rel.RevenueEffect = 0.15
			rel.SatisfactionEffect = 0.08
			rel.Effect = "Revenue +15% for both vendors"
			return rel
		}
		if containsString(specA.Competitive, b.Specialty) || containsString(specB.Competitive, a.Specialty) {
			rel.Type = RelationCompetitive
			rel.RevenueEffect = -0.10
			rel.SatisfactionEffect = -0.05
			rel.Effect = "Revenue -10% for both vendors"
			return rel
		}
	}

	// Placement rules: same specialty or same zone splits the same crowd.
	if a.Specialty == b.Specialty || EffectivePlacement(a) == EffectivePlacement(b) {
		rel.Type = RelationCompetitive
		rel.RevenueEffect = -0.10
		rel.SatisfactionEffect = -0.05
		rel.Effect = "Competing for the same crowd, revenue -10% for both vendors"
		return rel
	}

	return rel
}

// VendorRelationships analyzes every unordered pair of a festival's vendors
// and returns the non-neutral ones.
func VendorRelationships(tables *catalog.Tables, vendors []*festival.Vendor) []VendorRelation {
	if len(vendors) < 2 {
		return nil
	}
	var out []VendorRelation
	for i, a := range vendors {
		for _, b := range vendors[i+1:] {
			if rel := AnalyzeRelationship(tables, a, b); rel.Type != RelationNeutral {
				out = append(out, rel)
			}
		}
	}
	return out
}

// EffectivePlacement returns the vendor's placement, falling back to the
// default food court zone when none is assigned.
func EffectivePlacement(v *festival.Vendor) string {
	if v.PlacementLocation == "" {
		return catalog.FallbackPlacement
	}
	return v.PlacementLocation
}

// Local sourcing is a flat quality credit.
const localSourcingBonus = 2

// VendorQualityScore computes the overall quality score for a vendor:
// base quality plus advanced-specialty, allergy-support, local-sourcing,
// sustainability, and placement-suitability bonuses, capped at 100.
func VendorQualityScore(tables *catalog.Tables, v *festival.Vendor) float64 {
	score := float64(v.Quality)

	for _, tag := range v.AdvancedSpecialties {
		score += tables.AdvancedSpecialties[tag]
	}
	score += tables.AllergyTiers[v.AllergySupport.Level]
	if v.LocalSourcing {
		score += localSourcingBonus
	}
	score += float64(v.SustainabilityRating) * 0.05

	if pl, ok := tables.Placement(EffectivePlacement(v)); ok {
		if containsString(pl.SuitableVendors, v.Specialty) {
			score += pl.SuitabilityBonus
		}
	}

	return math.Min(score, 100)
}

// VendorSatisfaction estimates how satisfied a vendor is with the festival:
// base 50, plus quality, revenue performance against baseline, and an
// attendance bonus. Capped at 100.
func VendorSatisfaction(v *festival.Vendor, attendance int) float64 {
	satisfaction := 50.0
	satisfaction += float64(v.Quality) * 0.3

	// Revenue performance vs the vendor's own baseline, capped at 1.5x.
	// With no sales ledger the projection equals the baseline.
	performance := 1.0
	satisfaction += math.Min(performance, 1.5) * 20

	satisfaction += math.Min(float64(attendance)/10000, 1.0) * 10

	return math.Min(satisfaction, 100)
}
