package roster

import (
	"github.com/soundfield/festsim/internal/catalog"
	"github.com/soundfield/festsim/internal/festival"
)

// foodCategory describes a cuisine used for menu generation.
type foodCategory struct {
	priceMin  int
	priceMax  int
	allergens []string
}

var foodCategories = map[string]foodCategory{
	"American":      {8, 18, []string{"dairy", "gluten"}},
	"Mexican":       {6, 15, []string{"dairy", "gluten"}},
	"Italian":       {10, 20, []string{"dairy", "gluten"}},
	"Asian":         {8, 16, []string{"soy", "nuts"}},
	"Mediterranean": {9, 17, []string{"nuts"}},
}

var mainFoodCategories = []string{
	"American", "Mexican", "Italian", "Asian", "Mediterranean",
}

var beveragePrices = map[string]float64{
	"Soft Drinks": 3, "Water": 2, "Coffee": 4, "Tea": 3, "Beer": 6,
	"Wine": 8, "Cocktails": 10, "Smoothies": 5, "Juice": 4,
}

// Quality level multipliers applied to baseline revenue.
var qualityMultipliers = map[string]float64{
	"Poor": 0.7, "Fair": 0.85, "Good": 1.0, "Excellent": 1.2, "Premium": 1.4,
}

// QualityLevel buckets a 1-100 quality score into a named tier.
func QualityLevel(quality int) string {
	switch {
	case quality < 60:
		return "Poor"
	case quality < 70:
		return "Fair"
	case quality < 80:
		return "Good"
	case quality < 90:
		return "Excellent"
	default:
		return "Premium"
	}
}

// GenerateVendor creates a single vendor candidate. Quality is drawn from
// the specialty's range; the advanced fields (placement, specialty tags,
// allergy support, sustainability) are rolled here so candidates arrive
// fully formed.
func (g *Generator) GenerateVendor(day int) *festival.Vendor {
	id := g.nextID
	g.nextID++

	spec := g.tables.VendorSpecialties[g.rng.Intn(len(g.tables.VendorSpecialties))]
	quality := spec.QualityMin + g.rng.Intn(spec.QualityMax-spec.QualityMin+1)

	cost := spec.BaseCost + float64(g.rng.Intn(1501)-500)
	revenue := 1000 * spec.RevenueMultiplier * qualityMultipliers[QualityLevel(quality)]

	alcohol := spec.Name == "Cocktail Bar" || spec.Name == "Wine Bar" ||
		(spec.Name == "Beverage Stand" && g.rng.Float64() < 0.3)

	return &festival.Vendor{
		ID:                   id,
		Name:                 g.vendorName(spec.Name),
		Specialty:            spec.Name,
		Quality:              quality,
		Cost:                 cost,
		Revenue:              revenue,
		MenuItems:            g.generateMenu(spec.Name),
		PlacementLocation:    g.suggestPlacement(spec.Name),
		AdvancedSpecialties:  g.rollAdvancedSpecialties(spec.Name),
		AllergySupport:       g.rollAllergySupport(spec.Name),
		AlcoholLicense:       alcohol,
		LocalSourcing:        g.rng.Float64() < 0.35,
		SustainabilityRating: 40 + g.rng.Intn(56),
	}
}

// generateMenu builds a menu matched to the specialty.
func (g *Generator) generateMenu(specialty string) []festival.MenuItem {
	var items []festival.MenuItem

	switch specialty {
	case "Food Truck", "Restaurant Tent", "Food Court":
		n := 3 + g.rng.Intn(4)
		for i := 0; i < n; i++ {
			name := mainFoodCategories[g.rng.Intn(len(mainFoodCategories))]
			cat := foodCategories[name]
			items = append(items, festival.MenuItem{
				Name:      name + " Special",
				Category:  name,
				Price:     float64(cat.priceMin + g.rng.Intn(cat.priceMax-cat.priceMin+1)),
				Allergens: cat.allergens,
			})
		}
	case "Beverage Stand", "Cocktail Bar", "Wine Bar", "Coffee Shop":
		var beverages []string
		switch specialty {
		case "Wine Bar":
			beverages = []string{"Wine"}
		case "Cocktail Bar":
			beverages = []string{"Cocktails", "Beer"}
		case "Coffee Shop":
			beverages = []string{"Coffee", "Tea"}
		default:
			beverages = []string{"Soft Drinks", "Water", "Juice", "Smoothies"}
		}
		for _, b := range beverages {
			items = append(items, festival.MenuItem{
				Name:     b,
				Category: "Beverages",
				Price:    beveragePrices[b],
			})
		}
	case "Dessert Cart", "Cheese Platter":
		items = append(items, festival.MenuItem{
			Name:      "Specialty Dessert",
			Category:  "Desserts",
			Price:     float64(4 + g.rng.Intn(9)),
			Allergens: []string{"dairy", "gluten"},
		})
	case "Vegan Station":
		items = append(items, festival.MenuItem{
			Name:      "Vegan Special",
			Category:  "Vegan",
			Price:     float64(7 + g.rng.Intn(8)),
			Allergens: []string{"nuts"},
		})
	}
	return items
}

// suggestPlacement picks a zone that lists the specialty as suitable,
// falling back to the food court area.
func (g *Generator) suggestPlacement(specialty string) string {
	var suitable []string
	for _, loc := range g.tables.PlacementLocations {
		for _, v := range loc.SuitableVendors {
			if v == specialty {
				suitable = append(suitable, loc.Name)
				break
			}
		}
	}
	if len(suitable) == 0 {
		return catalog.FallbackPlacement
	}
	return suitable[g.rng.Intn(len(suitable))]
}

func (g *Generator) rollAdvancedSpecialties(specialty string) []string {
	var tags []string
	if specialty == "Vegan Station" {
		tags = append(tags, "vegan")
	}
	for _, tag := range []string{"gluten_free", "organic", "local", "fusion", "zero_waste"} {
		if g.rng.Float64() < 0.15 {
			tags = append(tags, tag)
		}
	}
	return tags
}

func (g *Generator) rollAllergySupport(specialty string) festival.AllergySupport {
	level := catalog.AllergyBasic
	r := g.rng.Float64()
	switch {
	case r < 0.15:
		level = catalog.AllergyDedicated
	case r < 0.45:
		level = catalog.AllergyComprehensive
	}

	allergens := []string{"nuts", "dairy", "gluten"}
	if specialty == "Vegan Station" {
		allergens = []string{"nuts", "soy"}
	}
	if level == catalog.AllergyBasic {
		allergens = nil
	}
	return festival.AllergySupport{Level: level, Allergens: allergens}
}
