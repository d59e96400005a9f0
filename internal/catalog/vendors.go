package catalog

// VendorSpecialty defines a hireable vendor category.
type VendorSpecialty struct {
	Name              string
	BaseCost          float64
	RevenueMultiplier float64
	QualityMin        int
	QualityMax        int
	Description       string
	Complementary     []string
	Competitive       []string
}

// VendorSpecialties is the full specialty table. Order is fixed for
// deterministic candidate generation.
var VendorSpecialties = []VendorSpecialty{
	{
		Name: "Food Truck", BaseCost: 2000, RevenueMultiplier: 1.2,
		QualityMin: 60, QualityMax: 85,
		Description:   "Mobile food service with diverse menu options",
		Complementary: []string{"Beverage Stand", "Dessert Cart"},
		Competitive:   []string{"Restaurant Tent", "Food Court"},
	},
	{
		Name: "Restaurant Tent", BaseCost: 3500, RevenueMultiplier: 1.4,
		QualityMin: 70, QualityMax: 90,
		Description:   "Semi-permanent dining experience",
		Complementary: []string{"Beverage Stand", "Wine Bar"},
		Competitive:   []string{"Food Truck", "Food Court"},
	},
	{
		Name: "Beverage Stand", BaseCost: 1500, RevenueMultiplier: 1.1,
		QualityMin: 50, QualityMax: 80,
		Description:   "Drinks and refreshments",
		Complementary: []string{"Food Truck", "Restaurant Tent", "Dessert Cart"},
		Competitive:   []string{"Cocktail Bar", "Wine Bar"},
	},
	{
		Name: "Cocktail Bar", BaseCost: 3000, RevenueMultiplier: 1.5,
		QualityMin: 75, QualityMax: 95,
		Description:   "Premium alcoholic beverages",
		Complementary: []string{"Food Truck", "Restaurant Tent"},
		Competitive:   []string{"Beverage Stand", "Wine Bar"},
	},
	{
		Name: "Wine Bar", BaseCost: 4000, RevenueMultiplier: 1.6,
		QualityMin: 80, QualityMax: 95,
		Description:   "Curated wine selection",
		Complementary: []string{"Restaurant Tent", "Cheese Platter"},
		Competitive:   []string{"Cocktail Bar", "Beverage Stand"},
	},
	{
		Name: "Dessert Cart", BaseCost: 1800, RevenueMultiplier: 1.3,
		QualityMin: 65, QualityMax: 85,
		Description:   "Sweet treats and desserts",
		Complementary: []string{"Beverage Stand", "Coffee Shop"},
		Competitive:   []string{"Food Truck", "Restaurant Tent"},
	},
	{
		Name: "Coffee Shop", BaseCost: 2200, RevenueMultiplier: 1.2,
		QualityMin: 60, QualityMax: 85,
		Description:   "Coffee and light snacks",
		Complementary: []string{"Dessert Cart", "Beverage Stand"},
		Competitive:   []string{"Food Truck", "Restaurant Tent"},
	},
	{
		Name: "Food Court", BaseCost: 5000, RevenueMultiplier: 1.8,
		QualityMin: 75, QualityMax: 90,
		Description:   "Multiple food options in one location",
		Complementary: []string{"Beverage Stand", "Dessert Cart"},
		Competitive:   []string{"Food Truck", "Restaurant Tent"},
	},
	{
		Name: "Cheese Platter", BaseCost: 2500, RevenueMultiplier: 1.4,
		QualityMin: 70, QualityMax: 90,
		Description:   "Artisanal cheese and charcuterie",
		Complementary: []string{"Wine Bar", "Restaurant Tent"},
		Competitive:   []string{"Food Truck", "Dessert Cart"},
	},
	{
		Name: "Vegan Station", BaseCost: 2800, RevenueMultiplier: 1.3,
		QualityMin: 65, QualityMax: 85,
		Description:   "Plant-based food options",
		Complementary: []string{"Beverage Stand", "Dessert Cart"},
		Competitive:   []string{"Food Truck", "Restaurant Tent"},
	},
}

// PlacementLocation is a physical zone vendors can be assigned to.
type PlacementLocation struct {
	Name             string
	SuitableVendors  []string
	SuitabilityBonus float64 // Quality score bonus when specialty is suitable
	Description      string
}

// FallbackPlacement is used when a vendor has no assigned location.
const FallbackPlacement = "Food Court Area"

// PlacementLocations lists the festival grounds zones.
var PlacementLocations = []PlacementLocation{
	{
		Name:             "Main Stage",
		SuitableVendors:  []string{"Food Truck", "Beverage Stand"},
		SuitabilityBonus: 5,
		Description:      "High traffic, quick service required",
	},
	{
		Name:             FallbackPlacement,
		SuitableVendors:  []string{"Food Truck", "Restaurant Tent", "Food Court", "Vegan Station", "Dessert Cart"},
		SuitabilityBonus: 4,
		Description:      "Central dining hub",
	},
	{
		Name:             "VIP Area",
		SuitableVendors:  []string{"Wine Bar", "Cocktail Bar", "Cheese Platter"},
		SuitabilityBonus: 6,
		Description:      "Premium offerings for premium guests",
	},
	{
		Name:             "Entrance Plaza",
		SuitableVendors:  []string{"Coffee Shop", "Dessert Cart", "Beverage Stand"},
		SuitabilityBonus: 3,
		Description:      "First impression on the way in",
	},
	{
		Name:             "Chill Zone",
		SuitableVendors:  []string{"Vegan Station", "Coffee Shop", "Dessert Cart"},
		SuitabilityBonus: 4,
		Description:      "Relaxed seating away from the stages",
	},
}

// AdvancedSpecialties maps an advanced vendor tag to its quality bonus.
var AdvancedSpecialties = map[string]float64{
	"vegan":       4,
	"gluten_free": 3,
	"organic":     3,
	"local":       2,
	"fusion":      3,
	"zero_waste":  2,
}

// Allergy support levels.
const (
	AllergyBasic         = "basic"
	AllergyComprehensive = "comprehensive"
	AllergyDedicated     = "dedicated"
)

// AllergyTiers maps an allergy support level to its quality bonus.
var AllergyTiers = map[string]float64{
	AllergyBasic:         0,
	AllergyComprehensive: 3,
	AllergyDedicated:     6,
}
