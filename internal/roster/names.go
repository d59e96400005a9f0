package roster

// Word banks for procedural naming.
var (
	artistPrefixes = []string{
		"The", "DJ", "MC", "Band", "Collective", "Project", "Experience",
		"Sound", "Vibe", "Groove",
	}
	artistAdjectives = []string{
		"Electric", "Magnetic", "Cosmic", "Neon", "Crystal", "Golden",
		"Silver", "Platinum", "Diamond", "Emerald", "Ruby", "Sapphire",
		"Amber", "Crimson", "Azure", "Violet", "Indigo", "Turquoise",
		"Magenta", "Cyan",
	}
	artistNouns = []string{
		"Pulse", "Wave", "Rhythm", "Beat", "Flow", "Energy", "Force",
		"Power", "Storm", "Thunder", "Lightning", "Fire", "Ice", "Wind",
		"Earth", "Water", "Air", "Space", "Time", "Dream", "Vision",
		"Spirit", "Soul", "Heart", "Mind",
	}
	artistSuffixes = []string{
		"", "X", "Z", "Pro", "Plus", "Max", "Ultra", "Elite", "Prime",
		"Core", "Edge", "Zone", "Realm", "World", "Universe",
	}

	vendorAdjectives = []string{
		"Tasty", "Fresh", "Gourmet", "Artisan", "Local", "Organic",
		"Fusion", "Traditional", "Modern", "Rustic", "Urban", "Coastal",
	}
	vendorFoodNames = []string{
		"Bites", "Eats", "Kitchen", "Cuisine", "Grill", "Cafe", "Bar",
		"Stand", "Cart", "Truck", "Tent", "Station",
	}
)

// artistName assembles a stage name from the word banks using one of a
// fixed set of patterns.
func (g *Generator) artistName() string {
	prefix := artistPrefixes[g.rng.Intn(len(artistPrefixes))]
	adjective := artistAdjectives[g.rng.Intn(len(artistAdjectives))]
	noun := artistNouns[g.rng.Intn(len(artistNouns))]
	suffix := artistSuffixes[g.rng.Intn(len(artistSuffixes))]

	patterns := []string{
		prefix + " " + adjective + " " + noun + suffix,
		adjective + " " + noun + suffix,
		prefix + " " + noun + suffix,
		adjective + " " + noun,
		noun + suffix,
		prefix + " " + adjective,
	}
	return patterns[g.rng.Intn(len(patterns))]
}

// vendorName picks a name matched to the vendor's specialty.
func (g *Generator) vendorName(specialty string) string {
	adjective := vendorAdjectives[g.rng.Intn(len(vendorAdjectives))]
	switch specialty {
	case "Beverage Stand":
		return adjective + " Refreshments"
	case "Cocktail Bar":
		return adjective + " Cocktails"
	case "Wine Bar":
		return adjective + " Wines"
	case "Coffee Shop":
		return adjective + " Coffee"
	case "Dessert Cart":
		return adjective + " Sweets"
	default:
		return adjective + " " + vendorFoodNames[g.rng.Intn(len(vendorFoodNames))]
	}
}
