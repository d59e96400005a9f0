package catalog

// Genres lists every bookable artist genre.
var Genres = []string{
	"Electronic", "Rock", "Hip Hop", "Pop", "Folk", "Jazz", "Blues",
	"Country", "Reggae", "R&B", "Soul", "Funk", "Disco", "Punk", "Metal",
	"Indie", "Alternative", "Classical", "World", "Experimental", "Ambient",
	"Techno", "House", "Trance", "Dubstep", "Trap", "EDM", "Acoustic",
	"Singer-Songwriter", "Band", "Solo",
}

// GenreSynergy is a cluster of compatible genres. Booking three or more
// artists across a cluster activates its marketing and reputation bonuses.
type GenreSynergy struct {
	Name            string
	MainGenre       string
	RelatedGenres   []string
	MarketingBonus  float64
	ReputationBonus float64
	Description     string
}

// GenreSynergies lists the recognized clusters.
var GenreSynergies = []GenreSynergy{
	{
		Name:            "Electronic Synergy",
		MainGenre:       "Electronic",
		RelatedGenres:   []string{"EDM", "Techno", "House", "Trance", "Dubstep", "Trap", "Ambient"},
		MarketingBonus:  0.3,
		ReputationBonus: 12,
		Description:     "Unified electronic music experience attracts tech-savvy audience",
	},
	{
		Name:            "Rock Synergy",
		MainGenre:       "Rock",
		RelatedGenres:   []string{"Metal", "Punk", "Alternative", "Indie"},
		MarketingBonus:  0.25,
		ReputationBonus: 10,
		Description:     "Cohesive rock lineup creates powerful festival atmosphere",
	},
	{
		Name:            "Hip Hop Synergy",
		MainGenre:       "Hip Hop",
		RelatedGenres:   []string{"R&B", "Soul", "Funk"},
		MarketingBonus:  0.35,
		ReputationBonus: 15,
		Description:     "Urban music synergy draws diverse, engaged crowd",
	},
	{
		Name:            "Pop Synergy",
		MainGenre:       "Pop",
		RelatedGenres:   []string{"Singer-Songwriter", "Acoustic", "Band"},
		MarketingBonus:  0.2,
		ReputationBonus: 8,
		Description:     "Mainstream appeal creates broad audience attraction",
	},
	{
		Name:            "Jazz Synergy",
		MainGenre:       "Jazz",
		RelatedGenres:   []string{"Blues", "Soul", "Funk", "Classical"},
		MarketingBonus:  0.4,
		ReputationBonus: 18,
		Description:     "Sophisticated musical programming enhances festival prestige",
	},
	{
		Name:            "World Music Synergy",
		MainGenre:       "World",
		RelatedGenres:   []string{"Reggae", "Folk", "Experimental"},
		MarketingBonus:  0.3,
		ReputationBonus: 12,
		Description:     "Global music diversity creates unique festival identity",
	},
}

// PerformanceSlot describes one of the four daily stage slots.
type PerformanceSlot struct {
	Time            string
	AudienceBonus   float64
	ReputationBonus float64
	Description     string
}

// Slot names. An artist without an assignment holds SlotUnassigned.
const (
	SlotOpening    = "opening"
	SlotAfternoon  = "afternoon"
	SlotEvening    = "evening"
	SlotHeadliner  = "headliner"
	SlotUnassigned = ""
)

// PerformanceSlots maps slot name to its properties.
var PerformanceSlots = map[string]PerformanceSlot{
	SlotOpening: {
		Time:            "12:00 PM - 3:00 PM",
		AudienceBonus:   0.1,
		ReputationBonus: 5,
		Description:     "Early afternoon slot - good for up-and-coming artists",
	},
	SlotAfternoon: {
		Time:            "3:00 PM - 6:00 PM",
		AudienceBonus:   0.2,
		ReputationBonus: 8,
		Description:     "Prime afternoon slot - peak audience time",
	},
	SlotEvening: {
		Time:            "6:00 PM - 9:00 PM",
		AudienceBonus:   0.3,
		ReputationBonus: 12,
		Description:     "Evening slot - high energy, large crowds",
	},
	SlotHeadliner: {
		Time:            "9:00 PM - 12:00 AM",
		AudienceBonus:   0.5,
		ReputationBonus: 20,
		Description:     "Headliner slot - main attraction of the night",
	},
}
