// Package roster generates candidate artists and vendors for the hiring
// market. Candidates are produced on demand from a seeded source and never
// cached; the same seed and day sequence always yields the same roster.
package roster

import (
	"math/rand"

	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/soundfield/festsim/internal/catalog"
	"github.com/soundfield/festsim/internal/festival"
)

// Generator creates candidate artists and vendors.
type Generator struct {
	tables *catalog.Tables
	rng    *rand.Rand
	trend  opensimplex.Noise
	nextID int64
}

// NewGenerator creates a candidate generator with the given seed.
func NewGenerator(tables *catalog.Tables, seed int64) *Generator {
	return &Generator{
		tables: tables,
		rng:    rand.New(rand.NewSource(seed + 300)),
		trend:  opensimplex.NewNormalized(seed),
		nextID: 1,
	}
}

// SetNextID sets the next candidate ID to be issued (used when restoring
// from the store).
func (g *Generator) SetNextID(id int64) {
	g.nextID = id
}

// Artists generates a batch of artist candidates for the given sim day.
func (g *Generator) Artists(day, count int) []*festival.Artist {
	artists := make([]*festival.Artist, 0, count)
	for i := 0; i < count; i++ {
		artists = append(artists, g.GenerateArtist(day))
	}
	return artists
}

// Vendors generates a batch of vendor candidates for the given sim day.
func (g *Generator) Vendors(day, count int) []*festival.Vendor {
	vendors := make([]*festival.Vendor, 0, count)
	for i := 0; i < count; i++ {
		vendors = append(vendors, g.GenerateVendor(day))
	}
	return vendors
}

// GenerateArtist creates a single artist candidate. Popularity drifts with
// a slow per-genre trend curve so the same genre runs hot or cold across
// a season rather than resampling white noise every day.
func (g *Generator) GenerateArtist(day int) *festival.Artist {
	id := g.nextID
	g.nextID++

	genre := g.tables.Genres[g.rng.Intn(len(g.tables.Genres))]
	popularity := 30 + g.rng.Intn(66)
	popularity += g.genreTrend(genre, day)
	popularity = clampInt(popularity, 30, 95)

	fee := 5000 + float64(popularity)*500 + float64(g.rng.Intn(3001)-1000)

	return &festival.Artist{
		ID:                  id,
		Name:                g.artistName(),
		Genre:               genre,
		Popularity:          popularity,
		Fee:                 fee,
		PerformanceDuration: g.performanceDuration(genre),
		StageRequirements:   g.stageRequirements(genre, popularity),
		SpecialRequests:     g.specialRequests(genre, popularity),
		PerformanceSlot:     catalog.SlotUnassigned,
	}
}

// genreTrend returns a popularity shift in roughly [-8, +8] that varies
// smoothly over sim days and is decorrelated between genres.
func (g *Generator) genreTrend(genre string, day int) int {
	gi := 0
	for i, name := range g.tables.Genres {
		if name == genre {
			gi = i
			break
		}
	}
	n := g.trend.Eval2(float64(day)*0.05, float64(gi)*0.73)
	return int((n - 0.5) * 16)
}

func (g *Generator) performanceDuration(genre string) int {
	switch genre {
	case "Electronic", "EDM", "Techno", "House", "Trance", "Dubstep":
		return 60 + g.rng.Intn(61)
	case "Rock", "Metal", "Punk":
		return 45 + g.rng.Intn(46)
	default:
		return 30 + g.rng.Intn(46)
	}
}

func (g *Generator) stageRequirements(genre string, popularity int) string {
	var reqs []string
	if popularity > 80 {
		reqs = append(reqs, "Main stage only")
	}
	switch genre {
	case "Electronic", "EDM", "Techno", "House", "Trance", "Dubstep":
		reqs = append(reqs, "LED screens", "Fog machines")
	case "Rock", "Metal":
		reqs = append(reqs, "Pyrotechnics")
	}
	if popularity > 70 {
		reqs = append(reqs, "Professional lighting")
	}
	if len(reqs) == 0 {
		return "Standard stage"
	}
	return joinComma(reqs)
}

func (g *Generator) specialRequests(genre string, popularity int) []string {
	var reqs []string
	if popularity > 85 {
		reqs = append(reqs, "Private security", "Limousine service")
	}
	if popularity > 70 {
		reqs = append(reqs, "Green room with catering")
	}
	switch genre {
	case "Electronic", "EDM", "Techno", "House", "Trance", "Dubstep":
		reqs = append(reqs, "Specific lighting setup")
	}
	if g.rng.Float64() < 0.3 {
		reqs = append(reqs, "Custom microphone")
	}
	return reqs
}

func joinComma(parts []string) string {
	out := parts[0]
	for _, p := range parts[1:] {
		out += ", " + p
	}
	return out
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
