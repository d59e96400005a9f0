// Package scoring provides the pure scoring functions of the festival
// engine: genre synergies, vendor relationships, quality and satisfaction
// scores, and marketing campaign effectiveness. Everything here is a
// computation over plain values; nothing mutates festival state.
package scoring

import (
	"math"

	"github.com/soundfield/festsim/internal/catalog"
	"github.com/soundfield/festsim/internal/festival"
)

// ActiveSynergy describes a genre synergy cluster that a lineup has
// activated, with its scaled bonuses.
type ActiveSynergy struct {
	Name            string   `json:"name"`
	MainGenre       string   `json:"main_genre"`
	Description     string   `json:"description"`
	MarketingBonus  float64  `json:"marketing_bonus"`
	ReputationBonus int      `json:"reputation_bonus"`
	ArtistCount     int      `json:"artist_count"`
	Genres          []string `json:"genres"`
}

// synergyThreshold is the minimum cluster headcount for activation.
const synergyThreshold = 3

// GenreSynergies returns every synergy cluster activated by the lineup.
// A cluster activates at three artists across its genres; the bonus
// multiplier grows with headcount and caps at 2x.
func GenreSynergies(tables *catalog.Tables, artists []*festival.Artist) []ActiveSynergy {
	if len(artists) < 2 {
		return nil
	}

	counts := make(map[string]int)
	for _, a := range artists {
		counts[a.Genre]++
	}

	var active []ActiveSynergy
	for _, syn := range tables.GenreSynergies {
		cluster := append([]string{syn.MainGenre}, syn.RelatedGenres...)

		total := 0
		var present []string
		for _, g := range cluster {
			if n := counts[g]; n > 0 {
				total += n
				present = append(present, g)
			}
		}
		if total < synergyThreshold {
			continue
		}

		mult := math.Min(float64(total)/float64(synergyThreshold), 2.0)
		active = append(active, ActiveSynergy{
			Name:            syn.Name,
			MainGenre:       syn.MainGenre,
			Description:     syn.Description,
			MarketingBonus:  syn.MarketingBonus * mult,
			ReputationBonus: int(syn.ReputationBonus * mult),
			ArtistCount:     total,
			Genres:          present,
		})
	}
	return active
}

// ArtistRelation classifies how two artists get along on a shared bill.
type ArtistRelation struct {
	Type        string  `json:"relationship"` // friendly, refuse, neutral
	Bonus       float64 `json:"bonus"`        // Stage chemistry modifier
	Description string  `json:"description"`
}

// ArtistRelationship derives the relation between two artists from their
// symmetric friend/conflict sets. Conflicts dominate friendships.
func ArtistRelationship(a, b *festival.Artist) ArtistRelation {
	if containsID(a.ConflictsWith, b.ID) || containsID(b.ConflictsWith, a.ID) {
		return ArtistRelation{
			Type:        "refuse",
			Bonus:       -0.50,
			Description: "These artists refuse to perform together",
		}
	}
	if containsID(a.FriendsWith, b.ID) || containsID(b.FriendsWith, a.ID) {
		return ArtistRelation{
			Type:        "friendly",
			Bonus:       0.15,
			Description: "These artists have great chemistry on stage",
		}
	}
	return ArtistRelation{
		Type:        "neutral",
		Bonus:       0,
		Description: "These artists work well together",
	}
}

func containsID(ids []int64, id int64) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
