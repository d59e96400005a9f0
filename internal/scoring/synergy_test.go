package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soundfield/festsim/internal/catalog"
	"github.com/soundfield/festsim/internal/festival"
)

func electronicLineup(n int) []*festival.Artist {
	genres := []string{"Electronic", "Techno", "House", "EDM", "Trance", "Dubstep"}
	var artists []*festival.Artist
	for i := 0; i < n; i++ {
		artists = append(artists, &festival.Artist{
			ID:    int64(i + 1),
			Genre: genres[i%len(genres)],
		})
	}
	return artists
}

func TestGenreSynergiesActivateAtThree(t *testing.T) {
	tables := catalog.Default()

	assert.Empty(t, GenreSynergies(tables, electronicLineup(2)))

	active := GenreSynergies(tables, electronicLineup(3))
	require.Len(t, active, 1)
	assert.Equal(t, "Electronic Synergy", active[0].Name)
	assert.Equal(t, 3, active[0].ArtistCount)

	// Exactly at threshold the bonuses are unscaled.
	assert.InDelta(t, 0.3, active[0].MarketingBonus, 1e-9)
	assert.Equal(t, 12, active[0].ReputationBonus)
}

func TestGenreSynergyBonusCapsAtDouble(t *testing.T) {
	tables := catalog.Default()

	active := GenreSynergies(tables, electronicLineup(12))
	require.Len(t, active, 1)
	assert.InDelta(t, 0.6, active[0].MarketingBonus, 1e-9)
	assert.Equal(t, 24, active[0].ReputationBonus)
}

func TestGenreSynergiesCrossClusters(t *testing.T) {
	tables := catalog.Default()

	// Soul and Funk count toward both the Hip Hop and Jazz clusters.
	artists := []*festival.Artist{
		{ID: 1, Genre: "Hip Hop"},
		{ID: 2, Genre: "Soul"},
		{ID: 3, Genre: "Funk"},
		{ID: 4, Genre: "Jazz"},
	}
	active := GenreSynergies(tables, artists)
	require.Len(t, active, 2)

	names := []string{active[0].Name, active[1].Name}
	assert.Contains(t, names, "Hip Hop Synergy")
	assert.Contains(t, names, "Jazz Synergy")
}

func TestArtistRelationshipPrecedence(t *testing.T) {
	a := &festival.Artist{ID: 1, FriendsWith: []int64{2}, ConflictsWith: []int64{2}}
	b := &festival.Artist{ID: 2}

	// Conflicts dominate friendships.
	rel := ArtistRelationship(a, b)
	assert.Equal(t, "refuse", rel.Type)
	assert.Equal(t, -0.50, rel.Bonus)
}

func TestArtistRelationshipSymmetry(t *testing.T) {
	a := &festival.Artist{ID: 1}
	b := &festival.Artist{ID: 2, FriendsWith: []int64{1}}

	// One-sided records still bind both directions.
	assert.Equal(t, "friendly", ArtistRelationship(a, b).Type)
	assert.Equal(t, "friendly", ArtistRelationship(b, a).Type)
}

func TestArtistRelationshipNeutral(t *testing.T) {
	rel := ArtistRelationship(&festival.Artist{ID: 1}, &festival.Artist{ID: 2})
	assert.Equal(t, "neutral", rel.Type)
	assert.Zero(t, rel.Bonus)
}
