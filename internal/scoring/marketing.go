package scoring

import (
	"math"
	"math/rand"

	"github.com/soundfield/festsim/internal/catalog"
)

// CampaignEffectiveness computes how well a campaign lands with an audience:
// the campaign's base effectiveness, boosted when the channel matches the
// audience's preferences and by festival reputation, with a random market
// factor. Clamped to [0.1, 1.0].
func CampaignEffectiveness(ct catalog.CampaignType, aud catalog.TargetAudience, reputation int, rng *rand.Rand) float64 {
	channelBonus := 0.0
	if containsString(aud.PreferredChannels, ct.Name) {
		channelBonus = 0.2
	}
	reputationBonus := float64(reputation-50) * 0.002

	randomFactor := 0.8 + rng.Float64()*0.4

	eff := ct.Effectiveness * (1 + channelBonus + reputationBonus) * randomFactor
	return math.Min(1.0, math.Max(0.1, eff))
}

// CampaignReach estimates how many people a campaign touches for a given
// spend.
func CampaignReach(ct catalog.CampaignType, aud catalog.TargetAudience, budget, effectiveness float64) int {
	baseReach := (budget / ct.BaseCost) * 10000
	return int(baseReach * ct.ReachMultiplier * aud.ReachMultiplier * effectiveness)
}

// ReputationGain computes the reputation boost from a campaign, with
// diminishing returns as reputation approaches the ceiling.
func ReputationGain(ct catalog.CampaignType, effectiveness float64, reputation int) float64 {
	diminish := math.Max(0.5, 1-float64(reputation-50)/100)
	return ct.ReputationBoost * effectiveness * diminish
}
