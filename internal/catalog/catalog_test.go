package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeatherProbabilitiesSumToOne(t *testing.T) {
	sum := 0.0
	for _, wc := range WeatherConditions {
		sum += wc.Probability
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
}

func TestWeatherConditionsOrderedByProbability(t *testing.T) {
	for i := 1; i < len(WeatherConditions); i++ {
		assert.GreaterOrEqual(t,
			WeatherConditions[i-1].Probability,
			WeatherConditions[i].Probability,
			"weather table must be ordered most likely first")
	}
}

func TestEventTypes(t *testing.T) {
	require.Len(t, EventTypes, 8)

	for _, et := range EventTypes {
		assert.NotEmpty(t, et.Name)
		assert.Greater(t, et.Probability, 0.0)
		assert.LessOrEqual(t, et.Probability, 1.0)
		assert.Len(t, et.Options, 3, "%s must offer three interactive options", et.Name)

		for _, opt := range et.Options {
			assert.NotEmpty(t, opt.ID)
			assert.GreaterOrEqual(t, opt.Cost, 0.0)
			assert.Greater(t, opt.Effectiveness, 0.0)
			assert.LessOrEqual(t, opt.Effectiveness, 1.0)
		}
	}
}

func TestPositiveEventTypesHavePositiveEffects(t *testing.T) {
	tables := Default()

	for _, name := range []string{"Positive Surprise", "Sponsor Bonus"} {
		et, ok := tables.EventType(name)
		require.True(t, ok)
		assert.Equal(t, SeverityPositive, et.Severity)
		assert.Greater(t, et.Effects.Reputation, 0.0)
		assert.Greater(t, et.Effects.Budget, 0.0)
	}
}

func TestCrisisTiersEscalate(t *testing.T) {
	minimal := CrisisResponses[TierMinimal]
	immediate := CrisisResponses[TierImmediate]
	thorough := CrisisResponses[TierThorough]

	assert.Less(t, minimal.Cost, immediate.Cost)
	assert.Less(t, immediate.Cost, thorough.Cost)
	assert.Less(t, minimal.Effectiveness, immediate.Effectiveness)
	assert.Less(t, immediate.Effectiveness, thorough.Effectiveness)
}

func TestPerformanceSlots(t *testing.T) {
	require.Len(t, PerformanceSlots, 4)

	headliner := PerformanceSlots[SlotHeadliner]
	for name, slot := range PerformanceSlots {
		if name == SlotHeadliner {
			continue
		}
		assert.Less(t, slot.AudienceBonus, headliner.AudienceBonus)
		assert.Less(t, slot.ReputationBonus, headliner.ReputationBonus)
	}
}

func TestTableLookups(t *testing.T) {
	tables := Default()

	sp, ok := tables.Specialty("Wine Bar")
	require.True(t, ok)
	assert.Equal(t, 4000.0, sp.BaseCost)

	_, ok = tables.Specialty("Taco Stand")
	assert.False(t, ok)

	ct, ok := tables.Campaign("Social Media")
	require.True(t, ok)
	assert.Equal(t, 2000.0, ct.BaseCost)

	_, ok = tables.Audience("Toddlers")
	assert.False(t, ok)

	pl, ok := tables.Placement(FallbackPlacement)
	require.True(t, ok)
	assert.NotEmpty(t, pl.SuitableVendors)
}

func TestSpecialtyQualityRangesValid(t *testing.T) {
	for _, sp := range VendorSpecialties {
		assert.Less(t, sp.QualityMin, sp.QualityMax, sp.Name)
		assert.Greater(t, sp.RevenueMultiplier, 0.0, sp.Name)
	}
}

func TestSecurityProtocolRequiresLargeVenue(t *testing.T) {
	var found bool
	for _, p := range EmergencyProtocols {
		if p.Type == "Security Enhancement" {
			found = true
			assert.Greater(t, p.MinCapacity, 15000)
		} else {
			assert.Zero(t, p.MinCapacity, p.Type)
		}
	}
	assert.True(t, found)
}
