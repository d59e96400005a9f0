package events

import (
	"github.com/soundfield/festsim/internal/catalog"
	"github.com/soundfield/festsim/internal/festival"
)

// Forecast draws a weather condition from the fixed categorical
// distribution. If floating rounding leaves the cumulative sum short of the
// roll, the first (most likely) condition is returned.
func (e *Engine) Forecast() catalog.WeatherCondition {
	roll := e.rng.Float64()
	cumulative := 0.0
	for _, wc := range e.tables.WeatherConditions {
		cumulative += wc.Probability
		if roll <= cumulative {
			return wc
		}
	}
	return e.tables.WeatherConditions[0]
}

// WeatherImpact projects a condition's effect on a festival.
type WeatherImpact struct {
	Condition        string  `json:"weather_condition"`
	AttendanceImpact float64 `json:"attendance_impact"` // Delta vs the fair-weather baseline
	ReputationImpact float64 `json:"reputation_impact"`
	CostMultiplier   float64 `json:"cost_multiplier"`
	Description      string  `json:"description"`
}

// Impact converts a weather condition into concrete deltas for the
// festival, against a baseline of 80% venue capacity.
func (e *Engine) Impact(f *festival.Festival, wc catalog.WeatherCondition) WeatherImpact {
	base := float64(f.VenueCapacity) * 0.8
	return WeatherImpact{
		Condition:        wc.Name,
		AttendanceImpact: base*wc.AttendanceMod - base,
		ReputationImpact: (wc.ReputationMod - 1) * 10,
		CostMultiplier:   wc.CostMod,
		Description:      wc.Description,
	}
}
