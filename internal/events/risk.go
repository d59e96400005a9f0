package events

import (
	"math"

	"github.com/soundfield/festsim/internal/festival"
)

// severityWeights scale category risk scores when aggregating.
var severityWeights = map[string]float64{
	"Low":    0.5,
	"Medium": 1.0,
	"High":   1.5,
}

// RiskAssessment evaluates four independent risk categories against the
// festival's current state and aggregates them into an overall score,
// level, and recommendation list.
func (e *Engine) RiskAssessment(f *festival.Festival) festival.RiskAssessment {
	weather := 0.10
	if f.DaysRemaining < 7 {
		weather += 0.05
	}
	technical := 0.15
	if f.VenueCapacity > 20000 {
		technical += 0.05
	}
	security := 0.05
	if f.Reputation > 80 {
		security += 0.02 // Higher profile events draw more attention
	}
	artist := 0.08
	if f.DaysRemaining < 30 {
		artist += 0.03
	}

	categories := []festival.RiskCategory{
		{Type: "Weather Risk", Probability: weather, Severity: "Medium", Mitigation: "Weather monitoring and shelter plans"},
		{Type: "Technical Risk", Probability: technical, Severity: "Medium", Mitigation: "Backup systems and technical staff"},
		{Type: "Security Risk", Probability: security, Severity: "High", Mitigation: "Enhanced security measures"},
		{Type: "Artist Risk", Probability: artist, Severity: "Medium", Mitigation: "Backup artists and contracts"},
	}

	total := 0.0
	for _, c := range categories {
		total += c.Probability * 100 * severityWeights[c.Severity]
	}
	overall := math.Min(100, total/float64(len(categories)))

	return festival.RiskAssessment{
		OverallRisk:     overall,
		Level:           riskLevel(overall),
		Categories:      categories,
		Recommendations: riskRecommendations(overall),
	}
}

func riskLevel(score float64) string {
	switch {
	case score < 20:
		return "Low"
	case score < 40:
		return "Moderate"
	case score < 60:
		return "High"
	default:
		return "Critical"
	}
}

func riskRecommendations(score float64) []string {
	switch {
	case score > 50:
		return []string{
			"Implement all emergency protocols immediately",
			"Increase security and medical staff",
			"Prepare backup plans for all major systems",
		}
	case score > 30:
		return []string{
			"Review and update emergency protocols",
			"Ensure backup systems are in place",
			"Monitor weather forecasts closely",
		}
	default:
		return []string{
			"Standard safety protocols should be sufficient",
			"Regular monitoring of festival conditions",
		}
	}
}
