package catalog

// WeatherCondition is one outcome of the daily weather draw.
type WeatherCondition struct {
	Name          string  `json:"name"`
	Probability   float64 `json:"probability"`
	AttendanceMod float64 `json:"attendance_mod"`
	ReputationMod float64 `json:"reputation_mod"`
	CostMod       float64 `json:"cost_mod"`
	Description   string  `json:"description"`
}

// WeatherConditions is the fixed categorical distribution for forecasts.
// Ordered most likely first; probabilities sum to 1.0 and the first entry
// doubles as the rounding fallback.
var WeatherConditions = []WeatherCondition{
	{Name: "Sunny", Probability: 0.40, AttendanceMod: 1.10, ReputationMod: 1.05, CostMod: 1.0, Description: "Perfect weather for outdoor festival"},
	{Name: "Partly Cloudy", Probability: 0.30, AttendanceMod: 1.05, ReputationMod: 1.02, CostMod: 1.0, Description: "Good weather with some cloud cover"},
	{Name: "Overcast", Probability: 0.15, AttendanceMod: 0.95, ReputationMod: 0.98, CostMod: 1.0, Description: "Cloudy but no rain"},
	{Name: "Light Rain", Probability: 0.08, AttendanceMod: 0.80, ReputationMod: 0.90, CostMod: 1.1, Description: "Light rain affecting attendance"},
	{Name: "Heavy Rain", Probability: 0.04, AttendanceMod: 0.60, ReputationMod: 0.80, CostMod: 1.3, Description: "Heavy rain causing significant issues"},
	{Name: "Storm", Probability: 0.02, AttendanceMod: 0.40, ReputationMod: 0.70, CostMod: 1.5, Description: "Severe weather requiring emergency protocols"},
	{Name: "Heat Wave", Probability: 0.01, AttendanceMod: 0.85, ReputationMod: 0.90, CostMod: 1.2, Description: "Extreme heat affecting comfort"},
}
