package types

// Pressure classification levels.
const (
	PressureHigh   = "HIGH"
	PressureMedium = "MEDIUM"
	PressureLow    = "LOW"
)

// LayerScore is one weighted layer of the Digital Control Score breakdown.
type LayerScore struct {
	Name   string  `json:"name"`
	Key    string  `json:"key"`
	Score  float64 `json:"score"`
	Weight float64 `json:"weight"`
}

// RadarPoint is one radar-chart-ready data point.
type RadarPoint struct {
	Layer    string  `json:"layer"`
	Score    float64 `json:"score"`
	FullMark float64 `json:"full_mark"`
}

// CompetitorEstimate is a competitor comparison entry. Real per-competitor
// scores are not computed; Estimated is always true and Score carries the
// industry average.
type CompetitorEstimate struct {
	Name      string  `json:"name"`
	Score     float64 `json:"score"`
	Estimated bool    `json:"estimated"`
}

// DCSResult is the output of one Digital Control Score computation.
type DCSResult struct {
	FinalScore              float64              `json:"final_score"`
	LayerBreakdown          []LayerScore         `json:"layer_breakdown"`
	RadarChartData          []RadarPoint         `json:"radar_chart_data"`
	DistanceToSafetyZone    float64              `json:"distance_to_safety_zone"`
	DistanceToDominanceZone float64              `json:"distance_to_dominance_zone"`
	IndustryAverage         float64              `json:"industry_average"`
	CompetitorComparison    []CompetitorEstimate `json:"competitor_comparison,omitempty"`
}

// PressureSignals reports each pressure signal alongside the composite.
type PressureSignals struct {
	AINarrativeLoss         float64 `json:"ai_narrative_loss"`
	CompetitiveShare        float64 `json:"competitive_share"`
	SentimentRisk           float64 `json:"sentiment_risk"`
	ReputationVulnerability float64 `json:"reputation_vulnerability"`
	ReviewRisk              float64 `json:"review_risk"`
}

// PressureResult is the output of one competitive pressure computation.
type PressureResult struct {
	CompetitivePressureIndex  float64         `json:"competitive_pressure_index"`
	RiskAccelerationIndicator string          `json:"risk_acceleration_indicator"`
	Signals                   PressureSignals `json:"signals"`
	Disclaimer                string          `json:"disclaimer"`
}
