package pressure

import (
	"math"

	"github.com/jonathan/visibility-engine/internal/types"
)

// Classification thresholds for the composite index.
const (
	highThreshold   = 60
	mediumThreshold = 35
)

// Disclaimer accompanies every pressure result.
const Disclaimer = "The competitive pressure index is an estimate derived from available visibility signals and should not be treated as a precise measurement."

// signalMultipliers holds the literal mixed-scale multipliers applied to each
// signal. They are deliberately NOT a normalized weight set: narrative loss is
// a 0-1 fraction and competitive share is rescaled before multiplication,
// while the remaining 0-100 signals get fractional multipliers. Kept in one
// table so a future correction is a one-place change.
var signalMultipliers = struct {
	NarrativeLoss           float64
	CompetitiveShare        float64
	SentimentRisk           float64
	ReputationVulnerability float64
	ReviewRisk              float64
}{
	NarrativeLoss:           25,
	CompetitiveShare:        25,
	SentimentRisk:           0.2,
	ReputationVulnerability: 0.3,
	ReviewRisk:              0.2,
}

// ComputeIndex reduces a pressure context to a competitive pressure result.
// Like the DCS engine it is total: absent sub-records degrade their signals
// and the index is always a finite number in [0, 100].
func ComputeIndex(c *types.PressureContext) *types.PressureResult {
	signals := types.PressureSignals{
		AINarrativeLoss:         aiNarrativeLoss(c.GapReport),
		CompetitiveShare:        competitiveShare(c.MarketShares),
		SentimentRisk:           sentimentRisk(c.AIResponses),
		ReputationVulnerability: reputationVulnerability(c.BlindSpots),
		ReviewRisk:              reviewRisk(c.ReviewSnapshots),
	}

	raw := signals.AINarrativeLoss*signalMultipliers.NarrativeLoss +
		(signals.CompetitiveShare/100)*signalMultipliers.CompetitiveShare +
		signals.SentimentRisk*signalMultipliers.SentimentRisk +
		signals.ReputationVulnerability*signalMultipliers.ReputationVulnerability +
		signals.ReviewRisk*signalMultipliers.ReviewRisk

	index := clamp(math.Round(raw), 0, 100)

	return &types.PressureResult{
		CompetitivePressureIndex:  index,
		RiskAccelerationIndicator: classify(index),
		Signals:                   signals,
		Disclaimer:                Disclaimer,
	}
}

// classify maps an index value to its qualitative level.
func classify(index float64) string {
	switch {
	case index >= highThreshold:
		return types.PressureHigh
	case index >= mediumThreshold:
		return types.PressureMedium
	default:
		return types.PressureLow
	}
}
