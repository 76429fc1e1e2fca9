// Package pressure computes the Competitive Pressure Index: five risk signals
// reduced from the same pre-fetched marketing data as the Digital Control
// Score, combined into a 0-100 index with a three-level classification.
package pressure

import (
	"math"

	"github.com/jonathan/visibility-engine/internal/types"
)

// neutralCompetitiveShare is reported when no market-share data exists.
const neutralCompetitiveShare = 50

// aiNarrativeLoss is the fraction of gap-report queries classified as AI risk.
func aiNarrativeLoss(gap *types.GapReport) float64 {
	if gap == nil || gap.TotalQueries <= 0 {
		return 0
	}
	return clamp(float64(gap.AIRiskCount)/float64(gap.TotalQueries), 0, 1)
}

// competitiveShare inverts the brand's AI mention share from the most recent
// market-share report, defaulting to a neutral midpoint with no data.
func competitiveShare(reports []types.MarketShareReport) float64 {
	latest := types.LatestMarketShare(reports)
	if latest == nil {
		return neutralCompetitiveShare
	}
	return clamp(100-latest.AIMentionSharePct, 0, 100)
}

// sentimentRisk scores the average sentiment of AI responses that mention the
// brand; only a negative average contributes.
func sentimentRisk(responses []types.AIResponse) float64 {
	sum := 0.0
	n := 0
	for _, r := range responses {
		if r.BrandMentioned && r.SentimentScore != nil {
			sum += *r.SentimentScore
			n++
		}
	}
	if n == 0 {
		return 0
	}

	avg := sum / float64(n)
	if avg >= 0 {
		return 0
	}
	return math.Min(100, math.Abs(avg)*50)
}

// reputationVulnerability reads the blind-spot percentage directly.
func reputationVulnerability(blindSpots *types.BlindSpotReport) float64 {
	if blindSpots == nil {
		return 0
	}
	return clamp(blindSpots.BlindSpotPct, 0, 100)
}

// reviewRisk penalizes the latest review rating when it falls below 4 stars.
func reviewRisk(snapshots []types.ReviewSnapshot) float64 {
	latest := types.LatestReviewSnapshot(snapshots)
	if latest == nil || latest.Rating >= 4 {
		return 0
	}
	return clamp((4-latest.Rating)*25, 0, 100)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
