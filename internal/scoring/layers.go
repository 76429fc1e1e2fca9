// Package scoring computes the Digital Control Score: six weighted layer
// scores reduced from pre-fetched marketing signals, combined into a single
// 0-100 composite. Every layer scorer is total: missing or empty input
// degrades that layer to 0, it never errors.
package scoring

import (
	"math"

	"github.com/jonathan/visibility-engine/internal/types"
)

// Internal weights for the organic coverage sub-scores.
const (
	organicPositionWeight = 0.35
	organicCTRWeight      = 0.30
	organicVolumeWeight   = 0.35
)

// trackedSocialPlatforms is the fixed platform set counted by the social
// authority layer.
var trackedSocialPlatforms = []string{"facebook", "linkedin", "instagram", "reddit", "x"}

// AISearchInfluenceScore scores the brand's mention rate across AI-engine
// responses. The session total is preferred over the response count so that
// silently failed platform calls still count against the denominator.
func AISearchInfluenceScore(responses []types.AIResponse, sessionTotalQueries int) float64 {
	if len(responses) == 0 {
		return 0
	}

	total := sessionTotalQueries
	if total <= 0 {
		total = len(responses)
	}

	mentioned := 0
	for _, r := range responses {
		if r.BrandMentioned {
			mentioned++
		}
	}

	return clampScore(ratio(float64(mentioned), float64(total)) * 100)
}

// OrganicCoverageScore scores organic search performance. A pre-aggregated
// summary is preferred; otherwise the summary is derived from raw per-query
// rows, then per-page rows. No data at all scores 0.
func OrganicCoverageScore(summary *types.SearchConsoleSummary, queries, pages []types.SearchRow) float64 {
	return firstAvailable([]candidate{
		{summary != nil, func() float64 { return scoreSearchSummary(*summary) }},
		{len(queries) > 0, func() float64 { return scoreSearchSummary(summarizeRows(queries)) }},
		{len(pages) > 0, func() float64 { return scoreSearchSummary(summarizeRows(pages)) }},
	})
}

// scoreSearchSummary combines position, CTR and impression volume with fixed
// internal weights.
func scoreSearchSummary(s types.SearchConsoleSummary) float64 {
	positionScore := math.Max(0, 100-s.AvgPosition*2)
	ctrScore := math.Min(100, s.AvgCTRPct*10)
	volumeScore := math.Min(100, float64(s.TotalImpressions)/10000*100)

	score := positionScore*organicPositionWeight +
		ctrScore*organicCTRWeight +
		volumeScore*organicVolumeWeight
	return clampScore(score)
}

// summarizeRows derives an impression-weighted summary from raw rows.
func summarizeRows(rows []types.SearchRow) types.SearchConsoleSummary {
	var clicks, impressions int
	var weightedPosition float64
	for _, row := range rows {
		clicks += row.Clicks
		impressions += row.Impressions
		weightedPosition += row.Position * float64(row.Impressions)
	}

	return types.SearchConsoleSummary{
		TotalClicks:      clicks,
		TotalImpressions: impressions,
		AvgCTRPct:        ratio(float64(clicks), float64(impressions)) * 100,
		AvgPosition:      ratio(weightedPosition, float64(impressions)),
	}
}

// SocialAuthorityScore scores the share of tracked social platforms connected,
// plus a logarithmic follower bonus per connected platform.
func SocialAuthorityScore(integrations []types.PlatformIntegration) float64 {
	tracked := make(map[string]bool, len(trackedSocialPlatforms))
	for _, p := range trackedSocialPlatforms {
		tracked[p] = false
	}

	bonus := 0.0
	for _, in := range integrations {
		if _, ok := tracked[in.Platform]; !ok || in.Status != types.IntegrationConnected {
			continue
		}
		tracked[in.Platform] = true
		if in.Metadata != nil && in.Metadata.Followers != nil && *in.Metadata.Followers > 0 {
			followers := float64(*in.Metadata.Followers)
			bonus += math.Min(10, math.Log10(followers+1)*3)
		}
	}

	connected := 0
	for _, isConnected := range tracked {
		if isConnected {
			connected++
		}
	}

	base := ratio(float64(connected), float64(len(trackedSocialPlatforms))) * 50
	return clampScore(base + bonus)
}

// ReputationScore scores the most recent review snapshot: rating contributes
// up to 60, review volume up to 40, with a flat bonus when recent individual
// reviews average 4 stars or better.
func ReputationScore(snapshots []types.ReviewSnapshot) float64 {
	latest := types.LatestReviewSnapshot(snapshots)
	if latest == nil {
		return 0
	}

	ratingScore := (latest.Rating / 5) * 60
	volumeScore := math.Min(40, float64(latest.ReviewCount)/10)

	bonus := 0.0
	if len(latest.RecentReviews) > 0 {
		sum := 0.0
		for _, r := range latest.RecentReviews {
			sum += r.Rating
		}
		if sum/float64(len(latest.RecentReviews)) >= 4 {
			bonus = 5
		}
	}

	return clampScore(ratingScore + volumeScore + bonus)
}

// ContentDepthScore scores website content depth. The richer domain
// intelligence signal is preferred; when it is weak (<50) and an analyzed-page
// fallback exists, a title raises the floor to 20 and a description to 70.
func ContentDepthScore(domain *types.DomainIntelligence, page *types.AnalyzedPage) float64 {
	if domain == nil && page == nil {
		return 0
	}

	score := 0.0
	if domain != nil {
		if domain.PageCount != nil && *domain.PageCount > 0 {
			score += math.Min(40, float64(*domain.PageCount)*0.4)
		}
		if domain.ContentDepthScore != nil {
			score += clamp(*domain.ContentDepthScore, 0, 1) * 30
		}
		if domain.TechnicalHealthScore != nil {
			score += clamp(*domain.TechnicalHealthScore, 0, 1) * 30
		}
	}

	if score < 50 && page != nil {
		if page.Title != "" {
			score = math.Max(score, 20)
		}
		if page.Description != "" {
			score = math.Max(score, 70)
		}
	}

	return clampScore(score)
}

// RiskExposureScore is an inverted risk score: higher means safer. It averages
// a blind-spot-derived safety score with a gap-report-derived balance score
// when both reports exist, uses whichever is present otherwise, and scores 0
// with neither.
func RiskExposureScore(blindSpots *types.BlindSpotReport, gap *types.GapReport) float64 {
	hasBlind := blindSpots != nil
	hasGap := gap != nil && gap.TotalQueries > 0

	switch {
	case hasBlind && hasGap:
		return clampScore((blindSpotSafetyScore(*blindSpots) + gapBalanceScore(*gap)) / 2)
	case hasBlind:
		return clampScore(blindSpotSafetyScore(*blindSpots))
	case hasGap:
		return clampScore(gapBalanceScore(*gap))
	default:
		return 0
	}
}

func blindSpotSafetyScore(r types.BlindSpotReport) float64 {
	penalty := float64(r.TotalBlindSpots)*3 + float64(r.HighPriorityCount)*10 + r.AvgSeverityScore*0.5
	return 100 - math.Min(100, penalty)
}

func gapBalanceScore(r types.GapReport) float64 {
	return ratio(float64(r.BalancedCount), float64(r.TotalQueries)) * 100
}
