package scoring

import (
	"math"

	"github.com/jonathan/visibility-engine/internal/benchmarks"
	"github.com/jonathan/visibility-engine/internal/types"
)

// Layer weights for the composite score. These must sum to exactly 1.0;
// change the whole set together to preserve normalization.
const (
	weightAIInfluence     = 0.20
	weightOrganicCoverage = 0.15
	weightSocialAuthority = 0.15
	weightReputation      = 0.15
	weightContentDepth    = 0.15
	weightRiskExposure    = 0.20
)

// Zone thresholds for the derived distance metrics.
const (
	safetyZoneThreshold    = 70
	dominanceZoneThreshold = 85
)

// layerDef binds a layer's display name, key and weight to its scorer.
type layerDef struct {
	name   string
	key    string
	weight float64
	score  func(c *types.ScoringContext) float64
}

// layerDefs fixes the layer order used by the breakdown and radar arrays.
var layerDefs = []layerDef{
	{"AI & Search Influence", "ai_search_influence", weightAIInfluence,
		func(c *types.ScoringContext) float64 {
			return AISearchInfluenceScore(c.AIResponses, c.SessionTotalQueries)
		}},
	{"Organic & Commercial Coverage", "organic_coverage", weightOrganicCoverage,
		func(c *types.ScoringContext) float64 {
			return OrganicCoverageScore(c.SearchSummary, c.SearchQueries, c.SearchPages)
		}},
	{"Social Authority & Velocity", "social_authority", weightSocialAuthority,
		func(c *types.ScoringContext) float64 {
			return SocialAuthorityScore(c.Integrations)
		}},
	{"Reputation & Google Business", "reputation", weightReputation,
		func(c *types.ScoringContext) float64 {
			return ReputationScore(c.ReviewSnapshots)
		}},
	{"Website & Content Depth", "content_depth", weightContentDepth,
		func(c *types.ScoringContext) float64 {
			return ContentDepthScore(c.DomainIntelligence, c.AnalyzedPage)
		}},
	{"Risk & External Exposure", "risk_exposure", weightRiskExposure,
		func(c *types.ScoringContext) float64 {
			return RiskExposureScore(c.BlindSpots, c.GapReport)
		}},
}

// ComputeDCS reduces a scoring context to a Digital Control Score result.
// It is total over any well-typed context: missing sub-records degrade their
// layers to 0 and the composite is always a finite number in [0, 100].
func ComputeDCS(c *types.ScoringContext, table benchmarks.Table) *types.DCSResult {
	breakdown := make([]types.LayerScore, 0, len(layerDefs))
	radar := make([]types.RadarPoint, 0, len(layerDefs))

	weighted := 0.0
	for _, def := range layerDefs {
		score := clampScore(def.score(c))
		weighted += score * def.weight
		breakdown = append(breakdown, types.LayerScore{
			Name:   def.name,
			Key:    def.key,
			Score:  score,
			Weight: def.weight,
		})
		radar = append(radar, types.RadarPoint{
			Layer:    def.name,
			Score:    score,
			FullMark: 100,
		})
	}

	finalScore := clampScore(math.Round(weighted))
	benchmark := table.Lookup(c.Industry)

	result := &types.DCSResult{
		FinalScore:              finalScore,
		LayerBreakdown:          breakdown,
		RadarChartData:          radar,
		DistanceToSafetyZone:    math.Max(0, safetyZoneThreshold-finalScore),
		DistanceToDominanceZone: math.Max(0, dominanceZoneThreshold-finalScore),
		IndustryAverage:         benchmark.AvgCompositeScore,
	}

	// Real per-competitor scores are never computed; each competitor carries
	// the industry average, explicitly tagged as an estimate.
	if len(c.Competitors) > 0 {
		comparison := make([]types.CompetitorEstimate, 0, len(c.Competitors))
		for _, name := range c.Competitors {
			comparison = append(comparison, types.CompetitorEstimate{
				Name:      name,
				Score:     benchmark.AvgCompositeScore,
				Estimated: true,
			})
		}
		result.CompetitorComparison = comparison
	}

	return result
}
