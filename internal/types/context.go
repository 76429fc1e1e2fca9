// Package types provides type definitions for the scoring contexts and results
// used throughout the visibility-engine system.
package types

import "time"

// Platform integration status values.
const (
	IntegrationConnected    = "connected"
	IntegrationDisconnected = "disconnected"
	IntegrationError        = "error"
)

// Gap report band values classifying AI-vs-organic presence per query.
const (
	BandAIRisk         = "ai_risk"
	BandModerateGap    = "moderate_gap"
	BandBalanced       = "balanced"
	BandSEOOpportunity = "seo_opportunity"
	BandSEOFailure     = "seo_failure"
)

// AIResponse is one AI-engine answer to one query for the brand.
type AIResponse struct {
	Platform       string   `json:"platform"`
	PromptText     string   `json:"prompt_text,omitempty"`
	BrandMentioned bool     `json:"brand_mentioned"`
	SentimentScore *float64 `json:"sentiment_score,omitempty"`
}

// SearchConsoleSummary is pre-aggregated organic search performance.
type SearchConsoleSummary struct {
	TotalClicks      int     `json:"total_clicks"`
	TotalImpressions int     `json:"total_impressions"`
	AvgCTRPct        float64 `json:"avg_ctr_pct"`
	AvgPosition      float64 `json:"avg_position"` // 1-indexed rank
}

// SearchRow is one raw per-query or per-page search console row, used as a
// fallback when the pre-aggregated summary is absent.
type SearchRow struct {
	Key         string  `json:"key"` // query text or page URL
	Clicks      int     `json:"clicks"`
	Impressions int     `json:"impressions"`
	Position    float64 `json:"position"`
}

// IntegrationMetadata holds optional platform-specific extras.
type IntegrationMetadata struct {
	Followers *int64 `json:"followers,omitempty"`
}

// PlatformIntegration is the state of one connected third-party account.
type PlatformIntegration struct {
	Platform string               `json:"platform"`
	Status   string               `json:"status"`
	Metadata *IntegrationMetadata `json:"metadata,omitempty"`
}

// RecentReview is a single recent review rating.
type RecentReview struct {
	Rating float64 `json:"rating"`
}

// ReviewSnapshot is one fetched review summary for the brand's storefront.
// Only the most recent snapshot (by FetchedAt) is scored.
type ReviewSnapshot struct {
	Rating        float64        `json:"rating"` // 0-5
	ReviewCount   int            `json:"review_count"`
	RecentReviews []RecentReview `json:"recent_reviews,omitempty"`
	FetchedAt     time.Time      `json:"fetched_at"`
}

// DomainIntelligence is the richer crawled-website signal.
type DomainIntelligence struct {
	PageCount            *int     `json:"page_count,omitempty"`
	ContentDepthScore    *float64 `json:"content_depth_score,omitempty"`    // 0-1
	TechnicalHealthScore *float64 `json:"technical_health_score,omitempty"` // 0-1
}

// AnalyzedPage is the simpler single-page fallback signal.
type AnalyzedPage struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
}

// BlindSpotReport counts detected visibility gaps.
type BlindSpotReport struct {
	TotalBlindSpots   int     `json:"total_blind_spots"`
	HighPriorityCount int     `json:"high_priority_count"`
	AvgSeverityScore  float64 `json:"avg_severity_score"` // 0-100
	BlindSpotPct      float64 `json:"blind_spot_pct"`     // 0-100
}

// GapQuery is one per-query AI-vs-organic classification.
type GapQuery struct {
	Band string `json:"band"`
}

// GapReport classifies AI-vs-organic presence per query.
type GapReport struct {
	Queries       []GapQuery `json:"queries,omitempty"`
	TotalQueries  int        `json:"total_queries"`
	AIRiskCount   int        `json:"ai_risk_count"`
	BalancedCount int        `json:"balanced_count"`
}

// MarketShareReport is one computed share-of-voice result. Only the most
// recent report (by GeneratedAt) is scored.
type MarketShareReport struct {
	AIMentionSharePct float64   `json:"ai_mention_share_pct"` // 0-100
	GeneratedAt       time.Time `json:"generated_at"`
}

// ScoringContext is one full evaluation request for one brand/project.
// Every sub-record is optional; absent data degrades the corresponding layer
// score to zero rather than failing the computation.
type ScoringContext struct {
	Industry            string                `json:"industry,omitempty"`
	Competitors         []string              `json:"competitors,omitempty"`
	SessionTotalQueries int                   `json:"session_total_queries,omitempty"`
	AIResponses         []AIResponse          `json:"ai_responses,omitempty"`
	SearchSummary       *SearchConsoleSummary `json:"search_summary,omitempty"`
	SearchQueries       []SearchRow           `json:"search_queries,omitempty"`
	SearchPages         []SearchRow           `json:"search_pages,omitempty"`
	Integrations        []PlatformIntegration `json:"integrations,omitempty"`
	ReviewSnapshots     []ReviewSnapshot      `json:"review_snapshots,omitempty"`
	DomainIntelligence  *DomainIntelligence   `json:"domain_intelligence,omitempty"`
	AnalyzedPage        *AnalyzedPage         `json:"analyzed_page,omitempty"`
	BlindSpots          *BlindSpotReport      `json:"blind_spots,omitempty"`
	GapReport           *GapReport            `json:"gap_report,omitempty"`
	MarketShares        []MarketShareReport   `json:"market_shares,omitempty"`
}

// PressureContext is the slice of the scoring context read by the
// competitive pressure index.
type PressureContext struct {
	AIResponses     []AIResponse        `json:"ai_responses,omitempty"`
	GapReport       *GapReport          `json:"gap_report,omitempty"`
	MarketShares    []MarketShareReport `json:"market_shares,omitempty"`
	BlindSpots      *BlindSpotReport    `json:"blind_spots,omitempty"`
	ReviewSnapshots []ReviewSnapshot    `json:"review_snapshots,omitempty"`
}

// Pressure extracts the pressure-index slice of a scoring context.
func (c *ScoringContext) Pressure() *PressureContext {
	return &PressureContext{
		AIResponses:     c.AIResponses,
		GapReport:       c.GapReport,
		MarketShares:    c.MarketShares,
		BlindSpots:      c.BlindSpots,
		ReviewSnapshots: c.ReviewSnapshots,
	}
}

// LatestReviewSnapshot returns the most recent snapshot by fetch time,
// or nil when none exist.
func LatestReviewSnapshot(snapshots []ReviewSnapshot) *ReviewSnapshot {
	var latest *ReviewSnapshot
	for i := range snapshots {
		if latest == nil || snapshots[i].FetchedAt.After(latest.FetchedAt) {
			latest = &snapshots[i]
		}
	}
	return latest
}

// LatestMarketShare returns the most recently generated report, or nil.
func LatestMarketShare(reports []MarketShareReport) *MarketShareReport {
	var latest *MarketShareReport
	for i := range reports {
		if latest == nil || reports[i].GeneratedAt.After(latest.GeneratedAt) {
			latest = &reports[i]
		}
	}
	return latest
}
