package scoring

import (
	"testing"
	"time"

	"github.com/jonathan/visibility-engine/internal/types"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }
func int64Ptr(v int64) *int64     { return &v }

func TestAISearchInfluenceScore(t *testing.T) {
	mentioned := types.AIResponse{Platform: "chatgpt", BrandMentioned: true}
	missed := types.AIResponse{Platform: "chatgpt", BrandMentioned: false}

	tests := []struct {
		name         string
		responses    []types.AIResponse
		sessionTotal int
		want         float64
	}{
		{"no responses", nil, 0, 0},
		{"no responses with session total", nil, 10, 0},
		{"half mentioned", []types.AIResponse{mentioned, missed}, 0, 50},
		{"session total preferred over response count", []types.AIResponse{mentioned, mentioned, mentioned}, 10, 30},
		{"all mentioned", []types.AIResponse{mentioned, mentioned}, 2, 100},
		{"undercounted session total clamps at 100", []types.AIResponse{mentioned, mentioned, mentioned}, 1, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AISearchInfluenceScore(tt.responses, tt.sessionTotal)
			if got != tt.want {
				t.Errorf("AISearchInfluenceScore() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAISearchInfluenceScore_Monotonic(t *testing.T) {
	// Increasing the mentioned count with a fixed total must never decrease
	// the score.
	prev := -1.0
	for mentioned := 0; mentioned <= 10; mentioned++ {
		responses := make([]types.AIResponse, 10)
		for i := 0; i < mentioned; i++ {
			responses[i].BrandMentioned = true
		}
		score := AISearchInfluenceScore(responses, 10)
		if score < prev {
			t.Fatalf("score decreased from %v to %v at mentioned=%d", prev, score, mentioned)
		}
		prev = score
	}
}

func TestOrganicCoverageScore_Summary(t *testing.T) {
	// positionScore 98*.35 + ctrScore 100*.30 + volumeScore 100*.35 = 99.3
	summary := &types.SearchConsoleSummary{
		TotalClicks:      10000,
		TotalImpressions: 100000,
		AvgCTRPct:        10,
		AvgPosition:      1,
	}
	got := OrganicCoverageScore(summary, nil, nil)
	if got < 99.29 || got > 99.31 {
		t.Errorf("OrganicCoverageScore() = %v, want ~99.3", got)
	}
}

func TestOrganicCoverageScore_NoData(t *testing.T) {
	if got := OrganicCoverageScore(nil, nil, nil); got != 0 {
		t.Errorf("OrganicCoverageScore() = %v, want 0", got)
	}
}

func TestOrganicCoverageScore_DerivesFromQueryRows(t *testing.T) {
	// 300 clicks / 20000 impressions = 1.5% CTR -> ctrScore 15
	// weighted position (2*15000 + 10*5000)/20000 = 4 -> positionScore 92
	// volume 20000/10000*100 -> capped 100
	rows := []types.SearchRow{
		{Key: "brand shoes", Clicks: 250, Impressions: 15000, Position: 2},
		{Key: "running shoes", Clicks: 50, Impressions: 5000, Position: 10},
	}
	want := 92*0.35 + 15*0.30 + 100*0.35
	got := OrganicCoverageScore(nil, rows, nil)
	if diff := got - want; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("OrganicCoverageScore() = %v, want %v", got, want)
	}
}

func TestOrganicCoverageScore_FallsBackToPageRows(t *testing.T) {
	pages := []types.SearchRow{{Key: "/pricing", Clicks: 10, Impressions: 1000, Position: 5}}
	if got := OrganicCoverageScore(nil, nil, pages); got <= 0 {
		t.Errorf("OrganicCoverageScore() = %v, want > 0 from page rows", got)
	}
}

func TestOrganicCoverageScore_ExtremePositionClamped(t *testing.T) {
	summary := &types.SearchConsoleSummary{AvgPosition: 1000}
	got := OrganicCoverageScore(summary, nil, nil)
	if got < 0 || got > 100 {
		t.Errorf("OrganicCoverageScore() = %v, out of [0,100]", got)
	}
}

func TestOrganicCoverageScore_WorsePositionNeverIncreases(t *testing.T) {
	prev := 101.0
	for pos := 1.0; pos <= 100; pos += 1 {
		summary := &types.SearchConsoleSummary{AvgPosition: pos, AvgCTRPct: 2, TotalImpressions: 5000}
		score := OrganicCoverageScore(summary, nil, nil)
		if score > prev {
			t.Fatalf("score increased from %v to %v at position=%v", prev, score, pos)
		}
		prev = score
	}
}

func TestSocialAuthorityScore(t *testing.T) {
	connected := func(platform string) types.PlatformIntegration {
		return types.PlatformIntegration{Platform: platform, Status: types.IntegrationConnected}
	}

	t.Run("no integrations", func(t *testing.T) {
		if got := SocialAuthorityScore(nil); got != 0 {
			t.Errorf("got %v, want 0", got)
		}
	})

	t.Run("one of five connected", func(t *testing.T) {
		got := SocialAuthorityScore([]types.PlatformIntegration{connected("facebook")})
		if got != 10 {
			t.Errorf("got %v, want 10", got)
		}
	})

	t.Run("all five connected without followers", func(t *testing.T) {
		got := SocialAuthorityScore([]types.PlatformIntegration{
			connected("facebook"), connected("linkedin"), connected("instagram"),
			connected("reddit"), connected("x"),
		})
		if got != 50 {
			t.Errorf("got %v, want 50", got)
		}
	})

	t.Run("disconnected and untracked platforms ignored", func(t *testing.T) {
		got := SocialAuthorityScore([]types.PlatformIntegration{
			{Platform: "facebook", Status: types.IntegrationDisconnected},
			{Platform: "linkedin", Status: types.IntegrationError},
			connected("youtube"),
		})
		if got != 0 {
			t.Errorf("got %v, want 0", got)
		}
	})

	t.Run("duplicate platform counted once", func(t *testing.T) {
		got := SocialAuthorityScore([]types.PlatformIntegration{connected("x"), connected("x")})
		if got != 10 {
			t.Errorf("got %v, want 10", got)
		}
	})

	t.Run("follower bonus capped at 10 per platform", func(t *testing.T) {
		in := types.PlatformIntegration{
			Platform: "instagram",
			Status:   types.IntegrationConnected,
			Metadata: &types.IntegrationMetadata{Followers: int64Ptr(10_000_000)},
		}
		got := SocialAuthorityScore([]types.PlatformIntegration{in})
		if got != 20 { // base 10 + capped bonus 10
			t.Errorf("got %v, want 20", got)
		}
	})

	t.Run("total capped at 100", func(t *testing.T) {
		var integrations []types.PlatformIntegration
		for _, p := range []string{"facebook", "linkedin", "instagram", "reddit", "x"} {
			integrations = append(integrations, types.PlatformIntegration{
				Platform: p,
				Status:   types.IntegrationConnected,
				Metadata: &types.IntegrationMetadata{Followers: int64Ptr(10_000_000)},
			})
		}
		got := SocialAuthorityScore(integrations)
		if got != 100 {
			t.Errorf("got %v, want 100", got)
		}
	})
}

func TestReputationScore(t *testing.T) {
	t.Run("no snapshots", func(t *testing.T) {
		if got := ReputationScore(nil); got != 0 {
			t.Errorf("got %v, want 0", got)
		}
	})

	t.Run("rating and volume", func(t *testing.T) {
		snaps := []types.ReviewSnapshot{{Rating: 3, ReviewCount: 10}}
		// (3/5)*60 + min(40, 10/10) = 36 + 1
		if got := ReputationScore(snaps); got != 37 {
			t.Errorf("got %v, want 37", got)
		}
	})

	t.Run("recent review bonus", func(t *testing.T) {
		snaps := []types.ReviewSnapshot{{
			Rating:      4,
			ReviewCount: 100,
			RecentReviews: []types.RecentReview{
				{Rating: 5}, {Rating: 4}, {Rating: 4},
			},
		}}
		// (4/5)*60 + min(40, 10) + 5 = 48 + 10 + 5
		if got := ReputationScore(snaps); got != 63 {
			t.Errorf("got %v, want 63", got)
		}
	})

	t.Run("no bonus below 4 average", func(t *testing.T) {
		snaps := []types.ReviewSnapshot{{
			Rating:        4,
			ReviewCount:   100,
			RecentReviews: []types.RecentReview{{Rating: 3}, {Rating: 4}},
		}}
		if got := ReputationScore(snaps); got != 58 {
			t.Errorf("got %v, want 58", got)
		}
	})

	t.Run("capped at 100", func(t *testing.T) {
		snaps := []types.ReviewSnapshot{{
			Rating:        5,
			ReviewCount:   100000,
			RecentReviews: []types.RecentReview{{Rating: 5}},
		}}
		if got := ReputationScore(snaps); got != 100 {
			t.Errorf("got %v, want 100", got)
		}
	})

	t.Run("most recent snapshot wins", func(t *testing.T) {
		old := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
		recent := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)
		snaps := []types.ReviewSnapshot{
			{Rating: 5, ReviewCount: 1000, FetchedAt: old},
			{Rating: 1, ReviewCount: 1, FetchedAt: recent},
		}
		// (1/5)*60 + min(40, 0.1) = 12 + 0.1
		got := ReputationScore(snaps)
		if got != 12.1 {
			t.Errorf("got %v, want 12.1 (latest snapshot)", got)
		}
	})
}

func TestContentDepthScore(t *testing.T) {
	t.Run("neither source", func(t *testing.T) {
		if got := ContentDepthScore(nil, nil); got != 0 {
			t.Errorf("got %v, want 0", got)
		}
	})

	t.Run("strong domain intelligence", func(t *testing.T) {
		domain := &types.DomainIntelligence{
			PageCount:            intPtr(200),
			ContentDepthScore:    floatPtr(1),
			TechnicalHealthScore: floatPtr(1),
		}
		if got := ContentDepthScore(domain, nil); got != 100 {
			t.Errorf("got %v, want 100", got)
		}
	})

	t.Run("partial domain intelligence", func(t *testing.T) {
		domain := &types.DomainIntelligence{
			PageCount:         intPtr(50),
			ContentDepthScore: floatPtr(0.5),
		}
		// min(40, 50*0.4) + 0.5*30 = 20 + 15
		if got := ContentDepthScore(domain, nil); got != 35 {
			t.Errorf("got %v, want 35", got)
		}
	})

	t.Run("weak domain signal floored by page title", func(t *testing.T) {
		page := &types.AnalyzedPage{Title: "Acme Plumbing"}
		if got := ContentDepthScore(nil, page); got != 20 {
			t.Errorf("got %v, want 20", got)
		}
	})

	t.Run("weak domain signal floored by page description", func(t *testing.T) {
		page := &types.AnalyzedPage{Title: "Acme Plumbing", Description: "24/7 emergency plumbing."}
		if got := ContentDepthScore(nil, page); got != 70 {
			t.Errorf("got %v, want 70", got)
		}
	})

	t.Run("strong domain signal ignores fallback", func(t *testing.T) {
		domain := &types.DomainIntelligence{
			PageCount:            intPtr(200),
			ContentDepthScore:    floatPtr(0.5),
			TechnicalHealthScore: floatPtr(0.0),
		}
		page := &types.AnalyzedPage{Title: "t", Description: "d"}
		// 40 + 15 + 0 = 55 >= 50, floors do not apply
		if got := ContentDepthScore(domain, page); got != 55 {
			t.Errorf("got %v, want 55", got)
		}
	})
}

func TestRiskExposureScore(t *testing.T) {
	blind := &types.BlindSpotReport{TotalBlindSpots: 10, HighPriorityCount: 2, AvgSeverityScore: 40}
	gap := &types.GapReport{TotalQueries: 10, BalancedCount: 5}

	t.Run("neither report", func(t *testing.T) {
		if got := RiskExposureScore(nil, nil); got != 0 {
			t.Errorf("got %v, want 0", got)
		}
	})

	t.Run("gap report only is not averaged with a missing term", func(t *testing.T) {
		if got := RiskExposureScore(nil, gap); got != 50 {
			t.Errorf("got %v, want 50", got)
		}
	})

	t.Run("blind spot report only", func(t *testing.T) {
		// 100 - min(100, 30 + 20 + 20) = 30
		if got := RiskExposureScore(blind, nil); got != 30 {
			t.Errorf("got %v, want 30", got)
		}
	})

	t.Run("both reports averaged", func(t *testing.T) {
		if got := RiskExposureScore(blind, gap); got != 40 {
			t.Errorf("got %v, want 40", got)
		}
	})

	t.Run("catastrophic blind spots clamp to zero", func(t *testing.T) {
		worst := &types.BlindSpotReport{TotalBlindSpots: 1000, HighPriorityCount: 100, AvgSeverityScore: 100}
		if got := RiskExposureScore(worst, nil); got != 0 {
			t.Errorf("got %v, want 0", got)
		}
	})

	t.Run("gap report with zero queries treated as absent", func(t *testing.T) {
		empty := &types.GapReport{TotalQueries: 0, BalancedCount: 0}
		if got := RiskExposureScore(blind, empty); got != 30 {
			t.Errorf("got %v, want 30 (blind-only score)", got)
		}
	})
}

func TestHelpers(t *testing.T) {
	if got := clampScore(-5); got != 0 {
		t.Errorf("clampScore(-5) = %v, want 0", got)
	}
	if got := clampScore(150); got != 100 {
		t.Errorf("clampScore(150) = %v, want 100", got)
	}
	if got := ratio(5, 0); got != 0 {
		t.Errorf("ratio(5, 0) = %v, want 0", got)
	}
	if got := ratio(1, 4); got != 0.25 {
		t.Errorf("ratio(1, 4) = %v, want 0.25", got)
	}
	if got := firstAvailable(nil); got != 0 {
		t.Errorf("firstAvailable(nil) = %v, want 0", got)
	}
	got := firstAvailable([]candidate{
		{false, func() float64 { return 1 }},
		{true, func() float64 { return 2 }},
		{true, func() float64 { return 3 }},
	})
	if got != 2 {
		t.Errorf("firstAvailable() = %v, want 2 (first available candidate)", got)
	}
}
