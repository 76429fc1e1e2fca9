package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/visibility-engine/internal/types"
)

// LoadScoringContext assembles the full scoring context for a project from
// its persisted signal records. Sub-record loads run concurrently; a table
// with no rows for the project yields a nil/empty field, never an error, so
// the scoring engine can degrade gracefully.
func (db *DB) LoadScoringContext(ctx context.Context, projectID uuid.UUID) (*types.ScoringContext, error) {
	project, err := db.GetProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, fmt.Errorf("project not found: %s", projectID)
	}

	sc := &types.ScoringContext{
		Industry:    project.Industry,
		Competitors: project.Competitors,
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		responses, total, err := db.loadAIResponses(gCtx, projectID)
		if err != nil {
			return err
		}
		sc.AIResponses = responses
		sc.SessionTotalQueries = total
		return nil
	})
	g.Go(func() error {
		summary, err := db.loadSearchSummary(gCtx, projectID)
		if err != nil {
			return err
		}
		sc.SearchSummary = summary
		return nil
	})
	g.Go(func() error {
		rows, err := db.loadSearchRows(gCtx, projectID, "search_console_queries")
		if err != nil {
			return err
		}
		sc.SearchQueries = rows
		return nil
	})
	g.Go(func() error {
		rows, err := db.loadSearchRows(gCtx, projectID, "search_console_pages")
		if err != nil {
			return err
		}
		sc.SearchPages = rows
		return nil
	})
	g.Go(func() error {
		integrations, err := db.loadIntegrations(gCtx, projectID)
		if err != nil {
			return err
		}
		sc.Integrations = integrations
		return nil
	})
	g.Go(func() error {
		snapshots, err := db.loadReviewSnapshots(gCtx, projectID)
		if err != nil {
			return err
		}
		sc.ReviewSnapshots = snapshots
		return nil
	})
	g.Go(func() error {
		domain, page, err := db.loadContentSignals(gCtx, projectID)
		if err != nil {
			return err
		}
		sc.DomainIntelligence = domain
		sc.AnalyzedPage = page
		return nil
	})
	g.Go(func() error {
		blindSpots, err := db.loadBlindSpots(gCtx, projectID)
		if err != nil {
			return err
		}
		sc.BlindSpots = blindSpots
		return nil
	})
	g.Go(func() error {
		gap, err := db.loadGapReport(gCtx, projectID)
		if err != nil {
			return err
		}
		sc.GapReport = gap
		return nil
	})
	g.Go(func() error {
		shares, err := db.loadMarketShares(gCtx, projectID)
		if err != nil {
			return err
		}
		sc.MarketShares = shares
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return sc, nil
}

// loadAIResponses returns the AI responses from the latest analysis session
// along with the session's intended query total. The total can exceed the
// response count when some platform calls failed.
func (db *DB) loadAIResponses(ctx context.Context, projectID uuid.UUID) ([]types.AIResponse, int, error) {
	var sessionID uuid.UUID
	var totalQueries int
	err := db.pool.QueryRow(ctx,
		`SELECT id, total_queries FROM analysis_sessions
		 WHERE project_id = $1 ORDER BY created_at DESC LIMIT 1`,
		projectID,
	).Scan(&sessionID, &totalQueries)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, 0, nil
		}
		return nil, 0, fmt.Errorf("failed to load analysis session: %w", err)
	}

	rows, err := db.pool.Query(ctx,
		`SELECT platform, COALESCE(prompt_text, ''), brand_mentioned, sentiment_score
		 FROM ai_responses WHERE session_id = $1 ORDER BY created_at`,
		sessionID,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to load AI responses: %w", err)
	}
	defer rows.Close()

	var responses []types.AIResponse
	for rows.Next() {
		var r types.AIResponse
		if err := rows.Scan(&r.Platform, &r.PromptText, &r.BrandMentioned, &r.SentimentScore); err != nil {
			return nil, 0, fmt.Errorf("failed to scan AI response: %w", err)
		}
		responses = append(responses, r)
	}
	return responses, totalQueries, nil
}

func (db *DB) loadSearchSummary(ctx context.Context, projectID uuid.UUID) (*types.SearchConsoleSummary, error) {
	var s types.SearchConsoleSummary
	err := db.pool.QueryRow(ctx,
		`SELECT total_clicks, total_impressions, avg_ctr_pct, avg_position
		 FROM search_console_summaries
		 WHERE project_id = $1 ORDER BY created_at DESC LIMIT 1`,
		projectID,
	).Scan(&s.TotalClicks, &s.TotalImpressions, &s.AvgCTRPct, &s.AvgPosition)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load search summary: %w", err)
	}
	return &s, nil
}

// loadSearchRows reads raw search console rows; table is one of the two
// fixed fallback tables, never caller input.
func (db *DB) loadSearchRows(ctx context.Context, projectID uuid.UUID, table string) ([]types.SearchRow, error) {
	query := fmt.Sprintf(
		`SELECT key, clicks, impressions, position FROM %s WHERE project_id = $1`, table)
	rows, err := db.pool.Query(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", table, err)
	}
	defer rows.Close()

	var result []types.SearchRow
	for rows.Next() {
		var r types.SearchRow
		if err := rows.Scan(&r.Key, &r.Clicks, &r.Impressions, &r.Position); err != nil {
			return nil, fmt.Errorf("failed to scan %s row: %w", table, err)
		}
		result = append(result, r)
	}
	return result, nil
}

func (db *DB) loadIntegrations(ctx context.Context, projectID uuid.UUID) ([]types.PlatformIntegration, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT platform, status, followers
		 FROM platform_integrations WHERE project_id = $1`,
		projectID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load integrations: %w", err)
	}
	defer rows.Close()

	var integrations []types.PlatformIntegration
	for rows.Next() {
		var in types.PlatformIntegration
		var followers *int64
		if err := rows.Scan(&in.Platform, &in.Status, &followers); err != nil {
			return nil, fmt.Errorf("failed to scan integration: %w", err)
		}
		if followers != nil {
			in.Metadata = &types.IntegrationMetadata{Followers: followers}
		}
		integrations = append(integrations, in)
	}
	return integrations, nil
}

func (db *DB) loadReviewSnapshots(ctx context.Context, projectID uuid.UUID) ([]types.ReviewSnapshot, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT rating, review_count, COALESCE(recent_ratings, '{}'), fetched_at
		 FROM review_snapshots WHERE project_id = $1 ORDER BY fetched_at DESC`,
		projectID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load review snapshots: %w", err)
	}
	defer rows.Close()

	var snapshots []types.ReviewSnapshot
	for rows.Next() {
		var s types.ReviewSnapshot
		var recent []float64
		if err := rows.Scan(&s.Rating, &s.ReviewCount, &recent, &s.FetchedAt); err != nil {
			return nil, fmt.Errorf("failed to scan review snapshot: %w", err)
		}
		for _, rating := range recent {
			s.RecentReviews = append(s.RecentReviews, types.RecentReview{Rating: rating})
		}
		snapshots = append(snapshots, s)
	}
	return snapshots, nil
}

func (db *DB) loadContentSignals(ctx context.Context, projectID uuid.UUID) (*types.DomainIntelligence, *types.AnalyzedPage, error) {
	var pageCount *int
	var contentDepth, technicalHealth *float64
	var title, description *string

	err := db.pool.QueryRow(ctx,
		`SELECT page_count, content_depth_score, technical_health_score, title, description
		 FROM content_signals WHERE project_id = $1 ORDER BY created_at DESC LIMIT 1`,
		projectID,
	).Scan(&pageCount, &contentDepth, &technicalHealth, &title, &description)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil, nil
		}
		return nil, nil, fmt.Errorf("failed to load content signals: %w", err)
	}

	var domain *types.DomainIntelligence
	if pageCount != nil || contentDepth != nil || technicalHealth != nil {
		domain = &types.DomainIntelligence{
			PageCount:            pageCount,
			ContentDepthScore:    contentDepth,
			TechnicalHealthScore: technicalHealth,
		}
	}

	var page *types.AnalyzedPage
	if title != nil || description != nil {
		page = &types.AnalyzedPage{}
		if title != nil {
			page.Title = *title
		}
		if description != nil {
			page.Description = *description
		}
	}

	return domain, page, nil
}

func (db *DB) loadBlindSpots(ctx context.Context, projectID uuid.UUID) (*types.BlindSpotReport, error) {
	var r types.BlindSpotReport
	err := db.pool.QueryRow(ctx,
		`SELECT total_blind_spots, high_priority_count, avg_severity_score, blind_spot_pct
		 FROM blind_spot_reports WHERE project_id = $1 ORDER BY created_at DESC LIMIT 1`,
		projectID,
	).Scan(&r.TotalBlindSpots, &r.HighPriorityCount, &r.AvgSeverityScore, &r.BlindSpotPct)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load blind spot report: %w", err)
	}
	return &r, nil
}

func (db *DB) loadGapReport(ctx context.Context, projectID uuid.UUID) (*types.GapReport, error) {
	var reportID uuid.UUID
	var r types.GapReport
	err := db.pool.QueryRow(ctx,
		`SELECT id, total_queries, ai_risk_count, balanced_count
		 FROM gap_reports WHERE project_id = $1 ORDER BY created_at DESC LIMIT 1`,
		projectID,
	).Scan(&reportID, &r.TotalQueries, &r.AIRiskCount, &r.BalancedCount)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load gap report: %w", err)
	}

	rows, err := db.pool.Query(ctx,
		`SELECT band FROM gap_report_queries WHERE report_id = $1`, reportID)
	if err != nil {
		return nil, fmt.Errorf("failed to load gap report queries: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var q types.GapQuery
		if err := rows.Scan(&q.Band); err != nil {
			return nil, fmt.Errorf("failed to scan gap query: %w", err)
		}
		r.Queries = append(r.Queries, q)
	}
	return &r, nil
}

func (db *DB) loadMarketShares(ctx context.Context, projectID uuid.UUID) ([]types.MarketShareReport, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT ai_mention_share_pct, generated_at
		 FROM market_share_reports WHERE project_id = $1 ORDER BY generated_at DESC`,
		projectID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load market share reports: %w", err)
	}
	defer rows.Close()

	var reports []types.MarketShareReport
	for rows.Next() {
		var r types.MarketShareReport
		if err := rows.Scan(&r.AIMentionSharePct, &r.GeneratedAt); err != nil {
			return nil, fmt.Errorf("failed to scan market share report: %w", err)
		}
		reports = append(reports, r)
	}
	return reports, nil
}
