package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// SaveScoreRun persists one computed score result and returns the run ID.
func (db *DB) SaveScoreRun(ctx context.Context, projectID uuid.UUID, kind string, finalScore float64, result any) (uuid.UUID, error) {
	jsonBytes, err := json.Marshal(result)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal score result: %w", err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO score_runs (project_id, kind, final_score, result)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		projectID, kind, finalScore, jsonBytes,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save score run: %w", err)
	}
	return id, nil
}

// GetScoreRun retrieves a score run by ID. Returns nil when not found.
func (db *DB) GetScoreRun(ctx context.Context, runID uuid.UUID) (*ScoreRun, error) {
	var run ScoreRun
	var resultBytes []byte
	err := db.pool.QueryRow(ctx,
		`SELECT id, project_id, kind, final_score, result, created_at
		 FROM score_runs WHERE id = $1`,
		runID,
	).Scan(&run.ID, &run.ProjectID, &run.Kind, &run.FinalScore, &resultBytes, &run.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get score run: %w", err)
	}

	if len(resultBytes) > 0 {
		var result any
		if err := json.Unmarshal(resultBytes, &result); err == nil {
			run.Result = result
		}
	}
	return &run, nil
}

// LatestScoreRun retrieves the most recent run of a kind for a project.
// Returns nil when the project has no runs of that kind.
func (db *DB) LatestScoreRun(ctx context.Context, projectID uuid.UUID, kind string) (*ScoreRun, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`SELECT id FROM score_runs
		 WHERE project_id = $1 AND kind = $2
		 ORDER BY created_at DESC LIMIT 1`,
		projectID, kind,
	).Scan(&id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get latest score run: %w", err)
	}
	return db.GetScoreRun(ctx, id)
}

// ListScoreRuns retrieves score runs with optional filters, newest first.
// Results omit the full JSON payload; fetch a single run for that.
func (db *DB) ListScoreRuns(ctx context.Context, filters ScoreRunFilters) ([]ScoreRun, error) {
	query, args := buildScoreRunQuery(filters)

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list score runs: %w", err)
	}
	defer rows.Close()

	var runs []ScoreRun
	for rows.Next() {
		var run ScoreRun
		if err := rows.Scan(&run.ID, &run.ProjectID, &run.Kind, &run.FinalScore, &run.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan score run: %w", err)
		}
		runs = append(runs, run)
	}
	return runs, nil
}

// buildScoreRunQuery assembles the filtered listing query. Split out so the
// argument numbering can be tested without a database.
func buildScoreRunQuery(filters ScoreRunFilters) (string, []any) {
	if filters.Limit == 0 {
		filters.Limit = 50
	}

	query := `SELECT id, project_id, kind, final_score, created_at
		FROM score_runs WHERE 1=1`
	args := []any{}
	argNum := 1

	if filters.ProjectID != uuid.Nil {
		query += fmt.Sprintf(" AND project_id = $%d", argNum)
		args = append(args, filters.ProjectID)
		argNum++
	}
	if filters.Kind != "" {
		query += fmt.Sprintf(" AND kind = $%d", argNum)
		args = append(args, filters.Kind)
		argNum++
	}

	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d", argNum)
	args = append(args, filters.Limit)
	return query, args
}

// DeleteScoreRun deletes a persisted score run.
func (db *DB) DeleteScoreRun(ctx context.Context, runID uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM score_runs WHERE id = $1`, runID)
	if err != nil {
		return fmt.Errorf("failed to delete score run: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("score run not found: %s", runID)
	}
	return nil
}
