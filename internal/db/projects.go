package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// CreateProject registers a new project and returns its ID.
func (db *DB) CreateProject(ctx context.Context, name, domain, industry string, competitors []string) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO projects (name, domain, industry, competitors)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		name, domain, industry, competitors,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create project: %w", err)
	}
	return id, nil
}

// GetProject retrieves a project by ID. Returns nil when not found.
func (db *DB) GetProject(ctx context.Context, projectID uuid.UUID) (*Project, error) {
	var p Project
	err := db.pool.QueryRow(ctx,
		`SELECT id, name, COALESCE(domain, ''), COALESCE(industry, ''), COALESCE(competitors, '{}'), created_at
		 FROM projects WHERE id = $1`,
		projectID,
	).Scan(&p.ID, &p.Name, &p.Domain, &p.Industry, &p.Competitors, &p.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return &p, nil
}

// ListProjects retrieves recent projects.
func (db *DB) ListProjects(ctx context.Context, limit, offset int) ([]Project, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, name, COALESCE(domain, ''), COALESCE(industry, ''), COALESCE(competitors, '{}'), created_at
		 FROM projects ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	var projects []Project
	for rows.Next() {
		var p Project
		if err := rows.Scan(&p.ID, &p.Name, &p.Domain, &p.Industry, &p.Competitors, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, p)
	}
	return projects, nil
}

// DeleteProject deletes a project and all of its signal records and score
// runs (via cascade).
func (db *DB) DeleteProject(ctx context.Context, projectID uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM projects WHERE id = $1`, projectID)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("project not found: %s", projectID)
	}
	return nil
}
