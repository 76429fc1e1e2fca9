package db

import (
	"time"

	"github.com/google/uuid"
)

// Project represents one tracked brand/project row.
type Project struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Domain      string    `json:"domain,omitempty"`
	Industry    string    `json:"industry,omitempty"`
	Competitors []string  `json:"competitors,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Score run kinds.
const (
	RunKindDCS      = "dcs"
	RunKindPressure = "pressure"
)

// ScoreRun is one persisted scoring computation.
type ScoreRun struct {
	ID         uuid.UUID `json:"id"`
	ProjectID  uuid.UUID `json:"project_id"`
	Kind       string    `json:"kind"`
	FinalScore float64   `json:"final_score"`
	Result     any       `json:"result,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// ScoreRunFilters holds optional filters for listing score runs.
type ScoreRunFilters struct {
	ProjectID uuid.UUID
	Kind      string
	Limit     int
}
