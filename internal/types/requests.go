package types

import (
	"github.com/go-playground/validator/v10"
)

// ScoreRequest carries an inline scoring context for ad-hoc scoring.
type ScoreRequest struct {
	Context *ScoringContext `json:"context" validate:"required"`
}

// PressureRequest carries an inline pressure context.
type PressureRequest struct {
	Context *PressureContext `json:"context" validate:"required"`
}

// CreateProjectRequest represents the request to register a brand/project.
type CreateProjectRequest struct {
	Name        string   `json:"name" validate:"required,min=1"`
	Domain      string   `json:"domain,omitempty" validate:"omitempty,fqdn"`
	Industry    string   `json:"industry,omitempty"`
	Competitors []string `json:"competitors,omitempty" validate:"max=25,dive,min=1"`
}

// Validate validates the ScoreRequest using the validator.
func (r *ScoreRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the PressureRequest using the validator.
func (r *PressureRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the CreateProjectRequest using the validator.
func (r *CreateProjectRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
