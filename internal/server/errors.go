// Package server provides the HTTP REST API for the visibility engine.
package server

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

// ErrProjectNotFound indicates the project was not found.
type ErrProjectNotFound struct {
	ProjectID uuid.UUID
}

func (e *ErrProjectNotFound) Error() string {
	return fmt.Sprintf("project not found: %s", e.ProjectID)
}

// ErrScoreRunNotFound indicates the score run was not found.
type ErrScoreRunNotFound struct {
	RunID uuid.UUID
}

func (e *ErrScoreRunNotFound) Error() string {
	return fmt.Sprintf("score run not found: %s", e.RunID)
}

// ErrValidation indicates request validation failure.
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error.
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrProjectNotFound, *ErrScoreRunNotFound:
		return http.StatusNotFound
	case *ErrValidation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
