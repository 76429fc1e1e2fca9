package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/visibility-engine/internal/db"
	"github.com/jonathan/visibility-engine/internal/pressure"
	"github.com/jonathan/visibility-engine/internal/types"
)

// handlePressure computes a competitive pressure index for an inline context.
func (s *Server) handlePressure(w http.ResponseWriter, r *http.Request) {
	var req types.PressureRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	result := pressure.ComputeIndex(req.Context)
	s.jsonResponse(w, http.StatusOK, result)
}

// handleProjectPressure loads a project's context from the store, computes
// its pressure index and persists the run.
func (s *Server) handleProjectPressure(w http.ResponseWriter, r *http.Request) {
	projectID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid project ID")
		return
	}

	project, err := s.db.GetProject(r.Context(), projectID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if project == nil {
		s.errorResponse(w, http.StatusNotFound, "Project not found")
		return
	}

	scoringContext, err := s.db.LoadScoringContext(r.Context(), projectID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load scoring context: "+err.Error())
		return
	}

	result := pressure.ComputeIndex(scoringContext.Pressure())

	runID, err := s.db.SaveScoreRun(r.Context(), projectID, db.RunKindPressure, result.CompetitivePressureIndex, result)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to persist pressure run: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"run_id": runID,
		"result": result,
	})
}
