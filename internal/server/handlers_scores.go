package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/jonathan/visibility-engine/internal/db"
	"github.com/jonathan/visibility-engine/internal/scoring"
	"github.com/jonathan/visibility-engine/internal/types"
)

// parseQueryInt parses an integer query parameter with default and max values
func parseQueryInt(r *http.Request, key string, defaultValue, maxValue int) int {
	valStr := r.URL.Query().Get(key)
	if valStr == "" {
		return defaultValue
	}
	val, err := strconv.Atoi(valStr)
	if err != nil || val < 0 {
		return defaultValue
	}
	if maxValue > 0 && val > maxValue {
		return maxValue
	}
	return val
}

// handleScore computes a Digital Control Score for an inline context without
// touching the store.
func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	var req types.ScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	result := scoring.ComputeDCS(req.Context, s.benchmarks)
	s.jsonResponse(w, http.StatusOK, result)
}

// handleProjectScore loads a project's scoring context from the store,
// computes its score and persists the run.
func (s *Server) handleProjectScore(w http.ResponseWriter, r *http.Request) {
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

	result := scoring.ComputeDCS(scoringContext, s.benchmarks)

	runID, err := s.db.SaveScoreRun(r.Context(), projectID, db.RunKindDCS, result.FinalScore, result)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to persist score run: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"run_id": runID,
		"result": result,
	})
}

// handleListScoreRuns lists persisted score runs with optional filters.
func (s *Server) handleListScoreRuns(w http.ResponseWriter, r *http.Request) {
	filters := db.ScoreRunFilters{
		Kind:  r.URL.Query().Get("kind"),
		Limit: parseQueryInt(r, "limit", 50, 200),
	}
	if projectStr := r.URL.Query().Get("project_id"); projectStr != "" {
		projectID, err := uuid.Parse(projectStr)
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, "Invalid project_id filter")
			return
		}
		filters.ProjectID = projectID
	}

	runs, err := s.db.ListScoreRuns(r.Context(), filters)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"runs":  runs,
		"count": len(runs),
	})
}

// handleGetScoreRun retrieves one persisted score run with its full result.
func (s *Server) handleGetScoreRun(w http.ResponseWriter, r *http.Request) {
	runID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid score run ID")
		return
	}

	run, err := s.db.GetScoreRun(r.Context(), runID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if run == nil {
		s.errorResponse(w, http.StatusNotFound, "Score run not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, run)
}

// handleDeleteScoreRun deletes a persisted score run.
func (s *Server) handleDeleteScoreRun(w http.ResponseWriter, r *http.Request) {
	runID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid score run ID")
		return
	}

	if err := s.db.DeleteScoreRun(r.Context(), runID); err != nil {
		s.errorResponse(w, http.StatusNotFound, err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// handleProjectScoreRuns lists runs for one project.
func (s *Server) handleProjectScoreRuns(w http.ResponseWriter, r *http.Request) {
	projectID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid project ID")
		return
	}

	runs, err := s.db.ListScoreRuns(r.Context(), db.ScoreRunFilters{
		ProjectID: projectID,
		Kind:      r.URL.Query().Get("kind"),
		Limit:     parseQueryInt(r, "limit", 50, 200),
	})
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"runs":  runs,
		"count": len(runs),
	})
}

// handleProjectLatestScoreRun retrieves the newest run for a project.
func (s *Server) handleProjectLatestScoreRun(w http.ResponseWriter, r *http.Request) {
	projectID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid project ID")
		return
	}

	kind := r.URL.Query().Get("kind")
	if kind == "" {
		kind = db.RunKindDCS
	}

	run, err := s.db.LatestScoreRun(r.Context(), projectID, kind)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if run == nil {
		s.errorResponse(w, http.StatusNotFound, "No score runs for project")
		return
	}

	s.jsonResponse(w, http.StatusOK, run)
}
