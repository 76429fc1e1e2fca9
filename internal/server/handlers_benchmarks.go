package server

import (
	"net/http"
)

// handleListBenchmarks lists the industries the benchmark table covers.
func (s *Server) handleListBenchmarks(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"industries": s.benchmarks.Industries(),
		"default":    s.benchmarks.DefaultEntry(),
	})
}

// handleGetBenchmark returns the benchmark entry for one industry. Unknown
// industries fall back to the default entry, same as scoring does.
func (s *Server) handleGetBenchmark(w http.ResponseWriter, r *http.Request) {
	industry := r.PathValue("industry")
	entry := s.benchmarks.Lookup(industry)
	s.jsonResponse(w, http.StatusOK, entry)
}
