package server

import (
	"encoding/json"
	"net/http"
	"time"
	"unicode/utf8"

	"github.com/meito/kensaku/internal/metrics"
	"github.com/meito/kensaku/internal/models"
	"github.com/meito/kensaku/internal/query"
	"github.com/meito/kensaku/pkg/utils"
	"go.uber.org/zap"
)

func (s *Server) handleSearchPlan(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("q")
	if utf8.RuneCountInString(raw) > s.config.Query.MaxQueryRunes {
		s.respondError(w, http.StatusBadRequest, "query too long")
		return
	}
	s.logger.Debug("search plan request", zap.String("query", utils.Truncate(raw, 128)))
	s.respondJSON(w, http.StatusOK, s.compilePlan(s.compiler, raw))
}

func (s *Server) handleCompile(w http.ResponseWriter, r *http.Request) {
	var req models.CompileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	compiler := s.compiler
	if req.PrefixMatch != nil {
		compiler = compiler.WithPrefixMatch(*req.PrefixMatch)
	}
	s.logger.Debug("compile request", zap.String("query", utils.Truncate(req.Query, 128)))
	s.respondJSON(w, http.StatusOK, s.compilePlan(compiler, req.Query))
}

// compilePlan runs the compiler, records metrics, and degrades a
// structurally invalid compiled string to an empty query. A validation
// failure means a builder bug, so it is logged loudly but never surfaced
// to the caller as an error.
func (s *Server) compilePlan(compiler *query.Compiler, raw string) models.QueryPlan {
	start := time.Now()
	plan := compiler.Compile(raw)
	metrics.ObserveCompile(time.Since(start), plan.CompiledQuery.IsEmpty)

	if !query.ValidateQueryString(plan.CompiledQuery.QueryString) {
		s.logger.Error("compiled query failed structural validation",
			zap.String("query", utils.Truncate(raw, 128)),
			zap.String("compiled", plan.CompiledQuery.QueryString))
		plan.CompiledQuery = models.EmptyCompiledQuery()
	}
	return plan
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("failed to encode response", zap.Error(err))
	}
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, map[string]string{"error": message})
}
