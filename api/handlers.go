package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"pricescout/scraper"
	"pricescout/search"
)

type errorResponse struct {
	Error string `json:"error"`
}

// SearchHandler answers GET /api/search?query=... with the ranked listings.
// Zero matches is a legitimate empty array, not an error; callers only see an
// error status for a missing/unusable query or an internal failure.
func (s *Server) SearchHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	query := strings.TrimSpace(r.URL.Query().Get("query"))
	if query == "" {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "query parameter is required"})
		return
	}

	results, err := s.searcher.Search(r.Context(), query)
	if err != nil {
		if errors.Is(err, search.ErrInvalidQuery) {
			s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "query parameter is required"})
			return
		}
		s.logger.Error("search pipeline failed", zap.String("query", query), zap.Error(err))
		s.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to fetch search results"})
		return
	}

	if results == nil {
		results = []scraper.Listing{}
	}
	s.writeJSON(w, http.StatusOK, results)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("failed to encode response", zap.Error(err))
	}
}
