package api

import (
	"context"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"pricescout/scraper"
)

// Searcher is the query pipeline behind the HTTP surface.
type Searcher interface {
	Search(ctx context.Context, query string) ([]scraper.Listing, error)
}

// Server exposes the search pipeline over HTTP.
type Server struct {
	searcher Searcher
	logger   *zap.Logger
	port     int
}

// NewServer creates a new API server.
func NewServer(searcher Searcher, port int, logger *zap.Logger) *Server {
	return &Server{
		searcher: searcher,
		logger:   logger,
		port:     port,
	}
}

// Start starts the API server.
func (s *Server) Start() error {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/search", s.SearchHandler)

	// Health check endpoint
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	s.logger.Info("starting api server", zap.Int("port", s.port))
	return http.ListenAndServe(":"+strconv.Itoa(s.port), mux)
}
