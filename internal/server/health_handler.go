package server

import (
	"context"
	"net/http"
	"time"
)

const pingTimeout = 2 * time.Second

type healthResponse struct {
	Status            string    `json:"status"`
	DatabaseConnected bool      `json:"database_connected"`
	Timestamp         time.Time `json:"timestamp"`
}

type rootResponse struct {
	Message           string `json:"message"`
	Version           string `json:"version"`
	DatabaseConnected bool   `json:"database_connected"`
}

func (s *Server) databaseConnected(ctx context.Context) bool {
	if s.Database == nil {
		return false
	}
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	return s.Database.PingContext(ctx) == nil
}

// handleHealth answers 503 when the database cannot be reached.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	resp := healthResponse{
		Status:            "healthy",
		DatabaseConnected: s.databaseConnected(r.Context()),
		Timestamp:         s.now().UTC(),
	}
	status := http.StatusOK
	if !resp.DatabaseConnected {
		resp.Status = "unhealthy"
		status = http.StatusServiceUnavailable
	}
	respondJSON(w, status, resp)
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, rootResponse{
		Message:           "Welcome to the Wordbook API",
		Version:           Version,
		DatabaseConnected: s.databaseConnected(r.Context()),
	})
}
