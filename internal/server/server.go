// Package server exposes the wordbook services as a JSON REST API.
package server

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/at-ishikawa/wordbook/internal/validation"
)

// Version is reported by the root endpoint.
const Version = "1.0.0"

// maxBodyBytes bounds request bodies, including import payloads.
const maxBodyBytes = 10 << 20

// Services are the dependencies of the handlers.
type Services struct {
	Users        UserService
	Tokens       TokenService
	Dictionaries DictionaryService
	Words        WordService
	Transfer     TransferService
	Database     Pinger
}

type Server struct {
	Services

	logger         *zap.Logger
	allowedOrigins []string
	validator      *validation.Validator
	now            func() time.Time
}

// New creates a Server. allowedOrigins lists the origins answered with CORS headers; "*" allows any.
func New(services Services, logger *zap.Logger, allowedOrigins []string) *Server {
	return &Server{
		Services:       services,
		logger:         logger,
		allowedOrigins: allowedOrigins,
		validator:      validation.MustNew("json"),
		now:            time.Now,
	}
}

// Handler returns the routes wrapped in the recover, logging and CORS middleware.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	s.routes(mux)
	return recoverMiddleware(s.logger, loggingMiddleware(s.logger, corsMiddleware(mux, s.allowedOrigins)))
}

func (s *Server) routes(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", s.handleRoot)
	mux.HandleFunc("GET /health", s.handleHealth)

	mux.HandleFunc("POST /api/auth/register", s.handleRegister)
	mux.HandleFunc("POST /api/auth/login", s.handleLogin)
	mux.Handle("GET /api/auth/me", s.authenticated(s.handleMe))
	mux.Handle("POST /api/auth/change-password", s.authenticated(s.handleChangePassword))

	for _, path := range []string{"/api/dictionaries", "/api/dictionaries/{$}"} {
		mux.Handle("POST "+path, s.authenticated(s.handleCreateDictionary))
		mux.Handle("GET "+path, s.authenticated(s.handleListDictionaries))
	}
	mux.Handle("GET /api/dictionaries/{id}", s.authenticated(s.handleGetDictionary))
	mux.Handle("PUT /api/dictionaries/{id}", s.authenticated(s.handleUpdateDictionary))
	mux.Handle("DELETE /api/dictionaries/{id}", s.authenticated(s.handleDeleteDictionary))

	mux.Handle("POST /api/words/{dictionary_id}/words", s.authenticated(s.handleCreateWord))
	mux.Handle("GET /api/words/{dictionary_id}/words", s.authenticated(s.handleListWords))
	mux.Handle("GET /api/words/{dictionary_id}/words/{word_id}", s.authenticated(s.handleGetWord))
	mux.Handle("PUT /api/words/{dictionary_id}/words/{word_id}", s.authenticated(s.handleUpdateWord))
	mux.Handle("DELETE /api/words/{dictionary_id}/words/{word_id}", s.authenticated(s.handleDeleteWord))
	mux.Handle("POST /api/words/{dictionary_id}/search", s.authenticated(s.handleSearchWords))
	mux.Handle("GET /api/words/{dictionary_id}/categories", s.authenticated(s.handleCategories))
	mux.Handle("POST /api/words/{dictionary_id}/import", s.authenticated(s.handleImport))
	mux.Handle("GET /api/words/{dictionary_id}/export", s.authenticated(s.handleExport))
}
