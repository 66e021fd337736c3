package server

import (
	"encoding/base64"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/at-ishikawa/wordbook/internal/apperror"
	"github.com/at-ishikawa/wordbook/internal/transfer"
	"github.com/at-ishikawa/wordbook/internal/user"
)

// maxReportedErrors caps the row errors returned by an import.
const maxReportedErrors = 10

type importRequest struct {
	Data   string `json:"data" validate:"required"`
	Format string `json:"format" validate:"required"`
}

type importResponse struct {
	Message      string   `json:"message"`
	SuccessCount int      `json:"success_count"`
	ErrorCount   int      `json:"error_count"`
	Errors       []string `json:"errors"`
}

func (s *Server) handleImport(w http.ResponseWriter, r *http.Request, u *user.User) {
	var req importRequest
	if err := s.decodeRequest(w, r, &req); err != nil {
		s.respondError(w, r, err)
		return
	}

	// Binary formats travel base64 encoded inside the JSON body.
	data := []byte(req.Data)
	if transfer.Format(strings.ToLower(strings.TrimSpace(req.Format))) == transfer.FormatXLSX {
		decoded, err := base64.StdEncoding.DecodeString(req.Data)
		if err != nil {
			s.respondError(w, r, apperror.Validation("data must be base64 encoded for the xlsx format"))
			return
		}
		data = decoded
	}

	result, err := s.Transfer.Import(r.Context(), u.ID, r.PathValue("dictionary_id"), req.Format, data)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	errs := result.Errors
	if errs == nil {
		errs = []string{}
	}
	if len(errs) > maxReportedErrors {
		errs = errs[:maxReportedErrors]
	}
	respondJSON(w, http.StatusOK, importResponse{
		Message:      "Import completed",
		SuccessCount: result.Imported,
		ErrorCount:   result.Failed,
		Errors:       errs,
	})
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request, u *user.User) {
	payload, err := s.Transfer.Export(r.Context(), u.ID, r.PathValue("dictionary_id"), r.URL.Query().Get("format"))
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", payload.ContentType)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": payload.Filename}))
	w.Header().Set("Content-Length", strconv.Itoa(len(payload.Body)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(payload.Body)
}
