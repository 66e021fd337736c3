package server

import (
	"net/http"
	"time"

	"github.com/at-ishikawa/wordbook/internal/dictionary"
	"github.com/at-ishikawa/wordbook/internal/user"
)

type dictionaryResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	WordCount   int       `json:"word_count"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func newDictionaryResponse(d *dictionary.Dictionary) dictionaryResponse {
	return dictionaryResponse{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		WordCount:   d.WordCount,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func (s *Server) handleCreateDictionary(w http.ResponseWriter, r *http.Request, u *user.User) {
	var in dictionary.Input
	if err := decodeJSON(w, r, &in); err != nil {
		s.respondError(w, r, err)
		return
	}
	d, err := s.Dictionaries.Create(r.Context(), u.ID, in)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, newDictionaryResponse(d))
}

func (s *Server) handleListDictionaries(w http.ResponseWriter, r *http.Request, u *user.User) {
	list, err := s.Dictionaries.List(r.Context(), u.ID)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	resp := make([]dictionaryResponse, len(list))
	for i := range list {
		resp[i] = newDictionaryResponse(&list[i])
	}
	respondJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetDictionary(w http.ResponseWriter, r *http.Request, u *user.User) {
	d, err := s.Dictionaries.Get(r.Context(), u.ID, r.PathValue("id"))
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, newDictionaryResponse(d))
}

func (s *Server) handleUpdateDictionary(w http.ResponseWriter, r *http.Request, u *user.User) {
	var patch dictionary.Patch
	if err := decodeJSON(w, r, &patch); err != nil {
		s.respondError(w, r, err)
		return
	}
	d, err := s.Dictionaries.Update(r.Context(), u.ID, r.PathValue("id"), patch)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, newDictionaryResponse(d))
}

func (s *Server) handleDeleteDictionary(w http.ResponseWriter, r *http.Request, u *user.User) {
	if err := s.Dictionaries.Delete(r.Context(), u.ID, r.PathValue("id")); err != nil {
		s.respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, messageResponse{Message: "Dictionary deleted successfully"})
}
