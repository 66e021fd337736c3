package server

import (
	"net/http"

	"github.com/at-ishikawa/wordbook/internal/user"
	"github.com/at-ishikawa/wordbook/internal/word"
)

type searchRequest struct {
	Query      string          `json:"query" validate:"required"`
	SearchType word.SearchType `json:"search_type"`
}

type searchResponse struct {
	Words      []word.Word     `json:"words"`
	TotalCount int             `json:"total_count"`
	Query      string          `json:"query"`
	SearchType word.SearchType `json:"search_type"`
}

func (s *Server) handleCreateWord(w http.ResponseWriter, r *http.Request, u *user.User) {
	var f word.Fields
	if err := decodeJSON(w, r, &f); err != nil {
		s.respondError(w, r, err)
		return
	}
	created, err := s.Words.Create(r.Context(), u.ID, r.PathValue("dictionary_id"), f)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

func (s *Server) handleListWords(w http.ResponseWriter, r *http.Request, u *user.User) {
	page := word.DefaultPage()
	var err error
	if page.Skip, err = queryInt(r, "skip", page.Skip); err != nil {
		s.respondError(w, r, err)
		return
	}
	if page.Limit, err = queryInt(r, "limit", page.Limit); err != nil {
		s.respondError(w, r, err)
		return
	}

	list, err := s.Words.List(r.Context(), u.ID, r.PathValue("dictionary_id"), page)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, list)
}

func (s *Server) handleGetWord(w http.ResponseWriter, r *http.Request, u *user.User) {
	found, err := s.Words.Get(r.Context(), u.ID, r.PathValue("dictionary_id"), r.PathValue("word_id"))
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, found)
}

func (s *Server) handleUpdateWord(w http.ResponseWriter, r *http.Request, u *user.User) {
	var patch word.Patch
	if err := decodeJSON(w, r, &patch); err != nil {
		s.respondError(w, r, err)
		return
	}
	updated, err := s.Words.Update(r.Context(), u.ID, r.PathValue("dictionary_id"), r.PathValue("word_id"), patch)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

func (s *Server) handleDeleteWord(w http.ResponseWriter, r *http.Request, u *user.User) {
	if err := s.Words.Delete(r.Context(), u.ID, r.PathValue("dictionary_id"), r.PathValue("word_id")); err != nil {
		s.respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, messageResponse{Message: "Word deleted successfully"})
}

func (s *Server) handleSearchWords(w http.ResponseWriter, r *http.Request, u *user.User) {
	var req searchRequest
	if err := s.decodeRequest(w, r, &req); err != nil {
		s.respondError(w, r, err)
		return
	}
	if req.SearchType == "" {
		req.SearchType = word.SearchWord
	}

	found, err := s.Words.Search(r.Context(), u.ID, r.PathValue("dictionary_id"), req.Query, req.SearchType)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, searchResponse{
		Words:      found,
		TotalCount: len(found),
		Query:      req.Query,
		SearchType: req.SearchType,
	})
}

func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request, u *user.User) {
	categories, err := s.Words.Categories(r.Context(), u.ID, r.PathValue("dictionary_id"))
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, categories)
}
