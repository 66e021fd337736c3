package word

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/at-ishikawa/wordbook/internal/apperror"
	"github.com/at-ishikawa/wordbook/internal/database"
	"github.com/at-ishikawa/wordbook/internal/dictionary"
	"github.com/at-ishikawa/wordbook/internal/validation"
)

//go:generate mockgen -source=service.go -destination=../mocks/word/mock_service.go -package=mock_word

var (
	ErrNotFound   = apperror.NotFound("Word not found")
	ErrWordExists = apperror.Conflict("Word already exists in this dictionary")
)

var fieldValidator = validation.MustNew("json")

// DictionaryAuthorizer reports whether an owner may use a dictionary.
type DictionaryAuthorizer interface {
	Authorize(ctx context.Context, ownerID, dictionaryID string) (*dictionary.Dictionary, error)
}

type Service struct {
	repo         WordRepository
	dictionaries DictionaryAuthorizer
}

// NewService creates a new Service.
func NewService(repo WordRepository, dictionaries DictionaryAuthorizer) *Service {
	return &Service{
		repo:         repo,
		dictionaries: dictionaries,
	}
}

// Validate checks normalized fields.
func Validate(f Fields) error {
	return fieldValidator.Struct(f)
}

func (s *Service) Create(ctx context.Context, ownerID, dictionaryID string, f Fields) (*Word, error) {
	f = Normalize(f)
	if err := Validate(f); err != nil {
		return nil, err
	}
	if _, err := s.dictionaries.Authorize(ctx, ownerID, dictionaryID); err != nil {
		return nil, err
	}
	if err := s.checkWord(ctx, dictionaryID, f.Word, ""); err != nil {
		return nil, err
	}

	w := New(dictionaryID, f, time.Now().UTC())
	if err := s.repo.Create(ctx, w); err != nil {
		if database.IsUniqueViolation(err) {
			return nil, apperror.Wrap(apperror.KindConflict, err, ErrWordExists.Message)
		}
		return nil, err
	}
	return w, nil
}

func (s *Service) List(ctx context.Context, ownerID, dictionaryID string, page Page) ([]Word, error) {
	if page.Skip < 0 {
		return nil, apperror.Validation("skip must be 0 or greater")
	}
	if page.Limit < 1 || page.Limit > MaxLimit {
		return nil, apperror.Validation("limit must be between 1 and %d", MaxLimit)
	}
	if _, err := s.dictionaries.Authorize(ctx, ownerID, dictionaryID); err != nil {
		return nil, err
	}
	return s.repo.FindByDictionary(ctx, dictionaryID, page)
}

func (s *Service) Get(ctx context.Context, ownerID, dictionaryID, wordID string) (*Word, error) {
	if _, err := s.dictionaries.Authorize(ctx, ownerID, dictionaryID); err != nil {
		return nil, err
	}
	return s.find(ctx, dictionaryID, wordID)
}

func (s *Service) Update(ctx context.Context, ownerID, dictionaryID, wordID string, patch Patch) (*Word, error) {
	patch = normalizePatch(patch)
	if err := fieldValidator.Struct(patch); err != nil {
		return nil, err
	}
	if _, err := s.dictionaries.Authorize(ctx, ownerID, dictionaryID); err != nil {
		return nil, err
	}
	w, err := s.find(ctx, dictionaryID, wordID)
	if err != nil {
		return nil, err
	}

	if patch.Word != nil && *patch.Word != w.Word {
		if err := s.checkWord(ctx, dictionaryID, *patch.Word, w.ID); err != nil {
			return nil, err
		}
		w.Word = *patch.Word
	}
	if patch.Definition != nil {
		w.Definition = *patch.Definition
	}
	if patch.Pronunciation != nil {
		w.Pronunciation = *patch.Pronunciation
	}
	if patch.Examples != nil {
		w.Examples = *patch.Examples
	}
	if patch.Categories != nil {
		w.Categories = *patch.Categories
	}
	if patch.Notes != nil {
		w.Notes = *patch.Notes
	}
	w.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, w); err != nil {
		if database.IsUniqueViolation(err) {
			return nil, apperror.Wrap(apperror.KindConflict, err, ErrWordExists.Message)
		}
		return nil, err
	}
	return w, nil
}

func (s *Service) Delete(ctx context.Context, ownerID, dictionaryID, wordID string) error {
	if _, err := s.dictionaries.Authorize(ctx, ownerID, dictionaryID); err != nil {
		return err
	}
	if uuid.Validate(wordID) != nil {
		return ErrNotFound
	}
	if err := s.repo.Delete(ctx, dictionaryID, wordID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// Search returns the words whose headword, definition, or either contains query.
// An empty searchType searches headwords.
func (s *Service) Search(ctx context.Context, ownerID, dictionaryID, query string, searchType SearchType) ([]Word, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, apperror.Validation("query must be at least 1 character in length")
	}
	if searchType == "" {
		searchType = SearchWord
	}
	if !searchType.Valid() {
		return nil, apperror.Validation("search_type must be one of [word definition both]")
	}
	if _, err := s.dictionaries.Authorize(ctx, ownerID, dictionaryID); err != nil {
		return nil, err
	}
	return s.repo.Search(ctx, dictionaryID, query, searchType)
}

func (s *Service) Categories(ctx context.Context, ownerID, dictionaryID string) ([]string, error) {
	if _, err := s.dictionaries.Authorize(ctx, ownerID, dictionaryID); err != nil {
		return nil, err
	}
	return s.repo.Categories(ctx, dictionaryID)
}

func (s *Service) find(ctx context.Context, dictionaryID, wordID string) (*Word, error) {
	if uuid.Validate(wordID) != nil {
		return nil, ErrNotFound
	}
	w, err := s.repo.FindByID(ctx, dictionaryID, wordID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return w, nil
}

func (s *Service) checkWord(ctx context.Context, dictionaryID, word, excludeID string) error {
	exists, err := s.repo.ExistsByWord(ctx, dictionaryID, word, excludeID)
	if err != nil {
		return fmt.Errorf("check word: %w", err)
	}
	if exists {
		return ErrWordExists
	}
	return nil
}

func normalizePatch(p Patch) Patch {
	trim := func(s *string, fn func(string) string) *string {
		if s == nil {
			return nil
		}
		v := fn(*s)
		return &v
	}
	out := Patch{
		Word:          trim(p.Word, NormalizeWord),
		Definition:    trim(p.Definition, strings.TrimSpace),
		Pronunciation: trim(p.Pronunciation, strings.TrimSpace),
		Notes:         trim(p.Notes, strings.TrimSpace),
	}
	if p.Examples != nil {
		examples := normalizeExamples(*p.Examples)
		out.Examples = &examples
	}
	if p.Categories != nil {
		categories := normalizeCategories(*p.Categories)
		out.Categories = &categories
	}
	return out
}
