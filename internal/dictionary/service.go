package dictionary

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
	"github.com/at-ishikawa/wordbook/internal/validation"
)

var (
	ErrNotFound  = apperror.NotFound("Dictionary not found")
	ErrNameTaken = apperror.Conflict("Dictionary name already exists")
)

type Service struct {
	repo      DictionaryRepository
	validator *validation.Validator
}

// NewService creates a new Service.
func NewService(repo DictionaryRepository) *Service {
	return &Service{
		repo:      repo,
		validator: validation.MustNew("json"),
	}
}

func (s *Service) Create(ctx context.Context, ownerID string, in Input) (*Dictionary, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Description = strings.TrimSpace(in.Description)
	if err := s.validator.Struct(in); err != nil {
		return nil, err
	}
	if err := s.checkName(ctx, ownerID, in.Name, ""); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	d := &Dictionary{
		ID:          uuid.NewString(),
		OwnerID:     ownerID,
		Name:        in.Name,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.Create(ctx, d); err != nil {
		if database.IsUniqueViolation(err) {
			return nil, apperror.Wrap(apperror.KindConflict, err, ErrNameTaken.Message)
		}
		return nil, err
	}
	return d, nil
}

func (s *Service) List(ctx context.Context, ownerID string) ([]Dictionary, error) {
	return s.repo.FindByOwner(ctx, ownerID)
}

func (s *Service) Get(ctx context.Context, ownerID, id string) (*Dictionary, error) {
	return s.Authorize(ctx, ownerID, id)
}

// Authorize returns the dictionary if ownerID owns it.
// Missing and foreign dictionaries are both reported as ErrNotFound.
func (s *Service) Authorize(ctx context.Context, ownerID, id string) (*Dictionary, error) {
	if uuid.Validate(id) != nil {
		return nil, ErrNotFound
	}
	d, err := s.repo.FindByID(ctx, ownerID, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return d, nil
}

func (s *Service) Update(ctx context.Context, ownerID, id string, patch Patch) (*Dictionary, error) {
	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		patch.Name = &name
	}
	if patch.Description != nil {
		description := strings.TrimSpace(*patch.Description)
		patch.Description = &description
	}
	if err := s.validator.Struct(patch); err != nil {
		return nil, err
	}

	d, err := s.Authorize(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	if patch.Name != nil && !strings.EqualFold(*patch.Name, d.Name) {
		if err := s.checkName(ctx, ownerID, *patch.Name, d.ID); err != nil {
			return nil, err
		}
	}

	if patch.Name != nil {
		d.Name = *patch.Name
	}
	if patch.Description != nil {
		d.Description = *patch.Description
	}
	d.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, d); err != nil {
		if database.IsUniqueViolation(err) {
			return nil, apperror.Wrap(apperror.KindConflict, err, ErrNameTaken.Message)
		}
		return nil, err
	}
	return d, nil
}

// Delete removes the dictionary together with its words.
func (s *Service) Delete(ctx context.Context, ownerID, id string) error {
	if uuid.Validate(id) != nil {
		return ErrNotFound
	}
	if err := s.repo.Delete(ctx, ownerID, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *Service) checkName(ctx context.Context, ownerID, name, excludeID string) error {
	taken, err := s.repo.ExistsByName(ctx, ownerID, name, excludeID)
	if err != nil {
		return fmt.Errorf("check dictionary name: %w", err)
	}
	if taken {
		return ErrNameTaken
	}
	return nil
}
