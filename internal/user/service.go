package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/at-ishikawa/wordbook/internal/apperror"
	"github.com/at-ishikawa/wordbook/internal/auth"
	"github.com/at-ishikawa/wordbook/internal/database"
	"github.com/at-ishikawa/wordbook/internal/validation"
)

var (
	ErrUsernameTaken      = apperror.Conflict("Username already registered")
	ErrEmailTaken         = apperror.Conflict("Email already registered")
	ErrInvalidCredentials = apperror.Unauthorized("Incorrect username or password")
	ErrInactive           = apperror.Forbidden("Inactive user")
	ErrWrongPassword      = apperror.Unauthorized("Incorrect current password")
	ErrNotFound           = apperror.NotFound("User not found")
)

// Service implements registration, credential checks and password changes.
type Service struct {
	repo      UserRepository
	hasher    auth.PasswordHasher
	validator *validation.Validator
}

// NewService creates a new Service.
func NewService(repo UserRepository, hasher auth.PasswordHasher) *Service {
	return &Service{
		repo:      repo,
		hasher:    hasher,
		validator: validation.MustNew("json"),
	}
}

// Register creates an active account. Username and email are stored trimmed and lowercased.
func (s *Service) Register(ctx context.Context, in Registration) (*User, error) {
	in.Username = normalize(in.Username)
	in.Email = normalize(in.Email)
	if err := s.validator.Struct(in); err != nil {
		return nil, err
	}

	taken, err := s.repo.ExistsByUsername(ctx, in.Username)
	if err != nil {
		return nil, fmt.Errorf("check username: %w", err)
	}
	if taken {
		return nil, ErrUsernameTaken
	}
	taken, err = s.repo.ExistsByEmail(ctx, in.Email)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if taken {
		return nil, ErrEmailTaken
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	u := &User{
		ID:           uuid.NewString(),
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hash,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.repo.Create(ctx, u); err != nil {
		// Another registration won the race between the checks and the insert
		if database.IsUniqueViolation(err) {
			return nil, apperror.Wrap(apperror.KindConflict, err, "Username or email already registered")
		}
		return nil, err
	}
	return u, nil
}

// Verify returns the account matching username and password.
func (s *Service) Verify(ctx context.Context, username, password string) (*User, error) {
	u, err := s.repo.FindByUsername(ctx, normalize(username))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	ok, err := s.hasher.Compare(u.PasswordHash, password)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrInvalidCredentials
	}
	if !u.IsActive {
		return nil, ErrInactive
	}
	return u, nil
}

func (s *Service) ChangePassword(ctx context.Context, userID string, in PasswordChange) error {
	if err := s.validator.Struct(in); err != nil {
		return err
	}

	u, err := s.Get(ctx, userID)
	if err != nil {
		return err
	}
	ok, err := s.hasher.Compare(u.PasswordHash, in.CurrentPassword)
	if err != nil {
		return err
	}
	if !ok {
		return ErrWrongPassword
	}

	hash, err := s.hasher.Hash(in.NewPassword)
	if err != nil {
		return err
	}
	return s.repo.UpdatePassword(ctx, u.ID, hash, time.Now().UTC())
}

func (s *Service) Get(ctx context.Context, userID string) (*User, error) {
	if uuid.Validate(userID) != nil {
		return nil, ErrNotFound
	}
	u, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return u, nil
}

// FindByUsername looks up an account for operator tooling. The username is normalized first.
func (s *Service) FindByUsername(ctx context.Context, username string) (*User, error) {
	u, err := s.repo.FindByUsername(ctx, normalize(username))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return u, nil
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
