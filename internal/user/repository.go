package user

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

//go:generate mockgen -source=repository.go -destination=../mocks/user/mock_repository.go -package=mock_user

// UserRepository defines operations for managing user accounts.
// Lookups return an error wrapping sql.ErrNoRows when no row matches.
type UserRepository interface {
	FindByID(ctx context.Context, id string) (*User, error)
	FindByUsername(ctx context.Context, username string) (*User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, u *User) error
	UpdatePassword(ctx context.Context, id, passwordHash string, updatedAt time.Time) error
}

// DBUserRepository implements UserRepository over a SQL database.
type DBUserRepository struct {
	db *sqlx.DB
}

// NewDBUserRepository creates a new DBUserRepository.
func NewDBUserRepository(db *sqlx.DB) *DBUserRepository {
	return &DBUserRepository{db: db}
}

const userColumns = "id, username, email, password_hash, is_active, created_at, updated_at"

func (r *DBUserRepository) FindByID(ctx context.Context, id string) (*User, error) {
	var u User
	query := r.db.Rebind("SELECT " + userColumns + " FROM users WHERE id = ?")
	if err := r.db.GetContext(ctx, &u, query, id); err != nil {
		return nil, fmt.Errorf("find user by id: %w", err)
	}
	return &u, nil
}

func (r *DBUserRepository) FindByUsername(ctx context.Context, username string) (*User, error) {
	var u User
	query := r.db.Rebind("SELECT " + userColumns + " FROM users WHERE username = ?")
	if err := r.db.GetContext(ctx, &u, query, username); err != nil {
		return nil, fmt.Errorf("find user by username: %w", err)
	}
	return &u, nil
}

func (r *DBUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return r.exists(ctx, "username", username)
}

func (r *DBUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.exists(ctx, "email", email)
}

// exists counts rows matching column; column is always a constant from this file.
func (r *DBUserRepository) exists(ctx context.Context, column, value string) (bool, error) {
	var count int
	query := r.db.Rebind("SELECT COUNT(*) FROM users WHERE " + column + " = ?")
	if err := r.db.GetContext(ctx, &count, query, value); err != nil {
		return false, fmt.Errorf("count users by %s: %w", column, err)
	}
	return count > 0, nil
}

func (r *DBUserRepository) Create(ctx context.Context, u *User) error {
	_, err := r.db.NamedExecContext(ctx,
		`INSERT INTO users (id, username, email, password_hash, is_active, created_at, updated_at)
		VALUES (:id, :username, :email, :password_hash, :is_active, :created_at, :updated_at)`, u)
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (r *DBUserRepository) UpdatePassword(ctx context.Context, id, passwordHash string, updatedAt time.Time) error {
	query := r.db.Rebind("UPDATE users SET password_hash = ?, updated_at = ? WHERE id = ?")
	if _, err := r.db.ExecContext(ctx, query, passwordHash, updatedAt, id); err != nil {
		return fmt.Errorf("update user password: %w", err)
	}
	return nil
}
