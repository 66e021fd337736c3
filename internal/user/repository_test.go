package user

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var userRowColumns = []string{"id", "username", "email", "password_hash", "is_active", "created_at", "updated_at"}

func newMockRepository(t *testing.T) (*DBUserRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewDBUserRepository(sqlx.NewDb(db, "mysql")), mock
}

func TestDBUserRepository_FindByUsername(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		setupMock func(mock sqlmock.Sqlmock)
		want      *User
		wantErrIs error
		wantErr   bool
	}{
		{
			name: "returns the user",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(userRowColumns).
					AddRow("u1", "alice", "a@x.com", "hash", true, now, now)
				mock.ExpectQuery("SELECT id, username, email, password_hash, is_active, created_at, updated_at FROM users WHERE username = \\?").
					WithArgs("alice").
					WillReturnRows(rows)
			},
			want: &User{ID: "u1", Username: "alice", Email: "a@x.com", PasswordHash: "hash", IsActive: true, CreatedAt: now, UpdatedAt: now},
		},
		{
			name: "no rows",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("FROM users WHERE username").
					WithArgs("alice").
					WillReturnRows(sqlmock.NewRows(userRowColumns))
			},
			wantErr:   true,
			wantErrIs: sql.ErrNoRows,
		},
		{
			name: "db error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("FROM users WHERE username").
					WillReturnError(fmt.Errorf("connection refused"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newMockRepository(t)
			tt.setupMock(mock)

			got, err := repo.FindByUsername(context.Background(), "alice")
			if tt.wantErr {
				require.Error(t, err)
				if tt.wantErrIs != nil {
					assert.ErrorIs(t, err, tt.wantErrIs)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDBUserRepository_FindByID(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	repo, mock := newMockRepository(t)

	mock.ExpectQuery("FROM users WHERE id = \\?").
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows(userRowColumns).AddRow("u1", "alice", "a@x.com", "hash", false, now, now))

	got, err := repo.FindByID(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Username)
	assert.False(t, got.IsActive)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDBUserRepository_Exists(t *testing.T) {
	tests := []struct {
		name      string
		call      func(repo *DBUserRepository) (bool, error)
		setupMock func(mock sqlmock.Sqlmock)
		want      bool
		wantErr   bool
	}{
		{
			name: "username taken",
			call: func(repo *DBUserRepository) (bool, error) {
				return repo.ExistsByUsername(context.Background(), "alice")
			},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM users WHERE username = \\?").
					WithArgs("alice").
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
			},
			want: true,
		},
		{
			name: "email free",
			call: func(repo *DBUserRepository) (bool, error) {
				return repo.ExistsByEmail(context.Background(), "a@x.com")
			},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM users WHERE email = \\?").
					WithArgs("a@x.com").
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
			},
			want: false,
		},
		{
			name: "db error",
			call: func(repo *DBUserRepository) (bool, error) {
				return repo.ExistsByEmail(context.Background(), "a@x.com")
			},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("FROM users WHERE email").WillReturnError(fmt.Errorf("connection refused"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newMockRepository(t)
			tt.setupMock(mock)

			got, err := tt.call(repo)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDBUserRepository_Create(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	u := &User{ID: "u1", Username: "alice", Email: "a@x.com", PasswordHash: "hash", IsActive: true, CreatedAt: now, UpdatedAt: now}

	tests := []struct {
		name      string
		setupMock func(mock sqlmock.Sqlmock)
		wantErr   bool
	}{
		{
			name: "inserts the user",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("INSERT INTO users \\(id, username, email, password_hash, is_active, created_at, updated_at\\)").
					WithArgs("u1", "alice", "a@x.com", "hash", true, now, now).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "db error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("INSERT INTO users").WillReturnError(fmt.Errorf("duplicate entry"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newMockRepository(t)
			tt.setupMock(mock)

			err := repo.Create(context.Background(), u)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDBUserRepository_UpdatePassword(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	repo, mock := newMockRepository(t)

	mock.ExpectExec("UPDATE users SET password_hash = \\?, updated_at = \\? WHERE id = \\?").
		WithArgs("new-hash", now, "u1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.UpdatePassword(context.Background(), "u1", "new-hash", now))
	assert.NoError(t, mock.ExpectationsWereMet())
}
